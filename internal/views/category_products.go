package views

import (
	"tienda/internal/models"
	"tienda/internal/utils/pagination"
)

// CategoryProductsState drives the single-category browsing screen.
// Same pagination as the product list, no filters.
type CategoryProductsState struct {
	products []models.Product
	page     int
	perPage  int
}

func NewCategoryProductsState(products []models.Product) *CategoryProductsState {
	return &CategoryProductsState{
		products: products,
		page:     1,
		perPage:  pagination.DefaultPerPage,
	}
}

func (s *CategoryProductsState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if total := s.TotalPages(); total > 0 && page > total {
		page = total
	}
	s.page = page
}

func (s *CategoryProductsState) Page() int { return s.page }

func (s *CategoryProductsState) Visible() []models.Product {
	return pagination.Slice(s.products, s.page, s.perPage)
}

func (s *CategoryProductsState) TotalPages() int {
	return pagination.TotalPages(len(s.products), s.perPage)
}

func (s *CategoryProductsState) Empty() bool {
	return len(s.products) == 0
}
