// Package views holds the per-screen state controllers behind the
// storefront's list, detail, and admin screens: filters, pagination and
// form field handling, all computed over catalog data already fetched.
package views

import (
	"strings"

	"tienda/internal/models"
	"tienda/internal/utils/pagination"
)

// Filters are the list-screen inputs. Both match case-insensitively as
// substrings and combine conjunctively.
type Filters struct {
	Name  string
	Brand string
}

// ProductListState drives the product listing screen.
type ProductListState struct {
	products []models.Product
	filters  Filters
	page     int
	perPage  int
}

func NewProductListState(products []models.Product) *ProductListState {
	return &ProductListState{
		products: products,
		page:     1,
		perPage:  pagination.DefaultPerPage,
	}
}

// SetFilters replaces the active filters and snaps back to page one,
// the way retyping a search box does.
func (s *ProductListState) SetFilters(f Filters) {
	s.filters = f
	s.page = 1
}

// SetPage selects a 1-based page; out-of-range values clamp to bounds.
func (s *ProductListState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if total := s.TotalPages(); total > 0 && page > total {
		page = total
	}
	s.page = page
}

func (s *ProductListState) Page() int { return s.page }

// Filtered returns every product matching the active filters.
func (s *ProductListState) Filtered() []models.Product {
	name := strings.ToLower(s.filters.Name)
	brand := strings.ToLower(s.filters.Brand)

	filtered := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), name) &&
			strings.Contains(strings.ToLower(p.Brand), brand) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Visible returns the products on the current page of the filtered set.
func (s *ProductListState) Visible() []models.Product {
	return pagination.Slice(s.Filtered(), s.page, s.perPage)
}

func (s *ProductListState) TotalPages() int {
	return pagination.TotalPages(len(s.Filtered()), s.perPage)
}

// PageWindow lists the page numbers for the pager strip.
func (s *ProductListState) PageWindow() []int {
	return pagination.Window(s.TotalPages())
}
