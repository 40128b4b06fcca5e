// Package catalog proxies the remote product/category API, putting a
// short-lived Redis cache in front of the list endpoints. Admin
// mutations pass through and invalidate the affected keys.
package catalog

import (
	"context"
	"fmt"
	"log"

	"tienda/internal/models"
)

func categoryKey(categoryID string) string {
	return fmt.Sprintf(keyCategoryProducts, categoryID)
}

const (
	keyProducts         = "catalog:products"
	keyCategories       = "catalog:categories"
	keyCategoryProducts = "catalog:category:%s:products"
	patCategoryProducts = "catalog:category:*"
)

type Service struct {
	api   API
	cache Cache
}

func NewService(api API, cache Cache) *Service {
	return &Service{api: api, cache: cache}
}

// Products lists the full catalog, serving from cache when possible.
// Cache failures are logged and fall through to the remote API.
func (s *Service) Products(ctx context.Context) ([]models.Product, error) {
	var cached []models.Product
	if found, err := s.cache.Get(ctx, keyProducts, &cached); err != nil {
		log.Printf("catalog cache read failed: %v", err)
	} else if found {
		return cached, nil
	}

	products, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, keyProducts, products); err != nil {
		log.Printf("catalog cache write failed: %v", err)
	}
	return products, nil
}

func (s *Service) Product(ctx context.Context, id string) (*models.Product, error) {
	return s.api.GetProduct(ctx, id)
}

func (s *Service) ProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	key := categoryKey(categoryID)
	var cached []models.Product
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.Printf("catalog cache read failed: %v", err)
	} else if found {
		return cached, nil
	}

	products, err := s.api.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, products); err != nil {
		log.Printf("catalog cache write failed: %v", err)
	}
	return products, nil
}

func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	if found, err := s.cache.Get(ctx, keyCategories, &cached); err != nil {
		log.Printf("catalog cache read failed: %v", err)
	} else if found {
		return cached, nil
	}

	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, keyCategories, categories); err != nil {
		log.Printf("catalog cache write failed: %v", err)
	}
	return categories, nil
}

// Admin mutations. All of them require the caller's bearer token and
// drop the product caches on success.

func (s *Service) CreateProduct(ctx context.Context, token string, in models.ProductInput) (*models.Product, error) {
	product, err := s.api.CreateProduct(ctx, token, in)
	if err != nil {
		return nil, err
	}
	s.invalidateProducts(ctx)
	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, token, id string, in models.ProductInput) (*models.Product, error) {
	product, err := s.api.UpdateProduct(ctx, token, id, in)
	if err != nil {
		return nil, err
	}
	s.invalidateProducts(ctx)
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, token, id string) error {
	if err := s.api.DeleteProduct(ctx, token, id); err != nil {
		return err
	}
	s.invalidateProducts(ctx)
	return nil
}

func (s *Service) CreateCategory(ctx context.Context, token string, in models.CategoryInput) (*models.Category, error) {
	category, err := s.api.CreateCategory(ctx, token, in)
	if err != nil {
		return nil, err
	}
	s.invalidateCategories(ctx)
	return category, nil
}

func (s *Service) UpdateCategory(ctx context.Context, token, id string, in models.CategoryInput) (*models.Category, error) {
	category, err := s.api.UpdateCategory(ctx, token, id, in)
	if err != nil {
		return nil, err
	}
	s.invalidateCategories(ctx)
	return category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, token, id string) error {
	if err := s.api.DeleteCategory(ctx, token, id); err != nil {
		return err
	}
	s.invalidateCategories(ctx)
	return nil
}

func (s *Service) invalidateProducts(ctx context.Context) {
	if err := s.cache.Delete(ctx, keyProducts); err != nil {
		log.Printf("catalog cache invalidation failed: %v", err)
	}
	if err := s.cache.DeleteByPattern(ctx, patCategoryProducts); err != nil {
		log.Printf("catalog cache invalidation failed: %v", err)
	}
}

func (s *Service) invalidateCategories(ctx context.Context) {
	// Products embed their category, so category changes spill over.
	if err := s.cache.Delete(ctx, keyCategories, keyProducts); err != nil {
		log.Printf("catalog cache invalidation failed: %v", err)
	}
	if err := s.cache.DeleteByPattern(ctx, patCategoryProducts); err != nil {
		log.Printf("catalog cache invalidation failed: %v", err)
	}
}
