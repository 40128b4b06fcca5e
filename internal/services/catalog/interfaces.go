package catalog

import (
	"context"

	"tienda/internal/models"
)

// API is the remote catalog surface the service proxies.
type API interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	CreateProduct(ctx context.Context, token string, in models.ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, token, id string, in models.ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, token string, in models.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, token, id string, in models.CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, token, id string) error
}

// Cache is the subset of the cache service the catalog needs.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
