package payment

import (
	"context"

	"tienda/internal/models"
)

// Gateway is the external payment gateway's merchant API.
type Gateway interface {
	Initiate(ctx context.Context, intent models.PaymentIntent) (*models.GatewayToken, error)
	Commit(ctx context.Context, token string) (*models.TransactionDetails, error)
}

// ProductLookup fetches the optional product preview shown next to a
// confirmed transaction.
type ProductLookup interface {
	GetProduct(ctx context.Context, id string) (*models.ProductPreview, error)
}
