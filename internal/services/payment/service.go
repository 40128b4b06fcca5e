// Package payment orchestrates the three-party redirect flow between
// the storefront, the payment gateway, and the confirmation page.
//
// Initiation is terminal from the storefront's point of view: once the
// shopper's browser submits the token form there is no continuation,
// only a later, independent load of the return page. Confirmation commits
// the returned token at most once per page load; replay semantics are
// the gateway's, not ours.
package payment

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"tienda/internal/models"

	"github.com/google/uuid"
)

type Service struct {
	gw        Gateway
	lookup    ProductLookup
	returnURL string
}

// NewService wires the gateway and the preview lookup. returnURL is the
// absolute base URL of the confirmation page (no query string).
func NewService(gw Gateway, lookup ProductLookup, returnURL string) *Service {
	return &Service{gw: gw, lookup: lookup, returnURL: returnURL}
}

// NewBuyOrder generates a merchant buy-order identifier. The timestamp
// keeps it human-sortable; the uuid suffix keeps two orders distinct
// even when created within the same millisecond.
func NewBuyOrder() string {
	return fmt.Sprintf("order-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// Initiate builds a fresh payment intent for the product and creates
// the transaction at the gateway. The intent lives only for this call.
func (s *Service) Initiate(ctx context.Context, amount float64, productID string) (*models.GatewayToken, models.PaymentIntent, error) {
	if amount <= 0 {
		return nil, models.PaymentIntent{}, ErrInvalidAmount
	}
	if productID == "" {
		return nil, models.PaymentIntent{}, ErrMissingProduct
	}

	intent := models.PaymentIntent{
		Amount:    amount,
		SessionID: "session-" + uuid.NewString(),
		BuyOrder:  NewBuyOrder(),
		ReturnURL: s.returnURL + "?productId=" + url.QueryEscape(productID),
	}

	token, err := s.gw.Initiate(ctx, intent)
	if err != nil {
		return nil, models.PaymentIntent{}, err
	}
	return token, intent, nil
}

// Confirm resolves the confirmation page state for one load.
//
// An absent token is terminal with zero network calls. Otherwise the
// token is committed once; on success the product preview is fetched
// best-effort, and a preview failure never demotes a confirmed payment.
func (s *Service) Confirm(ctx context.Context, tokenWS, productID string) Confirmation {
	if tokenWS == "" {
		return Confirmation{State: StateNoToken, Err: "Token no encontrado en la URL."}
	}

	details, err := s.gw.Commit(ctx, tokenWS)
	if err != nil {
		log.Printf("payment commit failed for token %s: %v", tokenWS, err)
		return Confirmation{State: StateFailed, Err: err.Error()}
	}

	conf := Confirmation{State: StateConfirmed, Details: details}
	if productID != "" {
		product, err := s.lookup.GetProduct(ctx, productID)
		if err != nil {
			log.Printf("product preview lookup failed for %s: %v", productID, err)
		} else {
			conf.Product = product
		}
	}
	return conf
}
