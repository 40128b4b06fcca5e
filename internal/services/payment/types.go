package payment

import "tienda/internal/models"

// State is the terminal outcome of loading the confirmation page.
type State string

const (
	// StateNoToken means token_ws was absent from the return URL.
	// Terminal; no network call is made.
	StateNoToken State = "no_token"
	// StateConfirmed means the gateway accepted the commit call.
	StateConfirmed State = "confirmed"
	// StateFailed means the gateway rejected the commit call.
	StateFailed State = "failed"
)

// Confirmation is the resolved state of one confirmation page load.
// Product is best-effort: it may be nil even when the state is
// StateConfirmed.
type Confirmation struct {
	State   State
	Details *models.TransactionDetails
	Product *models.ProductPreview
	Err     string
}
