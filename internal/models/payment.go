package models

import (
	"fmt"
	"time"
)

// PaymentIntent is the merchant side of a single payment attempt. It is
// built at "pay" time, sent to the gateway once, and never persisted.
type PaymentIntent struct {
	Amount    float64 `json:"amount"`
	SessionID string  `json:"session_id"`
	BuyOrder  string  `json:"buy_order"`
	ReturnURL string  `json:"return_url"`
}

// GatewayToken is the gateway's answer to an initiation: a one-time
// token and the URL the shopper's browser must POST it to.
type GatewayToken struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// CardDetail carries the masked card data the gateway reports back.
// CardNumber holds only the last four digits.
type CardDetail struct {
	CardNumber string `json:"card_number"`
}

// TransactionDetails are produced by a successful confirmation call.
// They are displayed once and never stored.
type TransactionDetails struct {
	Amount            float64    `json:"amount"`
	BuyOrder          string     `json:"buy_order"`
	TransactionDate   time.Time  `json:"transaction_date"`
	AuthorizationCode string     `json:"authorization_code"`
	ResponseCode      int        `json:"response_code"`
	CardDetail        CardDetail `json:"card_detail"`
}

// MaskedCardNumber renders the card in display form, showing only the
// last four digits.
func (d TransactionDetails) MaskedCardNumber() string {
	return fmt.Sprintf("**** **** **** %s", d.CardDetail.CardNumber)
}
