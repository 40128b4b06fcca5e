package handlers

import (
	"html/template"
	"log"

	"tienda/internal/services/payment"
	"tienda/internal/utils/currency"
	"tienda/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// redirectForm is the auto-submitting form POSTing the gateway token.
// Serving it is the success path of initiation: the shopper's browser
// navigates away and control never returns to the storefront.
var redirectForm = template.Must(template.New("redirect").Parse(`<!DOCTYPE html>
<html>
<body onload="document.forms[0].submit()">
<form method="post" action="{{.URL}}">
<input type="hidden" name="token_ws" value="{{.Token}}">
<noscript><button type="submit">Continuar al pago</button></noscript>
</form>
</body>
</html>
`))

type initiateRequest struct {
	Amount    float64 `json:"amount"`
	ProductID string  `json:"productId"`
}

// PaymentHandler owns the initiation endpoint and the confirmation
// round trip of the return page.
type PaymentHandler struct {
	payments *payment.Service
}

func NewPaymentHandler(payments *payment.Service) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Initiate creates the gateway transaction for {amount, productId} and
// answers with the auto-submit redirect form. `?format=json` returns
// the raw {token, url} pair instead, for clients that build the form
// themselves.
func (h *PaymentHandler) Initiate(c *fiber.Ctx) error {
	var req initiateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	token, intent, err := h.payments.Initiate(c.Context(), req.Amount, req.ProductID)
	if err != nil {
		switch err {
		case payment.ErrInvalidAmount, payment.ErrMissingProduct:
			return response.BadRequest(c, err.Error())
		default:
			log.Printf("payment initiation failed: %v", err)
			return response.BadGateway(c, "Error al iniciar el pago")
		}
	}
	log.Printf("payment initiated: buy_order=%s amount=%.0f", intent.BuyOrder, intent.Amount)

	if c.Query("format") == "json" {
		return c.JSON(token)
	}

	c.Type("html")
	return redirectForm.Execute(c.Response().BodyWriter(), token)
}

// Confirm commits a returned token_ws. Success answers {details}; a
// gateway rejection surfaces the gateway's message.
func (h *PaymentHandler) Confirm(c *fiber.Ctx) error {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	conf := h.payments.Confirm(c.Context(), req.Token, "")
	switch conf.State {
	case payment.StateConfirmed:
		return c.JSON(fiber.Map{"details": conf.Details})
	case payment.StateNoToken:
		return response.BadRequest(c, conf.Err)
	default:
		return response.BadGateway(c, conf.Err)
	}
}

// ThankYou is the return page the gateway redirects back to. It runs
// the confirmation state machine once per load and renders the outcome.
func (h *PaymentHandler) ThankYou(c *fiber.Ctx) error {
	conf := h.payments.Confirm(c.Context(), c.Query("token_ws"), c.Query("productId"))

	body := fiber.Map{"state": conf.State}

	if conf.Err != "" {
		body["error"] = conf.Err
	}
	if conf.Details != nil {
		d := conf.Details
		body["details"] = fiber.Map{
			"amount":             d.Amount,
			"formatted_amount":   currency.FormatCLP(d.Amount),
			"buy_order":          d.BuyOrder,
			"transaction_date":   d.TransactionDate.Local().Format("02-01-2006 15:04:05"),
			"authorization_code": d.AuthorizationCode,
			"card_number":        d.MaskedCardNumber(),
		}
	}
	if conf.Product != nil {
		p := conf.Product
		body["product"] = fiber.Map{
			"title":           p.Title,
			"description":     p.Description,
			"formatted_price": currency.FormatCLP(p.Price),
			"category":        p.Category,
			"brand":           p.Brand,
			"stock":           p.Stock,
			"rating":          p.Rating,
			"images":          p.Images,
		}
	}

	status := fiber.StatusOK
	if conf.State != payment.StateConfirmed {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(body)
}
