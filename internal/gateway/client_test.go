package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tienda/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	return NewClient(Config{
		BaseURL:   url,
		KeyID:     "597055555532",
		KeySecret: "shhh",
		Timeout:   time.Second,
	})
}

func TestInitiate(t *testing.T) {
	t.Run("posts the intent and decodes token and url", func(t *testing.T) {
		var received models.PaymentIntent
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/transactions", r.URL.Path)
			assert.Equal(t, "597055555532", r.Header.Get("Tbk-Api-Key-Id"))
			assert.Equal(t, "shhh", r.Header.Get("Tbk-Api-Key-Secret"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.Write([]byte(`{"token":"tok-1","url":"https://gateway.example/pay"}`))
		}))
		defer srv.Close()

		intent := models.PaymentIntent{
			Amount:    14990,
			SessionID: "session-1",
			BuyOrder:  "order-1",
			ReturnURL: "https://shop.example/thank-you?productId=42",
		}
		token, err := testClient(srv.URL).Initiate(context.Background(), intent)

		require.NoError(t, err)
		assert.Equal(t, "tok-1", token.Token)
		assert.Equal(t, "https://gateway.example/pay", token.URL)
		assert.Equal(t, intent, received)
	})

	t.Run("response missing token or url is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"token":"tok-1"}`))
		}))
		defer srv.Close()

		_, err := testClient(srv.URL).Initiate(context.Background(), models.PaymentIntent{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing token or url")
	})

	t.Run("gateway error_message is surfaced", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"error_message":"Invalid value for parameter: amount"}`))
		}))
		defer srv.Close()

		_, err := testClient(srv.URL).Initiate(context.Background(), models.PaymentIntent{})
		require.Error(t, err)

		var gwErr *Error
		require.ErrorAs(t, err, &gwErr)
		assert.Equal(t, http.StatusUnprocessableEntity, gwErr.Status)
		assert.Equal(t, "Invalid value for parameter: amount", gwErr.Message)
	})
}

func TestCommit(t *testing.T) {
	t.Run("puts the token and decodes the details", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/transactions/tok-1", r.URL.Path)
			w.Write([]byte(`{
				"amount": 14990,
				"buy_order": "order-1",
				"transaction_date": "2024-05-10T15:04:05Z",
				"authorization_code": "1213",
				"response_code": 0,
				"card_detail": {"card_number": "6623"}
			}`))
		}))
		defer srv.Close()

		details, err := testClient(srv.URL).Commit(context.Background(), "tok-1")

		require.NoError(t, err)
		assert.Equal(t, float64(14990), details.Amount)
		assert.Equal(t, "order-1", details.BuyOrder)
		assert.Equal(t, "1213", details.AuthorizationCode)
		assert.Equal(t, "6623", details.CardDetail.CardNumber)
		assert.Equal(t, "**** **** **** 6623", details.MaskedCardNumber())
	})

	t.Run("non-json error body is surfaced raw", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte("transaction already locked"))
		}))
		defer srv.Close()

		_, err := testClient(srv.URL).Commit(context.Background(), "tok-1")
		require.Error(t, err)
		assert.Equal(t, "transaction already locked", err.Error())
	})
}
