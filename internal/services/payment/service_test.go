package payment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tienda/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Initiate(ctx context.Context, intent models.PaymentIntent) (*models.GatewayToken, error) {
	args := m.Called(ctx, intent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GatewayToken), args.Error(1)
}

func (m *MockGateway) Commit(ctx context.Context, token string) (*models.TransactionDetails, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionDetails), args.Error(1)
}

type MockLookup struct {
	mock.Mock
}

func (m *MockLookup) GetProduct(ctx context.Context, id string) (*models.ProductPreview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductPreview), args.Error(1)
}

func TestNewBuyOrder_Unique(t *testing.T) {
	// Buy orders must stay distinct even inside one millisecond tick.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		order := NewBuyOrder()
		assert.True(t, strings.HasPrefix(order, "order-"))
		assert.False(t, seen[order], "duplicate buy order %s", order)
		seen[order] = true
	}
}

func TestInitiate(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		productID string
		setupMock func(*MockGateway)
		wantErr   error
	}{
		{
			name:      "rejects non-positive amount without calling the gateway",
			amount:    0,
			productID: "42",
			wantErr:   ErrInvalidAmount,
		},
		{
			name:      "rejects negative amount",
			amount:    -10,
			productID: "42",
			wantErr:   ErrInvalidAmount,
		},
		{
			name:    "rejects missing product",
			amount:  1000,
			wantErr: ErrMissingProduct,
		},
		{
			name:      "gateway failure propagates",
			amount:    1000,
			productID: "42",
			setupMock: func(gw *MockGateway) {
				gw.On("Initiate", mock.Anything, mock.Anything).
					Return(nil, errors.New("gateway unreachable"))
			},
			wantErr: errors.New("gateway unreachable"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := new(MockGateway)
			if tt.setupMock != nil {
				tt.setupMock(gw)
			}
			s := NewService(gw, new(MockLookup), "https://shop.example/thank-you")

			_, _, err := s.Initiate(context.Background(), tt.amount, tt.productID)
			assert.Error(t, err)
			assert.Equal(t, tt.wantErr.Error(), err.Error())
			gw.AssertExpectations(t)
		})
	}
}

func TestInitiate_BuildsIntent(t *testing.T) {
	gw := new(MockGateway)
	var captured models.PaymentIntent
	gw.On("Initiate", mock.Anything, mock.MatchedBy(func(intent models.PaymentIntent) bool {
		captured = intent
		return true
	})).Return(&models.GatewayToken{Token: "tok-1", URL: "https://gateway.example/pay"}, nil)

	s := NewService(gw, new(MockLookup), "https://shop.example/thank-you")
	token, intent, err := s.Initiate(context.Background(), 14990, "42")

	assert.NoError(t, err)
	assert.Equal(t, "tok-1", token.Token)
	assert.Equal(t, "https://gateway.example/pay", token.URL)
	assert.Equal(t, captured, intent)
	assert.Equal(t, float64(14990), intent.Amount)
	assert.Equal(t, "https://shop.example/thank-you?productId=42", intent.ReturnURL)
	assert.True(t, strings.HasPrefix(intent.BuyOrder, "order-"))
	assert.NotEmpty(t, intent.SessionID)
	gw.AssertExpectations(t)
}

func TestInitiate_DistinctSessionsAndOrders(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Initiate", mock.Anything, mock.Anything).
		Return(&models.GatewayToken{Token: "tok", URL: "https://gateway.example/pay"}, nil)
	s := NewService(gw, new(MockLookup), "https://shop.example/thank-you")

	_, first, err := s.Initiate(context.Background(), 100, "1")
	assert.NoError(t, err)
	_, second, err := s.Initiate(context.Background(), 100, "1")
	assert.NoError(t, err)

	assert.NotEqual(t, first.BuyOrder, second.BuyOrder)
	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestConfirm(t *testing.T) {
	details := &models.TransactionDetails{
		Amount:            14990,
		BuyOrder:          "order-1700000000000-abcd1234",
		TransactionDate:   time.Date(2024, 5, 10, 15, 4, 5, 0, time.UTC),
		AuthorizationCode: "1213",
		CardDetail:        models.CardDetail{CardNumber: "6623"},
	}

	t.Run("missing token is terminal with zero network calls", func(t *testing.T) {
		gw := new(MockGateway)
		lk := new(MockLookup)
		s := NewService(gw, lk, "https://shop.example/thank-you")

		conf := s.Confirm(context.Background(), "", "42")

		assert.Equal(t, StateNoToken, conf.State)
		assert.Equal(t, "Token no encontrado en la URL.", conf.Err)
		gw.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
		lk.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
	})

	t.Run("commit success with product preview", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Commit", mock.Anything, "tok-1").Return(details, nil)
		lk := new(MockLookup)
		lk.On("GetProduct", mock.Anything, "42").
			Return(&models.ProductPreview{Title: "Keyboard", Brand: "Ducky"}, nil)
		s := NewService(gw, lk, "https://shop.example/thank-you")

		conf := s.Confirm(context.Background(), "tok-1", "42")

		assert.Equal(t, StateConfirmed, conf.State)
		assert.Equal(t, details, conf.Details)
		assert.Equal(t, "**** **** **** 6623", conf.Details.MaskedCardNumber())
		assert.Equal(t, "Keyboard", conf.Product.Title)
		gw.AssertExpectations(t)
		lk.AssertExpectations(t)
	})

	t.Run("preview failure does not demote a confirmed payment", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Commit", mock.Anything, "tok-1").Return(details, nil)
		lk := new(MockLookup)
		lk.On("GetProduct", mock.Anything, "42").Return(nil, errors.New("lookup down"))
		s := NewService(gw, lk, "https://shop.example/thank-you")

		conf := s.Confirm(context.Background(), "tok-1", "42")

		assert.Equal(t, StateConfirmed, conf.State)
		assert.Nil(t, conf.Product)
		assert.Empty(t, conf.Err)
	})

	t.Run("gateway rejection surfaces its message", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Commit", mock.Anything, "tok-used").
			Return(nil, errors.New("transaction already locked"))
		lk := new(MockLookup)
		s := NewService(gw, lk, "https://shop.example/thank-you")

		conf := s.Confirm(context.Background(), "tok-used", "42")

		assert.Equal(t, StateFailed, conf.State)
		assert.Equal(t, "transaction already locked", conf.Err)
		lk.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
	})

	t.Run("no product id skips the lookup", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Commit", mock.Anything, "tok-1").Return(details, nil)
		lk := new(MockLookup)
		s := NewService(gw, lk, "https://shop.example/thank-you")

		conf := s.Confirm(context.Background(), "tok-1", "")

		assert.Equal(t, StateConfirmed, conf.State)
		assert.Nil(t, conf.Product)
		lk.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
	})
}

// Confirming the same token twice is intentionally NOT deduplicated
// here: replay semantics belong to the gateway. This test documents the
// non-property by showing the second call goes straight back out.
func TestConfirm_NoDeduplication(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Commit", mock.Anything, "tok-1").
		Return(&models.TransactionDetails{BuyOrder: "order-x"}, nil).Once()
	gw.On("Commit", mock.Anything, "tok-1").
		Return(nil, errors.New("transaction already committed")).Once()
	s := NewService(gw, new(MockLookup), "https://shop.example/thank-you")

	first := s.Confirm(context.Background(), "tok-1", "")
	second := s.Confirm(context.Background(), "tok-1", "")

	assert.Equal(t, StateConfirmed, first.State)
	assert.Equal(t, StateFailed, second.State)
	gw.AssertExpectations(t)
}
