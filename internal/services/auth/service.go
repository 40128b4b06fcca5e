// Package auth bridges the storefront's login and registration forms to
// the remote user API. This layer never verifies or issues tokens; it
// forwards credentials, decodes the returned token's claims, and owns
// the session-cookie contract.
package auth

import (
	"context"
	"errors"
	"fmt"

	"tienda/internal/clients/eshop"
	"tienda/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingCredentials = errors.New("email and password are required")

// API is the remote user API surface the bridge needs.
type API interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, in eshop.RegisterRequest) error
}

type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// Login exchanges credentials upstream and decodes the returned bearer
// token. Every failure mode (upstream rejection, network fault,
// malformed token) comes back as a plain error for the handler to turn
// into a redirect.
func (s *Service) Login(ctx context.Context, email, password string) (string, *models.UserClaims, error) {
	if email == "" || password == "" {
		return "", nil, ErrMissingCredentials
	}

	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		return "", nil, fmt.Errorf("decode token: %w", err)
	}
	return token, claims, nil
}

// Register forwards the raw registration payload. Field validation
// happens at the handler boundary; hashing happens upstream.
func (s *Service) Register(ctx context.Context, in eshop.RegisterRequest) error {
	return s.api.Register(ctx, in)
}

// DecodeClaims extracts the embedded claims without verifying the
// signature. The signing secret belongs to the remote API; this layer
// only needs isAdmin and userId for routing decisions.
func DecodeClaims(token string) (*models.UserClaims, error) {
	claims := &models.UserClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
