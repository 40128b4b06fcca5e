package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the claims embedded in the bearer token issued by the
// remote user API. The token is opaque to this layer except for these
// two fields; the signing secret lives upstream, so claims are decoded
// without verification.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID  string `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
}
