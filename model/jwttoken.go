package model

import "github.com/golang-jwt/jwt/v5"

// DevClaims is the claim set of a dev-mode access token. Production requests
// carry Firebase ID tokens instead and never touch this type.
type DevClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
