package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims are the JWT claims carried by a session token. The token
// expiry plays the role of the inactivity logout timer.
type CustomClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Owner    string `json:"owner"`
}
