package types

import "github.com/golang-jwt/jwt/v5"

// Claims represents the JWT claims for admin sessions
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
