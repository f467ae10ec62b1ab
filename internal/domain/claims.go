package domain

import "github.com/golang-jwt/jwt/v5"

// AccessClaims is the payload of the bearer token: subject carries the user
// id, Username the display name shown by the UI, Role the authorization role.
type AccessClaims struct {
	Username string `json:"name"`
	Role     Role   `json:"role"`
	jwt.RegisteredClaims
}
