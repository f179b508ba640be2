package security

import (
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type EmployeeIdentity struct {
	Id    uint
	Name  string
	Email string
	Role  string
}

type Identity struct {
	ID         uint   `json:"nameid"`
	UniqueName string `json:"unique_name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

type IdentityClaims struct {
	Identity
	jwt.RegisteredClaims
}

func CreateEmployeeToken(identity *EmployeeIdentity, base64Secret string, expiresInSeconds int64) (string, error) {
	secretBytes, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", err
	}
	claims := IdentityClaims{
		Identity: Identity{
			ID:         identity.Id,
			UniqueName: identity.Name,
			Email:      identity.Email,
			Role:       identity.Role,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "attendly",
			Audience:  []string{"attendly"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiresInSeconds) * time.Second)),
		},
	}

	// Use HS256 signing method (symmetric key)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretBytes)
}
