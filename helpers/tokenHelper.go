package helpers

import (
	"errors"
	"os"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

type SignedDetails struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// secretKey reads the signing secret at use time rather than package
// init, so a value loaded from .env is honored.
func secretKey() []byte {
	return []byte(os.Getenv("ACCESS_TOKEN_SECRET"))
}

// Session cookies expire after one hour.
const TokenLifetime = time.Hour

// Generate a signed access token carrying the user's email, valid for
// TokenLifetime from now.
func GenerateToken(email string) (signedToken string, err error) {
	claims := &SignedDetails{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey())
}

// checks if the given token is correct and valid.
func ValidateToken(signedToken string) (claims *SignedDetails, err error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			return secretKey(), nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, errors.New("the token is invalid")
	}

	return claims, nil
}
