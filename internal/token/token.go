package token

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Claims carries the signing subject's email under the userEmail key, the
// same claim name the clients were issued against.
type Claims struct {
	UserEmail string `json:"userEmail"`
	jwt.StandardClaims
}

// Sign issues an HS256 token for the given email with a fixed 1-day expiry.
func Sign(secret, email string) (string, error) {
	claims := Claims{
		UserEmail: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Parse validates a token string and returns its claims. Expired or
// tampered tokens return an error.
func Parse(secret, raw string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	return claims, nil
}
