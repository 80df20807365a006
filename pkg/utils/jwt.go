package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	TokenTTL   = 7 * 24 * time.Hour
	RoleSeller = "seller"
)

var ErrInvalidToken = errors.New("invalid token")

func CreateUserJWTToken(userID string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["id"] = userID
	claims["exp"] = time.Now().Add(TokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(jwtSecretKey))
}

func CreateSellerJWTToken(email string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["email"] = email
	claims["role"] = RoleSeller
	claims["exp"] = time.Now().Add(TokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(jwtSecretKey))
}

// ParseJWTToken verifies signature and expiry and returns the claims.
func ParseJWTToken(tokenString string, jwtSecretKey string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func ExtractUserID(claims jwt.MapClaims) (string, bool) {
	userID, ok := claims["id"].(string)
	return userID, ok && userID != ""
}

func ExtractSellerEmail(claims jwt.MapClaims) (string, bool) {
	if role, _ := claims["role"].(string); role != RoleSeller {
		return "", false
	}
	email, ok := claims["email"].(string)
	return email, ok && email != ""
}
