package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// GenerateFounderToken signs a time-limited HS256 token scoped to one
// founder. The same tokens back both API auth and the follow-up links
// embedded in notification emails.
func GenerateFounderToken(secret, founderID string, ttl time.Duration) (string, error) {
	founderID = strings.TrimSpace(founderID)
	if founderID == "" {
		return "", errors.New("founderId is required")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"founderId": founderID,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseFounderToken verifies signature and expiry and returns the founder id
// the token is scoped to.
func ParseFounderToken(secret, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	founderID, _ := claims["founderId"].(string)
	if founderID == "" {
		return "", ErrInvalidToken
	}
	return founderID, nil
}
