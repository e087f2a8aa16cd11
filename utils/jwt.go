package utils

import (
	"errors"
	"time"

	"slotwise/config"

	"github.com/golang-jwt/jwt"
)

// GenerateToken creates a signed JWT with the given host ID as subject.
// The token expires after the specified duration.
func GenerateToken(hostID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": hostID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ValidateToken parses and validates a token string.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
}

// ExtractHostIDFromToken extracts the subject from a valid JWT token string.
func ExtractHostIDFromToken(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token missing subject")
	}
	return sub, nil
}
