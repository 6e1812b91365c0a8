package utils

import (
	"errors"
	"fmt"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/exceptions"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateReportObjectName(userID, resultID string) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("reports/%s/%s_%s_%s.txt", userID, resultID, timestamp, uuid.NewString()[:8])
}

func GenerateSessionJWT(sessionID, secret string, expiry time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(expiry)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        expiresAt.Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, exceptions.ErrTokenGenerate(err)
	}

	return tokenString, expiresAt, nil
}

func ParseSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", exceptions.ErrTokenInvalid(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sessionID, ok := claims["session_id"].(string); ok && sessionID != "" {
			return sessionID, nil
		}
	}

	return "", exceptions.ErrTokenInvalid(nil)
}

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
// Tokens that are not JWTs or carry no exp report false.
func TokenExpiry(tokenString string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return time.Time{}, false
	}

	exp, ok := claims["exp"]
	if !ok {
		return time.Time{}, false
	}
	seconds, err := cast.ToInt64E(exp)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(seconds, 0), true
}
