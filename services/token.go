package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"duit/model"

	"github.com/golang-jwt/jwt/v5"
)

// Dev-mode tokens stand in for Firebase ID tokens when running against the
// Firestore emulator. They are plain HS256 JWTs keyed by JWT_SECRET_KEY.

func CreateDevToken(userID string) (string, error) {
	secret := []byte(os.Getenv("JWT_SECRET_KEY"))
	claims := &model.DevClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "duit",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(60 * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyDevToken checks the signature and expiry and returns the user id.
func VerifyDevToken(tokenString string) (string, error) {
	claims := &model.DevClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET_KEY")), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.UserID == "" {
		return "", errors.New("invalid token claims")
	}
	return claims.UserID, nil
}
