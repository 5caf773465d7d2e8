package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

func InitJWT(secret string) {
	if secret == "" {
		panic("JWT secret is not set")
	}
	jwtSecret = []byte(secret)
}

func GenerateJWT(tgID int64, firstName string) (string, error) {
	now := time.Now().Unix()
	claims := jwt.MapClaims{
		"tg_id":      tgID,
		"first_name": firstName,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
		"iat":        now,
		"nbf":        now,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseJWT returns the Telegram id and first name from a valid token.
func ParseJWT(tokenString string) (int64, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid claims")
	}

	now := time.Now().Unix()
	if exp, ok := claims["exp"].(float64); ok {
		if int64(exp) < now {
			return 0, "", errors.New("token expired")
		}
	}
	if nbf, ok := claims["nbf"].(float64); ok {
		if int64(nbf) > now {
			return 0, "", errors.New("token not valid yet")
		}
	}

	tgID, ok := claims["tg_id"].(float64)
	if !ok {
		return 0, "", errors.New("tg_id not found")
	}
	firstName, _ := claims["first_name"].(string)

	return int64(tgID), firstName, nil
}
