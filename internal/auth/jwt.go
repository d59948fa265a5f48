package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret string

func InitJWTSecret() error {
	jwtSecret = os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	return nil
}

// GenerateJWT issues a token whose subject is the user's opaque
// external identifier, never the internal database ID.
func GenerateJWT(externalID, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   externalID,
		"email": email,
		"exp":   time.Now().Add(time.Hour * 168).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// VerifyJWT validates the token and returns the external subject
// identifier carried in its "sub" claim.
func VerifyJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid or expired token")
	}

	subject, err := token.Claims.GetSubject()

	if err != nil || subject == "" {
		return "", fmt.Errorf("missing subject in token claims")
	}

	return subject, nil
}
