package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rogerio-castellano/warehouse-tracker/internal/models"
)

var jwtSecret = []byte("super-secret-key")

// SetSecret overrides the signing secret; called from main with the
// configured value.
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

func GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(15 * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	})
}
