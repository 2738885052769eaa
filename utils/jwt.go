package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ordering-app/models"
)

var jwtSecret []byte

// InitJWT sets the signing secret. Called once from main with the configured
// value; falls back to a development secret when empty.
func InitJWT(secret string) {
	if secret == "" {
		InfoLogger.Printf("Warning: JWT_SECRET not set, using default development secret")
		secret = "DevSecretOrderingApp"
	}
	jwtSecret = []byte(secret)
}

type AuthClaims struct {
	UserID uint              `json:"user_id"`
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Roles  []models.UserRole `json:"roles"`
	jwt.RegisteredClaims
}

// AuthUser converts the decoded claims into the actor shape the
// authorization policy works with.
func (c *AuthClaims) AuthUser() models.AuthUser {
	return models.AuthUser{
		ID:    c.UserID,
		Name:  c.Name,
		Email: c.Email,
		Roles: c.Roles,
	}
}

func GenerateToken(user models.User) (string, error) {
	claims := &AuthClaims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Roles:  user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "ordering-app",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	// Roles are a closed set; reject anything else at decode time.
	for _, role := range claims.Roles {
		if !models.ValidRole(role.Role) {
			return nil, errors.New("invalid role in token claims")
		}
	}

	return claims, nil
}

// TokenSignature returns the third dot-delimited segment of a bearer token,
// the sole key the session registry stores. A token with fewer than three
// segments yields "".
func TokenSignature(token string) string {
	parts := strings.Split(token, ".")
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}
