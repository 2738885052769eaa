package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordering-app/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	InitJWT("test-secret")

	user := models.User{
		ID:    42,
		Name:  "d",
		Email: "d@test.com",
		Roles: []models.UserRole{
			{Role: models.RoleDiner},
			{Role: models.RoleFranchisee, ObjectID: 7},
		},
	}

	token, err := GenerateToken(user)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "d@test.com", claims.Email)
	require.Len(t, claims.Roles, 2)
	assert.Equal(t, uint(7), claims.Roles[1].ObjectID)

	actor := claims.AuthUser()
	assert.True(t, actor.IsRole(models.RoleFranchisee))
	assert.False(t, actor.IsRole(models.RoleAdmin))
}

func TestParseTokenRejectsUnknownRole(t *testing.T) {
	InitJWT("test-secret")

	claims := &AuthClaims{
		UserID: 1,
		Roles:  []models.UserRole{{Role: "superuser"}},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	InitJWT("test-secret")
	token, err := GenerateToken(models.User{ID: 1})
	require.NoError(t, err)

	InitJWT("different-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestTokenSignature(t *testing.T) {
	assert.Equal(t, "sig", TokenSignature("header.payload.sig"))
	assert.Equal(t, "", TokenSignature("header.payload"))
	assert.Equal(t, "", TokenSignature("opaque"))
	assert.Equal(t, "", TokenSignature(""))

	InitJWT("test-secret")
	token, err := GenerateToken(models.User{ID: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, TokenSignature(token))
}
