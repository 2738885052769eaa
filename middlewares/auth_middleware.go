package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ordering-app/database"
	"ordering-app/models"
	"ordering-app/utils"
)

const authUserKey = "authUser"
const authTokenKey = "authToken"

// AuthRequired validates the bearer token. The session registry is asked
// whether the signature is still active before the claims are decoded;
// claims are taken from the token itself, never re-fetched from storage.
func AuthRequired(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, token, err := authenticate(c, db)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		c.Set(authUserKey, claims.AuthUser())
		c.Set(authTokenKey, token)
		c.Next()
	}
}

// OptionalAuth decodes claims when a valid active token is present and
// continues anonymously otherwise.
func OptionalAuth(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, token, err := authenticate(c, db); err == nil {
			c.Set(authUserKey, claims.AuthUser())
			c.Set(authTokenKey, token)
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, db *database.Database) (*utils.AuthClaims, string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, "", errors.New("authorization header missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if utils.TokenSignature(tokenString) == "" {
		return nil, "", errors.New("malformed token")
	}

	if !db.IsLoggedIn(tokenString) {
		return nil, "", errors.New("unauthorized")
	}

	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		return nil, "", err
	}
	return claims, tokenString, nil
}

// CurrentUser returns the decoded claims set by AuthRequired/OptionalAuth.
func CurrentUser(c *gin.Context) (models.AuthUser, bool) {
	value, exists := c.Get(authUserKey)
	if !exists {
		return models.AuthUser{}, false
	}
	user, ok := value.(models.AuthUser)
	return user, ok
}

// CurrentToken returns the raw bearer token for the request.
func CurrentToken(c *gin.Context) (string, bool) {
	value, exists := c.Get(authTokenKey)
	if !exists {
		return "", false
	}
	token, ok := value.(string)
	return token, ok
}
