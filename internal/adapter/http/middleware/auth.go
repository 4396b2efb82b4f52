package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gyeonjeok/internal/usecase/interfaces"
	"gyeonjeok/pkg"
)

// ContextUserIDKey is where RequireAuth stores the resolved user id.
const ContextUserIDKey = "authUserID"

var (
	errNoToken = pkg.NewDomainErrorSimple(
		"UNAUTHENTICATED", "unauthenticated, no token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple(
		"UNAUTHENTICATED", "unauthenticated, invalid token", http.StatusUnauthorized)
)

// RequireAuth extracts the bearer token, exchanges it for a user identity
// and scopes the request to that user. Missing token and rejected token get
// distinct 401 messages; any verifier error counts as a rejected token.
func RequireAuth(idp interfaces.IIdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(errNoToken.HTTPStatus, errNoToken.ToHTTPError())
			return
		}

		identity, err := idp.VerifyToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(ContextUserIDKey, identity.ID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserIDKey)
}

func bearerToken(header string) string {
	fields := strings.Fields(header)
	if len(fields) == 2 && strings.EqualFold(fields[0], "bearer") {
		return fields[1]
	}
	return ""
}
