package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	"github.com/giancarlo349/G-OS3/internal/usecase"
	"github.com/giancarlo349/G-OS3/pkg"
)

const userContextKey = "current_user"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid access token", http.StatusUnauthorized)

// RequireAuth resolves the operator from the Authorization bearer token and
// aborts with 401 when it cannot.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		user, err := auth.ParseToken(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the operator stored by RequireAuth. Handlers behind
// the middleware can rely on ok being true.
func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return entities.User{}, false
	}
	user, ok := v.(entities.User)
	return user, ok
}
