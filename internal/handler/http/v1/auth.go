package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/disaster_response_system/internal/identity"
	"github.com/sirupsen/logrus"
)

const identityContextKey = "identity.user"

// IdentityMiddleware - middleware аутентификации по заголовку X-User-ID.
// Идентификатор разрешается через провайдера; неизвестные отклоняются с 401.
func IdentityMiddleware(provider identity.Provider, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			log.Warn("User ID missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid user"})
			return
		}

		user, err := provider.Resolve(c.Request.Context(), userID)
		if err != nil {
			log.Warnf("Unknown user id provided: %s", userID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid user"})
			return
		}

		c.Set(identityContextKey, user)
		c.Next()
	}
}

// CallerIdentity возвращает идентифицированного пользователя запроса, если он есть
func CallerIdentity(c *gin.Context) (identity.User, bool) {
	v, ok := c.Get(identityContextKey)
	if !ok {
		return identity.User{}, false
	}
	user, ok := v.(identity.User)
	return user, ok
}
