package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"impactcat/internal/authz"
	apperrors "impactcat/internal/errors"
)

// RequireLevel returns a Gin middleware that rejects callers whose role
// does not satisfy the given permission level under the policy. It must
// run after AuthMiddleware. Rejection happens before any store access
// and produces no audit entry.
func RequireLevel(policy *authz.Policy, level string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    apperrors.ErrUnauthorized.Code,
					"message": apperrors.ErrUnauthorized.Message,
				},
			})
			return
		}

		if !policy.IsAuthorized(role, level) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{
					"code":    apperrors.ErrForbidden.Code,
					"message": apperrors.ErrForbidden.Message,
				},
			})
			return
		}

		c.Next()
	}
}
