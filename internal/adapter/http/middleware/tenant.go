package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omnicrm/pkg/apierrors"
)

// UserHeader carries the tenant identity set by the authenticating proxy in
// front of this service. Requests without it are rejected before any handler
// runs.
const UserHeader = "X-User-ID"

func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserHeader)
		if userID == "" {
			lang := GetLang(c)
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingUserID, lang),
			)
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get("user_id"); exists {
		if s, ok := userID.(string); ok {
			return s
		}
	}
	return ""
}
