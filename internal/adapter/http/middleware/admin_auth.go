package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"instant_offer/pkg"

	"github.com/gin-gonic/gin"
)

const AdminKeyHeader = "X-Admin-Key"

// AdminKeyAuth guards operator routes with a static API key. An empty
// configured key locks the routes entirely.
func AdminKeyAuth(apiKey string) gin.HandlerFunc {
	unauthorized := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized admin access", http.StatusUnauthorized)
	return func(c *gin.Context) {
		presented := strings.TrimSpace(c.GetHeader(AdminKeyHeader))
		if apiKey == "" || presented == "" ||
			subtle.ConstantTimeCompare([]byte(presented), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(unauthorized.HTTPStatus, unauthorized.ToHTTPError())
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
