package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/helpers"
)

// Authentication guards the admin-only routes (reports, cleanup, business
// status, catalog mutations) with the tenant-admin token.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Request.Header.Get("token")
		if clientToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no authorization token provided"})
			c.Abort()
			return
		}
		claims, msg := helpers.ValidateToken(clientToken)
		if msg != "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			c.Abort()
			return
		}
		c.Set("businessId", claims.BusinessID)
		c.Set("name", claims.Name)
		c.Next()
	}
}
