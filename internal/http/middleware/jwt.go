package middleware

import (
	"net/http"
	"strings"

	"github.com/89089599151/designer-clicker-bot/internal/service"

	"github.com/gin-gonic/gin"
)

// JWT validates the Bearer token and puts tg_id / first_name into the context.
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		tgID, firstName, err := service.ParseJWT(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("tg_id", tgID)
		c.Set("first_name", firstName)
		c.Next()
	}
}
