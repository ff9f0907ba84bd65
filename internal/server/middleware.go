package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"codeberg.org/snonux/vocabmt/internal/auth"
)

// Gate validates API keys
type Gate interface {
	Validate(ctx context.Context, apiKey string) error
}

// RequireAPIKey rejects requests whose X-API-Key the gate does not accept.
// Gate errors of any kind are answered with 401.
func RequireAPIKey(gate Gate, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		if err := gate.Validate(ctx, c.GetHeader(auth.APIKeyHeader)); err != nil {
			log.Printf("auth: rejected %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
