package middleware

import (
	"folio-api/internal/pkg/config"
	"folio-api/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxClientIDKey = "client_id"

// ClientID guarantees every caller a stable anonymous identity: a uuid
// cookie assigned on first contact. Per-client state (liked items,
// submit cooldown, picker and checker sessions) keys off it.
func ClientID(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := cookie.GetClientID(c)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
			cookie.SetClientID(c, cfg.Cookie, id)
		}
		c.Set(ctxClientIDKey, id)
		c.Next()
	}
}

func GetClientID(c *gin.Context) string {
	return c.GetString(ctxClientIDKey)
}
