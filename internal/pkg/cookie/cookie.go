package cookie

import (
	"net/http"
	"time"

	"folio-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName = "access_token"
	ClientIDCookieName    = "client_id"
)

// client_id lives for a year; it only scopes likes and the submit cooldown.
const clientIDMaxAge = 365 * 24 * time.Hour

func SetTokenCookie(c *gin.Context, cfg config.CookieConfig, accessToken string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		AccessTokenCookieName,
		accessToken,
		int(expiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearTokenCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		AccessTokenCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func SetClientID(c *gin.Context, cfg config.CookieConfig, clientID string) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		ClientIDCookieName,
		clientID,
		int(clientIDMaxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetClientID(c *gin.Context) string {
	id, _ := c.Cookie(ClientIDCookieName)
	return id
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
