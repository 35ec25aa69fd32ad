package cookie

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	accessTokenCookie = "access_token"
	cookiePath        = "/"
)

// SetAccessToken stores the session token in an HttpOnly cookie. Secure is
// left to the proxy/TLS layer in front of the service.
func SetAccessToken(c *gin.Context, token string, maxAge time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessTokenCookie, token, int(maxAge.Seconds()), cookiePath, "", false, true)
}

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(accessTokenCookie)
	if err != nil {
		return ""
	}
	return token
}

func ClearAccessToken(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessTokenCookie, "", -1, cookiePath, "", false, true)
}
