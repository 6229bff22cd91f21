package credential

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	HeaderName = "Authorization"
	// Browsers cannot attach headers to a WebSocket upgrade, so the query string and the
	// cookie are accepted as fallbacks.
	QueryParamName = "access_token"
	CookieName     = "access_token"
)

// FromRequest returns the raw credential exactly as the client sent it, prefix included.
// An empty string means the request carried no credential at all.
func FromRequest(c *gin.Context) string {
	if h := strings.TrimSpace(c.GetHeader(HeaderName)); h != "" {
		return h
	}

	if q := strings.TrimSpace(c.Query(QueryParamName)); q != "" {
		return q
	}

	token, _ := c.Cookie(CookieName)
	return strings.TrimSpace(token)
}
