package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader is the header carrying the client credential.
const APIKeyHeader = "x-api-key"

// APIKeyAuth gates requests on the x-api-key header. An empty key list
// disables the check entirely (development mode). A missing key is 401, a
// key outside the configured set is 403.
func APIKeyAuth(keys []string) gin.HandlerFunc {
	keySet := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		keySet[k] = struct{}{}
	}

	return func(c *gin.Context) {
		if len(keySet) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			c.Header("WWW-Authenticate", "ApiKey")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing API key. Provide 'x-api-key' header."})
			c.Abort()
			return
		}

		if _, ok := keySet[key]; !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid API key"})
			c.Abort()
			return
		}

		c.Next()
	}
}
