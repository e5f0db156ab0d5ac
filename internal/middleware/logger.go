package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger middleware logs one line per request: method, path, status,
// latency, client IP and body size
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		log.Printf("%s %s -> %d (%v, %dB) from %s%s",
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start).Round(time.Microsecond),
			c.Writer.Size(),
			c.ClientIP(),
			errSuffix(c),
		)
	}
}

func errSuffix(c *gin.Context) string {
	if len(c.Errors) == 0 {
		return ""
	}
	return " errors: " + c.Errors.String()
}
