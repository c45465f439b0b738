package cors

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/edugest/edugest-api/pkg/middleware/requestid"
)

// New returns a CORS middleware that honors a list of allowed origins.
// An empty list allows every origin, which is what the bundled dashboard expects in development.
func New(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
		cfg.AllowCredentials = true
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Authorization", "Content-Type", "X-Requested-With", requestid.HeaderKey}
	cfg.ExposeHeaders = []string{requestid.HeaderKey}
	cfg.MaxAge = 10 * time.Minute
	return cors.New(cfg)
}
