package middlewares

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/herocatalog/superhero-catalog/config"
)

func CORSMiddleware(cfg *config.EnvConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORS.AllowDomains, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
