package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"auth-api/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	authH *AuthHandler,
	jwtSvc *service.JWTService,
	allowOrigins string,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery, CORS y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware(allowOrigins), jsonContentTypeMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Message: "Welcome to the Authentication API! Visit /api-docs/json for documentation.",
			Success: true,
		})
	})
	r.GET("/hello", func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{Message: "Hello!", Success: true})
	})
	r.GET("/api-docs/json", serveOpenAPIDoc)

	auth := r.Group("/auth")
	auth.POST("/signup", authH.Signup)
	auth.POST("/signin", authH.Signin)

	protected := auth.Group("")
	protected.Use(JWTAuthMiddleware(jwtSvc))
	protected.POST("/logout", authH.Logout)
	protected.GET("/me", authH.Me)

	return r
}

// corsMiddleware habilita CORS; con "*" se permite cualquier origen.
func corsMiddleware(allowOrigins string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if allowOrigins == "" || allowOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(allowOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	return cors.New(corsConfig)
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
