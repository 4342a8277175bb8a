package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSecret string,
	analyzeH *AnalyzeHandler,
	followupH *FollowupHandler,
	assessmentH *AssessmentHandler,
	catalogH *CatalogHandler,
	healthH *HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery, JSON content-type y metricas.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware(), metricsMiddleware())

	// La identidad es opcional: sin token el flujo sigue como anonimo.
	r.Use(IdentityMiddleware(jwtSecret))

	r.POST("/analyze", analyzeH.Analyze)
	r.POST("/followup", followupH.Followup)

	assessments := r.Group("/assessments")
	assessments.POST("", assessmentH.Save)
	assessments.GET("", assessmentH.List)

	cat := r.Group("/catalog")
	cat.GET("/verbs", catalogH.Verbs)
	cat.GET("/industries", catalogH.Industries)

	r.GET("/healthz", healthH.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
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
