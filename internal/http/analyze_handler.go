package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lumipath/internal/service"
)

// AnalyzeHandler atiende el endpoint principal de diagnóstico.
type AnalyzeHandler struct {
	logger  *zap.Logger
	svc     *service.AssessmentService
	limiter service.AnalyzeRateLimiter
}

func NewAnalyzeHandler(logger *zap.Logger, svc *service.AssessmentService, limiter service.AnalyzeRateLimiter) *AnalyzeHandler {
	return &AnalyzeHandler{logger: logger, svc: svc, limiter: limiter}
}

// Analyze maneja POST /analyze.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req service.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	// El límite aplica por dueño autenticado o por IP del cliente.
	limitKey := OwnerID(c)
	if limitKey == "" {
		limitKey = c.ClientIP()
	}
	if h.limiter != nil && !h.limiter.Allow(limitKey) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many assessments, try again later"})
		return
	}

	resp, err := h.svc.Analyze(c.Request.Context(), OwnerID(c), req)
	if err != nil {
		var malformed *service.MalformedResponseError
		switch {
		case errors.Is(err, service.ErrVerbCount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "selecciona entre 10 y 100 verbos"})
		case errors.As(err, &malformed):
			h.logger.Error("narrative response malformed", zap.String("raw", malformed.Raw))
			c.JSON(http.StatusBadGateway, gin.H{"error": "narrative output is not valid JSON", "raw": malformed.Raw})
		case errors.Is(err, service.ErrNarrativeUnavailable):
			h.logger.Error("narrative service failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "narrative service unavailable"})
		default:
			h.logger.Error("analyze failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not run assessment"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
