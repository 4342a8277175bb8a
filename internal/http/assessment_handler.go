package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lumipath/internal/service"
)

// AssessmentHandler expone el historial persistido de diagnósticos.
type AssessmentHandler struct {
	logger *zap.Logger
	svc    *service.AssessmentService
}

func NewAssessmentHandler(logger *zap.Logger, svc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{logger: logger, svc: svc}
}

// Save maneja POST /assessments. Sin sesión el guardado se omite sin error,
// igual que el resto del flujo anónimo.
func (h *AssessmentHandler) Save(c *gin.Context) {
	ownerID := OwnerID(c)
	if ownerID == "" {
		c.JSON(http.StatusOK, gin.H{"ok": false, "skipped": true})
		return
	}

	var req service.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid save request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	saved, err := h.svc.Save(c.Request.Context(), ownerID, req)
	if err != nil {
		h.logger.Error("save assessment failed", zap.Error(err), zap.String("owner_id", ownerID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save assessment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "assessment": saved})
}

// List maneja GET /assessments.
func (h *AssessmentHandler) List(c *gin.Context) {
	ownerID := OwnerID(c)
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	items, err := h.svc.History(c.Request.Context(), ownerID)
	if err != nil {
		h.logger.Error("list assessments failed", zap.Error(err), zap.String("owner_id", ownerID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list assessments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessments": items})
}
