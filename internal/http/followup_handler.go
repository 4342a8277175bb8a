package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lumipath/internal/service"
)

// FollowupHandler genera preguntas de seguimiento sobre la experiencia laboral.
type FollowupHandler struct {
	logger *zap.Logger
	svc    *service.FollowupService
}

func NewFollowupHandler(logger *zap.Logger, svc *service.FollowupService) *FollowupHandler {
	return &FollowupHandler{logger: logger, svc: svc}
}

type followupRequest struct {
	ExperienceText string   `json:"experienceText"`
	Verbs          []string `json:"verbs"`
}

// Followup maneja POST /followup.
func (h *FollowupHandler) Followup(c *gin.Context) {
	var req followupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid followup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	questions, err := h.svc.GenerateQuestions(c.Request.Context(), req.ExperienceText, req.Verbs)
	if err != nil {
		var malformed *service.MalformedResponseError
		switch {
		case errors.Is(err, service.ErrEmptyExperience):
			c.JSON(http.StatusBadRequest, gin.H{"error": "experienceText is required"})
		case errors.As(err, &malformed):
			h.logger.Error("followup response malformed", zap.String("raw", malformed.Raw))
			c.JSON(http.StatusBadGateway, gin.H{"error": "followup output is not valid JSON", "raw": malformed.Raw})
		default:
			h.logger.Error("followup generation failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "followup service unavailable"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}
