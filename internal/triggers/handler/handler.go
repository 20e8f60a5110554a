package handler

import (
	"net/http"

	"referral-server/internal/apierrors"
	"referral-server/internal/observability"
	"referral-server/internal/triggers/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor *processor.TriggerProcessor
	logger    *observability.Logger
}

func New(triggerProcessor *processor.TriggerProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: triggerProcessor,
		logger:    logger,
	}
}

// TriggerRequest represents a business event delivered over HTTP instead of
// the event stream. Used by internal services without a Kafka producer.
type TriggerRequest struct {
	UserID      uuid.UUID              `json:"user_id" binding:"required"`
	TriggerType string                 `json:"trigger_type" binding:"required"`
	Payload     map[string]interface{} `json:"payload"`
}

// HandleTrigger handles POST /api/internal/triggers
func (h *Handler) HandleTrigger(c *gin.Context) {
	ctx := c.Request.Context()

	var req TriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind trigger request", err)
		apierrors.BadRequest(c, "INVALID_REQUEST", "invalid request body")
		return
	}

	payload := processor.ParsePayload(req.Payload)
	completed, err := h.processor.ProcessTrigger(ctx, req.UserID, req.TriggerType, payload)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	if completed == nil {
		completed = []processor.CompletedReferral{}
	}
	c.JSON(http.StatusOK, gin.H{"completed": completed})
}
