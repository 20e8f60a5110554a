package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"referral-server/internal/apierrors"
	"referral-server/internal/campaigns/processor"
	"referral-server/internal/observability"
	"referral-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

func actorRole(c *gin.Context) string {
	role, _ := c.Get("Actor-Role")
	roleStr, _ := role.(string)
	return roleStr
}

// CreateCampaignRequest represents the admin request for creating a campaign
type CreateCampaignRequest struct {
	Name            string    `json:"name" binding:"required"`
	Type            string    `json:"type" binding:"required"`
	TargetRole      string    `json:"target_role" binding:"required"`
	BonusAmount     float64   `json:"bonus_amount" binding:"required"`
	BonusType       string    `json:"bonus_type" binding:"required"`
	MinRequirement  float64   `json:"min_requirement,omitempty"`
	MaxParticipants *int      `json:"max_participants,omitempty"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
}

// HandleCreateCampaign handles POST /api/admin/campaigns
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind create campaign request", err)
		apierrors.BadRequest(c, "INVALID_REQUEST", "invalid request body")
		return
	}

	campaign, err := h.processor.Create(ctx, actorRole(c), processor.CreateRequest{
		Name:            req.Name,
		Type:            req.Type,
		TargetRole:      req.TargetRole,
		BonusAmount:     req.BonusAmount,
		BonusType:       req.BonusType,
		MinRequirement:  req.MinRequirement,
		MaxParticipants: req.MaxParticipants,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	})
	if err != nil {
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleGetCampaign handles GET /api/campaigns/:id
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_CAMPAIGN_ID", "invalid campaign id")
		return
	}

	campaign, err := h.processor.Get(ctx, campaignID)
	if err != nil {
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleListCampaigns handles GET /api/campaigns
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	campaigns, err := h.processor.List(ctx, limit, offset)
	if err != nil {
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// HandleActivateCampaign handles POST /api/admin/campaigns/:id/activate
func (h *Handler) HandleActivateCampaign(c *gin.Context) {
	h.setActive(c, true)
}

// HandleDeactivateCampaign handles POST /api/admin/campaigns/:id/deactivate
func (h *Handler) HandleDeactivateCampaign(c *gin.Context) {
	h.setActive(c, false)
}

func (h *Handler) setActive(c *gin.Context, active bool) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_CAMPAIGN_ID", "invalid campaign id")
		return
	}

	if err := h.processor.SetActive(ctx, actorRole(c), campaignID, active); err != nil {
		h.handleProcessorError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) handleProcessorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound), errors.Is(err, store.ErrNotFound):
		apierrors.NotFound(c, "campaign not found")
	case errors.Is(err, processor.ErrInvalidCampaign):
		apierrors.BadRequest(c, "INVALID_CAMPAIGN", "invalid campaign definition")
	case errors.Is(err, processor.ErrAdminOnly):
		apierrors.Forbidden(c, "ADMIN_ONLY", "campaign management requires an admin actor")
	default:
		apierrors.InternalError(c, err)
	}
}
