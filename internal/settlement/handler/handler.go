package handler

import (
	"errors"
	"net/http"

	"referral-server/internal/apierrors"
	"referral-server/internal/observability"
	"referral-server/internal/settlement/processor"
	"referral-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.SettlementProcessor
	logger    *observability.Logger
}

func New(processor processor.SettlementProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

func actor(c *gin.Context) (uuid.UUID, string, bool) {
	actorIDStr, exists := c.Get("Actor-ID")
	if !exists {
		apierrors.Unauthorized(c, "missing actor identity")
		return uuid.Nil, "", false
	}
	actorID, err := uuid.Parse(actorIDStr.(string))
	if err != nil {
		apierrors.Unauthorized(c, "invalid actor identity")
		return uuid.Nil, "", false
	}
	role, _ := c.Get("Actor-Role")
	actorRole, _ := role.(string)
	return actorID, actorRole, true
}

// HandleListRewards handles GET /api/rewards with an optional status filter.
func (h *Handler) HandleListRewards(c *gin.Context) {
	ctx := c.Request.Context()

	actorID, _, ok := actor(c)
	if !ok {
		return
	}

	var status *string
	if statusParam := c.Query("status"); statusParam != "" {
		status = &statusParam
	}

	rewards, err := h.processor.ListRewards(ctx, actorID, status)
	if err != nil {
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

// HandleClaimReward handles POST /api/rewards/:id/claim
func (h *Handler) HandleClaimReward(c *gin.Context) {
	ctx := c.Request.Context()

	actorID, _, ok := actor(c)
	if !ok {
		return
	}

	rewardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_REWARD_ID", "invalid reward id")
		return
	}

	reward, err := h.processor.Claim(ctx, rewardID, actorID)
	if err != nil {
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, reward)
}

// HandleRewardSummary handles GET /api/rewards/summary
func (h *Handler) HandleRewardSummary(c *gin.Context) {
	ctx := c.Request.Context()

	actorID, _, ok := actor(c)
	if !ok {
		return
	}

	totals, err := h.processor.Summary(ctx, actorID)
	if err != nil {
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"credited_amount": totals.CreditedAmount,
		"pending_amount":  totals.PendingAmount,
		"credited_count":  totals.CreditedCount,
		"pending_count":   totals.PendingCount,
	})
}

// SettleCampaignRequest represents the admin request for a manual campaign
// bonus grant.
type SettleCampaignRequest struct {
	UserID      uuid.UUID `json:"user_id" binding:"required"`
	UserRole    string    `json:"user_role" binding:"required"`
	CampaignID  uuid.UUID `json:"campaign_id" binding:"required"`
	Amount      *float64  `json:"amount,omitempty"`
	Description *string   `json:"description,omitempty"`
}

// HandleSettleCampaign handles POST /api/admin/rewards/campaign
func (h *Handler) HandleSettleCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	_, actorRole, ok := actor(c)
	if !ok {
		return
	}
	if actorRole != store.RoleAdmin {
		apierrors.Forbidden(c, "ADMIN_ONLY", "campaign settlement requires an admin actor")
		return
	}

	var req SettleCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind settle campaign request", err)
		apierrors.BadRequest(c, "INVALID_REQUEST", "invalid request body")
		return
	}

	reward, err := h.processor.SettleCampaign(ctx, req.UserID, req.UserRole, req.CampaignID,
		req.Amount, req.Description)
	if err != nil {
		h.handleProcessorError(c, err)
		return
	}
	if reward == nil {
		apierrors.UnprocessableEntity(c, "CAMPAIGN_NOT_ELIGIBLE",
			"campaign is missing, not running, or at capacity")
		return
	}

	c.JSON(http.StatusCreated, reward)
}

func (h *Handler) handleProcessorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrRewardNotFound), errors.Is(err, store.ErrNotFound):
		apierrors.NotFound(c, "reward not found")
	case errors.Is(err, processor.ErrNotRewardOwner):
		apierrors.Forbidden(c, "NOT_REWARD_OWNER", "reward belongs to another user")
	case errors.Is(err, processor.ErrRewardNotClaimable):
		apierrors.UnprocessableEntity(c, "REWARD_NOT_CLAIMABLE", "reward is not claimable")
	case errors.Is(err, processor.ErrInvalidStatus):
		apierrors.BadRequest(c, "INVALID_STATUS", "invalid reward status filter")
	case errors.Is(err, processor.ErrCreditFailed):
		apierrors.ServiceUnavailable(c, "CREDIT_FAILED",
			"reward credit failed, the reward remains pending and can be retried", err)
	default:
		apierrors.InternalError(c, err)
	}
}
