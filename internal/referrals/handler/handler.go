package handler

import (
	"errors"
	"net/http"

	"referral-server/internal/apierrors"
	"referral-server/internal/observability"
	"referral-server/internal/referrals/processor"
	"referral-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ReferralProcessor
	logger    *observability.Logger
}

func New(processor processor.ReferralProcessor, logger *observability.Logger) Handler {
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

// CreateReferralRequest represents the HTTP request for redeeming a code
type CreateReferralRequest struct {
	ReferralCode string `json:"referral_code" binding:"required"`
}

// HandleCreateReferral handles POST /api/referrals. The actor is the
// referee redeeming someone else's code.
func (h *Handler) HandleCreateReferral(c *gin.Context) {
	ctx := c.Request.Context()

	actorID, actorRole, ok := actor(c)
	if !ok {
		return
	}

	var req CreateReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind create referral request", err)
		apierrors.BadRequest(c, "INVALID_REQUEST", "invalid request body")
		return
	}

	referral, err := h.processor.Create(ctx, processor.CreateRequest{
		ReferrerCode: req.ReferralCode,
		RefereeID:    actorID,
		RefereeRole:  actorRole,
	})
	if err != nil {
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, referral)
}

// HandleGetReferral handles GET /api/referrals/:id
func (h *Handler) HandleGetReferral(c *gin.Context) {
	ctx := c.Request.Context()

	referralID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_REFERRAL_ID", "invalid referral id")
		return
	}

	referral, err := h.processor.Get(ctx, referralID)
	if err != nil {
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, referral)
}

// HandleListReferrals handles GET /api/referrals. Lists the actor's
// referrals as referrer.
func (h *Handler) HandleListReferrals(c *gin.Context) {
	ctx := c.Request.Context()

	actorID, _, ok := actor(c)
	if !ok {
		return
	}

	referrals, err := h.processor.ListByReferrer(ctx, actorID)
	if err != nil {
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"referrals": referrals})
}

// HandleCancelReferral handles POST /api/admin/referrals/:id/cancel
func (h *Handler) HandleCancelReferral(c *gin.Context) {
	ctx := c.Request.Context()

	_, actorRole, ok := actor(c)
	if !ok {
		return
	}

	referralID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_REFERRAL_ID", "invalid referral id")
		return
	}

	referral, err := h.processor.Cancel(ctx, actorRole, referralID)
	if err != nil {
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, referral)
}

func (h *Handler) handleProcessorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrReferralNotFound), errors.Is(err, store.ErrNotFound):
		apierrors.NotFound(c, "referral not found")
	case errors.Is(err, processor.ErrInvalidCode):
		apierrors.NotFound(c, "referral code not found")
	case errors.Is(err, processor.ErrInvalidRole):
		apierrors.BadRequest(c, "INVALID_ROLE", "invalid referee role")
	case errors.Is(err, processor.ErrSelfReferral):
		apierrors.Conflict(c, "SELF_REFERRAL", "self-referral is not allowed")
	case errors.Is(err, processor.ErrDuplicateReferral):
		apierrors.Conflict(c, "DUPLICATE_REFERRAL", "referral already exists")
	case errors.Is(err, processor.ErrAdminOnly):
		apierrors.Forbidden(c, "ADMIN_ONLY", "cancellation requires an admin actor")
	default:
		apierrors.InternalError(c, err)
	}
}
