package handler

import (
	"errors"
	"net/http"
	"time"

	"referral-server/internal/apierrors"
	"referral-server/internal/codes/processor"
	"referral-server/internal/observability"
	"referral-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CodeProcessor
	logger    *observability.Logger
}

func New(processor processor.CodeProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// actor pulls the authenticated actor out of the gin context set by the
// actor middleware.
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

// IssueCodeRequest represents the HTTP request for issuing a referral code
type IssueCodeRequest struct {
	Code           string     `json:"code,omitempty"`
	BonusAmount    float64    `json:"bonus_amount,omitempty"`
	BonusType      string     `json:"bonus_type,omitempty"`
	MinOrderAmount float64    `json:"min_order_amount,omitempty"`
	MaxUsage       int        `json:"max_usage,omitempty"`
	CampaignID     *uuid.UUID `json:"campaign_id,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}

// HandleIssueCode handles POST /api/codes
func (h *Handler) HandleIssueCode(c *gin.Context) {
	ctx := c.Request.Context()

	actorID, actorRole, ok := actor(c)
	if !ok {
		return
	}

	var req IssueCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind issue code request", err)
		apierrors.BadRequest(c, "INVALID_REQUEST", "invalid request body")
		return
	}

	code, err := h.processor.Issue(ctx, processor.IssueRequest{
		OwnerID:        actorID,
		OwnerRole:      actorRole,
		Code:           req.Code,
		BonusAmount:    req.BonusAmount,
		BonusType:      req.BonusType,
		MinOrderAmount: req.MinOrderAmount,
		MaxUsage:       req.MaxUsage,
		CampaignID:     req.CampaignID,
		ExpiresAt:      req.ExpiresAt,
	})
	if err != nil {
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusCreated, code)
}

// HandleResolveCode handles GET /api/codes/:code
func (h *Handler) HandleResolveCode(c *gin.Context) {
	ctx := c.Request.Context()

	code, err := h.processor.Resolve(ctx, c.Param("code"))
	if err != nil {
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, code)
}

// HandleListCodes handles GET /api/codes
func (h *Handler) HandleListCodes(c *gin.Context) {
	ctx := c.Request.Context()

	actorID, actorRole, ok := actor(c)
	if !ok {
		return
	}

	codes, err := h.processor.ListByOwner(ctx, actorID, actorRole)
	if err != nil {
		h.handleProcessorError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"codes": codes})
}

// HandleDeactivateCode handles DELETE /api/codes/:id
func (h *Handler) HandleDeactivateCode(c *gin.Context) {
	ctx := c.Request.Context()

	actorID, actorRole, ok := actor(c)
	if !ok {
		return
	}

	codeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_CODE_ID", "invalid code id")
		return
	}

	if err := h.processor.Deactivate(ctx, codeID, actorID, actorRole); err != nil {
		h.handleProcessorError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) handleProcessorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCodeNotFound), errors.Is(err, store.ErrNotFound):
		apierrors.NotFound(c, "referral code not found")
	case errors.Is(err, processor.ErrInvalidRole):
		apierrors.BadRequest(c, "INVALID_ROLE", "invalid owner role")
	case errors.Is(err, processor.ErrInvalidBonusTerms):
		apierrors.BadRequest(c, "INVALID_BONUS_TERMS", "invalid bonus terms")
	case errors.Is(err, processor.ErrCodeTooLong):
		apierrors.BadRequest(c, "CODE_TOO_LONG", "code exceeds maximum length")
	case errors.Is(err, processor.ErrCodeConflict):
		apierrors.Conflict(c, "CODE_CONFLICT", "an active referral code already exists")
	case errors.Is(err, processor.ErrRateLimited):
		apierrors.TooManyRequests(c, "code issuance rate limit exceeded")
	case errors.Is(err, processor.ErrNotCodeOwner):
		apierrors.Forbidden(c, "NOT_CODE_OWNER", "only the owner or an admin can deactivate a code")
	default:
		apierrors.InternalError(c, err)
	}
}
