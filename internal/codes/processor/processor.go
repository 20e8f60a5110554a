package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"referral-server/internal/config"
	"referral-server/internal/observability"
	"referral-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrCodeNotFound      = errors.New("referral code not found")
	ErrCodeConflict      = errors.New("owner already holds an active referral code")
	ErrInvalidRole       = errors.New("invalid owner role")
	ErrInvalidBonusTerms = errors.New("invalid bonus terms")
	ErrCodeTooLong       = errors.New("code exceeds maximum length")
	ErrRateLimited       = errors.New("code issuance rate limit exceeded")
	ErrNotCodeOwner      = errors.New("only the owner or an admin can deactivate a code")
)

const (
	codeRandomLength = 6
	codeAlphabet     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	maxGenerateTries = 3
	maxCodeLength    = 20
)

// rolePrefixes keys the three-letter code prefix by owner role.
var rolePrefixes = map[string]string{
	store.RoleCustomer:   "CUS",
	store.RoleDriver:     "DRV",
	store.RoleRestaurant: "RST",
}

type CodeProcessor struct {
	store     CodeStore
	limiter   RateLimiter
	engineCfg config.EngineConfig
	logger    *observability.Logger
}

func New(codeStore CodeStore, limiter RateLimiter, engineCfg config.EngineConfig, logger *observability.Logger) CodeProcessor {
	return CodeProcessor{
		store:     codeStore,
		limiter:   limiter,
		engineCfg: engineCfg,
		logger:    logger,
	}
}

// IssueRequest carries the optional overrides for a new code. Zero values
// fall back to the role defaults from configuration.
type IssueRequest struct {
	OwnerID        uuid.UUID
	OwnerRole      string
	Code           string
	BonusAmount    float64
	BonusType      string
	MinOrderAmount float64
	MaxUsage       int
	CampaignID     *uuid.UUID
	ExpiresAt      *time.Time
}

// Issue creates a referral code for the owner. When the request carries no
// explicit code one is generated with the owner's role prefix.
func (p *CodeProcessor) Issue(ctx context.Context, req IssueRequest) (store.ReferralCode, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "owner_id", Value: req.OwnerID.String()},
		observability.Field{Key: "owner_role", Value: req.OwnerRole},
	)

	if !store.IsValidRole(req.OwnerRole) {
		return store.ReferralCode{}, ErrInvalidRole
	}
	if req.BonusAmount < 0 || req.MinOrderAmount < 0 {
		return store.ReferralCode{}, ErrInvalidBonusTerms
	}
	if req.BonusType != "" && !store.IsValidBonusType(req.BonusType) {
		return store.ReferralCode{}, ErrInvalidBonusTerms
	}
	// An all-whitespace code is treated as absent so it falls through to
	// generation rather than creating an unusable code.
	req.Code = strings.TrimSpace(req.Code)
	if len(req.Code) > maxCodeLength {
		return store.ReferralCode{}, ErrCodeTooLong
	}

	result, err := p.limiter.CheckCodeIssuance(ctx, req.OwnerID)
	if err != nil {
		p.logger.Error(ctx, "failed to check code issuance rate limit", err)
		return store.ReferralCode{}, err
	}
	if !result.Allowed {
		return store.ReferralCode{}, ErrRateLimited
	}

	if !p.engineCfg.AllowMultipleCodes {
		existing, err := p.store.GetActiveCodesByOwner(ctx, req.OwnerID, req.OwnerRole)
		if err != nil {
			p.logger.Error(ctx, "failed to check existing codes", err)
			return store.ReferralCode{}, err
		}
		if len(existing) > 0 {
			return store.ReferralCode{}, ErrCodeConflict
		}
	}

	defaults := p.engineCfg.ReferrerBonusDefaults[req.OwnerRole]
	bonusAmount := req.BonusAmount
	if bonusAmount == 0 {
		bonusAmount = defaults.Amount
	}
	bonusType := req.BonusType
	if bonusType == "" {
		bonusType = defaults.Type
	}
	maxUsage := req.MaxUsage
	if maxUsage <= 0 {
		maxUsage = p.engineCfg.DefaultMaxUsage
	}

	params := store.CreateReferralCodeParams{
		Code:           req.Code,
		OwnerID:        req.OwnerID,
		OwnerRole:      req.OwnerRole,
		MaxUsage:       maxUsage,
		BonusAmount:    bonusAmount,
		BonusType:      bonusType,
		MinOrderAmount: req.MinOrderAmount,
		CampaignID:     req.CampaignID,
		ExpiresAt:      req.ExpiresAt,
	}

	if params.Code != "" {
		code, err := p.store.CreateReferralCode(ctx, params)
		if err != nil {
			if errors.Is(err, store.ErrDuplicateCode) {
				return store.ReferralCode{}, ErrCodeConflict
			}
			p.logger.Error(ctx, "failed to create referral code", err)
			return store.ReferralCode{}, err
		}
		return code, nil
	}

	// Generated codes can collide; retry with a fresh draw.
	for attempt := 0; attempt < maxGenerateTries; attempt++ {
		generated, err := generateCode(req.OwnerRole)
		if err != nil {
			p.logger.Error(ctx, "failed to generate referral code", err)
			return store.ReferralCode{}, err
		}
		params.Code = generated

		code, err := p.store.CreateReferralCode(ctx, params)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, store.ErrDuplicateCode) {
			p.logger.Error(ctx, "failed to create referral code", err)
			return store.ReferralCode{}, err
		}
	}

	return store.ReferralCode{}, fmt.Errorf("exhausted %d attempts to generate a unique code", maxGenerateTries)
}

// Resolve returns the code only if it is currently usable. An inactive,
// exhausted, or expired code is indistinguishable from an absent one so
// callers cannot probe the code space.
func (p *CodeProcessor) Resolve(ctx context.Context, code string) (store.ReferralCode, error) {
	referralCode, err := p.store.GetReferralCodeByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ReferralCode{}, ErrCodeNotFound
		}
		p.logger.Error(ctx, "failed to get referral code", err)
		return store.ReferralCode{}, err
	}

	if !referralCode.IsUsable(time.Now()) {
		return store.ReferralCode{}, ErrCodeNotFound
	}

	return referralCode, nil
}

// MarkUsed increments the code's usage counter. A code that has vanished or
// been exhausted concurrently is treated as already consumed, not an error.
func (p *CodeProcessor) MarkUsed(ctx context.Context, codeID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "code_id", Value: codeID.String()},
	)

	updated, err := p.store.IncrementCodeUsage(ctx, codeID)
	if err != nil {
		p.logger.Error(ctx, "failed to increment code usage", err)
		return err
	}
	if !updated {
		p.logger.Info(ctx, "code usage not incremented, code missing or exhausted")
	}
	return nil
}

// Deactivate soft-deletes a code. Only the owner or an admin may do it;
// repeated calls are a no-op.
func (p *CodeProcessor) Deactivate(ctx context.Context, codeID, actorID uuid.UUID, actorRole string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "code_id", Value: codeID.String()},
		observability.Field{Key: "actor_id", Value: actorID.String()},
	)

	code, err := p.store.GetReferralCodeByID(ctx, codeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCodeNotFound
		}
		p.logger.Error(ctx, "failed to get referral code", err)
		return err
	}

	if actorRole != store.RoleAdmin && code.OwnerID != actorID {
		return ErrNotCodeOwner
	}

	if err := p.store.DeactivateReferralCode(ctx, codeID); err != nil {
		p.logger.Error(ctx, "failed to deactivate referral code", err)
		return err
	}

	p.logger.Info(ctx, "referral code deactivated")
	return nil
}

// ListByOwner returns the owner's active codes.
func (p *CodeProcessor) ListByOwner(ctx context.Context, ownerID uuid.UUID, ownerRole string) ([]store.ReferralCode, error) {
	if !store.IsValidRole(ownerRole) {
		return nil, ErrInvalidRole
	}

	codes, err := p.store.GetActiveCodesByOwner(ctx, ownerID, ownerRole)
	if err != nil {
		p.logger.Error(ctx, "failed to list codes by owner", err)
		return nil, err
	}
	if codes == nil {
		codes = []store.ReferralCode{}
	}
	return codes, nil
}

func generateCode(ownerRole string) (string, error) {
	prefix, ok := rolePrefixes[ownerRole]
	if !ok {
		return "", ErrInvalidRole
	}

	buf := make([]byte, codeRandomLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		buf[i] = codeAlphabet[n.Int64()]
	}

	return prefix + string(buf), nil
}
