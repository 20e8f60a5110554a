package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"time"

	campaigns "referral-server/internal/campaigns/processor"
	codes "referral-server/internal/codes/processor"
	"referral-server/internal/config"
	"referral-server/internal/observability"
	"referral-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrInvalidCode       = errors.New("referral code is not usable")
	ErrSelfReferral      = errors.New("self-referral is not allowed")
	ErrDuplicateReferral = errors.New("referral already exists for this referrer and referee")
	ErrReferralNotFound  = errors.New("referral not found")
	ErrInvalidRole       = errors.New("invalid referee role")
	ErrAdminOnly         = errors.New("cancellation requires an admin actor")
)

// completionConditions maps referee role to the business event that
// completes the referral. The mapping is fixed, not configurable.
var completionConditions = map[string]string{
	store.RoleCustomer:   store.CompletionConditionFirstOrder,
	store.RoleDriver:     store.CompletionConditionFirstDelivery,
	store.RoleRestaurant: store.CompletionConditionRegistration,
}

const sweepBatchSize = 500

type ReferralProcessor struct {
	store     ReferralStore
	codes     CodeRegistry
	campaigns CampaignGuard
	notifier  Notifier
	engineCfg config.EngineConfig
	logger    *observability.Logger
}

func New(referralStore ReferralStore, codeRegistry CodeRegistry, campaignGuard CampaignGuard,
	notifier Notifier, engineCfg config.EngineConfig, logger *observability.Logger) ReferralProcessor {
	return ReferralProcessor{
		store:     referralStore,
		codes:     codeRegistry,
		campaigns: campaignGuard,
		notifier:  notifier,
		engineCfg: engineCfg,
		logger:    logger,
	}
}

// CreateRequest identifies the referee and the code they redeemed.
type CreateRequest struct {
	ReferrerCode string
	RefereeID    uuid.UUID
	RefereeRole  string
}

// Create registers a pending referral. Bonus terms are frozen onto the
// referral row at creation so later code or campaign edits cannot change
// what an in-flight referral pays. Side effects after the row is written
// (usage counter, campaign slot, notifications) are best-effort.
func (p *ReferralProcessor) Create(ctx context.Context, req CreateRequest) (store.Referral, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referee_id", Value: req.RefereeID.String()},
		observability.Field{Key: "referral_code", Value: req.ReferrerCode},
	)

	if !store.IsValidRole(req.RefereeRole) {
		return store.Referral{}, ErrInvalidRole
	}

	code, err := p.codes.Resolve(ctx, req.ReferrerCode)
	if err != nil {
		if errors.Is(err, codes.ErrCodeNotFound) {
			return store.Referral{}, ErrInvalidCode
		}
		p.logger.Error(ctx, "failed to resolve referral code", err)
		return store.Referral{}, err
	}

	if code.OwnerID == req.RefereeID {
		return store.Referral{}, ErrSelfReferral
	}

	// Duplicates are matched on party identity, not on the code, so one
	// referrer cannot run parallel referrals through multiple codes.
	_, err = p.store.GetReferralByParties(ctx, code.OwnerID, req.RefereeID, code.OwnerRole, req.RefereeRole)
	if err == nil {
		return store.Referral{}, ErrDuplicateReferral
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check existing referral", err)
		return store.Referral{}, err
	}

	now := time.Now()

	campaign, err := p.campaigns.FindRunningForRole(ctx, code.OwnerRole, now)
	if err != nil {
		p.logger.Error(ctx, "failed to resolve running campaign", err)
		return store.Referral{}, err
	}
	if campaign != nil && !campaigns.HasCapacity(*campaign) {
		campaign = nil
	}

	referrerBonusAmount := code.BonusAmount
	referrerBonusType := code.BonusType
	var campaignID *uuid.UUID
	if campaign != nil {
		referrerBonusAmount = campaign.BonusAmount
		referrerBonusType = campaign.BonusType
		campaignID = &campaign.ID
	}

	refereeBonus := p.engineCfg.RefereeBonusDefaults[req.RefereeRole]

	referral, err := p.store.CreateReferral(ctx, store.CreateReferralParams{
		ReferrerID:          code.OwnerID,
		ReferrerRole:        code.OwnerRole,
		RefereeID:           req.RefereeID,
		RefereeRole:         req.RefereeRole,
		ReferralCodeID:      code.ID,
		CodeUsed:            code.Code,
		CompletionCondition: completionConditions[req.RefereeRole],
		ReferrerBonusAmount: referrerBonusAmount,
		ReferrerBonusType:   referrerBonusType,
		RefereeBonusAmount:  refereeBonus.Amount,
		RefereeBonusType:    refereeBonus.Type,
		MinOrderAmount:      code.MinOrderAmount,
		CampaignID:          campaignID,
		ExpiresAt:           now.Add(p.engineCfg.ReferralExpiryWindow),
	})
	if err != nil {
		// A concurrent create for the same parties can slip past the
		// read check above; the unique index is the authority.
		if errors.Is(err, store.ErrDuplicateReferral) {
			return store.Referral{}, ErrDuplicateReferral
		}
		p.logger.Error(ctx, "failed to create referral", err)
		return store.Referral{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referral_id", Value: referral.ID.String()},
	)

	if err := p.codes.MarkUsed(ctx, code.ID); err != nil {
		p.logger.WarnWithError(ctx, "failed to mark code used", err)
	}
	if campaignID != nil {
		claimed, err := p.campaigns.ClaimSlot(ctx, *campaignID)
		if err != nil {
			p.logger.WarnWithError(ctx, "failed to claim campaign slot", err)
		} else if !claimed {
			p.logger.Info(ctx, "campaign filled between selection and claim")
		}
	}
	p.notifier.ReferralCreated(ctx, referral.ReferrerID, referral.RefereeID, referral.CodeUsed)

	p.logger.Info(ctx, "referral created")
	return referral, nil
}

// Get returns the referral by id.
func (p *ReferralProcessor) Get(ctx context.Context, referralID uuid.UUID) (store.Referral, error) {
	referral, err := p.store.GetReferralByID(ctx, referralID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Referral{}, ErrReferralNotFound
		}
		p.logger.Error(ctx, "failed to get referral", err)
		return store.Referral{}, err
	}
	return referral, nil
}

// ListByReferrer returns all referrals created from the referrer's codes.
func (p *ReferralProcessor) ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]store.Referral, error) {
	referrals, err := p.store.GetReferralsByReferrer(ctx, referrerID)
	if err != nil {
		p.logger.Error(ctx, "failed to list referrals", err)
		return nil, err
	}
	if referrals == nil {
		referrals = []store.Referral{}
	}
	return referrals, nil
}

// Complete transitions the referral pending->completed, recording the
// triggering order/delivery as evidence. Returns false when another caller
// already moved the referral out of pending.
func (p *ReferralProcessor) Complete(ctx context.Context, referralID uuid.UUID, completionRef string) (bool, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referral_id", Value: referralID.String()},
		observability.Field{Key: "completion_ref", Value: completionRef},
	)

	completed, err := p.store.CompleteReferral(ctx, referralID, completionRef)
	if err != nil {
		p.logger.Error(ctx, "failed to complete referral", err)
		return false, err
	}
	if !completed {
		p.logger.Info(ctx, "referral not completed, already in a terminal state")
		return false, nil
	}

	p.logger.Info(ctx, "referral completed")
	return true, nil
}

// Cancel transitions pending->cancelled. Admin-only. A referral already in
// a terminal state is returned unchanged, not treated as an error.
func (p *ReferralProcessor) Cancel(ctx context.Context, actorRole string, referralID uuid.UUID) (store.Referral, error) {
	if actorRole != store.RoleAdmin {
		return store.Referral{}, ErrAdminOnly
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referral_id", Value: referralID.String()},
	)

	referral, err := p.store.GetReferralByID(ctx, referralID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Referral{}, ErrReferralNotFound
		}
		p.logger.Error(ctx, "failed to get referral", err)
		return store.Referral{}, err
	}

	if store.IsTerminalReferralStatus(referral.Status) {
		return referral, nil
	}

	cancelled, err := p.store.CancelReferral(ctx, referralID)
	if err != nil {
		p.logger.Error(ctx, "failed to cancel referral", err)
		return store.Referral{}, err
	}
	if cancelled {
		p.logger.Info(ctx, "referral cancelled")
	}

	return p.Get(ctx, referralID)
}

// SweepExpired moves every pending referral past its expiry to expired and
// returns the count transitioned. Each transition is conditioned on the
// row still being pending, so concurrent sweeps divide the work instead of
// double-counting it. A bad row is skipped, never fatal to the batch.
func (p *ReferralProcessor) SweepExpired(ctx context.Context) (int, error) {
	now := time.Now()
	count := 0

	for {
		expired, err := p.store.GetExpiredPendingReferrals(ctx, now, sweepBatchSize)
		if err != nil {
			p.logger.Error(ctx, "failed to scan expired referrals", err)
			return count, err
		}
		if len(expired) == 0 {
			break
		}

		marked := 0
		for _, referral := range expired {
			transitioned, err := p.store.MarkReferralExpired(ctx, referral.ID)
			if err != nil {
				rowCtx := observability.WithFields(ctx,
					observability.Field{Key: "referral_id", Value: referral.ID.String()},
				)
				p.logger.Error(rowCtx, "failed to expire referral, skipping", err)
				continue
			}
			if transitioned {
				count++
				marked++
			}
		}

		// If nothing in the batch moved, a concurrent sweep owns these
		// rows; bail rather than spin on the same batch.
		if marked == 0 {
			break
		}
		if len(expired) < sweepBatchSize {
			break
		}
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "expired_count", Value: count},
	)
	p.logger.Info(ctx, "referral expiry sweep finished")
	return count, nil
}
