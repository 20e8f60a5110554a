package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	campaigns "referral-server/internal/campaigns/processor"
	"referral-server/internal/clients/kafka"
	"referral-server/internal/config"
	"referral-server/internal/observability"
	"referral-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrRewardNotFound     = errors.New("reward not found")
	ErrCreditFailed       = errors.New("external credit failed, reward remains pending")
	ErrNotRewardOwner     = errors.New("reward belongs to another user")
	ErrRewardNotClaimable = errors.New("reward is not claimable")
	ErrInvalidStatus      = errors.New("invalid reward status filter")
)

// EventReferralCompleted is published after a referral settles.
const EventReferralCompleted = "referral_completed"

const sweepBatchSize = 500

type SettlementProcessor struct {
	store     RewardStore
	ledger    Ledger
	identity  Identity
	campaigns CampaignGuard
	notifier  Notifier
	publisher EventPublisher
	engineCfg config.EngineConfig
	logger    *observability.Logger
}

func New(rewardStore RewardStore, ledger Ledger, identityClient Identity, campaignGuard CampaignGuard,
	notifier Notifier, publisher EventPublisher, engineCfg config.EngineConfig,
	logger *observability.Logger) SettlementProcessor {
	return SettlementProcessor{
		store:     rewardStore,
		ledger:    ledger,
		identity:  identityClient,
		campaigns: campaignGuard,
		notifier:  notifier,
		publisher: publisher,
		engineCfg: engineCfg,
		logger:    logger,
	}
}

// Result bundles everything one completed referral paid out.
type Result struct {
	ReferrerReward   store.Reward   `json:"referrer_reward"`
	RefereeReward    store.Reward   `json:"referee_reward"`
	MilestoneRewards []store.Reward `json:"milestone_rewards"`
}

// SettleReferral converts a completed referral into rewards: a claim-gated
// referral bonus for the referrer, an immediately-credited welcome bonus
// for the referee, and any milestone bonuses the completion unlocked.
// Notification and event side effects never fail the settlement.
func (p *SettlementProcessor) SettleReferral(ctx context.Context, referral store.Referral) (Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referral_id", Value: referral.ID.String()},
		observability.Field{Key: "referrer_id", Value: referral.ReferrerID.String()},
		observability.Field{Key: "referee_id", Value: referral.RefereeID.String()},
	)

	expiresAt := time.Now().Add(p.engineCfg.RewardExpiryWindow)
	currency := p.engineCfg.Currency

	referrerReward, err := p.store.CreateReward(ctx, store.CreateRewardParams{
		RecipientID:   referral.ReferrerID,
		RecipientRole: referral.ReferrerRole,
		Type:          store.RewardTypeReferralBonus,
		Amount:        referral.ReferrerBonusAmount,
		Currency:      currency,
		SourceType:    store.RewardSourceReferral,
		SourceID:      referral.ID,
		Description:   strPtr(fmt.Sprintf("Referral bonus for code %s", referral.CodeUsed)),
		ExpiresAt:     expiresAt,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create referrer reward", err)
		return Result{}, err
	}

	refereeReward, err := p.store.CreateReward(ctx, store.CreateRewardParams{
		RecipientID:   referral.RefereeID,
		RecipientRole: referral.RefereeRole,
		Type:          store.RewardTypeReferralBonus,
		Amount:        referral.RefereeBonusAmount,
		Currency:      currency,
		SourceType:    store.RewardSourceReferral,
		SourceID:      referral.ID,
		Description:   strPtr("Welcome bonus for joining via referral"),
		ExpiresAt:     expiresAt,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create referee reward", err)
		return Result{}, err
	}

	// The welcome bonus is not claim-gated. A failed credit leaves it
	// pending and retryable, never rolls the settlement back.
	credited, err := p.CreditReward(ctx, refereeReward.ID)
	if err != nil {
		p.logger.WarnWithError(ctx, "referee welcome bonus credit failed, left pending", err)
	} else {
		refereeReward = credited
	}

	milestoneRewards, err := p.CheckMilestones(ctx, referral.ReferrerID, referral.ReferrerRole)
	if err != nil {
		p.logger.WarnWithError(ctx, "milestone evaluation failed", err)
		milestoneRewards = nil
	}

	p.notifier.ReferralCompleted(ctx, referral.ReferrerID, referrerReward.Amount, currency)
	p.publishCompleted(ctx, referral)

	p.logger.Info(ctx, "referral settled")
	return Result{
		ReferrerReward:   referrerReward,
		RefereeReward:    refereeReward,
		MilestoneRewards: milestoneRewards,
	}, nil
}

// CreditReward moves a reward pending->credited exactly once. A reward
// already out of pending is returned unchanged. The external credit is
// dispatched before the status flip; the reward id is the ledger
// idempotency key, so a crash between the two leaves a retry safe.
func (p *SettlementProcessor) CreditReward(ctx context.Context, rewardID uuid.UUID) (store.Reward, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "reward_id", Value: rewardID.String()},
	)

	reward, err := p.store.GetRewardByID(ctx, rewardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Reward{}, ErrRewardNotFound
		}
		p.logger.Error(ctx, "failed to get reward", err)
		return store.Reward{}, err
	}

	if reward.Status != store.RewardStatusPending {
		return reward, nil
	}

	if err := p.dispatchCredit(ctx, reward); err != nil {
		return store.Reward{}, err
	}

	updated, err := p.store.CreditReward(ctx, rewardID)
	if err != nil {
		p.logger.Error(ctx, "failed to mark reward credited", err)
		return store.Reward{}, err
	}
	if !updated {
		// A concurrent caller won the CAS. The ledger deduplicated the
		// double dispatch, so just return the current row.
		p.logger.Info(ctx, "reward credited by a concurrent caller")
		return p.store.GetRewardByID(ctx, rewardID)
	}

	p.notifier.RewardCredited(ctx, reward.RecipientID, reward.Amount, reward.Currency)

	return p.store.GetRewardByID(ctx, rewardID)
}

// Claim is CreditReward invoked by the recipient. Only the owner may
// claim; an expired or cancelled reward is not claimable, while a claim
// on an already-credited reward is an idempotent no-op.
func (p *SettlementProcessor) Claim(ctx context.Context, rewardID, actorID uuid.UUID) (store.Reward, error) {
	reward, err := p.store.GetRewardByID(ctx, rewardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Reward{}, ErrRewardNotFound
		}
		p.logger.Error(ctx, "failed to get reward", err)
		return store.Reward{}, err
	}

	if reward.RecipientID != actorID {
		return store.Reward{}, ErrNotRewardOwner
	}
	if reward.Status == store.RewardStatusExpired || reward.Status == store.RewardStatusCancelled {
		return store.Reward{}, ErrRewardNotClaimable
	}

	return p.CreditReward(ctx, rewardID)
}

// CheckMilestones grants a milestone bonus for every threshold the
// referrer's completed count has reached. All qualifying thresholds are
// granted in one call; a user jumping from 4 to 11 completions collects
// both the 5 and the 10 bonus. The dedup key makes each (user, milestone)
// pair pay at most once no matter how often this runs.
func (p *SettlementProcessor) CheckMilestones(ctx context.Context, userID uuid.UUID, userRole string) ([]store.Reward, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
	)

	count, err := p.store.CountCompletedReferralsByReferrer(ctx, userID, userRole)
	if err != nil {
		p.logger.Error(ctx, "failed to count completed referrals", err)
		return nil, err
	}

	var granted []store.Reward
	for _, threshold := range p.engineCfg.MilestoneThresholds {
		if count < threshold {
			break
		}

		dedupKey := fmt.Sprintf("milestone:%d", threshold)
		_, err := p.store.GetRewardByDedupKey(ctx, userID, dedupKey)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to check milestone dedup key", err)
			return granted, err
		}

		amount := p.engineCfg.MilestoneAmounts[threshold]
		reward, err := p.store.CreateReward(ctx, store.CreateRewardParams{
			RecipientID:   userID,
			RecipientRole: userRole,
			Type:          store.RewardTypeMilestoneBonus,
			Amount:        amount,
			Currency:      p.engineCfg.Currency,
			SourceType:    store.RewardSourceMilestone,
			SourceID:      userID,
			DedupKey:      &dedupKey,
			Description:   strPtr(fmt.Sprintf("Milestone bonus for %d completed referrals", threshold)),
			ExpiresAt:     time.Now().Add(p.engineCfg.RewardExpiryWindow),
		})
		if err != nil {
			p.logger.Error(ctx, "failed to create milestone reward", err)
			return granted, err
		}

		// Milestone bonuses auto-credit; a failed credit stays pending.
		if credited, err := p.CreditReward(ctx, reward.ID); err == nil {
			reward = credited
		} else {
			p.logger.WarnWithError(ctx, "milestone credit failed, left pending", err)
		}

		p.notifier.MilestoneReached(ctx, userID, threshold, amount, p.engineCfg.Currency)
		granted = append(granted, reward)
	}

	return granted, nil
}

// SettleCampaign grants a campaign bonus if the campaign is live and has
// capacity. A missing, stopped, or full campaign yields nil, not an error.
// The participant counter is claimed before the reward row is written; the
// counter is the capacity source of truth under concurrent settlement.
func (p *SettlementProcessor) SettleCampaign(ctx context.Context, userID uuid.UUID, userRole string,
	campaignID uuid.UUID, amount *float64, description *string) (*store.Reward, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return nil, err
	}

	now := time.Now()
	if !campaigns.IsRunning(campaign, now) || !campaigns.HasCapacity(campaign) {
		return nil, nil
	}

	dedupKey := fmt.Sprintf("campaign:%s", campaignID.String())
	if existing, err := p.store.GetRewardByDedupKey(ctx, userID, dedupKey); err == nil {
		return &existing, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check campaign dedup key", err)
		return nil, err
	}

	claimed, err := p.campaigns.ClaimSlot(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, nil
	}

	bonusAmount := campaign.BonusAmount
	if amount != nil {
		bonusAmount = *amount
	}
	if description == nil {
		description = strPtr(fmt.Sprintf("Campaign bonus: %s", campaign.Name))
	}

	reward, err := p.store.CreateReward(ctx, store.CreateRewardParams{
		RecipientID:   userID,
		RecipientRole: userRole,
		Type:          store.RewardTypeCampaignBonus,
		Amount:        bonusAmount,
		Currency:      p.engineCfg.Currency,
		SourceType:    store.RewardSourceCampaign,
		SourceID:      campaignID,
		DedupKey:      &dedupKey,
		Description:   description,
		ExpiresAt:     now.Add(p.engineCfg.RewardExpiryWindow),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign reward", err)
		// Give the claimed slot back so the failed write does not burn
		// campaign capacity.
		if releaseErr := p.campaigns.ReleaseSlot(ctx, campaignID); releaseErr != nil {
			p.logger.Error(ctx, "failed to release campaign slot", releaseErr)
		}
		return nil, err
	}

	return &reward, nil
}

// SettleFirstTime grants the one-per-user loyalty bonus for a first
// qualifying activity. The existence check on reward type makes it
// idempotent across trigger replays.
func (p *SettlementProcessor) SettleFirstTime(ctx context.Context, userID uuid.UUID, userRole, triggerType string) (*store.Reward, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "trigger_type", Value: triggerType},
	)

	exists, err := p.store.HasRewardOfType(ctx, userID, store.RewardTypeLoyaltyBonus)
	if err != nil {
		p.logger.Error(ctx, "failed to check existing loyalty bonus", err)
		return nil, err
	}
	if exists {
		return nil, nil
	}

	dedupKey := fmt.Sprintf("first_time:%s", triggerType)
	reward, err := p.store.CreateReward(ctx, store.CreateRewardParams{
		RecipientID:   userID,
		RecipientRole: userRole,
		Type:          store.RewardTypeLoyaltyBonus,
		Amount:        p.engineCfg.FirstTimeBonusAmount,
		Currency:      p.engineCfg.Currency,
		SourceType:    store.RewardSourceManual,
		SourceID:      userID,
		DedupKey:      &dedupKey,
		Description:   strPtr("First activity bonus"),
		ExpiresAt:     time.Now().Add(p.engineCfg.RewardExpiryWindow),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create loyalty reward", err)
		return nil, err
	}

	if credited, err := p.CreditReward(ctx, reward.ID); err == nil {
		reward = credited
	} else {
		p.logger.WarnWithError(ctx, "loyalty bonus credit failed, left pending", err)
	}

	return &reward, nil
}

// SweepExpiredRewards expires every pending reward past its expiry and
// returns the count transitioned. Safe to run concurrently; each
// transition is conditioned on the row still being pending.
func (p *SettlementProcessor) SweepExpiredRewards(ctx context.Context) (int, error) {
	now := time.Now()
	count := 0

	for {
		expired, err := p.store.GetExpiredPendingRewards(ctx, now, sweepBatchSize)
		if err != nil {
			p.logger.Error(ctx, "failed to scan expired rewards", err)
			return count, err
		}
		if len(expired) == 0 {
			break
		}

		marked := 0
		for _, reward := range expired {
			transitioned, err := p.store.MarkRewardExpired(ctx, reward.ID)
			if err != nil {
				rowCtx := observability.WithFields(ctx,
					observability.Field{Key: "reward_id", Value: reward.ID.String()},
				)
				p.logger.Error(rowCtx, "failed to expire reward, skipping", err)
				continue
			}
			if transitioned {
				count++
				marked++
			}
		}

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
	p.logger.Info(ctx, "reward expiry sweep finished")
	return count, nil
}

// ListRewards returns a user's rewards, optionally filtered by status.
func (p *SettlementProcessor) ListRewards(ctx context.Context, recipientID uuid.UUID, status *string) ([]store.Reward, error) {
	if status != nil {
		switch *status {
		case store.RewardStatusPending, store.RewardStatusCredited,
			store.RewardStatusExpired, store.RewardStatusCancelled:
		default:
			return nil, ErrInvalidStatus
		}
	}

	rewards, err := p.store.GetRewardsByRecipient(ctx, recipientID, status)
	if err != nil {
		p.logger.Error(ctx, "failed to list rewards", err)
		return nil, err
	}
	if rewards == nil {
		rewards = []store.Reward{}
	}
	return rewards, nil
}

// Summary returns the user's credited and pending totals.
func (p *SettlementProcessor) Summary(ctx context.Context, recipientID uuid.UUID) (store.RewardTotals, error) {
	totals, err := p.store.GetRewardTotalsByRecipient(ctx, recipientID)
	if err != nil {
		p.logger.Error(ctx, "failed to get reward totals", err)
		return store.RewardTotals{}, err
	}
	return totals, nil
}

// dispatchCredit issues the external ledger instruction for a reward.
// Connected accounts (acct_ refs) take transfers, everyone else takes a
// customer balance credit.
func (p *SettlementProcessor) dispatchCredit(ctx context.Context, reward store.Reward) error {
	user, err := p.identity.GetUserDetails(ctx, reward.RecipientID)
	if err != nil {
		p.logger.Error(ctx, "failed to resolve recipient ledger reference", err)
		return ErrCreditFailed
	}
	if user.LedgerRef == "" {
		p.logger.Error(ctx, "recipient has no ledger reference", ErrCreditFailed)
		return ErrCreditFailed
	}

	description := fmt.Sprintf("%s reward", reward.Type)
	if reward.Description != nil {
		description = *reward.Description
	}

	if strings.HasPrefix(user.LedgerRef, "acct_") {
		_, err = p.ledger.TransferCash(ctx, user.LedgerRef, reward.Amount, reward.Currency, reward.ID.String(), description)
	} else {
		_, err = p.ledger.CreditBalance(ctx, user.LedgerRef, reward.Amount, reward.Currency, reward.ID.String(), description)
	}
	if err != nil {
		p.logger.Error(ctx, "ledger credit instruction failed", err)
		return ErrCreditFailed
	}
	return nil
}

func (p *SettlementProcessor) publishCompleted(ctx context.Context, referral store.Referral) {
	event := kafka.EventMessage{
		ID:     uuid.New().String(),
		Type:   EventReferralCompleted,
		UserID: referral.ReferrerID.String(),
		Data: map[string]interface{}{
			"referral_id": referral.ID.String(),
			"referee_id":  referral.RefereeID.String(),
			"code_used":   referral.CodeUsed,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := p.publisher.PublishEvent(ctx, event); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish referral completed event", err)
	}
}

func strPtr(s string) *string { return &s }
