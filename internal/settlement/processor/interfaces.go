package processor

import (
	"context"
	"time"

	"referral-server/internal/clients/identity"
	"referral-server/internal/clients/kafka"
	"referral-server/internal/store"

	"github.com/google/uuid"
)

// RewardStore defines the database operations required by SettlementProcessor
type RewardStore interface {
	CreateReward(ctx context.Context, params store.CreateRewardParams) (store.Reward, error)
	GetRewardByID(ctx context.Context, rewardID uuid.UUID) (store.Reward, error)
	GetRewardsByRecipient(ctx context.Context, recipientID uuid.UUID, status *string) ([]store.Reward, error)
	GetRewardByDedupKey(ctx context.Context, recipientID uuid.UUID, dedupKey string) (store.Reward, error)
	HasRewardOfType(ctx context.Context, recipientID uuid.UUID, rewardType string) (bool, error)
	CreditReward(ctx context.Context, rewardID uuid.UUID) (bool, error)
	GetExpiredPendingRewards(ctx context.Context, now time.Time, limit int) ([]store.Reward, error)
	MarkRewardExpired(ctx context.Context, rewardID uuid.UUID) (bool, error)
	GetRewardTotalsByRecipient(ctx context.Context, recipientID uuid.UUID) (store.RewardTotals, error)
	CountCompletedReferralsByReferrer(ctx context.Context, referrerID uuid.UUID, referrerRole string) (int, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
}

// Ledger issues credit instructions to the external money ledger. The
// reward id doubles as the idempotency key on every call.
type Ledger interface {
	CreditBalance(ctx context.Context, customerRef string, amount float64, currency, rewardID, description string) (string, error)
	TransferCash(ctx context.Context, accountRef string, amount float64, currency, rewardID, description string) (string, error)
}

// Identity resolves a recipient to their ledger reference
type Identity interface {
	GetUserDetails(ctx context.Context, userID uuid.UUID) (identity.UserDetails, error)
}

// CampaignGuard books and releases campaign participation slots
type CampaignGuard interface {
	ClaimSlot(ctx context.Context, campaignID uuid.UUID) (bool, error)
	ReleaseSlot(ctx context.Context, campaignID uuid.UUID) error
}

// Notifier sends best-effort settlement notifications
type Notifier interface {
	ReferralCompleted(ctx context.Context, referrerID uuid.UUID, amount float64, currency string)
	RewardCredited(ctx context.Context, recipientID uuid.UUID, amount float64, currency string)
	MilestoneReached(ctx context.Context, referrerID uuid.UUID, milestone int, amount float64, currency string)
}

// EventPublisher emits settlement events for downstream consumers
type EventPublisher interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}
