package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	DB() *sqlx.DB

	// Referral code operations
	CreateReferralCode(ctx context.Context, params CreateReferralCodeParams) (ReferralCode, error)
	GetReferralCodeByCode(ctx context.Context, code string) (ReferralCode, error)
	GetReferralCodeByID(ctx context.Context, codeID uuid.UUID) (ReferralCode, error)
	GetActiveCodesByOwner(ctx context.Context, ownerID uuid.UUID, ownerRole string) ([]ReferralCode, error)
	IncrementCodeUsage(ctx context.Context, codeID uuid.UUID) (bool, error)
	DeactivateReferralCode(ctx context.Context, codeID uuid.UUID) error
	CountCodesIssuedSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (int, error)

	// Referral operations
	CreateReferral(ctx context.Context, params CreateReferralParams) (Referral, error)
	GetReferralByID(ctx context.Context, referralID uuid.UUID) (Referral, error)
	GetReferralByParties(ctx context.Context, referrerID, refereeID uuid.UUID, referrerRole, refereeRole string) (Referral, error)
	GetPendingReferralsByReferee(ctx context.Context, refereeID uuid.UUID) ([]Referral, error)
	GetReferralsByReferrer(ctx context.Context, referrerID uuid.UUID) ([]Referral, error)
	CompleteReferral(ctx context.Context, referralID uuid.UUID, completionRef string) (bool, error)
	CancelReferral(ctx context.Context, referralID uuid.UUID) (bool, error)
	GetExpiredPendingReferrals(ctx context.Context, now time.Time, limit int) ([]Referral, error)
	MarkReferralExpired(ctx context.Context, referralID uuid.UUID) (bool, error)
	CountCompletedReferralsByReferrer(ctx context.Context, referrerID uuid.UUID, referrerRole string) (int, error)

	// Reward operations
	CreateReward(ctx context.Context, params CreateRewardParams) (Reward, error)
	GetRewardByID(ctx context.Context, rewardID uuid.UUID) (Reward, error)
	GetRewardsByRecipient(ctx context.Context, recipientID uuid.UUID, status *string) ([]Reward, error)
	GetRewardByDedupKey(ctx context.Context, recipientID uuid.UUID, dedupKey string) (Reward, error)
	HasRewardOfType(ctx context.Context, recipientID uuid.UUID, rewardType string) (bool, error)
	CreditReward(ctx context.Context, rewardID uuid.UUID) (bool, error)
	GetExpiredPendingRewards(ctx context.Context, now time.Time, limit int) ([]Reward, error)
	MarkRewardExpired(ctx context.Context, rewardID uuid.UUID) (bool, error)
	GetRewardTotalsByRecipient(ctx context.Context, recipientID uuid.UUID) (RewardTotals, error)

	// Campaign operations
	CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error)
	GetRunningCampaignForRole(ctx context.Context, role string, now time.Time) (Campaign, error)
	ListCampaigns(ctx context.Context, limit, offset int) ([]Campaign, error)
	SetCampaignActive(ctx context.Context, campaignID uuid.UUID, active bool) error
	IncrementCampaignParticipants(ctx context.Context, campaignID uuid.UUID) (bool, error)
	DecrementCampaignParticipants(ctx context.Context, campaignID uuid.UUID) error
}

// Compile-time check that Store satisfies Storer
var _ Storer = (*Store)(nil)
