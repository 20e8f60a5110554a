package processor

import (
	"context"
	"time"

	"referral-server/internal/store"

	"github.com/google/uuid"
)

// ReferralStore defines the database operations required by ReferralProcessor
type ReferralStore interface {
	CreateReferral(ctx context.Context, params store.CreateReferralParams) (store.Referral, error)
	GetReferralByID(ctx context.Context, referralID uuid.UUID) (store.Referral, error)
	GetReferralByParties(ctx context.Context, referrerID, refereeID uuid.UUID, referrerRole, refereeRole string) (store.Referral, error)
	GetReferralsByReferrer(ctx context.Context, referrerID uuid.UUID) ([]store.Referral, error)
	CompleteReferral(ctx context.Context, referralID uuid.UUID, completionRef string) (bool, error)
	CancelReferral(ctx context.Context, referralID uuid.UUID) (bool, error)
	GetExpiredPendingReferrals(ctx context.Context, now time.Time, limit int) ([]store.Referral, error)
	MarkReferralExpired(ctx context.Context, referralID uuid.UUID) (bool, error)
}

// CodeRegistry is the referral code surface the lifecycle manager consumes
type CodeRegistry interface {
	Resolve(ctx context.Context, code string) (store.ReferralCode, error)
	MarkUsed(ctx context.Context, codeID uuid.UUID) error
}

// CampaignGuard selects and books running campaigns
type CampaignGuard interface {
	FindRunningForRole(ctx context.Context, role string, now time.Time) (*store.Campaign, error)
	ClaimSlot(ctx context.Context, campaignID uuid.UUID) (bool, error)
}

// Notifier sends best-effort lifecycle notifications
type Notifier interface {
	ReferralCreated(ctx context.Context, referrerID, refereeID uuid.UUID, codeUsed string)
}
