package processor

import (
	"context"

	settlement "referral-server/internal/settlement/processor"
	"referral-server/internal/store"

	"github.com/google/uuid"
)

// ReferralStore is the subset of store operations trigger processing needs.
type ReferralStore interface {
	GetPendingReferralsByReferee(ctx context.Context, refereeID uuid.UUID) ([]store.Referral, error)
}

// Lifecycle performs the conditional pending->completed transition.
type Lifecycle interface {
	Complete(ctx context.Context, referralID uuid.UUID, completionRef string) (bool, error)
}

// Settlement converts completed referrals and first activities into rewards.
type Settlement interface {
	SettleReferral(ctx context.Context, referral store.Referral) (settlement.Result, error)
	SettleFirstTime(ctx context.Context, userID uuid.UUID, userRole, triggerType string) (*store.Reward, error)
}
