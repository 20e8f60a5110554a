package processor

import (
	"context"

	"referral-server/internal/ratelimit"
	"referral-server/internal/store"

	"github.com/google/uuid"
)

// CodeStore defines the database operations required by CodeProcessor
type CodeStore interface {
	CreateReferralCode(ctx context.Context, params store.CreateReferralCodeParams) (store.ReferralCode, error)
	GetReferralCodeByCode(ctx context.Context, code string) (store.ReferralCode, error)
	GetReferralCodeByID(ctx context.Context, codeID uuid.UUID) (store.ReferralCode, error)
	GetActiveCodesByOwner(ctx context.Context, ownerID uuid.UUID, ownerRole string) ([]store.ReferralCode, error)
	IncrementCodeUsage(ctx context.Context, codeID uuid.UUID) (bool, error)
	DeactivateReferralCode(ctx context.Context, codeID uuid.UUID) error
}

// RateLimiter gates how fast an owner can mint new codes
type RateLimiter interface {
	CheckCodeIssuance(ctx context.Context, ownerID uuid.UUID) (ratelimit.Result, error)
}
