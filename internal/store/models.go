package store

import (
	"time"

	"github.com/google/uuid"
)

// ReferralCode is a referrer's invitation instrument. Codes are never
// physically deleted; deactivation is a soft operation.
type ReferralCode struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Code      string    `db:"code" json:"code"`
	OwnerID   uuid.UUID `db:"owner_id" json:"owner_id"`
	OwnerRole string    `db:"owner_role" json:"owner_role"`

	UsageCount int  `db:"usage_count" json:"usage_count"`
	MaxUsage   int  `db:"max_usage" json:"max_usage"`
	Active     bool `db:"active" json:"active"`

	BonusAmount    float64 `db:"bonus_amount" json:"bonus_amount"`
	BonusType      string  `db:"bonus_type" json:"bonus_type"`
	MinOrderAmount float64 `db:"min_order_amount" json:"min_order_amount"`

	CampaignID *uuid.UUID `db:"campaign_id" json:"campaign_id,omitempty"`
	ExpiresAt  *time.Time `db:"expires_at" json:"expires_at,omitempty"`

	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
	DeactivatedAt *time.Time `db:"deactivated_at" json:"deactivated_at,omitempty"`
}

// IsUsable reports whether the code can still be redeemed at the given time.
func (c ReferralCode) IsUsable(now time.Time) bool {
	if !c.Active {
		return false
	}
	if c.UsageCount >= c.MaxUsage {
		return false
	}
	if c.ExpiresAt != nil && !c.ExpiresAt.After(now) {
		return false
	}
	return true
}

// Referral is one directed referrer->referee relationship. Bonus terms are
// frozen at creation time so later code or campaign edits cannot change what
// an in-flight referral pays out.
type Referral struct {
	ID           uuid.UUID `db:"id" json:"id"`
	ReferrerID   uuid.UUID `db:"referrer_id" json:"referrer_id"`
	ReferrerRole string    `db:"referrer_role" json:"referrer_role"`
	RefereeID    uuid.UUID `db:"referee_id" json:"referee_id"`
	RefereeRole  string    `db:"referee_role" json:"referee_role"`

	ReferralCodeID uuid.UUID `db:"referral_code_id" json:"referral_code_id"`
	CodeUsed       string    `db:"code_used" json:"code_used"`

	CompletionCondition string `db:"completion_condition" json:"completion_condition"`
	Status              string `db:"status" json:"status"`

	ReferrerBonusAmount float64 `db:"referrer_bonus_amount" json:"referrer_bonus_amount"`
	ReferrerBonusType   string  `db:"referrer_bonus_type" json:"referrer_bonus_type"`
	RefereeBonusAmount  float64 `db:"referee_bonus_amount" json:"referee_bonus_amount"`
	RefereeBonusType    string  `db:"referee_bonus_type" json:"referee_bonus_type"`
	MinOrderAmount      float64 `db:"min_order_amount" json:"min_order_amount"`

	CampaignID *uuid.UUID `db:"campaign_id" json:"campaign_id,omitempty"`

	CompletionRef *string    `db:"completion_ref" json:"completion_ref,omitempty"`
	CompletedAt   *time.Time `db:"completed_at" json:"completed_at,omitempty"`

	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Reward is a single payout unit owed to one user from one source. The
// source is a polymorphic (type, id) pair, never a typed reference.
type Reward struct {
	ID            uuid.UUID `db:"id" json:"id"`
	RecipientID   uuid.UUID `db:"recipient_id" json:"recipient_id"`
	RecipientRole string    `db:"recipient_role" json:"recipient_role"`

	Type     string  `db:"type" json:"type"`
	Amount   float64 `db:"amount" json:"amount"`
	Currency string  `db:"currency" json:"currency"`
	Status   string  `db:"status" json:"status"`

	SourceType string    `db:"source_type" json:"source_type"`
	SourceID   uuid.UUID `db:"source_id" json:"source_id"`

	// DedupKey is a structured idempotency key ("milestone:5",
	// "campaign:<id>", "first_time:<trigger>"). NULL for rewards with no
	// dedup constraint.
	DedupKey    *string `db:"dedup_key" json:"dedup_key,omitempty"`
	Description *string `db:"description" json:"description,omitempty"`

	ExpiresAt  time.Time  `db:"expires_at" json:"expires_at"`
	CreditedAt *time.Time `db:"credited_at" json:"credited_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// Campaign is a time-bounded promotional overlay on top of standard
// referral bonuses.
type Campaign struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Type       string    `db:"type" json:"type"`
	TargetRole string    `db:"target_role" json:"target_role"`

	BonusAmount    float64 `db:"bonus_amount" json:"bonus_amount"`
	BonusType      string  `db:"bonus_type" json:"bonus_type"`
	MinRequirement float64 `db:"min_requirement" json:"min_requirement"`

	MaxParticipants     *int `db:"max_participants" json:"max_participants,omitempty"`
	CurrentParticipants int  `db:"current_participants" json:"current_participants"`

	StartDate time.Time `db:"start_date" json:"start_date"`
	EndDate   time.Time `db:"end_date" json:"end_date"`
	Active    bool      `db:"active" json:"active"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
