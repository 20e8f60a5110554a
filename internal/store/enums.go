package store

// User role ENUMs
const (
	RoleCustomer   = "customer"
	RoleDriver     = "driver"
	RoleRestaurant = "restaurant"
	RoleAdmin      = "admin"
)

// Bonus type ENUMs
const (
	BonusTypeCash       = "cash"
	BonusTypeCredit     = "credit"
	BonusTypePercentage = "percentage"
)

// Referral ENUMs
const (
	ReferralStatusPending   = "pending"
	ReferralStatusCompleted = "completed"
	ReferralStatusExpired   = "expired"
	ReferralStatusCancelled = "cancelled"
)

const (
	CompletionConditionFirstOrder    = "first_order"
	CompletionConditionFirstDelivery = "first_delivery"
	CompletionConditionRegistration  = "registration"
)

// Reward ENUMs
const (
	RewardStatusPending   = "pending"
	RewardStatusCredited  = "credited"
	RewardStatusExpired   = "expired"
	RewardStatusCancelled = "cancelled"
)

const (
	RewardTypeReferralBonus  = "referral_bonus"
	RewardTypeMilestoneBonus = "milestone_bonus"
	RewardTypeCampaignBonus  = "campaign_bonus"
	RewardTypeLoyaltyBonus   = "loyalty_bonus"
)

const (
	RewardSourceReferral  = "referral"
	RewardSourceCampaign  = "campaign"
	RewardSourceMilestone = "milestone"
	RewardSourceManual    = "manual"
)

// IsValidRole reports whether role is one of the participant roles.
// Admin is an actor role, not a participant role.
func IsValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleDriver, RoleRestaurant:
		return true
	}
	return false
}

// IsValidBonusType reports whether bonusType is a known bonus type.
func IsValidBonusType(bonusType string) bool {
	switch bonusType {
	case BonusTypeCash, BonusTypeCredit, BonusTypePercentage:
		return true
	}
	return false
}

// IsTerminalReferralStatus reports whether a referral status admits no
// further transitions.
func IsTerminalReferralStatus(status string) bool {
	switch status {
	case ReferralStatusCompleted, ReferralStatusExpired, ReferralStatusCancelled:
		return true
	}
	return false
}
