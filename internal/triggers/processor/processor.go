package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"referral-server/internal/observability"
	settlement "referral-server/internal/settlement/processor"
	"referral-server/internal/store"

	"github.com/google/uuid"
)

// Business event types consumed from the platform event stream.
const (
	TriggerOrderCompleted    = "order_completed"
	TriggerDeliveryCompleted = "delivery_completed"
	TriggerUserVerified      = "user_verified"
)

// triggerRoles maps each trigger type to the participant role whose first
// activity it represents. Mirrors the fixed completion condition per role.
var triggerRoles = map[string]string{
	TriggerOrderCompleted:    store.RoleCustomer,
	TriggerDeliveryCompleted: store.RoleDriver,
	TriggerUserVerified:      store.RoleRestaurant,
}

// Payload carries the fields trigger matching reads from a business event.
// Only the id matching the trigger type is populated by producers; the rest
// are zero.
type Payload struct {
	CustomerID uuid.UUID
	DriverID   uuid.UUID
	UserID     uuid.UUID
	Amount     float64
	Ref        string
}

// ParsePayload extracts a Payload from the loosely-typed event data map.
// Missing or malformed fields parse to zero values; Match treats a zero id
// as a non-match, so bad events fall through harmlessly.
func ParsePayload(data map[string]interface{}) Payload {
	var p Payload
	if v, ok := data["customer_id"].(string); ok {
		p.CustomerID, _ = uuid.Parse(v)
	}
	if v, ok := data["driver_id"].(string); ok {
		p.DriverID, _ = uuid.Parse(v)
	}
	if v, ok := data["user_id"].(string); ok {
		p.UserID, _ = uuid.Parse(v)
	}
	if v, ok := data["amount"].(float64); ok {
		p.Amount = v
	}
	if v, ok := data["ref"].(string); ok {
		p.Ref = v
	}
	return p
}

// Match reports whether a trigger satisfies a referral's completion
// condition. Pure predicate, no side effects. The minimum order amount is
// boundary inclusive: an order exactly at the minimum qualifies.
func Match(referral store.Referral, triggerType string, payload Payload) bool {
	switch referral.CompletionCondition {
	case store.CompletionConditionFirstOrder:
		if triggerType != TriggerOrderCompleted || payload.CustomerID != referral.RefereeID {
			return false
		}
		return referral.MinOrderAmount <= 0 || payload.Amount >= referral.MinOrderAmount
	case store.CompletionConditionFirstDelivery:
		return triggerType == TriggerDeliveryCompleted && payload.DriverID == referral.RefereeID
	case store.CompletionConditionRegistration:
		return triggerType == TriggerUserVerified && payload.UserID == referral.RefereeID
	}
	return false
}

// CompletedReferral pairs a referral this trigger completed with the
// settlement it produced.
type CompletedReferral struct {
	Referral   store.Referral    `json:"referral"`
	Settlement settlement.Result `json:"settlement"`
}

type TriggerProcessor struct {
	store      ReferralStore
	lifecycle  Lifecycle
	settlement Settlement
	logger     *observability.Logger
}

func New(referralStore ReferralStore, lifecycle Lifecycle, settlementEngine Settlement,
	logger *observability.Logger) TriggerProcessor {
	return TriggerProcessor{
		store:      referralStore,
		lifecycle:  lifecycle,
		settlement: settlementEngine,
		logger:     logger,
	}
}

// ProcessTrigger evaluates one business event against the referee's pending
// referrals and settles every match. Referrals are processed independently;
// one referral's failure is logged and skipped, never blocking the others.
// The completion transition is conditional, so a trigger racing a duplicate
// delivery settles each referral at most once.
func (p *TriggerProcessor) ProcessTrigger(ctx context.Context, refereeID uuid.UUID,
	triggerType string, payload Payload) ([]CompletedReferral, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referee_id", Value: refereeID.String()},
		observability.Field{Key: "trigger_type", Value: triggerType},
	)

	referrals, err := p.store.GetPendingReferralsByReferee(ctx, refereeID)
	if err != nil {
		p.logger.Error(ctx, "failed to load pending referrals", err)
		return nil, err
	}

	var completed []CompletedReferral
	for _, referral := range referrals {
		if !Match(referral, triggerType, payload) {
			continue
		}

		rowCtx := observability.WithFields(ctx,
			observability.Field{Key: "referral_id", Value: referral.ID.String()},
		)

		transitioned, err := p.lifecycle.Complete(rowCtx, referral.ID, payload.Ref)
		if err != nil {
			p.logger.Error(rowCtx, "failed to complete referral, skipping", err)
			continue
		}
		if !transitioned {
			// Another trigger already completed or a sweep expired it.
			continue
		}

		now := time.Now()
		referral.Status = store.ReferralStatusCompleted
		referral.CompletedAt = &now
		if payload.Ref != "" {
			ref := payload.Ref
			referral.CompletionRef = &ref
		}

		result, err := p.settlement.SettleReferral(rowCtx, referral)
		if err != nil {
			// The referral is completed; settlement can be retried from the
			// reward side. Do not block the remaining referrals.
			p.logger.Error(rowCtx, "settlement failed for completed referral, skipping", err)
			continue
		}

		completed = append(completed, CompletedReferral{Referral: referral, Settlement: result})
	}

	// Every recognized trigger is also the referee's first qualifying
	// activity candidate, referral or not.
	if role, ok := triggerRoles[triggerType]; ok {
		if _, err := p.settlement.SettleFirstTime(ctx, refereeID, role, triggerType); err != nil {
			p.logger.WarnWithError(ctx, "first activity bonus settlement failed", err)
		}
	}

	return completed, nil
}
