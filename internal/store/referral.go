package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrDuplicateReferral is returned when a referral for the same referrer
// and referee pair already exists
var ErrDuplicateReferral = errors.New("duplicate referral")

// CreateReferralParams represents parameters for creating a referral
type CreateReferralParams struct {
	ReferrerID          uuid.UUID
	ReferrerRole        string
	RefereeID           uuid.UUID
	RefereeRole         string
	ReferralCodeID      uuid.UUID
	CodeUsed            string
	CompletionCondition string
	ReferrerBonusAmount float64
	ReferrerBonusType   string
	RefereeBonusAmount  float64
	RefereeBonusType    string
	MinOrderAmount      float64
	CampaignID          *uuid.UUID
	ExpiresAt           time.Time
}

const referralColumns = `id, referrer_id, referrer_role, referee_id, referee_role, referral_code_id, code_used, completion_condition, status, referrer_bonus_amount, referrer_bonus_type, referee_bonus_amount, referee_bonus_type, min_order_amount, campaign_id, completion_ref, completed_at, expires_at, created_at, updated_at`

const sqlCreateReferral = `
INSERT INTO referrals (referrer_id, referrer_role, referee_id, referee_role, referral_code_id, code_used, completion_condition, referrer_bonus_amount, referrer_bonus_type, referee_bonus_amount, referee_bonus_type, min_order_amount, campaign_id, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + referralColumns

// CreateReferral creates a new referral in pending status
func (s *Store) CreateReferral(ctx context.Context, params CreateReferralParams) (Referral, error) {
	var referral Referral
	err := s.db.GetContext(ctx, &referral, sqlCreateReferral,
		params.ReferrerID,
		params.ReferrerRole,
		params.RefereeID,
		params.RefereeRole,
		params.ReferralCodeID,
		params.CodeUsed,
		params.CompletionCondition,
		params.ReferrerBonusAmount,
		params.ReferrerBonusType,
		params.RefereeBonusAmount,
		params.RefereeBonusType,
		params.MinOrderAmount,
		params.CampaignID,
		params.ExpiresAt)
	if err != nil {
		if isUniqueViolation(err) {
			return Referral{}, ErrDuplicateReferral
		}
		s.logger.Error(ctx, "failed to create referral", err)
		return Referral{}, fmt.Errorf("failed to create referral: %w", err)
	}
	return referral, nil
}

const sqlGetReferralByID = `
SELECT ` + referralColumns + `
FROM referrals
WHERE id = $1
`

// GetReferralByID retrieves a referral by ID
func (s *Store) GetReferralByID(ctx context.Context, referralID uuid.UUID) (Referral, error) {
	var referral Referral
	err := s.db.GetContext(ctx, &referral, sqlGetReferralByID, referralID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Referral{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral by id", err)
		return Referral{}, fmt.Errorf("failed to get referral by id: %w", err)
	}
	return referral, nil
}

const sqlGetReferralByParties = `
SELECT ` + referralColumns + `
FROM referrals
WHERE referrer_id = $1 AND referee_id = $2 AND referrer_role = $3 AND referee_role = $4 AND status != $5
`

// GetReferralByParties retrieves the non-cancelled referral for a
// (referrer, referee, roles) tuple. The match is on referrer identity and
// role, not on the code used, so one referrer cannot hold parallel
// referrals to the same referee through different codes.
func (s *Store) GetReferralByParties(ctx context.Context, referrerID, refereeID uuid.UUID, referrerRole, refereeRole string) (Referral, error) {
	var referral Referral
	err := s.db.GetContext(ctx, &referral, sqlGetReferralByParties,
		referrerID, refereeID, referrerRole, refereeRole, ReferralStatusCancelled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Referral{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral by parties", err)
		return Referral{}, fmt.Errorf("failed to get referral by parties: %w", err)
	}
	return referral, nil
}

const sqlGetPendingReferralsByReferee = `
SELECT ` + referralColumns + `
FROM referrals
WHERE referee_id = $1 AND status = 'pending'
ORDER BY created_at ASC
`

// GetPendingReferralsByReferee retrieves all pending referrals naming the
// given user as referee
func (s *Store) GetPendingReferralsByReferee(ctx context.Context, refereeID uuid.UUID) ([]Referral, error) {
	var referrals []Referral
	err := s.db.SelectContext(ctx, &referrals, sqlGetPendingReferralsByReferee, refereeID)
	if err != nil {
		s.logger.Error(ctx, "failed to get pending referrals by referee", err)
		return nil, fmt.Errorf("failed to get pending referrals by referee: %w", err)
	}
	return referrals, nil
}

const sqlGetReferralsByReferrer = `
SELECT ` + referralColumns + `
FROM referrals
WHERE referrer_id = $1
ORDER BY created_at DESC
`

// GetReferralsByReferrer retrieves all referrals made by a specific user
func (s *Store) GetReferralsByReferrer(ctx context.Context, referrerID uuid.UUID) ([]Referral, error) {
	var referrals []Referral
	err := s.db.SelectContext(ctx, &referrals, sqlGetReferralsByReferrer, referrerID)
	if err != nil {
		s.logger.Error(ctx, "failed to get referrals by referrer", err)
		return nil, fmt.Errorf("failed to get referrals by referrer: %w", err)
	}
	return referrals, nil
}

const sqlCompleteReferral = `
UPDATE referrals
SET status = 'completed',
    completion_ref = $2,
    completed_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
`

// CompleteReferral transitions a referral pending -> completed. The update
// is conditional on the current status so that exactly one concurrent
// caller observes success; the boolean result reports whether this caller
// performed the transition.
func (s *Store) CompleteReferral(ctx context.Context, referralID uuid.UUID, completionRef string) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlCompleteReferral, referralID, completionRef)
	if err != nil {
		s.logger.Error(ctx, "failed to complete referral", err)
		return false, fmt.Errorf("failed to complete referral: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

const sqlCancelReferral = `
UPDATE referrals
SET status = 'cancelled',
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
`

// CancelReferral transitions a referral pending -> cancelled, conditionally
func (s *Store) CancelReferral(ctx context.Context, referralID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlCancelReferral, referralID)
	if err != nil {
		s.logger.Error(ctx, "failed to cancel referral", err)
		return false, fmt.Errorf("failed to cancel referral: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

const sqlGetExpiredPendingReferrals = `
SELECT ` + referralColumns + `
FROM referrals
WHERE status = 'pending' AND expires_at < $1
ORDER BY expires_at ASC
LIMIT $2
`

// GetExpiredPendingReferrals retrieves pending referrals whose expiry has
// passed, oldest first
func (s *Store) GetExpiredPendingReferrals(ctx context.Context, now time.Time, limit int) ([]Referral, error) {
	var referrals []Referral
	err := s.db.SelectContext(ctx, &referrals, sqlGetExpiredPendingReferrals, now, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to get expired pending referrals", err)
		return nil, fmt.Errorf("failed to get expired pending referrals: %w", err)
	}
	return referrals, nil
}

const sqlMarkReferralExpired = `
UPDATE referrals
SET status = 'expired',
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
`

// MarkReferralExpired transitions a referral pending -> expired, conditionally
func (s *Store) MarkReferralExpired(ctx context.Context, referralID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlMarkReferralExpired, referralID)
	if err != nil {
		s.logger.Error(ctx, "failed to mark referral expired", err)
		return false, fmt.Errorf("failed to mark referral expired: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

const sqlCountCompletedReferralsByReferrer = `
SELECT COUNT(*)
FROM referrals
WHERE referrer_id = $1 AND referrer_role = $2 AND status = 'completed'
`

// CountCompletedReferralsByReferrer counts completed referrals for a referrer
func (s *Store) CountCompletedReferralsByReferrer(ctx context.Context, referrerID uuid.UUID, referrerRole string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountCompletedReferralsByReferrer, referrerID, referrerRole)
	if err != nil {
		s.logger.Error(ctx, "failed to count completed referrals", err)
		return 0, fmt.Errorf("failed to count completed referrals: %w", err)
	}
	return count, nil
}
