package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrDuplicateCode is returned when a code string collides with an existing one
var ErrDuplicateCode = errors.New("duplicate referral code")

// CreateReferralCodeParams represents parameters for creating a referral code
type CreateReferralCodeParams struct {
	Code           string
	OwnerID        uuid.UUID
	OwnerRole      string
	MaxUsage       int
	BonusAmount    float64
	BonusType      string
	MinOrderAmount float64
	CampaignID     *uuid.UUID
	ExpiresAt      *time.Time
}

const sqlCreateReferralCode = `
INSERT INTO referral_codes (code, owner_id, owner_role, max_usage, bonus_amount, bonus_type, min_order_amount, campaign_id, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, code, owner_id, owner_role, usage_count, max_usage, active, bonus_amount, bonus_type, min_order_amount, campaign_id, expires_at, created_at, updated_at, deactivated_at
`

// CreateReferralCode creates a new referral code
func (s *Store) CreateReferralCode(ctx context.Context, params CreateReferralCodeParams) (ReferralCode, error) {
	var code ReferralCode
	err := s.db.GetContext(ctx, &code, sqlCreateReferralCode,
		params.Code,
		params.OwnerID,
		params.OwnerRole,
		params.MaxUsage,
		params.BonusAmount,
		params.BonusType,
		params.MinOrderAmount,
		params.CampaignID,
		params.ExpiresAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ReferralCode{}, ErrDuplicateCode
		}
		s.logger.Error(ctx, "failed to create referral code", err)
		return ReferralCode{}, fmt.Errorf("failed to create referral code: %w", err)
	}
	return code, nil
}

const sqlGetReferralCodeByCode = `
SELECT id, code, owner_id, owner_role, usage_count, max_usage, active, bonus_amount, bonus_type, min_order_amount, campaign_id, expires_at, created_at, updated_at, deactivated_at
FROM referral_codes
WHERE code = $1
`

// GetReferralCodeByCode retrieves a referral code by its code string
func (s *Store) GetReferralCodeByCode(ctx context.Context, code string) (ReferralCode, error) {
	var rc ReferralCode
	err := s.db.GetContext(ctx, &rc, sqlGetReferralCodeByCode, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralCode{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral code by code", err)
		return ReferralCode{}, fmt.Errorf("failed to get referral code by code: %w", err)
	}
	return rc, nil
}

const sqlGetReferralCodeByID = `
SELECT id, code, owner_id, owner_role, usage_count, max_usage, active, bonus_amount, bonus_type, min_order_amount, campaign_id, expires_at, created_at, updated_at, deactivated_at
FROM referral_codes
WHERE id = $1
`

// GetReferralCodeByID retrieves a referral code by ID
func (s *Store) GetReferralCodeByID(ctx context.Context, codeID uuid.UUID) (ReferralCode, error) {
	var rc ReferralCode
	err := s.db.GetContext(ctx, &rc, sqlGetReferralCodeByID, codeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralCode{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral code by id", err)
		return ReferralCode{}, fmt.Errorf("failed to get referral code by id: %w", err)
	}
	return rc, nil
}

const sqlGetActiveCodesByOwner = `
SELECT id, code, owner_id, owner_role, usage_count, max_usage, active, bonus_amount, bonus_type, min_order_amount, campaign_id, expires_at, created_at, updated_at, deactivated_at
FROM referral_codes
WHERE owner_id = $1 AND owner_role = $2 AND active = TRUE
ORDER BY created_at DESC
`

// GetActiveCodesByOwner retrieves the active referral codes held by an owner
func (s *Store) GetActiveCodesByOwner(ctx context.Context, ownerID uuid.UUID, ownerRole string) ([]ReferralCode, error) {
	var codes []ReferralCode
	err := s.db.SelectContext(ctx, &codes, sqlGetActiveCodesByOwner, ownerID, ownerRole)
	if err != nil {
		s.logger.Error(ctx, "failed to get active codes by owner", err)
		return nil, fmt.Errorf("failed to get active codes by owner: %w", err)
	}
	return codes, nil
}

const sqlIncrementCodeUsage = `
UPDATE referral_codes
SET usage_count = usage_count + 1,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND active = TRUE AND usage_count < max_usage
`

// IncrementCodeUsage increments a code's usage counter. The increment is
// conditional on the code still being active and under its usage cap; the
// boolean result reports whether this caller performed the increment.
func (s *Store) IncrementCodeUsage(ctx context.Context, codeID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlIncrementCodeUsage, codeID)
	if err != nil {
		s.logger.Error(ctx, "failed to increment code usage", err)
		return false, fmt.Errorf("failed to increment code usage: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

const sqlDeactivateReferralCode = `
UPDATE referral_codes
SET active = FALSE,
    deactivated_at = COALESCE(deactivated_at, CURRENT_TIMESTAMP),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// DeactivateReferralCode soft-deactivates a code. Idempotent: deactivating
// an already-inactive code succeeds without moving deactivated_at.
func (s *Store) DeactivateReferralCode(ctx context.Context, codeID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeactivateReferralCode, codeID)
	if err != nil {
		s.logger.Error(ctx, "failed to deactivate referral code", err)
		return fmt.Errorf("failed to deactivate referral code: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlCountCodesIssuedSince = `
SELECT COUNT(*)
FROM referral_codes
WHERE owner_id = $1 AND created_at >= $2
`

// CountCodesIssuedSince counts codes issued by an owner since the given time.
// Used as the Postgres fallback for issuance rate limiting.
func (s *Store) CountCodesIssuedSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountCodesIssuedSince, ownerID, since)
	if err != nil {
		s.logger.Error(ctx, "failed to count codes issued", err)
		return 0, fmt.Errorf("failed to count codes issued: %w", err)
	}
	return count, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
