package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateRewardParams represents parameters for creating a reward
type CreateRewardParams struct {
	RecipientID   uuid.UUID
	RecipientRole string
	Type          string
	Amount        float64
	Currency      string
	SourceType    string
	SourceID      uuid.UUID
	DedupKey      *string
	Description   *string
	ExpiresAt     time.Time
}

const rewardColumns = `id, recipient_id, recipient_role, type, amount, currency, status, source_type, source_id, dedup_key, description, expires_at, credited_at, created_at, updated_at`

const sqlCreateReward = `
INSERT INTO rewards (recipient_id, recipient_role, type, amount, currency, source_type, source_id, dedup_key, description, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + rewardColumns

// CreateReward creates a new reward in pending status
func (s *Store) CreateReward(ctx context.Context, params CreateRewardParams) (Reward, error) {
	var reward Reward
	err := s.db.GetContext(ctx, &reward, sqlCreateReward,
		params.RecipientID,
		params.RecipientRole,
		params.Type,
		params.Amount,
		params.Currency,
		params.SourceType,
		params.SourceID,
		params.DedupKey,
		params.Description,
		params.ExpiresAt)
	if err != nil {
		s.logger.Error(ctx, "failed to create reward", err)
		return Reward{}, fmt.Errorf("failed to create reward: %w", err)
	}
	return reward, nil
}

const sqlGetRewardByID = `
SELECT ` + rewardColumns + `
FROM rewards
WHERE id = $1
`

// GetRewardByID retrieves a reward by ID
func (s *Store) GetRewardByID(ctx context.Context, rewardID uuid.UUID) (Reward, error) {
	var reward Reward
	err := s.db.GetContext(ctx, &reward, sqlGetRewardByID, rewardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Reward{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get reward by id", err)
		return Reward{}, fmt.Errorf("failed to get reward by id: %w", err)
	}
	return reward, nil
}

const sqlGetRewardsByRecipient = `
SELECT ` + rewardColumns + `
FROM rewards
WHERE recipient_id = $1 AND ($2::text IS NULL OR status = $2)
ORDER BY created_at DESC
`

// GetRewardsByRecipient retrieves rewards for a user, optionally filtered
// by status
func (s *Store) GetRewardsByRecipient(ctx context.Context, recipientID uuid.UUID, status *string) ([]Reward, error) {
	var rewards []Reward
	err := s.db.SelectContext(ctx, &rewards, sqlGetRewardsByRecipient, recipientID, status)
	if err != nil {
		s.logger.Error(ctx, "failed to get rewards by recipient", err)
		return nil, fmt.Errorf("failed to get rewards by recipient: %w", err)
	}
	return rewards, nil
}

const sqlGetRewardByDedupKey = `
SELECT ` + rewardColumns + `
FROM rewards
WHERE recipient_id = $1 AND dedup_key = $2
`

// GetRewardByDedupKey retrieves a reward by its recipient and structured
// dedup key. Used as the idempotency check for milestone, campaign, and
// first-time bonuses.
func (s *Store) GetRewardByDedupKey(ctx context.Context, recipientID uuid.UUID, dedupKey string) (Reward, error) {
	var reward Reward
	err := s.db.GetContext(ctx, &reward, sqlGetRewardByDedupKey, recipientID, dedupKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Reward{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get reward by dedup key", err)
		return Reward{}, fmt.Errorf("failed to get reward by dedup key: %w", err)
	}
	return reward, nil
}

const sqlHasRewardOfType = `
SELECT EXISTS (
	SELECT 1 FROM rewards WHERE recipient_id = $1 AND type = $2
)
`

// HasRewardOfType reports whether the user already holds a reward of the
// given type, in any status
func (s *Store) HasRewardOfType(ctx context.Context, recipientID uuid.UUID, rewardType string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlHasRewardOfType, recipientID, rewardType)
	if err != nil {
		s.logger.Error(ctx, "failed to check reward existence", err)
		return false, fmt.Errorf("failed to check reward existence: %w", err)
	}
	return exists, nil
}

const sqlCreditReward = `
UPDATE rewards
SET status = 'credited',
    credited_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
`

// CreditReward transitions a reward pending -> credited. This is the single
// idempotency boundary of the settlement engine: a compare-and-set on
// status, never a blind update. The boolean result reports whether this
// caller performed the transition.
func (s *Store) CreditReward(ctx context.Context, rewardID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlCreditReward, rewardID)
	if err != nil {
		s.logger.Error(ctx, "failed to credit reward", err)
		return false, fmt.Errorf("failed to credit reward: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

const sqlGetExpiredPendingRewards = `
SELECT ` + rewardColumns + `
FROM rewards
WHERE status = 'pending' AND expires_at < $1
ORDER BY expires_at ASC
LIMIT $2
`

// GetExpiredPendingRewards retrieves pending rewards whose expiry has
// passed, oldest first
func (s *Store) GetExpiredPendingRewards(ctx context.Context, now time.Time, limit int) ([]Reward, error) {
	var rewards []Reward
	err := s.db.SelectContext(ctx, &rewards, sqlGetExpiredPendingRewards, now, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to get expired pending rewards", err)
		return nil, fmt.Errorf("failed to get expired pending rewards: %w", err)
	}
	return rewards, nil
}

const sqlMarkRewardExpired = `
UPDATE rewards
SET status = 'expired',
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
`

// MarkRewardExpired transitions a reward pending -> expired, conditionally
func (s *Store) MarkRewardExpired(ctx context.Context, rewardID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlMarkRewardExpired, rewardID)
	if err != nil {
		s.logger.Error(ctx, "failed to mark reward expired", err)
		return false, fmt.Errorf("failed to mark reward expired: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

// RewardTotals aggregates reward amounts for a user by status
type RewardTotals struct {
	CreditedAmount float64 `db:"credited_amount"`
	PendingAmount  float64 `db:"pending_amount"`
	CreditedCount  int     `db:"credited_count"`
	PendingCount   int     `db:"pending_count"`
}

const sqlGetRewardTotalsByRecipient = `
SELECT
	COALESCE(SUM(amount) FILTER (WHERE status = 'credited'), 0) AS credited_amount,
	COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0) AS pending_amount,
	COUNT(*) FILTER (WHERE status = 'credited') AS credited_count,
	COUNT(*) FILTER (WHERE status = 'pending') AS pending_count
FROM rewards
WHERE recipient_id = $1
`

// GetRewardTotalsByRecipient aggregates credited and pending reward amounts
// for a user
func (s *Store) GetRewardTotalsByRecipient(ctx context.Context, recipientID uuid.UUID) (RewardTotals, error) {
	var totals RewardTotals
	err := s.db.GetContext(ctx, &totals, sqlGetRewardTotalsByRecipient, recipientID)
	if err != nil {
		s.logger.Error(ctx, "failed to get reward totals", err)
		return RewardTotals{}, fmt.Errorf("failed to get reward totals: %w", err)
	}
	return totals, nil
}
