package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name            string
	Type            string
	TargetRole      string
	BonusAmount     float64
	BonusType       string
	MinRequirement  float64
	MaxParticipants *int
	StartDate       time.Time
	EndDate         time.Time
}

const campaignColumns = `id, name, type, target_role, bonus_amount, bonus_type, min_requirement, max_participants, current_participants, start_date, end_date, active, created_at, updated_at`

const sqlCreateCampaign = `
INSERT INTO campaigns (name, type, target_role, bonus_amount, bonus_type, min_requirement, max_participants, start_date, end_date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + campaignColumns

// CreateCampaign creates a new campaign
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.Name,
		params.Type,
		params.TargetRole,
		params.BonusAmount,
		params.BonusType,
		params.MinRequirement,
		params.MaxParticipants,
		params.StartDate,
		params.EndDate)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignByID = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1
`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by id", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

const sqlGetRunningCampaignForRole = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE target_role = $1
  AND active = TRUE
  AND start_date <= $2
  AND end_date >= $2
ORDER BY start_date ASC, id ASC
LIMIT 1
`

// GetRunningCampaignForRole retrieves the currently-running campaign for a
// role. When several campaigns overlap, the one with the earliest start
// date wins (id as tie-break) so selection is deterministic.
func (s *Store) GetRunningCampaignForRole(ctx context.Context, role string, now time.Time) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetRunningCampaignForRole, role, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get running campaign for role", err)
		return Campaign{}, fmt.Errorf("failed to get running campaign for role: %w", err)
	}
	return campaign, nil
}

const sqlListCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
ORDER BY start_date DESC
LIMIT $1 OFFSET $2
`

// ListCampaigns retrieves campaigns with pagination
func (s *Store) ListCampaigns(ctx context.Context, limit, offset int) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaigns, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns", err)
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlSetCampaignActive = `
UPDATE campaigns
SET active = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// SetCampaignActive activates or deactivates a campaign
func (s *Store) SetCampaignActive(ctx context.Context, campaignID uuid.UUID, active bool) error {
	res, err := s.db.ExecContext(ctx, sqlSetCampaignActive, campaignID, active)
	if err != nil {
		s.logger.Error(ctx, "failed to set campaign active", err)
		return fmt.Errorf("failed to set campaign active: %w", err)
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

const sqlIncrementCampaignParticipants = `
UPDATE campaigns
SET current_participants = current_participants + 1,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
  AND (max_participants IS NULL OR current_participants < max_participants)
`

// IncrementCampaignParticipants increments the participant counter, bounded
// by capacity. The condition makes the counter the source of truth for the
// capacity check: when concurrent settlements race for the last slot,
// exactly one increment succeeds. The boolean result reports whether this
// caller took a slot.
func (s *Store) IncrementCampaignParticipants(ctx context.Context, campaignID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlIncrementCampaignParticipants, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to increment campaign participants", err)
		return false, fmt.Errorf("failed to increment campaign participants: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

const sqlDecrementCampaignParticipants = `
UPDATE campaigns
SET current_participants = GREATEST(current_participants - 1, 0),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// DecrementCampaignParticipants decrements the participant counter,
// flooring at zero. Administrative corrections only; not part of the
// normal settlement flow.
func (s *Store) DecrementCampaignParticipants(ctx context.Context, campaignID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDecrementCampaignParticipants, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to decrement campaign participants", err)
		return fmt.Errorf("failed to decrement campaign participants: %w", err)
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
