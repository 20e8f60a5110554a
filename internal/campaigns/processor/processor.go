package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"time"

	"referral-server/internal/observability"
	"referral-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrInvalidCampaign  = errors.New("invalid campaign parameters")
	ErrAdminOnly        = errors.New("campaign management requires an admin actor")
)

type CampaignProcessor struct {
	store  CampaignStore
	logger *observability.Logger
}

func New(campaignStore CampaignStore, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:  campaignStore,
		logger: logger,
	}
}

// IsRunning reports whether the campaign is live at the given instant.
func IsRunning(campaign store.Campaign, now time.Time) bool {
	if !campaign.Active {
		return false
	}
	return !now.Before(campaign.StartDate) && !now.After(campaign.EndDate)
}

// HasCapacity reports whether the campaign can admit another participant.
// An unset max means unbounded.
func HasCapacity(campaign store.Campaign) bool {
	if campaign.MaxParticipants == nil {
		return true
	}
	return campaign.CurrentParticipants < *campaign.MaxParticipants
}

// CreateRequest carries the admin-supplied campaign shape.
type CreateRequest struct {
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

// Create persists a new campaign. Admin-only.
func (p *CampaignProcessor) Create(ctx context.Context, actorRole string, req CreateRequest) (store.Campaign, error) {
	if actorRole != store.RoleAdmin {
		return store.Campaign{}, ErrAdminOnly
	}

	if req.Name == "" || !store.IsValidRole(req.TargetRole) {
		return store.Campaign{}, ErrInvalidCampaign
	}
	if req.BonusAmount <= 0 || !store.IsValidBonusType(req.BonusType) {
		return store.Campaign{}, ErrInvalidCampaign
	}
	if !req.EndDate.After(req.StartDate) {
		return store.Campaign{}, ErrInvalidCampaign
	}
	if req.MaxParticipants != nil && *req.MaxParticipants <= 0 {
		return store.Campaign{}, ErrInvalidCampaign
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		Name:            req.Name,
		Type:            req.Type,
		TargetRole:      req.TargetRole,
		BonusAmount:     req.BonusAmount,
		BonusType:       req.BonusType,
		MinRequirement:  req.MinRequirement,
		MaxParticipants: req.MaxParticipants,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaign.ID.String()},
	)
	p.logger.Info(ctx, "campaign created")
	return campaign, nil
}

// Get returns the campaign by id.
func (p *CampaignProcessor) Get(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, err
	}
	return campaign, nil
}

// List returns campaigns in creation order, newest first.
func (p *CampaignProcessor) List(ctx context.Context, limit, offset int) ([]store.Campaign, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	campaigns, err := p.store.ListCampaigns(ctx, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, err
	}
	if campaigns == nil {
		campaigns = []store.Campaign{}
	}
	return campaigns, nil
}

// SetActive flips the campaign's active flag. Admin-only, idempotent.
func (p *CampaignProcessor) SetActive(ctx context.Context, actorRole string, campaignID uuid.UUID, active bool) error {
	if actorRole != store.RoleAdmin {
		return ErrAdminOnly
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "active", Value: active},
	)

	if err := p.store.SetCampaignActive(ctx, campaignID, active); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to update campaign active flag", err)
		return err
	}

	p.logger.Info(ctx, "campaign active flag updated")
	return nil
}

// FindRunningForRole returns the single campaign the engine attributes new
// referrals to for a role. When several are live the earliest start date
// wins so selection is stable across replicas. Absence is not an error.
func (p *CampaignProcessor) FindRunningForRole(ctx context.Context, role string, now time.Time) (*store.Campaign, error) {
	campaign, err := p.store.GetRunningCampaignForRole(ctx, role, now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		p.logger.Error(ctx, "failed to find running campaign", err)
		return nil, err
	}
	return &campaign, nil
}

// ClaimSlot conditionally increments the participant counter. Returns false
// when the campaign is already at capacity; the counter itself is the
// capacity source of truth under concurrency.
func (p *CampaignProcessor) ClaimSlot(ctx context.Context, campaignID uuid.UUID) (bool, error) {
	claimed, err := p.store.IncrementCampaignParticipants(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to increment campaign participants", err)
		return false, err
	}
	return claimed, nil
}

// ReleaseSlot decrements the participant counter, flooring at zero. Used
// for administrative corrections and to back out a claimed slot when the
// reward write fails.
func (p *CampaignProcessor) ReleaseSlot(ctx context.Context, campaignID uuid.UUID) error {
	if err := p.store.DecrementCampaignParticipants(ctx, campaignID); err != nil {
		p.logger.Error(ctx, "failed to decrement campaign participants", err)
		return err
	}
	return nil
}
