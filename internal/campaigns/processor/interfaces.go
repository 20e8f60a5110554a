package processor

import (
	"context"
	"time"

	"referral-server/internal/store"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetRunningCampaignForRole(ctx context.Context, role string, now time.Time) (store.Campaign, error)
	ListCampaigns(ctx context.Context, limit, offset int) ([]store.Campaign, error)
	SetCampaignActive(ctx context.Context, campaignID uuid.UUID, active bool) error
	IncrementCampaignParticipants(ctx context.Context, campaignID uuid.UUID) (bool, error)
	DecrementCampaignParticipants(ctx context.Context, campaignID uuid.UUID) error
}
