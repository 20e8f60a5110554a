package jobs

import (
	"context"
	"fmt"
	"time"

	"referral-server/internal/observability"
	settlement "referral-server/internal/settlement/processor"
)

// RewardExpiryJob sweeps pending rewards past their expiry timestamp.
// Independent of referral expiry: a completed referral's unclaimed bonus
// still expires on its own clock.
type RewardExpiryJob struct {
	settlement *settlement.SettlementProcessor
	logger     *observability.Logger
	interval   time.Duration
}

func NewRewardExpiryJob(settlementProcessor *settlement.SettlementProcessor,
	logger *observability.Logger, interval time.Duration) *RewardExpiryJob {
	if interval == 0 {
		interval = time.Hour
	}
	return &RewardExpiryJob{
		settlement: settlementProcessor,
		logger:     logger,
		interval:   interval,
	}
}

func (j *RewardExpiryJob) Name() string {
	return "reward_expiry"
}

func (j *RewardExpiryJob) Schedule() time.Duration {
	return j.interval
}

func (j *RewardExpiryJob) Run(ctx context.Context) error {
	count, err := j.settlement.SweepExpiredRewards(ctx)
	if err != nil {
		return fmt.Errorf("reward expiry sweep: %w", err)
	}
	if count > 0 {
		ctx = observability.WithFields(ctx, observability.Field{Key: "expired_count", Value: count})
		j.logger.Info(ctx, "expired stale rewards")
	}
	return nil
}
