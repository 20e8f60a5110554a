package jobs

import (
	"context"
	"fmt"
	"time"

	"referral-server/internal/observability"
	referrals "referral-server/internal/referrals/processor"
)

// ReferralExpiryJob sweeps pending referrals past their expiry timestamp.
type ReferralExpiryJob struct {
	referrals *referrals.ReferralProcessor
	logger    *observability.Logger
	interval  time.Duration
}

func NewReferralExpiryJob(referralProcessor *referrals.ReferralProcessor,
	logger *observability.Logger, interval time.Duration) *ReferralExpiryJob {
	if interval == 0 {
		interval = time.Hour
	}
	return &ReferralExpiryJob{
		referrals: referralProcessor,
		logger:    logger,
		interval:  interval,
	}
}

func (j *ReferralExpiryJob) Name() string {
	return "referral_expiry"
}

func (j *ReferralExpiryJob) Schedule() time.Duration {
	return j.interval
}

func (j *ReferralExpiryJob) Run(ctx context.Context) error {
	count, err := j.referrals.SweepExpired(ctx)
	if err != nil {
		return fmt.Errorf("referral expiry sweep: %w", err)
	}
	if count > 0 {
		ctx = observability.WithFields(ctx, observability.Field{Key: "expired_count", Value: count})
		j.logger.Info(ctx, "expired stale referrals")
	}
	return nil
}
