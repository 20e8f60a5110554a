package ratelimit

import (
	"context"
	"fmt"
	"time"

	redisclient "referral-server/internal/clients/redis"
	"referral-server/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store is the minimal persistence surface the Postgres fallback needs.
type Store interface {
	CountCodesIssuedSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (int, error)
}

// Result describes the outcome of a rate limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Service limits how many referral codes an owner can issue inside a
// rolling window. Redis keeps a sorted set of issuance timestamps; when
// Redis is unavailable the check falls back to counting rows in Postgres.
type Service struct {
	redis  *redisclient.Client
	store  Store
	logger *observability.Logger
	limit  int
	window time.Duration
}

func New(redisClient *redisclient.Client, store Store, limit int, window time.Duration, logger *observability.Logger) *Service {
	return &Service{
		redis:  redisClient,
		store:  store,
		logger: logger,
		limit:  limit,
		window: window,
	}
}

// CheckCodeIssuance reports whether the owner may issue another code and,
// when allowed via Redis, records the issuance in the window.
func (s *Service) CheckCodeIssuance(ctx context.Context, ownerID uuid.UUID) (Result, error) {
	if s.redis.IsEnabled() {
		result, err := s.checkRedis(ctx, ownerID)
		if err == nil {
			return result, nil
		}
		s.logger.WarnWithError(ctx, "Redis rate limit check failed, falling back to Postgres", err)
	}
	return s.checkPostgres(ctx, ownerID)
}

func (s *Service) checkRedis(ctx context.Context, ownerID uuid.UUID) (Result, error) {
	key := fmt.Sprintf("rl:codes:%s", ownerID.String())
	now := time.Now()
	nowMs := now.UnixMilli()
	windowStartMs := now.Add(-s.window).UnixMilli()

	// Drop entries that have aged out of the window.
	err := s.redis.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStartMs))
	if err != nil {
		return Result{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := s.redis.ZCard(ctx, key)
	if err != nil {
		return Result{}, fmt.Errorf("failed to count issuances: %w", err)
	}

	if int(count) >= s.limit {
		resetAt := now.Add(s.window)
		if oldest, err := s.redis.ZRange(ctx, key, 0, 0); err == nil && len(oldest) > 0 {
			var oldestTs int64
			fmt.Sscanf(oldest[0], "%d", &oldestTs)
			resetAt = time.UnixMilli(oldestTs).Add(s.window)
		}
		return Result{
			Allowed:   false,
			Limit:     s.limit,
			Remaining: 0,
			ResetAt:   resetAt,
		}, nil
	}

	err = s.redis.ZAdd(ctx, key, redis.Z{
		Score:  float64(nowMs),
		Member: fmt.Sprintf("%d", nowMs),
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to record issuance: %w", err)
	}

	if err := s.redis.Expire(ctx, key, s.window+time.Minute); err != nil {
		s.logger.WarnWithError(ctx, "failed to set expiration on rate limit key", err)
	}

	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(s.window),
	}, nil
}

// checkPostgres counts codes actually issued in the window. It does not
// record anything; the code row itself is the record.
func (s *Service) checkPostgres(ctx context.Context, ownerID uuid.UUID) (Result, error) {
	now := time.Now()
	count, err := s.store.CountCodesIssuedSince(ctx, ownerID, now.Add(-s.window))
	if err != nil {
		return Result{}, fmt.Errorf("failed to count issued codes: %w", err)
	}

	remaining := s.limit - count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   count < s.limit,
		Limit:     s.limit,
		Remaining: remaining,
		ResetAt:   now.Add(s.window),
	}, nil
}
