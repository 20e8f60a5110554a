package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"referral-server/internal/config"
	"referral-server/internal/observability"
	"referral-server/internal/store"

	campaignsHandler "referral-server/internal/campaigns/handler"
	campaignsProcessor "referral-server/internal/campaigns/processor"
	"referral-server/internal/clients/identity"
	kafkaClient "referral-server/internal/clients/kafka"
	"referral-server/internal/clients/ledger"
	"referral-server/internal/clients/mail"
	redisClient "referral-server/internal/clients/redis"
	codesHandler "referral-server/internal/codes/handler"
	codesProcessor "referral-server/internal/codes/processor"
	eventConsumer "referral-server/internal/events/consumer"
	"referral-server/internal/jobs/scheduler"
	"referral-server/internal/jobs/scheduler/jobs"
	"referral-server/internal/notifications"
	"referral-server/internal/ratelimit"
	referralsHandler "referral-server/internal/referrals/handler"
	referralsProcessor "referral-server/internal/referrals/processor"
	settlementHandler "referral-server/internal/settlement/handler"
	settlementProcessor "referral-server/internal/settlement/processor"
	triggersHandler "referral-server/internal/triggers/handler"
	triggersProcessor "referral-server/internal/triggers/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Processors
	CodesProcessor      codesProcessor.CodeProcessor
	CampaignsProcessor  campaignsProcessor.CampaignProcessor
	ReferralsProcessor  referralsProcessor.ReferralProcessor
	SettlementProcessor settlementProcessor.SettlementProcessor
	TriggersProcessor   triggersProcessor.TriggerProcessor

	// Handlers
	CodesHandler      codesHandler.Handler
	ReferralsHandler  referralsHandler.Handler
	SettlementHandler settlementHandler.Handler
	CampaignsHandler  campaignsHandler.Handler
	TriggersHandler   triggersHandler.Handler

	// Background workers
	EventConsumer *eventConsumer.EventConsumer
	Scheduler     *scheduler.Scheduler

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	KafkaConsumer *kafkaClient.Consumer
	Redis         *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Clients
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	identityClient := identity.NewClient(cfg.Services.IdentityServiceURL, logger)
	ledgerClient := ledger.New(cfg.Services.StripeSecretKey, logger)

	brokerList := strings.Split(cfg.Kafka.Brokers, ",")
	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: brokerList,
		Topic:   cfg.Kafka.Topic,
	}, logger)
	deps.KafkaConsumer = kafkaClient.NewConsumer(kafkaClient.ConsumerConfig{
		Brokers: brokerList,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.ConsumerGroup,
	}, logger)

	// Shared services
	limiter := ratelimit.New(deps.Redis, &deps.Store, cfg.Engine.CodeIssueLimit,
		cfg.Engine.CodeIssueWindow, logger)
	notifier := notifications.New(identityClient, mailClient, cfg.Services.DefaultEmailSender, logger)

	// Processors, wired leaves first
	deps.CodesProcessor = codesProcessor.New(&deps.Store, limiter, cfg.Engine, logger)
	deps.CampaignsProcessor = campaignsProcessor.New(&deps.Store, logger)
	deps.ReferralsProcessor = referralsProcessor.New(&deps.Store, &deps.CodesProcessor,
		&deps.CampaignsProcessor, notifier, cfg.Engine, logger)
	deps.SettlementProcessor = settlementProcessor.New(&deps.Store, ledgerClient, identityClient,
		&deps.CampaignsProcessor, notifier, deps.KafkaProducer, cfg.Engine, logger)
	deps.TriggersProcessor = triggersProcessor.New(&deps.Store, &deps.ReferralsProcessor,
		&deps.SettlementProcessor, logger)

	// Handlers
	deps.CodesHandler = codesHandler.New(deps.CodesProcessor, logger)
	deps.ReferralsHandler = referralsHandler.New(deps.ReferralsProcessor, logger)
	deps.SettlementHandler = settlementHandler.New(deps.SettlementProcessor, logger)
	deps.CampaignsHandler = campaignsHandler.New(deps.CampaignsProcessor, logger)
	deps.TriggersHandler = triggersHandler.New(&deps.TriggersProcessor, logger)

	// Event consumer feeding the trigger processor
	deps.EventConsumer = eventConsumer.New(deps.KafkaConsumer, &deps.TriggersProcessor,
		logger, cfg.Kafka.EventWorkers)

	// Scheduled expiry sweeps
	deps.Scheduler = scheduler.New(logger)
	deps.Scheduler.Register(jobs.NewReferralExpiryJob(&deps.ReferralsProcessor, logger, time.Hour))
	deps.Scheduler.Register(jobs.NewRewardExpiryJob(&deps.SettlementProcessor, logger, time.Hour))

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.KafkaProducer != nil {
		d.KafkaProducer.Close()
	}
	if d.KafkaConsumer != nil {
		d.KafkaConsumer.Close()
	}
	if d.Redis != nil {
		d.Redis.Close()
	}
}
