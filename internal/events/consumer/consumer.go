package consumer

import (
	"context"
	"fmt"
	"sync"

	"referral-server/internal/clients/kafka"
	"referral-server/internal/observability"
	triggers "referral-server/internal/triggers/processor"

	"github.com/google/uuid"
)

// EventConsumer pulls business events off Kafka and fans them out to a pool
// of workers running the trigger processor. Partitioning by user id keeps
// one referee's events ordered within a partition; the pool only interleaves
// distinct referees.
type EventConsumer struct {
	kafkaConsumer *kafka.Consumer
	triggers      *triggers.TriggerProcessor
	logger        *observability.Logger
	workerCount   int
}

func New(kafkaConsumer *kafka.Consumer, triggerProcessor *triggers.TriggerProcessor,
	logger *observability.Logger, workerCount int) *EventConsumer {
	if workerCount == 0 {
		workerCount = 10
	}
	return &EventConsumer{
		kafkaConsumer: kafkaConsumer,
		triggers:      triggerProcessor,
		logger:        logger,
		workerCount:   workerCount,
	}
}

// Start consumes events until the context is cancelled or the underlying
// consumer fails.
func (c *EventConsumer) Start(ctx context.Context) error {
	c.logger.Info(ctx, fmt.Sprintf("starting event consumer with %d workers", c.workerCount))

	eventChan := make(chan kafka.EventMessage, 100)
	errorChan := make(chan error, 1)

	go func() {
		err := c.kafkaConsumer.ConsumeEvents(ctx, func(msgCtx context.Context, event kafka.EventMessage) error {
			select {
			case eventChan <- event:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil {
			errorChan <- err
		}
		close(eventChan)
	}()

	var wg sync.WaitGroup
	for i := 0; i < c.workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			c.worker(ctx, workerID, eventChan)
		}(i)
	}

	go func() {
		wg.Wait()
		close(errorChan)
	}()

	select {
	case err := <-errorChan:
		if err != nil {
			c.logger.Error(ctx, "event consumer failed", err)
			return err
		}
	case <-ctx.Done():
		c.logger.Info(ctx, "event consumer context cancelled")
		return ctx.Err()
	}

	return nil
}

func (c *EventConsumer) worker(ctx context.Context, workerID int, eventChan <-chan kafka.EventMessage) {
	workerCtx := observability.WithFields(ctx, observability.Field{Key: "worker_id", Value: workerID})

	for {
		select {
		case event, ok := <-eventChan:
			if !ok {
				c.logger.Info(workerCtx, fmt.Sprintf("worker %d stopping, channel closed", workerID))
				return
			}
			if err := c.processEvent(workerCtx, event); err != nil {
				c.logger.Error(workerCtx, fmt.Sprintf("worker %d failed to process event", workerID), err)
			}
		case <-ctx.Done():
			c.logger.Info(workerCtx, fmt.Sprintf("worker %d stopping, context cancelled", workerID))
			return
		}
	}
}

func (c *EventConsumer) processEvent(ctx context.Context, event kafka.EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "user_id", Value: event.UserID},
	)

	switch event.Type {
	case triggers.TriggerOrderCompleted, triggers.TriggerDeliveryCompleted, triggers.TriggerUserVerified:
	default:
		// Other services share the topic; anything we don't recognize is
		// not ours to process.
		c.logger.Debug(ctx, fmt.Sprintf("ignoring event type %s", event.Type))
		return nil
	}

	refereeID, err := uuid.Parse(event.UserID)
	if err != nil {
		c.logger.WarnWithError(ctx, "event has no parseable user id, dropping", err)
		return nil
	}

	payload := triggers.ParsePayload(event.Data)
	completed, err := c.triggers.ProcessTrigger(ctx, refereeID, event.Type, payload)
	if err != nil {
		return err
	}

	if len(completed) > 0 {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "completed_count", Value: len(completed)},
		)
		c.logger.Info(ctx, "trigger completed referrals")
	}
	return nil
}

// Stop closes the underlying Kafka consumer.
func (c *EventConsumer) Stop() error {
	c.logger.Info(context.Background(), "stopping event consumer")
	return c.kafkaConsumer.Close()
}
