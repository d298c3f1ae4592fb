package consumer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rescuesim/responder-service/internal/config"
	"github.com/rescuesim/responder-service/internal/service"
	"github.com/rescuesim/responder-service/pkg/tracing"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// payloadField is the stream entry field carrying the message body.
// The remaining entry fields are treated as transport headers (trace
// context and the like).
const payloadField = "payload"

// StreamConsumer reads update commands and location pings from their
// Redis streams through a consumer group and feeds them into the
// responder service.
//
// Each entry is handled in its own goroutine so store I/O never stalls
// the polling loop, and is acknowledged once handling finishes,
// whatever the outcome. Validation failures and business rejections
// are acked and dropped; only infrastructure failures leave the entry
// pending so the group redelivers it.
type StreamConsumer struct {
	client    *redis.Client
	logger    *logrus.Logger
	cfg       *config.Config
	service   service.ResponderService
	publisher service.EventPublisher
	tracer    trace.Tracer
}

func NewStreamConsumer(client *redis.Client, logger *logrus.Logger, cfg *config.Config, svc service.ResponderService, publisher service.EventPublisher) *StreamConsumer {
	return &StreamConsumer{
		client:    client,
		logger:    logger,
		cfg:       cfg,
		service:   svc,
		publisher: publisher,
		tracer:    otel.Tracer("responder-consumer"),
	}
}

// Start creates the consumer group on both streams and launches the
// polling loop.
func (c *StreamConsumer) Start(ctx context.Context) error {
	for _, stream := range []string{c.cfg.CommandStream, c.cfg.LocationStream} {
		err := c.client.XGroupCreateMkStream(ctx, stream, c.cfg.ConsumerGroup, "$").Err()
		if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
			return err
		}
	}

	c.logger.WithFields(logrus.Fields{
		"group":    c.cfg.ConsumerGroup,
		"consumer": c.cfg.ConsumerName,
	}).Info("Starting stream consumer...")
	go c.run(ctx)
	return nil
}

func (c *StreamConsumer) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Stopping stream consumer.")
			return
		default:
		}

		results, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.cfg.ConsumerGroup,
			Consumer: c.cfg.ConsumerName,
			Streams:  []string{c.cfg.CommandStream, c.cfg.LocationStream, ">", ">"},
			Count:    10,
			Block:    c.cfg.ConsumerBlock,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			c.logger.WithError(err).Error("Failed to read from streams")
			time.Sleep(c.cfg.ConsumerBlock)
			continue
		}

		for _, result := range results {
			for _, message := range result.Messages {
				go c.handle(ctx, result.Stream, message)
			}
		}
	}
}

// handle processes one stream entry end to end: classify, update,
// maybe publish, ack. A non-nil handler error means an infrastructure
// failure; the entry stays pending and the group redelivers it.
func (c *StreamConsumer) handle(ctx context.Context, stream string, message redis.XMessage) {
	payload, _ := message.Values[payloadField].(string)

	carrier := make(map[string]string, len(message.Values))
	for k, v := range message.Values {
		if s, ok := v.(string); ok && k != payloadField {
			carrier[k] = s
		}
	}
	ctx = tracing.Extract(ctx, carrier)

	var err error
	switch stream {
	case c.cfg.CommandStream:
		err = c.processCommand(ctx, payload)
	default:
		err = c.processLocation(ctx, payload)
	}
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"stream":     stream,
			"message_id": message.ID,
		}).Error("Failed to process message, leaving it pending for redelivery")
		return
	}

	if err := c.client.XAck(ctx, stream, c.cfg.ConsumerGroup, message.ID).Err(); err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"stream":     stream,
			"message_id": message.ID,
		}).Error("Failed to ack message")
	}
}

func (c *StreamConsumer) processCommand(ctx context.Context, payload string) error {
	ctx, span := c.tracer.Start(ctx, "updateResponderCommand")
	defer span.End()

	patch, headers, err := extractCommand([]byte(payload))
	if err != nil {
		c.logger.WithError(err).WithField("payload", payload).Warn("Ignoring unexpected command message")
		return nil
	}

	span.SetAttributes(attribute.Int64("responderId", patch.ID))
	c.logger.WithField("responder_id", patch.ID).Debugf("Processing '%s' message", updateResponderCommand)

	result, err := c.service.UpdateResponder(ctx, patch)
	if err != nil {
		span.RecordError(err)
		return err
	}

	// Update outcomes only matter downstream when the command belongs
	// to an incident; bare commands produce no event.
	if _, ok := headers["incidentId"]; ok {
		c.publisher.ResponderUpdated(ctx, result, headers)
	}
	return nil
}

func (c *StreamConsumer) processLocation(ctx context.Context, payload string) error {
	ctx, span := c.tracer.Start(ctx, "responderLocationUpdate")
	defer span.End()

	patch, err := extractLocation([]byte(payload))
	if err != nil {
		c.logger.WithError(err).WithField("payload", payload).Warn("Ignoring unexpected location message")
		return nil
	}
	if patch == nil {
		return nil
	}

	span.SetAttributes(attribute.Int64("responderId", patch.ID))
	c.logger.WithField("responder_id", patch.ID).Debug("Processing location update message")

	result, err := c.service.UpdateResponderLocation(ctx, patch)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if !result.Success {
		c.logger.WithField("responder_id", patch.ID).Debugf("Location update dropped: %s", result.Message)
	}
	return nil
}
