package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rescuesim/responder-service/internal/service"
	"github.com/rescuesim/responder-service/pkg/tracing"
	"github.com/sirupsen/logrus"
)

// Transport field names on outbound stream entries. The partition key
// and trace headers ride next to the payload, outside the JSON body.
const (
	fieldKey     = "key"
	fieldPayload = "payload"
)

// RedisEventPublisher turns update outcomes and lifecycle changes into
// responder events on a Redis stream.
//
// Publishing is fire-and-forget: callers append to an unbounded
// in-memory queue and return immediately, a single drain goroutine
// forwards entries to the stream in enqueue order. The queue is
// deliberately unbounded; the producer is the synchronous message
// handling path and must never block on the transport, and event
// volume is bounded by the inbound message rate.
type RedisEventPublisher struct {
	client *redis.Client
	logger *logrus.Logger
	stream string

	mu    sync.Mutex
	queue []queueItem
	wake  chan struct{}
}

type queueItem struct {
	key     string
	message *Message
	// carrier holds the trace context captured at enqueue time, so the
	// outbound entry joins the causal chain of the inbound message even
	// though delivery happens on the drain goroutine.
	carrier map[string]string
}

func NewRedisEventPublisher(client *redis.Client, logger *logrus.Logger, stream string) *RedisEventPublisher {
	return &RedisEventPublisher{
		client: client,
		logger: logger,
		stream: stream,
		wake:   make(chan struct{}, 1),
	}
}

var _ service.EventPublisher = (*RedisEventPublisher)(nil)

// ResponderCreated publishes a creation event for a single responder,
// keyed by its id.
func (p *RedisEventPublisher) ResponderCreated(ctx context.Context, id int64) {
	p.enqueue(ctx, strconv.FormatInt(id, 10), newMessage(respondersCreatedEvent, nil, RespondersCreatedEvent{
		Created:    1,
		Responders: []int64{id},
	}))
}

// RespondersCreated publishes one creation event for a whole batch,
// keyed by a hash of the id set.
func (p *RedisEventPublisher) RespondersCreated(ctx context.Context, ids []int64) {
	p.enqueue(ctx, batchKey(ids), newMessage(respondersCreatedEvent, nil, RespondersCreatedEvent{
		Created:    len(ids),
		Responders: ids,
	}))
}

// RespondersDeleted publishes one deletion event for a batch of ids.
func (p *RedisEventPublisher) RespondersDeleted(ctx context.Context, ids []int64) {
	p.enqueue(ctx, batchKey(ids), newMessage(respondersDeletedEvent, nil, RespondersDeletedEvent{
		Deleted:    len(ids),
		Responders: ids,
	}))
}

// ResponderUpdated publishes the outcome of an update command,
// carrying the correlation headers of the command verbatim.
func (p *RedisEventPublisher) ResponderUpdated(ctx context.Context, result *service.UpdateResult, headers map[string]string) {
	status := "error"
	if result.Success {
		status = "success"
	}

	var key string
	if result.Responder != nil {
		key = strconv.FormatInt(result.Responder.ID, 10)
	}

	p.enqueue(ctx, key, newMessage(responderUpdatedEvent, headers, ResponderUpdatedEvent{
		Status:        status,
		StatusMessage: result.Message,
		Responder:     result.Responder,
	}))
}

func (p *RedisEventPublisher) enqueue(ctx context.Context, key string, message *Message) {
	carrier := make(map[string]string)
	tracing.Inject(ctx, carrier)

	p.mu.Lock()
	p.queue = append(p.queue, queueItem{key: key, message: message, carrier: carrier})
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *RedisEventPublisher) dequeue() (queueItem, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.queue) == 0 {
		return queueItem{}, false
	}
	item := p.queue[0]
	p.queue = p.queue[1:]
	return item, true
}

// Start launches the drain goroutine. It serializes queued events to
// the stream in enqueue order until ctx is cancelled. A failed append
// is logged and dropped; downstream consumers tolerate gaps, and
// blocking the queue on a sick transport would only grow it without
// bound.
func (p *RedisEventPublisher) Start(ctx context.Context) {
	p.logger.Info("Starting event publisher...")
	go func() {
		for {
			item, ok := p.dequeue()
			if !ok {
				select {
				case <-ctx.Done():
					p.logger.Info("Stopping event publisher.")
					return
				case <-p.wake:
				}
				continue
			}

			if err := p.send(ctx, item); err != nil {
				p.logger.WithError(err).WithFields(logrus.Fields{
					"message_type": item.message.MessageType,
					"key":          item.key,
				}).Error("Failed to publish responder event")
			}
		}
	}()
}

func (p *RedisEventPublisher) send(ctx context.Context, item queueItem) error {
	payload, err := json.Marshal(item.message)
	if err != nil {
		return fmt.Errorf("failed to marshal responder event: %w", err)
	}

	values := map[string]any{
		fieldKey:     item.key,
		fieldPayload: string(payload),
	}
	for k, v := range item.carrier {
		values[k] = v
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: values,
	}).Err(); err != nil {
		return fmt.Errorf("failed to append responder event to stream: %w", err)
	}
	return nil
}

func newMessage(messageType string, header map[string]string, body any) *Message {
	return &Message{
		ID:              uuid.NewString(),
		MessageType:     messageType,
		InvokingService: invokingService,
		Timestamp:       time.Now().UnixMilli(),
		Header:          header,
		Body:            body,
	}
}

// batchKey derives a stable partition key for batch events from the
// id set.
func batchKey(ids []int64) string {
	h := fnv.New32a()
	for _, id := range ids {
		fmt.Fprintf(h, "%d,", id)
	}
	return strconv.FormatUint(uint64(h.Sum32()), 10)
}
