package publisher

import (
	"bytes"
	"context"
	"testing"

	"github.com/rescuesim/responder-service/internal/models"
	"github.com/rescuesim/responder-service/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

func newTestPublisher() *RedisEventPublisher {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewRedisEventPublisher(nil, logger, "responder-event")
}

func TestResponderCreatedEnvelope(t *testing.T) {
	p := newTestPublisher()

	p.ResponderCreated(context.Background(), 42)

	item, ok := p.dequeue()
	require.True(t, ok)
	assert.Equal(t, "42", item.key)

	message := item.message
	assert.NotEmpty(t, message.ID)
	assert.Equal(t, "RespondersCreatedEvent", message.MessageType)
	assert.Equal(t, "ResponderService", message.InvokingService)
	assert.Positive(t, message.Timestamp)
	assert.Nil(t, message.Header)

	body, ok := message.Body.(RespondersCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, 1, body.Created)
	assert.Equal(t, []int64{42}, body.Responders)
}

func TestRespondersDeletedEnvelope(t *testing.T) {
	p := newTestPublisher()

	p.RespondersDeleted(context.Background(), []int64{5, 6})

	item, ok := p.dequeue()
	require.True(t, ok)
	assert.Equal(t, batchKey([]int64{5, 6}), item.key)

	body, ok := item.message.Body.(RespondersDeletedEvent)
	require.True(t, ok)
	assert.Equal(t, 2, body.Deleted)
	assert.Equal(t, []int64{5, 6}, body.Responders)
}

func TestResponderUpdatedStatusMapping(t *testing.T) {
	p := newTestPublisher()
	headers := map[string]string{"incidentId": "incident-123", "processId": "981"}
	responder := &models.Responder{ID: 64}

	p.ResponderUpdated(context.Background(), &service.UpdateResult{
		Success:   true,
		Message:   "Responder updated",
		Responder: responder,
	}, headers)
	p.ResponderUpdated(context.Background(), &service.UpdateResult{
		Success: false,
		Message: "Responder with id 99 not found.",
	}, headers)

	item, ok := p.dequeue()
	require.True(t, ok)
	assert.Equal(t, "64", item.key)
	assert.Equal(t, "ResponderUpdatedEvent", item.message.MessageType)
	assert.Equal(t, headers, item.message.Header)
	body, ok := item.message.Body.(ResponderUpdatedEvent)
	require.True(t, ok)
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "Responder updated", body.StatusMessage)
	assert.Equal(t, responder, body.Responder)

	item, ok = p.dequeue()
	require.True(t, ok)
	assert.Empty(t, item.key)
	body, ok = item.message.Body.(ResponderUpdatedEvent)
	require.True(t, ok)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Responder with id 99 not found.", body.StatusMessage)
	assert.Nil(t, body.Responder)
}

func TestEnqueuePreservesOrder(t *testing.T) {
	p := newTestPublisher()
	ctx := context.Background()

	p.ResponderCreated(ctx, 1)
	p.ResponderCreated(ctx, 2)
	p.ResponderCreated(ctx, 3)

	for _, want := range []string{"1", "2", "3"} {
		item, ok := p.dequeue()
		require.True(t, ok)
		assert.Equal(t, want, item.key)
	}
	_, ok := p.dequeue()
	assert.False(t, ok)
}

func TestBatchKeyIsDeterministic(t *testing.T) {
	assert.Equal(t, batchKey([]int64{1, 2, 3}), batchKey([]int64{1, 2, 3}))
	assert.NotEqual(t, batchKey([]int64{1, 2, 3}), batchKey([]int64{3, 2, 1}))
	assert.NotEmpty(t, batchKey(nil))
}

func TestEnqueueCapturesTraceContext(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})
	p := newTestPublisher()

	spanContext := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10},
		SpanID:     trace.SpanID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanContext)

	p.ResponderCreated(ctx, 42)

	item, ok := p.dequeue()
	require.True(t, ok)
	assert.Contains(t, item.carrier, "traceparent")
	assert.Contains(t, item.carrier["traceparent"], "0102030405060708090a0b0c0d0e0f10")
}
