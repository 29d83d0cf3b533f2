package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	sent   []published
	err    error
	closed bool
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func newTestRabbitMQ() (*RabbitMQ, *fakeChannel) {
	ch := &fakeChannel{}
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return newRabbitMQ(ch, "portfolio.events", logger), ch
}

func TestNewEvent(t *testing.T) {
	before := time.Now().UTC()
	event := NewEvent(EventPostCreated, map[string]string{"id": "p1"})

	assert.Equal(t, EventPostCreated, event.Type)
	assert.NotEmpty(t, event.ID)
	assert.NotEqual(t, event.ID, NewEvent(EventPostCreated, nil).ID)
	assert.False(t, event.Timestamp.Before(before))
	assert.Equal(t, time.UTC, event.Timestamp.Location())

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "post.created", decoded["type"])
	assert.Equal(t, map[string]any{"id": "p1"}, decoded["payload"])
	assert.Contains(t, decoded, "timestamp")
}

func TestEvent_RoutingKey(t *testing.T) {
	tests := []struct {
		eventType string
		wantErr   bool
	}{
		{EventContactSubmitted, false},
		{EventPostPublished, false},
		{"", true},
		{"post.#", true},
		{"post.*", true},
		{"post..created", true},
		{".created", true},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			key, err := Event{Type: tt.eventType}.RoutingKey()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadEventType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.eventType, key)
		})
	}
}

func TestEvent_Entity(t *testing.T) {
	assert.Equal(t, "post", Event{Type: EventPostDeleted}.Entity())
	assert.Equal(t, "contact", Event{Type: EventContactSubmitted}.Entity())
	assert.Equal(t, "ping", Event{Type: "ping"}.Entity())
}

func TestPublish_RoutesByEventType(t *testing.T) {
	r, ch := newTestRabbitMQ()
	ctx := context.Background()

	require.NoError(t, r.Publish(ctx, NewEvent(EventPostFeatured, map[string]string{"id": "p1"})))
	require.NoError(t, r.Publish(ctx, NewEvent(EventContactSubmitted, map[string]string{"email": "a@b.co"})))

	require.Len(t, ch.sent, 2)
	assert.Equal(t, "portfolio.events", ch.sent[0].exchange)
	assert.Equal(t, "post.featured_toggled", ch.sent[0].key)
	assert.Equal(t, "contact.submitted", ch.sent[1].key)

	msg := ch.sent[1].msg
	assert.Equal(t, EventContactSubmitted, msg.Type)
	assert.Equal(t, "portfolio", msg.AppId)
	assert.Equal(t, uint8(amqp.Persistent), msg.DeliveryMode)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Table{"entity": "contact"}, msg.Headers)
	assert.NotEmpty(t, msg.MessageId)

	var body Event
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, msg.MessageId, body.ID)
}

func TestPublish_RejectsWildcardType(t *testing.T) {
	r, ch := newTestRabbitMQ()

	err := r.Publish(context.Background(), NewEvent("post.*", nil))

	assert.ErrorIs(t, err, ErrBadEventType)
	assert.Empty(t, ch.sent)
}

func TestPublish_ChannelError(t *testing.T) {
	r, ch := newTestRabbitMQ()
	ch.err = amqp.ErrClosed

	err := r.Publish(context.Background(), NewEvent(EventPostDeleted, nil))

	assert.True(t, errors.Is(err, amqp.ErrClosed))
	assert.Contains(t, err.Error(), "post.deleted")
}

func TestPublish_UnmarshalablePayload(t *testing.T) {
	r, ch := newTestRabbitMQ()

	err := r.Publish(context.Background(), NewEvent(EventPostCreated, func() {}))

	assert.Error(t, err)
	assert.Empty(t, ch.sent)
}

func TestClose(t *testing.T) {
	r, ch := newTestRabbitMQ()

	assert.NoError(t, r.Close())
	assert.True(t, ch.closed)
}
