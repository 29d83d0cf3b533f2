package publisher

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event types double as topic routing keys: <entity>.<action>.
const (
	EventContactSubmitted = "contact.submitted"
	EventPostCreated      = "post.created"
	EventPostUpdated      = "post.updated"
	EventPostDeleted      = "post.deleted"
	EventPostPublished    = "post.published_toggled"
	EventPostFeatured     = "post.featured_toggled"
)

var ErrBadEventType = errors.New("bad event type")

// Event is the JSON body of every message.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

func NewEvent(eventType string, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// RoutingKey is the topic key the event is published under. Wildcards and
// empty words are rejected since they only make sense in bindings.
func (e Event) RoutingKey() (string, error) {
	if e.Type == "" {
		return "", fmt.Errorf("%w: empty", ErrBadEventType)
	}
	for _, word := range strings.Split(e.Type, ".") {
		if word == "" || strings.ContainsAny(word, "*#") {
			return "", fmt.Errorf("%w: %q", ErrBadEventType, e.Type)
		}
	}
	return e.Type, nil
}

// Entity is the first word of the type, e.g. "post".
func (e Event) Entity() string {
	entity, _, _ := strings.Cut(e.Type, ".")
	return entity
}
