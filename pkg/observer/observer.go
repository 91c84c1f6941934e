package observer

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Notification is an immutable event value delivered to subscribers. It is
// either a free-text message or a structured subject-verb-object tuple.
type Notification struct {
	ID          string    `json:"id"`
	SubjectName string    `json:"subject_name,omitempty"`
	SubjectID   string    `json:"subject_id,omitempty"`
	Verb        string    `json:"verb,omitempty"`
	ObjectName  string    `json:"object_name,omitempty"`
	ObjectID    string    `json:"object_id,omitempty"`
	Message     string    `json:"message,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewMessage creates a notification carrying a free-text message.
func NewMessage(message string) Notification {
	return Notification{
		ID:         uuid.New().String(),
		Message:    message,
		OccurredAt: time.Now(),
	}
}

// NewEvent creates a structured notification describing an action a subject
// performed on an object.
func NewEvent(subjectName, subjectID, verb, objectName, objectID string) Notification {
	return Notification{
		ID:          uuid.New().String(),
		SubjectName: subjectName,
		SubjectID:   subjectID,
		Verb:        verb,
		ObjectName:  objectName,
		ObjectID:    objectID,
		OccurredAt:  time.Now(),
	}
}

// String renders the notification. Structured notifications render as
// "subjectName (subjectId) verb objectName (objectId)".
func (n Notification) String() string {
	if n.Message != "" {
		return n.Message
	}
	return fmt.Sprintf("%s (%s) %s %s (%s)", n.SubjectName, n.SubjectID, n.Verb, n.ObjectName, n.ObjectID)
}

// Subscriber receives notifications from a publisher.
type Subscriber interface {
	Update(n Notification)
}

// Publisher is the composable publish/subscribe capability. The zero value is
// ready to use. Membership is keyed on subscriber identity, so subscribing the
// same value twice is a no-op.
type Publisher struct {
	mu          sync.Mutex
	subscribers map[Subscriber]struct{}
}

// Subscribe registers a subscriber. A subscriber added while a publish is in
// flight is not guaranteed to receive that notification.
func (p *Publisher) Subscribe(s Subscriber) {
	if s == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.subscribers == nil {
		p.subscribers = make(map[Subscriber]struct{})
	}
	p.subscribers[s] = struct{}{}
}

// Unsubscribe removes a subscriber. Unknown subscribers are ignored.
func (p *Publisher) Unsubscribe(s Subscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.subscribers, s)
}

// Publish delivers the notification synchronously to every current
// subscriber, in no guaranteed order. Delivery happens outside the publisher
// lock so a subscriber may re-enter Subscribe or Unsubscribe. A panicking
// subscriber does not prevent delivery to the rest.
func (p *Publisher) Publish(n Notification) {
	p.mu.Lock()
	snapshot := make([]Subscriber, 0, len(p.subscribers))
	for s := range p.subscribers {
		snapshot = append(snapshot, s)
	}
	p.mu.Unlock()

	for _, s := range snapshot {
		deliver(s, n)
	}
}

func deliver(s Subscriber, n Notification) {
	defer func() {
		// Subscriber failures stay with the subscriber.
		_ = recover()
	}()
	s.Update(n)
}
