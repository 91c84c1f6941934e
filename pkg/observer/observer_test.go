package observer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSubscriber struct {
	received []Notification
}

func (r *recordingSubscriber) Update(n Notification) {
	r.received = append(r.received, n)
}

type panickingSubscriber struct{}

func (panickingSubscriber) Update(Notification) {
	panic("subscriber failure")
}

func TestPublisher_PublishDeliversToAllSubscribers(t *testing.T) {
	var p Publisher
	first := &recordingSubscriber{}
	second := &recordingSubscriber{}
	p.Subscribe(first)
	p.Subscribe(second)

	p.Publish(NewMessage("hello"))

	assert.Len(t, first.received, 1)
	assert.Len(t, second.received, 1)
	assert.Equal(t, "hello", first.received[0].Message)
}

func TestPublisher_SubscribeTwiceDeliversOnce(t *testing.T) {
	var p Publisher
	sub := &recordingSubscriber{}
	p.Subscribe(sub)
	p.Subscribe(sub)

	p.Publish(NewMessage("once"))

	assert.Len(t, sub.received, 1)
}

func TestPublisher_UnsubscribeStopsDelivery(t *testing.T) {
	var p Publisher
	sub := &recordingSubscriber{}
	p.Subscribe(sub)
	p.Unsubscribe(sub)

	p.Publish(NewMessage("gone"))

	assert.Empty(t, sub.received)
}

func TestPublisher_UnsubscribeUnknownIsNoOp(t *testing.T) {
	var p Publisher
	p.Unsubscribe(&recordingSubscriber{})
	p.Publish(NewMessage("still fine"))
}

func TestPublisher_PanickingSubscriberDoesNotBlockOthers(t *testing.T) {
	var p Publisher
	sub := &recordingSubscriber{}
	p.Subscribe(panickingSubscriber{})
	p.Subscribe(sub)

	assert.NotPanics(t, func() {
		p.Publish(NewMessage("resilient"))
	})
	assert.Len(t, sub.received, 1)
}

func TestPublisher_NilSubscriberIgnored(t *testing.T) {
	var p Publisher
	p.Subscribe(nil)
	assert.NotPanics(t, func() {
		p.Publish(NewMessage("no receivers"))
	})
}

func TestNotification_StringRendering(t *testing.T) {
	event := NewEvent("Appointment", "AP000001", "is added under", "Doctor", "D001")
	assert.Equal(t, "Appointment (AP000001) is added under Doctor (D001)", event.String())

	message := NewMessage("Appointment outcome record R000001 has been added")
	assert.Equal(t, "Appointment outcome record R000001 has been added", message.String())
}

func TestFeed_KeepsNewestFirstWithinLimit(t *testing.T) {
	feed := NewFeed(3)
	feed.Update(NewMessage("a"))
	feed.Update(NewMessage("b"))
	feed.Update(NewMessage("c"))
	feed.Update(NewMessage("d"))

	recent := feed.Recent()
	assert.Len(t, recent, 3)
	assert.Equal(t, "d", recent[0].Message)
	assert.Equal(t, "c", recent[1].Message)
	assert.Equal(t, "b", recent[2].Message)
}
