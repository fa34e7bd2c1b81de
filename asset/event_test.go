package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventSubscribe(t *testing.T) {
	var ev Event

	var calls int
	sub := ev.Subscribe(func() { calls++ })

	ev.Emit()
	ev.Emit()
	assert.Equal(t, 2, calls)
	assert.True(t, sub.Active())

	sub.Cancel()
	ev.Emit()
	assert.Equal(t, 2, calls)
	assert.False(t, sub.Active())
	assert.Equal(t, 0, ev.Len())

	// cancelling again is fine
	sub.Cancel()
}

func TestEventOnce(t *testing.T) {
	var ev Event

	var calls int
	sub := ev.Once(func() { calls++ })
	assert.Equal(t, 1, ev.Len())

	ev.Emit()
	ev.Emit()

	assert.Equal(t, 1, calls)
	assert.False(t, sub.Active())
	assert.Equal(t, 0, ev.Len())
}

func TestEventCancelWhileEmitting(t *testing.T) {
	var ev Event

	var second Subscription
	var secondCalled bool

	ev.Subscribe(func() { second.Cancel() })
	second = ev.Subscribe(func() { secondCalled = true })

	ev.Emit()
	assert.False(t, secondCalled)
	assert.Equal(t, 1, ev.Len())
}

func TestEventResubscribeWhileEmitting(t *testing.T) {
	var ev Event

	var calls int

	var resubscribe func()
	resubscribe = func() {
		calls++
		ev.Once(resubscribe)
	}

	ev.Once(resubscribe)

	ev.Emit()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, ev.Len())

	ev.Emit()
	assert.Equal(t, 2, calls)
}

func TestZeroSubscription(t *testing.T) {
	var sub Subscription
	assert.False(t, sub.Active())
	sub.Cancel()
}

func TestEventClear(t *testing.T) {
	var ev Event

	sub := ev.Subscribe(func() { t.Fatal("must not be called") })
	ev.Clear()
	ev.Emit()

	assert.False(t, sub.Active())
}
