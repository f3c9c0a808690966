package broadcast

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewHub(logger)
}

func TestHub_PublishReachesAllTenantSubscribers(t *testing.T) {
	hub := newTestHub()

	sub1 := hub.Subscribe("tenant-a", 4)
	sub2 := hub.Subscribe("tenant-a", 4)
	defer sub1.Cancel()
	defer sub2.Cancel()

	hub.Publish(Event{Type: EventIncidentCreated, TenantID: "tenant-a", At: time.Now()})

	for _, sub := range []*Subscription{sub1, sub2} {
		select {
		case ev := <-sub.C:
			assert.Equal(t, EventIncidentCreated, ev.Type)
		default:
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestHub_TenantIsolation(t *testing.T) {
	hub := newTestHub()

	subA := hub.Subscribe("tenant-a", 4)
	subB := hub.Subscribe("tenant-b", 4)
	defer subA.Cancel()
	defer subB.Cancel()

	hub.Publish(Event{Type: EventPresenceUpdated, TenantID: "tenant-a", At: time.Now()})

	assert.Len(t, subA.C, 1)
	assert.Len(t, subB.C, 0)
}

func TestHub_SlowSubscriberDropsNotBlocks(t *testing.T) {
	hub := newTestHub()

	sub := hub.Subscribe("tenant-a", 1)
	defer sub.Cancel()

	done := make(chan struct{})
	go func() {
		// Буфер на одно событие: второе должно быть отброшено без блокировки
		hub.Publish(Event{Type: EventPresenceUpdated, TenantID: "tenant-a"})
		hub.Publish(Event{Type: EventPresenceUpdated, TenantID: "tenant-a"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on slow subscriber")
	}
	assert.Len(t, sub.C, 1)
}

func TestSubscription_CancelIdempotent(t *testing.T) {
	hub := newTestHub()

	sub := hub.Subscribe("tenant-a", 4)
	require.Equal(t, 1, hub.SubscriberCount("tenant-a"))

	sub.Cancel()
	sub.Cancel()

	assert.Equal(t, 0, hub.SubscriberCount("tenant-a"))

	// Канал закрыт после отмены
	_, open := <-sub.C
	assert.False(t, open)
}

func TestHub_PublishAfterCancelDoesNotPanic(t *testing.T) {
	hub := newTestHub()

	sub := hub.Subscribe("tenant-a", 4)
	sub.Cancel()

	assert.NotPanics(t, func() {
		hub.Publish(Event{Type: EventIncidentUpdated, TenantID: "tenant-a"})
	})
}
