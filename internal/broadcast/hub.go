package broadcast

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// EventType - тип события, рассылаемого наблюдателям
type EventType string

const (
	EventPresenceUpdated EventType = "presence.updated"
	EventPresenceOffline EventType = "presence.offline"
	EventIncidentCreated EventType = "incident.created"
	EventIncidentUpdated EventType = "incident.updated"
	EventTimelineAppend  EventType = "timeline.appended"
)

// Event - изменение реестра присутствия или инцидента
type Event struct {
	Type     EventType   `json:"type"`
	TenantID string      `json:"tenant_id"`
	Payload  interface{} `json:"payload"`
	At       time.Time   `json:"at"`
}

// Subscription - дескриптор подписки на события хаба
type Subscription struct {
	C        <-chan Event
	id       uint64
	tenantID string
	hub      *Hub
	once     sync.Once
}

// Cancel отменяет подписку. Идемпотентна и не влияет на сами инциденты.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.hub.remove(s.tenantID, s.id)
	})
}

type subscriber struct {
	ch chan Event
}

// Hub рассылает события всем подписчикам своего тенанта. Доставка
// неблокирующая: подписчик с переполненным буфером пропускает событие,
// состояние он в любой момент может перечитать из реестра.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string]map[uint64]*subscriber
	logger *logrus.Logger
}

// NewHub создает пустой хаб
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		subs:   make(map[string]map[uint64]*subscriber),
		logger: logger,
	}
}

// Subscribe регистрирует наблюдателя за событиями тенанта.
// bufferSize <= 0 заменяется на 16.
func (h *Hub) Subscribe(tenantID string, bufferSize int) *Subscription {
	if bufferSize <= 0 {
		bufferSize = 16
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &subscriber{ch: make(chan Event, bufferSize)}
	if h.subs[tenantID] == nil {
		h.subs[tenantID] = make(map[uint64]*subscriber)
	}
	h.subs[tenantID][h.nextID] = sub

	return &Subscription{
		C:        sub.ch,
		id:       h.nextID,
		tenantID: tenantID,
		hub:      h,
	}
}

func (h *Hub) remove(tenantID string, id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.subs[tenantID]; ok {
		if sub, ok := subs[id]; ok {
			close(sub.ch)
			delete(subs, id)
		}
		if len(subs) == 0 {
			delete(h.subs, tenantID)
		}
	}
}

// Publish доставляет событие всем подписчикам тенанта
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs[event.TenantID] {
		select {
		case sub.ch <- event:
		default:
			// Медленный подписчик: событие пропущено
			h.logger.WithFields(logrus.Fields{
				"tenant_id":  event.TenantID,
				"event_type": event.Type,
			}).Debug("Dropping event for slow subscriber")
		}
	}
}

// SubscriberCount возвращает число активных подписчиков тенанта
func (h *Hub) SubscriberCount(tenantID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[tenantID])
}
