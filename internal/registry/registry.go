package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/emergency_dispatch_system/internal/broadcast"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// Registry - разделяемая таблица текущих позиций субъектов. Одна запись
// на пару (tenant_id, subject_id). Запись обновляется атомарно: читатели
// всегда видят либо прежний, либо новый снимок целиком, никогда частичный.
type Registry struct {
	mu      sync.RWMutex
	records map[string]map[string]models.PresenceRecord // tenant -> subject -> record
	hub     *broadcast.Hub
}

// NewRegistry создает пустой реестр. Изменения публикуются в хаб.
func NewRegistry(hub *broadcast.Hub) *Registry {
	return &Registry{
		records: make(map[string]map[string]models.PresenceRecord),
		hub:     hub,
	}
}

func tenantKey(tenantID, subjectID string) string {
	return fmt.Sprintf("%s:%s", tenantID, subjectID)
}

// Upsert обновляет запись субъекта с merge-семантикой: передан fix -
// заменяется позиция, передан status - заменяется статус, LastActiveAt
// всегда поднимается до текущего момента.
func (r *Registry) Upsert(tenantID, subjectID string, kind models.SubjectKind, fix *models.GeoFix, status models.PresenceStatus) models.PresenceRecord {
	now := time.Now()

	r.mu.Lock()
	if r.records[tenantID] == nil {
		r.records[tenantID] = make(map[string]models.PresenceRecord)
	}
	rec, ok := r.records[tenantID][subjectID]
	if !ok {
		rec = models.PresenceRecord{
			SubjectID:   subjectID,
			SubjectKind: kind,
			TenantID:    tenantID,
			Status:      models.PresenceStatusOnDuty,
		}
	}
	if fix != nil {
		rec.LastFix = *fix
	}
	if status != "" {
		rec.Status = status
	}
	if kind != "" {
		rec.SubjectKind = kind
	}
	rec.LastActiveAt = now
	r.records[tenantID][subjectID] = rec
	r.mu.Unlock()

	r.publish(broadcast.EventPresenceUpdated, tenantID, rec, now)
	return rec
}

// MarkOffline переводит субъекта в OFFLINE. Запись не удаляется:
// история позиции остаётся доступной через Get.
func (r *Registry) MarkOffline(tenantID, subjectID string) error {
	now := time.Now()

	r.mu.Lock()
	rec, ok := r.records[tenantID][subjectID]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("presence %s: %w", tenantKey(tenantID, subjectID), models.ErrNotFound)
	}
	rec.Status = models.PresenceStatusOffline
	r.records[tenantID][subjectID] = rec
	r.mu.Unlock()

	r.publish(broadcast.EventPresenceOffline, tenantID, rec, now)
	return nil
}

// Get возвращает запись субъекта в рамках тенанта. Чужой тенант получает
// ErrNotFound, даже если subject_id существует в другом тенанте.
func (r *Registry) Get(tenantID, subjectID string) (models.PresenceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[tenantID][subjectID]
	if !ok {
		return models.PresenceRecord{}, fmt.Errorf("presence %s: %w", tenantKey(tenantID, subjectID), models.ErrNotFound)
	}
	return rec, nil
}

// ListActive возвращает неустаревшие записи тенанта со статусом != OFFLINE.
// Порог устаревания задаёт вызывающий: для дежурных и активного
// SOS-отслеживания он разный. kind == "" означает все типы субъектов.
func (r *Registry) ListActive(tenantID string, kind models.SubjectKind, staleThreshold time.Duration) []models.PresenceRecord {
	now := time.Now()

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.PresenceRecord, 0)
	for _, rec := range r.records[tenantID] {
		if rec.Status == models.PresenceStatusOffline {
			continue
		}
		if kind != "" && rec.SubjectKind != kind {
			continue
		}
		if rec.IsStale(now, staleThreshold) {
			continue
		}
		result = append(result, rec)
	}
	return result
}

// CountActiveSince возвращает число субъектов тенанта, активных за окно
func (r *Registry) CountActiveSince(tenantID string, window time.Duration) int {
	now := time.Now()

	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, rec := range r.records[tenantID] {
		if now.Sub(rec.LastActiveAt) <= window {
			count++
		}
	}
	return count
}

func (r *Registry) publish(eventType broadcast.EventType, tenantID string, rec models.PresenceRecord, at time.Time) {
	if r.hub == nil {
		return
	}
	r.hub.Publish(broadcast.Event{
		Type:     eventType,
		TenantID: tenantID,
		Payload:  rec,
		At:       at,
	})
}
