package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentStatus - статус жизненного цикла инцидента
type IncidentStatus string

const (
	IncidentStatusNew          IncidentStatus = "NEW"
	IncidentStatusAcknowledged IncidentStatus = "ACKNOWLEDGED"
	IncidentStatusDispatched   IncidentStatus = "DISPATCHED"
	IncidentStatusOnScene      IncidentStatus = "ON_SCENE"
	IncidentStatusResolved     IncidentStatus = "RESOLVED"
	IncidentStatusFalseAlarm   IncidentStatus = "FALSE_ALARM"
)

// IsTerminal сообщает, является ли статус конечным
func (s IncidentStatus) IsTerminal() bool {
	return s == IncidentStatusResolved || s == IncidentStatusFalseAlarm
}

// Assignment - текущее назначение субъекта на инцидент.
// У инцидента не более одного активного назначения одновременно.
type Assignment struct {
	SubjectID   string      `json:"subject_id"`
	SubjectKind SubjectKind `json:"subject_kind"`
	AssignedAt  time.Time   `json:"assigned_at"`
}

// Incident представляет тревогу SOS или вручную заведённый инцидент
type Incident struct {
	ID           uuid.UUID      `json:"id"`
	TenantID     string         `json:"tenant_id"`
	OriginatorID string         `json:"originator_id"`
	Category     string         `json:"category"`
	Status       IncidentStatus `json:"status"`
	Location     *GeoFix        `json:"location,omitempty"`
	Assignment   *Assignment    `json:"assignment,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	ResolvedAt   *time.Time     `json:"resolved_at,omitempty"`
}

// TimelineAuthorKind - автор записи в хронологии инцидента
type TimelineAuthorKind string

const (
	TimelineAuthorSystem   TimelineAuthorKind = "SYSTEM"
	TimelineAuthorOperator TimelineAuthorKind = "OPERATOR"
)

// TimelineEntry - запись в append-only хронологии инцидента.
// Записи упорядочены по At по возрастанию, при равенстве - по порядку вставки.
type TimelineEntry struct {
	ID         int64              `json:"id"`
	IncidentID uuid.UUID          `json:"incident_id"`
	AuthorKind TimelineAuthorKind `json:"author_kind"`
	Message    string             `json:"message"`
	At         time.Time          `json:"at"`
}
