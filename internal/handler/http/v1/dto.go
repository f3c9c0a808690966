package v1

import (
	"time"

	"github.com/google/uuid"
)

// GeoFixDTO - измерение позиции в запросах и ответах
// @Description Измерение позиции
type GeoFixDTO struct {
	Latitude       float64   `json:"latitude" validate:"latitude"`
	Longitude      float64   `json:"longitude" validate:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters" validate:"gte=0"`
	HeadingDeg     *float64  `json:"heading_deg,omitempty" validate:"omitempty,gte=0,lt=360"`
	SpeedMps       *float64  `json:"speed_mps,omitempty" validate:"omitempty,gte=0"`
	CapturedAt     time.Time `json:"captured_at" validate:"required"`
	Source         string    `json:"source" validate:"omitempty,oneof=GPS NETWORK UNKNOWN"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента. Координата опциональна.
type CreateIncidentRequest struct {
	OriginatorID string     `json:"originator_id" validate:"required,min=1,max=255"`
	Category     string     `json:"category" validate:"required,min=2,max=64"`
	Location     *GeoFixDTO `json:"location,omitempty"`
}

// UpdateLocationRequest DTO для уточнения координаты инцидента
// @Description DTO для уточнения координаты инцидента
type UpdateLocationRequest struct {
	Location GeoFixDTO `json:"location" validate:"required"`
}

// TransitionRequest DTO для перевода статуса
// @Description DTO для перевода статуса инцидента
type TransitionRequest struct {
	Target string `json:"target" validate:"required,oneof=ACKNOWLEDGED ON_SCENE FALSE_ALARM"`
}

// DispatchRequest DTO для назначения дежурного или техники
// @Description DTO для назначения дежурного или техники
type DispatchRequest struct {
	SubjectID   string `json:"subject_id" validate:"required,min=1,max=255"`
	SubjectKind string `json:"subject_kind" validate:"required,oneof=RESPONDER ASSET"`
}

// AppendNoteRequest DTO для операторской заметки
// @Description DTO для операторской заметки в хронологии
type AppendNoteRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// ReportFixRequest DTO для отчёта о позиции субъекта
// @Description DTO для отчёта о позиции субъекта
type ReportFixRequest struct {
	SubjectID   string    `json:"subject_id" validate:"required,min=1,max=255"`
	SubjectKind string    `json:"subject_kind" validate:"required,oneof=RESPONDER ASSET SOS_ORIGINATOR"`
	Fix         GeoFixDTO `json:"fix" validate:"required"`
}

// SetPresenceStatusRequest DTO для смены оперативного статуса
// @Description DTO для смены оперативного статуса субъекта
type SetPresenceStatusRequest struct {
	SubjectID   string `json:"subject_id" validate:"required,min=1,max=255"`
	SubjectKind string `json:"subject_kind" validate:"required,oneof=RESPONDER ASSET SOS_ORIGINATOR"`
	Status      string `json:"status" validate:"required,oneof=ON_DUTY BUSY OFFLINE"`
}

// AssignmentResponse - текущее назначение инцидента
// @Description Текущее назначение инцидента
type AssignmentResponse struct {
	SubjectID   string    `json:"subject_id"`
	SubjectKind string    `json:"subject_kind"`
	AssignedAt  time.Time `json:"assigned_at"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID           uuid.UUID           `json:"id"`
	TenantID     string              `json:"tenant_id"`
	OriginatorID string              `json:"originator_id"`
	Category     string              `json:"category"`
	Status       string              `json:"status"`
	Location     *GeoFixDTO          `json:"location,omitempty"`
	Assignment   *AssignmentResponse `json:"assignment,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	ResolvedAt   *time.Time          `json:"resolved_at,omitempty"`
}

// TimelineEntryResponse DTO записи хронологии
// @Description Запись хронологии инцидента
type TimelineEntryResponse struct {
	ID         int64     `json:"id"`
	AuthorKind string    `json:"author_kind"`
	Message    string    `json:"message"`
	At         time.Time `json:"at"`
}

// PresenceResponse DTO записи присутствия
// @Description Текущая позиция и статус субъекта
type PresenceResponse struct {
	SubjectID    string    `json:"subject_id"`
	SubjectKind  string    `json:"subject_kind"`
	LastFix      GeoFixDTO `json:"last_fix"`
	Status       string    `json:"status"`
	LastActiveAt time.Time `json:"last_active_at"`
}

// CandidateResponse DTO кандидата на назначение
// @Description Кандидат на назначение, отранжированный по доступности и близости
type CandidateResponse struct {
	SubjectID      string   `json:"subject_id"`
	SubjectKind    string   `json:"subject_kind"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	Available      bool     `json:"available"`
}

// ReportFixResponse DTO результата обработки измерения
// @Description Результат обработки измерения политикой обновлений
type ReportFixResponse struct {
	Accepted bool `json:"accepted"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	ActiveSubjects int `json:"active_subjects"`
}
