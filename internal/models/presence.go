package models

import (
	"time"
)

// SubjectKind - тип отслеживаемого субъекта
type SubjectKind string

const (
	SubjectKindResponder     SubjectKind = "RESPONDER"
	SubjectKindAsset         SubjectKind = "ASSET"
	SubjectKindSOSOriginator SubjectKind = "SOS_ORIGINATOR"
)

// PresenceStatus - оперативный статус субъекта
type PresenceStatus string

const (
	PresenceStatusOnDuty  PresenceStatus = "ON_DUTY"
	PresenceStatusBusy    PresenceStatus = "BUSY"
	PresenceStatusOffline PresenceStatus = "OFFLINE"
)

// PresenceRecord представляет текущее известное местоположение субъекта.
// Одна активная запись на пару (tenant_id, subject_id); обновляется на месте
// с merge-семантикой при каждом принятом измерении.
type PresenceRecord struct {
	SubjectID    string         `json:"subject_id"`
	SubjectKind  SubjectKind    `json:"subject_kind"`
	TenantID     string         `json:"tenant_id"`
	LastFix      GeoFix         `json:"last_fix"`
	Status       PresenceStatus `json:"status"`
	LastActiveAt time.Time      `json:"last_active_at"`
}

// IsStale проверяет, устарела ли запись относительно переданного порога
func (r PresenceRecord) IsStale(now time.Time, threshold time.Duration) bool {
	return now.Sub(r.LastActiveAt) > threshold
}
