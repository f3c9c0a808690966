package models

import (
	"time"
)

// AssetStatus - статус транспортного средства или оборудования
type AssetStatus string

const (
	AssetStatusAvailable   AssetStatus = "AVAILABLE"
	AssetStatusInUse       AssetStatus = "IN_USE"
	AssetStatusMaintenance AssetStatus = "MAINTENANCE"
)

// Asset - транспорт или оборудование из справочника.
// Поле Status меняет только жизненный цикл инцидента (dispatch/release)
// либо явное редактирование оператором.
type Asset struct {
	ID          string      `json:"id"`
	TenantID    string      `json:"tenant_id"`
	Name        string      `json:"name"`
	Status      AssetStatus `json:"status"`
	CustodianID string      `json:"custodian_id,omitempty"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Responder - дежурный сотрудник из справочника
type Responder struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	OnDuty   bool   `json:"on_duty"`
}

// DispatchCandidate - кандидат на назначение, вычисляется по требованию
// и никуда не сохраняется. DistanceMeters = +Inf, если позиция кандидата
// неизвестна или устарела.
type DispatchCandidate struct {
	SubjectID      string      `json:"subject_id"`
	SubjectKind    SubjectKind `json:"subject_kind"`
	DistanceMeters float64     `json:"distance_meters"`
	Available      bool        `json:"available"`
}
