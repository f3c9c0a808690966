package models

import (
	"time"
)

// FixSource - источник получения координат
type FixSource string

const (
	FixSourceGPS     FixSource = "GPS"
	FixSourceNetwork FixSource = "NETWORK"
	FixSourceUnknown FixSource = "UNKNOWN"
)

// GeoFix представляет одно измерение местоположения устройства.
// Структура неизменяемая: каждое новое измерение - новый экземпляр.
type GeoFix struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	HeadingDeg     *float64  `json:"heading_deg,omitempty"`
	SpeedMps       *float64  `json:"speed_mps,omitempty"`
	CapturedAt     time.Time `json:"captured_at"`
	Source         FixSource `json:"source"`
}

// Age возвращает возраст измерения относительно переданного момента времени
func (f GeoFix) Age(now time.Time) time.Duration {
	return now.Sub(f.CapturedAt)
}
