package policy

import (
	"time"

	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// Пороги материального улучшения точности: если прежнее измерение было
// грубым (хуже 100 м), а новое заметно точнее (лучше 50 м), обновление
// публикуется даже без смещения.
const (
	coarseAccuracyMeters = 100.0
	goodAccuracyMeters   = 50.0
)

// Accepted - снимок последнего принятого измерения по субъекту.
// Передаётся в следующий вызов Evaluate.
type Accepted struct {
	Fix        models.GeoFix
	AcceptedAt time.Time
}

// UpdatePolicy решает, достаточно ли значимо новое измерение, чтобы его
// публиковать. Компонент чистый: никакого ввода-вывода, решение - функция
// от (предыдущее, кандидат, now).
type UpdatePolicy struct {
	throttle          time.Duration
	staleFixAge       time.Duration
	minDistanceMeters float64
}

// NewUpdatePolicy создает политику с явными порогами
func NewUpdatePolicy(throttle, staleFixAge time.Duration, minDistanceMeters float64) *UpdatePolicy {
	return &UpdatePolicy{
		throttle:          throttle,
		staleFixAge:       staleFixAge,
		minDistanceMeters: minDistanceMeters,
	}
}

// Evaluate применяет правила по порядку, первое сработавшее решает исход.
// При принятии возвращается новый снимок последнего принятого измерения.
func (p *UpdatePolicy) Evaluate(prev *Accepted, fix models.GeoFix, now time.Time) (bool, *Accepted) {
	// 1. Первого измерения ещё не было - принимаем, поток должен стартовать
	if prev == nil {
		return true, &Accepted{Fix: fix, AcceptedAt: now}
	}

	// 2. Троттлинг: с момента последнего принятого прошло слишком мало
	if now.Sub(prev.AcceptedAt) < p.throttle {
		return false, prev
	}

	// 3. Устаревшее измерение: защита от кэшированных координат,
	// всплывающих после более свежих
	if fix.Age(now) > p.staleFixAge {
		return false, prev
	}

	// 4. Значимое смещение
	dist := geo.HaversineMeters(
		prev.Fix.Latitude, prev.Fix.Longitude,
		fix.Latitude, fix.Longitude,
	)
	if dist >= p.minDistanceMeters {
		return true, &Accepted{Fix: fix, AcceptedAt: now}
	}

	// 5. Материальное улучшение точности без смещения
	if prev.Fix.AccuracyMeters > coarseAccuracyMeters && fix.AccuracyMeters < goodAccuracyMeters {
		return true, &Accepted{Fix: fix, AcceptedAt: now}
	}

	// 6. Иначе - отклоняем
	return false, prev
}
