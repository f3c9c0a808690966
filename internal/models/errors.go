package models

import (
	"errors"
	"fmt"
)

// Таксономия ошибок ядра. Конкретные слои оборачивают их через %w,
// вызывающие проверяют errors.Is.
var (
	// ErrPermissionDenied - доступ к датчику геолокации запрещён. Терминальная
	// ошибка, повторные попытки не выполняются.
	ErrPermissionDenied = errors.New("location permission denied")

	// ErrUnavailable - датчик временно недоступен
	ErrUnavailable = errors.New("location source unavailable")

	// ErrTimeout - датчик не ответил за отведённое время
	ErrTimeout = errors.New("location request timed out")

	// ErrInvalidTransition - запрошенный переход статуса инцидента запрещён
	ErrInvalidTransition = errors.New("invalid incident status transition")

	// ErrConflict - конкурентное изменение того же инцидента или ресурса
	ErrConflict = errors.New("concurrent modification conflict")

	// ErrNotFound - субъект или инцидент отсутствует в рамках тенанта.
	// Возвращается и при обращении к чужому тенанту: существование записи
	// в другом тенанте не раскрывается.
	ErrNotFound = errors.New("not found")
)

// NewInvalidTransitionError оборачивает ErrInvalidTransition с текущим
// и запрошенным статусами - оператор должен видеть оба.
func NewInvalidTransitionError(current, requested IncidentStatus) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, requested)
}
