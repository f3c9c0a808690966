package sampler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// GeoSource определяет контракт для источника геолокации. Реальный датчик
// внедряется снаружи, тесты подставляют скриптованный фейк.
type GeoSource interface {
	// Once выполняет одно измерение. Контекст ограничивает время ожидания.
	Once(ctx context.Context, highAccuracy bool) (models.GeoFix, error)
	// Watch запускает непрерывный поток измерений и возвращает функцию
	// остановки. Источник может доставлять колбэки и после остановки.
	Watch(ctx context.Context, highAccuracy bool, onFix func(models.GeoFix)) (func(), error)
}

// Sampler получает координаты устройства с адаптивной точностью
type Sampler struct {
	source            GeoSource
	highAccuracyLimit time.Duration
	lowAccuracyLimit  time.Duration
	logger            *logrus.Logger
}

// NewSampler создает Sampler поверх переданного источника
func NewSampler(source GeoSource, highAccuracyLimit, lowAccuracyLimit time.Duration, logger *logrus.Logger) *Sampler {
	return &Sampler{
		source:            source,
		highAccuracyLimit: highAccuracyLimit,
		lowAccuracyLimit:  lowAccuracyLimit,
		logger:            logger,
	}
}

// RequestSingleFix выполняет одно измерение: сначала попытка с высокой
// точностью, при сбое (кроме запрета доступа) - ровно одна повторная
// попытка с пониженной точностью и увеличенным таймаутом.
func (s *Sampler) RequestSingleFix(ctx context.Context) (models.GeoFix, error) {
	log := s.logger.WithField("component", "sampler")

	hctx, cancel := context.WithTimeout(ctx, s.highAccuracyLimit)
	fix, err := s.source.Once(hctx, true)
	cancel()
	if err == nil {
		return fix, nil
	}

	// Запрет доступа терминален: повторять бессмысленно, а вызывающий
	// должен показать пользователю именно "включите геолокацию"
	if errors.Is(err, models.ErrPermissionDenied) {
		return models.GeoFix{}, err
	}

	log.WithError(err).Warn("High accuracy fix failed, retrying with low accuracy")

	lctx, cancel := context.WithTimeout(ctx, s.lowAccuracyLimit)
	defer cancel()
	fix, err = s.source.Once(lctx, false)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return models.GeoFix{}, fmt.Errorf("%w: low accuracy retry: %v", models.ErrTimeout, err)
		}
		return models.GeoFix{}, fmt.Errorf("single fix failed after retry: %w", err)
	}
	return fix, nil
}

// Subscription - дескриптор непрерывного наблюдения за координатами
type Subscription struct {
	stopped  atomic.Bool
	stopOnce sync.Once
	cancel   func()
}

// Stop останавливает наблюдение. Идемпотентна: повторный вызов - no-op.
func (s *Subscription) Stop() {
	s.stopOnce.Do(func() {
		s.stopped.Store(true)
		if s.cancel != nil {
			s.cancel()
		}
	})
}

// Stopped сообщает, была ли подписка остановлена
func (s *Subscription) Stopped() bool {
	return s.stopped.Load()
}

// StartContinuous запускает непрерывное наблюдение. Колбэки, пришедшие
// после Stop, отбрасываются и до получателя не доходят.
func (s *Sampler) StartContinuous(ctx context.Context, onFix func(models.GeoFix)) (*Subscription, error) {
	sub := &Subscription{}

	guarded := func(fix models.GeoFix) {
		// Источник может прислать запоздавший колбэк после остановки
		if sub.stopped.Load() {
			return
		}
		onFix(fix)
	}

	stop, err := s.source.Watch(ctx, true, guarded)
	if err != nil {
		if errors.Is(err, models.ErrPermissionDenied) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to start continuous sampling: %w", err)
	}
	sub.cancel = stop
	return sub, nil
}
