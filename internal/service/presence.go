package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/policy"
	"github.com/shenikar/emergency_dispatch_system/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// PresenceStore определяет контракт на чтение и запись реестра присутствия
type PresenceStore interface {
	PresenceReader
	Upsert(tenantID, subjectID string, kind models.SubjectKind, fix *models.GeoFix, status models.PresenceStatus) models.PresenceRecord
	MarkOffline(tenantID, subjectID string) error
}

// PresenceService определяет контракт обработки потока позиций
type PresenceService interface {
	// ReportFix прогоняет измерение через политику обновлений; принятые
	// попадают в реестр, отклонённые молча отбрасываются
	ReportFix(tenantID, subjectID string, kind models.SubjectKind, fix models.GeoFix) (bool, error)
	SetStatus(tenantID, subjectID string, kind models.SubjectKind, status models.PresenceStatus)
	MarkOffline(tenantID, subjectID string) error
	ListActive(tenantID string, kind models.SubjectKind) []models.PresenceRecord
	ActiveSubjectCount(tenantID string) int
}

// subjectStream - состояние потока одного субъекта. Мьютекс обеспечивает
// единственного писателя на поток: принятые измерения попадают в реестр
// в том порядке, в котором их приняла политика.
type subjectStream struct {
	mu   sync.Mutex
	last *policy.Accepted
}

type presenceService struct {
	store   PresenceStore
	policy  *policy.UpdatePolicy
	logger  *logrus.Logger
	cfg     *config.Config
	metrics *metrics.Metrics

	mu      sync.Mutex
	streams map[string]*subjectStream
}

// NewPresenceService создает сервис присутствия
func NewPresenceService(store PresenceStore, updPolicy *policy.UpdatePolicy, logger *logrus.Logger, cfg *config.Config, m *metrics.Metrics) PresenceService {
	return &presenceService{
		store:   store,
		policy:  updPolicy,
		logger:  logger,
		cfg:     cfg,
		metrics: m,
		streams: make(map[string]*subjectStream),
	}
}

func (s *presenceService) stream(tenantID, subjectID string) *subjectStream {
	key := fmt.Sprintf("%s:%s", tenantID, subjectID)

	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.streams[key]
	if !ok {
		st = &subjectStream{}
		s.streams[key] = st
	}
	return st
}

// ReportFix обрабатывает сырое измерение субъекта
func (s *presenceService) ReportFix(tenantID, subjectID string, kind models.SubjectKind, fix models.GeoFix) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "presence",
		"method":     "ReportFix",
		"tenant_id":  tenantID,
		"subject_id": subjectID,
	})

	st := s.stream(tenantID, subjectID)
	st.mu.Lock()
	defer st.mu.Unlock()

	accepted, next := s.policy.Evaluate(st.last, fix, time.Now())
	st.last = next
	if !accepted {
		if s.metrics != nil {
			s.metrics.FixesRejected.Inc()
		}
		log.Debug("Fix rejected by update policy")
		return false, nil
	}

	s.store.Upsert(tenantID, subjectID, kind, &fix, "")
	if s.metrics != nil {
		s.metrics.FixesAccepted.Inc()
	}
	log.Debug("Fix accepted and published")
	return true, nil
}

// SetStatus обновляет оперативный статус субъекта без новой координаты
func (s *presenceService) SetStatus(tenantID, subjectID string, kind models.SubjectKind, status models.PresenceStatus) {
	s.store.Upsert(tenantID, subjectID, kind, nil, status)
}

// MarkOffline снимает субъекта с дежурства
func (s *presenceService) MarkOffline(tenantID, subjectID string) error {
	if err := s.store.MarkOffline(tenantID, subjectID); err != nil {
		return fmt.Errorf("service: could not mark subject offline: %w", err)
	}
	return nil
}

// ListActive возвращает неустаревшие записи тенанта. Порог устаревания
// зависит от типа субъекта: активное SOS-отслеживание живёт секунды.
func (s *presenceService) ListActive(tenantID string, kind models.SubjectKind) []models.PresenceRecord {
	if kind != "" {
		return s.store.ListActive(tenantID, kind, s.cfg.StaleThresholdFor(string(kind)))
	}

	// Без фильтра по типу каждая запись оценивается по порогу своего типа:
	// замолчавший SOS-источник не должен переживать свои 30 секунд только
	// потому, что список запросили общим.
	broadest := s.cfg.ResponderStaleAfter
	if s.cfg.SOSStaleAfter > broadest {
		broadest = s.cfg.SOSStaleAfter
	}
	now := time.Now()

	records := s.store.ListActive(tenantID, "", broadest)
	result := make([]models.PresenceRecord, 0, len(records))
	for _, rec := range records {
		if rec.IsStale(now, s.cfg.StaleThresholdFor(string(rec.SubjectKind))) {
			continue
		}
		result = append(result, rec)
	}
	return result
}

// ActiveSubjectCount возвращает число субъектов, активных за окно статистики
func (s *presenceService) ActiveSubjectCount(tenantID string) int {
	window := time.Duration(s.cfg.StatsTimeWindowMinutes) * time.Minute
	return s.store.CountActiveSince(tenantID, window)
}
