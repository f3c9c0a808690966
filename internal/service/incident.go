package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/broadcast"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/webhook"
	"github.com/shenikar/emergency_dispatch_system/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с хранилищем инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, tenantID string, id uuid.UUID) (*models.Incident, error)
	List(ctx context.Context, tenantID string, page, pageSize int) ([]*models.Incident, error)
	UpdateLocation(ctx context.Context, tenantID string, id uuid.UUID, fix models.GeoFix) error
	// UpdateStatusCAS переводит статус атомарно: обновление применяется,
	// только если текущий статус равен from, иначе ErrConflict
	UpdateStatusCAS(ctx context.Context, tenantID string, id uuid.UUID, from, to models.IncidentStatus, resolvedAt *time.Time) error
	// SetAssignmentCAS устанавливает назначение и статус DISPATCHED атомарно
	// при условии, что и текущий статус, и текущее назначение совпадают со
	// снимком (from, prev); проигравший гонку вызов получает ErrConflict
	SetAssignmentCAS(ctx context.Context, tenantID string, id uuid.UUID, from models.IncidentStatus, prev *models.Assignment, assignment models.Assignment) error
	Delete(ctx context.Context, tenantID string, id uuid.UUID) error
	AppendTimeline(ctx context.Context, entry *models.TimelineEntry) error
	ListTimeline(ctx context.Context, tenantID string, incidentID uuid.UUID) ([]*models.TimelineEntry, error)
	GetIncidentFromCache(ctx context.Context, tenantID string, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, tenantID string, id uuid.UUID) error
}

// DirectoryRepository определяет контракт для справочников дежурных и техники
type DirectoryRepository interface {
	ListResponders(ctx context.Context, tenantID string) ([]*models.Responder, error)
	ListAssets(ctx context.Context, tenantID string) ([]*models.Asset, error)
	GetAsset(ctx context.Context, tenantID, assetID string) (*models.Asset, error)
	SetAssetStatus(ctx context.Context, tenantID, assetID string, status models.AssetStatus) error
}

// IncidentService определяет контракт для жизненного цикла инцидента
type IncidentService interface {
	CreateIncident(ctx context.Context, tenantID, originatorID, category string, fix *models.GeoFix) (*models.Incident, error)
	GetIncident(ctx context.Context, tenantID string, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, tenantID string, page, pageSize int) ([]*models.Incident, error)
	UpdateLocation(ctx context.Context, tenantID string, id uuid.UUID, fix models.GeoFix) error
	UpdateStatus(ctx context.Context, tenantID string, id uuid.UUID, target models.IncidentStatus) error
	Dispatch(ctx context.Context, tenantID string, id uuid.UUID, subjectID string, kind models.SubjectKind) error
	Resolve(ctx context.Context, tenantID string, id uuid.UUID) error
	DeleteIncident(ctx context.Context, tenantID string, id uuid.UUID) error
	AppendNote(ctx context.Context, tenantID string, id uuid.UUID, message string) error
	GetTimeline(ctx context.Context, tenantID string, id uuid.UUID) ([]*models.TimelineEntry, error)
}

// validNextStates - таблица допустимых переходов автомата.
// Любой запрошенный переход вне таблицы завершается ErrInvalidTransition,
// молчаливых no-op нет.
var validNextStates = map[models.IncidentStatus][]models.IncidentStatus{
	models.IncidentStatusNew: {
		models.IncidentStatusAcknowledged,
		models.IncidentStatusDispatched,
		models.IncidentStatusResolved,
		models.IncidentStatusFalseAlarm,
	},
	models.IncidentStatusAcknowledged: {
		models.IncidentStatusDispatched,
		models.IncidentStatusResolved,
		models.IncidentStatusFalseAlarm,
	},
	models.IncidentStatusDispatched: {
		models.IncidentStatusOnScene,
		models.IncidentStatusResolved,
		models.IncidentStatusFalseAlarm,
	},
	models.IncidentStatusOnScene: {
		models.IncidentStatusResolved,
		models.IncidentStatusFalseAlarm,
	},
}

func transitionAllowed(from, to models.IncidentStatus) bool {
	for _, next := range validNextStates[from] {
		if next == to {
			return true
		}
	}
	return false
}

type incidentService struct {
	repo      IncidentRepository
	directory DirectoryRepository
	hub       *broadcast.Hub
	publisher webhook.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
	metrics   *metrics.Metrics
}

// NewIncidentService создает сервис жизненного цикла инцидентов
func NewIncidentService(repo IncidentRepository, directory DirectoryRepository, hub *broadcast.Hub, publisher webhook.Publisher, logger *logrus.Logger, cfg *config.Config, m *metrics.Metrics) IncidentService {
	return &incidentService{
		repo:      repo,
		directory: directory,
		hub:       hub,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		metrics:   m,
	}
}

// CreateIncident создает инцидент в статусе NEW. Координата может
// отсутствовать: её отсутствие никогда не блокирует создание тревоги.
func (s *incidentService) CreateIncident(ctx context.Context, tenantID, originatorID, category string, fix *models.GeoFix) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "incident",
		"method":        "CreateIncident",
		"tenant_id":     tenantID,
		"originator_id": originatorID,
	})
	log.Info("Attempting to create a new incident")

	incident := &models.Incident{
		ID:           uuid.New(),
		TenantID:     tenantID,
		OriginatorID: originatorID,
		Category:     category,
		Status:       models.IncidentStatusNew,
		Location:     fix,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	s.appendSystemEntry(ctx, incident, "Incident created")
	s.notify(broadcast.EventIncidentCreated, incident)
	if s.metrics != nil {
		s.metrics.IncidentsCreated.Inc()
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return incident, nil
}

// GetIncident получает инцидент по ID в рамках тенанта
func (s *incidentService) GetIncident(ctx context.Context, tenantID string, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, tenantID, id)
	if err != nil {
		// Промах или сбой кеша не критичен, идём в бд
		log.WithError(err).Debug("Incident cache lookup failed")
	}
	if cached != nil {
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Debug("Failed to cache incident")
	}
	return incident, nil
}

// ListIncidents возвращает список инцидентов тенанта с пагинацией
func (s *incidentService) ListIncidents(ctx context.Context, tenantID string, page, pageSize int) ([]*models.Incident, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"tenant_id": tenantID,
		"page":      page,
		"page_size": pageSize,
	})

	incidents, err := s.repo.List(ctx, tenantID, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

// UpdateLocation перезаписывает координату инцидента. Допустимо в любом
// нетерминальном статусе и не меняет статус: создание тревоги и уточнение
// позиции - две отдельные фазы.
func (s *incidentService) UpdateLocation(ctx context.Context, tenantID string, id uuid.UUID, fix models.GeoFix) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateLocation",
		"incident_id": id,
	})

	incident, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update location of a missing incident")
		return fmt.Errorf("service: could not get incident for location update: %w", err)
	}
	if incident.Status.IsTerminal() {
		return models.NewInvalidTransitionError(incident.Status, incident.Status)
	}

	if err := s.repo.UpdateLocation(ctx, tenantID, id, fix); err != nil {
		log.WithError(err).Error("Failed to update incident location")
		return fmt.Errorf("service: could not update incident location: %w", err)
	}

	s.invalidateCache(ctx, tenantID, id)
	incident.Location = &fix
	s.notify(broadcast.EventIncidentUpdated, incident)

	log.Info("Incident location updated")
	return nil
}

// UpdateStatus выполняет общий переход статуса (ACKNOWLEDGED, ON_SCENE,
// FALSE_ALARM). Назначение техники идёт через Dispatch, завершение - через
// Resolve; запрос этих статусов здесь отклоняется как недопустимый переход.
func (s *incidentService) UpdateStatus(ctx context.Context, tenantID string, id uuid.UUID, target models.IncidentStatus) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateStatus",
		"incident_id": id,
		"target":      target,
	})

	incident, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to transition a missing incident")
		return fmt.Errorf("service: could not get incident for transition: %w", err)
	}

	if !transitionAllowed(incident.Status, target) {
		log.Warn("Invalid status transition requested")
		return models.NewInvalidTransitionError(incident.Status, target)
	}
	// DISPATCHED требует назначения, RESOLVED - побочных эффектов Resolve
	if target == models.IncidentStatusDispatched || target == models.IncidentStatusResolved {
		log.Warn("Status requires a dedicated operation")
		return models.NewInvalidTransitionError(incident.Status, target)
	}

	var resolvedAt *time.Time
	if target == models.IncidentStatusFalseAlarm {
		now := time.Now()
		resolvedAt = &now
	}

	if err := s.repo.UpdateStatusCAS(ctx, tenantID, id, incident.Status, target, resolvedAt); err != nil {
		log.WithError(err).Error("Failed to transition incident status")
		return fmt.Errorf("service: could not transition incident: %w", err)
	}

	// Ложная тревога терминальна: занятый ресурс возвращается в строй
	if target == models.IncidentStatusFalseAlarm {
		s.releaseAssignedAsset(ctx, incident)
	}

	s.invalidateCache(ctx, tenantID, id)
	incident.Status = target
	incident.ResolvedAt = resolvedAt
	s.appendSystemEntry(ctx, incident, fmt.Sprintf("Status changed to %s", target))
	s.notify(broadcast.EventIncidentUpdated, incident)
	if s.metrics != nil {
		s.metrics.IncidentTransitions.WithLabelValues(string(target)).Inc()
	}

	log.Info("Incident status transitioned")
	return nil
}

// Dispatch назначает дежурного или технику на инцидент. Допустимо из NEW
// и ACKNOWLEDGED, а также повторно из DISPATCHED (переназначение).
// Прежнее назначение снимается: его техника, если была, возвращается
// в AVAILABLE. Изменение применяется атомарно, проигравший гонку вызов
// получает ErrConflict.
func (s *incidentService) Dispatch(ctx context.Context, tenantID string, id uuid.UUID, subjectID string, kind models.SubjectKind) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "incident",
		"method":       "Dispatch",
		"incident_id":  id,
		"subject_id":   subjectID,
		"subject_kind": kind,
	})
	log.Info("Dispatching subject to incident")

	incident, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to dispatch to a missing incident")
		return fmt.Errorf("service: could not get incident for dispatch: %w", err)
	}

	if incident.Status != models.IncidentStatusNew &&
		incident.Status != models.IncidentStatusAcknowledged &&
		incident.Status != models.IncidentStatusDispatched {
		log.Warn("Dispatch requested from an invalid status")
		return models.NewInvalidTransitionError(incident.Status, models.IncidentStatusDispatched)
	}

	assignment := models.Assignment{
		SubjectID:   subjectID,
		SubjectKind: kind,
		AssignedAt:  time.Now(),
	}
	if err := s.repo.SetAssignmentCAS(ctx, tenantID, id, incident.Status, incident.Assignment, assignment); err != nil {
		if errors.Is(err, models.ErrConflict) {
			log.Warn("Lost dispatch race to a concurrent caller")
		} else {
			log.WithError(err).Error("Failed to set incident assignment")
		}
		return fmt.Errorf("service: could not dispatch incident: %w", err)
	}

	// Прежняя техника освобождается после того, как назначение перезаписано
	if prev := incident.Assignment; prev != nil && prev.SubjectKind == models.SubjectKindAsset && prev.SubjectID != subjectID {
		if err := s.directory.SetAssetStatus(ctx, tenantID, prev.SubjectID, models.AssetStatusAvailable); err != nil {
			log.WithError(err).Error("Failed to release previously assigned asset")
		}
	}
	if kind == models.SubjectKindAsset {
		if err := s.directory.SetAssetStatus(ctx, tenantID, subjectID, models.AssetStatusInUse); err != nil {
			log.WithError(err).Error("Failed to mark dispatched asset as in use")
		}
	}

	s.invalidateCache(ctx, tenantID, id)
	incident.Status = models.IncidentStatusDispatched
	incident.Assignment = &assignment
	s.appendSystemEntry(ctx, incident, fmt.Sprintf("Dispatched %s %s", kind, subjectID))
	s.notify(broadcast.EventIncidentUpdated, incident)
	if s.metrics != nil {
		s.metrics.Dispatches.Inc()
		s.metrics.IncidentTransitions.WithLabelValues(string(models.IncidentStatusDispatched)).Inc()
	}

	log.Info("Subject dispatched successfully")
	return nil
}

// Resolve завершает инцидент из любого нетерминального статуса.
// Назначение сохраняется для аудита, занятая техника освобождается.
func (s *incidentService) Resolve(ctx context.Context, tenantID string, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "Resolve",
		"incident_id": id,
	})
	log.Info("Resolving incident")

	incident, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to resolve a missing incident")
		return fmt.Errorf("service: could not get incident for resolve: %w", err)
	}
	if incident.Status.IsTerminal() {
		return models.NewInvalidTransitionError(incident.Status, models.IncidentStatusResolved)
	}

	now := time.Now()
	if err := s.repo.UpdateStatusCAS(ctx, tenantID, id, incident.Status, models.IncidentStatusResolved, &now); err != nil {
		log.WithError(err).Error("Failed to resolve incident")
		return fmt.Errorf("service: could not resolve incident: %w", err)
	}

	s.releaseAssignedAsset(ctx, incident)

	s.invalidateCache(ctx, tenantID, id)
	incident.Status = models.IncidentStatusResolved
	incident.ResolvedAt = &now
	s.appendSystemEntry(ctx, incident, "Incident resolved")
	s.notify(broadcast.EventIncidentUpdated, incident)
	if s.metrics != nil {
		s.metrics.IncidentTransitions.WithLabelValues(string(models.IncidentStatusResolved)).Inc()
	}

	log.Info("Incident resolved successfully")
	return nil
}

// DeleteIncident - жёсткое операторское удаление вне автомата.
// Всегда разрешено и всегда разрушительно, автоматически не вызывается.
func (s *incidentService) DeleteIncident(ctx context.Context, tenantID string, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Deleting incident")

	incident, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to delete a missing incident")
		return fmt.Errorf("service: could not get incident for delete: %w", err)
	}

	// Занятая техника не должна навсегда остаться IN_USE
	s.releaseAssignedAsset(ctx, incident)

	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		log.WithError(err).Error("Failed to delete incident")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}

	s.invalidateCache(ctx, tenantID, id)
	log.Info("Incident deleted")
	return nil
}

// AppendNote добавляет операторскую запись в хронологию без смены статуса
func (s *incidentService) AppendNote(ctx context.Context, tenantID string, id uuid.UUID, message string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AppendNote",
		"incident_id": id,
	})

	incident, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to annotate a missing incident")
		return fmt.Errorf("service: could not get incident for note: %w", err)
	}

	entry := &models.TimelineEntry{
		IncidentID: incident.ID,
		AuthorKind: models.TimelineAuthorOperator,
		Message:    message,
		At:         time.Now(),
	}
	if err := s.repo.AppendTimeline(ctx, entry); err != nil {
		log.WithError(err).Error("Failed to append operator note")
		return fmt.Errorf("service: could not append note: %w", err)
	}

	s.notify(broadcast.EventTimelineAppend, incident)
	return nil
}

// GetTimeline возвращает хронологию инцидента, упорядоченную по времени
func (s *incidentService) GetTimeline(ctx context.Context, tenantID string, id uuid.UUID) ([]*models.TimelineEntry, error) {
	entries, err := s.repo.ListTimeline(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not list timeline: %w", err)
	}
	return entries, nil
}

// releaseAssignedAsset возвращает назначенную технику в AVAILABLE
func (s *incidentService) releaseAssignedAsset(ctx context.Context, incident *models.Incident) {
	if incident.Assignment == nil || incident.Assignment.SubjectKind != models.SubjectKindAsset {
		return
	}
	if err := s.directory.SetAssetStatus(ctx, incident.TenantID, incident.Assignment.SubjectID, models.AssetStatusAvailable); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"incident_id": incident.ID,
			"asset_id":    incident.Assignment.SubjectID,
		}).Error("Failed to release assigned asset")
	}
}

// appendSystemEntry добавляет ровно одну системную запись о переходе
func (s *incidentService) appendSystemEntry(ctx context.Context, incident *models.Incident, message string) {
	entry := &models.TimelineEntry{
		IncidentID: incident.ID,
		AuthorKind: models.TimelineAuthorSystem,
		Message:    message,
		At:         time.Now(),
	}
	if err := s.repo.AppendTimeline(ctx, entry); err != nil {
		s.logger.WithError(err).WithField("incident_id", incident.ID).Error("Failed to append timeline entry")
	}
}

func (s *incidentService) invalidateCache(ctx context.Context, tenantID string, id uuid.UUID) {
	if err := s.repo.InvalidateIncidentCache(ctx, tenantID, id); err != nil {
		s.logger.WithError(err).WithField("incident_id", id).Debug("Failed to invalidate incident cache")
	}
}

// notify рассылает изменение инцидента в хаб и наружный вебхук.
// Сбой доставки не валит операторскую команду.
func (s *incidentService) notify(eventType broadcast.EventType, incident *models.Incident) {
	if s.hub != nil {
		s.hub.Publish(broadcast.Event{
			Type:     eventType,
			TenantID: incident.TenantID,
			Payload:  incident,
			At:       time.Now(),
		})
	}
	if s.publisher != nil {
		event := webhook.Event{
			Type:       string(eventType),
			TenantID:   incident.TenantID,
			IncidentID: incident.ID.String(),
			Status:     string(incident.Status),
			Timestamp:  time.Now(),
		}
		if err := s.publisher.Publish(context.Background(), event); err != nil {
			s.logger.WithError(err).WithField("incident_id", incident.ID).Error("Failed to publish webhook event")
		}
	}
}
