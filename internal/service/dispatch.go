package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// PresenceReader определяет контракт на чтение реестра присутствия
type PresenceReader interface {
	Get(tenantID, subjectID string) (models.PresenceRecord, error)
	ListActive(tenantID string, kind models.SubjectKind, staleThreshold time.Duration) []models.PresenceRecord
	CountActiveSince(tenantID string, window time.Duration) int
}

// DispatchService определяет контракт подбора кандидатов на назначение
type DispatchService interface {
	Recommend(ctx context.Context, tenantID string, incidentID uuid.UUID, limit int) ([]models.DispatchCandidate, error)
}

type dispatchService struct {
	repo      IncidentRepository
	directory DirectoryRepository
	presence  PresenceReader
	logger    *logrus.Logger
	cfg       *config.Config
}

// NewDispatchService создает сервис рекомендаций по назначению
func NewDispatchService(repo IncidentRepository, directory DirectoryRepository, presence PresenceReader, logger *logrus.Logger, cfg *config.Config) DispatchService {
	return &dispatchService{
		repo:      repo,
		directory: directory,
		presence:  presence,
		logger:    logger,
		cfg:       cfg,
	}
}

// Recommend ранжирует дежурных и технику тенанта по доступности и близости
// к инциденту. Только чтение, без побочных эффектов; сколько кандидатов
// показать - решает вызывающий через limit (0 - всех).
func (s *dispatchService) Recommend(ctx context.Context, tenantID string, incidentID uuid.UUID, limit int) ([]models.DispatchCandidate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "Recommend",
		"incident_id": incidentID,
	})

	incident, err := s.repo.GetByID(ctx, tenantID, incidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident for recommendation")
		return nil, fmt.Errorf("service: could not get incident for recommendation: %w", err)
	}

	responders, err := s.directory.ListResponders(ctx, tenantID)
	if err != nil {
		log.WithError(err).Error("Failed to list responders")
		return nil, fmt.Errorf("service: could not list responders: %w", err)
	}
	assets, err := s.directory.ListAssets(ctx, tenantID)
	if err != nil {
		log.WithError(err).Error("Failed to list assets")
		return nil, fmt.Errorf("service: could not list assets: %w", err)
	}

	candidates := make([]models.DispatchCandidate, 0, len(responders)+len(assets))
	for _, r := range responders {
		candidates = append(candidates, s.buildCandidate(
			tenantID, incident, r.ID, models.SubjectKindResponder, r.OnDuty, s.cfg.ResponderStaleAfter,
		))
	}
	for _, a := range assets {
		candidates = append(candidates, s.buildCandidate(
			tenantID, incident, a.ID, models.SubjectKindAsset, a.Status == models.AssetStatusAvailable, s.cfg.ResponderStaleAfter,
		))
	}

	// Доступность всегда доминирует над расстоянием, обратное недопустимо.
	// Стабильная сортировка: равные пары сохраняют порядок справочника.
	sort.SliceStable(candidates, func(i, j int) bool {
		ri, rj := availabilityRank(candidates[i]), availabilityRank(candidates[j])
		if ri != rj {
			return ri < rj
		}
		return candidates[i].DistanceMeters < candidates[j].DistanceMeters
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	log.WithField("count", len(candidates)).Info("Dispatch candidates ranked")
	return candidates, nil
}

// buildCandidate вычисляет кандидата: без свежей позиции расстояние
// бесконечно; без координаты инцидента порядок определяет одна доступность
func (s *dispatchService) buildCandidate(tenantID string, incident *models.Incident, subjectID string, kind models.SubjectKind, available bool, staleThreshold time.Duration) models.DispatchCandidate {
	candidate := models.DispatchCandidate{
		SubjectID:      subjectID,
		SubjectKind:    kind,
		DistanceMeters: math.Inf(1),
		Available:      available,
	}

	if incident.Location == nil {
		return candidate
	}

	rec, err := s.presence.Get(tenantID, subjectID)
	if err != nil {
		return candidate
	}
	if rec.Status == models.PresenceStatusOffline || rec.IsStale(time.Now(), staleThreshold) {
		return candidate
	}

	candidate.DistanceMeters = geo.HaversineMeters(
		rec.LastFix.Latitude, rec.LastFix.Longitude,
		incident.Location.Latitude, incident.Location.Longitude,
	)
	return candidate
}

func availabilityRank(c models.DispatchCandidate) int {
	if c.Available {
		return 0
	}
	return 1
}
