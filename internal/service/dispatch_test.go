package service

import (
	"bytes"
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/broadcast"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/registry"
	"github.com/shenikar/emergency_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestDispatchService собирает сервис рекомендаций поверх реального
// реестра присутствия: ранжирование проверяется на живых данных, моками
// закрыты только хранилище и справочники.
func newTestDispatchService(t *testing.T) (DispatchService, *mocks.MockIncidentRepository, *mocks.MockDirectoryRepository, *registry.Registry) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	dirMock := mocks.NewMockDirectoryRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		ResponderStaleAfter: 10 * time.Minute,
	}
	reg := registry.NewRegistry(broadcast.NewHub(logger))

	service := NewDispatchService(repoMock, dirMock, reg, logger, cfg)
	return service, repoMock, dirMock, reg
}

func incidentAt(lat, lon float64) *models.Incident {
	return &models.Incident{
		ID:       uuid.New(),
		TenantID: testTenant,
		Status:   models.IncidentStatusNew,
		Location: &models.GeoFix{
			Latitude:       lat,
			Longitude:      lon,
			AccuracyMeters: 10,
			CapturedAt:     time.Now(),
		},
		CreatedAt: time.Now(),
	}
}

func reportAt(reg *registry.Registry, subjectID string, kind models.SubjectKind, lat, lon float64) {
	reg.Upsert(testTenant, subjectID, kind, &models.GeoFix{
		Latitude:       lat,
		Longitude:      lon,
		AccuracyMeters: 10,
		CapturedAt:     time.Now(),
	}, models.PresenceStatusOnDuty)
}

func TestRecommend_AvailabilityDominatesDistance(t *testing.T) {
	// Подготовка: занятый дежурный в 100 метрах, свободный - в 5 километрах
	service, repoMock, dirMock, reg := newTestDispatchService(t)
	ctx := context.Background()
	incident := incidentAt(55.7558, 37.6173)

	reportAt(reg, "near-busy", models.SubjectKindResponder, 55.7567, 37.6173)
	reportAt(reg, "far-available", models.SubjectKindResponder, 55.8008, 37.6173)

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, testTenant, incident.ID).Return(incident, nil).Times(1)
	dirMock.EXPECT().ListResponders(ctx, testTenant).Return([]*models.Responder{
		{ID: "near-busy", TenantID: testTenant, OnDuty: false},
		{ID: "far-available", TenantID: testTenant, OnDuty: true},
	}, nil).Times(1)
	dirMock.EXPECT().ListAssets(ctx, testTenant).Return(nil, nil).Times(1)

	// Действие
	candidates, err := service.Recommend(ctx, testTenant, incident.ID, 0)

	// Проверки: доступность доминирует над расстоянием
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "far-available", candidates[0].SubjectID)
	assert.True(t, candidates[0].Available)
	assert.Equal(t, "near-busy", candidates[1].SubjectID)
	assert.Less(t, candidates[1].DistanceMeters, candidates[0].DistanceMeters)
}

func TestRecommend_StaleAndMissingPresenceRankedLast(t *testing.T) {
	// Подготовка: у одного дежурного позиция свежая, у второго устаревшая,
	// третий вообще не отчитывался. Реестр здесь заменён моком, чтобы
	// управлять LastActiveAt напрямую.
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	dirMock := mocks.NewMockDirectoryRepository(ctrl)
	presenceMock := mocks.NewMockPresenceReader(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{ResponderStaleAfter: 10 * time.Minute}
	service := NewDispatchService(repoMock, dirMock, presenceMock, logger, cfg)

	ctx := context.Background()
	incident := incidentAt(55.7558, 37.6173)

	presenceMock.EXPECT().Get(testTenant, "fresh").Return(models.PresenceRecord{
		SubjectID:    "fresh",
		SubjectKind:  models.SubjectKindResponder,
		TenantID:     testTenant,
		LastFix:      models.GeoFix{Latitude: 55.7567, Longitude: 37.6173, AccuracyMeters: 10, CapturedAt: time.Now()},
		Status:       models.PresenceStatusOnDuty,
		LastActiveAt: time.Now(),
	}, nil).Times(1)
	presenceMock.EXPECT().Get(testTenant, "stale").Return(models.PresenceRecord{
		SubjectID:    "stale",
		SubjectKind:  models.SubjectKindResponder,
		TenantID:     testTenant,
		LastFix:      models.GeoFix{Latitude: 55.7559, Longitude: 37.6173, AccuracyMeters: 10, CapturedAt: time.Now().Add(-time.Hour)},
		Status:       models.PresenceStatusOnDuty,
		LastActiveAt: time.Now().Add(-time.Hour),
	}, nil).Times(1)
	presenceMock.EXPECT().Get(testTenant, "silent").Return(models.PresenceRecord{}, models.ErrNotFound).Times(1)

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, testTenant, incident.ID).Return(incident, nil).Times(1)
	dirMock.EXPECT().ListResponders(ctx, testTenant).Return([]*models.Responder{
		{ID: "stale", TenantID: testTenant, OnDuty: true},
		{ID: "silent", TenantID: testTenant, OnDuty: true},
		{ID: "fresh", TenantID: testTenant, OnDuty: true},
	}, nil).Times(1)
	dirMock.EXPECT().ListAssets(ctx, testTenant).Return(nil, nil).Times(1)

	// Действие
	candidates, err := service.Recommend(ctx, testTenant, incident.ID, 0)

	// Проверки: свежая позиция впереди, устаревшие и молчащие - с
	// бесконечным расстоянием в конце, взаимный порядок как в справочнике
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, "fresh", candidates[0].SubjectID)
	assert.False(t, math.IsInf(candidates[0].DistanceMeters, 1))
	assert.Equal(t, "stale", candidates[1].SubjectID)
	assert.True(t, math.IsInf(candidates[1].DistanceMeters, 1))
	assert.Equal(t, "silent", candidates[2].SubjectID)
	assert.True(t, math.IsInf(candidates[2].DistanceMeters, 1))
}

func TestRecommend_NilIncidentLocationOrdersByAvailability(t *testing.T) {
	// Подготовка: у инцидента ещё нет координаты
	service, repoMock, dirMock, reg := newTestDispatchService(t)
	ctx := context.Background()
	incident := &models.Incident{
		ID:        uuid.New(),
		TenantID:  testTenant,
		Status:    models.IncidentStatusNew,
		CreatedAt: time.Now(),
	}

	reportAt(reg, "resp-1", models.SubjectKindResponder, 55.7558, 37.6173)
	reportAt(reg, "resp-2", models.SubjectKindResponder, 55.7558, 37.6173)

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, testTenant, incident.ID).Return(incident, nil).Times(1)
	dirMock.EXPECT().ListResponders(ctx, testTenant).Return([]*models.Responder{
		{ID: "resp-1", TenantID: testTenant, OnDuty: false},
		{ID: "resp-2", TenantID: testTenant, OnDuty: true},
	}, nil).Times(1)
	dirMock.EXPECT().ListAssets(ctx, testTenant).Return(nil, nil).Times(1)

	// Действие
	candidates, err := service.Recommend(ctx, testTenant, incident.ID, 0)

	// Проверки: порядок определяет одна доступность, расстояния бесконечны
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "resp-2", candidates[0].SubjectID)
	assert.True(t, math.IsInf(candidates[0].DistanceMeters, 1))
	assert.True(t, math.IsInf(candidates[1].DistanceMeters, 1))
}

func TestRecommend_AssetsRankedWithResponders(t *testing.T) {
	// Подготовка: свободная техника ближе, чем свободный дежурный
	service, repoMock, dirMock, reg := newTestDispatchService(t)
	ctx := context.Background()
	incident := incidentAt(55.7558, 37.6173)

	reportAt(reg, "resp-1", models.SubjectKindResponder, 55.8008, 37.6173)
	reportAt(reg, "veh-1", models.SubjectKindAsset, 55.7567, 37.6173)

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, testTenant, incident.ID).Return(incident, nil).Times(1)
	dirMock.EXPECT().ListResponders(ctx, testTenant).Return([]*models.Responder{
		{ID: "resp-1", TenantID: testTenant, OnDuty: true},
	}, nil).Times(1)
	dirMock.EXPECT().ListAssets(ctx, testTenant).Return([]*models.Asset{
		{ID: "veh-1", TenantID: testTenant, Status: models.AssetStatusAvailable},
		{ID: "veh-2", TenantID: testTenant, Status: models.AssetStatusMaintenance},
	}, nil).Times(1)

	// Действие
	candidates, err := service.Recommend(ctx, testTenant, incident.ID, 0)

	// Проверки
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, "veh-1", candidates[0].SubjectID)
	assert.Equal(t, models.SubjectKindAsset, candidates[0].SubjectKind)
	assert.Equal(t, "resp-1", candidates[1].SubjectID)
	assert.Equal(t, "veh-2", candidates[2].SubjectID)
	assert.False(t, candidates[2].Available)
}

func TestRecommend_LimitTruncates(t *testing.T) {
	// Подготовка
	service, repoMock, dirMock, reg := newTestDispatchService(t)
	ctx := context.Background()
	incident := incidentAt(55.7558, 37.6173)

	reportAt(reg, "resp-1", models.SubjectKindResponder, 55.7567, 37.6173)
	reportAt(reg, "resp-2", models.SubjectKindResponder, 55.7600, 37.6173)
	reportAt(reg, "resp-3", models.SubjectKindResponder, 55.7700, 37.6173)

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, testTenant, incident.ID).Return(incident, nil).Times(1)
	dirMock.EXPECT().ListResponders(ctx, testTenant).Return([]*models.Responder{
		{ID: "resp-1", TenantID: testTenant, OnDuty: true},
		{ID: "resp-2", TenantID: testTenant, OnDuty: true},
		{ID: "resp-3", TenantID: testTenant, OnDuty: true},
	}, nil).Times(1)
	dirMock.EXPECT().ListAssets(ctx, testTenant).Return(nil, nil).Times(1)

	// Действие
	candidates, err := service.Recommend(ctx, testTenant, incident.ID, 2)

	// Проверки
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "resp-1", candidates[0].SubjectID)
	assert.Equal(t, "resp-2", candidates[1].SubjectID)
}

func TestRecommend_IncidentNotFound(t *testing.T) {
	service, repoMock, _, _ := newTestDispatchService(t)
	ctx := context.Background()
	id := uuid.New()

	repoMock.EXPECT().GetByID(ctx, testTenant, id).Return(nil, models.ErrNotFound).Times(1)

	candidates, err := service.Recommend(ctx, testTenant, id, 0)

	assert.Nil(t, candidates)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
