package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/broadcast"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/routing"
	"github.com/shenikar/emergency_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	incident *mocks.MockIncidentService
	dispatch *mocks.MockDispatchService
	presence *mocks.MockPresenceService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		incident: mocks.NewMockIncidentService(ctrl),
		dispatch: mocks.NewMockDispatchService(ctrl),
		presence: mocks.NewMockPresenceService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	routingClient := routing.NewClient("", 0, logger)
	hub := broadcast.NewHub(logger)
	handler := NewHandler(m.incident, m.dispatch, m.presence, routingClient, hub, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(TenantMiddleware(logger))
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Tenant-ID", "tenant-a")
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testFixDTO() GeoFixDTO {
	return GeoFixDTO{
		Latitude:       55.7558,
		Longitude:      37.6173,
		AccuracyMeters: 10,
		CapturedAt:     time.Now().UTC(),
		Source:         "GPS",
	}
}

func TestCreateIncident_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := CreateIncidentRequest{
		OriginatorID: "user-1",
		Category:     "medical",
	}
	expectedIncident := &models.Incident{
		ID:           incidentID,
		TenantID:     "tenant-a",
		OriginatorID: "user-1",
		Category:     "medical",
		Status:       models.IncidentStatusNew,
		CreatedAt:    time.Now(),
	}

	m.incident.EXPECT().
		CreateIncident(gomock.Any(), "tenant-a", "user-1", "medical", nil).
		Return(expectedIncident, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "NEW", resp.Status)
	assert.Nil(t, resp.Location)
}

func TestCreateIncident_WithLocation(t *testing.T) {
	m, router := newTestHandler(t)
	fix := testFixDTO()
	reqBody := CreateIncidentRequest{
		OriginatorID: "user-1",
		Category:     "fire",
		Location:     &fix,
	}

	m.incident.EXPECT().
		CreateIncident(gomock.Any(), "tenant-a", "user-1", "fire", gomock.Not(gomock.Nil())).
		DoAndReturn(func(_ context.Context, tenantID, originatorID, category string, f *models.GeoFix) (*models.Incident, error) {
			assert.Equal(t, 55.7558, f.Latitude)
			return &models.Incident{
				ID:           uuid.New(),
				TenantID:     tenantID,
				OriginatorID: originatorID,
				Category:     category,
				Status:       models.IncidentStatusNew,
				Location:     f,
				CreatedAt:    time.Now(),
			}, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Location)
	assert.Equal(t, 55.7558, resp.Location.Latitude)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)

	m.incident.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"category": "fire"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{ // Отсутствует OriginatorID
		Category: "medical",
	}

	m.incident.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'OriginatorID' failed on the 'required' tag")
}

func TestCreateIncident_MissingTenantHeader(t *testing.T) {
	m, router := newTestHandler(t)

	m.incident.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reqBody := CreateIncidentRequest{OriginatorID: "user-1", Category: "medical"}
	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "X-Tenant-ID header required")
}

func TestGetIncident_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:           incidentID,
		TenantID:     "tenant-a",
		OriginatorID: "user-1",
		Category:     "medical",
		Status:       models.IncidentStatusAcknowledged,
	}

	m.incident.EXPECT().GetIncident(gomock.Any(), "tenant-a", incidentID).Return(expectedIncident, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "ACKNOWLEDGED", resp.Status)
}

func TestGetIncident_InvalidID(t *testing.T) {
	m, router := newTestHandler(t)

	m.incident.EXPECT().GetIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/incidents/invalid-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestGetIncident_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()

	m.incident.EXPECT().GetIncident(gomock.Any(), "tenant-a", incidentID).Return(nil, models.ErrNotFound).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestListIncidents_Success(t *testing.T) {
	m, router := newTestHandler(t)
	expectedIncidents := []*models.Incident{
		{ID: uuid.New(), TenantID: "tenant-a", Category: "medical", Status: models.IncidentStatusNew},
		{ID: uuid.New(), TenantID: "tenant-a", Category: "fire", Status: models.IncidentStatusResolved},
	}

	m.incident.EXPECT().ListIncidents(gomock.Any(), "tenant-a", 1, 10).Return(expectedIncidents, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?page=1&pageSize=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "medical", resp[0].Category)
}

func TestUpdateLocation_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := UpdateLocationRequest{Location: testFixDTO()}

	m.incident.EXPECT().
		UpdateLocation(gomock.Any(), "tenant-a", incidentID, gomock.Any()).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/incidents/%s/location", incidentID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateLocation_TerminalIncident(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := UpdateLocationRequest{Location: testFixDTO()}

	m.incident.EXPECT().
		UpdateLocation(gomock.Any(), "tenant-a", incidentID, gomock.Any()).
		Return(models.NewInvalidTransitionError(models.IncidentStatusResolved, models.IncidentStatusResolved)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/incidents/%s/location", incidentID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestTransitionStatus_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := TransitionRequest{Target: "ACKNOWLEDGED"}

	m.incident.EXPECT().
		UpdateStatus(gomock.Any(), "tenant-a", incidentID, models.IncidentStatusAcknowledged).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/status", incidentID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTransitionStatus_DispatchedNotAllowedHere(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	// DISPATCHED не входит в допустимые значения DTO
	reqBody := TransitionRequest{Target: "DISPATCHED"}

	m.incident.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/status", incidentID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Target' failed on the 'oneof' tag")
}

func TestTransitionStatus_InvalidTransition(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := TransitionRequest{Target: "ACKNOWLEDGED"}

	m.incident.EXPECT().
		UpdateStatus(gomock.Any(), "tenant-a", incidentID, models.IncidentStatusAcknowledged).
		Return(models.NewInvalidTransitionError(models.IncidentStatusResolved, models.IncidentStatusAcknowledged)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/status", incidentID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "RESOLVED")
}

func TestDispatchIncident_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := DispatchRequest{SubjectID: "resp-1", SubjectKind: "RESPONDER"}

	m.incident.EXPECT().
		Dispatch(gomock.Any(), "tenant-a", incidentID, "resp-1", models.SubjectKindResponder).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/dispatch", incidentID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDispatchIncident_Conflict(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := DispatchRequest{SubjectID: "resp-1", SubjectKind: "RESPONDER"}

	m.incident.EXPECT().
		Dispatch(gomock.Any(), "tenant-a", incidentID, "resp-1", models.SubjectKindResponder).
		Return(fmt.Errorf("service: could not dispatch incident: %w", models.ErrConflict)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/dispatch", incidentID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "concurrent modification")
}

func TestResolveIncident_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()

	m.incident.EXPECT().Resolve(gomock.Any(), "tenant-a", incidentID).Return(nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/resolve", incidentID.String()), nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteIncident_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()

	m.incident.EXPECT().DeleteIncident(gomock.Any(), "tenant-a", incidentID).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetTimeline_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	entries := []*models.TimelineEntry{
		{ID: 1, IncidentID: incidentID, AuthorKind: models.TimelineAuthorSystem, Message: "Incident created", At: time.Now()},
		{ID: 2, IncidentID: incidentID, AuthorKind: models.TimelineAuthorOperator, Message: "witness called back", At: time.Now()},
	}

	m.incident.EXPECT().GetTimeline(gomock.Any(), "tenant-a", incidentID).Return(entries, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s/timeline", incidentID.String()), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []TimelineEntryResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "SYSTEM", resp[0].AuthorKind)
	assert.Equal(t, "OPERATOR", resp[1].AuthorKind)
}

func TestAppendNote_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := AppendNoteRequest{Message: "witness called back"}

	m.incident.EXPECT().
		AppendNote(gomock.Any(), "tenant-a", incidentID, "witness called back").
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/notes", incidentID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetRecommendations_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()
	candidates := []models.DispatchCandidate{
		{SubjectID: "resp-1", SubjectKind: models.SubjectKindResponder, DistanceMeters: 120.5, Available: true},
		{SubjectID: "veh-1", SubjectKind: models.SubjectKindAsset, DistanceMeters: 950.0, Available: false},
	}

	m.dispatch.EXPECT().Recommend(gomock.Any(), "tenant-a", incidentID, 5).Return(candidates, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s/recommendations?limit=5", incidentID.String()), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []CandidateResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "resp-1", resp[0].SubjectID)
	require.NotNil(t, resp[0].DistanceMeters)
	assert.Equal(t, 120.5, *resp[0].DistanceMeters)
}

func TestReportFix_Accepted(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := ReportFixRequest{
		SubjectID:   "resp-1",
		SubjectKind: "RESPONDER",
		Fix:         testFixDTO(),
	}

	m.presence.EXPECT().
		ReportFix("tenant-a", "resp-1", models.SubjectKindResponder, gomock.Any()).
		Return(true, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/presence/fix", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportFixResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
}

func TestReportFix_RejectedIsNotAnError(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := ReportFixRequest{
		SubjectID:   "resp-1",
		SubjectKind: "RESPONDER",
		Fix:         testFixDTO(),
	}

	m.presence.EXPECT().
		ReportFix("tenant-a", "resp-1", models.SubjectKindResponder, gomock.Any()).
		Return(false, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/presence/fix", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportFixResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.Accepted)
}

func TestReportFix_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := ReportFixRequest{ // Отсутствует SubjectID
		SubjectKind: "RESPONDER",
		Fix:         testFixDTO(),
	}

	m.presence.EXPECT().ReportFix(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/presence/fix", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'SubjectID' failed on the 'required' tag")
}

func TestMarkOffline_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.presence.EXPECT().MarkOffline("tenant-a", "resp-1").Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/presence/resp-1/offline", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMarkOffline_NotFound(t *testing.T) {
	m, router := newTestHandler(t)

	m.presence.EXPECT().
		MarkOffline("tenant-a", "ghost").
		Return(fmt.Errorf("service: could not mark subject offline: %w", models.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/presence/ghost/offline", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListActivePresence_KindFilter(t *testing.T) {
	m, router := newTestHandler(t)
	records := []models.PresenceRecord{
		{SubjectID: "resp-1", SubjectKind: models.SubjectKindResponder, TenantID: "tenant-a", Status: models.PresenceStatusOnDuty, LastActiveAt: time.Now()},
	}

	m.presence.EXPECT().ListActive("tenant-a", models.SubjectKindResponder).Return(records).Times(1)

	w := makeRequest(router, "GET", "/api/v1/presence?kind=RESPONDER", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []PresenceResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "resp-1", resp[0].SubjectID)
}

func TestGetStats_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.presence.EXPECT().ActiveSubjectCount("tenant-a").Return(42).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 42, resp.ActiveSubjects)
}

func TestHealthCheck_Success(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

// Проверяем, что ошибка другого тенанта неотличима от отсутствия инцидента
func TestGetIncident_ForeignTenantMasked(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()

	m.incident.EXPECT().
		GetIncident(gomock.Any(), "tenant-b", incidentID).
		Return(nil, fmt.Errorf("service: could not get incident: %w", models.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil, map[string]string{"X-Tenant-ID": "tenant-b"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}
