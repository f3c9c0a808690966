package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/broadcast"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/routing"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	dispatchService service.DispatchService
	presenceService service.PresenceService
	routingClient   *routing.Client
	hub             *broadcast.Hub
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	dispatchService service.DispatchService,
	presenceService service.PresenceService,
	routingClient *routing.Client,
	hub *broadcast.Hub,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService: incidentService,
		dispatchService: dispatchService,
		presenceService: presenceService,
		routingClient:   routingClient,
		hub:             hub,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondError транслирует доменные ошибки в HTTP-статусы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, models.ErrInvalidTransition):
		log.WithError(err).Warn("Invalid lifecycle transition")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrConflict):
		log.WithError(err).Warn("Concurrent modification conflict")
		c.JSON(http.StatusConflict, gin.H{"error": "concurrent modification, retry"})
	default:
		log.WithError(err).Error("Internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Create a new incident
// @Description Create a new incident. Location is optional and can be supplied later. Requires API key and tenant header.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var fix *models.GeoFix
	if input.Location != nil {
		f := DTOToGeoFix(*input.Location)
		fix = &f
	}

	incident, err := h.incidentService.CreateIncident(c.Request.Context(), TenantID(c), input.OriginatorID, input.Category, fix)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Get a list of incidents
// @Description Get a paginated list of tenant incidents. Requires API key and tenant header.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), TenantID(c), page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident of the tenant by its ID. Requires API key and tenant header.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), TenantID(c), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update incident location
// @Description Overwrite the incident location with a fresh fix. Allowed in any non-terminal status and does not change the status. Requires API key and tenant header.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Incident ID"
// @Param location body UpdateLocationRequest true "Location update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 422 {object} map[string]string "Incident is terminal"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/location [put]
func (h *Handler) updateLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateLocation").WithField("id", id)

	var input UpdateLocationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.incidentService.UpdateLocation(c.Request.Context(), TenantID(c), id, DTOToGeoFix(input.Location)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Transition incident status
// @Description Request a status transition (ACKNOWLEDGED, ON_SCENE or FALSE_ALARM). Dispatch and resolve have dedicated endpoints. Requires API key and tenant header.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Incident ID"
// @Param transition body TransitionRequest true "Requested target status"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Lost a concurrent transition race"
// @Failure 422 {object} map[string]string "Transition not allowed from current status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/status [post]
func (h *Handler) transitionStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "transitionStatus").WithField("id", id)

	var input TransitionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.incidentService.UpdateStatus(c.Request.Context(), TenantID(c), id, models.IncidentStatus(input.Target)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Dispatch a responder or asset
// @Description Assign a responder or an asset to the incident. Re-dispatch replaces the previous assignment and releases its asset. Requires API key and tenant header.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Incident ID"
// @Param dispatch body DispatchRequest true "Dispatch request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Lost a concurrent dispatch race"
// @Failure 422 {object} map[string]string "Dispatch not allowed from current status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/dispatch [post]
func (h *Handler) dispatchIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "dispatchIncident").WithField("id", id)

	var input DispatchRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.incidentService.Dispatch(c.Request.Context(), TenantID(c), id, input.SubjectID, models.SubjectKind(input.SubjectKind))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Resolve an incident
// @Description Resolve the incident from any non-terminal status. The assignment is kept for audit, an assigned asset is released. Requires API key and tenant header.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Incident ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 422 {object} map[string]string "Incident already terminal"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/resolve [post]
func (h *Handler) resolveIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "resolveIncident").WithField("id", id)

	if err := h.incidentService.Resolve(c.Request.Context(), TenantID(c), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Delete an incident
// @Description Hard operator delete, allowed in any status. An assigned asset is released first. Requires API key and tenant header.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), TenantID(c), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get incident timeline
// @Description Get the append-only incident timeline in chronological order. Requires API key and tenant header.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Incident ID"
// @Success 200 {array} TimelineEntryResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/timeline [get]
func (h *Handler) getTimeline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getTimeline").WithField("id", id)

	entries, err := h.incidentService.GetTimeline(c.Request.Context(), TenantID(c), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	responses := make([]*TimelineEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ModelToTimelineResponse(entry)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Append an operator note
// @Description Append an operator note to the incident timeline without a status change. Requires API key and tenant header.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Incident ID"
// @Param note body AppendNoteRequest true "Operator note"
// @Success 201 "Created"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/notes [post]
func (h *Handler) appendNote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "appendNote").WithField("id", id)

	var input AppendNoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.incidentService.AppendNote(c.Request.Context(), TenantID(c), id, input.Message); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary Get dispatch recommendations
// @Description Rank tenant responders and assets by availability and proximity to the incident. Requires API key and tenant header.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Incident ID"
// @Param limit query int false "Maximum number of candidates, 0 returns all" default(0)
// @Success 200 {array} CandidateResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/recommendations [get]
func (h *Handler) getRecommendations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getRecommendations").WithField("id", id)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	candidates, err := h.dispatchService.Recommend(c.Request.Context(), TenantID(c), id, limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	responses := make([]CandidateResponse, len(candidates))
	for i, candidate := range candidates {
		responses[i] = ModelToCandidateResponse(candidate)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get a route to the incident
// @Description Get a display route from the assigned subject's position to the incident via the external routing service. Best effort: returns 204 when no route is available. Requires API key and tenant header.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Incident ID"
// @Success 200 {object} routing.Route
// @Success 204 "No route available"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/route [get]
func (h *Handler) getRoute(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getRoute").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), TenantID(c), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if incident.Location == nil || incident.Assignment == nil {
		c.Status(http.StatusNoContent)
		return
	}

	records := h.presenceService.ListActive(TenantID(c), incident.Assignment.SubjectKind)
	var origin *routing.LatLng
	for _, p := range records {
		if p.SubjectID == incident.Assignment.SubjectID {
			origin = &routing.LatLng{Latitude: p.LastFix.Latitude, Longitude: p.LastFix.Longitude}
			break
		}
	}
	if origin == nil {
		c.Status(http.StatusNoContent)
		return
	}

	route := h.routingClient.GetRoute(c.Request.Context(), *origin, routing.LatLng{
		Latitude:  incident.Location.Latitude,
		Longitude: incident.Location.Longitude,
	})
	if route == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, route)
}

// @Summary Report a subject position fix
// @Description Run a raw position fix through the update policy. Accepted fixes update the presence registry, rejected fixes are dropped silently. Requires API key and tenant header.
// @Tags Presence
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param fix body ReportFixRequest true "Position fix report"
// @Success 200 {object} ReportFixResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /presence/fix [post]
func (h *Handler) reportFix(c *gin.Context) {
	var input ReportFixRequest
	log := h.logger.WithField("method", "reportFix")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accepted, err := h.presenceService.ReportFix(TenantID(c), input.SubjectID, models.SubjectKind(input.SubjectKind), DTOToGeoFix(input.Fix))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ReportFixResponse{Accepted: accepted})
}

// @Summary Set a subject operational status
// @Description Change the subject status without a new position fix. Requires API key and tenant header.
// @Tags Presence
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param status body SetPresenceStatusRequest true "Status change request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /presence/status [post]
func (h *Handler) setPresenceStatus(c *gin.Context) {
	var input SetPresenceStatusRequest
	log := h.logger.WithField("method", "setPresenceStatus")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.presenceService.SetStatus(TenantID(c), input.SubjectID, models.SubjectKind(input.SubjectKind), models.PresenceStatus(input.Status))
	c.Status(http.StatusOK)
}

// @Summary Mark a subject offline
// @Description Take the subject off duty. The presence record is kept with its last known position. Requires API key and tenant header.
// @Tags Presence
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param subjectId path string true "Subject ID"
// @Success 200 "OK"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Subject not found"
// @Router /presence/{subjectId}/offline [post]
func (h *Handler) markOffline(c *gin.Context) {
	subjectID := c.Param("subjectId")
	log := h.logger.WithField("method", "markOffline").WithField("subject_id", subjectID)

	if err := h.presenceService.MarkOffline(TenantID(c), subjectID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary List active subjects
// @Description List non-stale tenant subjects that are not offline. The staleness threshold depends on the subject kind. Requires API key and tenant header.
// @Tags Presence
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param kind query string false "Subject kind filter (RESPONDER, ASSET, SOS_ORIGINATOR)"
// @Success 200 {array} PresenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /presence [get]
func (h *Handler) listActivePresence(c *gin.Context) {
	kind := models.SubjectKind(c.Query("kind"))

	records := h.presenceService.ListActive(TenantID(c), kind)
	responses := make([]PresenceResponse, len(records))
	for i, rec := range records {
		responses[i] = ModelToPresenceResponse(rec)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Subscribe to tenant events
// @Description Stream tenant incident and presence events as server-sent events. Requires API key and tenant header.
// @Tags Events
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Success 200 "Event stream"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /events [get]
func (h *Handler) streamEvents(c *gin.Context) {
	sub := h.hub.Subscribe(TenantID(c), 0)
	defer sub.Cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-sub.C:
			if !ok {
				return false
			}
			c.SSEvent(string(event.Type), event.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// @Summary Get tenant statistics
// @Description Get the number of subjects active within the stats window. Requires API key and tenant header.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant ID"
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	count := h.presenceService.ActiveSubjectCount(TenantID(c))
	c.JSON(http.StatusOK, StatsResponse{ActiveSubjects: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
