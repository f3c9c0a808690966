package v1

import (
	"math"

	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// DTOToGeoFix преобразует DTO измерения в доменную модель
func DTOToGeoFix(dto GeoFixDTO) models.GeoFix {
	source := models.FixSource(dto.Source)
	if source == "" {
		source = models.FixSourceUnknown
	}
	return models.GeoFix{
		Latitude:       dto.Latitude,
		Longitude:      dto.Longitude,
		AccuracyMeters: dto.AccuracyMeters,
		HeadingDeg:     dto.HeadingDeg,
		SpeedMps:       dto.SpeedMps,
		CapturedAt:     dto.CapturedAt,
		Source:         source,
	}
}

// GeoFixToDTO преобразует доменную модель измерения в DTO
func GeoFixToDTO(fix models.GeoFix) GeoFixDTO {
	return GeoFixDTO{
		Latitude:       fix.Latitude,
		Longitude:      fix.Longitude,
		AccuracyMeters: fix.AccuracyMeters,
		HeadingDeg:     fix.HeadingDeg,
		SpeedMps:       fix.SpeedMps,
		CapturedAt:     fix.CapturedAt,
		Source:         string(fix.Source),
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	resp := &IncidentResponse{
		ID:           model.ID,
		TenantID:     model.TenantID,
		OriginatorID: model.OriginatorID,
		Category:     model.Category,
		Status:       string(model.Status),
		CreatedAt:    model.CreatedAt,
		ResolvedAt:   model.ResolvedAt,
	}
	if model.Location != nil {
		fix := GeoFixToDTO(*model.Location)
		resp.Location = &fix
	}
	if model.Assignment != nil {
		resp.Assignment = &AssignmentResponse{
			SubjectID:   model.Assignment.SubjectID,
			SubjectKind: string(model.Assignment.SubjectKind),
			AssignedAt:  model.Assignment.AssignedAt,
		}
	}
	return resp
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = ModelToIncidentResponse(incident)
	}
	return responses
}

// ModelToTimelineResponse преобразует запись хронологии в DTO
func ModelToTimelineResponse(entry *models.TimelineEntry) *TimelineEntryResponse {
	return &TimelineEntryResponse{
		ID:         entry.ID,
		AuthorKind: string(entry.AuthorKind),
		Message:    entry.Message,
		At:         entry.At,
	}
}

// ModelToPresenceResponse преобразует запись присутствия в DTO
func ModelToPresenceResponse(rec models.PresenceRecord) PresenceResponse {
	return PresenceResponse{
		SubjectID:    rec.SubjectID,
		SubjectKind:  string(rec.SubjectKind),
		LastFix:      GeoFixToDTO(rec.LastFix),
		Status:       string(rec.Status),
		LastActiveAt: rec.LastActiveAt,
	}
}

// ModelToCandidateResponse преобразует кандидата в DTO.
// Бесконечное расстояние в JSON непредставимо и отдаётся как null.
func ModelToCandidateResponse(c models.DispatchCandidate) CandidateResponse {
	resp := CandidateResponse{
		SubjectID:   c.SubjectID,
		SubjectKind: string(c.SubjectKind),
		Available:   c.Available,
	}
	if !math.IsInf(c.DistanceMeters, 1) {
		d := c.DistanceMeters
		resp.DistanceMeters = &d
	}
	return resp
}
