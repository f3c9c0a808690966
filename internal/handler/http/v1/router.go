package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Жизненный цикл инцидентов
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id/location", h.updateLocation)
		incidents.POST("/:id/status", h.transitionStatus)
		incidents.POST("/:id/dispatch", h.dispatchIncident)
		incidents.POST("/:id/resolve", h.resolveIncident)
		incidents.DELETE("/:id", h.deleteIncident)
		incidents.GET("/:id/timeline", h.getTimeline)
		incidents.POST("/:id/notes", h.appendNote)
		incidents.GET("/:id/recommendations", h.getRecommendations)
		incidents.GET("/:id/route", h.getRoute)
	}

	// Поток позиций и оперативные статусы субъектов
	presence := api.Group("/presence")
	{
		presence.POST("/fix", h.reportFix)
		presence.POST("/status", h.setPresenceStatus)
		presence.POST("/:subjectId/offline", h.markOffline)
		presence.GET("", h.listActivePresence)
	}

	// Поток событий тенанта
	api.GET("/events", h.streamEvents)

	// Статистика по активным субъектам
	api.GET("/stats", h.getStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
