package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Пул хелперов: регистрация служит и heartbeat-ом
	helpers := api.Group("/helpers")
	{
		helpers.POST("", h.registerHelper)
		helpers.GET("/nearby", h.findNearbyHelpers)
		helpers.DELETE("/:id", h.unregisterHelper)
	}

	// Жизненный цикл запросов помощи
	requests := api.Group("/requests")
	{
		requests.POST("", h.createHelpRequest)
		requests.GET("/nearby", h.findNearbyRequests)
		requests.POST("/:id/accept", h.acceptHelpRequest)
		requests.POST("/:id/complete", h.completeHelpRequest)
	}

	// Зоны оповещения и проверка местоположения
	zones := api.Group("/zones")
	{
		zones.POST("", h.createZone)
		zones.GET("", h.listZones)
		zones.PATCH("/:id", h.toggleZone)
	}
	api.POST("/location/check", h.checkLocation)

	// Разрешения на оповещения
	notifications := api.Group("/notifications")
	{
		notifications.POST("/permission/request", h.requestPermission)
		notifications.POST("/permission", h.resolvePermission)
	}

	// Экстренные сигналы
	api.POST("/alerts/sos", h.sendSOS)

	// Медицинский профиль и контакты
	profile := api.Group("/profile")
	{
		profile.PUT("/medical", h.saveMedicalInfo)
		profile.GET("/medical/:user_id", h.getMedicalInfo)
		profile.POST("/contacts", h.saveContact)
		profile.GET("/contacts/:user_id", h.listContacts)
		profile.DELETE("/contacts/:user_id/:id", h.deleteContact)
	}

	// Очередь синхронизации
	sync := api.Group("/sync")
	{
		sync.GET("/status", h.syncStatus)
		sync.PUT("/online", h.setOnline)
	}

	// Статистика
	api.GET("/stats", h.getStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
