package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	authRequired := IdentityMiddleware(h.provider, h.logger)

	// Маршруты для управления бедствиями (CRUD)
	disasters := api.Group("/disasters")
	{
		disasters.POST("", authRequired, h.createDisaster)
		disasters.GET("", h.listDisasters)
		disasters.PUT("/:id", authRequired, h.updateDisaster)
		disasters.DELETE("/:id", authRequired, h.deleteDisaster)
		disasters.GET("/:id/resources", h.listNearbyResources)
		disasters.GET("/:id/social-media", h.disasterSocialMedia)
		disasters.GET("/official-updates", h.officialUpdates)
		disasters.POST("/verify-image", authRequired, h.verifyImage)
	}

	// Вспомогательные фиды и автономное геокодирование
	api.GET("/mock-social-media", h.mockSocialMedia)
	api.POST("/geocode", h.geocode)

	// Канал уведомлений об изменениях
	api.GET("/ws", h.serveWS)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
