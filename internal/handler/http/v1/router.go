package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	// Текстовая проверка состояния сервиса
	router.GET("/", h.home)

	api := router.Group("/api")
	{
		api.POST("/detect_and_report", h.detectAndReport)
		api.GET("/get_reports", h.getReports)
	}
}
