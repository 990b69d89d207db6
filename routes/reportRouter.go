package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/controllers"
)

func ReportRoutes(router *gin.Engine, reports *controllers.ReportController) {
	router.POST("/api/reports/daily/:identifier", reports.GenerateDailyReport())
	router.POST("/api/reports/cleanup/:identifier", reports.CleanupCompletedOrders())
}
