package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/services"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

func (rc *ReportController) GenerateDailyReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := c.Param("identifier")
		report, err := rc.service.Generate(c.Request.Context(), identifier)
		if err != nil {
			respondError(c, err, identifier)
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

type cleanupRequest struct {
	CompletedOrderIDs []string `json:"completedOrderIds" validate:"required,min=1"`
}

func (rc *ReportController) CleanupCompletedOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := c.Param("identifier")
		var req cleanupRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		deleted, err := rc.service.Cleanup(c.Request.Context(), identifier, req.CompletedOrderIDs)
		if err != nil {
			respondError(c, err, identifier)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	}
}
