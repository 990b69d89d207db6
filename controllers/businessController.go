package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/services"
)

type BusinessController struct {
	service *services.BusinessService
}

func NewBusinessController(service *services.BusinessService) *BusinessController {
	return &BusinessController{service: service}
}

type businessStatusRequest struct {
	IsOpen *bool `json:"isOpen" validate:"required"`
}

func (bc *BusinessController) UpdateBusinessStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := c.Param("identifier")
		var req businessStatusRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.IsOpen == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "isOpen is required", "field": "isOpen"})
			return
		}
		business, err := bc.service.SetOpen(c.Request.Context(), identifier, *req.IsOpen)
		if err != nil {
			respondError(c, err, identifier)
			return
		}
		c.JSON(http.StatusOK, business)
	}
}
