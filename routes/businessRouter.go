package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/controllers"
)

func BusinessRoutes(router *gin.Engine, business *controllers.BusinessController) {
	router.PATCH("/api/business/:identifier/status", business.UpdateBusinessStatus())
}
