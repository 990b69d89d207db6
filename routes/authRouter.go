package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/controllers"
)

func AuthRoutes(router *gin.Engine, auth *controllers.AuthController) {
	router.POST("/api/auth/login", auth.Login())
}
