package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/controllers"
)

func RealtimeRoutes(router *gin.Engine, rt *controllers.RealtimeController) {
	router.GET("/ws", rt.HandleWebSocket())
	router.GET("/api/events/:identifier", rt.StreamEvents())
}
