package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/controllers"
)

// Order routes stay public: customers order from table QR codes without an
// account.
func OrderRoutes(router *gin.Engine, orders *controllers.OrderController) {
	router.GET("/api/orders/business/:identifier", orders.GetBusinessOrders())
	router.GET("/api/orders/:order_id", orders.GetOrder())
	router.POST("/api/orders", orders.CreateOrder())
	router.PATCH("/api/orders/:order_id/status", orders.UpdateOrderStatus())
	router.PATCH("/api/orders/:order_id/kitchen", orders.MarkOrderSentToKitchen())
	router.DELETE("/api/orders/:order_id", orders.DeleteOrder())
}
