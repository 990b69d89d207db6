package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/controllers"
)

func CatalogRoutes(router *gin.Engine, catalog *controllers.CatalogController) {
	router.PUT("/api/catalog/:identifier/categories", catalog.SaveCategory())
	router.DELETE("/api/catalog/:identifier/categories/:category_id", catalog.DeleteCategory())
	router.PUT("/api/catalog/:identifier/products", catalog.SaveProduct())
	router.DELETE("/api/catalog/:identifier/products/:product_id", catalog.DeleteProduct())
	router.PUT("/api/catalog/:identifier/topping-groups", catalog.SaveToppingGroup())
	router.DELETE("/api/catalog/:identifier/topping-groups/:topping_group_id", catalog.DeleteToppingGroup())
}
