package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/models"
	"github.com/Rodluisfelipe/SisRestaurantes-sub001/services"
)

// CatalogController carries the catalog touch endpoints. Their job is to keep
// the realtime screens fed with categories_update / products_update /
// topping_groups_update; full menu management lives in the admin app.
type CatalogController struct {
	service *services.CatalogService
}

func NewCatalogController(service *services.CatalogService) *CatalogController {
	return &CatalogController{service: service}
}

func (cc *CatalogController) SaveCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := c.Param("identifier")
		var category models.Category
		if err := c.BindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		saved, err := cc.service.SaveCategory(c.Request.Context(), identifier, category)
		if err != nil {
			respondError(c, err, identifier)
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

func (cc *CatalogController) DeleteCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := c.Param("identifier")
		categoryID := c.Param("category_id")
		if err := cc.service.DeleteCategory(c.Request.Context(), identifier, categoryID); err != nil {
			respondError(c, err, categoryID)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "category deleted", "categoryId": categoryID})
	}
}

func (cc *CatalogController) SaveProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := c.Param("identifier")
		var product models.Product
		if err := c.BindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		saved, err := cc.service.SaveProduct(c.Request.Context(), identifier, product)
		if err != nil {
			respondError(c, err, identifier)
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

func (cc *CatalogController) DeleteProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := c.Param("identifier")
		productID := c.Param("product_id")
		if err := cc.service.DeleteProduct(c.Request.Context(), identifier, productID); err != nil {
			respondError(c, err, productID)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product deleted", "productId": productID})
	}
}

func (cc *CatalogController) SaveToppingGroup() gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := c.Param("identifier")
		var group models.ToppingGroup
		if err := c.BindJSON(&group); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		saved, err := cc.service.SaveToppingGroup(c.Request.Context(), identifier, group)
		if err != nil {
			respondError(c, err, identifier)
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

func (cc *CatalogController) DeleteToppingGroup() gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := c.Param("identifier")
		groupID := c.Param("topping_group_id")
		if err := cc.service.DeleteToppingGroup(c.Request.Context(), identifier, groupID); err != nil {
			respondError(c, err, groupID)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "topping group deleted", "toppingGroupId": groupID})
	}
}
