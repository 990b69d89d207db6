package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/services"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

func (oc *OrderController) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.CreateOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := oc.service.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, req.BusinessID)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func (oc *OrderController) GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("order_id")
		order, err := oc.service.Get(c.Request.Context(), orderID)
		if err != nil {
			respondError(c, err, orderID)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func (oc *OrderController) GetBusinessOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := c.Param("identifier")
		orders, err := oc.service.ListByBusiness(c.Request.Context(), identifier)
		if err != nil {
			respondError(c, err, identifier)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (oc *OrderController) UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("order_id")
		var req statusRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := oc.service.ChangeStatus(c.Request.Context(), orderID, req.Status)
		if err != nil {
			respondError(c, err, orderID)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func (oc *OrderController) MarkOrderSentToKitchen() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("order_id")
		order, err := oc.service.MarkSentToKitchen(c.Request.Context(), orderID)
		if err != nil {
			respondError(c, err, orderID)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func (oc *OrderController) DeleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("order_id")
		if err := oc.service.Delete(c.Request.Context(), orderID); err != nil {
			respondError(c, err, orderID)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order deleted", "orderId": orderID})
	}
}
