package controllers

import (
	"bnc-store/models"
	"bnc-store/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// @Summary Create order
// @Description Place an order enquiry from the storefront cart
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /order [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Order not found")
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: result.Message,
		Data:    result,
	})
}

// @Summary Get all orders
// @Description List every order, newest first (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /order [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := ctrl.service.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
	})
}

// @Summary Get active orders
// @Description List active orders, newest first (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /order/active [get]
func (ctrl *OrderController) GetActiveOrders(c *gin.Context) {
	orders, err := ctrl.service.FindActive(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
	})
}

// @Summary Get order by ID
// @Description Get one order with its line items (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /order/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondBadRequest(c, "Invalid order ID")
		return
	}

	order, err := ctrl.service.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Order not found")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Order retrieved successfully",
		Data:    order,
	})
}

// @Summary Update order
// @Description Patch order contact fields; items and total are immutable (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param order body models.UpdateOrderRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /order/{id} [patch]
func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondBadRequest(c, "Invalid order ID")
		return
	}

	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := ctrl.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Order not found")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: result.Message,
		Data:    result,
	})
}

// @Summary Deactivate order
// @Description Soft-delete an order; repeat calls are a no-op success (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /order/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondBadRequest(c, "Invalid order ID")
		return
	}

	result, err := ctrl.service.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Order not found")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: result.Message,
		Data:    result,
	})
}
