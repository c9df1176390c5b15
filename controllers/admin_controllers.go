package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/middlewares"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/services"
	"github.com/yeremiapane/food-order-app/utils"
)

// AdminController is the payment review surface: it lists submitted orders
// and applies the verification/status transitions.
type AdminController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db, Orders: services.NewOrderService(db)}
}

// GetAllOrders -> GET /admin/orders
func (ac *AdminController) GetAllOrders(c *gin.Context) {
	orders, err := ac.Orders.ListAllOrders(middlewares.Caller(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All orders", orders)
}

// GetPendingOrders -> GET /admin/orders/pending, the review queue.
func (ac *AdminController) GetPendingOrders(c *gin.Context) {
	orders, err := ac.Orders.ListPendingOrders(middlewares.Caller(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Pending orders", orders)
}

// GetOrderDetail -> GET /admin/orders/:order_id
func (ac *AdminController) GetOrderDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := ac.Orders.GetOrder(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// VerifyPayment -> POST /admin/orders/:order_id/verify-payment
func (ac *AdminController) VerifyPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := ac.Orders.VerifyPayment(middlewares.Caller(c), uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Payment verified for order %d", order.ID)
	utils.RespondJSON(c, http.StatusOK, "Payment verified", order)
}

// UpdateOrderStatus -> PATCH /admin/orders/:order_id/status
func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := ac.Orders.SetStatus(middlewares.Caller(c), uint(id), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// GetDashboardStats -> GET /admin/dashboard
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	var stats struct {
		TotalOrders     int64   `json:"total_orders"`
		PendingOrders   int64   `json:"pending_orders"`
		VerifiedOrders  int64   `json:"verified_orders"`
		VerifiedRevenue float64 `json:"verified_revenue"`
	}

	if err := ac.DB.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	if err := ac.DB.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentStatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	if err := ac.DB.Model(&models.Order{}).
		Where("payment_verified = ?", true).
		Count(&stats.VerifiedOrders).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	if err := ac.DB.Model(&models.Order{}).
		Where("payment_verified = ?", true).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.VerifiedRevenue).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}
