package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/middlewares"
	"github.com/yeremiapane/food-order-app/services"
	"github.com/yeremiapane/food-order-app/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{Orders: services.NewOrderService(db)}
}

// SubmitOrder -> POST /orders. Multipart form checkout: delivery details,
// payment method, optional proof-of-payment image. The cart becomes an
// order with status Pending awaiting admin review.
func (oc *OrderController) SubmitOrder(c *gin.Context) {
	name := c.PostForm("name")
	address := c.PostForm("address")
	phone := c.PostForm("phone")
	paymentMethod := c.PostForm("payment_method")
	if name == "" || address == "" || phone == "" || paymentMethod == "" {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("name, address, phone and payment_method are required"))
		return
	}

	qrCodePayment, err := strconv.ParseBool(c.DefaultPostForm("qr_code_payment", "false"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("qr_code_payment must be a boolean"))
		return
	}

	receiptPath := ""
	if file, err := c.FormFile("receipt_image"); err == nil {
		receiptPath, err = utils.SaveReceiptImage(c, file)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	caller := middlewares.Caller(c)
	order, err := oc.Orders.Checkout(caller.ID, services.CheckoutInfo{
		CustomerName:    name,
		CustomerAddress: address,
		CustomerPhone:   phone,
		PaymentMethod:   paymentMethod,
		QRCodePayment:   qrCodePayment,
		ReceiptImage:    receiptPath,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %d submitted by user %d, total %.2f",
		order.ID, caller.ID, order.TotalAmount)

	utils.RespondJSON(c, http.StatusCreated, "Order confirmed! Thank you for your purchase.", gin.H{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
	})
}

// GetMyOrders -> GET /orders, the customer's order status page.
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	caller := middlewares.Caller(c)

	orders, err := oc.Orders.ListOrdersForUser(caller.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Your orders", orders)
}

// GetOrderByID -> GET /orders/:order_id, visible to the owner and to admins.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.GetOrder(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	caller := middlewares.Caller(c)
	if order.UserID != caller.ID && !caller.IsAdmin {
		utils.RespondError(c, http.StatusForbidden, errors.New("not your order"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetOrderQRCode -> GET /orders/:order_id/qrcode. Renders the payment QR for
// orders submitted with QR payment.
func (oc *OrderController) GetOrderQRCode(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.GetOrder(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	caller := middlewares.Caller(c)
	if order.UserID != caller.ID && !caller.IsAdmin {
		utils.RespondError(c, http.StatusForbidden, errors.New("not your order"))
		return
	}
	if !order.QRCodePayment {
		utils.RespondError(c, http.StatusBadRequest, errors.New("order was not submitted with QR payment"))
		return
	}

	payload := fmt.Sprintf("FOODORDER|order=%d|amount=%.2f", order.ID, order.TotalAmount)
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
