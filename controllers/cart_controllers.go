package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/middlewares"
	"github.com/yeremiapane/food-order-app/services"
	"github.com/yeremiapane/food-order-app/utils"
)

type CartController struct {
	Carts *services.CartService
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{Carts: services.NewCartService(db)}
}

// AddToCart -> POST /cart
func (cc *CartController) AddToCart(c *gin.Context) {
	type request struct {
		MenuItemID uint     `json:"menu_item_id" binding:"required"`
		Quantity   int      `json:"quantity" binding:"required"`
		Options    []string `json:"options"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	caller := middlewares.Caller(c)
	if err := cc.Carts.Add(caller.ID, req.MenuItemID, req.Quantity, req.Options); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item added to cart", nil)
}

// UpdateCartItem -> PATCH /cart/:item_id
func (cc *CartController) UpdateCartItem(c *gin.Context) {
	lineID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	caller := middlewares.Caller(c)
	if err := cc.Carts.Update(caller.ID, uint(lineID), req.Quantity); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart item updated", nil)
}

// RemoveFromCart -> DELETE /cart/:item_id
func (cc *CartController) RemoveFromCart(c *gin.Context) {
	lineID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	caller := middlewares.Caller(c)
	if err := cc.Carts.Remove(caller.ID, uint(lineID)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item removed from cart", nil)
}

// GetCart -> GET /cart
func (cc *CartController) GetCart(c *gin.Context) {
	caller := middlewares.Caller(c)

	items, err := cc.Carts.List(caller.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var total float64
	for i := range items {
		total += items[i].Subtotal()
	}

	utils.RespondJSON(c, http.StatusOK, "Cart contents", gin.H{
		"items": items,
		"total": total,
	})
}
