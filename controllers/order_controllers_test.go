package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/food-order-app/models"
)

func doCheckout(r *gin.Engine, token string, fields map[string]string) *httptest.ResponseRecorder {
	body, contentType := checkoutForm(fields)
	req := httptest.NewRequest(http.MethodPost, "/orders", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func defaultCheckoutFields() map[string]string {
	return map[string]string{
		"name":           "Alex Doe",
		"address":        "1 Main Street",
		"phone":          "555-0100",
		"payment_method": "bank_transfer",
	}
}

func TestSubmitOrderHappyPath(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	user, token := createTestUser(t, db, "jack", false)

	addToCart(t, r, token, menuID(t, db, "Burger"), 1)
	addToCart(t, r, token, menuID(t, db, "Pizza"), 2)

	w := doCheckout(r, token, defaultCheckoutFields())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decodeData(t, w)
	assert.InDelta(t, 23.97, data["total_amount"].(float64), 0.001)

	// Cart is cleared.
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)

	// The order is visible on the customer's order status page.
	w = doJSON(r, http.MethodGet, "/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitOrderEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	_, token := createTestUser(t, db, "kate", false)

	w := doCheckout(r, token, defaultCheckoutFields())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitOrderMissingFields(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	_, token := createTestUser(t, db, "liam", false)
	addToCart(t, r, token, menuID(t, db, "Burger"), 1)

	fields := defaultCheckoutFields()
	delete(fields, "address")
	w := doCheckout(r, token, fields)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitOrderRejectsBadBooleanCoercion(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	_, token := createTestUser(t, db, "mona", false)
	addToCart(t, r, token, menuID(t, db, "Burger"), 1)

	fields := defaultCheckoutFields()
	fields["qr_code_payment"] = "maybe"
	w := doCheckout(r, token, fields)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderHiddenFromOtherCustomers(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	_, ownerToken := createTestUser(t, db, "nina", false)
	_, otherToken := createTestUser(t, db, "oscar", false)
	_, adminToken := createTestUser(t, db, "root", true)

	addToCart(t, r, ownerToken, menuID(t, db, "Burger"), 1)
	w := doCheckout(r, ownerToken, defaultCheckoutFields())
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(decodeData(t, w)["order_id"].(float64))

	url := fmt.Sprintf("/orders/%d", orderID)
	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, url, ownerToken, nil).Code)
	assert.Equal(t, http.StatusForbidden, doJSON(r, http.MethodGet, url, otherToken, nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, url, adminToken, nil).Code)
}

func TestOrderQRCode(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	_, token := createTestUser(t, db, "pia", false)

	addToCart(t, r, token, menuID(t, db, "Pizza"), 1)
	fields := defaultCheckoutFields()
	fields["qr_code_payment"] = "true"
	w := doCheckout(r, token, fields)
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(decodeData(t, w)["order_id"].(float64))

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/orders/%d/qrcode", orderID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestOrderQRCodeOnlyForQROrders(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	_, token := createTestUser(t, db, "quinn", false)

	addToCart(t, r, token, menuID(t, db, "Pizza"), 1)
	w := doCheckout(r, token, defaultCheckoutFields())
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(decodeData(t, w)["order_id"].(float64))

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/orders/%d/qrcode", orderID), token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
