package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/food-order-app/models"
)

func TestAdminRoutesForbiddenForCustomers(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	_, token := createTestUser(t, db, "ralph", false)

	for _, route := range []struct{ method, url string }{
		{http.MethodGet, "/admin/orders"},
		{http.MethodGet, "/admin/orders/pending"},
		{http.MethodGet, "/admin/orders/1"},
		{http.MethodPost, "/admin/orders/1/verify-payment"},
		{http.MethodGet, "/admin/dashboard"},
	} {
		w := doJSON(r, route.method, route.url, token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", route.method, route.url)
	}

	w := doJSON(r, http.MethodPatch, "/admin/orders/1/status", token, map[string]string{
		"status": models.PaymentStatusDelivering,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVerifyPaymentFlow(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	_, customerToken := createTestUser(t, db, "sara", false)
	_, adminToken := createTestUser(t, db, "boss", true)

	addToCart(t, r, customerToken, menuID(t, db, "Burger"), 1)
	w := doCheckout(r, customerToken, defaultCheckoutFields())
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(decodeData(t, w)["order_id"].(float64))

	// Shows up in the pending queue.
	w = doJSON(r, http.MethodGet, "/admin/orders/pending", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	url := fmt.Sprintf("/admin/orders/%d/verify-payment", orderID)
	w = doJSON(r, http.MethodPost, url, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)
	assert.Equal(t, models.PaymentStatusSuccess, data["payment_status"])
	assert.Equal(t, true, data["payment_verified"])

	// Second press of the button: same outcome, no error.
	w = doJSON(r, http.MethodPost, url, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Queue is empty again.
	var pending int64
	require.NoError(t, db.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentStatusPending).
		Count(&pending).Error)
	assert.Zero(t, pending)
}

func TestVerifyPaymentUnknownOrderHTTP(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	_, adminToken := createTestUser(t, db, "boss", true)

	w := doJSON(r, http.MethodPost, "/admin/orders/9999/verify-payment", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	_, customerToken := createTestUser(t, db, "tom", false)
	_, adminToken := createTestUser(t, db, "boss", true)

	addToCart(t, r, customerToken, menuID(t, db, "Pizza"), 1)
	w := doCheckout(r, customerToken, defaultCheckoutFields())
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(decodeData(t, w)["order_id"].(float64))

	url := fmt.Sprintf("/admin/orders/%d/status", orderID)
	w = doJSON(r, http.MethodPatch, url, adminToken, map[string]string{
		"status": models.PaymentStatusDelivering,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)
	assert.Equal(t, models.PaymentStatusDelivering, data["payment_status"])
	assert.Equal(t, false, data["payment_verified"])

	// Labels outside the known set are rejected.
	w = doJSON(r, http.MethodPatch, url, adminToken, map[string]string{
		"status": "Teleported",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRevocationTakesEffectImmediately(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	admin, adminToken := createTestUser(t, db, "boss", true)

	w := doJSON(r, http.MethodGet, "/admin/orders", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Revoke the flag; the very next request with the same token is 403
	// because the identity is re-read per request.
	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", admin.ID).
		Update("is_admin", false).Error)

	w = doJSON(r, http.MethodGet, "/admin/orders", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	_, customerToken := createTestUser(t, db, "uma", false)
	_, adminToken := createTestUser(t, db, "boss", true)

	addToCart(t, r, customerToken, menuID(t, db, "Burger"), 1)
	w := doCheckout(r, customerToken, defaultCheckoutFields())
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(decodeData(t, w)["order_id"].(float64))

	w = doJSON(r, http.MethodPost, fmt.Sprintf("/admin/orders/%d/verify-payment", orderID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/admin/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(1), data["total_orders"])
	assert.Equal(t, float64(0), data["pending_orders"])
	assert.Equal(t, float64(1), data["verified_orders"])
	assert.InDelta(t, 5.99, data["verified_revenue"].(float64), 0.001)
}

func TestCreateMenuItemAdminOnly(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	_, customerToken := createTestUser(t, db, "vic", false)
	_, adminToken := createTestUser(t, db, "boss", true)

	payload := map[string]interface{}{
		"name":        "Salad",
		"description": "Fresh garden salad",
		"price":       4.50,
		"image":       "salad.jpg",
		"options":     []string{"No dressing"},
	}

	w := doJSON(r, http.MethodPost, "/admin/menus", customerToken, payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPost, "/admin/menus", adminToken, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.MenuItem{}).Where("name = ?", "Salad").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
