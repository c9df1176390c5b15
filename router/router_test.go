package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

func TestUploadsRestrictedToImageFiles(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	r := SetupRouter(db)

	get := func(path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusForbidden, get("/uploads/receipts/dump.sql"))
	// Image extensions pass the filter; a file that does not exist is a
	// plain 404.
	assert.Equal(t, http.StatusNotFound, get("/uploads/receipts/missing.png"))
	// Routes outside /uploads are untouched by the filter.
	assert.Equal(t, http.StatusOK, get("/ping"))
}
