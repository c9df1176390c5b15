package services

import (
	"os"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// setupTestDB -> in-memory sqlite with the sample catalog.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	// A second pool connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	menuItems := []models.MenuItem{
		{Name: "Burger", Price: 5.99, Description: "Juicy beef burger", Image: "burger.jpg"},
		{Name: "Pizza", Price: 8.99, Description: "Cheesy pizza", Image: "pizza.jpg"},
		{Name: "Steak", Price: 12.99, Description: "Grilled steak", Image: "steak.jpg",
			Options: models.StringList{"Rare", "Medium-Rare", "Medium", "Well-Done"}},
	}
	if err := db.Create(&menuItems).Error; err != nil {
		t.Fatalf("failed to seed menu: %v", err)
	}
	return db
}

func menuItemByName(t *testing.T, db *gorm.DB, name string) models.MenuItem {
	t.Helper()
	var item models.MenuItem
	if err := db.Where("name = ?", name).First(&item).Error; err != nil {
		t.Fatalf("menu item %s not seeded: %v", name, err)
	}
	return item
}
