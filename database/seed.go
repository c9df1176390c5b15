package database

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
)

// Seed loads the sample menu when the catalog is empty. Safe to run on
// every startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		utils.InfoLogger.Printf("Menu already seeded (%d items), skipping", count)
		return nil
	}

	menuItems := []models.MenuItem{
		{
			Name:        "Burger",
			Price:       5.99,
			Description: "Juicy beef burger with lettuce, tomato, and cheese",
			Image:       "https://cdn.pixabay.com/photo/2022/08/31/10/17/burger-7422970_640.jpg",
		},
		{
			Name:        "Pizza",
			Price:       8.99,
			Description: "Cheesy pizza with tomato sauce and pepperoni",
			Image:       "https://againstthegraingourmet.com/cdn/shop/products/Pepperoni_Pizza_Beauty_1200x1200.jpg",
		},
		{
			Name:        "Pasta",
			Price:       7.99,
			Description: "Pasta with a rich tomato and basil sauce",
			Image:       "https://cdn.apartmenttherapy.info/image/upload/f_jpg,q_auto:eco/caramelized-tomato-paste-pasta.jpg",
		},
		{
			Name:        "Steak",
			Price:       12.99,
			Description: "Grilled steak served with sides",
			Image:       "https://www.seriouseats.com/thmb/anova-steak-guide-sous-vide-photos.jpg",
			Options:     models.StringList{"Rare", "Medium-Rare", "Medium", "Well-Done"},
		},
	}

	if err := db.Create(&menuItems).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded %d menu items", len(menuItems))
	return nil
}

// CreateAdmin is the out-of-band admin bootstrap. If a user with the email
// exists their admin flag is set, otherwise the account is created. This is
// intentionally never reachable through an HTTP route.
func CreateAdmin(db *gorm.DB, username, email, password string) error {
	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		if existing.IsAdmin {
			utils.InfoLogger.Printf("Admin user already exists: %s", existing.Username)
			return nil
		}
		existing.IsAdmin = true
		if err := db.Save(&existing).Error; err != nil {
			return err
		}
		utils.InfoLogger.Printf("Admin status granted to user: %s", existing.Username)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		IsAdmin:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Admin user created: %s", admin.Username)
	return nil
}
