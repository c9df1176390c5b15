package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/models"
)

// CartService owns the cart mutation rules. All methods are scoped to the
// owner id so one user can never touch another user's cart.
type CartService struct {
	DB *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{DB: db}
}

// Add puts a menu item into the owner's cart. A repeated add for the same
// item increments the existing line's quantity and overwrites its options
// (last write wins, no merge). Name and price are snapshotted from the menu
// item on first insertion and never re-derived.
func (s *CartService) Add(ownerID, menuItemID uint, quantity int, options []string) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	var menuItem models.MenuItem
	if err := s.DB.First(&menuItem, menuItemID).Error; err != nil {
		return err
	}

	var line models.CartItem
	err := s.DB.Where("user_id = ? AND menu_item_id = ?", ownerID, menuItemID).First(&line).Error
	if err == nil {
		line.Quantity += quantity
		line.Options = options
		return s.DB.Save(&line).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	line = models.CartItem{
		UserID:     ownerID,
		MenuItemID: menuItem.ID,
		Name:       menuItem.Name,
		Price:      menuItem.Price,
		Quantity:   quantity,
		Options:    options,
	}
	return s.DB.Create(&line).Error
}

// Update overwrites the quantity of an existing line. Price and options are
// left untouched.
func (s *CartService) Update(ownerID, lineID uint, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	var line models.CartItem
	if err := s.DB.Where("user_id = ?", ownerID).First(&line, lineID).Error; err != nil {
		return err
	}

	line.Quantity = quantity
	return s.DB.Save(&line).Error
}

// Remove deletes the owner's line. A missing line counts as success: the
// desired end state is already reached.
func (s *CartService) Remove(ownerID, lineID uint) error {
	return s.DB.Where("user_id = ?", ownerID).Delete(&models.CartItem{}, lineID).Error
}

func (s *CartService) List(ownerID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.DB.Where("user_id = ?", ownerID).Find(&items).Error
	return items, err
}
