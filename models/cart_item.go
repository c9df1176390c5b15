package models

import "time"

// CartItem is one customizable menu selection pending checkout. There is at
// most one row per (user, menu item); repeated adds bump the quantity.
// Name and price are copied from the menu item when the row is first created
// so a later menu edit does not change what the customer agreed to pay.
type CartItem struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"user_id"`
	MenuItemID uint       `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"menu_item_id"`
	Name       string     `gorm:"type:varchar(255);not null" json:"name"`
	Price      float64    `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity   int        `gorm:"not null" json:"quantity"`
	Options    StringList `gorm:"type:text" json:"options"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (ci *CartItem) Subtotal() float64 {
	return ci.Price * float64(ci.Quantity)
}
