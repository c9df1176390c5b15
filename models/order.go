package models

import "time"

// Payment status labels an order moves through. Pending is set at checkout;
// Success is only ever set by admin verification.
const (
	PaymentStatusPending    = "Pending"
	PaymentStatusProcessing = "Processing"
	PaymentStatusDelivering = "Delivering"
	PaymentStatusSuccess    = "Success"
	PaymentStatusRejected   = "Rejected"
)

var paymentStatuses = map[string]bool{
	PaymentStatusPending:    true,
	PaymentStatusProcessing: true,
	PaymentStatusDelivering: true,
	PaymentStatusSuccess:    true,
	PaymentStatusRejected:   true,
}

func ValidPaymentStatus(status string) bool {
	return paymentStatuses[status]
}

// Order captures a checkout snapshot. Items and TotalAmount are frozen at
// creation; only PaymentStatus and PaymentVerified change afterwards, and
// only through an admin action.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	TotalAmount     float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	CustomerName    string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerAddress string      `gorm:"type:text;not null" json:"customer_address"`
	CustomerPhone   string      `gorm:"type:varchar(32);not null" json:"customer_phone"`
	PaymentMethod   string      `gorm:"type:varchar(32);not null" json:"payment_method"`
	QRCodePayment   bool        `gorm:"not null;default:false" json:"qr_code_payment"`
	ReceiptImage    string      `gorm:"type:varchar(512)" json:"receipt_image,omitempty"`
	PaymentStatus   string      `gorm:"type:varchar(20);not null;default:'Pending'" json:"payment_status"`
	PaymentVerified bool        `gorm:"not null;default:false" json:"payment_verified"`
	OrderDate       time.Time   `gorm:"not null" json:"order_date"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem is a snapshot of a cart line at checkout time. It carries no
// reference back to the menu item, so menu edits never rewrite history.
type OrderItem struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	OrderID  uint       `gorm:"not null;index" json:"order_id"`
	Name     string     `gorm:"type:varchar(255);not null" json:"name"`
	Price    float64    `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity int        `gorm:"not null" json:"quantity"`
	Options  StringList `gorm:"type:text" json:"options"`
	Image    string     `gorm:"type:varchar(512)" json:"image"`
}
