package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
)

// CheckoutInfo is the delivery/contact data collected on the checkout form.
type CheckoutInfo struct {
	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	PaymentMethod   string
	QRCodePayment   bool
	ReceiptImage    string
}

// OrderService drives the order lifecycle: checkout and the payment status
// transitions applied during admin review.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// Checkout converts the owner's cart into an order. The total is computed
// from the price snapshots stored on the cart lines, never from the current
// menu prices. The order and its items are persisted in one transaction;
// clearing the cart afterwards is best-effort cleanup. If the clear fails
// the order is still returned: a valid order plus a stale cart beats a
// charged customer with no order. There is no cross-document transaction
// around the two steps, so an add-to-cart racing a checkout from the same
// owner can leave a line behind.
func (s *OrderService) Checkout(ownerID uint, info CheckoutInfo) (*models.Order, error) {
	var lines []models.CartItem
	if err := s.DB.Where("user_id = ?", ownerID).Find(&lines).Error; err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	images := s.menuImages(lines)

	var total float64
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		total += line.Subtotal()
		items = append(items, models.OrderItem{
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
			Options:  line.Options,
			Image:    images[line.MenuItemID],
		})
	}

	order := models.Order{
		UserID:          ownerID,
		Items:           items,
		TotalAmount:     total,
		CustomerName:    info.CustomerName,
		CustomerAddress: info.CustomerAddress,
		CustomerPhone:   info.CustomerPhone,
		PaymentMethod:   info.PaymentMethod,
		QRCodePayment:   info.QRCodePayment,
		ReceiptImage:    info.ReceiptImage,
		PaymentStatus:   models.PaymentStatusPending,
		PaymentVerified: false,
		OrderDate:       time.Now(),
	}

	if err := s.DB.Create(&order).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Where("user_id = ?", ownerID).Delete(&models.CartItem{}).Error; err != nil {
		utils.ErrorLogger.Errorf("order %d created but clearing cart for user %d failed: %v",
			order.ID, ownerID, err)
	}

	return &order, nil
}

// menuImages resolves the current catalog image per menu item referenced by
// the cart, so the order snapshot can carry it. Prices are NOT re-read here.
// A menu item deleted mid-checkout simply yields an empty image.
func (s *OrderService) menuImages(lines []models.CartItem) map[uint]string {
	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.MenuItemID)
	}

	var menuItems []models.MenuItem
	if err := s.DB.Where("id IN ?", ids).Find(&menuItems).Error; err != nil {
		utils.ErrorLogger.Errorf("failed to load menu images for checkout: %v", err)
		return nil
	}

	images := make(map[uint]string, len(menuItems))
	for _, item := range menuItems {
		images[item.ID] = item.Image
	}
	return images
}

func (s *OrderService) GetOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.Preload("Items").First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) ListOrdersForUser(ownerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.Preload("Items").
		Where("user_id = ?", ownerID).
		Order("order_date desc").
		Find(&orders).Error
	return orders, err
}

func (s *OrderService) ListAllOrders(caller CallerIdentity) ([]models.Order, error) {
	if !caller.IsAdmin {
		return nil, ErrForbidden
	}

	var orders []models.Order
	err := s.DB.Preload("Items").Order("order_date desc").Find(&orders).Error
	return orders, err
}

func (s *OrderService) ListPendingOrders(caller CallerIdentity) ([]models.Order, error) {
	if !caller.IsAdmin {
		return nil, ErrForbidden
	}

	var orders []models.Order
	err := s.DB.Preload("Items").
		Where("payment_status = ?", models.PaymentStatusPending).
		Order("order_date asc").
		Find(&orders).Error
	return orders, err
}

// VerifyPayment marks the order's payment as reviewed and accepted. It is
// deliberately unconditional: verifying an already verified order is a no-op
// with the same outcome, so the admin button can be pressed twice safely.
func (s *OrderService) VerifyPayment(caller CallerIdentity, orderID uint) (*models.Order, error) {
	if !caller.IsAdmin {
		return nil, ErrForbidden
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		return nil, err
	}

	order.PaymentStatus = models.PaymentStatusSuccess
	order.PaymentVerified = true
	if err := s.DB.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// SetStatus overwrites the payment status with another label from the known
// set. Pending is not assignable: it is the checkout-only initial state, and
// allowing it here would let review move a verified order back to Pending.
// PaymentVerified is never touched, that flag only flips through
// VerifyPayment.
func (s *OrderService) SetStatus(caller CallerIdentity, orderID uint, status string) (*models.Order, error) {
	if !caller.IsAdmin {
		return nil, ErrForbidden
	}
	if !models.ValidPaymentStatus(status) || status == models.PaymentStatusPending {
		return nil, ErrInvalidStatus
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		return nil, err
	}

	order.PaymentStatus = status
	if err := s.DB.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
