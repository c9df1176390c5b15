package services

import "errors"

var (
	// ErrEmptyCart rejects a checkout with no cart lines. No order is created.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidQuantity rejects cart mutations with a quantity below 1.
	// A line is never persisted at quantity 0; removal deletes it instead.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrInvalidStatus rejects a payment status outside the known set.
	ErrInvalidStatus = errors.New("unknown payment status")

	// ErrForbidden is returned when a non-admin caller invokes an
	// admin-only operation.
	ErrForbidden = errors.New("admin access required")
)
