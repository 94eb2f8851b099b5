package order

import (
	"errors"
	"fmt"
)

var (
	// -- Validation & Input --
	ErrEmptyCart            = errors.New("Order must contain at least one item")
	ErrInvalidQuantity      = errors.New("Item quantity must be a positive integer")
	ErrCustomerIncomplete   = errors.New("All customer details are required")
	ErrInvalidPaymentMethod = errors.New("Invalid payment method")
	ErrInvalidPaymentStatus = errors.New("Invalid payment status")
	ErrInvalidOrderStatus   = errors.New("Invalid order status")
	ErrNoFieldsToUpdate     = errors.New("No fields to update")

	// -- Resource State --
	ErrOrderNotFound = errors.New("Order not found")
)

type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product %s not found", e.ProductID)
}

type ProductUnavailableError struct {
	Name string
}

func (e *ProductUnavailableError) Error() string {
	return fmt.Sprintf("Product %s is not available", e.Name)
}

type InsufficientStockError struct {
	Name      string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s. Available: %d", e.Name, e.Available)
}
