package order

import "time"

type PaymentMethod string

const (
	PaymentMethodCOD      PaymentMethod = "COD"
	PaymentMethodQR       PaymentMethod = "QR"
	PaymentMethodRazorpay PaymentMethod = "RAZORPAY"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodQR, PaymentMethodRazorpay:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusUnpaid              PaymentStatus = "Unpaid"
	PaymentStatusPendingVerification PaymentStatus = "PendingVerification"
	PaymentStatusPaid                PaymentStatus = "Paid"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPendingVerification, PaymentStatusPaid:
		return true
	}
	return false
}

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CartItem is a checkout request entry; the product snapshot is captured
// during order placement.
type CartItem struct {
	ProductID string
	Qty       int
}

type Customer struct {
	Name    string
	Phone   string
	Address string
	City    string
	Pincode string
}

type PlaceOrderInput struct {
	Items         []CartItem
	Customer      Customer
	PaymentMethod PaymentMethod
}

// OrderItem stores the product name and unit price as they were at order
// time. Later product mutations must not alter it.
type OrderItem struct {
	OrderID   string
	ProductID string
	Name      string
	Price     int64
	Qty       int
}

// Order amounts are in currency minor units.
type Order struct {
	ID            string
	Items         []OrderItem
	Customer      Customer
	TotalAmount   int64
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	OrderStatus   Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ListFilter struct {
	Status        *Status
	PaymentStatus *PaymentStatus
}

// StatusUpdate carries the admin-side partial update; nil leaves a field
// unchanged.
type StatusUpdate struct {
	OrderStatus   *Status
	PaymentStatus *PaymentStatus
}
