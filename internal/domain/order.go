package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaxRate is the flat sales tax applied at checkout.
const TaxRate = 0.10

// PaymentMethod identifies how an order was paid.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentMobile PaymentMethod = "mobile"
)

// IsValid reports whether the payment method is one of the supported values.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobile:
		return true
	}
	return false
}

// OrderStatus identifies the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is an immutable record of a completed sale. Invariants:
// Total == Subtotal + Tax and Tax == Subtotal * TaxRate.
type Order struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	Subtotal      float64       `json:"subtotal" db:"subtotal"`
	Tax           float64       `json:"tax" db:"tax"`
	Total         float64       `json:"total" db:"total"`
	PaymentMethod PaymentMethod `json:"payment_method" db:"payment_method"`
	Status        OrderStatus   `json:"status" db:"status"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	Items         []OrderItem   `json:"items"`
}

// OrderItem is a single line of an order. Price is the unit price captured at
// the time of sale; reporting must use it rather than the product's current
// price so historical figures stay stable across price changes.
type OrderItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OrderID   uuid.UUID `json:"order_id" db:"order_id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Price     float64   `json:"price" db:"price"`
}
