package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"retail-pos/internal/domain"
	"retail-pos/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrder           = errors.New("order must contain at least one item")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
)

// CheckoutItem is one requested line of a checkout.
type CheckoutItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// OrderService defines the interface for order business logic
type OrderService interface {
	Checkout(ctx context.Context, items []CheckoutItem, method domain.PaymentMethod) (*domain.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// Checkout prices the requested items against the live catalog, captures each
// unit price on its order line, applies the flat tax rate, and persists the
// order. Totals always satisfy total == subtotal + tax and
// tax == subtotal * TaxRate; stock is verified and decremented atomically by
// the repository.
func (s *orderService) Checkout(ctx context.Context, items []CheckoutItem, method domain.PaymentMethod) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	if !method.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	orderID := uuid.New()
	orderItems := make([]domain.OrderItem, 0, len(items))
	var subtotal float64

	for _, item := range items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Stock < item.Quantity {
			return nil, repository.ErrInsufficientStock
		}

		subtotal += product.Price * float64(item.Quantity)
		orderItems = append(orderItems, domain.OrderItem{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
	}

	tax := subtotal * domain.TaxRate
	order := &domain.Order{
		ID:            orderID,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal + tax,
		PaymentMethod: method,
		Status:        domain.OrderStatusCompleted,
		CreatedAt:     time.Now(),
		Items:         orderItems,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

// GetOrder retrieves an order by ID
func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

// ListOrders retrieves all orders, newest first
func (s *orderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orderRepo.List(ctx)
}
