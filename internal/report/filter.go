package report

import (
	"retail-pos/internal/domain"

	"github.com/google/uuid"
)

// FilterOrders selects the orders whose timestamp falls inside the filter
// window and which match every optional predicate. Encounter order is
// preserved; the input slice is never modified.
//
// The category predicate matches when at least one order item's product
// belongs to the category, resolved through the catalog index. The product
// predicate matches when at least one item references the product id.
func FilterOrders(orders []domain.Order, f Filters, catalog CatalogIndex) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if !f.Range.Contains(order.CreatedAt) {
			continue
		}
		if f.PaymentMethod != nil && order.PaymentMethod != *f.PaymentMethod {
			continue
		}
		if f.CategoryID != nil && !hasCategory(order, *f.CategoryID, catalog) {
			continue
		}
		if f.ProductID != nil && !hasProduct(order, *f.ProductID) {
			continue
		}
		out = append(out, order)
	}
	return out
}

func hasCategory(order domain.Order, categoryID uuid.UUID, catalog CatalogIndex) bool {
	for _, item := range order.Items {
		if catalog[item.ProductID].CategoryID == categoryID {
			return true
		}
	}
	return false
}

func hasProduct(order domain.Order, productID uuid.UUID) bool {
	for _, item := range order.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
