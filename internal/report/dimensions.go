package report

import (
	"sort"

	"retail-pos/internal/domain"

	"github.com/google/uuid"
)

type productAccumulator struct {
	quantitySold int
	revenue      float64
	priceSum     float64
	lines        int
}

// CalculateProductPerformance groups order items by product across the
// filtered orders and ranks the groups by revenue, descending. Ties keep
// encounter order. Names and current stock come from the catalog index;
// revenue uses each line's captured price, never the live product price.
func CalculateProductPerformance(orders []domain.Order, catalog CatalogIndex) []ProductPerformance {
	accs := make(map[uuid.UUID]*productAccumulator)
	seen := make([]uuid.UUID, 0)

	for _, order := range orders {
		for _, item := range order.Items {
			acc, ok := accs[item.ProductID]
			if !ok {
				acc = &productAccumulator{}
				accs[item.ProductID] = acc
				seen = append(seen, item.ProductID)
			}
			acc.quantitySold += item.Quantity
			acc.revenue += item.Price * float64(item.Quantity)
			acc.priceSum += item.Price
			acc.lines++
		}
	}

	perf := make([]ProductPerformance, 0, len(seen))
	for _, id := range seen {
		acc := accs[id]
		info := catalog[id]
		perf = append(perf, ProductPerformance{
			ProductID:    id,
			ProductName:  info.Name,
			CategoryName: info.CategoryName,
			QuantitySold: acc.quantitySold,
			Revenue:      acc.revenue,
			AveragePrice: acc.priceSum / float64(acc.lines),
			Stock:        info.Stock,
		})
	}

	sort.SliceStable(perf, func(i, j int) bool {
		return perf[i].Revenue > perf[j].Revenue
	})
	return perf
}

type categoryAccumulator struct {
	name          string
	totalRevenue  float64
	totalQuantity int
	products      map[uuid.UUID]struct{}
	priceSum      float64
	lines         int
}

// CalculateCategoryPerformance groups order items by the category of their
// product, resolved through the catalog index. Items whose product is absent
// from the index fall into a nameless zero-id category rather than being
// dropped, so revenue still reconciles with the per-product totals.
func CalculateCategoryPerformance(orders []domain.Order, catalog CatalogIndex) []CategoryPerformance {
	accs := make(map[uuid.UUID]*categoryAccumulator)
	seen := make([]uuid.UUID, 0)

	for _, order := range orders {
		for _, item := range order.Items {
			info := catalog[item.ProductID]
			acc, ok := accs[info.CategoryID]
			if !ok {
				acc = &categoryAccumulator{
					name:     info.CategoryName,
					products: make(map[uuid.UUID]struct{}),
				}
				accs[info.CategoryID] = acc
				seen = append(seen, info.CategoryID)
			}
			acc.totalRevenue += item.Price * float64(item.Quantity)
			acc.totalQuantity += item.Quantity
			acc.products[item.ProductID] = struct{}{}
			acc.priceSum += item.Price
			acc.lines++
		}
	}

	perf := make([]CategoryPerformance, 0, len(seen))
	for _, id := range seen {
		acc := accs[id]
		perf = append(perf, CategoryPerformance{
			CategoryID:    id,
			CategoryName:  acc.name,
			TotalRevenue:  acc.totalRevenue,
			TotalQuantity: acc.totalQuantity,
			ProductCount:  len(acc.products),
			AveragePrice:  acc.priceSum / float64(acc.lines),
		})
	}

	sort.SliceStable(perf, func(i, j int) bool {
		return perf[i].TotalRevenue > perf[j].TotalRevenue
	})
	return perf
}

// AnalyzePaymentMethods groups whole orders by payment method. Percentage is
// each method's share of the grand total across the filtered set, and 0 when
// the grand total itself is 0. Sorted by total amount, descending, with ties
// keeping encounter order.
func AnalyzePaymentMethods(orders []domain.Order) []PaymentMethodAnalysis {
	type acc struct {
		totalAmount float64
		orderCount  int
	}
	accs := make(map[domain.PaymentMethod]*acc)
	seen := make([]domain.PaymentMethod, 0)

	var grandTotal float64
	for _, order := range orders {
		a, ok := accs[order.PaymentMethod]
		if !ok {
			a = &acc{}
			accs[order.PaymentMethod] = a
			seen = append(seen, order.PaymentMethod)
		}
		a.totalAmount += order.Total
		a.orderCount++
		grandTotal += order.Total
	}

	analysis := make([]PaymentMethodAnalysis, 0, len(seen))
	for _, method := range seen {
		a := accs[method]
		var pct float64
		if grandTotal > 0 {
			pct = a.totalAmount / grandTotal * 100
		}
		analysis = append(analysis, PaymentMethodAnalysis{
			PaymentMethod: method,
			TotalAmount:   a.totalAmount,
			OrderCount:    a.orderCount,
			Percentage:    pct,
		})
	}

	sort.SliceStable(analysis, func(i, j int) bool {
		return analysis[i].TotalAmount > analysis[j].TotalAmount
	})
	return analysis
}
