package report

import "retail-pos/internal/domain"

// CalculateSalesMetrics computes the scalar summary over a filtered order
// set. An empty set yields all zeroes; the average never divides by zero.
func CalculateSalesMetrics(orders []domain.Order) SalesMetrics {
	m := SalesMetrics{TotalOrders: len(orders)}
	for _, order := range orders {
		m.TotalSales += order.Total
		m.TotalTax += order.Tax
		m.TotalSubtotal += order.Subtotal
	}
	if m.TotalOrders > 0 {
		m.AverageOrderValue = m.TotalSales / float64(m.TotalOrders)
	}
	return m
}

// CalculateGrowth returns the percentage change from previous to current.
// A zero baseline counts as 100% growth when current is positive and 0%
// otherwise, so the function is total over all inputs.
func CalculateGrowth(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}
