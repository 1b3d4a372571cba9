package report

import (
	"math"
	"testing"
	"time"

	"retail-pos/internal/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateSalesMetricsEmptySet(t *testing.T) {
	m := CalculateSalesMetrics(nil)

	if m.TotalSales != 0 || m.TotalOrders != 0 || m.AverageOrderValue != 0 ||
		m.TotalTax != 0 || m.TotalSubtotal != 0 {
		t.Errorf("expected all-zero metrics for empty set, got %+v", m)
	}
}

func TestCalculateSalesMetrics(t *testing.T) {
	at := time.Date(2024, time.June, 10, 10, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		{Subtotal: 100, Tax: 10, Total: 110, CreatedAt: at},
		{Subtotal: 170, Tax: 17, Total: 187, CreatedAt: at},
	}

	m := CalculateSalesMetrics(orders)

	if !almostEqual(m.TotalSales, 297) {
		t.Errorf("expected total sales 297, got %f", m.TotalSales)
	}
	if m.TotalOrders != 2 {
		t.Errorf("expected 2 orders, got %d", m.TotalOrders)
	}
	if !almostEqual(m.AverageOrderValue, 148.5) {
		t.Errorf("expected average order value 148.5, got %f", m.AverageOrderValue)
	}
	if !almostEqual(m.TotalTax, 27) {
		t.Errorf("expected total tax 27, got %f", m.TotalTax)
	}
	if !almostEqual(m.TotalSubtotal, 270) {
		t.Errorf("expected total subtotal 270, got %f", m.TotalSubtotal)
	}
}

func TestCalculateGrowth(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"increase", 150, 100, 50},
		{"decrease", 50, 100, -50},
		{"flat", 100, 100, 0},
		{"zero baseline with sales", 100, 0, 100},
		{"zero baseline without sales", 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalculateGrowth(tc.current, tc.previous); !almostEqual(got, tc.want) {
				t.Errorf("CalculateGrowth(%f, %f) = %f, want %f", tc.current, tc.previous, got, tc.want)
			}
		})
	}
}
