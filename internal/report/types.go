// Package report is the sales-analytics aggregation engine. Every function in
// it is a pure transformation over an in-memory order collection: inputs are
// never mutated, outputs are freshly allocated, and there is no I/O, so
// callers may invoke any of them concurrently without coordination.
package report

import (
	"time"

	"retail-pos/internal/domain"

	"github.com/google/uuid"
)

// Period names a reporting window anchored to "now".
type Period string

const (
	PeriodDay    Period = "day"
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodYear   Period = "year"
	PeriodCustom Period = "custom"
)

// DateRange is an inclusive window used to select orders.
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// Filters selects orders for a report. The date range is required; the
// remaining predicates are optional and conjunctive.
type Filters struct {
	Range         DateRange
	PaymentMethod *domain.PaymentMethod
	CategoryID    *uuid.UUID
	ProductID     *uuid.UUID
}

// SalesMetrics are the scalar summary statistics over a filtered order set.
type SalesMetrics struct {
	TotalSales        float64 `json:"total_sales"`
	TotalOrders       int     `json:"total_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
	TotalTax          float64 `json:"total_tax"`
	TotalSubtotal     float64 `json:"total_subtotal"`
}

// SalesPoint is one bucket of a time series: a calendar day or an hour.
type SalesPoint struct {
	Label             string  `json:"label"`
	Sales             float64 `json:"sales"`
	Orders            int     `json:"orders"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// ProductPerformance ranks a product by revenue within the filtered set.
// AveragePrice is the mean of per-line unit prices, not revenue/quantity.
// Stock is the product's current live stock, not a historical value.
type ProductPerformance struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	CategoryName string    `json:"category_name"`
	QuantitySold int       `json:"quantity_sold"`
	Revenue      float64   `json:"revenue"`
	AveragePrice float64   `json:"average_price"`
	Stock        int       `json:"stock"`
}

// CategoryPerformance ranks a category by revenue within the filtered set.
type CategoryPerformance struct {
	CategoryID    uuid.UUID `json:"category_id"`
	CategoryName  string    `json:"category_name"`
	TotalRevenue  float64   `json:"total_revenue"`
	TotalQuantity int       `json:"total_quantity"`
	ProductCount  int       `json:"product_count"`
	AveragePrice  float64   `json:"average_price"`
}

// PaymentMethodAnalysis breaks the filtered set down by payment method.
// Percentage is of the grand total across all methods in the same set.
type PaymentMethodAnalysis struct {
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	TotalAmount   float64              `json:"total_amount"`
	OrderCount    int                  `json:"order_count"`
	Percentage    float64              `json:"percentage"`
}

// HourlyAnalysis is an hour-of-day traffic bucket.
type HourlyAnalysis struct {
	Hour              int     `json:"hour"`
	OrderCount        int     `json:"order_count"`
	TotalSales        float64 `json:"total_sales"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// DailyAnalysis is a calendar-date traffic bucket with its weekday name.
type DailyAnalysis struct {
	Date              string  `json:"date"`
	DayOfWeek         string  `json:"day_of_week"`
	OrderCount        int     `json:"order_count"`
	TotalSales        float64 `json:"total_sales"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// Summary is the full dashboard payload for one reporting period.
type Summary struct {
	Period              Period                  `json:"period"`
	Range               DateRange               `json:"range"`
	Metrics             SalesMetrics            `json:"metrics"`
	SalesGrowth         float64                 `json:"sales_growth_percent"`
	OrdersGrowth        float64                 `json:"orders_growth_percent"`
	TopProducts         []ProductPerformance    `json:"top_products"`
	CategoryPerformance []CategoryPerformance   `json:"category_performance"`
	PaymentMethods      []PaymentMethodAnalysis `json:"payment_methods"`
	PeakHours           []HourlyAnalysis        `json:"peak_hours"`
	DailyTrends         []DailyAnalysis         `json:"daily_trends"`
}
