package report

import (
	"fmt"

	"retail-pos/internal/domain"
)

// dayLabel is the chart label format for calendar-day buckets, e.g. "Jan 02".
const dayLabel = "Jan 02"

// DailySalesSeries buckets orders into one entry per calendar day of the
// window, bounds inclusive. Days without orders are present with zero sales,
// zero orders, and a zero average, so charts always span the full window.
func DailySalesSeries(orders []domain.Order, window DateRange) []SalesPoint {
	series := make([]SalesPoint, 0)
	for day := startOfDay(window.Start); !day.After(window.End); day = day.AddDate(0, 0, 1) {
		point := SalesPoint{Label: day.Format(dayLabel)}
		for _, order := range orders {
			if sameDay(order.CreatedAt, day) {
				point.Sales += order.Total
				point.Orders++
			}
		}
		if point.Orders > 0 {
			point.AverageOrderValue = point.Sales / float64(point.Orders)
		}
		series = append(series, point)
	}
	return series
}

// HourlySalesSeries buckets orders by hour of day for single-day or sub-day
// charts. Hours with no orders are omitted; entries ascend by hour.
func HourlySalesSeries(orders []domain.Order) []SalesPoint {
	var sales [24]float64
	var counts [24]int
	for _, order := range orders {
		h := order.CreatedAt.Hour()
		sales[h] += order.Total
		counts[h]++
	}

	series := make([]SalesPoint, 0)
	for h := 0; h < 24; h++ {
		if counts[h] == 0 {
			continue
		}
		series = append(series, SalesPoint{
			Label:             fmt.Sprintf("%02d:00", h),
			Sales:             sales[h],
			Orders:            counts[h],
			AverageOrderValue: sales[h] / float64(counts[h]),
		})
	}
	return series
}
