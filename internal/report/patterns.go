package report

import (
	"sort"
	"time"

	"retail-pos/internal/domain"
)

// DaysOfWeek maps time.Weekday values to display names, Sunday first.
var DaysOfWeek = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// AnalyzeHourlyPatterns partitions orders into the 24 fixed hour-of-day
// buckets, drops hours that saw no orders, and ranks the rest by order count,
// descending. Tied hours stay in ascending hour order.
func AnalyzeHourlyPatterns(orders []domain.Order) []HourlyAnalysis {
	var sales [24]float64
	var counts [24]int
	for _, order := range orders {
		h := order.CreatedAt.Hour()
		sales[h] += order.Total
		counts[h]++
	}

	analysis := make([]HourlyAnalysis, 0)
	for h := 0; h < 24; h++ {
		if counts[h] == 0 {
			continue
		}
		analysis = append(analysis, HourlyAnalysis{
			Hour:              h,
			OrderCount:        counts[h],
			TotalSales:        sales[h],
			AverageOrderValue: sales[h] / float64(counts[h]),
		})
	}

	sort.SliceStable(analysis, func(i, j int) bool {
		return analysis[i].OrderCount > analysis[j].OrderCount
	})
	return analysis
}

// AnalyzeDailyPatterns groups orders by calendar date across the filtered
// range. Each bucket carries the weekday name for the date. Sorted ascending
// by the actual date, not the display label.
func AnalyzeDailyPatterns(orders []domain.Order) []DailyAnalysis {
	type acc struct {
		orderCount int
		totalSales float64
	}
	accs := make(map[time.Time]*acc)
	days := make([]time.Time, 0)

	for _, order := range orders {
		day := startOfDay(order.CreatedAt)
		a, ok := accs[day]
		if !ok {
			a = &acc{}
			accs[day] = a
			days = append(days, day)
		}
		a.orderCount++
		a.totalSales += order.Total
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	analysis := make([]DailyAnalysis, 0, len(days))
	for _, day := range days {
		a := accs[day]
		analysis = append(analysis, DailyAnalysis{
			Date:              day.Format(dayLabel),
			DayOfWeek:         DaysOfWeek[int(day.Weekday())],
			OrderCount:        a.orderCount,
			TotalSales:        a.totalSales,
			AverageOrderValue: a.totalSales / float64(a.orderCount),
		})
	}
	return analysis
}
