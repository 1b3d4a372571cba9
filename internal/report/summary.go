package report

import "retail-pos/internal/domain"

// TopProductLimit caps the ranked product list included in a summary.
const TopProductLimit = 10

// BuildSummary assembles the full dashboard payload for a period from the
// already-filtered current and previous-period order sets. Growth percentages
// compare the two sets' metrics; every other fragment is computed from the
// current set alone.
func BuildSummary(current, previous []domain.Order, period Period, window DateRange, catalog CatalogIndex) Summary {
	metrics := CalculateSalesMetrics(current)
	prevMetrics := CalculateSalesMetrics(previous)

	topProducts := CalculateProductPerformance(current, catalog)
	if len(topProducts) > TopProductLimit {
		topProducts = topProducts[:TopProductLimit]
	}

	return Summary{
		Period:              period,
		Range:               window,
		Metrics:             metrics,
		SalesGrowth:         CalculateGrowth(metrics.TotalSales, prevMetrics.TotalSales),
		OrdersGrowth:        CalculateGrowth(float64(metrics.TotalOrders), float64(prevMetrics.TotalOrders)),
		TopProducts:         topProducts,
		CategoryPerformance: CalculateCategoryPerformance(current, catalog),
		PaymentMethods:      AnalyzePaymentMethods(current),
		PeakHours:           AnalyzeHourlyPatterns(current),
		DailyTrends:         AnalyzeDailyPatterns(current),
	}
}
