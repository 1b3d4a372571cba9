package service

import (
	"context"
	"testing"
	"time"

	"retail-pos/internal/cache"
	"retail-pos/internal/domain"
	"retail-pos/internal/report"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type reportFixture struct {
	orderRepo    *mockOrderRepository
	productRepo  *mockProductRepository
	categoryRepo *mockCategoryRepository
	coffee       *domain.Product
	rice         *domain.Product
}

func newReportFixture() *reportFixture {
	productRepo := newMockProductRepository()
	categoryRepo := newMockCategoryRepository()

	beverages := categoryRepo.add("Beverages")
	food := categoryRepo.add("Food")

	return &reportFixture{
		orderRepo:    newMockOrderRepository(),
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		coffee:       productRepo.add("Coffee", 25000, beverages.ID, 100),
		rice:         productRepo.add("Nasi Goreng", 35000, food.ID, 30),
	}
}

func (f *reportFixture) placeOrder(at time.Time, method domain.PaymentMethod, product *domain.Product, qty int) {
	subtotal := product.Price * float64(qty)
	tax := subtotal * domain.TaxRate
	orderID := uuid.New()
	f.orderRepo.orders = append(f.orderRepo.orders, domain.Order{
		ID:            orderID,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal + tax,
		PaymentMethod: method,
		Status:        domain.OrderStatusCompleted,
		CreatedAt:     at,
		Items: []domain.OrderItem{{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: product.ID,
			Quantity:  qty,
			Price:     product.Price,
		}},
	})
}

func (f *reportFixture) service(reportCache *cache.ReportCache) ReportService {
	return NewReportService(f.orderRepo, f.productRepo, f.categoryRepo, reportCache, zap.NewNop())
}

func TestSummaryComparesAgainstPreviousWindow(t *testing.T) {
	f := newReportFixture()

	// Two orders this week, one in the week before
	now := time.Now()
	f.placeOrder(now.Add(-time.Hour), domain.PaymentCash, f.coffee, 2)
	f.placeOrder(now.Add(-2*time.Hour), domain.PaymentCard, f.rice, 1)
	f.placeOrder(now.AddDate(0, 0, -9), domain.PaymentCash, f.coffee, 1)

	summary, err := f.service(nil).Summary(context.Background(), ReportRequest{Period: report.PeriodWeek})
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	if summary.Metrics.TotalOrders != 2 {
		t.Errorf("expected 2 orders in the current week, got %d", summary.Metrics.TotalOrders)
	}
	if summary.OrdersGrowth != 100 {
		t.Errorf("expected 100%% orders growth (2 vs 1), got %f", summary.OrdersGrowth)
	}
	if summary.SalesGrowth <= 0 {
		t.Errorf("expected positive sales growth, got %f", summary.SalesGrowth)
	}
	if len(summary.TopProducts) != 2 {
		t.Errorf("expected 2 ranked products, got %d", len(summary.TopProducts))
	}
	if summary.TopProducts[0].ProductName == "" {
		t.Error("product names should resolve through the live catalog")
	}
}

func TestSummaryFiltersByPaymentMethod(t *testing.T) {
	f := newReportFixture()

	now := time.Now()
	f.placeOrder(now.Add(-time.Hour), domain.PaymentCash, f.coffee, 1)
	f.placeOrder(now.Add(-2*time.Hour), domain.PaymentCard, f.rice, 1)

	method := domain.PaymentCard
	summary, err := f.service(nil).Summary(context.Background(), ReportRequest{
		Period:        report.PeriodWeek,
		PaymentMethod: &method,
	})
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	if summary.Metrics.TotalOrders != 1 {
		t.Errorf("expected 1 card order, got %d", summary.Metrics.TotalOrders)
	}
	if len(summary.PaymentMethods) != 1 || summary.PaymentMethods[0].PaymentMethod != domain.PaymentCard {
		t.Errorf("expected only the card bucket, got %+v", summary.PaymentMethods)
	}
}

func TestSummaryServedFromCacheOnSecondCall(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	reportCache := cache.NewReportCache(client, time.Minute)

	f := newReportFixture()
	now := time.Now()
	f.placeOrder(now.Add(-time.Hour), domain.PaymentCash, f.coffee, 1)

	svc := f.service(reportCache)
	ctx := context.Background()

	first, err := svc.Summary(ctx, ReportRequest{Period: report.PeriodWeek})
	if err != nil {
		t.Fatalf("first Summary failed: %v", err)
	}

	// New orders are invisible until the cache entry expires
	f.placeOrder(now.Add(-time.Minute), domain.PaymentCard, f.rice, 1)

	second, err := svc.Summary(ctx, ReportRequest{Period: report.PeriodWeek})
	if err != nil {
		t.Fatalf("second Summary failed: %v", err)
	}

	if second.Metrics.TotalOrders != first.Metrics.TotalOrders {
		t.Errorf("expected cached summary with %d orders, got %d",
			first.Metrics.TotalOrders, second.Metrics.TotalOrders)
	}

	// After expiry the fresh order shows up
	mr.FastForward(2 * time.Minute)

	third, err := svc.Summary(ctx, ReportRequest{Period: report.PeriodWeek})
	if err != nil {
		t.Fatalf("third Summary failed: %v", err)
	}
	if third.Metrics.TotalOrders != 2 {
		t.Errorf("expected recomputed summary with 2 orders, got %d", third.Metrics.TotalOrders)
	}
}

func TestSummaryFallsBackWhenCacheIsDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	reportCache := cache.NewReportCache(client, time.Minute)
	mr.Close()

	f := newReportFixture()
	f.placeOrder(time.Now().Add(-time.Hour), domain.PaymentCash, f.coffee, 1)

	summary, err := f.service(reportCache).Summary(context.Background(), ReportRequest{Period: report.PeriodWeek})
	if err != nil {
		t.Fatalf("Summary should survive a dead cache: %v", err)
	}
	if summary.Metrics.TotalOrders != 1 {
		t.Errorf("expected 1 order, got %d", summary.Metrics.TotalOrders)
	}
}

func TestDailySalesSpansResolvedWindow(t *testing.T) {
	f := newReportFixture()
	f.placeOrder(time.Now().Add(-time.Hour), domain.PaymentCash, f.coffee, 1)

	series, err := f.service(nil).DailySales(context.Background(), ReportRequest{Period: report.PeriodWeek})
	if err != nil {
		t.Fatalf("DailySales failed: %v", err)
	}

	if len(series) != 8 {
		t.Errorf("expected 8 day buckets for the week window, got %d", len(series))
	}

	var orders int
	for _, point := range series {
		orders += point.Orders
	}
	if orders != 1 {
		t.Errorf("expected the single order bucketed once, got %d", orders)
	}
}

func TestProductPerformanceFiltersByCategory(t *testing.T) {
	f := newReportFixture()
	now := time.Now()
	f.placeOrder(now.Add(-time.Hour), domain.PaymentCash, f.coffee, 1)
	f.placeOrder(now.Add(-2*time.Hour), domain.PaymentCard, f.rice, 2)

	perf, err := f.service(nil).ProductPerformance(context.Background(), ReportRequest{
		Period:     report.PeriodWeek,
		CategoryID: &f.rice.CategoryID,
	})
	if err != nil {
		t.Fatalf("ProductPerformance failed: %v", err)
	}

	if len(perf) != 1 || perf[0].ProductName != "Nasi Goreng" {
		t.Fatalf("expected only the food product, got %+v", perf)
	}
	if perf[0].QuantitySold != 2 {
		t.Errorf("expected 2 units sold, got %d", perf[0].QuantitySold)
	}
	if perf[0].Stock != 30 {
		t.Errorf("expected live stock 30, got %d", perf[0].Stock)
	}
}

func TestHourlyPatternsForDayPeriod(t *testing.T) {
	f := newReportFixture()

	// Anchor to mid-day so both orders land inside today's window
	now := time.Now()
	f.placeOrder(now, domain.PaymentCash, f.coffee, 1)
	f.placeOrder(now, domain.PaymentCard, f.rice, 1)

	patterns, err := f.service(nil).HourlyPatterns(context.Background(), ReportRequest{Period: report.PeriodDay})
	if err != nil {
		t.Fatalf("HourlyPatterns failed: %v", err)
	}

	if len(patterns) != 1 {
		t.Fatalf("expected a single hour bucket, got %d", len(patterns))
	}
	if patterns[0].OrderCount != 2 {
		t.Errorf("expected 2 orders in the bucket, got %d", patterns[0].OrderCount)
	}
}
