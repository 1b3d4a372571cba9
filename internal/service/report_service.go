package service

import (
	"context"
	"fmt"

	"retail-pos/internal/cache"
	"retail-pos/internal/domain"
	"retail-pos/internal/report"
	"retail-pos/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportRequest names the period and optional filters for a report. For the
// custom period the caller supplies the range; transport validates
// start <= end before the request reaches this layer.
type ReportRequest struct {
	Period        report.Period
	Custom        *report.DateRange
	PaymentMethod *domain.PaymentMethod
	CategoryID    *uuid.UUID
	ProductID     *uuid.UUID
}

// ReportService runs the aggregation engine over stored orders. Every method
// resolves the window, loads the matching orders and the live catalog, and
// delegates to the pure engine functions.
type ReportService interface {
	Summary(ctx context.Context, req ReportRequest) (*report.Summary, error)
	DailySales(ctx context.Context, req ReportRequest) ([]report.SalesPoint, error)
	HourlySales(ctx context.Context, req ReportRequest) ([]report.SalesPoint, error)
	ProductPerformance(ctx context.Context, req ReportRequest) ([]report.ProductPerformance, error)
	CategoryPerformance(ctx context.Context, req ReportRequest) ([]report.CategoryPerformance, error)
	PaymentMethods(ctx context.Context, req ReportRequest) ([]report.PaymentMethodAnalysis, error)
	HourlyPatterns(ctx context.Context, req ReportRequest) ([]report.HourlyAnalysis, error)
	DailyPatterns(ctx context.Context, req ReportRequest) ([]report.DailyAnalysis, error)
}

type reportService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        *cache.ReportCache
	logger       *zap.Logger
}

// NewReportService creates a new instance of ReportService. The cache is
// optional; passing nil disables summary memoization.
func NewReportService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	reportCache *cache.ReportCache,
	logger *zap.Logger,
) ReportService {
	return &reportService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cache:        reportCache,
		logger:       logger,
	}
}

// Summary builds the full dashboard payload, comparing the resolved window
// against the equal-length preceding one for growth. Results are memoized in
// Redis when a cache is configured; cache failures fall back to recomputing.
func (s *reportService) Summary(ctx context.Context, req ReportRequest) (*report.Summary, error) {
	window := report.ResolveRange(req.Period, req.Custom)

	key := s.summaryKey(req, window)
	if s.cache != nil {
		cached, err := s.cache.GetSummary(ctx, key)
		if err != nil {
			s.logger.Warn("report cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.loadFiltered(ctx, req, window, catalog)
	if err != nil {
		return nil, err
	}

	previousWindow := report.PreviousRange(window)
	previous, err := s.loadFiltered(ctx, req, previousWindow, catalog)
	if err != nil {
		return nil, err
	}

	summary := report.BuildSummary(current, previous, req.Period, window, catalog)

	if s.cache != nil {
		if err := s.cache.SetSummary(ctx, key, &summary); err != nil {
			s.logger.Warn("report cache write failed", zap.Error(err))
		}
	}

	return &summary, nil
}

// DailySales returns the per-day sales series over the resolved window.
func (s *reportService) DailySales(ctx context.Context, req ReportRequest) ([]report.SalesPoint, error) {
	orders, window, _, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}
	return report.DailySalesSeries(orders, window), nil
}

// HourlySales returns the hour-of-day sales series for the resolved window,
// intended for single-day analysis.
func (s *reportService) HourlySales(ctx context.Context, req ReportRequest) ([]report.SalesPoint, error) {
	orders, _, _, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}
	return report.HourlySalesSeries(orders), nil
}

// ProductPerformance returns the revenue-ranked product breakdown.
func (s *reportService) ProductPerformance(ctx context.Context, req ReportRequest) ([]report.ProductPerformance, error) {
	orders, _, catalog, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}
	return report.CalculateProductPerformance(orders, catalog), nil
}

// CategoryPerformance returns the revenue-ranked category breakdown.
func (s *reportService) CategoryPerformance(ctx context.Context, req ReportRequest) ([]report.CategoryPerformance, error) {
	orders, _, catalog, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}
	return report.CalculateCategoryPerformance(orders, catalog), nil
}

// PaymentMethods returns the payment-method breakdown.
func (s *reportService) PaymentMethods(ctx context.Context, req ReportRequest) ([]report.PaymentMethodAnalysis, error) {
	orders, _, _, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}
	return report.AnalyzePaymentMethods(orders), nil
}

// HourlyPatterns returns peak-hour traffic buckets.
func (s *reportService) HourlyPatterns(ctx context.Context, req ReportRequest) ([]report.HourlyAnalysis, error) {
	orders, _, _, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}
	return report.AnalyzeHourlyPatterns(orders), nil
}

// DailyPatterns returns per-date traffic buckets with weekday names.
func (s *reportService) DailyPatterns(ctx context.Context, req ReportRequest) ([]report.DailyAnalysis, error) {
	orders, _, _, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}
	return report.AnalyzeDailyPatterns(orders), nil
}

func (s *reportService) load(ctx context.Context, req ReportRequest) ([]domain.Order, report.DateRange, report.CatalogIndex, error) {
	window := report.ResolveRange(req.Period, req.Custom)

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, report.DateRange{}, nil, err
	}

	orders, err := s.loadFiltered(ctx, req, window, catalog)
	if err != nil {
		return nil, report.DateRange{}, nil, err
	}

	return orders, window, catalog, nil
}

func (s *reportService) loadCatalog(ctx context.Context) (report.CatalogIndex, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products for reporting: %w", err)
	}

	categoryPtrs, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for reporting: %w", err)
	}
	categories := make([]domain.Category, 0, len(categoryPtrs))
	for _, c := range categoryPtrs {
		categories = append(categories, *c)
	}

	return report.NewCatalogIndex(products, categories), nil
}

func (s *reportService) loadFiltered(ctx context.Context, req ReportRequest, window report.DateRange, catalog report.CatalogIndex) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListByRange(ctx, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders for reporting: %w", err)
	}

	filters := report.Filters{
		Range:         window,
		PaymentMethod: req.PaymentMethod,
		CategoryID:    req.CategoryID,
		ProductID:     req.ProductID,
	}
	return report.FilterOrders(orders, filters, catalog), nil
}

func (s *reportService) summaryKey(req ReportRequest, window report.DateRange) string {
	var method, categoryID, productID string
	if req.PaymentMethod != nil {
		method = string(*req.PaymentMethod)
	}
	if req.CategoryID != nil {
		categoryID = req.CategoryID.String()
	}
	if req.ProductID != nil {
		productID = req.ProductID.String()
	}
	return cache.SummaryKey(req.Period, window, method, categoryID, productID)
}
