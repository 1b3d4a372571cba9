package transport

import (
	"net/http"
	"time"

	"retail-pos/internal/domain"
	"retail-pos/internal/middleware"
	"retail-pos/internal/report"
	"retail-pos/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// customDateLayout is the accepted format for custom range bounds.
const customDateLayout = "2006-01-02"

// ReportHandler handles HTTP requests for the sales-reporting dashboard
type ReportHandler struct {
	reports service.ReportService
	logger  *zap.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reports service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		logger:  logger,
	}
}

// RegisterRoutes registers all report routes
func (h *ReportHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/reports", func(r chi.Router) {
		r.Get("/summary", h.Summary)
		r.Get("/sales", h.Sales)
		r.Get("/products", h.Products)
		r.Get("/categories", h.Categories)
		r.Get("/payments", h.Payments)
		r.Get("/hourly", h.Hourly)
		r.Get("/daily", h.Daily)
	})
}

// Summary returns the full dashboard payload for the requested period
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	summary, err := h.reports.Summary(r.Context(), req)
	if err != nil {
		h.logger.Error("Failed to build report summary", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to build report")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, summary)
}

// Sales returns the sales time series; granularity=hour switches to the
// hour-of-day variant used for single-day analysis
func (h *ReportHandler) Sales(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	var (
		series []report.SalesPoint
		err    error
	)
	if r.URL.Query().Get("granularity") == "hour" {
		series, err = h.reports.HourlySales(r.Context(), req)
	} else {
		series, err = h.reports.DailySales(r.Context(), req)
	}
	if err != nil {
		h.logger.Error("Failed to build sales series", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to build report")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, series)
}

// Products returns the revenue-ranked product performance breakdown
func (h *ReportHandler) Products(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(req service.ReportRequest, r *http.Request) (interface{}, error) {
		return h.reports.ProductPerformance(r.Context(), req)
	})
}

// Categories returns the revenue-ranked category performance breakdown
func (h *ReportHandler) Categories(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(req service.ReportRequest, r *http.Request) (interface{}, error) {
		return h.reports.CategoryPerformance(r.Context(), req)
	})
}

// Payments returns the payment-method breakdown
func (h *ReportHandler) Payments(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(req service.ReportRequest, r *http.Request) (interface{}, error) {
		return h.reports.PaymentMethods(r.Context(), req)
	})
}

// Hourly returns peak-hour traffic buckets
func (h *ReportHandler) Hourly(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(req service.ReportRequest, r *http.Request) (interface{}, error) {
		return h.reports.HourlyPatterns(r.Context(), req)
	})
}

// Daily returns per-date traffic buckets with weekday names
func (h *ReportHandler) Daily(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(req service.ReportRequest, r *http.Request) (interface{}, error) {
		return h.reports.DailyPatterns(r.Context(), req)
	})
}

func (h *ReportHandler) respond(w http.ResponseWriter, r *http.Request, fn func(service.ReportRequest, *http.Request) (interface{}, error)) {
	req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	payload, err := fn(req, r)
	if err != nil {
		h.logger.Error("Failed to build report", zap.Error(err), zap.String("path", r.URL.Path))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to build report")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, payload)
}

// parseRequest reads period and filter query parameters. A custom range with
// start after end is rejected here: the engine's resolver deliberately does
// not validate it.
func (h *ReportHandler) parseRequest(w http.ResponseWriter, r *http.Request) (service.ReportRequest, bool) {
	q := r.URL.Query()

	req := service.ReportRequest{
		Period: report.Period(q.Get("period")),
	}
	if req.Period == "" {
		req.Period = report.PeriodWeek
	}

	if req.Period == report.PeriodCustom {
		start, err := time.ParseInLocation(customDateLayout, q.Get("start"), time.Local)
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, "custom period requires start=YYYY-MM-DD")
			return service.ReportRequest{}, false
		}
		end, err := time.ParseInLocation(customDateLayout, q.Get("end"), time.Local)
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, "custom period requires end=YYYY-MM-DD")
			return service.ReportRequest{}, false
		}
		if start.After(end) {
			middleware.RespondWithError(w, http.StatusBadRequest, "start must not be after end")
			return service.ReportRequest{}, false
		}
		req.Custom = &report.DateRange{Start: start, End: end}
	}

	if raw := q.Get("payment_method"); raw != "" {
		method := domain.PaymentMethod(raw)
		if !method.IsValid() {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid payment_method")
			return service.ReportRequest{}, false
		}
		req.PaymentMethod = &method
	}

	if raw := q.Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid category_id")
			return service.ReportRequest{}, false
		}
		req.CategoryID = &id
	}

	if raw := q.Get("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid product_id")
			return service.ReportRequest{}, false
		}
		req.ProductID = &id
	}

	return req, true
}
