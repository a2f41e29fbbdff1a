package handler

import (
	"log/slog"
	"net/http"

	_ "subsage/docs"

	"subsage/internal/metrics"
	"subsage/internal/middleware"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type RouterOptions struct {
	Swagger bool
}

// NewRouter wires every route and the middleware chain around them.
func NewRouter(h *SubscriptionHandler, log *slog.Logger, opts RouterOptions) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/subscriptions", h.ListSubscriptions)
	mux.HandleFunc("POST /api/subscriptions", h.CreateSubscription)
	mux.HandleFunc("DELETE /api/subscriptions/{id}", h.DeleteSubscription)
	mux.HandleFunc("GET /api/analytics", h.GetAnalytics)
	mux.HandleFunc("GET /api/ai-insights", h.GetInsights)
	mux.HandleFunc("GET /api/coupons", h.GetCoupons)
	mux.HandleFunc("GET /api/categories", h.GetCategories)
	mux.HandleFunc("GET /{$}", h.Dashboard)
	mux.Handle("GET /metrics", metrics.Handler())

	if opts.Swagger {
		mux.Handle("GET /swagger/", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	mux.HandleFunc("/", h.NotFound)

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logging(log),
		middleware.Recover(log),
		middleware.CORS,
		metrics.InstrumentHandler,
	)
}
