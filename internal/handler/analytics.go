package handler

import (
	"net/http"

	"subsage/internal/analytics"
	"subsage/internal/coupon"
	"subsage/internal/model"
)

// GetAnalytics godoc
// @Summary Spending analytics
// @Tags analytics
// @Produce json
// @Success 200 {object} analyticsResponse
// @Router /api/analytics [get]
func (h *SubscriptionHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	subs, err := h.repo.List(r.Context())
	if err != nil {
		h.log.Error("Analytics failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusOK, analyticsResponse{Success: true, Analytics: analytics.Compute(subs)})
}

// GetInsights godoc
// @Summary Rule-based spending insights
// @Description Spending level, subscription count, crowded categories, expensive services and two random tips.
// @Tags analytics
// @Produce json
// @Success 200 {object} insightsResponse
// @Router /api/ai-insights [get]
func (h *SubscriptionHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	subs, err := h.repo.List(r.Context())
	if err != nil {
		h.log.Error("Insights failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	report := h.insights.Generate(subs)
	writeJSON(w, http.StatusOK, insightsResponse{
		Success:  true,
		Insights: report.Insights,
		Summary:  report.Summary,
	})
}

// GetCoupons godoc
// @Summary Available coupon offers
// @Tags coupons
// @Produce json
// @Success 200 {object} couponsResponse
// @Router /api/coupons [get]
func (h *SubscriptionHandler) GetCoupons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, couponsResponse{Success: true, Coupons: coupon.All()})
}

// GetCategories godoc
// @Summary Suggested subscription categories
// @Tags subscriptions
// @Produce json
// @Success 200 {object} categoriesResponse
// @Router /api/categories [get]
func (h *SubscriptionHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories := make([]string, len(model.Categories))
	copy(categories, model.Categories)
	writeJSON(w, http.StatusOK, categoriesResponse{Success: true, Categories: categories})
}
