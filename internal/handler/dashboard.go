package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"subsage/internal/analytics"
	"subsage/internal/coupon"
	"subsage/internal/model"
)

//go:embed templates/index.html
var templateFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type dashboardData struct {
	Subscriptions []model.Subscription
	Analytics     model.Analytics
	Yearly        float64
	Insights      model.InsightReport
	Coupons       []model.Coupon
}

// Dashboard renders the current store state as an HTML page.
func (h *SubscriptionHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	subs, err := h.repo.List(r.Context())
	if err != nil {
		h.log.Error("Dashboard failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	stats := analytics.Compute(subs)
	data := dashboardData{
		Subscriptions: subs,
		Analytics:     stats,
		Yearly:        analytics.Round2(stats.TotalMonthlyCost * 12),
		Insights:      h.insights.Generate(subs),
		Coupons:       coupon.All(),
	}

	// render into a buffer so a template failure can still produce a JSON error
	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, data); err != nil {
		h.log.Error("Dashboard render failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
