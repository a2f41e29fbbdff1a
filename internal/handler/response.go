package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"subsage/internal/model"
)

const (
	msgNotFound      = "Resource not found"
	msgInternalError = model.MsgInternalError
)

type errorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Subscription not found"`
}

type subscriptionsResponse struct {
	Success       bool                 `json:"success" example:"true"`
	Subscriptions []model.Subscription `json:"subscriptions"`
}

type subscriptionResponse struct {
	Success      bool                `json:"success" example:"true"`
	Subscription *model.Subscription `json:"subscription"`
	Message      string              `json:"message" example:"Subscription added successfully"`
}

type analyticsResponse struct {
	Success   bool            `json:"success" example:"true"`
	Analytics model.Analytics `json:"analytics"`
}

type insightsResponse struct {
	Success  bool                 `json:"success" example:"true"`
	Insights []model.Insight      `json:"insights"`
	Summary  model.InsightSummary `json:"summary"`
}

type couponsResponse struct {
	Success bool           `json:"success" example:"true"`
	Coupons []model.Coupon `json:"coupons"`
}

type categoriesResponse struct {
	Success    bool     `json:"success" example:"true"`
	Categories []string `json:"categories"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}
