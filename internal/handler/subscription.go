package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"subsage/internal/analytics"
	"subsage/internal/metrics"
	"subsage/internal/model"
	"subsage/internal/repository"
)

type SubscriptionHandler struct {
	repo     repository.SubscriptionRepository
	insights *analytics.InsightGenerator
	log      *slog.Logger
}

func NewSubscriptionHandler(repo repository.SubscriptionRepository, insights *analytics.InsightGenerator, log *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		repo:     repo,
		insights: insights,
		log:      log.With(slog.String("component", "delivery/http")),
	}
}

// ListSubscriptions godoc
// @Summary List subscriptions
// @Description All subscriptions in insertion order.
// @Tags subscriptions
// @Produce json
// @Success 200 {object} subscriptionsResponse
// @Router /api/subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.repo.List(r.Context())
	if err != nil {
		h.log.Error("List subscriptions failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusOK, subscriptionsResponse{Success: true, Subscriptions: subs})
}

// CreateSubscription godoc
// @Summary Add a subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription body createSubscriptionRequest true "New subscription"
// @Success 200 {object} subscriptionResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateRequest(r.Body)
	if err != nil {
		h.log.Debug("failed to decode request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	sub, err := req.toSubscription()
	if err != nil {
		metrics.RecordStoreOp("create", false)

		var verr *model.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		h.log.Warn("Create subscription rejected", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.repo.Create(r.Context(), sub); err != nil {
		metrics.RecordStoreOp("create", false)
		h.log.Error("Create subscription failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	metrics.RecordStoreOp("create", true)
	h.refreshCount(r)

	h.log.Info("subscription created", slog.Int64("id", sub.ID), slog.String("category", sub.Category))
	writeJSON(w, http.StatusOK, subscriptionResponse{
		Success:      true,
		Subscription: sub,
		Message:      "Subscription added successfully",
	})
}

// DeleteSubscription godoc
// @Summary Delete a subscription
// @Tags subscriptions
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 200 {object} subscriptionResponse
// @Failure 404 {object} errorResponse
// @Router /api/subscriptions/{id} [delete]
func (h *SubscriptionHandler) DeleteSubscription(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}

	deleted, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		metrics.RecordStoreOp("delete", false)
		if errors.Is(err, model.ErrSubscriptionNotFound) {
			writeError(w, http.StatusNotFound, "Subscription not found")
			return
		}
		h.log.Error("Delete subscription failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	metrics.RecordStoreOp("delete", true)
	h.refreshCount(r)

	h.log.Info("subscription deleted", slog.Int64("id", id))
	writeJSON(w, http.StatusOK, subscriptionResponse{
		Success:      true,
		Message:      "Subscription deleted successfully",
		Subscription: deleted,
	})
}

func (h *SubscriptionHandler) refreshCount(r *http.Request) {
	n, err := h.repo.Count(r.Context())
	if err != nil {
		h.log.Warn("Failed to count subscriptions", "error", err)
		return
	}
	metrics.SetSubscriptionCount(n)
}

// NotFound answers every request that matches no route.
func (h *SubscriptionHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, msgNotFound)
}
