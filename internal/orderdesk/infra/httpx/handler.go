package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/domain"
	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/service"
	"github.com/hoteldesk/orderdesk/internal/pkg/cache"
)

// totalCacheTTL bounds how stale the running-total endpoint may be when the
// cache is enabled.
const totalCacheTTL = 5 * time.Second

// Handler handles the HTTP surface of the order backend.
type Handler struct {
	svc *service.Service
	// cache may be nil — caching is skipped when Redis is not configured.
	cache cache.Cache
}

// NewHandler initializes the handler. cache may be nil.
func NewHandler(svc *service.Service, c cache.Cache) *Handler {
	return &Handler{svc: svc, cache: c}
}

// CreateOrder ingests an order payload and responds 201 with the stored
// order, or 400 with the validation message.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	order, err := h.svc.Ingest(r.Context(), req.toInput())
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Msg)
			return
		}
		slog.ErrorContext(r.Context(), "ingest failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// ListOrders returns every stored order.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListAll)
}

// ListCompletedOrders returns the orders with status completed.
func (h *Handler) ListCompletedOrders(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListCompleted)
}

// TotalCompleted returns the all-time sum of completed-order totals.
// The value is cached for a few seconds when Redis is configured; cache
// failures degrade to the direct aggregation.
func (h *Handler) TotalCompleted(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var key string
	if h.cache != nil {
		key = h.cache.GenerateKey("total", string(domain.StatusCompleted))
		if cached, err := h.cache.Get(ctx, key); err == nil && cached != "" {
			if total, perr := strconv.ParseFloat(cached, 64); perr == nil {
				writeJSON(w, http.StatusOK, TotalResponse{
					TotalAmount: total,
					Timestamp:   time.Now().UTC().Format(time.RFC3339),
				})
				return
			}
		} else if err != nil {
			slog.DebugContext(ctx, "total cache read failed", "error", err)
		}
	}

	total, err := h.svc.TotalCompleted(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "total aggregation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, key, strconv.FormatFloat(total, 'f', -1, 64), totalCacheTTL); err != nil {
			slog.DebugContext(ctx, "total cache write failed", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, TotalResponse{
		TotalAmount: total,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

// Health reports store connectivity truthfully: the store is pinged on
// every call rather than assumed healthy because it once connected.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "ok",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.svc.Ping(r.Context()); err != nil {
		slog.WarnContext(r.Context(), "health check: store unreachable", "error", err)
		resp.Status = "degraded"
		resp.Database = "disconnected"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context) ([]domain.Order, error)) {
	orders, err := fetch(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "list orders failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong!")
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageResponse{Message: msg})
}
