// Package httptransport is the thin HTTP layer. Handlers decode, delegate to
// the booking service and session store, and translate domain errors to the
// JSON error envelope; no business logic lives here.
package httptransport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ftts-booking/internal/booking/service"
	"ftts-booking/internal/platform/metrics"
	"ftts-booking/internal/platform/middleware"
	sessionstore "ftts-booking/internal/session/store"
	dErrors "ftts-booking/pkg/domain-errors"
	"ftts-booking/pkg/platform/sentinel"
)

// Handler holds the collaborators the routes delegate to.
type Handler struct {
	bookings *service.Service
	sessions sessionstore.Store
	tokens   *service.TokenIssuer
	metrics  *metrics.Metrics
	logger   *slog.Logger

	nsaBatchLimit int
}

func NewHandler(
	bookings *service.Service,
	sessions sessionstore.Store,
	tokens *service.TokenIssuer,
	m *metrics.Metrics,
	logger *slog.Logger,
	nsaBatchLimit int,
) *Handler {
	return &Handler{
		bookings:      bookings,
		sessions:      sessions,
		tokens:        tokens,
		metrics:       m,
		logger:        logger,
		nsaBatchLimit: nsaBatchLimit,
	}
}

// NewRouter wires all public endpoints. Manage-booking routes sit behind the
// booking-token middleware; everything else is open to the frontend.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestContext)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/sessions", h.handleCreateSession)
	r.Get("/sessions/{sessionID}", h.handleGetSession)
	r.Post("/sessions/{sessionID}/reset", h.handleResetSession)

	r.Post("/bookings", h.handleConfirmBooking)
	r.Post("/nsa/update-batch", h.handleNSAUpdateBatch)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireBookingToken(service.NewTokenIssuerAdapter(h.tokens), h.logger))
		r.Get("/bookings/{reference}", h.handleRetrieveBooking)
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError translates a domain error into the JSON error envelope. Store
// sentinels are mapped here so handlers can pass them through unchanged.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, sentinel.ErrNotFound) {
		err = dErrors.Wrap(err, dErrors.CodeNotFound, "not found")
	}

	status := http.StatusInternalServerError
	code := string(dErrors.CodeInternal)
	message := "internal error"

	var de *dErrors.Error
	if errors.As(err, &de) {
		status = dErrors.ToHTTPStatus(de.Code)
		code = string(de.Code)
		message = de.Message
	}

	writeJSON(w, status, map[string]string{
		"error":             code,
		"error_description": message,
	})
}
