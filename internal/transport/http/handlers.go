package httptransport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ftts-booking/internal/booking/models"
	"ftts-booking/internal/session"
	"ftts-booking/pkg/domain"
	dErrors "ftts-booking/pkg/domain-errors"
	"ftts-booking/pkg/requestcontext"
)

type confirmBookingRequest struct {
	SessionID string           `json:"sessionId,omitempty"`
	Candidate models.Candidate `json:"candidate"`
	Booking   models.Booking   `json:"booking"`
}

type confirmBookingResponse struct {
	BookingID        string `json:"bookingId"`
	BookingReference string `json:"bookingReference"`
	BookingProductID string `json:"bookingProductId"`
	Token            string `json:"token"`
}

func (h *Handler) handleConfirmBooking(w http.ResponseWriter, r *http.Request) {
	var req confirmBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "malformed request body"))
		return
	}

	result, err := h.bookings.ConfirmBooking(r.Context(), req.Candidate, req.Booking)
	if err != nil {
		writeError(w, err)
		return
	}

	sessionID, err := domain.ParseSessionID(req.SessionID)
	if err != nil {
		sessionID = domain.NewSessionID()
	}
	token, err := h.tokens.Issue(sessionID, result.BookingReference)
	if err != nil {
		writeError(w, dErrors.Wrap(err, dErrors.CodeInternal, "issue manage-booking token"))
		return
	}

	writeJSON(w, http.StatusCreated, confirmBookingResponse{
		BookingID:        result.BookingID,
		BookingReference: result.BookingReference,
		BookingProductID: result.BookingProductID,
		Token:            token,
	})
}

func (h *Handler) handleRetrieveBooking(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")
	if reference != requestcontext.BookingReference(r.Context()) {
		writeError(w, dErrors.New(dErrors.CodeForbidden, "token does not cover this booking"))
		return
	}

	licenceNumber := r.URL.Query().Get("licenceNumber")
	if licenceNumber == "" {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "licenceNumber query parameter is required"))
		return
	}

	record, err := h.bookings.RetrieveBooking(r.Context(), reference, licenceNumber)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) handleNSAUpdateBatch(w http.ResponseWriter, r *http.Request) {
	limit := h.nsaBatchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, dErrors.New(dErrors.CodeInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	count, err := h.bookings.UpdateNSABookings(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": count})
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	state := session.New()
	if err := h.sessions.Put(r.Context(), state); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"sessionId": state.SessionID.String()})
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := domain.ParseSessionID(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "malformed session id"))
		return
	}

	state, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// handleResetSession applies one of the reset reducers to a stored session.
// scope=booking clears the in-progress booking, scope=keepSupport additionally
// carries the candidate's support text across, anything else is a full reset.
func (h *Handler) handleResetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := domain.ParseSessionID(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "malformed session id"))
		return
	}

	state, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	var label string
	switch r.URL.Query().Get("scope") {
	case "booking":
		label = "booking"
		state = session.ResetBooking(state)
	case "keepSupport":
		label = "keep_support"
		state = session.ResetBookingKeepSupportText(state)
	default:
		label = "full"
		fresh := session.Reset(state)
		// A full reset issues a new session id; drop the old record so the
		// expired journey cannot be resumed.
		if err := h.sessions.Delete(r.Context(), sessionID); err != nil {
			writeError(w, err)
			return
		}
		state = fresh
	}

	if err := h.sessions.Put(r.Context(), state); err != nil {
		writeError(w, err)
		return
	}
	if h.metrics != nil {
		h.metrics.SessionResets.WithLabelValues(label).Inc()
	}
	writeJSON(w, http.StatusOK, map[string]string{"sessionId": state.SessionID.String()})
}
