// Package service orchestrates the booking flows against the CRM gateway,
// enforcing the required ordering: the field validator runs before any
// inbound payload is mapped, and NSA status derivation runs only on a
// session that has completed the support flow.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"ftts-booking/internal/booking/models"
	"ftts-booking/internal/booking/ports"
	"ftts-booking/internal/crm"
	"ftts-booking/internal/nsa"
	"ftts-booking/internal/platform/metrics"
	dErrors "ftts-booking/pkg/domain-errors"
)

// NSAQueue is the slice of the workflow queue the service drives.
type NSAQueue interface {
	Enqueue(ctx context.Context, bookingID, bookingReference string) error
	ListResolved(ctx context.Context, limit int) ([]nsa.Entry, error)
	MarkApplied(ctx context.Context, bookingIDs []string) error
}

// BookingRecord is the result of retrieving and mapping one booking.
type BookingRecord struct {
	Candidate models.Candidate
	Details   crm.BookingDetails
}

// ConfirmResult is the CRM acknowledgement of a confirmed booking.
type ConfirmResult struct {
	BookingID        string
	BookingReference string
	BookingProductID string
}

// Service orchestrates booking retrieval, confirmation and the NSA batch
// update.
type Service struct {
	gateway ports.CRMGateway
	router  ports.EvidenceRouter
	prices  ports.PriceProvider
	queue   NSAQueue
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs the booking service. The gateway and evidence router are
// mandatory; the queue may be nil when NSA bookings are disabled.
func New(gateway ports.CRMGateway, router ports.EvidenceRouter, prices ports.PriceProvider, queue NSAQueue, opts ...Option) (*Service, error) {
	if gateway == nil {
		return nil, errors.New("crm gateway is required")
	}
	if router == nil {
		return nil, errors.New("evidence router is required")
	}
	s := &Service{
		gateway: gateway,
		router:  router,
		prices:  prices,
		queue:   queue,
		logger:  slog.Default(),
		tracer:  otel.Tracer("ftts-booking/booking"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// RetrieveBooking fetches the candidate and booking details concurrently,
// validates the raw payload and maps it into the internal shape. An
// incomplete payload is rejected with the missing field list logged against
// the booking and product ids, never mapped partially.
func (s *Service) RetrieveBooking(ctx context.Context, bookingReference, licenceNumber string) (BookingRecord, error) {
	ctx, span := s.tracer.Start(ctx, "booking.retrieve")
	defer span.End()

	var (
		raw     crm.CRMBookingDetails
		contact crm.CRMCandidateResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raw, err = s.gateway.GetBookingDetails(gctx, bookingReference)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "fetch booking details")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		contact, err = s.gateway.GetCandidate(gctx, licenceNumber)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "fetch candidate")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return BookingRecord{}, err
	}

	start := time.Now()
	isNSADraft := isNSADraftBooking(raw)

	if missing := crm.MissingFields(raw, isNSADraft); len(missing) > 0 {
		profile := "standard"
		if isNSADraft {
			profile = "nsa_draft"
		}
		if s.metrics != nil {
			s.metrics.IncrementMissingFieldRejections(profile)
		}
		s.logger.ErrorContext(ctx, "booking details rejected: missing fields",
			"booking_id", raw.Booking.BookingID,
			"booking_product_id", raw.BookingProductID,
			"profile", profile,
			"missing", missing,
		)
		return BookingRecord{}, dErrors.New(dErrors.CodeValidation,
			"booking details incomplete: missing "+strings.Join(missing, ", "))
	}

	details, err := crm.FromBookingDetails(raw, isNSADraft)
	if err != nil {
		return BookingRecord{}, err
	}
	if s.metrics != nil {
		s.metrics.BookingMappingDurationS.Observe(time.Since(start).Seconds())
	}

	return BookingRecord{
		Candidate: crm.FromCRMCandidate(contact),
		Details:   details,
	}, nil
}

// ConfirmBooking writes the parent booking and its product to the CRM,
// enforcing the standard/NSA branching. NSA bookings are additionally
// enqueued for the workflow that later resolves them into a bookable slot.
func (s *Service) ConfirmBooking(ctx context.Context, candidate models.Candidate, booking models.Booking) (ConfirmResult, error) {
	ctx, span := s.tracer.Start(ctx, "booking.confirm")
	defer span.End()

	isStandard := booking.IsStandardAccommodation()

	if booking.PriceList == nil && s.prices != nil {
		item, err := s.prices.GetPriceList(ctx, booking.GovernmentAgency, booking.TestType)
		if err != nil {
			return ConfirmResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "fetch price list")
		}
		booking.PriceList = &item
	}
	if booking.Eligibility == nil && s.prices != nil {
		window, err := s.prices.GetEligibility(ctx, candidate.LicenceNumber, booking.TestType)
		if err != nil {
			return ConfirmResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "fetch eligibility")
		}
		booking.Eligibility = &window
	}

	additionalSupport := additionalSupportFor(booking, isStandard)

	payload, err := crm.ToCRMBooking(candidate, booking, candidate.CandidateID, candidate.LicenceID,
		isStandard, priceListID(booking), s.router)
	if err != nil {
		if s.metrics != nil && dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			s.metrics.MappingFailures.Inc()
		}
		return ConfirmResult{}, err
	}
	if payload.NsaStatus != nil && s.metrics != nil {
		s.metrics.NSADerivations.WithLabelValues(nsaStatusLabel(*payload.NsaStatus)).Inc()
	}

	response, err := s.gateway.CreateBooking(ctx, payload)
	if err != nil {
		return ConfirmResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "create booking")
	}

	product, err := crm.ToCRMBookingProduct(candidate, booking, response, isStandard, additionalSupport)
	if err != nil {
		if s.metrics != nil && dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			s.metrics.MappingFailures.Inc()
		}
		return ConfirmResult{}, err
	}
	productID, err := s.gateway.CreateBookingProduct(ctx, product)
	if err != nil {
		return ConfirmResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "create booking product")
	}

	if !isStandard && s.queue != nil {
		if err := s.queue.Enqueue(ctx, response.ID, response.Reference); err != nil {
			return ConfirmResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "enqueue nsa booking")
		}
	}

	kind := "standard"
	if !isStandard {
		kind = "nsa"
	}
	if s.metrics != nil {
		s.metrics.IncrementBookingsConfirmed(kind)
	}
	s.logger.InfoContext(ctx, "booking confirmed",
		"booking_id", response.ID,
		"reference", response.Reference,
		"kind", kind,
	)

	return ConfirmResult{
		BookingID:        response.ID,
		BookingReference: response.Reference,
		BookingProductID: productID,
	}, nil
}

// UpdateNSABookings moves resolved NSA drafts to standard-test-booked in one
// batch and marks them applied. Returns the number of bookings updated.
func (s *Service) UpdateNSABookings(ctx context.Context, limit int) (int, error) {
	ctx, span := s.tracer.Start(ctx, "nsa.update-batch")
	defer span.End()

	if s.queue == nil {
		return 0, nil
	}

	entries, err := s.queue.ListResolved(ctx, limit)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "list resolved nsa bookings")
	}
	if len(entries) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.BookingID)
	}

	if err := s.gateway.UpdateBookingStatuses(ctx, ids, crm.CRMBookingStatusConfirmed, crm.CRMNsaStatusStandardTestBooked); err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "update nsa booking statuses")
	}
	if err := s.queue.MarkApplied(ctx, ids); err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "mark nsa bookings applied")
	}

	if s.metrics != nil {
		s.metrics.NSABatchUpdated.Add(float64(len(ids)))
	}
	s.logger.InfoContext(ctx, "nsa bookings moved to standard test booked", "count", len(ids))
	return len(ids), nil
}

func isNSADraftBooking(raw crm.CRMBookingDetails) bool {
	return raw.BookingStatus != nil &&
		*raw.BookingStatus == crm.CRMBookingStatusDraft &&
		raw.Booking.NsaStatus != nil
}

// additionalSupportFor resolves the product-level additional-support option.
// Only standard bookings carry it; NSA support detail lives on the parent.
func additionalSupportFor(booking models.Booking, isStandard bool) *crm.CRMAdditionalSupport {
	if !isStandard {
		return nil
	}
	support := crm.CRMAdditionalSupportNone
	switch {
	case booking.BSL:
		support = crm.CRMAdditionalSupportBSL
	case booking.Voiceover != "" && booking.Voiceover != models.VoiceoverNone:
		support = crm.CRMAdditionalSupportVoiceover
	}
	return &support
}

func priceListID(booking models.Booking) string {
	if booking.PriceList != nil {
		return booking.PriceList.PriceListID
	}
	return ""
}

func nsaStatusLabel(status crm.CRMNsaStatus) string {
	switch status {
	case crm.CRMNsaStatusAwaitingCandidateMedicalEvidence:
		return "awaiting_candidate_medical_evidence"
	case crm.CRMNsaStatusAwaitingCscResponse:
		return "awaiting_csc_response"
	default:
		return "other"
	}
}
