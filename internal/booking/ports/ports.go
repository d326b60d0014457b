// Package ports defines the collaborator interfaces the booking service
// depends on. Implementations live at the edges; the service only sees these
// contracts.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks CRMGateway,EvidenceRouter,PriceProvider

import (
	"context"

	"ftts-booking/internal/booking/models"
	"ftts-booking/internal/crm"
)

// CRMGateway is the transport boundary to the CRM. The gateway owns batching,
// authentication and retries; callers hand it fully validated payloads and
// receive raw read shapes to validate before mapping.
type CRMGateway interface {
	// GetCandidate looks a candidate up by driving licence number.
	GetCandidate(ctx context.Context, licenceNumber string) (crm.CRMCandidateResponse, error)

	// GetBookingDetails fetches the nested booking-details graph for one
	// booking reference.
	GetBookingDetails(ctx context.Context, bookingReference string) (crm.CRMBookingDetails, error)

	// CreateBooking writes the parent booking and returns the CRM's
	// acknowledgement (id + generated reference).
	CreateBooking(ctx context.Context, payload crm.CRMBooking) (crm.CRMBookingResponse, error)

	// CreateBookingProduct writes the child product and returns its id.
	CreateBookingProduct(ctx context.Context, payload crm.CRMBookingProduct) (string, error)

	// UpdateBookingStatuses transitions a batch of bookings to the given
	// booking and NSA statuses.
	UpdateBookingStatuses(ctx context.Context, bookingIDs []string, status crm.CRMBookingStatus, nsaStatus crm.CRMNsaStatus) error
}

// EvidenceRouter classifies whether a candidate must supply medical evidence
// before an NSA request proceeds.
type EvidenceRouter interface {
	DetermineEvidenceRoute(selected []models.SupportType, hasExistingCRMSupportNeeds bool) models.EvidenceRoute
}

// PriceProvider supplies the priced product and eligibility window attached
// to a session booking.
type PriceProvider interface {
	GetPriceList(ctx context.Context, target models.Target, testType models.TestType) (models.PriceListItem, error)
	GetEligibility(ctx context.Context, licenceNumber string, testType models.TestType) (models.Eligibility, error)
}
