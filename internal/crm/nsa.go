package crm

import (
	"fmt"
	"strings"

	"ftts-booking/internal/booking/models"
	dErrors "ftts-booking/pkg/domain-errors"
)

// supportRequirementsFooter closes the free-text summary whenever at least
// one support entry exists. The support team's CRM views key off this line
// to distinguish portal submissions from CSC-entered text.
const supportRequirementsFooter = "Submitted by the candidate through the booking portal"

// supportTypeLabels are the human-readable bullet labels for the
// ftts_supportrequirements free-text field.
var supportTypeLabels = map[models.SupportType]string{
	models.SupportTypeOnScreenBSL:          "Sign language (on-screen)",
	models.SupportTypeBSLInterpreter:       "Sign language (interpreter)",
	models.SupportTypeExtraTime:            "Extra time",
	models.SupportTypeReadingSupport:       "Reading support with answer entry",
	models.SupportTypeOralLanguageModifier: "Oral language modifier",
	models.SupportTypeTranslator:           "Translator",
	models.SupportTypeVoiceover:            "Voiceover",
	models.SupportTypeOther:                "Other",
}

// DeriveNSAStatus computes the non-standard-accommodation status for a draft
// NSA booking.
//
// Both SelectSupportType and HasSupportNeedsInCRM must be populated before
// this runs; a missing value means the upstream flow skipped a required step
// and is reported as an invariant violation, never defaulted. The evidence
// route comes from the injected classifier: a route requiring candidate
// medical evidence yields AwaitingCandidateMedicalEvidence, every other
// route yields AwaitingCscResponse. The status later transitions to
// StandardTestBooked via the batch update once the NSA workflow resolves.
func DeriveNSAStatus(booking models.Booking, router EvidenceRouter) (CRMNsaStatus, error) {
	if len(booking.SelectSupportType) == 0 {
		return 0, dErrors.New(dErrors.CodeInvariantViolation,
			"DeriveNSAStatus: booking has no selected support types")
	}
	if booking.HasSupportNeedsInCRM == nil {
		return 0, dErrors.New(dErrors.CodeInvariantViolation,
			"DeriveNSAStatus: hasSupportNeedsInCRM is not set on the booking")
	}
	if router == nil {
		return 0, dErrors.New(dErrors.CodeInvariantViolation,
			"DeriveNSAStatus: no evidence route classifier provided")
	}

	route := router.DetermineEvidenceRoute(booking.SelectSupportType, *booking.HasSupportNeedsInCRM)
	if route == models.EvidenceRouteRequired {
		return CRMNsaStatusAwaitingCandidateMedicalEvidence, nil
	}
	return CRMNsaStatusAwaitingCscResponse, nil
}

// BuildSupportRequirements renders the bulleted summary of selected support
// types for the ftts_supportrequirements free-text field. Bullets follow
// selection order, one per line; translator entries interpolate the
// candidate-supplied language. Returns "" when nothing is selected.
func BuildSupportRequirements(booking models.Booking) string {
	var lines []string
	for _, supportType := range booking.SelectSupportType {
		label, ok := supportTypeLabels[supportType]
		if !ok {
			continue
		}
		if supportType == models.SupportTypeTranslator && booking.TranslatorLanguage != "" {
			label = fmt.Sprintf("%s (%s)", label, booking.TranslatorLanguage)
		}
		if supportType == models.SupportTypeOther && booking.CustomSupport != "" {
			label = fmt.Sprintf("%s: %s", label, booking.CustomSupport)
		}
		lines = append(lines, "- "+label)
	}
	if len(lines) == 0 {
		return ""
	}
	lines = append(lines, supportRequirementsFooter)
	return strings.Join(lines, "\n")
}

// PreferredCommunicationMethod resolves how the support team should contact
// the candidate. NSA bookings prefer phone when a number was supplied, else
// email; standard bookings are always email because nobody phones about
// them.
func PreferredCommunicationMethod(candidate models.Candidate, isStandardAccommodation bool) CRMPreferredCommunicationMethod {
	if isStandardAccommodation {
		return CRMPreferredCommunicationMethodEmail
	}
	if candidate.HasTelephone() {
		return CRMPreferredCommunicationMethodPhone
	}
	return CRMPreferredCommunicationMethodEmail
}
