package booking

import "ftts-booking/internal/booking/models"

// evidenceBackedSupport lists the support types that need medical evidence
// before the NSA team can grant them.
var evidenceBackedSupport = map[models.SupportType]struct{}{
	models.SupportTypeExtraTime:            {},
	models.SupportTypeReadingSupport:       {},
	models.SupportTypeOralLanguageModifier: {},
}

// DefaultEvidenceClassifier is the built-in evidence route classifier used
// when no external classifier is wired in. Rule chain, first match wins:
// a candidate with recognised support needs already on file is a returning
// candidate; any evidence-backed selection requires evidence; a free-text
// "other" request may require it; everything else does not.
type DefaultEvidenceClassifier struct{}

func (DefaultEvidenceClassifier) DetermineEvidenceRoute(selected []models.SupportType, hasExistingCRMSupportNeeds bool) models.EvidenceRoute {
	if hasExistingCRMSupportNeeds {
		return models.EvidenceRouteReturning
	}
	for _, supportType := range selected {
		if _, ok := evidenceBackedSupport[supportType]; ok {
			return models.EvidenceRouteRequired
		}
	}
	for _, supportType := range selected {
		if supportType == models.SupportTypeOther {
			return models.EvidenceRouteMayBeRequired
		}
	}
	return models.EvidenceRouteNotRequired
}
