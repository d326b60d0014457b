package crm

// MissingFields returns the CRM field names absent from a raw booking-details
// payload, in check order. A non-empty result means the payload must not be
// turned into a BookingDetails; callers log the list alongside the booking
// product id and refuse to proceed.
//
// Two required-field profiles exist. Standard bookings need the full
// commercial set (sales reference, test date, product-level voiceover) plus
// centre remit and site id when a centre is attached. Draft NSA bookings skip
// those but require the parent-level NI voiceover option instead.
//
// Two fields get strict presence checks rather than the general falsy check:
// additional-support is missing only when the field is absent entirely (the
// "none selected" code is a valid value), and government agency is missing
// only when absent (the DVSA code is zero).
func MissingFields(details CRMBookingDetails, isNsaDraft bool) []string {
	var missing []string

	if details.BookingStatus == nil || *details.BookingStatus == 0 {
		missing = append(missing, "ftts_bookingstatus")
	}
	if details.Product.ProductID == "" {
		missing = append(missing, "ftts_productid")
	}
	if details.TestLanguage == nil || *details.TestLanguage == 0 {
		missing = append(missing, "ftts_testlanguage")
	}
	if details.AdditionalSupport == nil {
		missing = append(missing, "ftts_additionalsupportoptions")
	}

	if !isNsaDraft {
		if details.SalesReference == nil || *details.SalesReference == "" {
			missing = append(missing, "ftts_salesreference")
		}
		if details.TestDate == nil || *details.TestDate == "" {
			missing = append(missing, "ftts_testdate")
		}
		if details.VoiceoverLanguage == nil || *details.VoiceoverLanguage == 0 {
			missing = append(missing, "ftts_voiceoverlanguage")
		}
	}

	if details.Booking.Reference == "" {
		missing = append(missing, "ftts_reference")
	}
	if details.Booking.Origin == nil || *details.Booking.Origin == 0 {
		missing = append(missing, "ftts_origin")
	}
	if details.Booking.GovernmentAgency == nil {
		missing = append(missing, "ftts_governmentagency")
	}

	if isNsaDraft {
		if details.Booking.NiVoiceoverOptions == nil || *details.Booking.NiVoiceoverOptions == 0 {
			missing = append(missing, "ftts_nivoiceoveroptions")
		}
		return missing
	}

	if centre := details.Booking.TestCentre; centre != nil {
		if centre.Remit == nil || *centre.Remit == 0 {
			missing = append(missing, "ftts_remit")
		}
		if centre.SiteID == nil || *centre.SiteID == "" {
			missing = append(missing, "ftts_siteid")
		}
	}

	return missing
}
