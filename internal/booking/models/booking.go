package models

import "time"

// TestCentre is the internal view of a CRM test-centre account.
type TestCentre struct {
	AccountID       string `json:"accountId"`
	Name            string `json:"name,omitempty"`
	SiteID          string `json:"siteId,omitempty"`
	Region          string `json:"region,omitempty"` // "a", "b" or "c", derived from CRM region flags
	AddressLine1    string `json:"addressLine1,omitempty"`
	AddressLine2    string `json:"addressLine2,omitempty"`
	AddressCity     string `json:"addressCity,omitempty"`
	AddressPostcode string `json:"addressPostcode,omitempty"`
	Remit           string `json:"remit,omitempty"`
}

// Eligibility is the eligible-from/to window supplied by the eligibility
// provider and copied verbatim onto the CRM booking product.
type Eligibility struct {
	EligibleFrom string `json:"eligibleFrom"` // YYYY-MM-DD
	EligibleTo   string `json:"eligibleTo"`
}

// Product identifies the CRM product priced for a test type.
type Product struct {
	ProductID       string `json:"productId"`
	ParentProductID string `json:"parentId,omitempty"`
	Name            string `json:"name,omitempty"`
	ProductNumber   string `json:"productNumber,omitempty"`
}

// PriceListItem is one priced entry from the price list provider.
// PriceListID identifies the CRM price level the entry came from and feeds
// the pricelevel binding on booking writes.
type PriceListItem struct {
	PriceListID string   `json:"priceListId,omitempty"`
	TestType    TestType `json:"testType"`
	Price       float64  `json:"price"`
	Product     Product  `json:"product"`
}

// CompensationBooking carries the price override applied when a candidate is
// owed a replacement test.
type CompensationBooking struct {
	BookingProductID string  `json:"bookingProductId"`
	PricePaid        float64 `json:"pricePaid"`
	PriceListID      string  `json:"priceListId,omitempty"`
}

// Booking is the in-progress or confirmed session form of a test booking.
//
// A booking with no selected support types is a standard accommodation
// booking and must have centre, date/time and test type before it can be
// mapped to a CRM write. An NSA booking may omit centre and date but must
// have SelectSupportType and HasSupportNeedsInCRM populated before an NSA
// status can be derived.
type Booking struct {
	TestType         TestType    `json:"testType"`
	GovernmentAgency Target      `json:"governmentAgency"`
	Centre           *TestCentre `json:"centre,omitempty"`
	DateTime         *time.Time  `json:"dateTime,omitempty"`
	Language         Language    `json:"language"`
	Voiceover        Voiceover   `json:"voiceover,omitempty"`
	BSL              bool        `json:"bsl,omitempty"`

	SelectSupportType    []SupportType `json:"selectSupportType,omitempty"`
	HasSupportNeedsInCRM *bool         `json:"hasSupportNeedsInCRM,omitempty"`

	CustomSupport           string                  `json:"customSupport,omitempty"`
	TranslatorLanguage      string                  `json:"translator,omitempty"`
	PreferredDay            string                  `json:"preferredDay,omitempty"`
	PreferredDayOption      PreferredDayOption      `json:"preferredDayOption,omitempty"`
	PreferredLocation       string                  `json:"preferredLocation,omitempty"`
	PreferredLocationOption PreferredLocationOption `json:"preferredLocationOption,omitempty"`
	VoicemailPermitted      *bool                   `json:"voicemailmessagespermitted,omitempty"`

	Eligibility         *Eligibility         `json:"eligibility,omitempty"`
	PriceList           *PriceListItem       `json:"priceList,omitempty"`
	CompensationBooking *CompensationBooking `json:"compensationBooking,omitempty"`

	SalesReference   string `json:"salesReference,omitempty"`
	ReceiptReference string `json:"receiptReference,omitempty"`

	// Scheduling KPIs captured for reporting when slots are offered.
	DateAvailableOnOrBeforeToday        string `json:"dateAvailableOnOrBeforeToday,omitempty"`
	DateAvailableOnOrAfterToday         string `json:"dateAvailableOnOrAfterToday,omitempty"`
	DateAvailableOnOrAfterPreferredDate string `json:"dateAvailableOnOrAfterPreferredDate,omitempty"`
}

// IsStandardAccommodation reports whether no support types are selected.
func (b Booking) IsStandardAccommodation() bool { return len(b.SelectSupportType) == 0 }

// Price resolves the product price, preferring a compensation-booking
// override when one is attached.
func (b Booking) Price() float64 {
	if b.CompensationBooking != nil {
		return b.CompensationBooking.PricePaid
	}
	if b.PriceList != nil {
		return b.PriceList.Price
	}
	return 0
}
