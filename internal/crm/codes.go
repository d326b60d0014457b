// Package crm translates between the session representation of a booking or
// candidate and the CRM's wire representation: enumerated field codes, nested
// entity graphs and OData binding strings.
//
// Every code table in this file is total in both directions. Internal values
// always map to exactly one CRM code; CRM codes with no internal equivalent
// resolve to a documented safe default rather than an error, because the CRM
// option sets grow over time and an unknown code must degrade gracefully
// instead of failing the whole booking flow.
package crm

import (
	"strings"

	"ftts-booking/internal/booking/models"
)

// CRMTestLanguage is the CRM option set for test languages.
type CRMTestLanguage int

const (
	CRMTestLanguageEnglish CRMTestLanguage = 1
	CRMTestLanguageWelsh   CRMTestLanguage = 2
)

// CRMVoiceOver is the CRM option set for voiceover languages. It is wider
// than the set the application offers; the extra codes exist in the CRM for
// other channels and reverse-map to VoiceoverNone here.
type CRMVoiceOver int

const (
	CRMVoiceOverAlbanian   CRMVoiceOver = 675030000
	CRMVoiceOverArabic     CRMVoiceOver = 675030001
	CRMVoiceOverBengali    CRMVoiceOver = 675030002
	CRMVoiceOverCantonese  CRMVoiceOver = 675030003
	CRMVoiceOverDari       CRMVoiceOver = 675030004
	CRMVoiceOverEnglish    CRMVoiceOver = 675030005
	CRMVoiceOverFarsi      CRMVoiceOver = 675030006
	CRMVoiceOverGujarati   CRMVoiceOver = 675030007
	CRMVoiceOverHindi      CRMVoiceOver = 675030008
	CRMVoiceOverKashmiri   CRMVoiceOver = 675030009
	CRMVoiceOverKurdish    CRMVoiceOver = 675030010
	CRMVoiceOverMirpuri    CRMVoiceOver = 675030011
	CRMVoiceOverPolish     CRMVoiceOver = 675030012
	CRMVoiceOverPortuguese CRMVoiceOver = 675030013
	CRMVoiceOverPunjabi    CRMVoiceOver = 675030014
	CRMVoiceOverSpanish    CRMVoiceOver = 675030015
	CRMVoiceOverTamil      CRMVoiceOver = 675030016
	CRMVoiceOverTurkish    CRMVoiceOver = 675030017
	CRMVoiceOverUrdu       CRMVoiceOver = 675030018
	CRMVoiceOverWelsh      CRMVoiceOver = 675030019
	CRMVoiceOverNone       CRMVoiceOver = 675030020
)

// CRMBookingStatus is the CRM lifecycle state of a booking product.
type CRMBookingStatus int

const (
	CRMBookingStatusDraft                  CRMBookingStatus = 675030000
	CRMBookingStatusReserved               CRMBookingStatus = 675030001
	CRMBookingStatusConfirmed              CRMBookingStatus = 675030002
	CRMBookingStatusCompletePassed         CRMBookingStatus = 675030003
	CRMBookingStatusCompleteFailed         CRMBookingStatus = 675030004
	CRMBookingStatusChangeInProgress       CRMBookingStatus = 675030005
	CRMBookingStatusCancellationInProgress CRMBookingStatus = 675030006
	CRMBookingStatusCancelled              CRMBookingStatus = 675030008
	CRMBookingStatusAbandoned              CRMBookingStatus = 675030009
)

// CRMNsaStatus tracks the non-standard-accommodation workflow on a booking.
type CRMNsaStatus int

const (
	CRMNsaStatusAwaitingCscResponse              CRMNsaStatus = 675030000
	CRMNsaStatusAwaitingCandidateInitialReply    CRMNsaStatus = 675030001
	CRMNsaStatusAwaitingCandidateMedicalEvidence CRMNsaStatus = 675030002
	CRMNsaStatusAwaitingCandidateResponse        CRMNsaStatus = 675030003
	CRMNsaStatusAwaitingPartnerResponse          CRMNsaStatus = 675030004
	CRMNsaStatusDuplicationsClosed               CRMNsaStatus = 675030005
	CRMNsaStatusEscalatedToNationalOperations    CRMNsaStatus = 675030006
	CRMNsaStatusEscalatedToTestContent           CRMNsaStatus = 675030007
	CRMNsaStatusNoLongerRequired                 CRMNsaStatus = 675030008
	CRMNsaStatusStandardTestBooked               CRMNsaStatus = 675030009
)

// CRMGovernmentAgency identifies which agency owns the booking. Dvsa is zero
// on the wire, which is why the field validator treats the agency as missing
// only when the field itself is null, never when it is zero.
type CRMGovernmentAgency int

const (
	CRMGovernmentAgencyDvsa CRMGovernmentAgency = 0
	CRMGovernmentAgencyDva  CRMGovernmentAgency = 1
)

// CRMOrigin identifies the channel that created a booking.
type CRMOrigin int

const (
	CRMOriginCitizenPortal         CRMOrigin = 1
	CRMOriginCustomerServiceCentre CRMOrigin = 2
	CRMOriginIHTTCPortal           CRMOrigin = 3
	CRMOriginTrainerBookerPortal   CRMOrigin = 4
)

// CRMRemit is the regulatory remit of a test centre.
type CRMRemit int

const (
	CRMRemitEngland         CRMRemit = 675030000
	CRMRemitNorthernIreland CRMRemit = 675030001
	CRMRemitScotland        CRMRemit = 675030002
	CRMRemitWales           CRMRemit = 675030003
)

// CRMPeopleTitle is the CRM option set for recognised titles.
type CRMPeopleTitle int

const (
	CRMPeopleTitleMr   CRMPeopleTitle = 675030000
	CRMPeopleTitleMs   CRMPeopleTitle = 675030001
	CRMPeopleTitleMrs  CRMPeopleTitle = 675030002
	CRMPeopleTitleMiss CRMPeopleTitle = 675030003
	CRMPeopleTitleMx   CRMPeopleTitle = 675030004
	CRMPeopleTitleDr   CRMPeopleTitle = 675030005
)

// CRMGenderCode is the CRM gender option set.
type CRMGenderCode int

const (
	CRMGenderCodeMale    CRMGenderCode = 1
	CRMGenderCodeFemale  CRMGenderCode = 2
	CRMGenderCodeUnknown CRMGenderCode = 3
)

// CRMTestSupportNeed is the CRM multi-select option set for support needs.
type CRMTestSupportNeed int

const (
	CRMTestSupportNeedBSLInterpreter             CRMTestSupportNeed = 675030000
	CRMTestSupportNeedExtraTime                  CRMTestSupportNeed = 675030001
	CRMTestSupportNeedExtraTimeWithBreak         CRMTestSupportNeed = 675030002
	CRMTestSupportNeedForeignLanguageInterpreter CRMTestSupportNeed = 675030003
	CRMTestSupportNeedHomeTest                   CRMTestSupportNeed = 675030004
	CRMTestSupportNeedLanguageLipSpeaker         CRMTestSupportNeed = 675030005
	CRMTestSupportNeedNSARequest                 CRMTestSupportNeed = 675030006
	CRMTestSupportNeedOralLanguageModifier       CRMTestSupportNeed = 675030007
	CRMTestSupportNeedOther                      CRMTestSupportNeed = 675030008
	CRMTestSupportNeedReadingSupport             CRMTestSupportNeed = 675030009
	CRMTestSupportNeedSeparateRoom               CRMTestSupportNeed = 675030010
	CRMTestSupportNeedTestInIsolation            CRMTestSupportNeed = 675030011
	CRMTestSupportNeedSpecialEquipment           CRMTestSupportNeed = 675030012
	CRMTestSupportNeedOnScreenBSL                CRMTestSupportNeed = 675030013
	CRMTestSupportNeedVoiceoverLanguage          CRMTestSupportNeed = 675030014
)

// CRMAdditionalSupport is the per-product additional-support option. The CRM
// sends an explicit None value when the candidate selected nothing, which is
// distinct from the field being absent.
type CRMAdditionalSupport int

const (
	CRMAdditionalSupportBSL       CRMAdditionalSupport = 675030000
	CRMAdditionalSupportVoiceover CRMAdditionalSupport = 675030001
	CRMAdditionalSupportNone      CRMAdditionalSupport = 675030002
)

// CRMPaymentStatus is the payment state reported on a booking product.
type CRMPaymentStatus int

const (
	CRMPaymentStatusSuccess       CRMPaymentStatus = 675030000
	CRMPaymentStatusFailure       CRMPaymentStatus = 675030001
	CRMPaymentStatusUserCancelled CRMPaymentStatus = 675030002
	CRMPaymentStatusInProgress    CRMPaymentStatus = 675030003
)

// CRMPreferredCommunicationMethod is how the support team should contact the
// candidate about an NSA request.
type CRMPreferredCommunicationMethod int

const (
	CRMPreferredCommunicationMethodEmail CRMPreferredCommunicationMethod = 675030000
	CRMPreferredCommunicationMethodPhone CRMPreferredCommunicationMethod = 675030001
	CRMPreferredCommunicationMethodPost  CRMPreferredCommunicationMethod = 675030002
)

// CRMProductNumber is the commercial product number for a test type.
type CRMProductNumber string

const (
	CRMProductNumberCar        CRMProductNumber = "1001"
	CRMProductNumberMotorcycle CRMProductNumber = "2001"
	CRMProductNumberLGVMC      CRMProductNumber = "3001"
	CRMProductNumberLGVHPT     CRMProductNumber = "3002"
	CRMProductNumberLGVCPC     CRMProductNumber = "3003"
	CRMProductNumberLGVCPCC    CRMProductNumber = "3004"
	CRMProductNumberPCVMC      CRMProductNumber = "4001"
	CRMProductNumberPCVHPT     CRMProductNumber = "4002"
	CRMProductNumberPCVCPC     CRMProductNumber = "4003"
	CRMProductNumberPCVCPCC    CRMProductNumber = "4004"
	CRMProductNumberADIP1      CRMProductNumber = "5001"
	CRMProductNumberADIHPT     CRMProductNumber = "5002"
	CRMProductNumberADIP1DVA   CRMProductNumber = "5003"
	CRMProductNumberAMIP1      CRMProductNumber = "6001"
	CRMProductNumberERS        CRMProductNumber = "8001"
	CRMProductNumberTaxi       CRMProductNumber = "9001"
)

// ---------------------------------------------------------------------------
// Language
// ---------------------------------------------------------------------------

var languageToCRM = map[models.Language]CRMTestLanguage{
	models.LanguageEnglish: CRMTestLanguageEnglish,
	models.LanguageWelsh:   CRMTestLanguageWelsh,
}

var languageFromCRM = map[CRMTestLanguage]models.Language{
	CRMTestLanguageEnglish: models.LanguageEnglish,
	CRMTestLanguageWelsh:   models.LanguageWelsh,
}

// TestLanguageToCRM maps a session language to its CRM code. The Language
// enum is closed, so the English default can only trigger on a zero value.
func TestLanguageToCRM(language models.Language) CRMTestLanguage {
	if code, ok := languageToCRM[language]; ok {
		return code
	}
	return CRMTestLanguageEnglish
}

// LanguageFromCRM maps a CRM language code back to the session enum,
// defaulting to English for unknown codes.
func LanguageFromCRM(code CRMTestLanguage) models.Language {
	if language, ok := languageFromCRM[code]; ok {
		return language
	}
	return models.LanguageEnglish
}

// ---------------------------------------------------------------------------
// Voiceover
// ---------------------------------------------------------------------------

var voiceoverToCRM = map[models.Voiceover]CRMVoiceOver{
	models.VoiceoverEnglish:    CRMVoiceOverEnglish,
	models.VoiceoverWelsh:      CRMVoiceOverWelsh,
	models.VoiceoverArabic:     CRMVoiceOverArabic,
	models.VoiceoverCantonese:  CRMVoiceOverCantonese,
	models.VoiceoverFarsi:      CRMVoiceOverFarsi,
	models.VoiceoverPolish:     CRMVoiceOverPolish,
	models.VoiceoverPortuguese: CRMVoiceOverPortuguese,
	models.VoiceoverTurkish:    CRMVoiceOverTurkish,
	models.VoiceoverNone:       CRMVoiceOverNone,
}

var voiceoverFromCRM = map[CRMVoiceOver]models.Voiceover{
	CRMVoiceOverEnglish:    models.VoiceoverEnglish,
	CRMVoiceOverWelsh:      models.VoiceoverWelsh,
	CRMVoiceOverArabic:     models.VoiceoverArabic,
	CRMVoiceOverCantonese:  models.VoiceoverCantonese,
	CRMVoiceOverFarsi:      models.VoiceoverFarsi,
	CRMVoiceOverPolish:     models.VoiceoverPolish,
	CRMVoiceOverPortuguese: models.VoiceoverPortuguese,
	CRMVoiceOverTurkish:    models.VoiceoverTurkish,
	CRMVoiceOverNone:       models.VoiceoverNone,
}

// VoiceoverToCRM maps a session voiceover to its CRM code. Absent or unknown
// selections map to the explicit CRM None code.
func VoiceoverToCRM(voiceover models.Voiceover) CRMVoiceOver {
	if code, ok := voiceoverToCRM[voiceover]; ok {
		return code
	}
	return CRMVoiceOverNone
}

// VoiceoverFromCRM maps a CRM voiceover code back to the session enum. Codes
// the application does not offer (Mirpuri, Urdu, ...) resolve to None.
func VoiceoverFromCRM(code CRMVoiceOver) models.Voiceover {
	if voiceover, ok := voiceoverFromCRM[code]; ok {
		return voiceover
	}
	return models.VoiceoverNone
}

// ---------------------------------------------------------------------------
// Support needs
// ---------------------------------------------------------------------------

var supportTypeToCRM = map[models.SupportType]CRMTestSupportNeed{
	models.SupportTypeOnScreenBSL:          CRMTestSupportNeedOnScreenBSL,
	models.SupportTypeBSLInterpreter:       CRMTestSupportNeedBSLInterpreter,
	models.SupportTypeExtraTime:            CRMTestSupportNeedExtraTime,
	models.SupportTypeReadingSupport:       CRMTestSupportNeedReadingSupport,
	models.SupportTypeOralLanguageModifier: CRMTestSupportNeedOralLanguageModifier,
	models.SupportTypeTranslator:           CRMTestSupportNeedForeignLanguageInterpreter,
	models.SupportTypeVoiceover:            CRMTestSupportNeedVoiceoverLanguage,
	models.SupportTypeOther:                CRMTestSupportNeedOther,
}

var supportTypeFromCRM = map[CRMTestSupportNeed]models.SupportType{
	CRMTestSupportNeedOnScreenBSL:                models.SupportTypeOnScreenBSL,
	CRMTestSupportNeedBSLInterpreter:             models.SupportTypeBSLInterpreter,
	CRMTestSupportNeedExtraTime:                  models.SupportTypeExtraTime,
	CRMTestSupportNeedReadingSupport:             models.SupportTypeReadingSupport,
	CRMTestSupportNeedOralLanguageModifier:       models.SupportTypeOralLanguageModifier,
	CRMTestSupportNeedForeignLanguageInterpreter: models.SupportTypeTranslator,
	CRMTestSupportNeedVoiceoverLanguage:          models.SupportTypeVoiceover,
	CRMTestSupportNeedOther:                      models.SupportTypeOther,
}

// SupportTypeToCRM maps a selected support type to the CRM multi-select code.
// The bool result is false for types that never reach the CRM (no support
// wanted, none).
func SupportTypeToCRM(supportType models.SupportType) (CRMTestSupportNeed, bool) {
	code, ok := supportTypeToCRM[supportType]
	return code, ok
}

// SupportTypeFromCRM maps one CRM support-need code to the internal enum.
// Unknown codes degrade to SupportTypeNone per element: a list containing one
// unrecognised code among several valid ones downgrades just that element
// rather than failing or dropping the list.
func SupportTypeFromCRM(code CRMTestSupportNeed) models.SupportType {
	if supportType, ok := supportTypeFromCRM[code]; ok {
		return supportType
	}
	return models.SupportTypeNone
}

// ---------------------------------------------------------------------------
// Test type / product number
// ---------------------------------------------------------------------------

var testTypeToProductNumber = map[models.TestType]CRMProductNumber{
	models.TestTypeCar:        CRMProductNumberCar,
	models.TestTypeMotorcycle: CRMProductNumberMotorcycle,
	models.TestTypeLGVMC:      CRMProductNumberLGVMC,
	models.TestTypeLGVHPT:     CRMProductNumberLGVHPT,
	models.TestTypeLGVCPC:     CRMProductNumberLGVCPC,
	models.TestTypeLGVCPCC:    CRMProductNumberLGVCPCC,
	models.TestTypePCVMC:      CRMProductNumberPCVMC,
	models.TestTypePCVHPT:     CRMProductNumberPCVHPT,
	models.TestTypePCVCPC:     CRMProductNumberPCVCPC,
	models.TestTypePCVCPCC:    CRMProductNumberPCVCPCC,
	models.TestTypeADIP1:      CRMProductNumberADIP1,
	models.TestTypeADIHPT:     CRMProductNumberADIHPT,
	models.TestTypeADIP1DVA:   CRMProductNumberADIP1DVA,
	models.TestTypeAMIP1:      CRMProductNumberAMIP1,
	models.TestTypeERS:        CRMProductNumberERS,
	models.TestTypeTaxi:       CRMProductNumberTaxi,
}

var testTypeFromProductNumber = invertProductNumbers()

func invertProductNumbers() map[CRMProductNumber]models.TestType {
	inverse := make(map[CRMProductNumber]models.TestType, len(testTypeToProductNumber))
	for testType, number := range testTypeToProductNumber {
		inverse[number] = testType
	}
	return inverse
}

// ProductNumberForTestType maps a test type to its CRM product number. The
// bool result is false for test types with no commercial product.
func ProductNumberForTestType(testType models.TestType) (CRMProductNumber, bool) {
	number, ok := testTypeToProductNumber[testType]
	return number, ok
}

// TestTypeFromProductNumber is the inverse lookup. Unknown product numbers
// return false rather than an error: new products appear in the CRM before
// the application learns to sell them.
func TestTypeFromProductNumber(number CRMProductNumber) (models.TestType, bool) {
	testType, ok := testTypeFromProductNumber[number]
	return testType, ok
}

// ---------------------------------------------------------------------------
// Government agency / target
// ---------------------------------------------------------------------------

// GovernmentAgencyForTarget maps the regulatory target onto the owning
// agency: GB bookings belong to DVSA, NI bookings to DVA.
func GovernmentAgencyForTarget(target models.Target) CRMGovernmentAgency {
	if target == models.TargetNI {
		return CRMGovernmentAgencyDva
	}
	return CRMGovernmentAgencyDvsa
}

// TargetFromGovernmentAgency is the inverse of GovernmentAgencyForTarget.
func TargetFromGovernmentAgency(agency CRMGovernmentAgency) models.Target {
	if agency == CRMGovernmentAgencyDva {
		return models.TargetNI
	}
	return models.TargetGB
}

// ---------------------------------------------------------------------------
// Origin
// ---------------------------------------------------------------------------

var originToCRM = map[models.Origin]CRMOrigin{
	models.OriginCitizenPortal:         CRMOriginCitizenPortal,
	models.OriginCustomerServiceCentre: CRMOriginCustomerServiceCentre,
}

// OriginToCRM maps a channel to its CRM code, defaulting to the citizen
// portal since that is the only channel this application writes from.
func OriginToCRM(origin models.Origin) CRMOrigin {
	if code, ok := originToCRM[origin]; ok {
		return code
	}
	return CRMOriginCitizenPortal
}

// ---------------------------------------------------------------------------
// Title
// ---------------------------------------------------------------------------

var titleToCRM = map[string]CRMPeopleTitle{
	"mr":     CRMPeopleTitleMr,
	"ms":     CRMPeopleTitleMs,
	"mrs":    CRMPeopleTitleMrs,
	"miss":   CRMPeopleTitleMiss,
	"mx":     CRMPeopleTitleMx,
	"dr":     CRMPeopleTitleDr,
	"doctor": CRMPeopleTitleDr,
}

var titleFromCRM = map[CRMPeopleTitle]string{
	CRMPeopleTitleMr:   "Mr",
	CRMPeopleTitleMs:   "Ms",
	CRMPeopleTitleMrs:  "Mrs",
	CRMPeopleTitleMiss: "Miss",
	CRMPeopleTitleMx:   "Mx",
	CRMPeopleTitleDr:   "Dr",
}

// PeopleTitleFromString maps a recognised title (case-insensitively, after
// trimming) to its CRM code. Unrecognised titles return false; the caller
// places them verbatim into the other-title field instead.
func PeopleTitleFromString(title string) (CRMPeopleTitle, bool) {
	code, ok := titleToCRM[strings.ToLower(strings.TrimSpace(title))]
	return code, ok
}

// TitleFromCRM returns the display form of a CRM title code, or "" when the
// code has no internal equivalent.
func TitleFromCRM(code CRMPeopleTitle) string {
	return titleFromCRM[code]
}

// ---------------------------------------------------------------------------
// Gender
// ---------------------------------------------------------------------------

var genderToCRM = map[string]CRMGenderCode{
	"male":   CRMGenderCodeMale,
	"female": CRMGenderCodeFemale,
}

var genderFromCRM = map[CRMGenderCode]string{
	CRMGenderCodeMale:   "male",
	CRMGenderCodeFemale: "female",
}

// GenderCodeFromString maps a candidate gender onto the CRM code, falling
// back to Unknown for anything unrecognised or unstated.
func GenderCodeFromString(gender string) CRMGenderCode {
	if code, ok := genderToCRM[strings.ToLower(strings.TrimSpace(gender))]; ok {
		return code
	}
	return CRMGenderCodeUnknown
}

// GenderFromCRM returns the internal gender string for a CRM code, or ""
// when the code has no internal equivalent (including Unknown).
func GenderFromCRM(code CRMGenderCode) string {
	return genderFromCRM[code]
}
