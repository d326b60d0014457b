package models

import "strings"

// Target is the regulatory jurisdiction a booking is made under. It decides
// which agency owns the test, which voiceovers exist and whether the test
// language can change.
type Target string

const (
	TargetGB Target = "gb"
	TargetNI Target = "ni"
)

// Language is the test language. The model is deliberately two-valued: the
// upstream journey captures language as free text, and anything that is not
// literally "welsh" (case-insensitively) has always collapsed to English.
// LanguageFromSession performs that collapse once, at the session boundary.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageWelsh   Language = "welsh"
)

// LanguageFromSession collapses a raw session language string into the closed
// Language set. Only a case-insensitive "welsh" maps to Welsh; everything
// else, including the empty string, is English.
func LanguageFromSession(raw string) Language {
	if strings.EqualFold(strings.TrimSpace(raw), string(LanguageWelsh)) {
		return LanguageWelsh
	}
	return LanguageEnglish
}

// Voiceover is an audio translation option for exam questions, distinct from
// the test language.
type Voiceover string

const (
	VoiceoverEnglish    Voiceover = "english"
	VoiceoverWelsh      Voiceover = "welsh"
	VoiceoverArabic     Voiceover = "arabic"
	VoiceoverCantonese  Voiceover = "cantonese"
	VoiceoverFarsi      Voiceover = "farsi"
	VoiceoverPolish     Voiceover = "polish"
	VoiceoverPortuguese Voiceover = "portuguese"
	VoiceoverTurkish    Voiceover = "turkish"
	VoiceoverNone       Voiceover = "none"
)

// TestType enumerates the bookable theory test categories.
type TestType string

const (
	TestTypeCar        TestType = "car"
	TestTypeMotorcycle TestType = "motorcycle"
	TestTypeLGVMC      TestType = "lgvmc"
	TestTypeLGVHPT     TestType = "lgvhpt"
	TestTypeLGVCPC     TestType = "lgvcpc"
	TestTypeLGVCPCC    TestType = "lgvcpcc"
	TestTypePCVMC      TestType = "pcvmc"
	TestTypePCVHPT     TestType = "pcvhpt"
	TestTypePCVCPC     TestType = "pcvcpc"
	TestTypePCVCPCC    TestType = "pcvcpcc"
	TestTypeADIP1      TestType = "adip1"
	TestTypeADIHPT     TestType = "adihpt"
	TestTypeADIP1DVA   TestType = "adip1dva"
	TestTypeAMIP1      TestType = "amip1"
	TestTypeERS        TestType = "ers"
	TestTypeTaxi       TestType = "taxi"
)

// SupportType is a support arrangement a candidate can select. A booking with
// one or more selected support types is a non-standard accommodation (NSA)
// booking.
type SupportType string

const (
	SupportTypeOnScreenBSL          SupportType = "onScreenBsl"
	SupportTypeBSLInterpreter       SupportType = "bslInterpreter"
	SupportTypeExtraTime            SupportType = "extraTime"
	SupportTypeReadingSupport       SupportType = "readingSupport"
	SupportTypeOralLanguageModifier SupportType = "oralLanguageModifier"
	SupportTypeTranslator           SupportType = "translator"
	SupportTypeVoiceover            SupportType = "voiceover"
	SupportTypeOther                SupportType = "otherSupport"
	SupportTypeNoSupportWanted      SupportType = "noSupportWanted"
	SupportTypeNone                 SupportType = "noSupport"
)

// PreferredDayOption records whether the candidate named a particular day for
// an NSA test or deferred the choice.
type PreferredDayOption string

const (
	PreferredDayOptionParticular  PreferredDayOption = "particularDay"
	PreferredDayOptionDecideLater PreferredDayOption = "decideLater"
)

// PreferredLocationOption mirrors PreferredDayOption for locations.
type PreferredLocationOption string

const (
	PreferredLocationOptionParticular  PreferredLocationOption = "particularLocation"
	PreferredLocationOptionDecideLater PreferredLocationOption = "decideLater"
)

// EvidenceRoute classifies whether a candidate must supply medical evidence
// before an NSA request proceeds. The routing rules themselves live behind
// the EvidenceRouter port; the core only branches on the result.
type EvidenceRoute string

const (
	EvidenceRouteRequired      EvidenceRoute = "evidenceRequired"
	EvidenceRouteNotRequired   EvidenceRoute = "evidenceNotRequired"
	EvidenceRouteMayBeRequired EvidenceRoute = "evidenceMayBeRequired"
	EvidenceRouteReturning     EvidenceRoute = "returningCandidate"
)

// Origin identifies which channel created a booking.
type Origin string

const (
	OriginCitizenPortal         Origin = "citizenPortal"
	OriginCustomerServiceCentre Origin = "customerServiceCentre"
)
