package crm

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"ftts-booking/internal/booking/models"
)

type CodeTablesSuite struct {
	suite.Suite
}

func TestCodeTablesSuite(t *testing.T) {
	suite.Run(t, new(CodeTablesSuite))
}

func (s *CodeTablesSuite) TestLanguageRoundTrip() {
	s.Run("every language survives the round trip", func() {
		for _, language := range []models.Language{models.LanguageEnglish, models.LanguageWelsh} {
			s.Equal(language, LanguageFromCRM(TestLanguageToCRM(language)))
		}
	})

	s.Run("unknown code defaults to english", func() {
		s.Equal(models.LanguageEnglish, LanguageFromCRM(CRMTestLanguage(99)))
	})
}

func (s *CodeTablesSuite) TestVoiceoverRoundTrip() {
	offered := []models.Voiceover{
		models.VoiceoverEnglish,
		models.VoiceoverWelsh,
		models.VoiceoverArabic,
		models.VoiceoverCantonese,
		models.VoiceoverFarsi,
		models.VoiceoverPolish,
		models.VoiceoverPortuguese,
		models.VoiceoverTurkish,
		models.VoiceoverNone,
	}

	s.Run("every offered voiceover survives the round trip", func() {
		for _, voiceover := range offered {
			s.Equal(voiceover, VoiceoverFromCRM(VoiceoverToCRM(voiceover)))
		}
	})

	s.Run("codes from other channels resolve to none", func() {
		s.Equal(models.VoiceoverNone, VoiceoverFromCRM(CRMVoiceOverMirpuri))
		s.Equal(models.VoiceoverNone, VoiceoverFromCRM(CRMVoiceOverUrdu))
		s.Equal(models.VoiceoverNone, VoiceoverFromCRM(CRMVoiceOver(0)))
	})
}

func (s *CodeTablesSuite) TestSupportTypeMapping() {
	mapped := []models.SupportType{
		models.SupportTypeOnScreenBSL,
		models.SupportTypeBSLInterpreter,
		models.SupportTypeExtraTime,
		models.SupportTypeReadingSupport,
		models.SupportTypeOralLanguageModifier,
		models.SupportTypeTranslator,
		models.SupportTypeVoiceover,
		models.SupportTypeOther,
	}

	s.Run("every mapped support type survives the round trip", func() {
		for _, supportType := range mapped {
			code, ok := SupportTypeToCRM(supportType)
			s.Require().True(ok, "support type %s should map to a CRM code", supportType)
			s.Equal(supportType, SupportTypeFromCRM(code))
		}
	})

	s.Run("no-support selections never reach the CRM", func() {
		_, ok := SupportTypeToCRM(models.SupportTypeNoSupportWanted)
		s.False(ok)
		_, ok = SupportTypeToCRM(models.SupportTypeNone)
		s.False(ok)
	})

	s.Run("unknown code degrades to no support", func() {
		s.Equal(models.SupportTypeNone, SupportTypeFromCRM(CRMTestSupportNeedHomeTest))
		s.Equal(models.SupportTypeNone, SupportTypeFromCRM(CRMTestSupportNeed(999)))
	})
}

func (s *CodeTablesSuite) TestProductNumberRoundTrip() {
	s.Run("every test type has a product number and survives the round trip", func() {
		for _, testType := range []models.TestType{
			models.TestTypeCar, models.TestTypeMotorcycle,
			models.TestTypeLGVMC, models.TestTypeLGVHPT, models.TestTypeLGVCPC, models.TestTypeLGVCPCC,
			models.TestTypePCVMC, models.TestTypePCVHPT, models.TestTypePCVCPC, models.TestTypePCVCPCC,
			models.TestTypeADIP1, models.TestTypeADIHPT, models.TestTypeADIP1DVA, models.TestTypeAMIP1,
			models.TestTypeERS, models.TestTypeTaxi,
		} {
			number, ok := ProductNumberForTestType(testType)
			s.Require().True(ok, "test type %s should have a product number", testType)
			back, ok := TestTypeFromProductNumber(number)
			s.Require().True(ok)
			s.Equal(testType, back)
		}
	})

	s.Run("unknown product number reports not found", func() {
		_, ok := TestTypeFromProductNumber(CRMProductNumber("7777"))
		s.False(ok)
	})
}

func (s *CodeTablesSuite) TestGovernmentAgency() {
	s.Run("gb maps to dvsa and back", func() {
		s.Equal(CRMGovernmentAgencyDvsa, GovernmentAgencyForTarget(models.TargetGB))
		s.Equal(models.TargetGB, TargetFromGovernmentAgency(CRMGovernmentAgencyDvsa))
	})

	s.Run("ni maps to dva and back", func() {
		s.Equal(CRMGovernmentAgencyDva, GovernmentAgencyForTarget(models.TargetNI))
		s.Equal(models.TargetNI, TargetFromGovernmentAgency(CRMGovernmentAgencyDva))
	})
}

func (s *CodeTablesSuite) TestTitles() {
	s.Run("recognised titles map case-insensitively after trimming", func() {
		for raw, want := range map[string]CRMPeopleTitle{
			"mr":      CRMPeopleTitleMr,
			"  Mrs  ": CRMPeopleTitleMrs,
			"MISS":    CRMPeopleTitleMiss,
			"Ms":      CRMPeopleTitleMs,
			"mx":      CRMPeopleTitleMx,
			"dr":      CRMPeopleTitleDr,
			"Doctor":  CRMPeopleTitleDr,
		} {
			code, ok := PeopleTitleFromString(raw)
			s.Require().True(ok, "title %q should be recognised", raw)
			s.Equal(want, code)
		}
	})

	s.Run("unrecognised titles report not found", func() {
		_, ok := PeopleTitleFromString("Captain")
		s.False(ok)
		_, ok = PeopleTitleFromString("")
		s.False(ok)
	})

	s.Run("recognised titles round trip through display form", func() {
		for _, display := range []string{"Mr", "Ms", "Mrs", "Miss", "Mx", "Dr"} {
			code, ok := PeopleTitleFromString(display)
			s.Require().True(ok)
			s.Equal(display, TitleFromCRM(code))
		}
	})

	s.Run("code with no internal equivalent yields empty display", func() {
		s.Equal("", TitleFromCRM(CRMPeopleTitle(999)))
	})
}

func (s *CodeTablesSuite) TestGender() {
	s.Run("male and female round trip", func() {
		s.Equal("male", GenderFromCRM(GenderCodeFromString("Male")))
		s.Equal("female", GenderFromCRM(GenderCodeFromString("female")))
	})

	s.Run("anything else maps to unknown", func() {
		s.Equal(CRMGenderCodeUnknown, GenderCodeFromString(""))
		s.Equal(CRMGenderCodeUnknown, GenderCodeFromString("nonbinary"))
	})

	s.Run("unknown code yields empty string", func() {
		s.Equal("", GenderFromCRM(CRMGenderCodeUnknown))
	})
}
