package booking

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"ftts-booking/internal/booking/models"
)

type AvailabilitySuite struct {
	suite.Suite
}

func TestAvailabilitySuite(t *testing.T) {
	suite.Run(t, new(AvailabilitySuite))
}

func (s *AvailabilitySuite) TestAvailableVoiceovers() {
	s.Run("ni car and motorcycle get the full dva set in order", func() {
		want := []models.Voiceover{
			models.VoiceoverEnglish,
			models.VoiceoverTurkish,
			models.VoiceoverPortuguese,
			models.VoiceoverPolish,
			models.VoiceoverFarsi,
			models.VoiceoverCantonese,
			models.VoiceoverArabic,
		}
		s.Equal(want, AvailableVoiceovers(models.TargetNI, models.TestTypeCar))
		s.Equal(want, AvailableVoiceovers(models.TargetNI, models.TestTypeMotorcycle))
	})

	s.Run("ni instructor tests get none", func() {
		s.Empty(AvailableVoiceovers(models.TargetNI, models.TestTypeADIP1DVA))
		s.Empty(AvailableVoiceovers(models.TargetNI, models.TestTypeAMIP1))
	})

	s.Run("other ni tests are english only", func() {
		s.Equal([]models.Voiceover{models.VoiceoverEnglish},
			AvailableVoiceovers(models.TargetNI, models.TestTypeLGVMC))
		s.Equal([]models.Voiceover{models.VoiceoverEnglish},
			AvailableVoiceovers(models.TargetNI, models.TestTypeTaxi))
	})

	s.Run("gb gets the fixed dvsa pair", func() {
		want := []models.Voiceover{models.VoiceoverEnglish, models.VoiceoverWelsh}
		s.Equal(want, AvailableVoiceovers(models.TargetGB, models.TestTypeCar))
		s.Equal(want, AvailableVoiceovers(models.TargetGB, models.TestTypePCVHPT))
	})

	s.Run("ers is english only for every target", func() {
		s.Equal([]models.Voiceover{models.VoiceoverEnglish},
			AvailableVoiceovers(models.TargetGB, models.TestTypeERS))
		s.Equal([]models.Voiceover{models.VoiceoverEnglish},
			AvailableVoiceovers(models.TargetNI, models.TestTypeERS))
	})
}

func (s *AvailabilitySuite) TestCanChangeTestLanguage() {
	s.False(CanChangeTestLanguage(models.TargetNI, models.TestTypeCar))
	s.False(CanChangeTestLanguage(models.TargetNI, models.TestTypeERS))
	s.False(CanChangeTestLanguage(models.TargetGB, models.TestTypeERS))
	s.True(CanChangeTestLanguage(models.TargetGB, models.TestTypeCar))
	s.True(CanChangeTestLanguage(models.TargetGB, models.TestTypeTaxi))
}
