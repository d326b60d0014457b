// Package booking holds the derived availability rules applied during the
// booking flow. The rules are static per target and test type; nothing here
// is persisted.
package booking

import "ftts-booking/internal/booking/models"

// dvaVoiceovers is the full DVA voiceover set offered for NI car and
// motorcycle tests, in the order the journey presents them.
var dvaVoiceovers = []models.Voiceover{
	models.VoiceoverEnglish,
	models.VoiceoverTurkish,
	models.VoiceoverPortuguese,
	models.VoiceoverPolish,
	models.VoiceoverFarsi,
	models.VoiceoverCantonese,
	models.VoiceoverArabic,
}

// dvsaVoiceovers is the fixed GB set.
var dvsaVoiceovers = []models.Voiceover{
	models.VoiceoverEnglish,
	models.VoiceoverWelsh,
}

// AvailableVoiceovers returns the voiceover languages offered for a target
// and test type. ERS tests are English-only everywhere; NI instructor tests
// (ADI P1 DVA, AMI P1) offer none at all.
func AvailableVoiceovers(target models.Target, testType models.TestType) []models.Voiceover {
	if testType == models.TestTypeERS {
		return []models.Voiceover{models.VoiceoverEnglish}
	}
	if target == models.TargetNI {
		switch testType {
		case models.TestTypeCar, models.TestTypeMotorcycle:
			return dvaVoiceovers
		case models.TestTypeADIP1DVA, models.TestTypeAMIP1:
			return []models.Voiceover{}
		default:
			return []models.Voiceover{models.VoiceoverEnglish}
		}
	}
	return dvsaVoiceovers
}

// CanChangeTestLanguage reports whether the candidate may switch the test
// language. NI tests and ERS tests are fixed; everything else can change.
func CanChangeTestLanguage(target models.Target, testType models.TestType) bool {
	if target == models.TargetNI {
		return false
	}
	return testType != models.TestTypeERS
}
