package booking

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"ftts-booking/internal/booking/models"
)

type EvidenceClassifierSuite struct {
	suite.Suite
	classifier DefaultEvidenceClassifier
}

func TestEvidenceClassifierSuite(t *testing.T) {
	suite.Run(t, new(EvidenceClassifierSuite))
}

func (s *EvidenceClassifierSuite) TestDetermineEvidenceRoute() {
	s.Run("existing support needs on file wins over everything", func() {
		route := s.classifier.DetermineEvidenceRoute(
			[]models.SupportType{models.SupportTypeExtraTime}, true)
		s.Equal(models.EvidenceRouteReturning, route)
	})

	s.Run("evidence-backed selection requires evidence", func() {
		for _, supportType := range []models.SupportType{
			models.SupportTypeExtraTime,
			models.SupportTypeReadingSupport,
			models.SupportTypeOralLanguageModifier,
		} {
			route := s.classifier.DetermineEvidenceRoute(
				[]models.SupportType{models.SupportTypeVoiceover, supportType}, false)
			s.Equal(models.EvidenceRouteRequired, route)
		}
	})

	s.Run("other support may require evidence", func() {
		route := s.classifier.DetermineEvidenceRoute(
			[]models.SupportType{models.SupportTypeOther}, false)
		s.Equal(models.EvidenceRouteMayBeRequired, route)
	})

	s.Run("plain selections need no evidence", func() {
		route := s.classifier.DetermineEvidenceRoute(
			[]models.SupportType{models.SupportTypeVoiceover, models.SupportTypeBSLInterpreter}, false)
		s.Equal(models.EvidenceRouteNotRequired, route)
	})
}
