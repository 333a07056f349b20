package service

import (
	"clamsense/internal/model"
)

// AnswerCount is the number of items in a PSS-10 answer set. The transport
// boundary rejects requests with any other length.
const AnswerCount = 10

const answerMax = 4

// reverseScored holds the 0-indexed PSS-10 items answered on an inverted
// scale (items 4, 5, 7 and 8 in the questionnaire's 1-indexed convention).
var reverseScored = map[int]bool{3: true, 4: true, 6: true, 7: true}

// Fixed explanation per band
const (
	explanationLow      = "Low perceived stress"
	explanationModerate = "Moderate perceived stress—consider regular check-ins"
	explanationHigh     = "High perceived stress—try immediate coping tools and consider professional support"
)

// SurveyService scores PSS-10 answer sets
type SurveyService struct{}

// NewSurveyService creates a new survey service
func NewSurveyService() *SurveyService {
	return &SurveyService{}
}

// Score sums the 10 answers into a 0-40 total and bands it. Individual
// answers outside 0..4 are clamped rather than rejected; the boundary only
// enforces the answer count.
func (s *SurveyService) Score(answers []int) model.SurveyResult {
	score := 0
	for i, a := range answers {
		if a < 0 {
			a = 0
		}
		if a > answerMax {
			a = answerMax
		}
		if reverseScored[i] {
			score += answerMax - a
		} else {
			score += a
		}
	}

	band, explanation := surveyBand(score)
	return model.SurveyResult{
		Score:       score,
		Band:        band,
		Explanation: explanation,
	}
}

func surveyBand(score int) (string, string) {
	switch {
	case score <= 13:
		return model.BandLow, explanationLow
	case score <= 26:
		return model.BandModerate, explanationModerate
	default:
		return model.BandHigh, explanationHigh
	}
}
