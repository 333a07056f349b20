package service

import (
	"math"

	"clamsense/internal/model"
)

// Weights and caps of the composite risk index. These are frozen heuristics:
// behavioral parity matters more than tuning them.
const (
	weightHeartRate = 0.35
	weightSleep     = 0.25
	weightMood      = 0.15
	weightSteps     = 0.10

	stepsCap       = 0.4  // low activity adds at most this much
	circadianBonus = 0.15 // fixed bonus during peak windows
	baselineCap    = 0.3  // optional survey prior adds at most this much
)

// peakHours are the hours of day that receive the circadian bonus
var peakHours = map[int]bool{10: true, 11: true, 15: true, 16: true}

// Per-component thresholds for factor tagging, checked against the
// unrounded component values
const (
	heartRateFactorThreshold = 0.6
	sleepFactorThreshold     = 0.6
	moodFactorThreshold      = 0.6
	stepsFactorThreshold     = 0.4
	baselineFactorThreshold  = 0.15
)

// RiskService combines a feature vector into a 0..1 composite risk index
type RiskService struct{}

// NewRiskService creates a new risk service
func NewRiskService() *RiskService {
	return &RiskService{}
}

// Estimate computes the weighted composite risk index, bands it, and tags
// the contributing factors that crossed their individual thresholds.
// Inputs are assumed range-validated at the transport boundary.
func (s *RiskService) Estimate(f model.RiskFeatures) model.RiskResult {
	// ~0 at 55 bpm, ~1 at 110 bpm
	hr := clamp01((f.HeartRate - 55) / 55)
	// 0 at 8h of sleep, up to 1 at none
	sleep := 1 - clamp01(f.SleepHours/8)
	// very low activity may increase stress
	steps := clamp01(1-clamp01(float64(f.Steps)/8000)) * stepsCap
	// 1 when mood 0, 0 when mood 1
	mood := 1 - f.MoodScore

	circadian := 0.0
	if peakHours[f.Hour] {
		circadian = circadianBonus
	}

	baseline := 0.0
	if f.PSS10Score != nil {
		baseline = clamp01(float64(*f.PSS10Score)/40) * baselineCap
	}

	risk := weightHeartRate*hr + weightSleep*sleep + weightMood*mood + weightSteps*steps + circadian + baseline
	risk = clamp01(risk)

	factors := []string{}
	if hr > heartRateFactorThreshold {
		factors = append(factors, "elevated heart rate")
	}
	if sleep > sleepFactorThreshold {
		factors = append(factors, "short sleep duration")
	}
	if mood > moodFactorThreshold {
		factors = append(factors, "low self-reported mood")
	}
	if steps > stepsFactorThreshold {
		factors = append(factors, "very low activity")
	}
	if circadian > 0 {
		factors = append(factors, "typical peak hours")
	}
	if baseline > baselineFactorThreshold {
		factors = append(factors, "high baseline stress")
	}

	return model.RiskResult{
		PredictedLevel: math.Round(risk*1000) / 1000,
		RiskBand:       riskBand(risk),
		Factors:        factors,
	}
}

func riskBand(risk float64) string {
	switch {
	case risk < 0.33:
		return model.BandLow
	case risk < 0.66:
		return model.BandModerate
	default:
		return model.BandHigh
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
