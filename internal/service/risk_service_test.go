package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clamsense/internal/model"
)

func intPtr(v int) *int { return &v }

func TestEstimateBaselineCalm(t *testing.T) {
	svc := NewRiskService()

	// every component sits at its floor
	result := svc.Estimate(model.RiskFeatures{
		HeartRate:  55,
		SleepHours: 8,
		Steps:      8000,
		DayOfWeek:  2,
		Hour:       0,
		MoodScore:  1,
	})

	assert.Equal(t, 0.0, result.PredictedLevel)
	assert.Equal(t, model.BandLow, result.RiskBand)
	assert.Empty(t, result.Factors)
	assert.NotNil(t, result.Factors)
}

func TestEstimateSaturated(t *testing.T) {
	svc := NewRiskService()

	// every component at its ceiling: 0.35+0.25+0.15+0.04+0.15+0.3 = 1.29,
	// clamped to 1.0. The steps component tops out at exactly 0.4 and its
	// tag requires strictly more, so it never fires.
	result := svc.Estimate(model.RiskFeatures{
		HeartRate:  110,
		SleepHours: 0,
		Steps:      0,
		DayOfWeek:  0,
		Hour:       10,
		MoodScore:  0,
		PSS10Score: intPtr(40),
	})

	assert.Equal(t, 1.0, result.PredictedLevel)
	assert.Equal(t, model.BandHigh, result.RiskBand)
	assert.Equal(t, []string{
		"elevated heart rate",
		"short sleep duration",
		"low self-reported mood",
		"typical peak hours",
		"high baseline stress",
	}, result.Factors)
}

func TestEstimateRounding(t *testing.T) {
	svc := NewRiskService()

	// hr component = 25/55 ≈ 0.4545, everything else 0:
	// 0.35 * 0.4545... = 0.15909... -> 0.159
	result := svc.Estimate(model.RiskFeatures{
		HeartRate:  80,
		SleepHours: 8,
		Steps:      8000,
		DayOfWeek:  0,
		Hour:       0,
		MoodScore:  1,
	})

	assert.InDelta(t, 0.159, result.PredictedLevel, 1e-9)
	assert.Equal(t, model.BandLow, result.RiskBand)
}

func TestEstimateFactors(t *testing.T) {
	svc := NewRiskService()

	calm := model.RiskFeatures{
		HeartRate:  55,
		SleepHours: 8,
		Steps:      8000,
		DayOfWeek:  0,
		Hour:       0,
		MoodScore:  1,
	}

	tests := []struct {
		name       string
		mutate     func(f *model.RiskFeatures)
		expFactors []string
	}{
		{
			name:       "peak hour bonus",
			mutate:     func(f *model.RiskFeatures) { f.Hour = 15 },
			expFactors: []string{"typical peak hours"},
		},
		{
			// sleep component = 1 - 3/8 = 0.625 > 0.6
			name:       "short sleep",
			mutate:     func(f *model.RiskFeatures) { f.SleepHours = 3 },
			expFactors: []string{"short sleep duration"},
		},
		{
			// baseline = 1.0 * 0.3 > 0.15, yet total risk stays low
			name:       "high baseline survey score",
			mutate:     func(f *model.RiskFeatures) { f.PSS10Score = intPtr(40) },
			expFactors: []string{"high baseline stress"},
		},
		{
			// steps component = 1.0 * 0.4, tagged only when strictly above 0.4
			name:       "no activity",
			mutate:     func(f *model.RiskFeatures) { f.Steps = 0 },
			expFactors: []string{},
		},
		{
			name:       "non-peak hour",
			mutate:     func(f *model.RiskFeatures) { f.Hour = 12 },
			expFactors: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := calm
			tt.mutate(&f)
			result := svc.Estimate(f)
			assert.Equal(t, tt.expFactors, result.Factors)
		})
	}
}

func TestEstimateLevelBounds(t *testing.T) {
	svc := NewRiskService()

	inputs := []model.RiskFeatures{
		{HeartRate: 200, SleepHours: 0, Steps: 0, Hour: 10, MoodScore: 0, PSS10Score: intPtr(40)},
		{HeartRate: 1, SleepHours: 14, Steps: 50000, Hour: 3, MoodScore: 1},
		{HeartRate: 72, SleepHours: 6.5, Steps: 4200, Hour: 16, MoodScore: 0.5, PSS10Score: intPtr(18)},
	}

	for _, f := range inputs {
		result := svc.Estimate(f)
		assert.GreaterOrEqual(t, result.PredictedLevel, 0.0)
		assert.LessOrEqual(t, result.PredictedLevel, 1.0)
	}
}

func TestEstimateIdempotent(t *testing.T) {
	svc := NewRiskService()
	f := model.RiskFeatures{
		HeartRate:  90,
		SleepHours: 5,
		Steps:      2000,
		DayOfWeek:  4,
		Hour:       11,
		MoodScore:  0.3,
		PSS10Score: intPtr(22),
	}

	first := svc.Estimate(f)
	second := svc.Estimate(f)
	assert.Equal(t, first, second)
}

func TestRiskBandThresholds(t *testing.T) {
	assert.Equal(t, model.BandLow, riskBand(0))
	assert.Equal(t, model.BandLow, riskBand(0.329))
	assert.Equal(t, model.BandModerate, riskBand(0.33))
	assert.Equal(t, model.BandModerate, riskBand(0.659))
	assert.Equal(t, model.BandHigh, riskBand(0.66))
	assert.Equal(t, model.BandHigh, riskBand(1))
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.5))
	assert.Equal(t, 0.0, clamp01(0))
	assert.Equal(t, 0.5, clamp01(0.5))
	assert.Equal(t, 1.0, clamp01(1))
	assert.Equal(t, 1.0, clamp01(1.29))
}
