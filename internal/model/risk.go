package model

// RiskFeatures is the validated feature vector for one risk prediction.
// PSS10Score is an optional baseline from a prior survey; nil means absent.
type RiskFeatures struct {
	HeartRate  float64 `json:"heart_rate"`  // bpm, must be > 0
	SleepHours float64 `json:"sleep_hours"` // last night, 0..14
	Steps      int     `json:"steps"`       // so far today, >= 0
	DayOfWeek  int     `json:"day_of_week"` // 0=Mon .. 6=Sun
	Hour       int     `json:"hour"`        // hour of day, 0..23
	MoodScore  float64 `json:"mood_score"`  // self-reported, 0..1 (1 best)
	PSS10Score *int    `json:"pss10_score"` // optional, 0..40
}

// RiskResult is the outcome of one risk prediction. Factors lists the
// contributing signals that crossed their individual thresholds, in
// evaluation order.
type RiskResult struct {
	PredictedLevel float64  `json:"predicted_level"`
	RiskBand       string   `json:"risk_band"`
	Factors        []string `json:"factors"`
}
