package model

// Band labels shared by the survey scorer and the risk estimator
const (
	BandLow      = "low"
	BandModerate = "moderate"
	BandHigh     = "high"
)

// SurveyResult is the outcome of scoring one PSS-10 answer set
type SurveyResult struct {
	Score       int    `json:"score"`
	Band        string `json:"band"`
	Explanation string `json:"explanation"`
}
