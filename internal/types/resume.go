package types

// ResumeAnalysis is the result of scoring a resume against a job
// description. Analyses are transient; they are returned to the caller
// and never persisted.
type ResumeAnalysis struct {
	Score       int    `json:"score"` // 0-100
	Strengths   string `json:"strengths"`
	Weaknesses  string `json:"weaknesses"`
	Suggestions string `json:"suggestions"`
}
