package domain

// Result holds the outcome of a similarity computation.
type Result struct {
	Name    string
	Score   float64
	Flagged bool
	// OriginalLength and CandidateLength are rune counts after normalization.
	OriginalLength  int
	CandidateLength int
	LCSLength       int
	Threshold       float64
	Details         map[string]interface{}
}
