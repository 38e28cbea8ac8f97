package gap

// Analysis is an immutable snapshot of one gap-analysis response. Accept
// actions transform copies of it and never write back into the snapshot
// a caller already holds.
type Analysis struct {
	Score           int      `json:"score"`
	Feedback        string   `json:"feedback"`
	MissingKeywords []string `json:"missingKeywords"`
}
