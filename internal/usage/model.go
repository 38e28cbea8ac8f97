package usage

// Usage represents an owner's resume-count consumption snapshot.
type Usage struct {
	Plan  string `json:"plan"`
	Limit int    `json:"limit"`
	Used  int    `json:"used"`
}
