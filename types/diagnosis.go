package types

type CheckStatus string

const (
	CheckPass    CheckStatus = "PASS"
	CheckFail    CheckStatus = "FAIL"
	CheckWarn    CheckStatus = "WARN"
	CheckSkipped CheckStatus = "SKIPPED"
)

// LineMatch is a line that one of the diagnostic checks located.
type LineMatch struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Legacy bool   `json:"legacy"` // old, unfixed form
}

type CheckResult struct {
	Title   string      `json:"title"`
	Status  CheckStatus `json:"status"`
	Matches []LineMatch `json:"matches,omitempty"`
}

// Diagnosis is the outcome of verifying the demo mode fix in one file.
type Diagnosis struct {
	File        string      `json:"file"`
	LocalToggle CheckResult `json:"local_toggle"`
	GlobalMode  CheckResult `json:"global_mode"`
	Conditional CheckResult `json:"conditional"`
	// Completed is set when every check ran and no old pattern stopped the evaluation.
	Completed bool `json:"completed"`
	Passed    bool `json:"passed"`
}

func (d Diagnosis) Checks() []CheckResult {
	return []CheckResult{d.LocalToggle, d.GlobalMode, d.Conditional}
}
