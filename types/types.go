package types

import "sort"

// IssueKind tags a scanned line with the demo mode problem it shows.
type IssueKind string

const (
	KindLocalToggle     IssueKind = "LOCAL_TOGGLE"
	KindHardcodedDemo   IssueKind = "HARDCODED_DEMO"
	KindDirectDemoCheck IssueKind = "DIRECT_DEMO_CHECK"
	KindViewModeVar     IssueKind = "VIEW_MODE_VAR"
)

// Kinds lists every issue kind in classification order.
var Kinds = []IssueKind{KindLocalToggle, KindHardcodedDemo, KindDirectDemoCheck, KindViewModeVar}

var kindLabels = map[IssueKind]string{
	KindLocalToggle:     "Local Demo/Real Mode Toggle",
	KindHardcodedDemo:   "Hardcoded demo_mode = True",
	KindDirectDemoCheck: "Direct 'Demo Mode' string check",
	KindViewModeVar:     "Uses view_mode variable",
}

var kindSeverities = map[IssueKind]string{
	KindLocalToggle:     "HIGH",
	KindHardcodedDemo:   "HIGH",
	KindDirectDemoCheck: "MEDIUM",
	KindViewModeVar:     "MEDIUM",
}

func (k IssueKind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

func (k IssueKind) Severity() string {
	if s, ok := kindSeverities[k]; ok {
		return s
	}
	return "LOW"
}

type Issue struct {
	Line int       `json:"line"` // 1-based
	Kind IssueKind `json:"kind"`
	Text string    `json:"text"` // line content, whitespace trimmed
}

// IssuesByFile maps a file name to its issues in scan order.
// Files without issues are never present.
type IssuesByFile map[string][]Issue

func (m IssuesByFile) Total() int {
	n := 0
	for _, issues := range m {
		n += len(issues)
	}
	return n
}

// Files returns the file names in sorted order.
func (m IssuesByFile) Files() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Kinds reports which issue kinds were found in file.
func (m IssuesByFile) Kinds(file string) map[IssueKind]bool {
	kinds := map[IssueKind]bool{}
	for _, issue := range m[file] {
		kinds[issue.Kind] = true
	}
	return kinds
}

// Findings flattens the mapping into one record per issue, ordered by file then scan order.
func (m IssuesByFile) Findings() []Finding {
	var out []Finding
	for _, file := range m.Files() {
		for _, issue := range m[file] {
			out = append(out, Finding{
				Scanner:  "demomode",
				Rule:     string(issue.Kind),
				Severity: issue.Kind.Severity(),
				File:     file,
				Line:     issue.Line,
				Details:  issue.Kind.Label(),
				Text:     issue.Text,
			})
		}
	}
	return out
}

type Finding struct {
	Scanner  string `json:"scanner"`  // e.g., "demomode"
	Rule     string `json:"rule"`     // e.g., "HARDCODED_DEMO"
	Severity string `json:"severity"` // e.g., "HIGH", "MEDIUM"
	File     string `json:"file"`
	Line     int    `json:"line"`
	Details  string `json:"details"`
	Text     string `json:"text"`
}
