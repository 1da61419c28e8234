package scanners

import (
	"regexp"
	"strings"

	"github.com/JA3G3R/modescan/types"
)

// Markers shared by the line rules and the diagnostic checks.
const (
	toggleWidgetMarker = "st.radio"
	sessionStateMarker = "session_state"
)

var (
	hardcodedDemoRe   = regexp.MustCompile(`demo_mode\s*=\s*True`)
	directDemoCheckRe = regexp.MustCompile(`if.*["']Demo Mode["']`)
	viewModeCompareRe = regexp.MustCompile(`\bview_mode\s*==`)
)

type lineRule struct {
	kind  types.IssueKind
	match func(line string) bool
}

// lineRules run in order against every line; each one is independent.
var lineRules = []lineRule{
	{kind: types.KindLocalToggle, match: isLocalToggle},
	{kind: types.KindHardcodedDemo, match: isHardcodedDemo},
	{kind: types.KindDirectDemoCheck, match: isDirectDemoCheck},
	{kind: types.KindViewModeVar, match: usesViewModeVar},
}

func isLocalToggle(line string) bool {
	return strings.Contains(line, toggleWidgetMarker) &&
		(strings.Contains(line, "Demo Mode") || strings.Contains(line, "Real Mode"))
}

func isHardcodedDemo(line string) bool {
	return hardcodedDemoRe.MatchString(line)
}

func isDirectDemoCheck(line string) bool {
	return directDemoCheckRe.MatchString(line) && !strings.Contains(line, sessionStateMarker)
}

func usesViewModeVar(line string) bool {
	return viewModeCompareRe.MatchString(line) && !strings.Contains(line, sessionStateMarker)
}

// ClassifyLine returns one issue per rule that matches line. A line can
// produce several issues.
func ClassifyLine(lineNum int, line string) []types.Issue {
	var out []types.Issue
	for _, r := range lineRules {
		if r.match(line) {
			out = append(out, types.Issue{
				Line: lineNum,
				Kind: r.kind,
				Text: strings.TrimSpace(line),
			})
		}
	}
	return out
}
