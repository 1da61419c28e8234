package scanners

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/JA3G3R/modescan/types"
)

// DefaultTarget is the file the demo mode fix is verified in.
const DefaultTarget = "modules_resource_inventory.py"

var ErrTargetNotFound = errors.New("target file not found")

const (
	oldToggle          = "view_mode = st.radio"
	oldConditional     = `if view_mode == "Demo Mode"`
	globalLookupSingle = "session_state.get('mode'"
	globalLookupDouble = `session_state.get("mode"`
	newSessionCond     = "if st.session_state.get('mode'"
	newGlobalCond      = "if global_mode =="
)

const (
	titleLocalToggle = "Local 'view_mode' variable"
	titleGlobalMode  = "Global mode from session_state"
	titleConditional = "Conditional logic"
)

// CheckFixApplied reads path once and evaluates it. A missing file yields
// an error wrapping ErrTargetNotFound.
func CheckFixApplied(path string) (types.Diagnosis, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.Diagnosis{File: path}, fmt.Errorf("%s: %w", path, ErrTargetNotFound)
		}
		return types.Diagnosis{File: path}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return types.Diagnosis{File: path}, fmt.Errorf("reading %s: %w", path, err)
	}

	d := EvaluateFix(string(data))
	d.File = path
	return d, nil
}

// EvaluateFix runs the three checks in order. The first failing check stops
// the evaluation and later checks are left SKIPPED.
func EvaluateFix(content string) types.Diagnosis {
	lines := strings.Split(content, "\n")
	d := types.Diagnosis{
		LocalToggle: types.CheckResult{Title: titleLocalToggle, Status: types.CheckSkipped},
		GlobalMode:  types.CheckResult{Title: titleGlobalMode, Status: types.CheckSkipped},
		Conditional: types.CheckResult{Title: titleConditional, Status: types.CheckSkipped},
	}

	// CHECK 1
	if strings.Contains(content, oldToggle) {
		d.LocalToggle.Status = types.CheckFail
		for i, line := range lines {
			if strings.Contains(line, oldToggle) {
				d.LocalToggle.Matches = append(d.LocalToggle.Matches, match(i, line, true))
			}
		}
		return d
	}
	d.LocalToggle.Status = types.CheckPass

	// CHECK 2
	if !hasGlobalLookup(content) {
		d.GlobalMode.Status = types.CheckFail
		return d
	}
	d.GlobalMode.Status = types.CheckPass
	for i, line := range lines {
		if hasGlobalLookup(line) {
			d.GlobalMode.Matches = append(d.GlobalMode.Matches, match(i, line, false))
			break
		}
	}

	// CHECK 3
	foundWrong, foundCorrect := false, false
	for i, line := range lines {
		if strings.Contains(line, oldConditional) {
			d.Conditional.Matches = append(d.Conditional.Matches, match(i, line, true))
			foundWrong = true
		}
		if strings.Contains(line, newSessionCond) || strings.Contains(line, newGlobalCond) {
			d.Conditional.Matches = append(d.Conditional.Matches, match(i, line, false))
			foundCorrect = true
		}
	}

	switch {
	case foundWrong:
		d.Conditional.Status = types.CheckFail
		return d
	case foundCorrect:
		d.Conditional.Status = types.CheckPass
	default:
		d.Conditional.Status = types.CheckWarn
	}

	d.Completed = true
	d.Passed = foundCorrect
	return d
}

func hasGlobalLookup(s string) bool {
	return strings.Contains(s, globalLookupSingle) || strings.Contains(s, globalLookupDouble)
}

func match(idx int, line string, legacy bool) types.LineMatch {
	return types.LineMatch{Line: idx + 1, Text: strings.TrimSpace(line), Legacy: legacy}
}
