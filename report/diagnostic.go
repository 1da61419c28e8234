package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/JA3G3R/modescan/types"
	"github.com/fatih/color"
)

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)

	diagRule = strings.Repeat("=", 70)
)

func PrintDiagnosticIntro(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Running diagnostic...")
	fmt.Fprintln(w)
}

// PrintMissingTarget explains that the file to verify does not exist in dir.
func PrintMissingTarget(w io.Writer, name, dir string) {
	failColor.Fprintf(w, "❌ ERROR: %s not found in current directory\n", name)
	fmt.Fprintf(w, "   Current directory: %s\n", dir)
	fmt.Fprintln(w, "   Run this command from your project root!")
}

// PrintDiagnosis writes the per-check report. Output stops after the first
// failing check, and the summary only appears once every check has run.
func PrintDiagnosis(w io.Writer, d types.Diagnosis) {
	name := filepath.Base(d.File)

	fmt.Fprintln(w, diagRule)
	fmt.Fprintf(w, "DIAGNOSTIC REPORT - %s\n", name)
	fmt.Fprintln(w, diagRule)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "CHECK 1: %s\n", d.LocalToggle.Title)
	if d.LocalToggle.Status == types.CheckFail {
		failColor.Fprintln(w, "   ❌ FAIL: Local toggle still exists (NOT FIXED)")
		fmt.Fprintln(w, "   → The file was NOT updated correctly")
		for _, m := range d.LocalToggle.Matches {
			fmt.Fprintf(w, "   → Found at line %d\n", m.Line)
			fmt.Fprintf(w, "   → Line content: %s\n", m.Text)
		}
		return
	}
	passColor.Fprintln(w, "   ✅ PASS: Local toggle removed")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "CHECK 2: %s\n", d.GlobalMode.Title)
	if d.GlobalMode.Status == types.CheckFail {
		failColor.Fprintln(w, "   ❌ FAIL: NOT using session_state.get('mode')")
		fmt.Fprintln(w, "   → The fix was NOT applied")
		return
	}
	passColor.Fprintln(w, "   ✅ PASS: Using global mode from session_state")
	for _, m := range d.GlobalMode.Matches {
		fmt.Fprintf(w, "   → Found at line %d\n", m.Line)
		fmt.Fprintf(w, "   → Line: %s\n", m.Text)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "CHECK 3: %s\n", d.Conditional.Title)
	for _, m := range d.Conditional.Matches {
		if m.Legacy {
			failColor.Fprintf(w, "   ❌ FAIL: Old conditional found at line %d\n", m.Line)
		} else {
			passColor.Fprintf(w, "   ✅ PASS: Correct conditional at line %d\n", m.Line)
		}
		fmt.Fprintf(w, "   → Line: %s\n", m.Text)
	}
	switch d.Conditional.Status {
	case types.CheckFail:
		failColor.Fprintln(w, "   ❌ Old conditional still exists!")
		return
	case types.CheckPass:
		passColor.Fprintln(w, "   ✅ Conditional is correct")
	default:
		warnColor.Fprintln(w, "   ⚠️  WARNING: Could not find conditional check")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, diagRule)

	if d.Passed {
		printFixApplied(w)
	} else {
		printFixMissing(w, name)
	}
}

func printFixApplied(w io.Writer) {
	passColor.Fprintln(w, "✅ FIX APPEARS TO BE CORRECTLY APPLIED!")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "If you're still seeing demo data in Live mode, the issue is likely:")
	fmt.Fprintln(w, "1. Streamlit cache needs clearing")
	fmt.Fprintln(w, "2. Browser cache needs clearing")
	fmt.Fprintln(w, "3. Sidebar isn't setting mode correctly")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Try these steps:")
	fmt.Fprintln(w, "  1. Stop Streamlit (Ctrl+C)")
	fmt.Fprintln(w, "  2. Run: rm -rf ~/.streamlit/cache/")
	fmt.Fprintln(w, "  3. Run: find . -name '__pycache__' -type d -exec rm -rf {} +")
	fmt.Fprintln(w, "  4. Restart Streamlit")
	fmt.Fprintln(w, "  5. Hard refresh browser (Ctrl+Shift+R)")
}

func printFixMissing(w io.Writer, name string) {
	ext := filepath.Ext(name)
	fixed := strings.TrimSuffix(name, ext) + "_FIXED" + ext

	failColor.Fprintln(w, "❌ FIX WAS NOT CORRECTLY APPLIED!")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The file still has the old code. You need to:")
	fmt.Fprintf(w, "1. Download %s\n", fixed)
	fmt.Fprintf(w, "2. Copy it over your current %s\n", name)
	fmt.Fprintln(w, "3. Run this command again to verify")
}

// PrintDiagnosticStatus writes the closing status block.
func PrintDiagnosticStatus(w io.Writer, passed bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, diagRule)
	if passed {
		passColor.Fprintln(w, "STATUS: Ready to test")
	} else {
		failColor.Fprintln(w, "STATUS: Needs fix reapplication")
	}
	fmt.Fprintln(w, diagRule)
	fmt.Fprintln(w)
}

func PrintDiagnosisJSON(w io.Writer, d types.Diagnosis) error {
	return writeJSON(w, d)
}
