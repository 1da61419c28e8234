package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/JA3G3R/modescan/types"
	"github.com/mattn/go-runewidth"
)

// DefaultLineWidth is how many display columns of a flagged line are shown.
const DefaultLineWidth = 70

var (
	wideRule = strings.Repeat("=", 80)
	thinRule = strings.Repeat("-", 80)
)

// PrintScanBanner writes the heading shown before a text scan report.
func PrintScanBanner(w io.Writer, dir string) {
	fmt.Fprintln(w, "🔍 CloudIDP Demo/Live Mode Issue Scanner")
	fmt.Fprintln(w, wideRule)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Scanning directory: %s\n", dir)
	fmt.Fprintln(w)
}

// PrintScanReport writes every issue grouped by file, then the recommended
// actions for each file. Files are listed in name order.
func PrintScanReport(w io.Writer, issuesByFile types.IssuesByFile, lineWidth int) {
	if len(issuesByFile) == 0 {
		passColor.Fprintln(w, "✅ No demo mode issues found!")
		return
	}

	fmt.Fprintln(w, wideRule)
	fmt.Fprintln(w, "DEMO MODE ISSUES FOUND")
	fmt.Fprintln(w, wideRule)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Found %d issues across %d files\n\n", issuesByFile.Total(), len(issuesByFile))

	files := issuesByFile.Files()
	for _, file := range files {
		fmt.Fprintf(w, "\n📄 %s\n", file)
		fmt.Fprintln(w, thinRule)
		for _, issue := range issuesByFile[file] {
			fmt.Fprintf(w, "  Line %4d | %s\n", issue.Line, issue.Kind.Label())
			fmt.Fprintf(w, "           | %s\n", truncate(issue.Text, lineWidth))
		}
	}

	fmt.Fprint(w, "\n"+wideRule+"\n")
	fmt.Fprint(w, "\n📋 RECOMMENDED ACTIONS:\n\n")

	for _, file := range files {
		kinds := issuesByFile.Kinds(file)

		if kinds[types.KindLocalToggle] {
			fmt.Fprintf(w, "  %s:\n", file)
			fmt.Fprintln(w, "    • Remove local st.radio toggle")
			fmt.Fprintln(w, "    • Replace with: st.session_state.get('mode', 'Demo')")
			fmt.Fprintln(w)
		}
		if kinds[types.KindHardcodedDemo] {
			fmt.Fprintf(w, "  %s:\n", file)
			fmt.Fprintln(w, "    • Remove hardcoded demo_mode = True")
			fmt.Fprintln(w, "    • Add method: is_demo_mode() to check session state")
			fmt.Fprintln(w)
		}
		if kinds[types.KindDirectDemoCheck] || kinds[types.KindViewModeVar] {
			fmt.Fprintf(w, "  %s:\n", file)
			fmt.Fprintln(w, "    • Replace view_mode checks with session_state.mode checks")
			fmt.Fprintln(w)
		}
	}
}

// PrintGuides points at the documents describing the fix in detail.
func PrintGuides(w io.Writer, guides []string) {
	if len(guides) == 0 {
		return
	}
	fmt.Fprint(w, "\n"+wideRule+"\n")
	fmt.Fprint(w, "\n💡 For detailed fix instructions, see:\n")
	for _, g := range guides {
		fmt.Fprintf(w, "   - %s\n", g)
	}
	fmt.Fprintln(w)
}

func PrintSnippets(w io.Writer, snippets []string) {
	for i, s := range snippets {
		fmt.Fprintf(w, "# --- Snippet %d of %d ---", i+1, len(snippets))
		fmt.Fprintln(w, s)
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "")
}
