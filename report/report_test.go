package report

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/JA3G3R/modescan/types"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

var sampleIssues = types.IssuesByFile{
	"b_dependencies.py": {
		{Line: 7, Kind: types.KindDirectDemoCheck, Text: `if view_mode == "Demo Mode":`},
		{Line: 7, Kind: types.KindViewModeVar, Text: `if view_mode == "Demo Mode":`},
	},
	"a_inventory.py": {
		{Line: 3, Kind: types.KindLocalToggle, Text: `view_mode = st.radio("View", ["Demo Mode", "Real Mode"])`},
		{Line: 12, Kind: types.KindHardcodedDemo, Text: "demo_mode = True"},
	},
}

func TestPrintScanReport_NoIssues(t *testing.T) {
	var buf bytes.Buffer
	PrintScanReport(&buf, types.IssuesByFile{}, DefaultLineWidth)
	assert.Equal(t, "✅ No demo mode issues found!\n", buf.String())
}

func TestPrintScanReport(t *testing.T) {
	var buf bytes.Buffer
	PrintScanReport(&buf, sampleIssues, DefaultLineWidth)
	out := buf.String()

	assert.Contains(t, out, "DEMO MODE ISSUES FOUND")
	assert.Contains(t, out, "Found 4 issues across 2 files\n")
	assert.Contains(t, out, "  Line    3 | Local Demo/Real Mode Toggle\n")
	assert.Contains(t, out, "  Line   12 | Hardcoded demo_mode = True\n           | demo_mode = True\n")
	assert.Contains(t, out, "  Line    7 | Uses view_mode variable\n")
	assert.Equal(t, 1, strings.Count(out, "📄 a_inventory.py"))

	a := strings.Index(out, "📄 a_inventory.py")
	b := strings.Index(out, "📄 b_dependencies.py")
	assert.Less(t, a, b)

	actions := out[strings.Index(out, "📋 RECOMMENDED ACTIONS:"):]
	assert.Contains(t, actions, "  a_inventory.py:\n    • Remove local st.radio toggle\n")
	assert.Contains(t, actions, "    • Add method: is_demo_mode() to check session state\n")
	assert.Equal(t, 1, strings.Count(actions, "Replace view_mode checks with session_state.mode checks"))
	assert.Equal(t, 1, strings.Count(actions, "  b_dependencies.py:\n"))
}

func TestPrintScanReport_TruncatesLineText(t *testing.T) {
	long := "demo_mode = True  # " + strings.Repeat("x", 100)
	var buf bytes.Buffer
	PrintScanReport(&buf, types.IssuesByFile{"m.py": {{Line: 1, Kind: types.KindHardcodedDemo, Text: long}}}, 70)

	assert.Contains(t, buf.String(), "           | "+long[:70]+"\n")
	assert.NotContains(t, buf.String(), long[:71])
}

func TestPrintGuides(t *testing.T) {
	var buf bytes.Buffer
	PrintGuides(&buf, []string{"GUIDE.md", "PATCH.md"})
	assert.Contains(t, buf.String(), "💡 For detailed fix instructions, see:\n   - GUIDE.md\n   - PATCH.md\n")

	buf.Reset()
	PrintGuides(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestPrintFindings_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintFindings(&buf, sampleIssues.Findings(), FormatJSON))

	var got []types.Finding
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 4)
	assert.Equal(t, "a_inventory.py", got[0].File)
	assert.Equal(t, "LOCAL_TOGGLE", got[0].Rule)
	assert.Equal(t, "HIGH", got[0].Severity)
	assert.Equal(t, "VIEW_MODE_VAR", got[3].Rule)
}

func TestPrintFindings_EmptyJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintFindings(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestPrintFindings_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintFindings(&buf, sampleIssues.Findings(), FormatTable))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "SEVERITY"))
	assert.Contains(t, lines[2], "a_inventory.py:12")
}

func TestCheckFormat(t *testing.T) {
	assert.NoError(t, CheckFormat("json", FormatText, FormatJSON))
	assert.Error(t, CheckFormat("table", FormatText, FormatJSON))
}
