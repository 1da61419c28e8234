package report

import (
	"bytes"
	"testing"

	"github.com/JA3G3R/modescan/types"
	"github.com/stretchr/testify/assert"
)

func diagnosis(local, global, cond types.CheckStatus) types.Diagnosis {
	return types.Diagnosis{
		File:        "src/modules_resource_inventory.py",
		LocalToggle: types.CheckResult{Title: "Local 'view_mode' variable", Status: local},
		GlobalMode:  types.CheckResult{Title: "Global mode from session_state", Status: global},
		Conditional: types.CheckResult{Title: "Conditional logic", Status: cond},
	}
}

func TestPrintDiagnosis_LocalToggle(t *testing.T) {
	d := diagnosis(types.CheckFail, types.CheckSkipped, types.CheckSkipped)
	d.LocalToggle.Matches = []types.LineMatch{{Line: 3, Text: "view_mode = st.radio(...)", Legacy: true}}

	var buf bytes.Buffer
	PrintDiagnosis(&buf, d)
	out := buf.String()

	assert.Contains(t, out, "DIAGNOSTIC REPORT - modules_resource_inventory.py\n")
	assert.Contains(t, out, "   ❌ FAIL: Local toggle still exists (NOT FIXED)\n")
	assert.Contains(t, out, "   → Found at line 3\n   → Line content: view_mode = st.radio(...)\n")
	assert.NotContains(t, out, "CHECK 2")
	assert.NotContains(t, out, "FIX WAS NOT CORRECTLY APPLIED")
}

func TestPrintDiagnosis_Passed(t *testing.T) {
	d := diagnosis(types.CheckPass, types.CheckPass, types.CheckPass)
	d.GlobalMode.Matches = []types.LineMatch{{Line: 4, Text: "global_mode = st.session_state.get('mode', 'Demo')"}}
	d.Conditional.Matches = []types.LineMatch{{Line: 5, Text: "if global_mode == 'Demo':"}}
	d.Completed, d.Passed = true, true

	var buf bytes.Buffer
	PrintDiagnosis(&buf, d)
	out := buf.String()

	assert.Contains(t, out, "   ✅ PASS: Local toggle removed\n")
	assert.Contains(t, out, "   → Found at line 4\n")
	assert.Contains(t, out, "   ✅ PASS: Correct conditional at line 5\n   → Line: if global_mode == 'Demo':\n")
	assert.Contains(t, out, "   ✅ Conditional is correct\n")
	assert.Contains(t, out, "✅ FIX APPEARS TO BE CORRECTLY APPLIED!\n")
}

func TestPrintDiagnosis_NoConditional(t *testing.T) {
	d := diagnosis(types.CheckPass, types.CheckPass, types.CheckWarn)
	d.Completed = true

	var buf bytes.Buffer
	PrintDiagnosis(&buf, d)
	out := buf.String()

	assert.Contains(t, out, "   ⚠️  WARNING: Could not find conditional check\n")
	assert.Contains(t, out, "❌ FIX WAS NOT CORRECTLY APPLIED!\n")
	assert.Contains(t, out, "1. Download modules_resource_inventory_FIXED.py\n")
	assert.Contains(t, out, "2. Copy it over your current modules_resource_inventory.py\n")
}

func TestPrintDiagnosis_OldConditional(t *testing.T) {
	d := diagnosis(types.CheckPass, types.CheckPass, types.CheckFail)
	d.Conditional.Matches = []types.LineMatch{{Line: 9, Text: `if view_mode == "Demo Mode":`, Legacy: true}}

	var buf bytes.Buffer
	PrintDiagnosis(&buf, d)
	out := buf.String()

	assert.Contains(t, out, "   ❌ FAIL: Old conditional found at line 9\n")
	assert.Contains(t, out, "   ❌ Old conditional still exists!\n")
	assert.NotContains(t, out, "FIX WAS NOT CORRECTLY APPLIED")
}

func TestPrintDiagnosticStatus(t *testing.T) {
	var buf bytes.Buffer
	PrintDiagnosticStatus(&buf, true)
	assert.Contains(t, buf.String(), "STATUS: Ready to test\n")

	buf.Reset()
	PrintDiagnosticStatus(&buf, false)
	assert.Contains(t, buf.String(), "STATUS: Needs fix reapplication\n")
}

func TestPrintMissingTarget(t *testing.T) {
	var buf bytes.Buffer
	PrintMissingTarget(&buf, "modules_resource_inventory.py", "/work")
	assert.Equal(t,
		"❌ ERROR: modules_resource_inventory.py not found in current directory\n"+
			"   Current directory: /work\n"+
			"   Run this command from your project root!\n",
		buf.String())
}
