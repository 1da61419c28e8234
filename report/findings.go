package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/JA3G3R/modescan/types"
)

const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// CheckFormat rejects output formats outside allowed.
func CheckFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (want one of %v)", format, allowed)
}

// PrintFindings renders flattened scanner findings as a table or as JSON.
func PrintFindings(w io.Writer, findings []types.Finding, format string) error {
	switch format {
	case FormatJSON:
		if findings == nil {
			findings = []types.Finding{}
		}
		return writeJSON(w, findings)
	default:
		tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SEVERITY\tRULE\tFILE:LINE\tDETAILS")
		for _, f := range findings {
			fmt.Fprintf(tw, "%s\t%s\t%s:%d\t%s\n",
				f.Severity, f.Rule, f.File, f.Line, f.Details)
		}
		return tw.Flush()
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
