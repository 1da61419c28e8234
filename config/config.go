package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/JA3G3R/modescan/report"
	"github.com/JA3G3R/modescan/scanners"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is read from the --folder directory when no --config is given.
const DefaultFile = ".modescan.hcl"

var DefaultGuides = []string{
	"DEMO_LIVE_MODE_FIX_GUIDE.md",
	"modules_resource_inventory_PATCH.md",
	"resource_dependencies_enhanced_PATCH.md",
}

// Settings are the resolved values used by the commands.
type Settings struct {
	Suffix    string   // file name suffix the scanner picks up
	LineWidth int      // display columns of a flagged line shown in reports
	Guides    []string // documents listed after a report with issues
	Target    string   // file checked by the diagnostic
}

func Default() Settings {
	return Settings{
		Suffix:    scanners.DefaultSuffix,
		LineWidth: report.DefaultLineWidth,
		Guides:    append([]string(nil), DefaultGuides...),
		Target:    scanners.DefaultTarget,
	}
}

// ---------------------------
// HCL file layout
// ---------------------------

type fileConfig struct {
	Scan     *scanBlock     `hcl:"scan,block"`
	Diagnose *diagnoseBlock `hcl:"diagnose,block"`
}

type scanBlock struct {
	Suffix    string    `hcl:"suffix,optional"`
	LineWidth int       `hcl:"line_width,optional"`
	Guides    *[]string `hcl:"guides,optional"`
}

type diagnoseBlock struct {
	Target string `hcl:"target,optional"`
}

// Load returns the defaults overlaid with the HCL file at path. When
// required is false a missing file is not an error.
func Load(path string, required bool) (Settings, error) {
	s := Default()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return s, nil
		}
		return s, fmt.Errorf("config %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return s, fmt.Errorf("parse error in %s: %s", path, diags.Error())
	}

	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return s, fmt.Errorf("decode error in %s: %s", path, diags.Error())
	}

	if fc.Scan != nil {
		if fc.Scan.Suffix != "" {
			s.Suffix = fc.Scan.Suffix
		}
		if fc.Scan.LineWidth < 0 {
			return s, fmt.Errorf("config %s: line_width must not be negative", path)
		}
		if fc.Scan.LineWidth > 0 {
			s.LineWidth = fc.Scan.LineWidth
		}
		if fc.Scan.Guides != nil {
			s.Guides = *fc.Scan.Guides
		}
	}
	if fc.Diagnose != nil && fc.Diagnose.Target != "" {
		s.Target = fc.Diagnose.Target
	}
	return s, nil
}
