package scanners

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/JA3G3R/modescan/types"
	"go.uber.org/zap"
)

const DefaultSuffix = ".py"

var errInvalidUTF8 = errors.New("file is not valid UTF-8")

// DemoModeScanner looks for demo/live mode toggle problems in the source
// files of a single directory. Subdirectories are not visited.
type DemoModeScanner struct {
	Dir    string
	Suffix string // file name suffix to scan, e.g. ".py"

	logger *zap.Logger
}

func NewDemoModeScanner(dir string, logger *zap.Logger) *DemoModeScanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DemoModeScanner{Dir: dir, Suffix: DefaultSuffix, logger: logger}
}

// ScanFiles scans every matching file in the directory. Files that cannot
// be read are logged and skipped; only a directory that cannot be listed
// fails the scan.
func (s *DemoModeScanner) ScanFiles() (types.IssuesByFile, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.Dir, err)
	}

	issuesByFile := types.IssuesByFile{}
	for _, entry := range entries { // sorted by name
		name := entry.Name()
		if !strings.HasSuffix(name, s.Suffix) {
			continue
		}

		issues, err := s.ScanFile(filepath.Join(s.Dir, name))
		if err != nil {
			s.logger.Warn("Error scanning file", zap.String("file", name), zap.Error(err))
			continue
		}
		s.logger.Debug("Scanned file", zap.String("file", name), zap.Int("issues", len(issues)))

		if len(issues) > 0 {
			issuesByFile[name] = issues
		}
	}
	return issuesByFile, nil
}

// ScanFile classifies every line of the file at path.
func (s *DemoModeScanner) ScanFile(path string) ([]types.Issue, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	var issues []types.Issue
	for i, line := range lines {
		issues = append(issues, ClassifyLine(i+1, line)...)
	}
	return issues, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, errInvalidUTF8
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}
