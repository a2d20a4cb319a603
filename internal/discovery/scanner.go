package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scanner scans for plan files in a directory
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// IsPlanFile reports whether the file name is a plan file: either the
// canonical "tdep.yaml" or a named plan like "smoke.tdep.yaml".
func IsPlanFile(name string) bool {
	return name == "tdep.yaml" || strings.HasSuffix(name, ".tdep.yaml")
}

// Scan finds all plan files in the given root directory
func (s *Scanner) Scan(root string) ([]string, error) {
	var plans []string

	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan path does not exist: %s", root)
	}
	if !info.IsDir() {
		if IsPlanFile(info.Name()) {
			return []string{root}, nil
		}
		return nil, fmt.Errorf("not a plan file: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}

			if s.skipDirs[name] {
				return filepath.SkipDir
			}

			return nil
		}

		if IsPlanFile(d.Name()) {
			plans = append(plans, path)
		}

		return nil
	})

	return plans, err
}
