package parser

import (
	"regexp"
	"strconv"
	"strings"

	"tdep/internal/domain"
)

// GoTestParser parses `go test` output
type GoTestParser struct{}

// NewGoTestParser creates a new GoTestParser
func NewGoTestParser() *GoTestParser {
	return &GoTestParser{}
}

var (
	resultLine   = regexp.MustCompile(`^\s*--- (PASS|FAIL|SKIP): (\S+)`)
	fileLineRef  = regexp.MustCompile(`^\s+([\w./-]+\.go):(\d+): ?(.*)$`)
	okPkgLine    = regexp.MustCompile(`(?m)^ok\s+\S+`)
	failPkgLine  = regexp.MustCompile(`(?m)^FAIL(\s+\S+)?`)
	runBoundLine = regexp.MustCompile(`^(=== RUN|=== CONT|=== PAUSE|PASS$|FAIL|ok\s)`)
)

// ParseTestCounts extracts per-case counts from the unit's output. Verbose
// output yields exact counts; otherwise the package result lines are used,
// falling back to one case per unit.
func (p *GoTestParser) ParseTestCounts(result domain.UnitResult) (passed, failed, skipped int) {
	for _, line := range strings.Split(result.Output, "\n") {
		m := resultLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		switch m[1] {
		case "PASS":
			passed++
		case "FAIL":
			failed++
		case "SKIP":
			skipped++
		}
	}
	if passed > 0 || failed > 0 || skipped > 0 {
		return passed, failed, skipped
	}

	// Non-verbose output: count package result lines.
	passed = len(okPkgLine.FindAllString(result.Output, -1))
	failed = len(failPkgLine.FindAllString(result.Output, -1))
	if passed > 0 || failed > 0 {
		return passed, failed, 0
	}

	// Fallback: one "case" per unit
	if result.Outcome == domain.OutcomePassed {
		return 1, 0, 0
	}
	return 0, 1, 0
}

// ParseFailures extracts failed test cases from the unit's output. In
// verbose output a test's log lines sit between its "=== RUN" line and its
// "--- FAIL:" line; the first file:line reference in that block fills in the
// location and the remaining lines the message.
func (p *GoTestParser) ParseFailures(result domain.UnitResult) []domain.FailureCase {
	var failures []domain.FailureCase
	lines := strings.Split(result.Output, "\n")

	// Start of the log block for each test name, from its === RUN line.
	blockStart := make(map[string]int)

	for i, line := range lines {
		if runBoundLine.MatchString(line) {
			fields := strings.Fields(line)
			if len(fields) >= 3 && fields[0] == "===" {
				blockStart[fields[2]] = i + 1
			}
			continue
		}

		m := resultLine.FindStringSubmatch(line)
		if m == nil || m[1] != "FAIL" {
			continue
		}

		failure := domain.FailureCase{TestName: m[2]}
		var message []string

		for j := blockStart[m[2]]; j > 0 && j < i; j++ {
			blockLine := lines[j]
			if runBoundLine.MatchString(blockLine) || resultLine.MatchString(blockLine) {
				continue
			}
			if ref := fileLineRef.FindStringSubmatch(blockLine); ref != nil {
				if failure.File == "" {
					failure.File = ref[1]
					failure.Line, _ = strconv.Atoi(ref[2])
				}
				if ref[3] != "" {
					message = append(message, ref[3])
				}
				continue
			}
			if trimmed := strings.TrimSpace(blockLine); trimmed != "" {
				message = append(message, trimmed)
			}
		}

		failure.Message = strings.Join(message, "\n")
		failures = append(failures, failure)
	}

	return failures
}
