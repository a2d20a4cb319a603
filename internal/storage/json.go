package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tdep/internal/domain"
)

// Save writes run results and per-unit details to the configured JSON output file.
func (s *JSONStorage) Save(results []domain.UnitResult, details []domain.UnitDetail, duration time.Duration) error {
	var passed, failed, skipped, failedCases int
	for _, r := range results {
		switch r.Outcome {
		case domain.OutcomePassed:
			passed++
		case domain.OutcomeSkipped:
			skipped++
		default:
			failed++
		}
	}
	for _, d := range details {
		// The parsed count covers non-verbose output where no cases could
		// be extracted.
		if d.FailedCases > len(d.Cases) {
			failedCases += d.FailedCases
		} else {
			failedCases += len(d.Cases)
		}
	}

	output := domain.RunOutput{
		Meta: domain.RunMeta{
			TotalUnits:      len(results),
			PassedUnits:     passed,
			FailedUnits:     failed,
			SkippedUnits:    skipped,
			FailedTestCases: failedCases,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: details,
	}
	return s.SaveOutput(&output)
}

// Load reads the last run results from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
