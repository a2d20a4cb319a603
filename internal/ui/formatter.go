package ui

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"tdep/internal/config"
	"tdep/internal/domain"
	"tdep/internal/plan"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintMetaStats reads and displays meta statistics from the JSON results file
func (f *Formatter) PrintMetaStats() error {
	outputPath := f.config.GetOutputPath()

	// Read JSON file
	data, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	// Parse JSON
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	meta := output.Meta

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Run Statistics                            ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	// Print table
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Units")
	color.White("%-27d │\n", meta.TotalUnits)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Units")
	color.Green("%-27d │\n", meta.PassedUnits)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Units")
	color.Red("%-27d │\n", meta.FailedUnits)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Skipped Units")
	color.Yellow("%-27d │\n", meta.SkippedUnits)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Test Cases")
	color.Red("%-27d │\n", meta.FailedTestCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	// Print summary line
	fmt.Println()
	switch {
	case meta.FailedUnits == 0 && meta.SkippedUnits == 0:
		color.Green("✓ All units passed!")
	case meta.FailedUnits == 0:
		color.Yellow("✓ %d unit(s) passed, %d skipped", meta.PassedUnits, meta.SkippedUnits)
		f.printNonPassing(output.Details)
	default:
		color.Red("✗ %d unit(s) failed with %d test case failure(s), %d skipped",
			meta.FailedUnits, meta.FailedTestCases, meta.SkippedUnits)
		fmt.Println()
		f.printNonPassing(output.Details)
	}

	return nil
}

// printNonPassing prints failed units with their cases and skipped units
// with the dependency that gated them.
func (f *Formatter) printNonPassing(details []domain.UnitDetail) {
	for i, d := range details {
		connector := "├──"
		childPrefix := "│   "
		if i == len(details)-1 {
			connector = "└──"
			childPrefix = "    "
		}

		switch d.Outcome {
		case domain.OutcomeSkipped:
			color.Yellow("%s %s (skipped: %s)", connector, d.UnitID, d.SkipReason)
		default:
			color.Red("%s %s", connector, d.UnitID)
			for j, c := range d.Cases {
				caseConnector := "├──"
				if j == len(d.Cases)-1 {
					caseConnector = "└──"
				}
				loc := ""
				if c.File != "" {
					loc = fmt.Sprintf(" (%s:%d)", c.File, c.Line)
				}
				fmt.Printf("%s%s %s%s\n", childPrefix, caseConnector, color.RedString(c.TestName), loc)
			}
		}
	}
}

// PrintUnitList prints the plan's units, optionally with their dependencies.
func (f *Formatter) PrintUnitList(units []plan.Unit, showDeps bool) error {
	color.Green("Found %d unit(s):\n", len(units))

	for i, unit := range units {
		connector := "├──"
		childPrefix := "│   "
		if i == len(units)-1 {
			connector = "└──"
			childPrefix = "    "
		}

		label := unit.ID()
		if unit.Record.Name != "" {
			label = fmt.Sprintf("%s (as %s)", label, unit.Record.Name)
		}
		color.Cyan("%s %s", connector, label)

		if !showDeps || len(unit.Record.Depends) == 0 {
			continue
		}
		for j, dep := range unit.Record.Depends {
			depConnector := "├──"
			if j == len(unit.Record.Depends)-1 {
				depConnector = "└──"
			}
			suffix := ""
			if j == 0 && unit.Record.Mode != "all" {
				suffix = color.WhiteString(" [%s]", unit.Record.Mode)
			}
			fmt.Printf("%s%s %s%s\n", childPrefix, depConnector, color.YellowString("depends on %s", dep), suffix)
		}
	}
	return nil
}

// PrintOrder prints the resolved execution order.
func (f *Formatter) PrintOrder(units []plan.Unit) error {
	color.Green("Execution order (%d unit(s)):\n", len(units))
	for i, unit := range units {
		fmt.Printf("%s %s\n", color.WhiteString("%3d.", i+1), color.CyanString(unit.ID()))
	}
	return nil
}
