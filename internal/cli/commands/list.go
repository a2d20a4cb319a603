package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tdep/internal/config"
	"tdep/internal/discovery"
	"tdep/internal/execution"
	"tdep/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	p, err := resolvePlan(lc.config, lc.scanner)
	if err != nil {
		return err
	}

	// Filter units
	units := lc.filter.FilterByName(p.Units, lc.config.Flags.Filter)

	if len(units) == 0 {
		color.Yellow("No units found")
		return nil
	}

	if lc.config.Flags.Order {
		ordered, err := execution.OrderUnits(units)
		if err != nil {
			return err
		}
		return lc.formatter.PrintOrder(ordered)
	}

	return lc.formatter.PrintUnitList(units, lc.config.Flags.Deps)
}
