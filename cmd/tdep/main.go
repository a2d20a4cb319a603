package main

import (
	"fmt"
	"os"

	"tdep/internal/cli"
	"tdep/internal/cli/commands"
	"tdep/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "tdep",
		Short:   "Dependency-gated test runner",
		Long:    `A test processor with inter-unit dependencies. Declare units and their prerequisites in a plan file; a unit is skipped when a unit it depends on failed, was skipped, or never ran.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
