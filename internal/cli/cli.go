// Package cli implements the hubver command-line interface.
//
// hubver walks every collection published on an Automation Hub
// compatible catalog across the validated and certified content
// channels, prints the minimum required Ansible core version of each
// collection's latest release, and optionally writes the results to an
// xlsx workbook.
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context so the hub client can trace its
// requests.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"hubver/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "hubver"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "hubver reports the minimum Ansible core version of hub collections",
		Long:         `hubver walks all collections available from an Automation Hub compatible catalog, in both the validated and the certified content channels, and reports the minimum required Ansible core version of each collection's latest available release.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.exportCommand())
	root.AddCommand(c.completionCommand())

	return root
}
