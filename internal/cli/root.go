// Package cli implements the skyline command line.
package cli

import (
	"fmt"
	"slices"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "table" | "json" | "yaml"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"table", "json", "yaml"}

// NewRootCommand creates the root command for the skyline CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "skyline",
		Short:         "Compute building skylines",
		Long:          "Compute the outline of a set of rectangular buildings, from files or over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Verbose {
				log.SetLevel(log.DEBUG)
			} else {
				log.SetLevel(log.WARN)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "table", "output format (table|json|yaml)")

	cmd.AddCommand(NewComputeCommand(opts))
	cmd.AddCommand(NewServeCommand())

	return cmd
}
