package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"skyline/internal/engine"
	"skyline/internal/input"
	"skyline/internal/skyline"
)

type computeOptions struct {
	*RootOptions
	Summary bool
}

// NewComputeCommand creates the compute command.
func NewComputeCommand(root *RootOptions) *cobra.Command {
	opts := &computeOptions{RootOptions: root}

	cmd := &cobra.Command{
		Use:   "compute [file|-]",
		Short: "Compute the skyline of a building file",
		Long: `Compute the skyline of the buildings in a file.

Files ending in .csv are read as columns with the header "left,right,height".
Anything else, including "-" for stdin, is read as JSON: [[left, right, height], ...].`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := "-"
			if len(args) == 1 {
				src = args[0]
			}
			return runCompute(cmd, opts, src)
		},
	}

	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "include outline statistics")

	return cmd
}

func runCompute(cmd *cobra.Command, opts *computeOptions, src string) error {
	buildings, err := readBuildings(cmd.InOrStdin(), src)
	if err != nil {
		return err
	}

	res, err := engine.Result(buildings)
	if err != nil {
		return fmt.Errorf("compute skyline: %w", err)
	}
	if !opts.Summary {
		res.Summary = nil
	}

	return writeResult(cmd.OutOrStdout(), opts.Format, res)
}

func readBuildings(stdin io.Reader, src string) ([]skyline.Building, error) {
	if strings.EqualFold(filepath.Ext(src), ".csv") {
		store, err := engine.LoadColumnar(src)
		if err != nil {
			return nil, err
		}
		return store.Buildings(), nil
	}

	var (
		data []byte
		err  error
	)
	if src == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(src)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}

	return input.ParseJSON(data)
}
