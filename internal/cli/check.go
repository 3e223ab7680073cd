package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sklarow/brutalist-color-pallete/internal/infra/logger"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/check"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/palette"
)

func checkCmd() *cobra.Command {
	var workspace string
	var minRatio float64
	var large bool

	c := &cobra.Command{
		Use:   "check [base]",
		Short: "Check text contrast of the showcase pairings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := optionalWorkspace(workspace)
			if err != nil {
				return err
			}

			base := resolveBase(ws, args)
			p, err := palette.Generate(base)
			if err != nil {
				return err
			}

			threshold := minRatio
			if large && !cmd.Flags().Changed("min") {
				threshold = check.MinContrastAALarge
			}

			results := check.Evaluate(p, threshold)
			printChecks(cmd.OutOrStdout(), base, results)

			if fails := check.Failures(results); fails > 0 {
				logger.L().Warn("check.failed", "base", base, "failures", fails, "min", threshold)
				return fmt.Errorf("check failed (%d pairing(s) below %.1f:1)", fails, threshold)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().Float64Var(&minRatio, "min", check.MinContrastAA, "Minimum contrast ratio")
	c.Flags().BoolVar(&large, "large", false, "Use the large-text threshold (3.0:1)")
	return c
}

func printChecks(w io.Writer, base string, results []check.Result) {
	fmt.Fprintf(w, "Base: %s\n\n", base)
	for _, r := range results {
		mark := "✓"
		if !r.Passed {
			mark = "✗"
		}
		fmt.Fprintf(w, "%s %-8s %s\n", mark, r.Name, r.Message)
	}
}
