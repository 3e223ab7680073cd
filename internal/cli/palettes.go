package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func palettesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "palettes",
		Short: "Browse saved palettes",
	}

	c.AddCommand(palettesListCmd())
	c.AddCommand(palettesShowCmd())
	return c
}

func palettesListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved palettes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.palettes.ListPalettes()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no saved palettes)")
				return nil
			}
			for _, r := range refs {
				fmt.Fprintf(out, "- %s  %s\n", r.ID, r.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func palettesShowCmd() *cobra.Command {
	var workspace string
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			a, err := ws.palettes.LoadPalette(args[0])
			if err != nil {
				return err
			}
			return printPalette(cmd.OutOrStdout(), a.Base, a.Palette, format)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json|css")
	return cmd
}
