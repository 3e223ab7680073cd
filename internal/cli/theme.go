package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sklarow/brutalist-color-pallete/internal/usecase"
)

func themeCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or set the explorer theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibrary(workspace, func(_ *workspaceCtx, uc *usecase.ManageLibrary) error {
				lib, err := uc.Load()
				if err != nil {
					return err
				}

				if len(args) == 1 {
					dark := lib.DarkMode
					switch strings.ToLower(args[0]) {
					case "dark":
						dark = true
					case "light":
						dark = false
					case "toggle":
						dark = !dark
					default:
						return fmt.Errorf("unknown theme %q (expected dark|light|toggle)", args[0])
					}
					if lib, err = uc.SetDarkMode(dark); err != nil {
						return err
					}
				}

				fmt.Fprintln(cmd.OutOrStdout(), themeName(lib.DarkMode))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
