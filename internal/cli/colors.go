package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/infra/logger"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase"
)

func colorsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "colors",
		Short: "Manage the saved base colors of a workspace",
	}

	c.AddCommand(colorsListCmd())
	c.AddCommand(colorsAddCmd())
	c.AddCommand(colorsSelectCmd())
	c.AddCommand(colorsDeleteCmd())
	c.AddCommand(colorsImportCmd())
	c.AddCommand(colorsExportCmd())
	return c
}

// withLibrary runs fn against the workspace library use case.
func withLibrary(workspace string, fn func(ws *workspaceCtx, uc *usecase.ManageLibrary) error) error {
	ws, err := loadWorkspace(workspace)
	if err != nil {
		return err
	}
	return fn(ws, usecase.NewManageLibrary(ws.library))
}

func colorsListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLibrary(workspace, func(_ *workspaceCtx, uc *usecase.ManageLibrary) error {
				lib, err := uc.Load()
				if err != nil {
					return err
				}
				printLibrary(cmd.OutOrStdout(), lib)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func colorsAddCmd() *cobra.Command {
	var workspace string
	var sel bool

	cmd := &cobra.Command{
		Use:   "add <hex>...",
		Short: "Save one or more base colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors := make([]string, 0, len(args))
			for _, a := range args {
				c, err := completeArg(a)
				if err != nil {
					return err
				}
				colors = append(colors, c)
			}

			return withLibrary(workspace, func(_ *workspaceCtx, uc *usecase.ManageLibrary) error {
				out := cmd.OutOrStdout()
				for _, c := range colors {
					_, added, err := uc.Add(c)
					if err != nil {
						return err
					}
					if added {
						logger.L().Info("library.added", "color", c)
						fmt.Fprintf(out, "added %s\n", c)
					} else {
						fmt.Fprintf(out, "%s already saved\n", c)
					}
				}
				if sel {
					if _, err := uc.Select(colors[len(colors)-1]); err != nil {
						return err
					}
					fmt.Fprintf(out, "selected %s\n", colors[len(colors)-1])
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().BoolVar(&sel, "select", false, "Also select the last added color")
	return cmd
}

func colorsSelectCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "select <hex>",
		Short: "Make a color the current base color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := completeArg(args[0])
			if err != nil {
				return err
			}
			return withLibrary(workspace, func(_ *workspaceCtx, uc *usecase.ManageLibrary) error {
				lib, err := uc.Select(c)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "selected %s\n", lib.Current)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func colorsDeleteCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "delete <id|hex>",
		Short: "Remove a saved color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibrary(workspace, func(_ *workspaceCtx, uc *usecase.ManageLibrary) error {
				lib, err := uc.Load()
				if err != nil {
					return err
				}
				id, err := lookupID(lib, args[0])
				if err != nil {
					return err
				}
				lib, err = uc.Delete(id)
				if err != nil {
					return err
				}
				logger.L().Info("library.deleted", "id", id)
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s (current %s)\n", args[0], lib.Current)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func colorsImportCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Add colors from a swatch file (.yaml, .toml or .css)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := expandPath(args[0])
			if err != nil {
				return err
			}
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			res, err := usecase.NewImportSwatches(ws.swatches, ws.library).Execute(path)
			if err != nil {
				return err
			}
			logger.L().Info("library.imported", "path", path, "added", len(res.Added), "skipped", len(res.Skipped))
			fmt.Fprintf(cmd.OutOrStdout(), "imported %q: %d added, %d already saved\n", res.Name, len(res.Added), len(res.Skipped))
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func colorsExportCmd() *cobra.Command {
	var workspace string
	var name string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write saved colors to a swatch file (.yaml or .toml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := expandPath(args[0])
			if err != nil {
				return err
			}
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			sw, err := usecase.NewExportSwatches(ws.swatches, ws.library).Execute(path, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d color(s) to %s\n", len(sw.Colors), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&name, "name", "brutalist", "Swatch set name")
	return cmd
}

// lookupID resolves a saved entry id or a saved color to its entry id. A
// bare number that is not an id is tried as a color ("123456").
func lookupID(lib domain.Library, arg string) (int64, error) {
	arg = strings.TrimSpace(arg)
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		for _, c := range lib.Colors {
			if c.ID == id {
				return id, nil
			}
		}
	}
	c, err := completeArg(arg)
	if err != nil {
		return 0, err
	}
	if saved, ok := lib.Find(c); ok {
		return saved.ID, nil
	}
	return 0, &domain.OpError{Op: "cli.colors.delete", Kind: domain.KindNotFound, Err: fmt.Errorf("%s: %w", c, domain.ErrNotFound)}
}

func printLibrary(w io.Writer, lib domain.Library) {
	r := newRenderer(w)
	for _, c := range lib.Colors {
		mark := " "
		if strings.EqualFold(c.Color, lib.Current) {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %-15d %s\n", mark, c.ID, swatch(r, domain.Hex(c.Color), c.Color))
	}
	if _, ok := lib.Find(lib.Current); !ok && lib.Current != "" {
		fmt.Fprintf(w, "* (unsaved)       %s\n", swatch(r, domain.Hex(lib.Current), lib.Current))
	}
}
