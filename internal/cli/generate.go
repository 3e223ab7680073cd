package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sklarow/brutalist-color-pallete/internal/app/template"
	"github.com/sklarow/brutalist-color-pallete/internal/infra/logger"
	"github.com/sklarow/brutalist-color-pallete/internal/ports"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/palette"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/query"
)

func generateCmd() *cobra.Command {
	var workspace string
	var format string
	var queries []string
	var tmplPath string
	var save bool
	var name string

	c := &cobra.Command{
		Use:     "generate [base]",
		Aliases: []string{"gen"},
		Short:   "Derive the ten-color palette for a base color",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := optionalWorkspace(workspace)
			if err != nil {
				return err
			}

			base := resolveBase(ws, args)
			if !cmd.Flags().Changed("format") && ws != nil {
				format = ws.cfg.Defaults.Format
			}

			var store ports.PaletteStore
			if ws != nil {
				store = ws.palettes
			}

			res, err := usecase.NewGeneratePalette(store).Execute(base, usecase.GenerateOptions{Save: save, Name: name})
			if err != nil {
				return err
			}
			logger.L().Info("palette.generated", "base", base, "saved_id", res.ID)

			out := cmd.OutOrStdout()
			switch {
			case len(queries) > 0:
				err = printQueries(out, res, queries)
			case strings.TrimSpace(tmplPath) != "":
				err = printTemplate(out, res, tmplPath)
			default:
				err = printPalette(out, res.Base, res.Palette, format)
			}
			if err != nil {
				return err
			}

			if res.ID != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "saved palette %s\n", res.ID)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json|css")
	c.Flags().StringArrayVarP(&queries, "query", "q", nil, "JSONPath over the json document, as expr or name=expr (repeatable)")
	c.Flags().StringVarP(&tmplPath, "template", "t", "", "Render a template file with {{color1}}..{{color10}}, role names and {{base}}")
	c.Flags().BoolVar(&save, "save", false, "Save the palette under the workspace palettes dir")
	c.Flags().StringVar(&name, "name", "", "Name for the saved palette (default: base hex)")
	return c
}

// printQueries evaluates JSONPath rules against the palette document and prints
// one value per line, or name=value when several rules are given.
func printQueries(w io.Writer, res usecase.GenerateResult, exprs []string) error {
	rules := query.ParseRules(exprs)
	values, results := query.Apply(palette.NewDocument(res.Base, res.Palette), rules)

	var failed []string
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r.Message)
			continue
		}
		if len(rules) == 1 {
			fmt.Fprintln(w, values[r.Name])
		} else {
			fmt.Fprintf(w, "%s=%s\n", r.Name, values[r.Name])
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("query failed: %s", strings.Join(failed, "; "))
	}
	return nil
}

func printTemplate(w io.Writer, res usecase.GenerateResult, path string) error {
	p, err := expandPath(path)
	if err != nil {
		return err
	}
	out, err := template.RenderFile(p, palette.Vars(res.Base, res.Palette))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
