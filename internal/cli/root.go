package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sklarow/brutalist-color-pallete/internal/buildinfo"
	"github.com/sklarow/brutalist-color-pallete/internal/infra/config"
	"github.com/sklarow/brutalist-color-pallete/internal/infra/fsworkspace"
	"github.com/sklarow/brutalist-color-pallete/internal/infra/logger"
	"github.com/sklarow/brutalist-color-pallete/internal/infra/workspacefinder"
	"github.com/sklarow/brutalist-color-pallete/internal/ui/tui"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase"
)

func Execute() {
	cmd, session := newRootCmd()
	err := cmd.Execute()
	session.close()
	if err != nil {
		os.Exit(1)
	}
}

// rootSession holds what a command run opens and Execute must release, even
// when RunE fails and cobra skips the post-run hooks.
type rootSession struct {
	cleanup func() error
}

func (s *rootSession) close() {
	if s.cleanup != nil {
		_ = s.cleanup()
		s.cleanup = nil
	}
}

func newRootCmd() (*cobra.Command, *rootSession) {
	var debug bool
	session := &rootSession{}

	cmd := &cobra.Command{
		Use:          "brutalist",
		Short:        "Golden-ratio palettes from one base color",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			root, ok := logRoot(cmd)
			if !ok {
				return
			}
			cleanup, err := logger.Setup(logger.Config{Root: root, Debug: debug})
			if err != nil {
				return
			}
			session.cleanup = cleanup
			if debug && logger.Path() != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "debug log: %s\n", logger.Path())
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				OpenWorkspace:        openTUIWorkspace,
				Swatches:             config.NewSwatchFiles(),
				Logger:               logger.L(),
				Debug:                debug,
			}
			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .brutalist/logs/brutalist.log")

	cmd.AddCommand(generateCmd())
	cmd.AddCommand(inspectCmd())
	cmd.AddCommand(checkCmd())
	cmd.AddCommand(colorsCmd())
	cmd.AddCommand(palettesCmd())
	cmd.AddCommand(themeCmd())
	cmd.AddCommand(initCmd())
	cmd.AddCommand(versionCmd())
	return cmd, session
}

// logRoot is the workspace the command runs in: the one named by -w when the
// command takes it, else the one enclosing the working directory. Outside a
// workspace nothing is logged.
func logRoot(cmd *cobra.Command) (string, bool) {
	var flag string
	if f := cmd.Flags().Lookup("workspace"); f != nil {
		flag = f.Value.String()
	}
	start, err := resolveWorkspaceRoot(flag)
	if err != nil {
		return "", false
	}
	root, err := workspacefinder.NewFinder().FindRoot(start)
	if err != nil || root == "" {
		return "", false
	}
	return root, true
}

func openTUIWorkspace(root string) (tui.Workspace, error) {
	ws, err := openWorkspace(root)
	if err != nil {
		return tui.Workspace{}, err
	}
	return tui.Workspace{
		Root:     ws.root,
		Config:   ws.cfg,
		Library:  ws.library,
		Palettes: ws.palettes,
	}, nil
}

func initCmd() *cobra.Command {
	var path string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a workspace (brutalist.yaml, palettes/, .brutalist/)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := expandPath(path)
			if err != nil {
				return err
			}
			root, err := filepath.Abs(p)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			if err := usecase.NewInitWorkspace(fsworkspace.NewInitializer()).Execute(root, force); err != nil {
				return err
			}
			logger.L().Info("workspace.initialized", "root", root, "force", force)
			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\n", root)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite template files that already exist")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
