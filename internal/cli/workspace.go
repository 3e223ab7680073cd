package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/infra/config"
	"github.com/sklarow/brutalist-color-pallete/internal/infra/libstore"
	"github.com/sklarow/brutalist-color-pallete/internal/infra/palettestore"
	"github.com/sklarow/brutalist-color-pallete/internal/infra/workspacefinder"
	"github.com/sklarow/brutalist-color-pallete/internal/ports"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/colorspace"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	library  *libstore.FileStore
	palettes ports.PaletteStore
	swatches ports.SwatchLoader
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}
	return openWorkspace(root)
}

func openWorkspace(root string) (*workspaceCtx, error) {
	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:     root,
		cfg:      cfg,
		library:  libstore.NewFileStore(root, cfg),
		palettes: palettestore.NewJSONStore(root, cfg, palettestore.WithIndex(cfg.Store.Index)),
		swatches: config.NewSwatchFiles(),
	}, nil
}

// optionalWorkspace is loadWorkspace for commands that also work without a
// workspace. An explicit -w that cannot be loaded is still an error.
func optionalWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	ws, err := loadWorkspace(workspaceFlag)
	if err == nil {
		return ws, nil
	}
	if strings.TrimSpace(workspaceFlag) == "" && domain.IsKind(err, domain.KindNotFound) {
		return nil, nil
	}
	return nil, err
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		expanded, err := expandPath(w)
		if err != nil {
			return "", err
		}
		abs, err := filepath.Abs(expanded)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `brutalist init`): %w", wd, err)
	}
	return root, nil
}

// resolveBase picks the base color: the argument, else the library selection,
// else the configured default.
func resolveBase(ws *workspaceCtx, args []string) string {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return strings.TrimSpace(args[0])
	}
	if ws == nil {
		return domain.DefaultBaseColor
	}
	lib, err := ws.library.Load()
	if err != nil {
		return ws.cfg.Defaults.Base
	}
	return usecase.CurrentColor(lib, ws.cfg.Defaults.Base)
}

// completeArg accepts what the TUI input accepts from a user typing: hex
// digits with or without '#', padded with zeros when short. Anything else is
// rejected instead of being stripped.
func completeArg(arg string) (string, error) {
	raw := strings.ToUpper(strings.TrimSpace(arg))
	norm := colorspace.NormalizeInput(raw)
	if norm != "#"+strings.TrimPrefix(raw, "#") {
		return "", domain.InvalidHex("cli.color", arg)
	}
	full, ok := colorspace.CompleteInput(norm)
	if !ok {
		return "", domain.InvalidHex("cli.color", arg)
	}
	return full, nil
}

func expandPath(p string) (string, error) {
	out, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", p, err)
	}
	return out, nil
}

func requireWorkspace(ws *workspaceCtx) error {
	if ws == nil {
		return errors.New("this command needs a workspace (tip: run `brutalist init`)")
	}
	return nil
}
