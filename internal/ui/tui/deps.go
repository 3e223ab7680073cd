package tui

import (
	"log/slog"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/ports"
)

// Workspace is an opened workspace as the explorer sees it.
type Workspace struct {
	Root     string
	Config   domain.Config
	Library  ports.LibraryStore
	Palettes ports.PaletteStore
}

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer
	OpenWorkspace        func(root string) (Workspace, error)
	Swatches             ports.SwatchLoader

	Logger *slog.Logger
	Debug  bool
}
