package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/ports"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase"
)

// libraryWatcher is implemented by stores that can report outside writes.
type libraryWatcher interface {
	Watch(ctx context.Context) (<-chan struct{}, error)
}

func cmdOpenWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceOpenedMsg{err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil || deps.OpenWorkspace == nil {
			return workspaceOpenedMsg{cwd: wd}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceOpenedMsg{cwd: wd}
		}

		ws, err := deps.OpenWorkspace(root)
		if err != nil {
			return workspaceOpenedMsg{cwd: wd, err: err}
		}
		return workspaceOpenedMsg{cwd: wd, found: true, ws: ws}
	}
}

// cmdInitWorkspace creates a workspace at root and opens it. The in-memory
// library is carried over when the new workspace has none yet.
func cmdInitWorkspace(deps Deps, root string, carry domain.Library) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil || deps.OpenWorkspace == nil {
			return workspaceOpenedMsg{cwd: root, err: errors.New("workspace initializer is not configured")}
		}

		if err := usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(root, false); err != nil {
			return workspaceOpenedMsg{cwd: root, err: err}
		}
		ws, err := deps.OpenWorkspace(root)
		if err != nil {
			return workspaceOpenedMsg{cwd: root, err: err}
		}

		if _, err := ws.Library.Load(); domain.IsKind(err, domain.KindNotFound) && len(carry.Colors) > 0 {
			if err := ws.Library.Save(carry); err != nil {
				return workspaceOpenedMsg{cwd: root, err: err}
			}
		}
		return workspaceOpenedMsg{cwd: root, found: true, ws: ws}
	}
}

func cmdLibrary(store ports.LibraryStore, note string, op func(uc *usecase.ManageLibrary) (domain.Library, error)) tea.Cmd {
	return func() tea.Msg {
		lib, err := op(usecase.NewManageLibrary(store))
		return libraryMsg{lib: lib, note: note, err: err}
	}
}

func cmdLoadLibrary(store ports.LibraryStore) tea.Cmd {
	return cmdLibrary(store, "", func(uc *usecase.ManageLibrary) (domain.Library, error) {
		return uc.Load()
	})
}

// cmdAddColors saves every color and selects the last one.
func cmdAddColors(store ports.LibraryStore, colors []string) tea.Cmd {
	note := fmt.Sprintf("added %d color(s)", len(colors))
	if len(colors) == 1 {
		note = "added " + colors[0]
	}
	return cmdLibrary(store, note, func(uc *usecase.ManageLibrary) (domain.Library, error) {
		for _, c := range colors {
			if _, _, err := uc.Add(c); err != nil {
				return domain.Library{}, err
			}
		}
		return uc.Select(colors[len(colors)-1])
	})
}

func cmdSavePalette(store ports.PaletteStore, base, name string) tea.Cmd {
	return func() tea.Msg {
		res, err := usecase.NewGeneratePalette(store).Execute(base, usecase.GenerateOptions{Save: true, Name: name})
		return paletteSavedMsg{id: res.ID, err: err}
	}
}

func cmdImport(loader ports.SwatchLoader, store ports.LibraryStore, path string) tea.Cmd {
	return func() tea.Msg {
		res, err := usecase.NewImportSwatches(loader, store).Execute(path)
		if err != nil {
			return libraryMsg{err: err}
		}
		return libraryMsg{
			lib:  res.Library,
			note: fmt.Sprintf("imported %q: %d added, %d already saved", res.Name, len(res.Added), len(res.Skipped)),
		}
	}
}

func cmdExport(loader ports.SwatchLoader, store ports.LibraryStore, path, name string) tea.Cmd {
	return func() tea.Msg {
		sw, err := usecase.NewExportSwatches(loader, store).Execute(path, name)
		if err != nil {
			return noteMsg{err: err}
		}
		return noteMsg{note: fmt.Sprintf("exported %d color(s) to %s", len(sw.Colors), path)}
	}
}

func cmdStartWatch(ctx context.Context, w libraryWatcher) tea.Cmd {
	return func() tea.Msg {
		ch, err := w.Watch(ctx)
		return watchStartedMsg{ch: ch, err: err}
	}
}

// listenWatch waits for the next change signal. A closed channel ends the
// loop.
func listenWatch(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return libraryChangedMsg{}
	}
}
