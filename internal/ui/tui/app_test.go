package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/infra/libstore"
)

type fakeLocator struct {
	root string
	err  error
}

func (f fakeLocator) FindRoot(string) (string, error) { return f.root, f.err }

type fakeInitializer struct {
	specs []domain.WorkspaceSpec
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, _ bool) error {
	f.specs = append(f.specs, spec)
	return nil
}

type fakePalettes struct {
	saved []domain.PaletteArtifact
}

func (f *fakePalettes) SavePalette(a domain.PaletteArtifact) (string, error) {
	f.saved = append(f.saved, a)
	return "20260101T000000Z_saved", nil
}

func (f *fakePalettes) ListPalettes() ([]domain.PaletteRef, error) { return nil, nil }

func (f *fakePalettes) LoadPalette(string) (domain.PaletteArtifact, error) {
	return domain.PaletteArtifact{}, &domain.OpError{Op: "palettestore.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
}

// watchedStore is a memory store whose change signals the test controls.
type watchedStore struct {
	*libstore.MemoryStore
	ch chan struct{}
}

func (w *watchedStore) Watch(context.Context) (<-chan struct{}, error) { return w.ch, nil }

func memoryWorkspace(root string, palettes *fakePalettes) Workspace {
	return Workspace{
		Root:     root,
		Config:   domain.DefaultConfig(),
		Library:  libstore.NewMemoryStore(),
		Palettes: palettes,
	}
}

func runCmd(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(300 * time.Millisecond):
		return nil
	}
}

// drive runs cmd and feeds the explorer's own messages back into the model
// until nothing is left to do.
func drive(t *testing.T, m model, cmd tea.Cmd) model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 50 {
			t.Fatalf("too many steps")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}

		switch msg := runCmd(c).(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case workspaceOpenedMsg, libraryMsg, paletteSavedMsg, noteMsg, watchStartedMsg, libraryChangedMsg:
			next, nc := m.Update(msg)
			m = next.(model)
			queue = append(queue, nc)
		}
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m model, keys ...string) (model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(model)
	}
	return m, cmd
}

func startWithoutWorkspace(t *testing.T) model {
	t.Helper()
	m := newModel(context.Background(), Deps{})
	return drive(t, m, m.Init())
}

func TestModel_NoWorkspaceSeedsMemoryLibrary(t *testing.T) {
	m := startWithoutWorkspace(t)

	if m.found {
		t.Fatalf("expected no workspace")
	}
	if len(m.lib.Colors) != 1 || m.lib.Current != domain.DefaultBaseColor {
		t.Fatalf("expected seeded library, got %+v", m.lib)
	}
	if m.pal[0] != "#ff0000" || m.pal[9] != "#9e0000" {
		t.Fatalf("unexpected palette %v", m.pal)
	}
	if !strings.Contains(m.status, "in memory") {
		t.Fatalf("expected in-memory notice, got %q", m.status)
	}
}

func TestModel_HexInputPreviewsThenAdds(t *testing.T) {
	m := startWithoutWorkspace(t)

	m, _ = press(m, "a")
	if m.focus != focusInput {
		t.Fatalf("expected input focus")
	}

	m, _ = press(m, "3", "3", "6", "6", "c", "c")
	if m.input.Value() != "#3366CC" {
		t.Fatalf("expected normalized input, got %q", m.input.Value())
	}
	if !m.previewing || m.pal[0] != "#3366cc" {
		t.Fatalf("expected live preview, got %v", m.pal[0])
	}

	m, cmd := press(m, "enter")
	m = drive(t, m, cmd)

	if m.focus != focusList {
		t.Fatalf("expected list focus after enter")
	}
	if len(m.lib.Colors) != 2 || m.lib.Current != "#3366CC" {
		t.Fatalf("expected added and selected color, got %+v", m.lib)
	}
	if m.base != "#3366CC" {
		t.Fatalf("expected base to follow selection, got %q", m.base)
	}
}

func TestModel_HexInputPadsShortValues(t *testing.T) {
	m := startWithoutWorkspace(t)

	m, _ = press(m, "a", "1", "a")
	m, cmd := press(m, "enter")
	m = drive(t, m, cmd)

	if m.lib.Current != "#1A0000" {
		t.Fatalf("expected padded color, got %q", m.lib.Current)
	}
}

func TestModel_HexInputEscRestoresBase(t *testing.T) {
	m := startWithoutWorkspace(t)

	m, _ = press(m, "a", "0", "0", "0", "0", "f", "f")
	if m.pal[0] != "#0000ff" {
		t.Fatalf("expected preview, got %v", m.pal[0])
	}
	m, _ = press(m, "esc")
	if m.previewing || m.pal[0] != "#ff0000" || m.focus != focusList {
		t.Fatalf("expected preview to be dropped, got %v", m.pal[0])
	}
}

func TestModel_CommandBar(t *testing.T) {
	m := startWithoutWorkspace(t)

	m, _ = press(m, ":")
	if m.focus != focusCommand {
		t.Fatalf("expected command focus")
	}
	m.command.SetValue(`add #123456 abc`)
	m, cmd := press(m, "enter")
	m = drive(t, m, cmd)
	if len(m.lib.Colors) != 3 || m.lib.Current != "#ABC000" {
		t.Fatalf("unexpected library after add: %+v", m.lib)
	}

	next, cmd := m.exec(command{name: "theme", args: []string{"dark"}})
	m = drive(t, next.(model), cmd)
	if !m.lib.DarkMode || m.theme.Name != "dark" {
		t.Fatalf("expected dark theme")
	}

	next, cmd = m.exec(command{name: "delete", args: []string{"#123456"}})
	m = drive(t, next.(model), cmd)
	if _, ok := m.lib.Find("#123456"); ok || len(m.lib.Colors) != 2 {
		t.Fatalf("expected #123456 to be deleted: %+v", m.lib)
	}

	next, _ = m.exec(command{name: "save"})
	m = next.(model)
	if !strings.Contains(m.errMsg, "workspace") {
		t.Fatalf("expected workspace hint, got %q", m.errMsg)
	}
}

func TestModel_CommandBarErrors(t *testing.T) {
	m := startWithoutWorkspace(t)

	cases := []struct {
		line string
		want string
	}{
		{"paint it black", "unknown command"},
		{"select", "usage: select"},
		{`add "unterminated`, "cannot parse"},
		{"add blue", "Invalid color"},
		{"theme neon", "Unknown theme"},
		{"delete #abcdef", "not saved"},
	}
	for _, c := range cases {
		m, _ = press(m, ":")
		m.command.SetValue(c.line)
		next, _ := m.Update(key("enter"))
		m = next.(model)
		if !strings.Contains(m.errMsg, c.want) {
			t.Errorf("%q: expected %q in error, got %q", c.line, c.want, m.errMsg)
		}
	}
}

func TestModel_ListKeys(t *testing.T) {
	m := startWithoutWorkspace(t)
	next, cmd := m.exec(command{name: "add", args: []string{"#00FF00"}})
	m = drive(t, next.(model), cmd)

	m.colors.Select(0)
	m, cmd = press(m, "enter")
	m = drive(t, m, cmd)
	if m.lib.Current != "#FF0000" {
		t.Fatalf("expected first color selected, got %q", m.lib.Current)
	}

	m, cmd = press(m, "d")
	m = drive(t, m, cmd)
	if len(m.lib.Colors) != 1 || m.lib.Current != "#00FF00" {
		t.Fatalf("expected delete to fall back, got %+v", m.lib)
	}

	m, cmd = press(m, "t")
	m = drive(t, m, cmd)
	if !m.lib.DarkMode {
		t.Fatalf("expected theme toggle")
	}

	_, cmd = press(m, "q")
	if _, ok := runCmd(cmd).(tea.QuitMsg); !ok {
		t.Fatalf("expected quit")
	}
}

func TestModel_WorkspaceSavePalette(t *testing.T) {
	palettes := &fakePalettes{}
	ws := memoryWorkspace("/ws", palettes)
	ws.Config.Defaults.Base = "#3366CC"

	deps := Deps{
		WorkspaceLocator: fakeLocator{root: "/ws"},
		OpenWorkspace:    func(string) (Workspace, error) { return ws, nil },
	}
	m := newModel(context.Background(), deps)
	m = drive(t, m, m.Init())

	if !m.found || m.workspace.Root != "/ws" {
		t.Fatalf("expected workspace to open")
	}

	next, cmd := m.exec(command{name: "save", args: []string{"brand", "red"}})
	m = drive(t, next.(model), cmd)

	if len(palettes.saved) != 1 || palettes.saved[0].Name != "brand red" || palettes.saved[0].Base != "#FF0000" {
		t.Fatalf("unexpected saved palettes: %+v", palettes.saved)
	}
	if !strings.Contains(m.status, "20260101T000000Z_saved") {
		t.Fatalf("expected saved id in status, got %q", m.status)
	}
}

func TestModel_OpenWorkspaceError(t *testing.T) {
	deps := Deps{
		WorkspaceLocator: fakeLocator{root: "/ws"},
		OpenWorkspace: func(string) (Workspace, error) {
			return Workspace{}, &domain.OpError{Op: "workspacefinder.load_config", Kind: domain.KindInvalidConfig, Path: "/ws/brutalist.yaml", Err: domain.ErrInvalidConfig}
		},
	}
	m := newModel(context.Background(), deps)
	m = drive(t, m, m.Init())

	if m.found {
		t.Fatalf("expected workspace to stay closed")
	}
	if m.errMsg != "Invalid brutalist.yaml" {
		t.Fatalf("unexpected error line %q", m.errMsg)
	}
	if len(m.lib.Colors) != 1 {
		t.Fatalf("expected memory library to load anyway")
	}
}

func TestModel_InitCarriesMemoryLibrary(t *testing.T) {
	initializer := &fakeInitializer{}
	ws := memoryWorkspace("", &fakePalettes{})

	deps := Deps{
		WorkspaceLocator:     fakeLocator{err: errors.New("no workspace")},
		WorkspaceInitializer: initializer,
		OpenWorkspace: func(root string) (Workspace, error) {
			ws.Root = root
			return ws, nil
		},
	}
	m := newModel(context.Background(), deps)
	m = drive(t, m, m.Init())

	next, cmd := m.exec(command{name: "add", args: []string{"#123456"}})
	m = drive(t, next.(model), cmd)

	dir := t.TempDir()
	next, cmd = m.exec(command{name: "init", args: []string{dir}})
	m = drive(t, next.(model), cmd)

	if len(initializer.specs) != 1 || initializer.specs[0].Root != dir {
		t.Fatalf("unexpected init calls: %+v", initializer.specs)
	}
	if !m.found || m.workspace.Root != dir {
		t.Fatalf("expected new workspace to be open")
	}
	stored, err := ws.Library.Load()
	if err != nil {
		t.Fatalf("expected carried library: %v", err)
	}
	if len(stored.Colors) != 2 || stored.Current != "#123456" {
		t.Fatalf("unexpected carried library: %+v", stored)
	}

	next, _ = m.exec(command{name: "init"})
	if !strings.Contains(next.(model).status, "already open") {
		t.Fatalf("expected already-open notice")
	}
}

func TestModel_ReloadsOnLibraryChange(t *testing.T) {
	store := &watchedStore{MemoryStore: libstore.NewMemoryStore(), ch: make(chan struct{}, 1)}
	ws := Workspace{Root: "/ws", Config: domain.DefaultConfig(), Library: store}

	deps := Deps{
		WorkspaceLocator: fakeLocator{root: "/ws"},
		OpenWorkspace:    func(string) (Workspace, error) { return ws, nil },
	}
	m := newModel(context.Background(), deps)

	next, _ := m.Update(workspaceOpenedMsg{found: true, ws: ws})
	m = next.(model)
	if !m.watching {
		t.Fatalf("expected watch to start")
	}

	if err := store.Save(domain.Library{
		Colors:   []domain.BaseColor{{ID: 1, Color: "#00FF00"}},
		Current:  "#00FF00",
		DarkMode: true,
	}); err != nil {
		t.Fatal(err)
	}
	store.ch <- struct{}{}
	close(store.ch)

	next, cmd := m.Update(watchStartedMsg{ch: store.ch})
	m = drive(t, next.(model), cmd)

	if m.lib.Current != "#00FF00" || !m.lib.DarkMode || m.theme.Name != "dark" {
		t.Fatalf("expected reloaded library, got %+v", m.lib)
	}
	if m.pal[0] != "#00ff00" {
		t.Fatalf("expected palette to follow reload, got %v", m.pal[0])
	}
}

func TestModel_View(t *testing.T) {
	m := startWithoutWorkspace(t)
	out := wrapSafe(m, nil).View()

	for _, want := range []string{"BRUTALIST", "#FF0000", "#ff0000", "golden", "primary", "translucent #ff616140"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestSafeModel_ForwardsUpdates(t *testing.T) {
	s := wrapSafe(startWithoutWorkspace(t), nil)

	next, _ := s.Update(key(":"))
	sm, ok := next.(safeModel)
	if !ok {
		t.Fatalf("expected safeModel, got %T", next)
	}
	if sm.m.focus != focusCommand {
		t.Fatalf("expected wrapped model to be updated")
	}
}
