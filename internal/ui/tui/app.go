package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/go-homedir"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/infra/libstore"
	"github.com/sklarow/brutalist-color-pallete/internal/ports"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/colorspace"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/palette"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/showcase"
)

type focus int

const (
	focusList focus = iota
	focusInput
	focusCommand
)

const gradientSteps = 12

type colorItem struct {
	color   domain.BaseColor
	current bool
}

func (c colorItem) Title() string {
	if c.current {
		return c.color.Color + "  ●"
	}
	return c.color.Color
}

func (c colorItem) Description() string { return fmt.Sprintf("id %d", c.color.ID) }
func (c colorItem) FilterValue() string { return c.color.Color }

type model struct {
	ctx   context.Context
	theme Theme
	deps  Deps
	log   *slog.Logger

	cwd       string
	workspace Workspace
	found     bool
	library   ports.LibraryStore
	palettes  ports.PaletteStore
	watching  bool
	watch     <-chan struct{}

	lib        domain.Library
	base       string
	pal        domain.Palette
	show       showcase.Showcase
	previewing bool

	colors  list.Model
	input   textinput.Model
	command textinput.Model
	focus   focus

	width  int
	height int
	status string
	errMsg string
}

func Run(deps Deps) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := newModel(ctx, deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(ctx context.Context, deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	l := list.New(nil, list.NewDefaultDelegate(), 24, 20)
	l.Title = "Saved colors"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	in := textinput.New()
	in.Prompt = "hex › "
	in.Placeholder = "#RRGGBB"
	in.CharLimit = 7

	cmd := textinput.New()
	cmd.Prompt = ":"
	cmd.Placeholder = "add #3366cc | save \"brand red\" | theme dark"

	m := model{
		ctx:     ctx,
		theme:   LightTheme(),
		deps:    deps,
		log:     log,
		library: libstore.NewMemoryStore(),
		colors:  l,
		input:   in,
		command: cmd,
		focus:   focusList,
	}
	m.setBase(domain.DefaultBaseColor)
	return m
}

func (m model) Init() tea.Cmd {
	return cmdOpenWorkspace(m.deps)
}

func (m model) defaultBase() string {
	if m.found && m.workspace.Config.Defaults.Base != "" {
		return m.workspace.Config.Defaults.Base
	}
	return domain.DefaultBaseColor
}

// setBase regenerates the palette and showcase. An invalid base keeps the
// previous palette.
func (m *model) setBase(base string) bool {
	p, err := palette.Generate(base)
	if err != nil {
		return false
	}
	sc, err := showcase.Build(p, gradientSteps)
	if err != nil {
		return false
	}
	m.base, m.pal, m.show = base, p, sc
	return true
}

func (m *model) setLibrary(lib domain.Library) tea.Cmd {
	m.lib = lib
	m.theme = themeFor(lib.DarkMode)

	items := make([]list.Item, 0, len(lib.Colors))
	selected := 0
	for i, c := range lib.Colors {
		cur := strings.EqualFold(c.Color, lib.Current)
		if cur {
			selected = i
		}
		items = append(items, colorItem{color: c, current: cur})
	}
	cmd := m.colors.SetItems(items)
	m.colors.Select(selected)

	if !m.previewing {
		m.setBase(usecase.CurrentColor(lib, m.defaultBase()))
	}
	return cmd
}

func (m model) highlighted() (domain.BaseColor, bool) {
	it, ok := m.colors.SelectedItem().(colorItem)
	if !ok {
		return domain.BaseColor{}, false
	}
	return it.color, true
}

func (m *model) fail(where string, err error) {
	m.errMsg = userMessage(err)
	m.status = ""
	m.log.Error(where+".failed", "err", err)
}

func (m *model) note(s string) {
	m.status = s
	m.errMsg = ""
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.colors.SetSize(26, max(msg.Height-12, 6))
		m.command.Width = max(msg.Width-8, 10)
		return m, nil

	case workspaceOpenedMsg:
		m.cwd = msg.cwd
		if msg.err != nil {
			m.fail("workspace.open", msg.err)
			return m, cmdLoadLibrary(m.library)
		}
		if !msg.found {
			m.note("No workspace: colors are kept in memory (:init to create one)")
			return m, cmdLoadLibrary(m.library)
		}

		m.found = true
		m.workspace = msg.ws
		m.library = msg.ws.Library
		m.palettes = msg.ws.Palettes
		m.note("Workspace: " + msg.ws.Root)
		m.log.Info("tui.workspace.opened", "root", msg.ws.Root)

		cmds := []tea.Cmd{cmdLoadLibrary(m.library)}
		if w, ok := m.library.(libraryWatcher); ok && !m.watching {
			m.watching = true
			cmds = append(cmds, cmdStartWatch(m.ctx, w))
		}
		return m, tea.Batch(cmds...)

	case libraryMsg:
		if msg.err != nil {
			m.fail("library", msg.err)
			return m, nil
		}
		if msg.note != "" {
			m.note(msg.note)
		}
		return m, m.setLibrary(msg.lib)

	case paletteSavedMsg:
		if msg.err != nil {
			m.fail("palette.save", msg.err)
			return m, nil
		}
		m.log.Info("palette.saved", "id", msg.id, "base", m.base)
		m.note("saved palette " + msg.id)
		return m, nil

	case noteMsg:
		if msg.err != nil {
			m.fail("command", msg.err)
			return m, nil
		}
		m.note(msg.note)
		return m, nil

	case watchStartedMsg:
		if msg.err != nil {
			m.watching = false
			m.log.Warn("library.watch.failed", "err", msg.err)
			return m, nil
		}
		m.watch = msg.ch
		return m, listenWatch(msg.ch)

	case libraryChangedMsg:
		m.log.Debug("library.reloaded")
		return m, tea.Batch(cmdLoadLibrary(m.library), listenWatch(m.watch))

	case tea.KeyMsg:
		switch m.focus {
		case focusInput:
			return m.updateInput(msg)
		case focusCommand:
			return m.updateCommand(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m.forward(msg)
}

func (m model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
	case focusCommand:
		m.command, cmd = m.command.Update(msg)
	default:
		m.colors, cmd = m.colors.Update(msg)
	}
	return m, cmd
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "enter":
		c, ok := m.highlighted()
		if !ok {
			return m, nil
		}
		return m, cmdLibrary(m.library, "selected "+c.Color, func(uc *usecase.ManageLibrary) (domain.Library, error) {
			return uc.Select(c.Color)
		})

	case "d", "delete":
		return m.deleteHighlighted()

	case "i", "a", "+":
		m.focus = focusInput
		m.input.Reset()
		cmd := m.input.Focus()
		return m, cmd

	case ":":
		m.focus = focusCommand
		m.command.Reset()
		cmd := m.command.Focus()
		return m, cmd

	case "t":
		return m.exec(command{name: "theme", args: []string{"toggle"}})

	case "s":
		return m.exec(command{name: "save"})
	}

	return m.forward(msg)
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.input.Blur()
		m.input.Reset()
		m.focus = focusList
		m.previewing = false
		m.setBase(usecase.CurrentColor(m.lib, m.defaultBase()))
		return m, nil

	case "enter":
		full, ok := colorspace.CompleteInput(m.input.Value())
		if !ok {
			m.errMsg = "Enter 1 to 6 hex digits"
			return m, nil
		}
		m.input.Blur()
		m.input.Reset()
		m.focus = focusList
		m.previewing = false
		return m, cmdAddColors(m.library, []string{full})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if norm := colorspace.NormalizeInput(m.input.Value()); norm != m.input.Value() {
		m.input.SetValue(norm)
		m.input.CursorEnd()
	}
	if _, err := colorspace.DecodeHex(m.input.Value()); err == nil {
		m.previewing = m.setBase(m.input.Value())
	}
	return m, cmd
}

func (m model) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.command.Blur()
		m.command.Reset()
		m.focus = focusList
		return m, nil

	case "enter":
		line := m.command.Value()
		m.command.Blur()
		m.command.Reset()
		m.focus = focusList

		c, err := parseCommand(line)
		if err != nil {
			m.errMsg = err.Error()
			m.status = ""
			return m, nil
		}
		if c.name == "" {
			return m, nil
		}
		m.log.Debug("tui.command", "name", c.name, "args", c.args)
		return m.exec(c)
	}

	var cmd tea.Cmd
	m.command, cmd = m.command.Update(msg)
	return m, cmd
}

func (m model) deleteHighlighted() (tea.Model, tea.Cmd) {
	c, ok := m.highlighted()
	if !ok {
		return m, nil
	}
	return m, cmdLibrary(m.library, "deleted "+c.Color, func(uc *usecase.ManageLibrary) (domain.Library, error) {
		return uc.Delete(c.ID)
	})
}

// exec runs a parsed command-bar line.
func (m model) exec(c command) (tea.Model, tea.Cmd) {
	switch c.name {
	case "quit":
		return m, tea.Quit

	case "add":
		colors := make([]string, 0, len(c.args))
		for _, a := range c.args {
			full, ok := completeColor(a)
			if !ok {
				m.errMsg = fmt.Sprintf("Invalid color %q", a)
				return m, nil
			}
			colors = append(colors, full)
		}
		return m, cmdAddColors(m.library, colors)

	case "select":
		full, ok := completeColor(c.args[0])
		if !ok {
			m.errMsg = fmt.Sprintf("Invalid color %q", c.args[0])
			return m, nil
		}
		return m, cmdLibrary(m.library, "selected "+full, func(uc *usecase.ManageLibrary) (domain.Library, error) {
			return uc.Select(full)
		})

	case "delete":
		if len(c.args) == 0 {
			return m.deleteHighlighted()
		}
		full, _ := completeColor(c.args[0])
		saved, ok := m.lib.Find(full)
		if !ok {
			m.errMsg = fmt.Sprintf("%s is not saved", c.args[0])
			return m, nil
		}
		return m, cmdLibrary(m.library, "deleted "+saved.Color, func(uc *usecase.ManageLibrary) (domain.Library, error) {
			return uc.Delete(saved.ID)
		})

	case "save":
		if m.palettes == nil {
			m.errMsg = "Saving palettes needs a workspace (:init)"
			return m, nil
		}
		return m, cmdSavePalette(m.palettes, m.base, strings.Join(c.args, " "))

	case "theme":
		dark := !m.lib.DarkMode
		if len(c.args) == 1 {
			switch strings.ToLower(c.args[0]) {
			case "dark":
				dark = true
			case "light":
				dark = false
			case "toggle":
			default:
				m.errMsg = fmt.Sprintf("Unknown theme %q", c.args[0])
				return m, nil
			}
		}
		return m, cmdLibrary(m.library, "", func(uc *usecase.ManageLibrary) (domain.Library, error) {
			return uc.SetDarkMode(dark)
		})

	case "import", "export":
		if m.deps.Swatches == nil {
			m.errMsg = "Swatch files are not available"
			return m, nil
		}
		path, err := homedir.Expand(c.args[0])
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		if c.name == "import" {
			return m, cmdImport(m.deps.Swatches, m.library, path)
		}
		name := "brutalist"
		if len(c.args) == 2 {
			name = c.args[1]
		}
		return m, cmdExport(m.deps.Swatches, m.library, path, name)

	case "init":
		if m.found {
			m.note("Workspace already open at " + m.workspace.Root)
			return m, nil
		}
		dir := m.cwd
		if len(c.args) == 1 {
			expanded, err := homedir.Expand(c.args[0])
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			dir = expanded
		}
		if strings.TrimSpace(dir) == "" {
			dir = "."
		}
		return m, cmdInitWorkspace(m.deps, dir, m.lib)
	}

	m.errMsg = fmt.Sprintf("unknown command %q", c.name)
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	header := m.theme.Title.Render("BRUTALIST") + "  " +
		m.theme.Subtitle.Render(fmt.Sprintf("base %s · %s theme", m.base, m.theme.Name))

	left := m.theme.Card.Render(m.colors.View())
	right := m.theme.Card.Render(renderPalette(m.pal) + "\n\n" + renderShowcase(m.show))
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	var prompt string
	switch m.focus {
	case focusInput:
		prompt = m.theme.Prompt.Render(m.input.View())
	case focusCommand:
		prompt = m.theme.Prompt.Render(m.command.View())
	}

	var line string
	switch {
	case m.errMsg != "":
		line = m.theme.Error.Render(clampString(m.errMsg, max(m.width-6, 20)))
	case m.status != "":
		line = m.theme.Status.Render(clampString(m.status, max(m.width-6, 20)))
	}

	help := m.theme.Help.Render("↑/↓ move • enter select • a add • d delete • t theme • s save • : command • q quit")

	parts := []string{header, "", body}
	if prompt != "" {
		parts = append(parts, prompt)
	}
	if line != "" {
		parts = append(parts, line)
	}
	parts = append(parts, help)
	return wrap.Render(strings.Join(parts, "\n"))
}
