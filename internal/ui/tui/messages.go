package tui

import "github.com/sklarow/brutalist-color-pallete/internal/domain"

type workspaceOpenedMsg struct {
	cwd   string
	found bool
	ws    Workspace
	err   error
}

type libraryMsg struct {
	lib  domain.Library
	note string
	err  error
}

type paletteSavedMsg struct {
	id  string
	err error
}

type noteMsg struct {
	note string
	err  error
}

type watchStartedMsg struct {
	ch  <-chan struct{}
	err error
}

type libraryChangedMsg struct{}
