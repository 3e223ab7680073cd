package usecase

import "errors"

var (
	errNoPaletteStore = errors.New("palette store not configured (is there a workspace?)")
	errNoLibraryStore = errors.New("library store not configured (is there a workspace?)")
)
