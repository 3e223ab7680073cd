package domain

// Config represents the brutalist configuration loaded from brutalist.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
	Store    StoreConfig
}

type DefaultsConfig struct {
	Base   string
	Format string
}

type PathsConfig struct {
	PalettesDir string
	LibraryFile string
}

type StoreConfig struct {
	Index bool
}

// DefaultConfig provides sane defaults if brutalist.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Base:   DefaultBaseColor,
			Format: "pretty",
		},
		Paths: PathsConfig{
			PalettesDir: "palettes",
			LibraryFile: ".brutalist/library.json",
		},
		Store: StoreConfig{Index: true},
	}
}
