package config

// YAMLSwatches is the on-disk shape of a swatch file. The same struct backs
// the TOML codec.
type YAMLSwatches struct {
	Name   string   `yaml:"name" toml:"name"`
	Colors []string `yaml:"colors" toml:"colors"`
}
