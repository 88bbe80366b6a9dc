// Package config provides YAML-based settings for the converter: output
// locations, pack metadata, and batch tuning.
package config

// Config is the full converter configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Pack    PackConfig    `yaml:"pack"`
	Catalog CatalogConfig `yaml:"catalog"`
	Jobs    int           `yaml:"jobs"` // 0 = one worker per CPU
}

// OutputConfig controls where converted levels land.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// PackConfig is the metadata block written at the top of a .nlp pack.
type PackConfig struct {
	Name        string `yaml:"name"`
	Author      string `yaml:"author"`
	Description string `yaml:"description"`
}

// CatalogConfig points at the level catalog database.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output: OutputConfig{Dir: "levels"},
		Pack: PackConfig{
			Name: "Converted Levels",
		},
		Catalog: CatalogConfig{Path: "~/.lrconv/catalog.db"},
		Jobs:    0,
	}
}
