package config

// Pbfile represents the structure of the pb.yaml configuration file.
type Pbfile struct {
	Version string      `yaml:"version"`
	Sources []SourceDTO `yaml:"sources"`
	Build   BuildDTO    `yaml:"build"`
	Scan    ScanDTO     `yaml:"scan"`
	Metrics MetricsDTO  `yaml:"metrics"`
}

// SourceDTO represents a source tree definition in the configuration.
type SourceDTO struct {
	ID       int64  `yaml:"id"`
	Name     string `yaml:"name"`
	Path     string `yaml:"path"`
	BuildDir string `yaml:"buildDir"`
}

// BuildDTO holds archive defaults.
type BuildDTO struct {
	Pattern         string   `yaml:"pattern"`
	Exclude         []string `yaml:"exclude"`
	NestedDirs      []string `yaml:"nestedDirs"`
	IncludeDotFiles bool     `yaml:"includeDotFiles"`
}

// ScanDTO holds catalog scan settings.
type ScanDTO struct {
	MaxDepth int `yaml:"maxDepth"`
}

// MetricsDTO configures the metrics textfile.
type MetricsDTO struct {
	Textfile string `yaml:"textfile"`
}
