package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

// BuildSettings holds archive defaults applied when a build does not override them.
type BuildSettings struct {
	Pattern         string
	Exclude         []string
	NestedDirs      []string
	IncludeDotFiles bool
}

// Config is the loaded workspace configuration.
type Config struct {
	// Root is the directory containing pb.yaml. Relative paths resolve against it.
	Root        string
	Sources     []Source
	Build       BuildSettings
	MaxDepth    int
	MetricsFile string
}

// Source looks up a configured source by name or numeric id.
func (c *Config) Source(ref string) (Source, error) {
	for _, s := range c.Sources {
		if s.Name == ref {
			return s, nil
		}
	}
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		for _, s := range c.Sources {
			if s.ID == id {
				return s, nil
			}
		}
	}
	return Source{}, zerr.With(ErrSourceNotFound, "source", ref)
}

// DefaultSource returns the only configured source, or an error when the choice is ambiguous.
func (c *Config) DefaultSource() (Source, error) {
	if len(c.Sources) == 1 {
		return c.Sources[0], nil
	}
	return Source{}, zerr.With(ErrSourceNotFound, "reason", "multiple sources configured, pass --source")
}
