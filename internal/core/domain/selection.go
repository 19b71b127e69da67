package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Override pins a dependency name to a specific catalog entry.
type Override struct {
	Hash      string `json:"hash" yaml:"hash"`
	Directory string `json:"directory" yaml:"directory"`
}

// Selection maps dependency names to manual overrides.
type Selection map[string]Override

// Names returns the overridden names in sorted order.
func (s Selection) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the override for name, if any.
func (s Selection) Lookup(name string) (Override, bool) {
	if s == nil {
		return Override{}, false
	}
	o, ok := s[name]
	return o, ok
}

// ParseSelection parses "name=hash:directory" values. Either hash or directory may be empty,
// but not both.
func ParseSelection(values []string) (Selection, error) {
	sel := make(Selection, len(values))
	for _, value := range values {
		name, rest, ok := strings.Cut(value, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, zerr.With(ErrInvalidSelection, "selection", value)
		}

		hash, dir, _ := strings.Cut(rest, ":")
		hash = strings.TrimSpace(hash)
		dir = strings.TrimSpace(dir)
		if hash == "" && dir == "" {
			return nil, zerr.With(ErrInvalidSelection, "selection", value)
		}

		sel[name] = Override{Hash: hash, Directory: dir}
	}
	return sel, nil
}
