// Package domain contains the core domain models for package catalogs, dependency resolution and archive builds.
package domain

import (
	"path"
	"strings"

	"go.trai.ch/zerr"
)

// DependencyKind distinguishes required from optional dependency references.
type DependencyKind string

const (
	// DependencyRequired marks a reference listed under requiredpackages.
	DependencyRequired DependencyKind = "required"
	// DependencyOptional marks a reference listed under optionalpackages.
	DependencyOptional DependencyKind = "optional"
)

// DependencyRef is a dependency reference as declared in a descriptor.
// MinVersion and File are empty when not declared.
type DependencyRef struct {
	Name       string
	MinVersion string
	File       string
}

// Descriptor is the validated content of a package descriptor.
type Descriptor struct {
	Name        string
	Version     string
	PackageType string
	Required    []DependencyRef
	Optional    []DependencyRef
}

// Validate checks the fields every descriptor must carry.
func (d *Descriptor) Validate(location string) error {
	if strings.TrimSpace(d.Name) == "" {
		return zerr.With(zerr.With(ErrInvalidDescriptor, "reason", "missing package name"), "path", location)
	}
	if strings.TrimSpace(d.Version) == "" {
		return zerr.With(zerr.With(ErrInvalidDescriptor, "reason", "missing package version"), "path", location)
	}
	for _, ref := range d.Refs() {
		if strings.TrimSpace(ref.Name) == "" {
			return zerr.With(zerr.With(ErrInvalidDescriptor, "reason", "dependency without name"), "path", location)
		}
	}
	return nil
}

// Refs returns required references followed by optional references.
func (d *Descriptor) Refs() []DependencyRef {
	refs := make([]DependencyRef, 0, len(d.Required)+len(d.Optional))
	refs = append(refs, d.Required...)
	refs = append(refs, d.Optional...)
	return refs
}

// DependencyEdge links an owning package to a dependency by name.
type DependencyEdge struct {
	OwnerHash  string         `json:"owner_hash"`
	Name       string         `json:"name"`
	MinVersion string         `json:"min_version,omitzero"`
	File       string         `json:"file,omitzero"`
	Kind       DependencyKind `json:"kind"`
}

// Package is a catalog entry identified by source, name and directory.
type Package struct {
	Hash        string           `json:"hash"`
	SourceID    int64            `json:"source_id"`
	Name        string           `json:"name"`
	Version     string           `json:"version"`
	PackageType string           `json:"package_type,omitzero"`
	Directory   string           `json:"directory"`
	Edges       []DependencyEdge `json:"edges,omitzero"`
}

// NewPackage builds a catalog entry from a descriptor found at directory.
// The directory is normalized before hashing.
func NewPackage(sourceID int64, directory string, desc *Descriptor) Package {
	dir := NormalizeDirectory(directory)
	hash := PackageHash(sourceID, desc.Name, dir)

	pkg := Package{
		Hash:        hash,
		SourceID:    sourceID,
		Name:        desc.Name,
		Version:     desc.Version,
		PackageType: desc.PackageType,
		Directory:   dir,
	}

	for _, ref := range desc.Required {
		pkg.Edges = append(pkg.Edges, newEdge(hash, ref, DependencyRequired))
	}
	for _, ref := range desc.Optional {
		pkg.Edges = append(pkg.Edges, newEdge(hash, ref, DependencyOptional))
	}

	return pkg
}

func newEdge(owner string, ref DependencyRef, kind DependencyKind) DependencyEdge {
	return DependencyEdge{
		OwnerHash:  owner,
		Name:       ref.Name,
		MinVersion: ref.MinVersion,
		File:       ref.File,
		Kind:       kind,
	}
}

// NormalizeDirectory converts a source-relative directory into the catalog form:
// forward slashes, no leading "./", and a trailing slash unless it is the source root.
func NormalizeDirectory(dir string) string {
	dir = strings.ReplaceAll(dir, "\\", "/")
	if dir == "" || dir == "." || dir == "./" {
		return ""
	}
	dir = path.Clean(dir)
	dir = strings.TrimPrefix(dir, "./")
	dir = strings.TrimPrefix(dir, "/")
	if dir == "." || dir == "" {
		return ""
	}
	return dir + "/"
}

// Source is a checked-out code tree plus its build output directory.
type Source struct {
	ID       int64
	Name     string
	Path     string
	BuildDir string
	Revision string
}

// SetupResource is a setup bundle found below a wcfsetup directory.
type SetupResource struct {
	SourceID  int64  `json:"source_id"`
	Directory string `json:"directory"`
}

// Catalog is every package of one source in scan order.
type Catalog struct {
	SourceID int64     `json:"source_id"`
	Packages []Package `json:"packages"`
}

// ByHash looks up a package by its identity hash.
func (c *Catalog) ByHash(hash string) (Package, bool) {
	for _, p := range c.Packages {
		if p.Hash == hash {
			return p, true
		}
	}
	return Package{}, false
}

// ByDirectory looks up a package by its normalized directory.
func (c *Catalog) ByDirectory(dir string) (Package, bool) {
	dir = NormalizeDirectory(dir)
	for _, p := range c.Packages {
		if p.Directory == dir {
			return p, true
		}
	}
	return Package{}, false
}

// Candidates returns every package with the given name in scan order.
func (c *Catalog) Candidates(name string) []Package {
	var out []Package
	for _, p := range c.Packages {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out
}

// EdgeCount returns the number of dependency edges across the catalog.
func (c *Catalog) EdgeCount() int {
	n := 0
	for _, p := range c.Packages {
		n += len(p.Edges)
	}
	return n
}
