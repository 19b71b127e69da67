// Package descriptor reads package.xml descriptors.
package descriptor

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/zerr"
)

type packageXML struct {
	XMLName  xml.Name       `xml:"package"`
	Name     string         `xml:"name,attr"`
	Info     informationXML `xml:"packageinformation"`
	Required []referenceXML `xml:"requiredpackages>requiredpackage"`
	Optional []referenceXML `xml:"optionalpackages>optionalpackage"`
}

type informationXML struct {
	Version     string `xml:"version"`
	PackageType string `xml:"packagetype"`
}

type referenceXML struct {
	Name       string `xml:",chardata"`
	MinVersion string `xml:"minversion,attr"`
	File       string `xml:"file,attr"`
}

// Reader implements ports.DescriptorReader for package.xml files.
type Reader struct{}

// NewReader creates a new descriptor reader.
func NewReader() *Reader {
	return &Reader{}
}

// Exists reports whether dir contains a package.xml file.
func (r *Reader) Exists(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, domain.DescriptorFileName))
	return err == nil && info.Mode().IsRegular()
}

// Read parses and validates the package.xml in dir.
func (r *Reader) Read(dir string) (*domain.Descriptor, error) {
	path := filepath.Join(dir, domain.DescriptorFileName)

	//nolint:gosec // Path is built from a scanned package directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDescriptorReadFailed.Error()), "path", path)
	}

	var doc packageXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidDescriptor.Error()), "path", path)
	}

	desc := &domain.Descriptor{
		Name:        strings.TrimSpace(doc.Name),
		Version:     strings.TrimSpace(doc.Info.Version),
		PackageType: strings.TrimSpace(doc.Info.PackageType),
	}

	// A name listed twice keeps its first declaration; required entries come first.
	seen := make(map[string]bool)
	desc.Required = toRefs(doc.Required, seen)
	desc.Optional = toRefs(doc.Optional, seen)

	if err := desc.Validate(path); err != nil {
		return nil, err
	}
	return desc, nil
}

func toRefs(refs []referenceXML, seen map[string]bool) []domain.DependencyRef {
	var out []domain.DependencyRef
	for _, ref := range refs {
		name := strings.TrimSpace(ref.Name)
		if name != "" && seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, domain.DependencyRef{
			Name:       name,
			MinVersion: strings.TrimSpace(ref.MinVersion),
			File:       strings.TrimSpace(ref.File),
		})
	}
	return out
}
