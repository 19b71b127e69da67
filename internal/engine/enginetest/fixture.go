// Package enginetest writes package trees for engine tests.
package enginetest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.trai.ch/pb/internal/core/domain"
)

// Ref is a dependency reference written into a descriptor.
type Ref struct {
	Name       string
	MinVersion string
	File       string
	Optional   bool
}

// WritePackage creates dir below root with a package.xml for name and version.
// It returns the absolute package directory.
func WritePackage(t testing.TB, root, dir, name, version string, refs ...Ref) string {
	t.Helper()

	var required, optional strings.Builder
	for _, ref := range refs {
		attrs := ""
		if ref.MinVersion != "" {
			attrs += fmt.Sprintf(" minversion=%q", ref.MinVersion)
		}
		if ref.File != "" {
			attrs += fmt.Sprintf(" file=%q", ref.File)
		}
		if ref.Optional {
			fmt.Fprintf(&optional, "\t\t<optionalpackage%s>%s</optionalpackage>\n", attrs, ref.Name)
			continue
		}
		fmt.Fprintf(&required, "\t\t<requiredpackage%s>%s</requiredpackage>\n", attrs, ref.Name)
	}

	xml := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<package name=%q>
	<packageinformation>
		<version>%s</version>
	</packageinformation>
	<requiredpackages>
%s	</requiredpackages>
	<optionalpackages>
%s	</optionalpackages>
</package>
`, name, version, required.String(), optional.String())

	abs := filepath.Join(root, filepath.FromSlash(dir))
	WriteFile(t, abs, domain.DescriptorFileName, xml)
	return abs
}

// WriteFile writes content to the slash separated rel path below dir, creating parents.
func WriteFile(t testing.TB, dir, rel, content string) {
	t.Helper()

	p := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), domain.DirPerm); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, []byte(content), domain.FilePerm); err != nil {
		t.Fatalf("failed to write %s: %v", p, err)
	}
}

// Mkdir creates the slash separated rel directory below dir.
func Mkdir(t testing.TB, dir, rel string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Join(dir, filepath.FromSlash(rel)), domain.DirPerm); err != nil {
		t.Fatalf("failed to create %s: %v", rel, err)
	}
}
