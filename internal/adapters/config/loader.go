// Package config provides the configuration loader for pb.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/pb/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validSourceNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Load finds pb.yaml at or above cwd and returns the parsed configuration.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var pbfile Pbfile
	if err := readAndUnmarshalYAML(configPath, &pbfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	root := filepath.Clean(filepath.Dir(configPath))
	sources, err := buildSources(root, pbfile.Sources)
	if err != nil {
		return nil, err
	}

	build, err := l.buildSettings(pbfile.Build)
	if err != nil {
		return nil, err
	}

	maxDepth := pbfile.Scan.MaxDepth
	if maxDepth <= 0 {
		maxDepth = domain.DefaultMaxDepth
	}

	metricsFile := pbfile.Metrics.Textfile
	if metricsFile == "" {
		metricsFile = domain.DefaultMetricsPath()
	}

	return &domain.Config{
		Root:        root,
		Sources:     sources,
		Build:       build,
		MaxDepth:    maxDepth,
		MetricsFile: resolvePath(root, metricsFile),
	}, nil
}

func findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func buildSources(root string, dtos []SourceDTO) ([]domain.Source, error) {
	ids := make(map[int64]string, len(dtos))
	names := make(map[string]int64, len(dtos))
	sources := make([]domain.Source, 0, len(dtos))

	for _, dto := range dtos {
		if dto.ID <= 0 {
			return nil, zerr.With(domain.ErrInvalidSourceID, "source", dto.Name)
		}
		if !validSourceNameRegex.MatchString(dto.Name) {
			return nil, zerr.With(domain.ErrInvalidSourceName, "source_name", dto.Name)
		}
		if first, exists := ids[dto.ID]; exists {
			err := zerr.With(domain.ErrDuplicateSource, "source_id", dto.ID)
			err = zerr.With(err, "first_occurrence", first)
			return nil, zerr.With(err, "duplicate_at", dto.Name)
		}
		if _, exists := names[dto.Name]; exists {
			return nil, zerr.With(domain.ErrDuplicateSource, "source_name", dto.Name)
		}
		ids[dto.ID] = dto.Name
		names[dto.Name] = dto.ID

		path := resolvePath(root, dto.Path)
		buildDir := dto.BuildDir
		if buildDir == "" {
			buildDir = filepath.Join(path, "build")
		}

		sources = append(sources, domain.Source{
			ID:       dto.ID,
			Name:     dto.Name,
			Path:     path,
			BuildDir: resolvePath(root, buildDir),
		})
	}

	return sources, nil
}

func (l *Loader) buildSettings(dto BuildDTO) (domain.BuildSettings, error) {
	pattern := strings.TrimSpace(dto.Pattern)
	if pattern == "" {
		pattern = domain.DefaultPattern
	}
	if err := domain.ValidatePattern(pattern); err != nil {
		return domain.BuildSettings{}, err
	}
	if unknown := domain.UnknownTokens(pattern); len(unknown) > 0 {
		l.Logger.Warn(fmt.Sprintf("unknown tokens %s in pattern %q are ignored", strings.Join(unknown, ", "), pattern))
	}

	nested := dto.NestedDirs
	if len(nested) == 0 {
		nested = domain.DefaultNestedDirs()
	}

	return domain.BuildSettings{
		Pattern:         pattern,
		Exclude:         canonicalizeStrings(dto.Exclude),
		NestedDirs:      canonicalizeStrings(nested),
		IncludeDotFiles: dto.IncludeDotFiles,
	}, nil
}

func canonicalizeStrings(strs []string) []string {
	if len(strs) == 0 {
		return nil
	}

	sorted := make([]string, len(strs))
	copy(sorted, strs)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}

func resolvePath(root, p string) string {
	if p == "" {
		return root
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(root, p))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
