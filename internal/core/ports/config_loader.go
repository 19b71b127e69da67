package ports

import "go.trai.ch/pb/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds pb.yaml at or above cwd and returns the parsed configuration.
	Load(cwd string) (*domain.Config, error)
}
