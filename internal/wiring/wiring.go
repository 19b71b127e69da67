// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pb/internal/adapters/archive"
	_ "go.trai.ch/pb/internal/adapters/cache"
	_ "go.trai.ch/pb/internal/adapters/cas"
	_ "go.trai.ch/pb/internal/adapters/config"
	_ "go.trai.ch/pb/internal/adapters/descriptor"
	_ "go.trai.ch/pb/internal/adapters/fs"
	_ "go.trai.ch/pb/internal/adapters/git"
	_ "go.trai.ch/pb/internal/adapters/logger"
	_ "go.trai.ch/pb/internal/adapters/metrics"
	_ "go.trai.ch/pb/internal/adapters/sqlite"
	_ "go.trai.ch/pb/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/pb/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/pb/internal/app"
	_ "go.trai.ch/pb/internal/engine/builder"
	_ "go.trai.ch/pb/internal/engine/registry"
)
