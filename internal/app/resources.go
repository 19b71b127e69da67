package app

import (
	"context"
	"fmt"

	"go.trai.ch/pb/internal/core/domain"
)

// ResourcesOptions configuration for the Resources method.
type ResourcesOptions struct {
	// Source limits the listing to one source. Empty lists every source.
	Source string
}

// Resources prints the setup resources found by the last scan as "source directory" lines.
func (a *App) Resources(ctx context.Context, opts ResourcesOptions) error {
	ws, err := a.openWorkspace(ctx)
	if err != nil {
		return err
	}
	defer ws.close()

	var only *domain.Source
	if opts.Source != "" {
		src, err := ws.cfg.Source(opts.Source)
		if err != nil {
			return err
		}
		only = &src
	}

	names := make(map[int64]string, len(ws.cfg.Sources))
	for _, src := range ws.cfg.Sources {
		names[src.ID] = src.Name
	}

	resources, err := a.registry.SetupResources(ctx, ws.Workspace)
	if err != nil {
		return err
	}

	printed := 0
	for _, res := range resources {
		if only != nil && res.SourceID != only.ID {
			continue
		}
		name, ok := names[res.SourceID]
		if !ok {
			continue
		}
		_, _ = fmt.Fprintf(a.out, "%s %s\n", name, res.Directory)
		printed++
	}

	if printed == 0 {
		a.logger.Info("no setup resources found, run scan first")
	}
	return nil
}
