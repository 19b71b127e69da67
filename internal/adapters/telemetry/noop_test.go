package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pb/internal/adapters/telemetry"
	"go.trai.ch/pb/internal/core/domain"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx := context.Background()
	got, vertex := tel.Record(ctx, "com.example.core")
	assert.Equal(t, ctx, got)
	require.NotNil(t, vertex)

	vertex.Log(domain.LogLevelInfo, "msg")
	vertex.Cached()
	vertex.Complete(errors.New("ignored"))
	require.NoError(t, tel.Close())

	m := &telemetry.NoOpMetrics{}
	m.ObserveBuild("core", 1, "success")
	m.IncResolutionIssue("not_found")
	m.SetCatalogSize("community", 3)
	require.NoError(t, m.Flush("ignored"))
}
