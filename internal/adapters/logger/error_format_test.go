package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pb/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	inner := zerr.With(zerr.New("descriptor is invalid"), "path", "core/package.xml")
	outer := zerr.With(zerr.Wrap(inner, "scan failed"), "source", "community")

	entries := logger.CollectErrorEntries(outer)
	require.Len(t, entries, 2)
	assert.Equal(t, "scan failed", entries[0].Message)
	assert.Equal(t, "community", entries[0].Metadata["source"])
	assert.Equal(t, "descriptor is invalid", entries[1].Message)
	assert.Equal(t, "core/package.xml", entries[1].Metadata["path"])

	std := logger.CollectErrorEntries(errors.New("plain"))
	require.Len(t, std, 1)
	assert.Nil(t, std[0].Metadata)

	assert.Empty(t, logger.CollectErrorEntries(nil))
}

func TestCollectErrorEntries_Joined(t *testing.T) {
	first := zerr.With(zerr.New("dependency not found"), "dependency", "core")
	second := zerr.Wrap(errors.New("boom"), "cycle")

	entries := logger.CollectErrorEntries(errors.Join(zerr.New("preview failed"), errors.Join(first, second)))
	require.Len(t, entries, 4)
	assert.Equal(t, "preview failed", entries[0].Message)
	assert.Equal(t, "dependency not found", entries[1].Message)
	assert.Equal(t, "core", entries[1].Metadata["dependency"])
	assert.Equal(t, "cycle", entries[2].Message)
	assert.Equal(t, "boom", entries[3].Message)
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "three entries",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "sorted metadata on main error",
			entries: []logger.ErrorEntry{{
				Message:  "dependency missing",
				Metadata: map[string]any{"package": "addon", "file": "core.tar.gz"},
			}},
			want: "Error: dependency missing\n       file: core.tar.gz\n       package: addon",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"cycle": "a -> b -> a"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      cycle: a -> b -> a",
		},
		{
			name:    "multiline cause",
			entries: []logger.ErrorEntry{{Message: "main"}, {Message: "line1\nline2"}},
			want:    "Error: main\n\n  Caused by:\n    → line1\n      line2",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
