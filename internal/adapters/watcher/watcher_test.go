package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pb/internal/adapters/fs"
	"go.trai.ch/pb/internal/adapters/watcher"
	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/pb/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWatcher_ReportsChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "core"), domain.DirPerm))

	w, err := watcher.NewWatcher(fs.NewWalker(), fs.NewFilterCompiler(), log, 20*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var seen []string
	changed := make(chan struct{}, 16)

	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, root, func(paths []string) {
			mu.Lock()
			seen = append(seen, paths...)
			mu.Unlock()
			changed <- struct{}{}
		})
	}()

	target := filepath.Join(root, "core", "package.xml")
	require.Eventually(t, func() bool {
		// Keep touching the file until the watcher has registered the directory.
		_ = os.WriteFile(target, []byte("<package/>"), domain.PrivateFilePerm)
		select {
		case <-changed:
			return true
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	mu.Lock()
	assert.True(t, slices.Contains(seen, target))
	mu.Unlock()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
