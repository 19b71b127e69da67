package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pb/cmd/pb/commands"
	"go.trai.ch/pb/internal/app"
	"go.trai.ch/pb/internal/build"
	"go.trai.ch/pb/internal/core/domain"
)

type mockApp struct {
	scanOpts      *app.ScanOptions
	previewOpts   *app.PreviewOptions
	buildOpts     *app.BuildOptions
	cleanOpts     *app.CleanOptions
	watchOpts     *app.WatchOptions
	resourceOpts  *app.ResourcesOptions
	selectionArgs []string
	err           error
}

func (m *mockApp) Scan(_ context.Context, opts app.ScanOptions) error {
	m.scanOpts = &opts
	return m.err
}

func (m *mockApp) Preview(_ context.Context, opts app.PreviewOptions) error {
	m.previewOpts = &opts
	return m.err
}

func (m *mockApp) Build(_ context.Context, opts app.BuildOptions) error {
	m.buildOpts = &opts
	return m.err
}

func (m *mockApp) Clean(_ context.Context, opts app.CleanOptions) error {
	m.cleanOpts = &opts
	return m.err
}

func (m *mockApp) Selection(_ context.Context, source, directory string) error {
	m.selectionArgs = []string{source, directory}
	return m.err
}

func (m *mockApp) Watch(_ context.Context, opts app.WatchOptions) error {
	m.watchOpts = &opts
	return m.err
}

func (m *mockApp) Resources(_ context.Context, opts app.ResourcesOptions) error {
	m.resourceOpts = &opts
	return m.err
}

func execute(t *testing.T, mock *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "build", "addon",
			"--source", "community",
			"--pattern", "pn_pv_pr",
			"--select", "com.example.core=abc:core/",
			"--select", "com.example.ui=:ui/",
			"--save-selection",
			"--exclude", "*.bak,node_modules",
			"--include-dotfiles",
		)
		require.NoError(t, err)
		require.NotNil(t, mock.buildOpts)

		opts := *mock.buildOpts
		assert.Equal(t, "community", opts.Source)
		assert.Equal(t, "addon", opts.Directory)
		assert.Equal(t, "pn_pv_pr", opts.Pattern)
		assert.True(t, opts.SaveSelection)
		assert.True(t, opts.IncludeDotFiles)
		assert.Equal(t, []string{"*.bak", "node_modules"}, opts.Exclude)
		assert.Equal(t, domain.Selection{
			"com.example.core": {Hash: "abc", Directory: "core/"},
			"com.example.ui":   {Directory: "ui/"},
		}, opts.Selection)
	})

	t.Run("rejects malformed selection", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "build", "addon", "--select", "broken")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidSelection.Error())
		assert.Nil(t, mock.buildOpts)
	})

	t.Run("requires a directory", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "build")
		require.Error(t, err)
		assert.Nil(t, mock.buildOpts)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{err: errors.New("simulated error")}
		_, err := execute(t, mock, "build", "addon")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Preview(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "preview", "addon", "-s", "2", "--select", "com.example.core=abc")
	require.NoError(t, err)
	require.NotNil(t, mock.previewOpts)
	assert.Equal(t, "2", mock.previewOpts.Source)
	assert.Equal(t, "addon", mock.previewOpts.Directory)
	assert.Equal(t, domain.Selection{"com.example.core": {Hash: "abc"}}, mock.previewOpts.Selection)
}

func TestCommands_Scan(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "scan", "community", "extras")
	require.NoError(t, err)
	require.NotNil(t, mock.scanOpts)
	assert.Equal(t, []string{"community", "extras"}, mock.scanOpts.Sources)
}

func TestCommands_Clean(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want app.CleanOptions
	}{
		{"default", []string{"clean"}, app.CleanOptions{Records: true, Cache: true}},
		{"archive", []string{"clean", "addon.tar.gz", "-s", "community"}, app.CleanOptions{Source: "community", Archive: "addon.tar.gz"}},
		{"all archives", []string{"clean", "--archives"}, app.CleanOptions{All: true}},
		{"cache only", []string{"clean", "--cache"}, app.CleanOptions{Cache: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockApp{}
			_, err := execute(t, mock, tt.args...)
			require.NoError(t, err)
			require.NotNil(t, mock.cleanOpts)
			assert.Equal(t, tt.want, *mock.cleanOpts)
		})
	}
}

func TestCommands_Selection(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "selection", "addon", "--source", "community")
	require.NoError(t, err)
	assert.Equal(t, []string{"community", "addon"}, mock.selectionArgs)
}

func TestCommands_Watch(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "watch", "-s", "extras")
	require.NoError(t, err)
	require.NotNil(t, mock.watchOpts)
	assert.Equal(t, "extras", mock.watchOpts.Source)
}

func TestCommands_Resources(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "resources", "--source", "community")
	require.NoError(t, err)
	require.NotNil(t, mock.resourceOpts)
	assert.Equal(t, "community", mock.resourceOpts.Source)

	_, err = execute(t, &mockApp{}, "resources", "extra")
	require.Error(t, err)
}

func TestCommands_Patterns(t *testing.T) {
	out, err := execute(t, &mockApp{}, "patterns")
	require.NoError(t, err)
	assert.Contains(t, out, "pn_pv (default)\n")
	assert.Contains(t, out, "pn_pv_pr_t\n")
}

func TestCommands_JSON(t *testing.T) {
	cli := commands.New(&mockApp{})
	var got []bool
	cli.OnJSON(func(enable bool) { got = append(got, enable) })
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"--json", "scan"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, []bool{true}, got)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}
