package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.StringP("chart", "c", "", "")
	fs.StringP("output", "o", "auto", "")
	fs.String("locale", "en", "")
	fs.BoolP("verbose", "v", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, used, err := Load("", testFlags(t))
	require.NoError(t, err)

	assert.Empty(t, used)
	assert.Empty(t, cfg.Chart)
	assert.Equal(t, "auto", cfg.Output)
	assert.Equal(t, "en", cfg.Locale)
	assert.False(t, cfg.Verbose)
	assert.NotEmpty(t, cfg.ProjectRoot)
}

func TestLoad_ConfigFileDiscovered(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "orgtree.yaml"), "chart: charts/org.yaml\noutput: markdown\nlocale: de\n")
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o750))
	t.Chdir(sub)

	cfg, used, err := Load("", testFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "orgtree.yaml", filepath.Base(used))
	assert.Equal(t, "markdown", cfg.Output)
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, "org.yaml", filepath.Base(cfg.Chart))
	assert.Equal(t, "charts", filepath.Base(filepath.Dir(cfg.Chart)))
	assert.True(t, filepath.IsAbs(cfg.Chart))
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "orgtree.yaml"), "output: markdown\nlocale: de\n")
	t.Chdir(dir)
	t.Setenv("ORGTREE_OUTPUT", "text")
	t.Setenv("ORGTREE_VERBOSE", "true")

	cfg, _, err := Load("", testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output, "env beats file")
	assert.Equal(t, "de", cfg.Locale)
	assert.True(t, cfg.Verbose)

	cfg, _, err = Load("", testFlags(t, "-o", "json", "--locale", "raw"))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output, "flag beats env")
	assert.Equal(t, "raw", cfg.Locale)
}

func TestLoad_UnrelatedEnvIgnored(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ORGTREE_SOMETHING_ELSE", "x")

	_, _, err := Load("", testFlags(t))
	require.NoError(t, err)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "conf", "custom.yaml")
	writeFile(t, cfgPath, "chart: org.yaml\n")
	t.Chdir(t.TempDir())

	cfg, used, err := Load(cfgPath, testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, cfgPath, used)
	assert.Equal(t, filepath.Join(dir, "conf"), cfg.ProjectRoot)
	assert.Equal(t, filepath.Join(dir, "conf", "org.yaml"), cfg.Chart)
}

func TestLoad_ChartFlagRelativeToWorkingDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "orgtree.yaml"), "chart: from-file.yaml\n")
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o750))
	t.Chdir(sub)

	cfg, _, err := Load("", testFlags(t, "--chart", "mine.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "mine.yaml", filepath.Base(cfg.Chart))
	assert.Equal(t, "sub", filepath.Base(filepath.Dir(cfg.Chart)))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		args    []string
		wantErr string
	}{
		{name: "unknown key", file: "colour: red\n", wantErr: "decode"},
		{name: "bad yaml", file: "output: [\n", wantErr: "error reading config file"},
		{name: "bad output", file: "output: xml\n", wantErr: "invalid output"},
		{name: "bad output flag", args: []string{"-o", "pdf"}, wantErr: "invalid output"},
		{name: "bad locale", args: []string{"--locale", "not a locale!"}, wantErr: "invalid locale"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.file != "" {
				writeFile(t, filepath.Join(dir, "orgtree.yaml"), tt.file)
			}
			t.Chdir(dir)

			_, _, err := Load("", testFlags(t, tt.args...))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), testFlags(t))
	require.Error(t, err)
}

func TestChartPath(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{ProjectRoot: dir}
	assert.Empty(t, cfg.ChartPath(), "no chart and no org.yaml means the sample")

	writeFile(t, filepath.Join(dir, "org.yaml"), "name: X\nvalue: 1\n")
	assert.Equal(t, filepath.Join(dir, "org.yaml"), cfg.ChartPath())

	cfg.Chart = "/elsewhere/chart.yaml"
	assert.Equal(t, "/elsewhere/chart.yaml", cfg.ChartPath())
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Default(), FromContext(ctx))
	assert.NotNil(t, GetLogger(ctx))

	cfg := &Config{Output: "json"}
	logger := NewLogger(os.Stderr, true)
	ctx = WithLogger(WithConfig(ctx, cfg), logger)

	assert.Same(t, cfg, FromContext(ctx))
	assert.Same(t, logger, GetLogger(ctx))
}
