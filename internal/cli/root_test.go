package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/orgtree/internal/cli/output"
	"github.com/leapstack-labs/orgtree/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI in dir and returns stdout and stderr.
func run(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(dir)

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCLI_Demo(t *testing.T) {
	out, _, err := run(t, t.TempDir(), "demo", "-o", "markdown")
	require.NoError(t, err)
	testutil.AssertContains(t, out, "300,000")
	testutil.AssertContains(t, out, "200,000")
}

func TestCLI_TotalOnChartFile(t *testing.T) {
	dir := testutil.SetupTestProject(t, testutil.CompanyChart)

	out, _, err := run(t, dir, "total", "-o", "markdown", "--locale", "raw")
	require.NoError(t, err)
	assert.Equal(t, "- **Company:** 300000\n", out)

	out, _, err = run(t, dir, "total", "IT", "--iterative", "-o", "json")
	require.NoError(t, err)
	var got output.TotalOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "IT", got.Unit)
	assert.Equal(t, "iterative", got.Method)
	assert.InDelta(t, 200000, got.Total, 0)
}

func TestCLI_ChartFlagAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "charts", "small.yaml"), "name: Team\nunits:\n  - {name: A, value: 1.5}\n  - {name: B, value: 2}\n")
	testutil.WriteFile(t, filepath.Join(dir, "orgtree.yaml"), "chart: charts/small.yaml\noutput: json\n")

	out, _, err := run(t, dir, "total")
	require.NoError(t, err)
	var got output.TotalOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Team", got.Unit)
	assert.InDelta(t, 3.5, got.Total, 1e-9)

	out, _, err = run(t, dir, "total", "-c", filepath.Join("charts", "small.yaml"), "-o", "markdown")
	require.NoError(t, err)
	assert.Equal(t, "- **Team:** 3.50\n", out)
}

func TestCLI_EnvOverridesConfig(t *testing.T) {
	dir := testutil.SetupTestProject(t, testutil.CompanyChart)
	testutil.WriteFile(t, filepath.Join(dir, "orgtree.yaml"), "output: markdown\n")
	t.Setenv("ORGTREE_OUTPUT", "json")

	out, _, err := run(t, dir, "chain", "Dev2")
	require.NoError(t, err)
	var got output.ChainOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Chain, 3)
	assert.Equal(t, "Dev2", got.Chain[2].Name)
}

func TestCLI_AllCommandsProduceJSON(t *testing.T) {
	dir := testutil.SetupTestProject(t, testutil.CompanyChart)

	for _, args := range [][]string{
		{"demo"}, {"total"}, {"tree"}, {"list"}, {"levels"}, {"chain", "CEO"}, {"validate"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			out, _, err := run(t, dir, append(args, "-o", "json")...)
			require.NoError(t, err)
			assert.True(t, json.Valid([]byte(out)), "invalid JSON: %s", out)
		})
	}
}

func TestCLI_VerboseLogsToStderr(t *testing.T) {
	dir := testutil.SetupTestProject(t, testutil.CompanyChart)

	out, errOut, err := run(t, dir, "total", "-v", "-o", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
	testutil.AssertContains(t, errOut, "level=DEBUG")
	testutil.AssertContains(t, errOut, "loading chart")
}

func TestCLI_Errors(t *testing.T) {
	tests := []struct {
		name    string
		chart   string
		args    []string
		wantErr string
	}{
		{name: "unknown unit", args: []string{"total", "Nobody"}, wantErr: `"Nobody"`},
		{name: "chain needs a unit", args: []string{"chain"}, wantErr: "accepts 1 arg"},
		{name: "bad output", args: []string{"demo", "-o", "xml"}, wantErr: "invalid output"},
		{name: "missing chart", args: []string{"total", "-c", "missing.yaml"}, wantErr: "failed to load chart"},
		{
			name:    "cyclic chart",
			chart:   "units:\n  - {name: A, group: true, reports_to: B}\n  - {name: B, group: true, reports_to: A}\n",
			args:    []string{"validate"},
			wantErr: "cycle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.chart != "" {
				dir = testutil.SetupTestProject(t, tt.chart)
			}
			_, _, err := run(t, dir, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCLI_Completion(t *testing.T) {
	out, _, err := run(t, t.TempDir(), "completion", "bash")
	require.NoError(t, err)
	testutil.AssertContains(t, out, "orgtree")

	_, _, err = run(t, t.TempDir(), "completion", "tcsh")
	require.Error(t, err)
}

func TestCLI_UnitNameCompletionUsesConfiguredChart(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "charts", "small.yaml"), "name: Team\nunits:\n  - {name: A, value: 1}\n  - {name: B, value: 2}\n")
	testutil.WriteFile(t, filepath.Join(dir, "solo.yaml"), "name: Solo\nvalue: 7\n")
	testutil.WriteFile(t, filepath.Join(dir, "orgtree.yaml"), "chart: charts/small.yaml\n")

	out, _, err := run(t, dir, "__complete", "total", "")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"A", "B", "Team", ":4"}, lines)

	out, _, err = run(t, dir, "__complete", "chain", "-c", "solo.yaml", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Solo", ":4"}, strings.Split(strings.TrimSpace(out), "\n"))

	t.Setenv("ORGTREE_CHART", "solo.yaml")
	out, _, err = run(t, dir, "__complete", "tree", "")
	require.NoError(t, err)
	testutil.AssertContains(t, out, "Solo\n")
	testutil.AssertNotContains(t, out, "Team")
}

func TestCLI_DemoRawLocale(t *testing.T) {
	out, _, err := run(t, t.TempDir(), "demo", "-o", "markdown", "--locale", "raw")
	require.NoError(t, err)
	testutil.AssertContains(t, out, "- **Company:** 300000\n")
	testutil.AssertContains(t, out, "- **IT:** 200000\n")
}

func TestCLI_Version(t *testing.T) {
	out, _, err := run(t, t.TempDir(), "--version")
	require.NoError(t, err)
	testutil.AssertContains(t, out, "orgtree "+Version)
}
