package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{"a":1,"b":[true,null]}`

const sampleIndented = `{
  "a": 1,
  "b": [
    true,
    null
  ]
}`

const samplePage = `<html><head></head><body><pre>{"a":1}</pre></body></html>`

// isolateEnv points config and data directories at temp dirs and keeps the
// clipboard off.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("JSONPEEK_CLIPBOARD_ENABLED", "false")
	t.Setenv("JSONPEEK_LOG_LEVEL", "error")
}

// resetFlags restores every flag to its default. Cobra keeps parsed values
// between Execute calls on the same command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--color", "never"}, args...))
	err := rootCmd.Execute()
	if app != nil {
		_ = app.Close()
	}
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFormat_Stdin(t *testing.T) {
	isolateEnv(t)

	res := execute(t, sampleJSON, "--ephemeral", "format", "--no-copy", "--indent", "2")
	require.NoError(t, res.err)
	assert.Equal(t, sampleIndented, strings.TrimSpace(res.stdout))
}

func TestFormat_File(t *testing.T) {
	isolateEnv(t)
	path := writeFile(t, t.TempDir(), "in.json", sampleJSON)

	res := execute(t, "", "--ephemeral", "format", "--no-copy", path)
	require.NoError(t, res.err)
	assert.Equal(t, sampleIndented, strings.TrimSpace(res.stdout))
}

func TestFormat_IndentClamped(t *testing.T) {
	isolateEnv(t)

	res := execute(t, `{"a":1}`, "--ephemeral", "format", "--no-copy", "--indent", "20")
	require.NoError(t, res.err)
	assert.Equal(t, "{\n"+strings.Repeat(" ", 10)+"\"a\": 1\n}", strings.TrimSpace(res.stdout))

	res = execute(t, `{"a":1}`, "--ephemeral", "format", "--no-copy", "--indent", "-3")
	require.NoError(t, res.err)
	assert.Equal(t, `{"a":1}`, strings.TrimSpace(res.stdout))
}

func TestFormat_PasteAndNoCopyExclusive(t *testing.T) {
	isolateEnv(t)

	res := execute(t, "", "--ephemeral", "format", "--paste", "--no-copy")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "paste")
	assert.Contains(t, res.err.Error(), "no-copy")
}

func TestFormat_InvalidJSON(t *testing.T) {
	isolateEnv(t)

	res := execute(t, "not json", "--ephemeral", "format", "--no-copy")
	require.Error(t, res.err)
	assert.Empty(t, res.stdout)
}

func TestReadInput_SizeLimit(t *testing.T) {
	isolateEnv(t)
	prev := maxInputBytes
	maxInputBytes = 8
	t.Cleanup(func() { maxInputBytes = prev })

	res := execute(t, `{"a":1,"b":2}`, "--ephemeral", "format", "--no-copy")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "stdin is larger than 8 bytes")

	res = execute(t, `{"a":1}`, "--ephemeral", "compress", "--no-copy")
	require.NoError(t, res.err)
	assert.Equal(t, `{"a":1}`, strings.TrimSpace(res.stdout))
}

func TestCompress(t *testing.T) {
	isolateEnv(t)

	res := execute(t, "{\n  \"a\": 1,\n  \"b\": [ true, null ]\n}", "--ephemeral", "compress", "--no-copy")
	require.NoError(t, res.err)
	assert.Equal(t, `{"a":1,"b":[true,null]}`, strings.TrimSpace(res.stdout))
}

func TestExport_WritesFormattedFile(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	res := execute(t, sampleJSON, "--ephemeral", "export", "--dir", dir)
	require.NoError(t, res.err)

	data, err := os.ReadFile(filepath.Join(dir, "formatted.json"))
	require.NoError(t, err)
	assert.Equal(t, sampleIndented, string(data))
}

func TestHistorySelect(t *testing.T) {
	isolateEnv(t)

	require.NoError(t, execute(t, `{"n":1}`, "format", "--no-copy").err)
	require.NoError(t, execute(t, `{"n":2}`, "format", "--no-copy").err)

	res := execute(t, "", "history", "select", "1")
	require.NoError(t, res.err)
	assert.Equal(t, "{\n  \"n\": 2\n}", strings.TrimSpace(res.stdout))

	res = execute(t, "", "history", "select", "2")
	require.NoError(t, res.err)
	assert.Equal(t, "{\n  \"n\": 1\n}", strings.TrimSpace(res.stdout))

	res = execute(t, "", "history", "select", "3")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "history has 2 entries")

	res = execute(t, "", "history", "select", "0")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid entry number")
}

func TestOptions_Reset(t *testing.T) {
	isolateEnv(t)

	res := execute(t, "", "options", "--theme", "dark", "--indent", "6")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "dark")

	res = execute(t, "", "options", "--reset")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "light")
	assert.Regexp(t, `indent\s+2`, res.stdout)

	res = execute(t, "", "options")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "light")
	assert.Regexp(t, `indent\s+2`, res.stdout)

	res = execute(t, "", "options", "--reset", "--theme", "dark")
	require.Error(t, res.err)
}

func TestScan_SingleFileToStdout(t *testing.T) {
	isolateEnv(t)
	path := writeFile(t, t.TempDir(), "page.html", samplePage)

	res := execute(t, "", "--ephemeral", "scan", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "formatted-json")
	assert.Contains(t, res.stdout, "Format JSON")
}

func TestScan_MultipleFilesNeedOutDir(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	a := writeFile(t, dir, "a.html", samplePage)
	b := writeFile(t, dir, "b.html", samplePage)

	res := execute(t, "", "--ephemeral", "scan", a, b)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "--out-dir is required")
}

func TestScan_OutDirWritesEachFile(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	out := t.TempDir()
	a := writeFile(t, dir, "a.html", samplePage)
	b := writeFile(t, dir, "b.html", samplePage)

	res := execute(t, "", "--ephemeral", "scan", "--out-dir", out, a, b)
	require.NoError(t, res.err)

	for _, name := range []string{"a.html", "b.html"} {
		data, err := os.ReadFile(filepath.Join(out, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "formatted-json", name)
	}
}

func TestScan_DuplicateBaseNames(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	out := t.TempDir()
	a := writeFile(t, dir, "one/index.html", samplePage)
	b := writeFile(t, dir, "two/index.html", samplePage)

	res := execute(t, "", "--ephemeral", "scan", "--out-dir", out, a, b)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), a)
	assert.Contains(t, res.err.Error(), b)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOutputNames(t *testing.T) {
	names, err := outputNames([]string{"x/a.html", "y/b.html", "c.html"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.html", "b.html", "c.html"}, names)

	_, err = outputNames([]string{"x/a.html", "y/b.html", "z/a.html"})
	assert.EqualError(t, err, "x/a.html and z/a.html would both be written as a.html")
}
