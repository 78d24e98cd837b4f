package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scalar-collections/internal/cliargs"
	"scalar-collections/internal/gen"
)

func parse(t *testing.T, userConfig string, args ...string) (*CLI, *kong.Context) {
	t.Helper()

	cli, ctx, err := tryParse(t, userConfig, args...)
	require.NoError(t, err)

	ctx.Bind(slog.New(slog.DiscardHandler))
	ctx.BindTo(io.Discard, (*io.Writer)(nil))

	return cli, ctx
}

func tryParse(t *testing.T, userConfig string, args ...string) (*CLI, *kong.Context, error) {
	t.Helper()

	var cli CLI
	parser, err := newParser(&cli, userConfig,
		kong.Writers(io.Discard, io.Discard),
		kong.Exit(func(code int) { t.Fatalf("unexpected exit %d", code) }),
	)
	require.NoError(t, err)

	ctx, err := parser.Parse(cliargs.Normalize(args, "input", "output"))

	return &cli, ctx, err
}

func TestParseNamedArgumentRuns(t *testing.T) {
	cli, _ := parse(t, "", "-input", "my", "templates", "-output", "out", "dir")

	assert.Equal(t, "my templates", cli.Generate.Input)
	assert.Equal(t, "out dir", cli.Generate.Output)
}

func TestParseDefaults(t *testing.T) {
	cli, _ := parse(t, "", "--input", "in", "--output", "out")

	cfg := cli.Generate.Config()
	def := gen.DefaultConfig()
	assert.Equal(t, def.MaxDepth, cfg.MaxDepth)
	assert.Equal(t, def.TemplateExt, cfg.TemplateExt)
	assert.Equal(t, def.SourceExt, cfg.SourceExt)
	assert.True(t, cfg.Format)
	assert.Equal(t, "info", cli.Log.Level)

	cli, _ = parse(t, "", "generate", "--input", "in", "--output", "out", "--no-format", "--max-depth", "3")
	assert.False(t, cli.Generate.Format)
	assert.Equal(t, 3, cli.Generate.MaxDepth)
}

func TestParseConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"input": "from-file", "max_depth": 4, "log_level": "debug"}`), 0o644))

	cli, _ := parse(t, path, "--output", "out")

	assert.Equal(t, "from-file", cli.Generate.Input)
	assert.Equal(t, "out", cli.Generate.Output)
	assert.Equal(t, 4, cli.Generate.MaxDepth)
	assert.Equal(t, "debug", cli.Log.Level)

	cli, _ = parse(t, path, "--input", "flag", "--output", "out")
	assert.Equal(t, "flag", cli.Generate.Input, "flags override the file")
}

func TestGenerateRun(t *testing.T) {
	output := t.TempDir()
	_, ctx := parse(t, "", "-input", filepath.Join("..", "..", "templates"), "-output", output)

	require.NoError(t, ctx.Run())

	entries, err := os.ReadDir(filepath.Join(output, "collections"))
	require.NoError(t, err)
	assert.Len(t, entries, 7)
}

func TestGenerateRunFailures(t *testing.T) {
	input := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(input, "List.template"), []byte("x"), 0o644))

	_, ctx := parse(t, "", "--input", input, "--output", t.TempDir())
	err := ctx.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed-name")

	_, ctx = parse(t, "", "--input", filepath.Join(input, "missing"), "--output", t.TempDir())
	require.ErrorIs(t, ctx.Run(), gen.ErrConfig)
}

func TestParseRequiresInputAndOutput(t *testing.T) {
	_, _, err := tryParse(t, "", "--output", "out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--input")

	_, _, err = tryParse(t, "", "-input", "in")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output")

	path := filepath.Join(t.TempDir(), "scalar-generator.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"input": "from-file"}`), 0o644))

	cli, _, err := tryParse(t, path, "--output", "out")
	require.NoError(t, err, "a configuration file satisfies a required flag")
	assert.Equal(t, "from-file", cli.Generate.Input)
}

func TestKindsCommand(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, KindsCmd{}.Run(&buf))

	out := buf.String()
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "KindChar")
	assert.Contains(t, out, "[]uint16")
	assert.Equal(t, 8, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestConfigCandidatePaths(t *testing.T) {
	jsonPaths, yamlPaths, tomlPaths := configCandidatePaths("custom.yml")
	require.NotEmpty(t, yamlPaths)
	assert.Equal(t, "custom.yml", yamlPaths[0])
	assert.NotContains(t, jsonPaths, "custom.yml")
	assert.NotContains(t, tomlPaths, "custom.yml")

	jsonPaths, _, tomlPaths = configCandidatePaths("custom.toml")
	assert.Equal(t, "custom.toml", tomlPaths[0])
	assert.Equal(t, configBaseName+".json", filepath.Base(jsonPaths[0]))

	assert.Equal(t, "a.json", findUserConfig([]string{"--config=a.json"}))
	assert.Equal(t, "b.toml", findUserConfig([]string{"--input=x", "--config", "b.toml"}))
}
