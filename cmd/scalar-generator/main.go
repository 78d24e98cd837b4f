// Package main provides the CLI entrypoint for scalar-generator.
//
// scalar-generator expands specialization templates into one Go source file
// per ordered tuple of scalar kinds:
//   - Walks an input tree for "<K>.<name>.template" files
//   - Fills "#key#" / "#key.N#" placeholders from the scalar kind table
//   - Writes the results under an output tree with the same layout
//
// Flags may also come from a JSON, YAML or TOML file given with --config or
// found in the working directory as scalar-generator.{json,yaml,yml,toml}.
package main

import (
	"io"
	"os"

	"scalar-collections/internal/cliargs"
	"scalar-collections/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	args := cliargs.Normalize(os.Args[1:], "input", "output")

	var cli CLI
	parser, err := newParser(&cli, findUserConfig(args))
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to build parser: " + err.Error() + "\n")
		os.Exit(2)
	}

	ctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	logger, closers, err := log.Setup(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)
	ctx.BindTo(os.Stdout, (*io.Writer)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func newParser(cli *CLI, userConfig string, options ...kong.Option) (*kong.Kong, error) {
	jsonPaths, yamlPaths, tomlPaths := configCandidatePaths(userConfig)

	options = append([]kong.Option{
		kong.Name("scalar-generator"),
		kong.Description("Expand scalar specialization templates into Go sources"),
		kong.UsageOnError(),
		// Flags override configuration files; files are tried in priority order.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	}, options...)

	return kong.New(cli, options...)
}
