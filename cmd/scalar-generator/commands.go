package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"scalar-collections/internal/gen"
	"scalar-collections/scalar"
)

// CLI is the root command line of scalar-generator.
type CLI struct {
	Config string `help:"Configuration file (JSON, YAML or TOML); flags override it." placeholder:"FILE"`

	Log struct {
		Level string `help:"Log level." default:"info" enum:"debug,info,warn,error"`
		File  string `help:"Also write logs to this file." placeholder:"FILE"`
	} `embed:"" prefix:"log-"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Expand templates into Go sources (default)."`
	Kinds    KindsCmd    `cmd:"" help:"Print the scalar kind table templates are expanded over."`
}

// GenerateCmd runs the generator driver.
type GenerateCmd struct {
	Input       string `help:"Root directory of the templates." placeholder:"DIR" required:""`
	Output      string `help:"Root directory generated files are written under." placeholder:"DIR" required:""`
	MaxDepth    int    `help:"Maximum directory depth searched for templates." default:"16"`
	TemplateExt string `help:"Extension of template files." default:".template"`
	SourceExt   string `help:"Extension appended to generated files." default:".go"`
	Format      bool   `help:"Run go/format over Go output." default:"true" negatable:""`
}

// Config resolves the flags into a driver configuration.
func (c *GenerateCmd) Config() gen.Config {
	cfg := gen.DefaultConfig()
	cfg.InputDir = c.Input
	cfg.OutputDir = c.Output
	cfg.MaxDepth = c.MaxDepth
	cfg.TemplateExt = c.TemplateExt
	cfg.SourceExt = c.SourceExt
	cfg.Format = c.Format

	return cfg
}

// Run expands all templates; any failed template makes it return an error.
func (c *GenerateCmd) Run(logger *slog.Logger) error {
	cfg := c.Config()
	logger.Debug("starting generation", "input", cfg.InputDir, "output", cfg.OutputDir, "max_depth", cfg.MaxDepth)

	report, err := gen.NewDriver(cfg, scalar.Kinds(), logger).Run()
	if err != nil {
		return err
	}

	for _, w := range report.Diagnostics.Warnings {
		logger.Warn(w.String())
	}

	return nil
}

// KindsCmd prints the kind table.
type KindsCmd struct{}

func (KindsCmd) Run(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KIND\tTYPE\tFRIENDLY\tBUFFER\tELEM\tBITS")

	for _, m := range scalar.Kinds() {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			m.Kind, m.TypeName, m.FriendlyName, m.BufferTypeName, m.ElemType, m.Bits())
	}

	return w.Flush()
}
