package gen

import (
	"errors"
	"fmt"
	"go/format"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"scalar-collections/internal/combo"
	"scalar-collections/internal/diagnostic"
	"scalar-collections/internal/tmpl"
	"scalar-collections/scalar"
)

var (
	// ErrDuplicateOutput reports two combinations filling to the same file.
	ErrDuplicateOutput = errors.New("duplicate output")
	// ErrBadOutputName reports a filled name that is not a plain file name.
	ErrBadOutputName = errors.New("bad output name")
	// ErrFormat reports filled Go output that go/format rejects.
	ErrFormat = errors.New("formatting generated source")
)

// GeneratedFile represents one filled template.
type GeneratedFile struct {
	// Template is the template path relative to the input root.
	Template string
	// Path is the output path relative to the output root, slash-separated.
	Path string
	// Content is the filled (and, for Go, formatted) source.
	Content []byte
}

// Report summarizes a generator run.
type Report struct {
	// Templates lists the discovered templates in processing order.
	Templates []string
	// Written lists the written files relative to the output root.
	Written     []string
	Diagnostics diagnostic.Diagnostics
}

// Driver expands every template under an input tree over a kind table.
type Driver struct {
	config  Config
	kinds   []scalar.Meta
	fillers map[string]tmpl.Filler[scalar.Meta]
	logger  *slog.Logger
}

// NewDriver creates a Driver. A nil logger discards output.
func NewDriver(config Config, kinds []scalar.Meta, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Driver{
		config:  config,
		kinds:   kinds,
		fillers: KindFillers(),
		logger:  logger,
	}
}

// Run generates all templates.
//
// Configuration errors abort before anything is written. A failing template
// is recorded and the remaining templates are still processed; the returned
// error is then non-nil and the report lists every failure.
func (d *Driver) Run() (*Report, error) {
	err := d.config.Validate()
	if err != nil {
		return nil, err
	}

	err = ensureDir(d.config.OutputDir)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	fsys := os.DirFS(d.config.InputDir)

	report.Templates, err = d.discover(fsys, &report.Diagnostics)
	if err != nil {
		return report, fmt.Errorf("discovering templates in %s: %w", d.config.InputDir, err)
	}

	owners := map[string]string{}
	for _, name := range report.Templates {
		d.logger.Debug("expanding template", "template", name)

		files, err := d.GenerateTemplate(fsys, name)
		if err != nil {
			d.fail(&report.Diagnostics, codeOf(err), name, err)
			continue
		}

		err = claim(owners, files)
		if err != nil {
			d.fail(&report.Diagnostics, diagnostic.CodeDuplicateOutput, name, err)
			continue
		}

		written, err := WriteFiles(files, d.config.OutputDir)
		for _, output := range written {
			d.logger.Debug("wrote file", "template", name, "output", output)
		}

		report.Written = append(report.Written, written...)

		if err != nil {
			d.fail(&report.Diagnostics, diagnostic.CodeWriteFailed, name, err)
			continue
		}

		report.Diagnostics.AddInfo(diagnostic.CodeGenerated,
			fmt.Sprintf("%d file(s) generated", len(written)), name, "")
	}

	d.logger.Info("generation finished",
		"templates", len(report.Templates),
		"files", len(report.Written),
		"errors", len(report.Diagnostics.Errors))

	return report, report.Diagnostics.Error()
}

// GenerateTemplate fills the template at name (relative to fsys) with every
// combination of kinds, without writing anything.
func (d *Driver) GenerateTemplate(fsys fs.FS, name string) ([]GeneratedFile, error) {
	t, err := tmpl.Load(fsys, name, d.fillers)
	if err != nil {
		return nil, err
	}

	combinations, err := combo.Power(d.kinds, t.ParametersNeeded())
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", name, err)
	}

	dir := path.Dir(name)
	files := make([]GeneratedFile, 0, combinations.Len())
	seen := make(map[string][]scalar.Meta, combinations.Len())

	for args := range combinations.All() {
		file, err := d.fill(t, dir, args)
		if err != nil {
			return nil, err
		}

		if prev, ok := seen[file.Path]; ok {
			return nil, &OutputError{
				Path: file.Path,
				Err:  fmt.Errorf("%w: %s is produced by both %v and %v", ErrDuplicateOutput, file.Path, prev, args),
			}
		}

		seen[file.Path] = args
		files = append(files, file)
	}

	return files, nil
}

func (d *Driver) fill(t *tmpl.Template[scalar.Meta], dir string, args []scalar.Meta) (GeneratedFile, error) {
	name, err := t.FillName(args...)
	if err != nil {
		return GeneratedFile{}, err
	}

	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return GeneratedFile{}, fmt.Errorf("%w: %s fills to %q for %v", ErrBadOutputName, t.Path(), name, args)
	}

	contents, err := t.FillContents(args...)
	if err != nil {
		return GeneratedFile{}, err
	}

	outPath := path.Join(dir, name+d.config.SourceExt)
	content := []byte(contents)

	if d.config.goSource() {
		content, err = format.Source(content)
		if err != nil {
			return GeneratedFile{}, &OutputError{Path: outPath, Err: fmt.Errorf("%w %s: %w", ErrFormat, outPath, err)}
		}
	}

	return GeneratedFile{
		Template: t.Path(),
		Path:     outPath,
		Content:  content,
	}, nil
}

// discover lists template files in lexical walk order, skipping directories
// deeper than MaxDepth.
func (d *Driver) discover(fsys fs.FS, diags *diagnostic.Diagnostics) ([]string, error) {
	var res []string

	err := fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if name == "." {
			return nil
		}

		if entry.IsDir() {
			if depth(name) >= d.config.MaxDepth {
				d.logger.Warn("skipping directory below max depth", "dir", name, "max_depth", d.config.MaxDepth)
				diags.AddWarning(diagnostic.CodeDepthExceeded,
					fmt.Sprintf("directory is deeper than max depth %d", d.config.MaxDepth), name, "")

				return fs.SkipDir
			}

			return nil
		}

		if entry.Type().IsRegular() && strings.HasSuffix(name, d.config.TemplateExt) {
			res = append(res, name)
		}

		return nil
	})

	return res, err
}

func (d *Driver) fail(diags *diagnostic.Diagnostics, code, template string, err error) {
	output := outputOf(err)
	d.logger.Error("template failed", "template", template, "output", output, "code", code, "error", err)
	diags.AddError(code, err.Error(), template, output)
}

// claim records the owner template of every output path across one run.
func claim(owners map[string]string, files []GeneratedFile) error {
	for _, file := range files {
		if owner, ok := owners[file.Path]; ok {
			return &OutputError{
				Path: file.Path,
				Err:  fmt.Errorf("%w: %s is already generated from %s", ErrDuplicateOutput, file.Path, owner),
			}
		}
	}

	for _, file := range files {
		owners[file.Path] = file.Template
	}

	return nil
}

func depth(name string) int {
	return strings.Count(name, "/") + 1
}

func codeOf(err error) string {
	switch {
	case errors.Is(err, tmpl.ErrMalformedName):
		return diagnostic.CodeMalformedName
	case errors.Is(err, combo.ErrArity):
		return diagnostic.CodeExpandFailed
	case errors.Is(err, ErrDuplicateOutput):
		return diagnostic.CodeDuplicateOutput
	case errors.Is(err, ErrFormat):
		return diagnostic.CodeFormatFailed
	case errors.Is(err, tmpl.ErrArgumentCount), errors.Is(err, ErrBadOutputName):
		return diagnostic.CodeFillFailed
	default:
		return diagnostic.CodeReadFailed
	}
}
