package tmpl

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strconv"
	"strings"
)

// Delimiter wraps placeholder keys.
const Delimiter = "#"

// Ext is the extension of template files.
const Ext = ".template"

var (
	// ErrMalformedName reports a template filename without a valid
	// parameter count.
	ErrMalformedName = errors.New("malformed template name")
	// ErrArgumentCount reports a fill call with the wrong number of arguments.
	ErrArgumentCount = errors.New("wrong argument count")
)

// Filler renders one key for one positional argument.
type Filler[A any] func(arg A) string

// Template is a loaded template file. Fills are pure: the same arguments
// always produce the same output.
type Template[A any] struct {
	path     string
	name     string
	params   int
	contents string
	fillers  map[string]Filler[A]
}

// Load reads the template at path from fsys.
// A filename without a leading parameter count fails here, before any fill.
func Load[A any](fsys fs.FS, filePath string, fillers map[string]Filler[A]) (*Template[A], error) {
	params, name, err := ParseName(path.Base(filePath))
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", filePath, err)
	}

	return New(filePath, name, params, string(data), fillers), nil
}

// New builds a template from already parsed parts.
func New[A any](filePath, name string, params int, contents string, fillers map[string]Filler[A]) *Template[A] {
	return &Template[A]{
		path:     filePath,
		name:     name,
		params:   params,
		contents: contents,
		fillers:  fillers,
	}
}

// ParseName splits a template filename into its parameter count and the
// name portion. The Ext suffix is optional.
func ParseName(filename string) (int, string, error) {
	base := strings.TrimSuffix(filename, Ext)

	head, name, found := strings.Cut(base, ".")
	if !found {
		return 0, "", fmt.Errorf("%w: %q has no parameter count prefix", ErrMalformedName, filename)
	}

	params, err := strconv.Atoi(head)
	if err != nil || params < 0 || strings.HasPrefix(head, "+") || strings.HasPrefix(head, "-") {
		return 0, "", fmt.Errorf("%w: %q does not start with a non-negative integer", ErrMalformedName, filename)
	}

	if name == "" {
		return 0, "", fmt.Errorf("%w: %q has an empty name", ErrMalformedName, filename)
	}

	return params, name, nil
}

// Placeholder returns the text a key is written as for the argument at
// position in a template taking params arguments.
func Placeholder(key string, position, params int) string {
	if params == 1 {
		return Delimiter + key + Delimiter
	}

	return Delimiter + key + "." + strconv.Itoa(position) + Delimiter
}

// Path returns the file path the template was loaded from.
func (t *Template[A]) Path() string {
	return t.path
}

// Name returns the unfilled name portion of the filename.
func (t *Template[A]) Name() string {
	return t.name
}

// ParametersNeeded returns the number of positional arguments.
func (t *Template[A]) ParametersNeeded() int {
	return t.params
}

// Contents returns the unfilled template text.
func (t *Template[A]) Contents() string {
	return t.contents
}

// FillName fills the name portion of the filename.
func (t *Template[A]) FillName(args ...A) (string, error) {
	return t.fill(t.name, args)
}

// FillContents fills the template text.
func (t *Template[A]) FillContents(args ...A) (string, error) {
	return t.fill(t.contents, args)
}

func (t *Template[A]) fill(text string, args []A) (string, error) {
	r, err := t.replacer(args)
	if err != nil {
		return "", err
	}

	return r.Replace(text), nil
}

// replacer builds one replacer for all placeholders of all arguments, so
// filled text is never matched again.
func (t *Template[A]) replacer(args []A) (*strings.Replacer, error) {
	if len(args) != t.params {
		return nil, fmt.Errorf("%w: %s needs %d arguments, got %d", ErrArgumentCount, t.path, t.params, len(args))
	}

	keys := slices.Sorted(maps.Keys(t.fillers))

	pairs := make([]string, 0, 2*len(args)*len(keys))
	for position, arg := range args {
		for _, key := range keys {
			pairs = append(pairs, Placeholder(key, position, t.params), t.fillers[key](arg))
		}
	}

	return strings.NewReplacer(pairs...), nil
}
