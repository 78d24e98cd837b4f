package gen

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"scalar-collections/internal/tmpl"
)

// ErrConfig reports an unusable generator configuration.
var ErrConfig = errors.New("invalid configuration")

// Config holds configuration for code generation.
type Config struct {
	// InputDir is the root of the template tree.
	InputDir string `validate:"required,dir"`
	// OutputDir is the root the generated files are written under.
	OutputDir string `validate:"required"`
	// TemplateExt selects template files during discovery.
	TemplateExt string `validate:"required,startswith=."`
	// SourceExt is appended to every filled name.
	SourceExt string `validate:"omitempty,startswith=."`
	// MaxDepth bounds discovery; files directly under InputDir have depth 1.
	MaxDepth int `validate:"min=1"`
	// Format runs go/format over Go output.
	Format bool
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		TemplateExt: tmpl.Ext,
		SourceExt:   ".go",
		MaxDepth:    16,
		Format:      true,
	}
}

// Validate checks the configuration tags, then that an existing output path
// is a directory.
func (c Config) Validate() error {
	err := ValidateStruct(nil, c)
	if err != nil {
		return err
	}

	info, err := os.Stat(c.OutputDir)
	if err == nil && !info.IsDir() {
		return fmt.Errorf("%w: output %s exists and is not a directory", ErrConfig, c.OutputDir)
	}

	return nil
}

// goSource reports whether output should be formatted as Go.
func (c Config) goSource() bool {
	return c.Format && c.SourceExt == ".go"
}

// ValidateStruct validates target using its validate tags. A nil v uses a
// fresh validator. Failures wrap ErrConfig and name every rejected field.
func ValidateStruct(v *validator.Validate, target any) error {
	if v == nil {
		v = validator.New()
	}

	err := v.Struct(target)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}

		msgs = append(msgs, fmt.Sprintf("%s %q fails %s", fe.Field(), fmt.Sprint(fe.Value()), rule))
	}

	return fmt.Errorf("%w: %s", ErrConfig, strings.Join(msgs, "; "))
}
