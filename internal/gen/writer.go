package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// OutputError ties a failure to the generated file it concerns.
type OutputError struct {
	// Path is the output path relative to the output root, slash-separated.
	Path string
	Err  error
}

func (e *OutputError) Error() string { return e.Err.Error() }

func (e *OutputError) Unwrap() error { return e.Err }

// outputOf returns the output path carried by err, if any.
func outputOf(err error) string {
	var outErr *OutputError
	if errors.As(err, &outErr) {
		return outErr.Path
	}

	return ""
}

// WriteFiles writes generated files below outputDir, creating missing
// directories. Every target is checked before the first write, so a
// collision leaves the output tree untouched. On a later I/O failure the
// files written so far are returned with the error.
func WriteFiles(files []GeneratedFile, outputDir string) ([]string, error) {
	for _, file := range files {
		err := checkTarget(filepath.Join(outputDir, filepath.FromSlash(file.Path)))
		if err != nil {
			return nil, &OutputError{Path: file.Path, Err: err}
		}
	}

	written := make([]string, 0, len(files))
	for _, file := range files {
		outputPath := filepath.Join(outputDir, filepath.FromSlash(file.Path))

		err := ensureDir(filepath.Dir(outputPath))
		if err != nil {
			return written, &OutputError{Path: file.Path, Err: err}
		}

		err = os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return written, &OutputError{Path: file.Path, Err: fmt.Errorf("writing file %s: %w", file.Path, err)}
		}

		written = append(written, file.Path)
	}

	return written, nil
}

// checkTarget reports whether outputPath can be written as a plain file.
func checkTarget(outputPath string) error {
	info, err := os.Stat(outputPath)
	if err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s exists and is a directory", ErrConfig, outputPath)
	}

	return checkDir(filepath.Dir(outputPath))
}

// checkDir fails when the nearest existing ancestor of dir is not a directory.
func checkDir(dir string) error {
	for p := dir; ; {
		info, err := os.Stat(p)
		if err == nil {
			if !info.IsDir() {
				return fmt.Errorf("%w: %s exists and is not a directory", ErrConfig, p)
			}

			return nil
		}

		parent := filepath.Dir(p)
		if parent == p {
			return nil
		}

		p = parent
	}
}

// ensureDir creates dir. The nearest existing ancestor must be a directory.
func ensureDir(dir string) error {
	err := checkDir(dir)
	if err != nil {
		return err
	}

	err = os.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	return nil
}
