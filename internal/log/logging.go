// Package log builds the slog.Logger used by the generator.
//
// Without a log file, records below error go to stdout and errors go to
// stderr, so CI logs keep failures separable.
package log

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"os"
	"slices"
)

// ParseLevel maps a level name to a slog.Level; unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// band hands records with min <= level < max to h.
type band struct {
	min, max slog.Level
	h        slog.Handler
}

func (b band) accepts(ctx context.Context, level slog.Level) bool {
	return level >= b.min && level < b.max && b.h.Enabled(ctx, level)
}

// router sends every record to each band whose level range holds it.
type router struct{ bands []band }

func (r router) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(r.bands, func(b band) bool { return b.accepts(ctx, level) })
}

func (r router) Handle(ctx context.Context, rec slog.Record) error {
	var errs []error
	for _, b := range r.bands {
		if b.accepts(ctx, rec.Level) {
			errs = append(errs, b.h.Handle(ctx, rec.Clone()))
		}
	}

	return errors.Join(errs...)
}

func (r router) WithAttrs(attrs []slog.Attr) slog.Handler {
	return r.derive(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (r router) WithGroup(name string) slog.Handler {
	return r.derive(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (r router) derive(f func(slog.Handler) slog.Handler) router {
	bands := slices.Clone(r.bands)
	for i := range bands {
		bands[i].h = f(bands[i].h)
	}

	return router{bands: bands}
}

// Setup builds a logger writing to stdout/stderr, or to stderr and logFile
// when one is given. The returned closers must be closed by the caller.
func Setup(logLevel, logFile string) (*slog.Logger, []io.Closer, error) {
	return setup(logLevel, logFile, os.Stdout, os.Stderr)
}

func setup(logLevel, logFile string, stdout, stderr io.Writer) (*slog.Logger, []io.Closer, error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(logLevel)}

	if logFile == "" {
		return slog.New(router{bands: []band{
			{min: math.MinInt, max: slog.LevelError, h: slog.NewTextHandler(stdout, opts)},
			{min: slog.LevelError, max: math.MaxInt, h: slog.NewTextHandler(stderr, opts)},
		}}), nil, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	return slog.New(router{bands: []band{
		{min: math.MinInt, max: math.MaxInt, h: slog.NewTextHandler(stderr, opts)},
		{min: math.MinInt, max: math.MaxInt, h: slog.NewTextHandler(f, opts)},
	}}), []io.Closer{f}, nil
}
