package catalog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/litescript/ls-starmap/internal/logging"
)

// Loader opens catalog and constellation files and reports malformed input
// through its logger.
type Loader struct {
	fsys   fs.FS
	logger *logging.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFS reads files from fsys instead of the operating system.
func WithFS(fsys fs.FS) LoaderOption {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// WithLogger sets the logger for skipped lines and missing files.
func WithLogger(logger *logging.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = logging.Discard()
	}
	return l
}

// Stars loads a star catalog. The Builtin path returns BuiltinStars. A
// missing file is warned about once and returns no records with an error
// wrapping ErrMissingResource.
func (l *Loader) Stars(path string) ([]StarRecord, error) {
	if path == Builtin {
		return BuiltinStars(), nil
	}

	f, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := ParseStars(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	l.report(path, data.Errors, data.Skipped)
	l.logger.Info("loaded %d stars from %s", len(data.Records), path)
	return data.Records, nil
}

// Constellations loads a constellation list. The Builtin path returns
// BuiltinConstellations. Missing files behave as in Stars.
func (l *Loader) Constellations(path string) ([]ConstellationDef, error) {
	if path == Builtin {
		return BuiltinConstellations(), nil
	}

	f, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := ParseConstellations(f)
	if err != nil {
		return nil, fmt.Errorf("constellations %s: %w", path, err)
	}
	l.report(path, data.Errors, data.Skipped)
	l.logger.Info("loaded %d constellations from %s", len(data.Defs), path)
	return data.Defs, nil
}

func (l *Loader) open(path string) (io.ReadCloser, error) {
	var (
		f   io.ReadCloser
		err error
	)
	if l.fsys != nil {
		f, err = l.fsys.Open(path)
	} else {
		f, err = os.Open(path)
	}
	if err == nil {
		return f, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.WarnOnce("missing:"+path, "%s not found, continuing with an empty data set", path)
		return nil, fmt.Errorf("%s: %w", path, ErrMissingResource)
	}
	return nil, fmt.Errorf("open %s: %w", path, err)
}

func (l *Loader) report(path string, errs []*DataFormatError, skipped int) {
	for _, e := range errs {
		l.logger.Debug("%s: %v", path, e)
	}
	if len(errs) > 0 {
		l.logger.Warn("%s: %d malformed lines skipped (%d skipped in total)", path, len(errs), skipped)
	}
}
