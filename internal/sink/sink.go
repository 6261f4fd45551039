// Package sink persists sampled waveforms to disk.
//
// Every sink writes to a fixed file name inside a destination directory,
// creating the directory when it does not exist. Files are written to a
// temporary name first and renamed into place, so a failed write never leaves
// a truncated output behind.
package sink

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	waveform "github.com/tphakala/go-pulse-waveform"
)

// Sink writes a series into a destination directory.
type Sink interface {
	// Write stores series under dir and returns the path of the written file.
	Write(series *waveform.Series, dir string) (string, error)
}

// ErrSink indicates the destination could not be created or written.
var ErrSink = errors.New("failed to write waveform output")

// ensureDir creates dir and any missing parents.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: failed to create output directory: %w", ErrSink, err)
	}
	return nil
}

// writeAtomic creates dir, hands a temporary file to fill, then renames it to
// dir/name. The temporary file is removed on any failure.
func writeAtomic(dir, name string, fill func(f *os.File) error) (path string, err error) {
	if err := ensureDir(dir); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create output file: %w", ErrSink, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := fill(tmp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSink, err)
	}
	if err := tmp.Chmod(outputPerm); err != nil {
		return "", fmt.Errorf("%w: failed to set file mode: %w", ErrSink, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: failed to close output file: %w", ErrSink, err)
	}

	path = filepath.Join(dir, name)
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("%w: failed to move output into place: %w", ErrSink, err)
	}

	return path, nil
}

// checkSeries rejects series the sinks cannot represent.
func checkSeries(series *waveform.Series) error {
	if series == nil || series.Len() == 0 {
		return fmt.Errorf("%w: empty series", ErrSink)
	}
	if len(series.Amplitude) != len(series.Time) {
		return fmt.Errorf("%w: %d times but %d amplitudes", ErrSink, len(series.Time), len(series.Amplitude))
	}
	return nil
}
