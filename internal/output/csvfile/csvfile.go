package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/crimson-sun/chartpull/internal/model"
)

var header = []string{"Timestamp", "Datetime (UTC)", "PlayerCount"}

// Output writes formatted samples as CSV to a file. The destination is
// created on first write, truncating any existing file, so a run that
// fails before the write stage leaves no file behind. There is no
// partial-write recovery: a failure mid-write leaves a truncated file.
type Output struct {
	path string
	f    *os.File
	w    *csv.Writer
}

// New creates a CSV output targeting path. The file itself is not
// touched until WriteAll is called.
func New(path string) *Output {
	return &Output{path: path}
}

// WriteAll creates (or overwrites) the file on first call, writes the
// header row, then appends one CSV row per sample, in order.
func (o *Output) WriteAll(_ context.Context, samples []model.FormattedSample) error {
	if o.f == nil {
		if err := o.open(); err != nil {
			return err
		}
	}
	for _, s := range samples {
		if err := o.w.Write(s.Record()); err != nil {
			return fmt.Errorf("csv output: write row: %w", err)
		}
	}
	return nil
}

// Close flushes buffered rows and closes the file. Closing an output
// that never wrote is a no-op.
func (o *Output) Close() error {
	if o.f == nil {
		return nil
	}
	o.w.Flush()
	if err := o.w.Error(); err != nil {
		o.f.Close()
		return fmt.Errorf("csv output: flush: %w", err)
	}
	if err := o.f.Close(); err != nil {
		return fmt.Errorf("csv output: close %s: %w", o.path, err)
	}
	return nil
}

func (o *Output) open() error {
	f, err := os.Create(o.path)
	if err != nil {
		return fmt.Errorf("csv output: create %s: %w", o.path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("csv output: write header: %w", err)
	}
	o.f = f
	o.w = w
	return nil
}
