package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Recorder appends StepRecords to a CSV stream, writing the header once.
// A nil Recorder discards everything.
type Recorder struct {
	w      io.Writer
	closer io.Closer

	headerWritten bool
}

// NewRecorder creates the CSV file at path. It returns nil if path is empty
// (output disabled).
func NewRecorder(path string) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	return &Recorder{w: f, closer: f}, nil
}

// NewWriterRecorder records into w. Close does not close w.
func NewWriterRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Write appends one row.
func (r *Recorder) Write(rec StepRecord) error {
	if r == nil {
		return nil
	}
	records := []StepRecord{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.w); err != nil {
			return fmt.Errorf("writing step record: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.w); err != nil {
		return fmt.Errorf("writing step record: %w", err)
	}
	return nil
}

// Close closes the underlying file, if the recorder owns one.
func (r *Recorder) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// WriteSweep writes a complete sweep table with header.
func WriteSweep(w io.Writer, records []SweepRecord) error {
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing sweep records: %w", err)
	}
	return nil
}
