// Package journal persists encoded snapshots as append-only text files,
// one file per instrument, and replays them back into tick records.
package journal

import (
	"os"

	"tickrec/internal/codec"
	"tickrec/pkg/exception"
)

// Writer appends encoded snapshot lines to per-instrument journals.
//
// The file handle is acquired and released inside each Append call, so
// the writer holds no state between calls and concurrent writers to
// different instruments need no coordination. Concurrent appends to the
// same instrument are not supported.
type Writer struct {
	cfg Config
}

// NewWriter validates the config and ensures the journal directory
// exists.
func NewWriter(cfg Config) (*Writer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}
	return &Writer{cfg: cfg}, nil
}

// Append encodes the snapshot and appends it to the instrument's
// journal as a newline followed by the line, the leading newline
// included for the very first record. I/O errors propagate; retrying is
// the caller's concern.
func (w *Writer) Append(instrumentID, exchangeID string, snapshot map[string]string) error {
	if instrumentID == "" {
		return exception.ErrEmptyInstrument
	}
	if exchangeID == "" {
		return exception.ErrEmptyExchange
	}

	path := w.cfg.FilePath(instrumentID + "." + exchangeID)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	if _, err := file.WriteString("\n" + codec.Encode(snapshot)); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
