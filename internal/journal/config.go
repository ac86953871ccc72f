package journal

import (
	"path/filepath"

	"tickrec/pkg/exception"
)

const journalExt = ".txt"

// Config locates the per-instrument journal files.
type Config struct {
	// Dir is the capture-session directory holding one journal file per
	// instrument, named {InstrumentID}.{ExchangeID}.txt.
	Dir string
}

// Validate checks if the configuration is usable.
func (c Config) Validate() error {
	if c.Dir == "" {
		return exception.ErrEmptyDir
	}
	return nil
}

// FilePath returns the journal path for one instrument.
func (c Config) FilePath(vtSymbol string) string {
	return filepath.Join(c.Dir, vtSymbol+journalExt)
}
