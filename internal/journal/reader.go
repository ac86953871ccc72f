package journal

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"tickrec/internal/codec"
	"tickrec/internal/model"
	"tickrec/internal/normalize"
	"tickrec/pkg/exception"
)

// Reader replays one instrument's journal into tick records, strictly
// in line order. Every Replay call reopens the file from the start.
type Reader struct {
	cfg      Config
	vtSymbol string
}

// NewReader creates a reader for one instrument's journal.
func NewReader(cfg Config, vtSymbol string) (*Reader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, _, err := normalize.SplitVTSymbol(vtSymbol); err != nil {
		return nil, err
	}
	return &Reader{cfg: cfg, vtSymbol: vtSymbol}, nil
}

// Path returns the journal file this reader replays.
func (r *Reader) Path() string {
	return r.cfg.FilePath(r.vtSymbol)
}

// Replay decodes and assembles each journal line and calls the handler
// once per record. Incomplete snapshots are skipped; a corrupt required
// field aborts the whole replay, since an undetected gap in the series
// is worse than a loud failure. The error names the offending line.
func (r *Reader) Replay(ctx context.Context, handler func(*model.TickData) error) error {
	if handler == nil {
		return errors.New("journal: replay handler is nil")
	}

	path := r.Path()
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(exception.ErrJournalNotFound, path)
		}
		return err
	}
	defer file.Close()

	decoder := &codec.Decoder{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		tick, err := normalize.Assemble(decoder.Decode(line), r.vtSymbol)
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("%s:%d", path, lineNo))
		}
		if tick == nil {
			continue
		}
		if err := handler(tick); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if skipped := decoder.SkippedFragments(); skipped > 0 {
		logs.Warnf("journal %s: skipped %d unparseable fragments", path, skipped)
	}
	return nil
}
