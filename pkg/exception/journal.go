package exception

import "github.com/yanun0323/errors"

var (
	ErrJournalNotFound = errors.New("journal: file not found")
	ErrEmptyDir        = errors.New("journal: data directory is empty")
	ErrEmptyInstrument = errors.New("journal: instrument id is empty")
	ErrEmptyExchange   = errors.New("journal: exchange id is empty")
)
