package exception

import "github.com/yanun0323/errors"

var (
	ErrCorruptTimestamp = errors.New("codec: corrupt timestamp field")
	ErrCorruptNumber    = errors.New("codec: corrupt numeric field")
	ErrMissingField     = errors.New("codec: required field missing")
	ErrPartialDepth     = errors.New("codec: partial depth set")
	ErrUnknownExchange  = errors.New("codec: unknown exchange code")
	ErrBadVTSymbol      = errors.New("codec: malformed vt_symbol")
)
