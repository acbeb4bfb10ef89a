package skipgram

import "github.com/pkg/errors"

var (
	ErrUnknownToken    = errors.New("unknown token")
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmptyCorpus     = errors.New("corpus has no non-empty word sets")
	ErrInvalidConfig   = errors.New("invalid config")
)
