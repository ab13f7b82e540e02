package words

import (
	"errors"

	"github.com/tsawler/glyphword/cluster"
)

var (
	// ErrInvalidOptions is returned when an extractor is given options that
	// belong to a different extractor, or nil options.
	ErrInvalidOptions = errors.New("words: invalid options type")

	// ErrNilFunction is returned when a required option function is nil.
	// It is the same value as cluster.ErrNilFunction.
	ErrNilFunction = cluster.ErrNilFunction
)
