package prefparser

import (
	"errors"
	"fmt"

	da "github.com/lintang-b-s/rankmatch/pkg/datastructure"
)

var (
	ErrInputNotFound     = errors.New("input not found")
	ErrMalformedLine     = errors.New("malformed line")
	ErrRankCountMismatch = da.ErrRankCountMismatch
	ErrInvalidRanking    = da.ErrInvalidRanking
)

// ParseError ties a parse failure to its file and, when known, its 1-based line number.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("file '%s': line %d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("file '%s': %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(file string, line int, err error) *ParseError {
	return &ParseError{File: file, Line: line, Err: err}
}
