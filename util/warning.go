package util

import (
	"errors"
	"fmt"
)

// Fatal conditions found while decoding catalogs.
var (
	ErrMalformedEscape  = errors.New("malformed escape sequence")
	ErrMalformedComment = errors.New("malformed location comment")
	ErrMissingComment   = errors.New("msgid without location comment")
	ErrInvalidNumber    = errors.New("invalid number in location comment")
	ErrUnclosedQuote    = errors.New("unclosed quote")
	ErrUnfinishedEscape = errors.New("unfinished escape sequence")
)

// PoWarning is a non fatal problem found while parsing a catalog. The parsed
// result is still usable, but the user should likely be informed.
type PoWarning interface {
	error
	Line() int
}

// LineTypeUnknown is reported for a line starting with an unknown directive.
type LineTypeUnknown struct {
	LineNo int
	Token  string
}

func (w LineTypeUnknown) Error() string {
	return fmt.Sprintf("line %d starts with the unknown symbol %q", w.LineNo, w.Token)
}

// Line implements PoWarning.
func (w LineTypeUnknown) Line() int { return w.LineNo }

// UnclosedQuote is reported for a line ending inside a quoted string.
type UnclosedQuote struct {
	LineNo int
}

func (w UnclosedQuote) Error() string {
	return fmt.Sprintf("line %d ends with an unclosed quote", w.LineNo)
}

// Line implements PoWarning.
func (w UnclosedQuote) Line() int { return w.LineNo }

// UnfinishedEscape is reported for a line ending inside an escape sequence.
type UnfinishedEscape struct {
	LineNo int
}

func (w UnfinishedEscape) Error() string {
	return fmt.Sprintf("line %d ends with an unfinished escape sequence", w.LineNo)
}

// Line implements PoWarning.
func (w UnfinishedEscape) Line() int { return w.LineNo }

// FileWarning attaches the catalog file name to a warning.
type FileWarning struct {
	PoWarning
	File string
}

func (w FileWarning) Error() string {
	return fmt.Sprintf("%s: %s", w.File, w.PoWarning.Error())
}

// CatalogError is a fatal catalog corruption. No entries are returned
// for a catalog failing with a CatalogError.
type CatalogError struct {
	// Line is the 1-based offending line, or 0 if unknown.
	Line int
	Err  error
}

func (e *CatalogError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *CatalogError) Unwrap() error {
	return e.Err
}
