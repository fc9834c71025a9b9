package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDecode           = errors.New("decode error")
	ErrParse            = errors.New("parse error")
	ErrPersistence      = errors.New("persistence error")
	ErrSession          = errors.New("session error")
	ErrQueueBusy        = errors.New("more than one file queued")
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrUnsupported      = errors.New("unsupported playlist format")
)

// ParseError reports malformed playlist input at a 1-based line number.
type ParseError struct {
	Line    int    `json:"line"`
	Content string `json:"content"`
	Reason  string `json:"reason"`
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s (%q)", e.Line, e.Reason, e.Content)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}
