package codebuilder

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidContent is returned when a line contains a line terminator.
	ErrInvalidContent = errors.New("line content must not contain line terminators")
	// ErrDepthExceeded is returned when rendering passes the configured maximum depth.
	ErrDepthExceeded = errors.New("maximum nesting depth exceeded")
	// ErrBlockMoved is returned when a block is used after being inserted into another block.
	ErrBlockMoved = errors.New("block is owned by another block")
	// ErrNilBlock is returned when a nil block is inserted.
	ErrNilBlock = errors.New("cannot insert a nil block")
)

// ContentError reports a rejected line.
type ContentError struct {
	Content string
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidContent, e.Content)
}

func (e *ContentError) Unwrap() error {
	return ErrInvalidContent
}

// DepthError reports the depth at which rendering stopped.
type DepthError struct {
	Depth int
	Max   int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("%v: depth %d, limit %d", ErrDepthExceeded, e.Depth, e.Max)
}

func (e *DepthError) Unwrap() error {
	return ErrDepthExceeded
}
