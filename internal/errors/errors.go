// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed or oversized position string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not in the current legal set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoMoveToUndo indicates an undo with an empty history.
	ErrNoMoveToUndo = errors.New("no move to undo")

	// ErrNoMoveToRedo indicates a redo with no undone moves left.
	ErrNoMoveToRedo = errors.New("no move to redo")

	// ErrInternalInvariant indicates a logic defect, such as a position
	// occupied by both sides. It should be unreachable.
	ErrInternalInvariant = errors.New("internal invariant violated")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedPosition indicates a position a reference generator cannot handle.
	ErrUnsupportedPosition = errors.New("unsupported position")
)

// FENError wraps errors with the location inside a position string
// where decoding failed.
type FENError struct {
	Err   error  // The underlying error
	Field string // FEN field being parsed ("placement", "castling", ...)
	Index int    // 0-based character index within the field (-1 if not applicable)
	Got   string // The offending text, if any
}

// Error returns a formatted error message including all available context.
func (e *FENError) Error() string {
	var parts []string

	if e.Field != "" {
		if e.Index >= 0 {
			parts = append(parts, fmt.Sprintf("%s[%d]", e.Field, e.Index))
		} else {
			parts = append(parts, e.Field)
		}
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	context := strings.Join(parts, ": ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "FEN error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the FENError wrapper.
func (e *FENError) Unwrap() error {
	return e.Err
}

// NewFENError builds a FENError wrapping ErrInvalidFEN with a detail message.
func NewFENError(field string, index int, got, detail string) *FENError {
	err := ErrInvalidFEN
	if detail != "" {
		err = fmt.Errorf("%s: %w", detail, ErrInvalidFEN)
	}
	return &FENError{Err: err, Field: field, Index: index, Got: got}
}

// MoveError wraps errors with the ply and notation of a rejected move.
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // Ply at which the move was attempted
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	parts := []string{fmt.Sprintf("ply %d", e.Ply)}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
