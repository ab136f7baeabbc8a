// Package types contains shared types and error definitions for winpath.
package types

import (
	"errors"
	"fmt"
)

// Mode selects what winpath does with the converted path
type Mode int

const (
	ModeOpen Mode = iota
	ModePrint
	ModeCopy
)

func (m Mode) String() string {
	switch m {
	case ModePrint:
		return "print"
	case ModeCopy:
		return "copy"
	case ModeOpen:
		return "open"
	default:
		return "unknown"
	}
}

// ClipboardTool selects the clipboard backend for copy mode
type ClipboardTool int

const (
	ClipboardAuto ClipboardTool = iota
	ClipboardWlCopy
	ClipboardXclip
)

func (t ClipboardTool) String() string {
	switch t {
	case ClipboardWlCopy:
		return "wl-copy"
	case ClipboardXclip:
		return "xclip"
	default:
		return "auto"
	}
}

// Sentinel errors for winpath operations
var (
	ErrMissingPath     = errors.New("missing path argument")
	ErrToolNotFound    = errors.New("executable not found on PATH")
	ErrNoClipboardTool = errors.New("no clipboard tool found (tried wl-copy, xclip)")
	ErrInvalidOpener   = errors.New("invalid opener command")
)

// AppError represents a winpath error with context
type AppError struct {
	Op   string
	Tool string
	Path string
	Err  error
	Help string
}

func (e *AppError) Error() string {
	if e.Tool != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Tool, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsMissingPath checks if the error indicates the path argument was absent
func IsMissingPath(err error) bool {
	return errors.Is(err, ErrMissingPath)
}

// IsToolNotFound checks if the error indicates a clipboard tool was unavailable
func IsToolNotFound(err error) bool {
	return errors.Is(err, ErrToolNotFound) || errors.Is(err, ErrNoClipboardTool)
}

// NewAppError creates a new AppError
func NewAppError(op, tool string, err error, help string) *AppError {
	return &AppError{Op: op, Tool: tool, Err: err, Help: help}
}
