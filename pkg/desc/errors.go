package desc

import (
	"errors"
	"fmt"
)

// Schema errors.
var (
	ErrDuplicateIdentity = errors.New("duplicate command identity")
	ErrDuplicateName     = errors.New("duplicate name")
	ErrMalformedName     = errors.New("malformed name")
	ErrInconsistentID    = errors.New("inconsistent id")
	ErrInvalidArg        = errors.New("invalid argument descriptor")
	ErrInvalidEnum       = errors.New("invalid enum table")
	ErrInvalidMultiset   = errors.New("invalid multiset descriptor")
)

// ErrNotFound is returned by Lookup and Resolve for unknown commands.
var ErrNotFound = errors.New("command not found")

// SchemaError reports a descriptor that cannot be part of a Table.
type SchemaError struct {
	// Name is the command, enum or multiset the error refers to.
	Name string
	Err  error
	// Detail is an optional human-readable explanation.
	Detail string
}

func (e *SchemaError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("schema: %s: %v: %s", e.Name, e.Err, e.Detail)
	}
	return fmt.Sprintf("schema: %s: %v", e.Name, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

func schemaErr(name string, err error, format string, args ...any) *SchemaError {
	return &SchemaError{Name: name, Err: err, Detail: fmt.Sprintf(format, args...)}
}
