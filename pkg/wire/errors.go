package wire

import (
	"errors"
	"fmt"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
)

// Codec errors.
var (
	ErrArgCount          = errors.New("wire: argument count mismatch")
	ErrArgType           = errors.New("wire: argument type mismatch")
	ErrEnumValue         = errors.New("wire: value not in enum table")
	ErrInvalidString     = errors.New("wire: invalid string")
	ErrTooLarge          = errors.New("wire: value too large")
	ErrShortPayload      = errors.New("wire: payload too short")
	ErrTrailingBytes     = errors.New("wire: trailing bytes after last argument")
	ErrIdentityMismatch  = errors.New("wire: frame identity does not match descriptor")
	ErrUnknownCommand    = errors.New("wire: unknown command identity")
	ErrMalformedMultiset = errors.New("wire: malformed multiset")
	ErrUnmatchedMember   = errors.New("wire: sub-frame is not a multiset member")
)

// EncodeError reports a command that could not be encoded. No bytes are
// produced when encoding fails.
type EncodeError struct {
	Command string
	// Arg is the argument name, empty for command-level failures.
	Arg   string
	Index int
	Err   error
}

func (e *EncodeError) Error() string {
	if e.Arg != "" {
		return fmt.Sprintf("encode %s: arg %d (%s): %v", e.Command, e.Index, e.Arg, e.Err)
	}
	return fmt.Sprintf("encode %s: %v", e.Command, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError reports a payload that could not be decoded.
type DecodeError struct {
	Command string
	ID      desc.ID
	Arg     string
	Index   int
	Err     error
}

func (e *DecodeError) Error() string {
	name := e.Command
	if name == "" {
		name = e.ID.String()
	}
	if e.Arg != "" {
		return fmt.Sprintf("decode %s: arg %d (%s): %v", name, e.Index, e.Arg, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", name, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnmatchedMemberError reports a multiset sub-frame whose identity is not a
// declared member. It is only surfaced through ForEachSubmessage.
type UnmatchedMemberError struct {
	Multiset string
	ID       desc.ID
}

func (e *UnmatchedMemberError) Error() string {
	return fmt.Sprintf("multiset %s: %s is not a member", e.Multiset, e.ID)
}

func (e *UnmatchedMemberError) Unwrap() error { return ErrUnmatchedMember }

func encodeErr(cmd *desc.Command, i int, err error) *EncodeError {
	e := &EncodeError{Command: cmd.Name, Index: i, Err: err}
	if i >= 0 && i < len(cmd.Args) {
		e.Arg = cmd.Args[i].Name
	}
	return e
}

func decodeErr(cmd *desc.Command, i int, err error) *DecodeError {
	e := &DecodeError{Command: cmd.Name, ID: cmd.Identity(), Index: i, Err: err}
	if i >= 0 && i < len(cmd.Args) {
		e.Arg = cmd.Args[i].Name
	}
	return e
}
