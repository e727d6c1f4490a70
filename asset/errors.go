// Package asset defines the failure classes shared by the asset generators.
package asset

import (
	"errors"
	"fmt"
)

// Kind classifies why generating an asset failed.
type Kind int

const (
	KindUnknown Kind = iota
	KindDecode       // input unreadable or corrupt
	KindSchema       // input decoded but violates the expected shape
	KindIO           // output could not be written
	KindFormat       // formatter missing or failed, output already written
)

var kindNames = [...]string{
	KindUnknown: "unknown",
	KindDecode:  "decode",
	KindSchema:  "schema",
	KindIO:      "io",
	KindFormat:  "format",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Error is returned by every generator stage. Path names the file the stage
// was working on and may be empty.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf returns an *Error of kind k with a formatted cause.
func Errorf(k Kind, path, format string, args ...any) error {
	return &Error{Kind: k, Path: path, Err: fmt.Errorf(format, args...)}
}

// Wrap classifies err as kind k. A nil err stays nil and an err that is
// already classified is returned unchanged.
func Wrap(k Kind, path string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: k, Path: path, Err: err}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
