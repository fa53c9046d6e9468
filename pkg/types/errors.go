package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindIO           ErrKind = iota + 1 // open/read/seek/write failure of a source or sink
	ErrKindMalformed                       // region not consumed exactly, block crossing a bound, bad length
	ErrKindMissingBlock                    // mandatory container absent or of the wrong tag
	ErrKindIndex                           // archive and index disagree (room or object not recorded)
	ErrKindLocalScript                     // self-numbered payload too short to carry its number
	ErrKindTagText                         // tag not printable where a path or descriptor needs it
	ErrKindConfig                          // naming configuration could not be parsed
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindIO:
		return "io"
	case ErrKindMalformed:
		return "malformed archive"
	case ErrKindMissingBlock:
		return "missing block"
	case ErrKindIndex:
		return "index mismatch"
	case ErrKindLocalScript:
		return "local script too short"
	case ErrKindTagText:
		return "tag not text"
	case ErrKindConfig:
		return "bad config"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional location and underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	// Disk is the disk number being decoded, or 0 when not applicable.
	Disk uint8
	// Offset is the absolute position in the disk file, or -1 when unknown.
	Offset int64
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Disk != 0 && e.Offset >= 0 {
		msg = fmt.Sprintf("disk %d at %#x: %s", e.Disk, e.Offset, msg)
	} else if e.Disk != 0 {
		msg = fmt.Sprintf("disk %d: %s", e.Disk, msg)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the sentinels below classify
// errors that carry their own message and location.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	// ErrIO indicates an I/O failure on a disk, index or sink.
	ErrIO = &Error{Kind: ErrKindIO, Offset: -1}
	// ErrMalformed indicates a structural violation of the block layout.
	ErrMalformed = &Error{Kind: ErrKindMalformed, Offset: -1}
	// ErrMissingBlock indicates a mandatory container was absent.
	ErrMissingBlock = &Error{Kind: ErrKindMissingBlock, Offset: -1}
	// ErrIndexMismatch indicates the index does not describe the archive.
	ErrIndexMismatch = &Error{Kind: ErrKindIndex, Offset: -1}
	// ErrLocalScript indicates a local script payload too short for its number.
	ErrLocalScript = &Error{Kind: ErrKindLocalScript, Offset: -1}
	// ErrTagText indicates a tag that cannot be rendered as text.
	ErrTagText = &Error{Kind: ErrKindTagText, Offset: -1}
	// ErrConfig indicates an unparsable naming configuration.
	ErrConfig = &Error{Kind: ErrKindConfig, Offset: -1}
)

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
