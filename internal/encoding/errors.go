package encoding

import (
	"errors"
	"fmt"
)

// Kind classifies an uncorrectable codeword.
type Kind int

const (
	// SyndromeOutOfRange: the syndrome points past the end of the codeword.
	SyndromeOutOfRange Kind = iota + 1
	// GlobalParityMismatch: the word still fails the global parity check.
	GlobalParityMismatch
)

func (k Kind) String() string {
	switch k {
	case SyndromeOutOfRange:
		return "syndrome out of range"
	case GlobalParityMismatch:
		return "global parity mismatch"
	default:
		return "uncorrectable"
	}
}

// UncorrectableError is returned by Decode when corruption was detected but
// cannot be repaired.
type UncorrectableError struct {
	Kind     Kind
	Syndrome uint64
}

func (e *UncorrectableError) Error() string {
	return fmt.Sprintf("codeword is corrupted and cannot be recovered: %s (syndrome %d)", e.Kind, e.Syndrome)
}

// Is matches sentinels of the same kind. ErrUncorrectable matches every kind.
func (e *UncorrectableError) Is(target error) bool {
	t, ok := target.(*UncorrectableError)
	if !ok {
		return false
	}
	return t.Kind == 0 || t.Kind == e.Kind
}

var (
	ErrUncorrectable        = &UncorrectableError{}
	ErrSyndromeOutOfRange   = &UncorrectableError{Kind: SyndromeOutOfRange}
	ErrGlobalParityMismatch = &UncorrectableError{Kind: GlobalParityMismatch}
	ErrCodewordLength       = errors.New("codeword shorter than the layout requires")
)
