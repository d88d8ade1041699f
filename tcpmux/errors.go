package tcpmux

import (
	"errors"
	"fmt"
)

// Reason distinguishes why Append returned a *CriticalError, so callers can
// branch on cause without string matching.
type Reason int

const (
	// ReasonInvalidFrameLength means an RFC 4571 length prefix claimed a
	// frame shorter than the minimum legal STUN size, or longer than a
	// 16-bit length can express.
	ReasonInvalidFrameLength Reason = iota
	// ReasonUnsupportedPacketType means a TURN-relay-mode stream carried a
	// packet type other than STUN or TURN Channel Data in band.
	ReasonUnsupportedPacketType
	// ReasonHeaderMalformed means a STUN or Channel Data header collaborator
	// rejected the header as unparseable, not merely incomplete.
	ReasonHeaderMalformed
)

func (r Reason) String() string {
	switch r {
	case ReasonInvalidFrameLength:
		return "invalid frame length"
	case ReasonUnsupportedPacketType:
		return "unsupported packet type"
	case ReasonHeaderMalformed:
		return "malformed header"
	default:
		return "critical framing error"
	}
}

// ErrCritical is the sentinel every *CriticalError satisfies via errors.Is.
var ErrCritical = errors.New("tcpmux: critical framing error")

// CriticalError is returned by Append when the current buffer can never be
// a valid prefix of any legal stream for the connection's mode. Framing
// errors are not self-synchronizing and are never retried: the connection
// owner is expected to close the socket.
type CriticalError struct {
	Reason Reason
	Detail string
}

func (e *CriticalError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("tcpmux: %s", e.Reason)
	}
	return fmt.Sprintf("tcpmux: %s: %s", e.Reason, e.Detail)
}

func (e *CriticalError) Is(target error) bool {
	return target == ErrCritical
}

func newCriticalError(reason Reason, detail string) *CriticalError {
	return &CriticalError{Reason: reason, Detail: detail}
}
