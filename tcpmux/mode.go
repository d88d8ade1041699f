package tcpmux

// ConnectionMode identifies which of the two incompatible TCP framing
// conventions a connection is using. It is detected once from the first
// bytes received and never changes afterwards.
type ConnectionMode int

const (
	// ModeUnknown means not enough bytes have arrived to decide yet.
	ModeUnknown ConnectionMode = iota
	// ModeTurnRelay means the connection carries raw STUN headers and/or
	// TURN Channel Data messages with no outer framing (RFC 5766).
	ModeTurnRelay
	// ModeIceTcpDirect means the connection carries RFC 4571 length-prefixed
	// frames (direct ICE-TCP).
	ModeIceTcpDirect
)

func (m ConnectionMode) String() string {
	switch m {
	case ModeTurnRelay:
		return "TurnRelay"
	case ModeIceTcpDirect:
		return "IceTcpDirect"
	case ModeUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// rfc4571HeaderSize is the 2-byte big-endian length prefix used to frame a
// payload over a direct ICE-TCP connection (RFC 4571).
const rfc4571HeaderSize = 2

// minDetectionBytes is the number of leading bytes the detector needs to
// make a decision: the two framing-prefix bytes plus one byte of payload.
const minDetectionBytes = rfc4571HeaderSize + 1

// detectMode inspects the first bytes of b and returns the connection mode
// it implies, along with whether a decision could be made at all. It never
// mutates b and makes no decision on fewer than minDetectionBytes bytes.
//
// The rules, in order, mirror RFC 7983's first-byte demultiplexing table
// plus a heuristic for RFC 4571 framing: a legal STUN message is at least
// 20 bytes, and its first byte (top two bits zero) is at most 0x03, so an
// RFC-4571-framed STUN message looks like [0x00][len>=20][0x00-0x03]...
func detectMode(b []byte) (mode ConnectionMode, decided bool) {
	if len(b) < minDetectionBytes {
		return ModeUnknown, false
	}

	b0, b1, b2 := b[0], b[1], b[2]

	switch {
	case b0 == 0x00 && b1 >= 20 && b2 <= 0x03:
		return ModeIceTcpDirect, true
	case b0 <= 0x03:
		return ModeTurnRelay, true
	case b0 >= 0x40 && b0 <= 0x4F:
		return ModeTurnRelay, true
	default:
		// Degenerate fallback: neither pattern matched conclusively. The
		// caller logs a warning and assumes IceTcpDirect, since that is
		// the framing a misbehaving or unusual ICE-TCP peer is most
		// likely to be using.
		return ModeIceTcpDirect, true
	}
}
