// Package framing holds the small black-box collaborators the TCP
// demultiplexer delegates to: header decoders and the RFC 7983 packet-type
// classifier. None of these hold any connection state.
package framing

// PacketType labels a demultiplexed packet by the wire family its first
// bytes belong to, per RFC 7983.
type PacketType int

const (
	// Unknown covers payloads the classifier cannot attribute to STUN or
	// TURN Channel Data, e.g. DTLS or SRTP multiplexed on the same socket.
	Unknown PacketType = iota
	// STUN is a raw STUN header (RFC 5389), first byte in [0x00, 0x03].
	STUN
	// TurnChannelData is a TURN Channel Data message (RFC 5766), first
	// byte in [0x40, 0x4F].
	TurnChannelData
)

func (t PacketType) String() string {
	switch t {
	case STUN:
		return "STUN"
	case TurnChannelData:
		return "TURN_CHANNEL_DATA"
	case Unknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// Classify inspects the leading byte(s) of b and returns the packet family
// they belong to. It is a pure function: it never consumes or mutates b.
func Classify(b []byte) PacketType {
	if len(b) == 0 {
		return Unknown
	}

	switch {
	case b[0] <= 0x03:
		return STUN
	case b[0] >= 0x40 && b[0] <= 0x4F:
		return TurnChannelData
	default:
		return Unknown
	}
}
