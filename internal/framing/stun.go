package framing

import (
	"encoding/binary"

	"github.com/pion/stun/v3"
)

// StunHeaderSize is the fixed length of a STUN message header (RFC 5389
// §6): 2 bytes message type, 2 bytes message length, 4 bytes magic cookie,
// 12 bytes transaction id.
const StunHeaderSize = 20

// ParseSTUNHeader reads a STUN header from the front of b and returns the
// message-length field (the size of the attributes that follow the fixed
// 20-byte header). It returns ErrNotEnoughData if b is shorter than the
// fixed header, and ErrMalformed if b has the right length but does not
// carry a valid STUN magic cookie.
//
// Validity is delegated to stun.IsMessage, which checks the RFC 5389 magic
// cookie at bytes [4:8]; the length itself is the same field pion/stun
// would populate into Message.Length after a full Decode, read directly
// here because the demultiplexer only has the header, not the full message,
// at this point.
func ParseSTUNHeader(b []byte) (messageLength uint16, err error) {
	if len(b) < StunHeaderSize {
		return 0, ErrNotEnoughData
	}
	if !stun.IsMessage(b) {
		return 0, ErrMalformed
	}
	return binary.BigEndian.Uint16(b[2:4]), nil
}
