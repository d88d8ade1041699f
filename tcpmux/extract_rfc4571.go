package tcpmux

import (
	"encoding/binary"

	"github.com/leporel/OvenMediaEngine/internal/framing"
)

// minStunSize is the smallest a legal STUN message can be: just the fixed
// 20-byte header, no attributes.
const minStunSize = 20

// maxRfc4571FrameLength is the largest length an RFC 4571 2-byte big-endian
// prefix can express.
const maxRfc4571FrameLength = 0xFFFF

// extractRFC4571Frame attempts to pull one RFC 4571 length-prefixed frame
// off the front of d.buffer. The extracted payload (prefix stripped) is
// classified and enqueued as a Packet; the classification label is
// advisory only in this mode, since a direct ICE-TCP connection may also
// carry DTLS or SRTP.
func (d *TcpDemultiplexer) extractRFC4571Frame() (disposition, *CriticalError) {
	if d.buffer.len() < rfc4571HeaderSize {
		return dispNotEnoughBuffer, nil
	}

	head := d.buffer.bytes()
	frameLength := int(binary.BigEndian.Uint16(head[:rfc4571HeaderSize]))

	if frameLength < minStunSize || frameLength > maxRfc4571FrameLength {
		return dispFailed, newCriticalError(ReasonInvalidFrameLength, "rfc4571 frame length out of range")
	}

	total := rfc4571HeaderSize + frameLength
	if d.buffer.len() < total {
		return dispNotEnoughBuffer, nil
	}

	payload := d.buffer.sliceCopy(rfc4571HeaderSize, frameLength)
	packetType := framing.Classify(payload)

	d.pending = append(d.pending, Packet{Type: packetType, Payload: payload})
	d.buffer.trimFront(total)

	return dispSuccess, nil
}
