package framing

import "encoding/binary"

// ChannelDataHeaderSize is the fixed TURN Channel Data header length
// (RFC 5766 §11.4): 2 bytes channel number, 2 bytes length.
const ChannelDataHeaderSize = 4

// channelNumberMin and channelNumberMax bound the legal TURN channel
// number range (RFC 5766 §11): 0x4000..0x7FFF.
const (
	channelNumberMin = 0x4000
	channelNumberMax = 0x7FFF
)

// ParseChannelDataHeader reads a TURN Channel Data header from the front
// of b and returns the channel number and the total on-wire packet length,
// i.e. the 4-byte header plus the payload rounded up to the next 4-byte
// boundary (RFC 5766 §11.5 requires this padding over a stream transport).
//
// It returns ErrNotEnoughData if b is shorter than the fixed header, and
// ErrMalformed if the channel number falls outside the legal TURN range.
func ParseChannelDataHeader(b []byte) (totalLength int, channelNumber uint16, err error) {
	if len(b) < ChannelDataHeaderSize {
		return 0, 0, ErrNotEnoughData
	}

	channelNumber = binary.BigEndian.Uint16(b[0:2])
	if channelNumber < channelNumberMin || channelNumber > channelNumberMax {
		return 0, 0, ErrMalformed
	}

	dataLength := int(binary.BigEndian.Uint16(b[2:4]))
	totalLength = ChannelDataHeaderSize + padToFour(dataLength)

	return totalLength, channelNumber, nil
}

// padToFour rounds n up to the next multiple of four.
func padToFour(n int) int {
	if rem := n % 4; rem != 0 {
		return n + (4 - rem)
	}
	return n
}
