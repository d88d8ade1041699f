package tcpmux

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// stunBindingRequest builds a minimal but well-formed STUN header (no
// attributes) of exactly 20 bytes.
func stunBindingRequest() []byte {
	msg := make([]byte, 20)
	msg[0], msg[1] = 0x00, 0x01 // binding request
	// message length stays 0 (no attributes)
	binary.BigEndian.PutUint32(msg[4:8], 0x2112A442) // magic cookie
	return msg
}

func stunWithAttrs(attrLen int) []byte {
	msg := make([]byte, 20+attrLen)
	msg[0], msg[1] = 0x00, 0x01
	binary.BigEndian.PutUint16(msg[2:4], uint16(attrLen))
	binary.BigEndian.PutUint32(msg[4:8], 0x2112A442)
	for i := range msg[20:] {
		msg[20+i] = byte(i)
	}
	return msg
}

func rfc4571Frame(payload []byte) []byte {
	out := make([]byte, 2+len(payload))
	binary.BigEndian.PutUint16(out[:2], uint16(len(payload)))
	copy(out[2:], payload)
	return out
}

func TestByteSplitStunInIceTcpDirectMode(t *testing.T) {
	payload := stunWithAttrs(48) // 68 bytes total
	frame := rfc4571Frame(payload)

	d := New()
	for _, b := range frame {
		require.NoError(t, d.Append([]byte{b}))
	}

	require.True(t, d.HasPacket())
	pkt, ok := d.PopPacket()
	require.True(t, ok)
	require.Equal(t, PacketTypeSTUN, pkt.Type)
	require.Len(t, pkt.Payload, 68)
	require.False(t, d.HasPacket())
	require.Equal(t, ModeIceTcpDirect, d.Mode())
}

func TestBackToBackFramesIceTcpDirect(t *testing.T) {
	first := stunWithAttrs(0)  // 20 bytes
	second := stunWithAttrs(4) // 24 bytes

	stream := append(rfc4571Frame(first), rfc4571Frame(second)...)

	d := New()
	require.NoError(t, d.Append(stream))

	pkt1, ok := d.PopPacket()
	require.True(t, ok)
	require.Len(t, pkt1.Payload, 20)

	pkt2, ok := d.PopPacket()
	require.True(t, ok)
	require.Len(t, pkt2.Payload, 24)

	require.False(t, d.HasPacket())
}

func TestRawStunAndChannelDataInTurnRelayMode(t *testing.T) {
	stunMsg := stunWithAttrs(4) // 24 bytes, classifies as STUN (b0 <= 0x03)

	d := New()
	require.NoError(t, d.Append(stunMsg))
	require.Equal(t, ModeTurnRelay, d.Mode())

	pkt1, ok := d.PopPacket()
	require.True(t, ok)
	require.Equal(t, PacketTypeSTUN, pkt1.Type)
	require.Len(t, pkt1.Payload, 24)
	require.False(t, d.HasPacket())

	channel := []byte{0x40, 0x00, 0x00, 0x08, 1, 2, 3, 4, 5, 6, 7, 8}
	require.NoError(t, d.Append(channel))

	pkt2, ok := d.PopPacket()
	require.True(t, ok)
	require.Equal(t, PacketTypeTurnChannelData, pkt2.Type)
	require.EqualValues(t, 0x4000, pkt2.ChannelNumber)
	require.Len(t, pkt2.Payload, 12)

	require.False(t, d.HasPacket())
}

func TestInvalidRfc4571LengthFallsBackThenWaits(t *testing.T) {
	d := New()
	err := d.Append([]byte{0xFF, 0xFF, 0x00})
	require.NoError(t, err)
	require.Equal(t, ModeIceTcpDirect, d.Mode())
	require.False(t, d.HasPacket())
}

func TestInvalidRfc4571LengthTooShortIsCritical(t *testing.T) {
	d := New()
	d.SetMode(ModeIceTcpDirect)
	err := d.Append([]byte{0x00, 0x0A, 0x00})
	require.Error(t, err)
	var critErr *CriticalError
	require.True(t, errors.As(err, &critErr))
	require.Equal(t, ReasonInvalidFrameLength, critErr.Reason)
	require.True(t, errors.Is(err, ErrCritical))
}

func TestChunkInvarianceAcrossManyPartitions(t *testing.T) {
	first := stunWithAttrs(0)
	second := stunWithAttrs(8)
	stream := append(rfc4571Frame(first), rfc4571Frame(second)...)

	whole := New()
	require.NoError(t, whole.Append(stream))
	var wholePayloads [][]byte
	for whole.HasPacket() {
		pkt, _ := whole.PopPacket()
		wholePayloads = append(wholePayloads, pkt.Payload)
	}

	chunked := New()
	for _, b := range stream {
		require.NoError(t, chunked.Append([]byte{b}))
	}
	var chunkedPayloads [][]byte
	for chunked.HasPacket() {
		pkt, _ := chunked.PopPacket()
		chunkedPayloads = append(chunkedPayloads, pkt.Payload)
	}

	require.Equal(t, wholePayloads, chunkedPayloads)
}

func TestModeMonotonicity(t *testing.T) {
	d := New()
	require.NoError(t, d.Append(stunWithAttrs(0)))
	require.Equal(t, ModeTurnRelay, d.Mode())

	_, ok := d.PopPacket()
	require.True(t, ok)

	// Buffer and pending are now both empty, but mode is still monotonic:
	// a decided mode can never revert to Unknown.
	d.SetMode(ModeUnknown)
	require.Equal(t, ModeTurnRelay, d.Mode())
}

func TestModeMonotonicityAfterBufferDrain(t *testing.T) {
	d := New()
	require.NoError(t, d.Append(stunWithAttrs(0)))
	require.Equal(t, ModeTurnRelay, d.Mode())

	_, ok := d.PopPacket()
	require.True(t, ok)
	require.False(t, d.HasPacket())

	// Buffer and pending are both drained back to empty, but the mode was
	// decided the moment bytes first arrived: a later SetMode call to a
	// different non-Unknown mode must still be a no-op.
	d.SetMode(ModeIceTcpDirect)
	require.Equal(t, ModeTurnRelay, d.Mode())
}

func TestSetModeOverrideBeforeAnyData(t *testing.T) {
	d := New()
	d.SetMode(ModeTurnRelay)
	require.Equal(t, ModeTurnRelay, d.Mode())

	channel := []byte{0x40, 0x01, 0x00, 0x02, 0xAA, 0xBB, 0x00, 0x00}
	require.NoError(t, d.Append(channel))

	pkt, ok := d.PopPacket()
	require.True(t, ok)
	require.Equal(t, PacketTypeTurnChannelData, pkt.Type)
}

func TestUnsupportedPacketTypeInTurnRelayModeIsCritical(t *testing.T) {
	d := New()
	d.SetMode(ModeTurnRelay)

	// 0x17 falls in the DTLS range (20-63), never legal in-band for TURN relay mode.
	err := d.Append([]byte{0x17, 0xFE, 0x00, 0x00, 0x00})
	require.Error(t, err)
	var critErr *CriticalError
	require.True(t, errors.As(err, &critErr))
	require.Equal(t, ReasonUnsupportedPacketType, critErr.Reason)
}

func TestPopPacketOnEmptyQueue(t *testing.T) {
	d := New()
	_, ok := d.PopPacket()
	require.False(t, ok)
}
