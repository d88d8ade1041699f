package tcpmux

import "github.com/leporel/OvenMediaEngine/internal/framing"

// PacketType re-exports the RFC 7983 classification used to label a
// demultiplexed packet.
type PacketType = framing.PacketType

// Re-export the classifier's constants under tcpmux-scoped names, so
// callers of this package don't need to import internal/framing directly.
const (
	PacketTypeUnknown         = framing.Unknown
	PacketTypeSTUN            = framing.STUN
	PacketTypeTurnChannelData = framing.TurnChannelData
)

// Packet is one demultiplexed, typed message popped off a
// TcpDemultiplexer's FIFO. Payload has any RFC 4571 length prefix stripped;
// STUN and TURN Channel Data headers are retained, since those framings are
// self-describing.
//
// ChannelNumber is populated with the TURN channel number when Type is
// PacketTypeTurnChannelData, and zero otherwise. It is additive: it does
// not change the wire payload.
type Packet struct {
	Type          PacketType
	Payload       []byte
	ChannelNumber uint16
}
