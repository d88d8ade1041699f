package tcpmux

import (
	"github.com/leporel/OvenMediaEngine/internal/framing"
)

// minTurnRelayHeader is the TURN-relay-mode header threshold: the extractor
// attempts classification only once more than this many bytes are buffered.
const minTurnRelayHeader = 4

// extractTurnRelayFrame classifies the head of d.buffer and delegates to
// the matching extractor. A legal TURN TCP stream never carries anything
// other than STUN or TURN Channel Data in band; any other label is a
// critical error.
func (d *TcpDemultiplexer) extractTurnRelayFrame() (disposition, *CriticalError) {
	if d.buffer.len() <= minTurnRelayHeader {
		return dispNotEnoughBuffer, nil
	}

	switch framing.Classify(d.buffer.bytes()) {
	case framing.STUN:
		return d.extractStun()
	case framing.TurnChannelData:
		return d.extractChannel()
	default:
		return dispFailed, newCriticalError(ReasonUnsupportedPacketType, "turn-relay stream carried a non-STUN, non-channel-data packet")
	}
}

func (d *TcpDemultiplexer) extractStun() (disposition, *CriticalError) {
	messageLength, err := framing.ParseSTUNHeader(d.buffer.bytes())
	if err == framing.ErrNotEnoughData {
		return dispNotEnoughBuffer, nil
	}
	if err != nil {
		return dispFailed, newCriticalError(ReasonHeaderMalformed, "stun header: "+err.Error())
	}

	total := framing.StunHeaderSize + int(messageLength)
	if d.buffer.len() < total {
		return dispNotEnoughBuffer, nil
	}

	payload := d.buffer.sliceCopy(0, total)
	d.pending = append(d.pending, Packet{Type: framing.STUN, Payload: payload})
	d.buffer.trimFront(total)

	return dispSuccess, nil
}

func (d *TcpDemultiplexer) extractChannel() (disposition, *CriticalError) {
	total, channel, err := framing.ParseChannelDataHeader(d.buffer.bytes())
	if err == framing.ErrNotEnoughData {
		return dispNotEnoughBuffer, nil
	}
	if err != nil {
		return dispFailed, newCriticalError(ReasonHeaderMalformed, "channel data header: "+err.Error())
	}

	if d.buffer.len() < total {
		return dispNotEnoughBuffer, nil
	}

	payload := d.buffer.sliceCopy(0, total)
	d.pending = append(d.pending, Packet{
		Type:          framing.TurnChannelData,
		Payload:       payload,
		ChannelNumber: channel,
	})
	d.buffer.trimFront(total)

	return dispSuccess, nil
}
