// Package tcpmux implements the ICE-TCP demultiplexer: a pure state
// machine that turns a concatenated, unframed TCP byte stream into a lazy
// FIFO of typed STUN / TURN Channel Data packets, auto-detecting whether
// the stream is RFC 4571 framed (direct ICE-TCP) or uses TURN's intrinsic
// framing (RFC 5766).
//
// A TcpDemultiplexer is not safe for concurrent mutation. The intended
// pattern is one instance per TCP connection, owned by a single reader
// goroutine.
package tcpmux

import "github.com/pion/logging"

// TcpDemultiplexer incrementally consumes raw bytes and emits framed,
// typed packets. See the package doc for the concurrency contract.
type TcpDemultiplexer struct {
	buffer   *streamBuffer
	pending  []Packet
	mode     ConnectionMode
	appended bool
	logger   logging.LeveledLogger
}

// Option configures a TcpDemultiplexer at construction time.
type Option func(*TcpDemultiplexer)

// WithLogger injects a leveled logger used for the degenerate-fallback
// warning and for critical-failure diagnostics. The default, also kept when
// logger is nil, is a pion/logging default-factory logger scoped "tcpmux".
func WithLogger(logger logging.LeveledLogger) Option {
	return func(d *TcpDemultiplexer) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates an empty TcpDemultiplexer in ModeUnknown.
func New(opts ...Option) *TcpDemultiplexer {
	d := &TcpDemultiplexer{
		buffer: newStreamBuffer(),
		mode:   ModeUnknown,
		logger: logging.NewDefaultLoggerFactory().NewLogger("tcpmux"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Mode reports the current detection state. Once non-Unknown, it never
// changes for the lifetime of the instance.
func (d *TcpDemultiplexer) Mode() ConnectionMode {
	return d.mode
}

// SetMode overrides the detected mode. It is only legal to call this
// before any bytes have ever been appended to the instance; once that has
// happened, or once a mode has been set (by detection or by a prior call
// to SetMode), mode is fixed for the lifetime of the instance and SetMode
// is a no-op regardless of the requested target. Draining the buffer and
// pending FIFO back to empty does not reopen the window: this tracks
// whether bytes have ever arrived, not whether the buffer is currently
// empty.
func (d *TcpDemultiplexer) SetMode(mode ConnectionMode) {
	if d.mode != ModeUnknown || d.appended {
		return
	}
	d.mode = mode
}

// HasPacket reports whether the pending FIFO is non-empty.
func (d *TcpDemultiplexer) HasPacket() bool {
	return len(d.pending) != 0
}

// PopPacket removes and returns the head of the pending FIFO, or ok=false
// if it is empty. Packets are returned in strict stream order.
func (d *TcpDemultiplexer) PopPacket() (pkt Packet, ok bool) {
	if len(d.pending) == 0 {
		return Packet{}, false
	}
	pkt = d.pending[0]
	d.pending = d.pending[1:]
	if len(d.pending) == 0 {
		// Let the backing array be reclaimed instead of growing forever
		// on a connection with a long idle tail.
		d.pending = nil
	}
	return pkt, true
}

// Append adds b to the internal buffer and extracts as many complete
// packets as possible. It returns a non-nil *CriticalError only when the
// buffered bytes can never be a valid prefix of any legal stream for the
// detected mode; the caller is expected to tear down the connection in
// that case. A nil return (including when more bytes are simply needed)
// means the demultiplexer may keep operating.
func (d *TcpDemultiplexer) Append(b []byte) error {
	d.appended = true
	d.buffer.append(b)

	if d.mode == ModeUnknown {
		mode, decided := detectMode(d.buffer.bytes())
		if !decided {
			return nil
		}
		if mode == ModeIceTcpDirect && !looksLikeRfc4571(d.buffer.bytes()) {
			d.logger.Warn("tcpmux: could not detect TCP connection type, assuming ICE-TCP Direct (RFC 4571)")
		}
		d.mode = mode
	}

	for {
		var (
			result disposition
			critErr *CriticalError
		)

		switch d.mode {
		case ModeIceTcpDirect:
			if d.buffer.len() < rfc4571HeaderSize {
				return nil
			}
			result, critErr = d.extractRFC4571Frame()
		case ModeTurnRelay:
			if d.buffer.len() <= minTurnRelayHeader {
				return nil
			}
			result, critErr = d.extractTurnRelayFrame()
		default:
			return nil
		}

		switch result {
		case dispSuccess:
			continue
		case dispNotEnoughBuffer:
			return nil
		case dispFailed:
			d.logger.Errorf("tcpmux: critical framing error: %v", critErr)
			return critErr
		}
	}
}

// looksLikeRfc4571 reports whether b matches the strict RFC 4571 detection
// pattern (as opposed to having reached that mode via the degenerate
// fallback), purely so Append knows whether to log the fallback warning.
func looksLikeRfc4571(b []byte) bool {
	if len(b) < minDetectionBytes {
		return false
	}
	return b[0] == 0x00 && b[1] >= 20 && b[2] <= 0x03
}
