package tcpmux

// disposition is the three-way result of attempting to extract one frame
// from the head of the buffer.
type disposition int

const (
	// dispSuccess means one packet was framed and enqueued; the caller
	// should loop and try again, more frames may already be buffered.
	dispSuccess disposition = iota
	// dispNotEnoughBuffer means the buffer is a valid prefix of a legal
	// stream but more bytes are needed; Append returns nil, bytes are
	// retained for the next call.
	dispNotEnoughBuffer
	// dispFailed means the buffer can never be a valid prefix of any legal
	// stream for this connection's mode; Append returns a *CriticalError.
	dispFailed
)
