package candidate

// TCPType is the RFC 6544 "tcptype" extension value, describing how a TCP
// candidate establishes its connection. It is None for every UDP candidate
// and non-None for every TCP candidate.
type TCPType int

const (
	// TCPTypeNone marks a UDP candidate, which carries no tcptype extension.
	TCPTypeNone TCPType = iota
	// TCPTypeActive candidates initiate outbound TCP connections.
	TCPTypeActive
	// TCPTypePassive candidates accept incoming TCP connections.
	TCPTypePassive
	// TCPTypeSo candidates attempt simultaneous-open.
	TCPTypeSo
)

func (t TCPType) String() string {
	switch t {
	case TCPTypeActive:
		return "active"
	case TCPTypePassive:
		return "passive"
	case TCPTypeSo:
		return "so"
	case TCPTypeNone:
		return ""
	default:
		return ""
	}
}

// parseTCPType maps an RFC 6544 tcptype token to a TCPType. ok is false for
// anything other than the three legal tokens.
func parseTCPType(s string) (t TCPType, ok bool) {
	switch s {
	case "active":
		return TCPTypeActive, true
	case "passive":
		return TCPTypePassive, true
	case "so":
		return TCPTypeSo, true
	default:
		return TCPTypeNone, false
	}
}

// Well-known candidate-type tokens (RFC 5245 §15.1). Extension tokens
// outside this set are legal and stored verbatim in CandidateType.
const (
	CandidateTypeHost  = "host"
	CandidateTypeSrflx = "srflx"
	CandidateTypePrflx = "prflx"
	CandidateTypeRelay = "relay"
)

// Well-known transport tokens. Transport is normalized to one of these on
// emission; parsing accepts either case-insensitively.
const (
	TransportUDP = "UDP"
	TransportTCP = "TCP"
)
