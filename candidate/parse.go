package candidate

import (
	"strconv"
	"strings"
)

const (
	minComponentID = 1
	maxComponentID = 256
	maxFoundationLen = 32
)

// Parse parses an SDP candidate-attribute line (RFC 5245 §15.1, with the
// RFC 6544 TCP extensions) into an IceCandidate. A leading "a=candidate:"
// or "candidate:" prefix, if present, is stripped before parsing; fields
// are split on runs of ASCII whitespace, which is more liberal than the
// grammar's single-SP requirement but tolerates the minor formatting
// differences seen between SDP producers in the wild.
func Parse(line string) (*IceCandidate, error) {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "a=")
	line = strings.TrimPrefix(line, "candidate:")

	fields := strings.Fields(line)
	if len(fields) < 8 {
		return nil, newParseError(ReasonMalformedGrammar, "", "expected at least 8 fields (foundation component-id transport priority address port typ cand-type)")
	}

	c := &IceCandidate{}

	foundation := fields[0]
	if foundation == "" || len(foundation) > maxFoundationLen {
		return nil, newParseError(ReasonInvalidField, "foundation", "must be 1-32 characters")
	}
	c.Foundation = foundation

	componentID, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil || componentID < minComponentID || componentID > maxComponentID {
		return nil, newParseError(ReasonInvalidField, "component-id", "must be an integer in [1,256]")
	}
	c.ComponentID = uint16(componentID)

	switch strings.ToUpper(fields[2]) {
	case TransportUDP:
		c.Transport = TransportUDP
	case TransportTCP:
		c.Transport = TransportTCP
	default:
		return nil, newParseError(ReasonInvalidField, "transport", "must be UDP or TCP")
	}

	priority, err := strconv.ParseUint(fields[3], 10, 32)
	if err != nil {
		return nil, newParseError(ReasonInvalidField, "priority", "must be an unsigned 32-bit integer")
	}
	c.Priority = uint32(priority)

	c.ConnectionAddress = fields[4]

	port, err := strconv.ParseUint(fields[5], 10, 16)
	if err != nil {
		return nil, newParseError(ReasonInvalidField, "port", "must be an integer in [0,65535]")
	}
	c.Port = int(port)

	if fields[6] != "typ" {
		return nil, newParseError(ReasonMalformedGrammar, "typ", `expected literal "typ"`)
	}
	c.CandidateType = fields[7]

	idx := 8
	if idx+1 < len(fields) && fields[idx] == "raddr" {
		c.RelAddr = fields[idx+1]
		idx += 2
	}
	if idx+1 < len(fields) && fields[idx] == "rport" {
		rport, err := strconv.ParseUint(fields[idx+1], 10, 16)
		if err != nil {
			return nil, newParseError(ReasonInvalidField, "rport", "must be an integer in [0,65535]")
		}
		c.RelPort = int(rport)
		idx += 2
	}

	remaining := fields[idx:]
	if len(remaining)%2 != 0 {
		return nil, newParseError(ReasonMalformedGrammar, "extensions", "extension attributes must come in name/value pairs")
	}
	for i := 0; i < len(remaining); i += 2 {
		name, value := remaining[i], remaining[i+1]
		c.Extensions.Add(name, value)
		if name == "tcptype" {
			tcpType, ok := parseTCPType(value)
			if !ok {
				return nil, newParseError(ReasonInvalidField, "tcptype", "must be active, passive or so")
			}
			c.TCPType = tcpType
		}
	}

	if c.Transport == TransportTCP {
		if _, hasTcptype := c.Extensions.Get("tcptype"); !hasTcptype {
			// RFC 6544 candidates are not required to carry the tcptype
			// extension explicitly; active is the safer assumption for an
			// endpoint that otherwise has no connection-role information.
			c.TCPType = TCPTypeActive
		}
	}

	return c, nil
}
