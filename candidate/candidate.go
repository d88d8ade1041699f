package candidate

import (
	"net"
	"strconv"
	"strings"
	"sync"
)

// IceCandidate is an RFC 5245 candidate attribute, parsed or constructed,
// together with its RFC 6544 TCP extensions and priority.
//
// An IceCandidate is a value type: its exported fields may be read freely
// by concurrent goroutines, but only one goroutine may mutate it at a
// time. ResolvedAddress is the one exception that looks like a read but
// lazily populates a cache; that cache is guarded so concurrent readers
// are still safe.
type IceCandidate struct {
	Foundation        string
	ComponentID       uint16
	Transport         string
	Priority          uint32
	ConnectionAddress string
	Port              int
	CandidateType     string
	RelAddr           string
	RelPort           int
	Extensions        Extensions
	TCPType           TCPType

	resolveOnce sync.Once
	resolved    net.Addr
}

// New constructs a minimal host candidate for the given transport and
// socket address: foundation "0", component id 1, priority 0, candidate
// type host. A TCP candidate defaults to TCPTypeActive, since an
// originating agent that hasn't decided its connection role yet is safer
// assuming it will dial out than assuming it will listen; the caller is
// expected to assign TCPType directly if a different role is intended.
func New(transport, address string, port int) *IceCandidate {
	c := &IceCandidate{
		Foundation:        "0",
		ComponentID:       1,
		Transport:         strings.ToUpper(transport),
		ConnectionAddress: address,
		Port:              port,
		CandidateType:     CandidateTypeHost,
	}
	if c.IsTCP() {
		c.TCPType = TCPTypeActive
	}
	return c
}

// IsTCP reports whether Transport is TCP.
func (c *IceCandidate) IsTCP() bool {
	return strings.EqualFold(c.Transport, TransportTCP)
}

// ResolvedAddress lazily resolves ConnectionAddress:Port into a net.Addr
// (net.TCPAddr for TCP candidates, net.UDPAddr for UDP ones) and caches
// the result for the lifetime of the candidate. Resolution failures are
// cached as a nil result; callers that need the error should resolve
// the address themselves.
func (c *IceCandidate) ResolvedAddress() net.Addr {
	c.resolveOnce.Do(func() {
		host := net.JoinHostPort(c.ConnectionAddress, strconv.Itoa(c.Port))
		if c.IsTCP() {
			addr, err := net.ResolveTCPAddr("tcp", host)
			if err == nil {
				c.resolved = addr
			}
			return
		}
		addr, err := net.ResolveUDPAddr("udp", host)
		if err == nil {
			c.resolved = addr
		}
	})
	return c.resolved
}

// HasRelatedAddress reports whether this candidate carries a raddr/rport
// pair, which is mandatory for srflx, prflx and relay candidates and
// forbidden for host candidates.
func (c *IceCandidate) HasRelatedAddress() bool {
	return c.RelAddr != ""
}
