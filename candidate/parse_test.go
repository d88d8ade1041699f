package candidate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHostUDPCandidate(t *testing.T) {
	c, err := Parse("candidate:0 1 UDP 2130706431 192.168.0.183 10000 typ host generation 0")
	require.NoError(t, err)

	require.Equal(t, "0", c.Foundation)
	require.EqualValues(t, 1, c.ComponentID)
	require.Equal(t, TransportUDP, c.Transport)
	require.EqualValues(t, 2130706431, c.Priority)
	require.Equal(t, "192.168.0.183", c.ConnectionAddress)
	require.Equal(t, 10000, c.Port)
	require.Equal(t, CandidateTypeHost, c.CandidateType)
	require.False(t, c.HasRelatedAddress())
	require.Equal(t, TCPTypeNone, c.TCPType)

	generation, ok := c.Extensions.Get("generation")
	require.True(t, ok)
	require.Equal(t, "0", generation)
}

func TestParseRoundTrip(t *testing.T) {
	line := "candidate:0 1 UDP 2130706431 192.168.0.183 10000 typ host generation 0"
	c, err := Parse(line)
	require.NoError(t, err)

	reparsed, err := Parse(c.CandidateString())
	require.NoError(t, err)

	require.Equal(t, c.Foundation, reparsed.Foundation)
	require.Equal(t, c.ComponentID, reparsed.ComponentID)
	require.Equal(t, c.Transport, reparsed.Transport)
	require.Equal(t, c.Priority, reparsed.Priority)
	require.Equal(t, c.ConnectionAddress, reparsed.ConnectionAddress)
	require.Equal(t, c.Port, reparsed.Port)
	require.Equal(t, c.CandidateType, reparsed.CandidateType)
	require.True(t, c.Extensions.Equal(reparsed.Extensions))
}

func TestParseTCPCandidateWithTcptypeExtension(t *testing.T) {
	c, err := Parse("candidate:1 1 TCP 1015021823 10.0.0.5 9 typ host tcptype passive generation 0")
	require.NoError(t, err)

	require.Equal(t, TransportTCP, c.Transport)
	require.Equal(t, TCPTypePassive, c.TCPType)
	tcptype, ok := c.Extensions.Get("tcptype")
	require.True(t, ok)
	require.Equal(t, "passive", tcptype)
}

func TestParseTCPCandidateDefaultsToActiveWithoutTcptype(t *testing.T) {
	c, err := Parse("candidate:1 1 TCP 1015021823 10.0.0.5 9 typ host")
	require.NoError(t, err)
	require.Equal(t, TCPTypeActive, c.TCPType)
}

func TestParseRelayCandidateWithRelatedAddress(t *testing.T) {
	c, err := Parse("candidate:2 1 UDP 41885439 203.0.113.7 54321 typ relay raddr 192.0.2.3 rport 12345")
	require.NoError(t, err)

	require.Equal(t, CandidateTypeRelay, c.CandidateType)
	require.True(t, c.HasRelatedAddress())
	require.Equal(t, "192.0.2.3", c.RelAddr)
	require.Equal(t, 12345, c.RelPort)
}

func TestParseRejectsTooFewFields(t *testing.T) {
	_, err := Parse("candidate:0 1 UDP 2130706431 192.168.0.183 10000")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, ReasonMalformedGrammar, parseErr.Reason)
}

func TestParseRejectsMissingTypLiteral(t *testing.T) {
	_, err := Parse("candidate:0 1 UDP 2130706431 192.168.0.183 10000 wat host")
	require.Error(t, err)
}

func TestParseRejectsComponentIDOutOfRange(t *testing.T) {
	_, err := Parse("candidate:0 0 UDP 2130706431 192.168.0.183 10000 typ host")
	require.Error(t, err)

	_, err = Parse("candidate:0 257 UDP 2130706431 192.168.0.183 10000 typ host")
	require.Error(t, err)
}

func TestParseRejectsUnknownTransport(t *testing.T) {
	_, err := Parse("candidate:0 1 SCTP 2130706431 192.168.0.183 10000 typ host")
	require.Error(t, err)
}

func TestParseAcceptsExtensionCandidateType(t *testing.T) {
	c, err := Parse("candidate:3 1 UDP 1 192.0.2.1 1 typ p2p-extension")
	require.NoError(t, err)
	require.Equal(t, "p2p-extension", c.CandidateType)
}

func TestParseStripsLeadingSdpPrefix(t *testing.T) {
	c, err := Parse("a=candidate:0 1 UDP 2130706431 192.168.0.183 10000 typ host")
	require.NoError(t, err)
	require.Equal(t, "0", c.Foundation)
}
