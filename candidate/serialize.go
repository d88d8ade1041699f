package candidate

import (
	"strconv"
	"strings"
)

// CandidateString renders the candidate-attribute value in canonical RFC
// 5245 form, without the leading "a=" or "candidate:" prefix.
func (c *IceCandidate) CandidateString() string {
	var b strings.Builder

	b.WriteString(c.Foundation)
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(uint64(c.ComponentID), 10))
	b.WriteByte(' ')
	b.WriteString(strings.ToUpper(c.Transport))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(uint64(c.Priority), 10))
	b.WriteByte(' ')
	b.WriteString(c.ConnectionAddress)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(c.Port))
	b.WriteString(" typ ")
	b.WriteString(c.CandidateType)

	if c.HasRelatedAddress() {
		b.WriteString(" raddr ")
		b.WriteString(c.RelAddr)
		b.WriteString(" rport ")
		b.WriteString(strconv.Itoa(c.RelPort))
	}

	for _, attr := range c.Extensions {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteByte(' ')
		b.WriteString(attr.Value)
	}

	return b.String()
}

// String renders the full "candidate:" attribute, suitable for direct
// inclusion in an SDP "a=" line.
func (c *IceCandidate) String() string {
	return "candidate:" + c.CandidateString()
}
