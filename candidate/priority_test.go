package candidate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculatePriorityHostUDP(t *testing.T) {
	// type_preference=126 (host), local_preference=65535 (single interface),
	// component_id=1 is the canonical example from RFC 5245 §4.1.2.1.
	p := CalculatePriority(TypePreferenceHost, 65535, 1)
	require.EqualValues(t, 126<<24|65535<<8|255, p)
}

func TestCalculateTCPPriorityPassive(t *testing.T) {
	p := CalculateTCPPriority(TCPTypePassive, 12345, 1)
	want := uint32(90)<<24 + ((uint32(2)<<13)|12345)<<8 + 255
	require.Equal(t, want, p)
}

func TestCalculateTCPPriorityDirectionOrdering(t *testing.T) {
	so := CalculateTCPPriority(TCPTypeSo, 0, 1)
	active := CalculateTCPPriority(TCPTypeActive, 0, 1)
	passive := CalculateTCPPriority(TCPTypePassive, 0, 1)

	require.Greater(t, so, active)
	require.Greater(t, active, passive)
}

func TestCalculatePriorityComponentIDTieBreak(t *testing.T) {
	rtp := CalculatePriority(TypePreferenceHost, 65535, 1)
	rtcp := CalculatePriority(TypePreferenceHost, 65535, 2)
	require.Greater(t, rtp, rtcp)
}
