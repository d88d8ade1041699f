package candidate

// Type-preference constants for UDP candidates (RFC 5245 §4.1.2.2, the
// RECOMMENDED values).
const (
	TypePreferenceHost  uint32 = 126
	TypePreferenceSrflx uint32 = 100
	TypePreferencePrflx uint32 = 110
	TypePreferenceRelay uint32 = 0
)

// Type-preference constants for TCP candidates (RFC 6544 §4.2).
const (
	TCPTypePreferenceHost  uint32 = 90
	TCPTypePreferenceSrflx uint32 = 75
	TCPTypePreferenceRelay uint32 = 60
)

// CalculatePriority implements the base RFC 5245 §4.1.2.1 priority
// formula:
//
//	priority = (2^24)*(type_preference) + (2^8)*(local_preference) + (2^0)*(256 - component_id)
func CalculatePriority(typePreference, localPreference, componentID uint32) uint32 {
	return typePreference<<24 + localPreference<<8 + (256 - componentID)
}

// directionPreference is the RFC 6544 §4.2 direction-preference term used
// to compose a TCP candidate's local_preference: simultaneous-open beats
// active, which beats passive.
func directionPreference(tcpType TCPType) uint32 {
	switch tcpType {
	case TCPTypeSo:
		return 6
	case TCPTypeActive:
		return 4
	case TCPTypePassive:
		return 2
	default:
		return 0
	}
}

// CalculateTCPPriority composes a TCP candidate's local_preference from
// its direction preference and caller-supplied other-preference (RFC 6544
// §4.2):
//
//	local_preference = (direction_pref << 13) | other_pref
//
// and delegates to CalculatePriority with the host-TCP type preference
// (90), which is the type preference this helper is specified against.
// Callers computing priority for a TCP srflx or relay candidate should
// call CalculatePriority directly with TCPTypePreferenceSrflx or
// TCPTypePreferenceRelay and the same composed local_preference.
func CalculateTCPPriority(tcpType TCPType, otherPreference, componentID uint32) uint32 {
	localPreference := (directionPreference(tcpType) << 13) | otherPreference
	return CalculatePriority(TCPTypePreferenceHost, localPreference, componentID)
}
