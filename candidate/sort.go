package candidate

// ByPriority orders candidates by the total order RFC 5245 §4.1.3
// prescribes for presenting candidates to an agent: priority descending,
// then foundation ascending, then component id ascending, as tie
// breakers for candidates that happen to share a priority.
type ByPriority []*IceCandidate

func (s ByPriority) Len() int      { return len(s) }
func (s ByPriority) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s ByPriority) Less(i, j int) bool {
	a, b := s[i], s[j]
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if a.Foundation != b.Foundation {
		return a.Foundation < b.Foundation
	}
	return a.ComponentID < b.ComponentID
}
