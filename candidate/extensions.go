package candidate

// ExtensionAttribute is one name/value pair from the trailing
// *(SP extension-att-name SP extension-att-value) portion of a candidate
// line (RFC 5245 §15.1).
type ExtensionAttribute struct {
	Name  string
	Value string
}

// Extensions is an ordered, possibly-repeating list of extension
// attributes. Order is preserved on parse and emission so that a
// parse/serialize round trip emits the extensions in their original order.
type Extensions []ExtensionAttribute

// Get returns the value of the first attribute named name, if any.
func (e Extensions) Get(name string) (string, bool) {
	for _, attr := range e {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Add appends a new name/value pair, even if name is already present.
// Extension names are not required to be unique.
func (e *Extensions) Add(name, value string) {
	*e = append(*e, ExtensionAttribute{Name: name, Value: value})
}

// Equal reports whether e and other carry the same multiset of
// name/value pairs, ignoring order. This is the comparison used by the
// parse/serialize round-trip property, which does not promise to
// preserve the exact ordering of repeated extension names.
func (e Extensions) Equal(other Extensions) bool {
	if len(e) != len(other) {
		return false
	}
	remaining := make([]ExtensionAttribute, len(other))
	copy(remaining, other)
	for _, attr := range e {
		found := -1
		for i, candidate := range remaining {
			if candidate == attr {
				found = i
				break
			}
		}
		if found == -1 {
			return false
		}
		remaining = append(remaining[:found], remaining[found+1:]...)
	}
	return true
}
