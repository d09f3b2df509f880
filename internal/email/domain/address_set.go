package domain

import (
	"encoding/json"
	"strings"
)

// AddressSet is an ordered set of unique addresses. Insertion order is preserved
// and duplicates are ignored. The zero value is an empty set ready to use.
type AddressSet struct {
	items []Address
}

// NewAddressSet builds a set from addrs, dropping duplicates.
func NewAddressSet(addrs ...Address) AddressSet {
	var s AddressSet
	for _, a := range addrs {
		s.Add(a)
	}
	return s
}

// Add appends a unless it is already present. It reports whether a was added.
func (s *AddressSet) Add(a Address) bool {
	if s.Contains(a) {
		return false
	}
	s.items = append(s.items, a)
	return true
}

// Contains reports whether a is in the set.
func (s AddressSet) Contains(a Address) bool {
	for _, item := range s.items {
		if item == a {
			return true
		}
	}
	return false
}

// At returns the i-th address and whether it exists.
func (s AddressSet) At(i int) (Address, bool) {
	if i < 0 || i >= len(s.items) {
		return Address{}, false
	}
	return s.items[i], true
}

// Len returns the number of addresses.
func (s AddressSet) Len() int { return len(s.items) }

// IsEmpty reports whether the set has no addresses.
func (s AddressSet) IsEmpty() bool { return len(s.items) == 0 }

// Items returns the addresses in insertion order.
func (s AddressSet) Items() []Address {
	out := make([]Address, len(s.items))
	copy(out, s.items)
	return out
}

// Strings returns the addresses as plain strings in insertion order.
func (s AddressSet) Strings() []string {
	out := make([]string, len(s.items))
	for i, a := range s.items {
		out[i] = a.String()
	}
	return out
}

// Clone returns an independent copy.
func (s AddressSet) Clone() AddressSet {
	return AddressSet{items: s.Items()}
}

// Equal reports whether both sets hold the same addresses, in any order.
func (s AddressSet) Equal(other AddressSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, a := range s.items {
		if !other.Contains(a) {
			return false
		}
	}
	return true
}

func (s AddressSet) String() string {
	return strings.Join(s.Strings(), ", ")
}

// MarshalJSON encodes the set as a JSON array, never null.
func (s AddressSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items())
}

// UnmarshalJSON decodes a JSON array, validating every address and dropping duplicates.
func (s *AddressSet) UnmarshalJSON(data []byte) error {
	var addrs []Address
	if err := json.Unmarshal(data, &addrs); err != nil {
		return err
	}
	*s = NewAddressSet(addrs...)
	return nil
}
