package crafting

import "sort"

// Ledger is a sparse signed counter per resource key.
// An entry that nets to zero is removed, so a key is present only while it holds a balance.
type Ledger map[ResourceKey]int

// NewLedger creates an empty ledger
func NewLedger() Ledger {
	return make(Ledger)
}

// Adjust adds delta to the balance of key and returns the new balance
func (l Ledger) Adjust(key ResourceKey, delta int) int {
	total := l[key] + delta
	if total == 0 {
		delete(l, key)
		return 0
	}
	l[key] = total
	return total
}

// Get returns the balance of key, 0 if absent
func (l Ledger) Get(key ResourceKey) int {
	return l[key]
}

// Keys returns the keys holding a balance in lexical order
func (l Ledger) Keys() []ResourceKey {
	keys := make([]ResourceKey, 0, len(l))
	for key := range l {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Clone returns an independent copy
func (l Ledger) Clone() Ledger {
	clone := make(Ledger, len(l))
	for key, value := range l {
		clone[key] = value
	}
	return clone
}

// Merge adds every balance of other into l
func (l Ledger) Merge(other Ledger) {
	for key, value := range other {
		l.Adjust(key, value)
	}
}

// Total sums every balance
func (l Ledger) Total() int {
	total := 0
	for _, value := range l {
		total += value
	}
	return total
}
