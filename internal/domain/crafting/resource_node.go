package crafting

// ResourceNode wraps one pinned resource that no recipe backs.
// It acts as an unlimited external source during the walk.
//
// The remainder is stored signed: positive is banked and available,
// negative is owed by the outside world.
type ResourceNode struct {
	id        NodeID
	key       ResourceKey
	entry     PinnedEntry
	remainder int
}

func newResourceNode(id NodeID, key ResourceKey, entry PinnedEntry) *ResourceNode {
	return &ResourceNode{
		id:    id,
		key:   key,
		entry: entry,
	}
}

func (n *ResourceNode) sealed() {}

// ID returns the arena index of the node
func (n *ResourceNode) ID() NodeID { return n.id }

// Key returns the resource key of the pinned entry
func (n *ResourceNode) Key() ResourceKey { return n.key }

// Entry returns the pinned entry backing the node
func (n *ResourceNode) Entry() PinnedEntry { return n.entry }

// AddRemainder adjusts the single running remainder. Only the node's own key is tracked.
func (n *ResourceNode) AddRemainder(key ResourceKey, delta int) int {
	if key != n.key {
		return 0
	}
	n.remainder += delta
	return n.remainder
}

// Remainder returns the signed remainder for the node's own key
func (n *ResourceNode) Remainder(key ResourceKey) int {
	if key != n.key {
		return 0
	}
	return n.remainder
}

// Remainders returns the node's balance, empty when it nets to zero
func (n *ResourceNode) Remainders() map[ResourceKey]int {
	if n.remainder == 0 {
		return map[ResourceKey]int{}
	}
	return map[ResourceKey]int{n.key: n.remainder}
}

// Owed returns how much the outside world has to supply, 0 when nothing is owed
func (n *ResourceNode) Owed() int {
	if n.remainder < 0 {
		return -n.remainder
	}
	return 0
}
