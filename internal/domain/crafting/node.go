package crafting

// NodeID is the arena index of a node within one resolution graph
type NodeID int

// Node is the shared contract of the three graph node variants:
// *ResourceNode, *ProductionNode and *ConversionNode.
// The set is closed; walk and post-processing dispatch with a type switch.
type Node interface {
	// ID returns the arena index of the node
	ID() NodeID

	// AddRemainder adjusts the leftover counter for key and returns the new balance
	AddRemainder(key ResourceKey, delta int) int

	// Remainder returns the current leftover for key, 0 if absent
	Remainder(key ResourceKey) int

	// Remainders returns a copy of every leftover held by the node
	Remainders() map[ResourceKey]int

	sealed()
}

// recipeHistory is the set of recipes on the current walk branch
type recipeHistory map[RecipeID]struct{}

func (h recipeHistory) contains(id RecipeID) bool {
	_, ok := h[id]
	return ok
}

func (h recipeHistory) add(id RecipeID) {
	h[id] = struct{}{}
}

func (h recipeHistory) remove(id RecipeID) {
	delete(h, id)
}
