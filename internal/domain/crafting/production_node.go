package crafting

// pinnedSlot is one pinned occurrence attached to a production node
type pinnedSlot struct {
	slot  SlotID
	key   ResourceKey
	entry PinnedEntry
}

// ingredientSlot is one recipe ingredient position.
// Candidates keep the recipe's order; amounts sum duplicates of the same candidate.
type ingredientSlot struct {
	candidates []ResourceKey
	amounts    map[ResourceKey]int
}

// ProductionNode wraps one production rule together with the pinned slots
// that reference it in the current graph.
//
// crafts only grows during a resolution and is the multiplier used to
// derive realized quantities in post-processing.
type ProductionNode struct {
	id       NodeID
	recipeID RecipeID

	inputs           []pinnedSlot
	outputs          []pinnedSlot
	pinnedInputKeys  map[ResourceKey]SlotID
	pinnedOutputKeys map[ResourceKey]SlotID

	ingredients   []ingredientSlot
	recipeOutputs map[ResourceKey]int
	outputOrder   []ResourceKey

	crafts       int
	remainders   Ledger
	chainInputs  Ledger
	chainOutputs Ledger

	recipeStacks map[ResourceKey]Stack
	stackOrder   []ResourceKey

	// suppliedInputs marks pinned input keys satisfied from outside the graph
	suppliedInputs map[ResourceKey]bool
}

func newProductionNode(id NodeID, model ItemModel, recipe Recipe, inputs, outputs []PinnedEntry) *ProductionNode {
	node := &ProductionNode{
		id:               id,
		recipeID:         recipe.ID,
		inputs:           make([]pinnedSlot, 0, len(inputs)),
		outputs:          make([]pinnedSlot, 0, len(outputs)),
		pinnedInputKeys:  make(map[ResourceKey]SlotID),
		pinnedOutputKeys: make(map[ResourceKey]SlotID),
		ingredients:      make([]ingredientSlot, 0, len(recipe.Ingredients)),
		recipeOutputs:    make(map[ResourceKey]int),
		outputOrder:      make([]ResourceKey, 0, len(recipe.Results)),
		remainders:       NewLedger(),
		chainInputs:      NewLedger(),
		chainOutputs:     NewLedger(),
		recipeStacks:     make(map[ResourceKey]Stack),
		stackOrder:       make([]ResourceKey, 0),
		suppliedInputs:   make(map[ResourceKey]bool),
	}

	for _, entry := range inputs {
		key := model.Key(entry.Stack)
		node.inputs = append(node.inputs, pinnedSlot{slot: entry.Slot, key: key, entry: entry})
		if _, exists := node.pinnedInputKeys[key]; !exists {
			node.pinnedInputKeys[key] = entry.Slot
		}
	}

	for _, entry := range outputs {
		key := model.Key(entry.Stack)
		node.outputs = append(node.outputs, pinnedSlot{slot: entry.Slot, key: key, entry: entry})
		if _, exists := node.pinnedOutputKeys[key]; !exists {
			node.pinnedOutputKeys[key] = entry.Slot
		}
	}

	for _, candidates := range recipe.Ingredients {
		ingredient := ingredientSlot{
			candidates: make([]ResourceKey, 0, len(candidates)),
			amounts:    make(map[ResourceKey]int),
		}
		for _, candidate := range candidates {
			key := model.Key(candidate)
			node.rememberStack(key, candidate)
			if _, seen := ingredient.amounts[key]; !seen {
				ingredient.candidates = append(ingredient.candidates, key)
			}
			ingredient.amounts[key] += candidate.Size
		}
		if len(ingredient.candidates) > 0 {
			node.ingredients = append(node.ingredients, ingredient)
		}
	}

	for _, result := range recipe.Results {
		key := model.Key(result)
		node.rememberStack(key, result)
		if _, seen := node.recipeOutputs[key]; !seen {
			node.outputOrder = append(node.outputOrder, key)
		}
		node.recipeOutputs[key] += result.Size
	}

	return node
}

func (n *ProductionNode) rememberStack(key ResourceKey, stack Stack) {
	if _, seen := n.recipeStacks[key]; seen {
		return
	}
	n.recipeStacks[key] = stack
	n.stackOrder = append(n.stackOrder, key)
}

func (n *ProductionNode) sealed() {}

// ID returns the arena index of the node
func (n *ProductionNode) ID() NodeID { return n.id }

// RecipeID returns the production rule this node wraps
func (n *ProductionNode) RecipeID() RecipeID { return n.recipeID }

// Crafts returns how many times the rule has been invoked so far
func (n *ProductionNode) Crafts() int { return n.crafts }

// AddRemainder adjusts the leftover of an output key
func (n *ProductionNode) AddRemainder(key ResourceKey, delta int) int {
	return n.remainders.Adjust(key, delta)
}

// Remainder returns the leftover of an output key
func (n *ProductionNode) Remainder(key ResourceKey) int {
	return n.remainders.Get(key)
}

// Remainders returns a copy of every output leftover
func (n *ProductionNode) Remainders() map[ResourceKey]int {
	return n.remainders.Clone()
}

// ChainInputs returns a copy of the externally supplied input quantities
func (n *ProductionNode) ChainInputs() Ledger {
	return n.chainInputs.Clone()
}

// ChainOutputs returns a copy of the output quantities handed outside the graph
func (n *ProductionNode) ChainOutputs() Ledger {
	return n.chainOutputs.Clone()
}

// OutputQuantity returns the per-craft yield of key, 0 if the recipe does not produce it
func (n *ProductionNode) OutputQuantity(key ResourceKey) int {
	return n.recipeOutputs[key]
}

// OutputKeys returns the distinct pinned output keys in pin order
func (n *ProductionNode) OutputKeys() []ResourceKey {
	keys := make([]ResourceKey, 0, len(n.pinnedOutputKeys))
	seen := make(map[ResourceKey]bool, len(n.outputs))
	for _, output := range n.outputs {
		if seen[output.key] {
			continue
		}
		seen[output.key] = true
		keys = append(keys, output.key)
	}
	return keys
}

// IngredientQuantity sums the per-craft amount of key across every ingredient slot
func (n *ProductionNode) IngredientQuantity(key ResourceKey) int {
	total := 0
	for _, ingredient := range n.ingredients {
		total += ingredient.amounts[key]
	}
	return total
}

// firstPinnedCandidate returns the first candidate of the slot that is pinned as an input here
func (n *ProductionNode) firstPinnedCandidate(ingredient ingredientSlot) (ResourceKey, bool) {
	for _, candidate := range ingredient.candidates {
		if _, pinned := n.pinnedInputKeys[candidate]; pinned {
			return candidate, true
		}
	}
	return "", false
}

// creditOutputs banks the yield of crafts for every pinned output the recipe produces
func (n *ProductionNode) creditOutputs(crafts int) {
	for _, key := range n.outputOrder {
		if _, pinned := n.pinnedOutputKeys[key]; !pinned {
			continue
		}
		n.remainders.Adjust(key, n.recipeOutputs[key]*crafts)
	}
}

// drainRemainder takes up to limit of the positive leftover of key
func (n *ProductionNode) drainRemainder(key ResourceKey, limit int) int {
	available := n.remainders.Get(key)
	if available <= 0 || limit <= 0 {
		return 0
	}
	taken := available
	if taken > limit {
		taken = limit
	}
	n.remainders.Adjust(key, -taken)
	return taken
}

// addChainInput records amount of key as supplied from outside and marks the pinned slot key
func (n *ProductionNode) addChainInput(key, slotKey ResourceKey, amount int) {
	if amount <= 0 {
		return
	}
	n.chainInputs.Adjust(key, amount)
	n.suppliedInputs[slotKey] = true
}
