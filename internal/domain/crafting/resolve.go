package crafting

import "github.com/andrescamacho/craftchain-go/pkg/utils"

// subRequest is a queued ingredient demand of one production step
type subRequest struct {
	key     ResourceKey
	slotKey ResourceKey
	amount  int
}

// Run resolves every requested key.
// Negative demand is banked first, then positive demand is walked in pin order.
func (g *Graph) Run() {
	for _, key := range g.requestOrder {
		amount := g.requestedItems.Get(key)
		if amount >= 0 {
			continue
		}
		if id, ok := g.nodes[key]; ok {
			g.arena[id].AddRemainder(key, -amount)
		}
	}

	for _, key := range g.requestOrder {
		amount := g.requestedItems.Get(key)
		if amount <= 0 {
			continue
		}
		g.resolve(key, amount, make(recipeHistory), true)
	}
}

// resolve satisfies amount of key and returns the quantity reported satisfied.
// history holds the recipes on the current branch; keepOutputs banks the result
// on the producing node instead of consuming it.
func (g *Graph) resolve(key ResourceKey, amount int, history recipeHistory, keepOutputs bool) int {
	if amount <= 0 {
		return 0
	}

	id, ok := g.nodes[key]
	if !ok {
		return 0
	}

	switch node := g.arena[id].(type) {
	case *ResourceNode:
		node.AddRemainder(key, -amount)
		return amount
	case *ConversionNode:
		return g.resolveConversion(node, key, amount, history)
	case *ProductionNode:
		return g.resolveProduction(node, key, amount, history, keepOutputs)
	}

	return 0
}

func (g *Graph) resolveProduction(node *ProductionNode, key ResourceKey, amount int, history recipeHistory, keepOutputs bool) int {
	available := g.scavenge(key, amount)

	if history.contains(node.recipeID) {
		return available
	}

	toRequest := amount - available
	if toRequest <= 0 {
		if keepOutputs {
			node.AddRemainder(key, amount)
			node.chainOutputs.Adjust(key, amount)
		}
		return amount
	}

	perCraft := node.OutputQuantity(key)
	if perCraft <= 0 {
		if keepOutputs {
			node.AddRemainder(key, available)
		}
		return available
	}

	crafts := utils.CeilDiv(toRequest, perCraft)
	node.creditOutputs(crafts)
	if keepOutputs {
		node.AddRemainder(key, available)
		node.chainOutputs.Adjust(key, amount)
	} else {
		node.AddRemainder(key, -toRequest)
	}
	node.crafts += crafts

	requests := g.ingredientRequests(node, crafts)

	history.add(node.recipeID)
	for _, req := range requests {
		satisfied := g.resolve(req.key, req.amount, history, false)
		node.addChainInput(req.key, req.slotKey, req.amount-satisfied)
	}
	history.remove(node.recipeID)

	return amount
}

// ingredientRequests turns every constrained ingredient slot into a graph request
// or a chain input. Requests for the same key are coalesced in first-seen order.
func (g *Graph) ingredientRequests(node *ProductionNode, crafts int) []subRequest {
	requests := make([]subRequest, 0, len(node.ingredients))
	index := make(map[ResourceKey]int)

	enqueue := func(key, slotKey ResourceKey, amount int) {
		if i, queued := index[key]; queued {
			requests[i].amount += amount
			return
		}
		index[key] = len(requests)
		requests = append(requests, subRequest{key: key, slotKey: slotKey, amount: amount})
	}

	for _, ingredient := range node.ingredients {
		pinnedHere, ok := node.firstPinnedCandidate(ingredient)
		if !ok {
			continue
		}

		if _, known := g.nodes[pinnedHere]; known {
			enqueue(pinnedHere, pinnedHere, ingredient.amounts[pinnedHere]*crafts)
			continue
		}

		substituted := false
		for _, candidate := range ingredient.candidates {
			if _, known := g.nodes[candidate]; known {
				enqueue(candidate, pinnedHere, ingredient.amounts[candidate]*crafts)
				substituted = true
				break
			}
		}
		if substituted {
			continue
		}

		node.addChainInput(pinnedHere, pinnedHere, ingredient.amounts[pinnedHere]*crafts)
	}

	return requests
}

// scavenge drains leftovers of key from every node able to produce it, up to amount
func (g *Graph) scavenge(key ResourceKey, amount int) int {
	available := 0
	for _, id := range g.allNodes[key] {
		if available >= amount {
			break
		}
		switch node := g.arena[id].(type) {
		case *ConversionNode:
			available += g.collectRemainders(node, key, amount-available)
		case *ProductionNode:
			available += node.drainRemainder(key, amount-available)
		}
	}
	return available
}

func (g *Graph) resolveConversion(node *ConversionNode, key ResourceKey, amount int, history recipeHistory) int {
	outSize := node.unitsOf(key)
	need := amount * outSize
	collected := node.drainBank(need)
	need -= collected

	if need > 0 {
		inputKey := node.InputKey()
		inSize := node.unitsOf(inputKey)
		returned := g.resolve(inputKey, utils.CeilDiv(need, inSize), history, false)
		collected += node.drainInput(inputKey, returned)
	}

	return node.settle(key, collected, amount)
}

// collectRemainders converts leftovers already produced on the input side into
// up to amount items of key, without crafting anything.
// key may be either an input or an output representation of the node.
func (g *Graph) collectRemainders(node *ConversionNode, key ResourceKey, amount int) int {
	if amount <= 0 {
		return 0
	}

	need := amount * node.unitsOf(key)
	collected := node.drainBank(need)

	for _, inputKey := range node.inputs {
		if collected >= need {
			break
		}
		if inputKey == key {
			continue
		}
		inSize := node.unitsOf(inputKey)
		for _, id := range g.allNodes[inputKey] {
			if collected >= need {
				break
			}
			production, ok := g.arena[id].(*ProductionNode)
			if !ok {
				continue
			}
			taken := production.drainRemainder(inputKey, utils.CeilDiv(need-collected, inSize))
			collected += node.drainInput(inputKey, taken)
		}
	}

	return node.settle(key, collected, amount)
}
