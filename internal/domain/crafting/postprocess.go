package crafting

import "github.com/andrescamacho/craftchain-go/pkg/utils"

// Postprocess aggregates node state into per-slot quantities and coalesced stacks.
// Every node is visited once by arena index, whatever keys alias it.
func (g *Graph) Postprocess() *Resolution {
	res := newResolution()

	consumedEmpty := NewLedger()
	producedEmpty := NewLedger()
	for _, node := range g.arena {
		if conversion, ok := node.(*ConversionNode); ok {
			consumedEmpty.Merge(conversion.consumedEmptyContainers)
			producedEmpty.Merge(conversion.producedEmptyContainers)
		}
	}
	consumedDisplay := consumedEmpty.Clone()
	producedDisplay := producedEmpty.Clone()

	inputs := NewLedger()
	outputs := NewLedger()
	remaining := NewLedger()
	inputSlots := make(map[SlotID]bool)
	craftedSlots := make(map[SlotID]bool)

	for _, node := range g.arena {
		switch n := node.(type) {
		case *ProductionNode:
			for _, out := range n.outputs {
				qty := n.OutputQuantity(out.key) * n.crafts
				qty -= takeUpTo(consumedDisplay, out.key, qty)
				res.CalculatedItems[out.slot] = g.model.WithSize(out.entry.Stack, qty)
				res.CraftCounts[out.slot] = n.crafts
				if qty > 0 {
					craftedSlots[out.slot] = true
				}
			}
			for _, in := range n.inputs {
				qty := n.IngredientQuantity(in.key) * n.crafts
				qty -= takeUpTo(producedDisplay, in.key, qty)
				res.CalculatedItems[in.slot] = g.model.WithSize(in.entry.Stack, qty)
				if n.suppliedInputs[in.key] {
					inputSlots[in.slot] = true
				}
			}
			for key, amount := range n.chainInputs {
				if amount > 0 {
					inputs.Adjust(key, amount)
				}
			}
		case *ResourceNode:
			owed := n.Owed()
			for _, entry := range g.resourceSlots[n.id] {
				res.CalculatedItems[entry.Slot] = g.model.WithSize(entry.Stack, owed)
				if owed > 0 {
					inputSlots[entry.Slot] = true
				}
			}
			if owed > 0 {
				inputs.Adjust(n.key, owed)
			} else if n.remainder > 0 {
				remaining.Adjust(n.key, n.remainder)
				res.CalculatedRemainders[n.entry.Slot] = n.remainder
			}
		case *ConversionNode:
			if n.fluidRemainder > 0 {
				remaining.Adjust(n.bulkKey, n.fluidRemainder)
			}
		}
	}

	demand := NewLedger()
	for key, amount := range g.requestedItems {
		if amount > 0 {
			demand.Adjust(key, amount)
		}
	}
	for _, primary := range []bool{true, false} {
		for _, node := range g.arena {
			if production, ok := node.(*ProductionNode); ok {
				g.splitRemainders(production, primary, demand, outputs, remaining, res)
			}
		}
	}

	for _, key := range consumedEmpty.Keys() {
		count := consumedEmpty.Get(key)
		offset := takeUpTo(remaining, key, count)
		if count-offset > 0 {
			inputs.Adjust(key, count-offset)
		}
	}
	for _, key := range producedEmpty.Keys() {
		count := producedEmpty.Get(key)
		offset := takeUpTo(inputs, key, count)
		if count-offset > 0 {
			remaining.Adjust(key, count-offset)
		}
	}

	res.InputStacks = g.materialize(inputs)
	res.OutputStacks = g.materialize(outputs)
	res.RemainingStacks = g.materialize(remaining)
	res.InputSlots = sortedSlots(inputSlots)
	res.CraftedOutputSlots = sortedSlots(craftedSlots)
	res.ConflictingSlots = sortedSlots(g.conflictingSlots)
	res.Steps = g.steps()

	return res
}

// splitRemainders hands each output leftover to outstanding demand first and
// reports the excess as remaining. Primary nodes of a key claim demand before aliases.
func (g *Graph) splitRemainders(n *ProductionNode, primary bool, demand, outputs, remaining Ledger, res *Resolution) {
	for _, key := range n.remainders.Keys() {
		id, registered := g.nodes[key]
		if (registered && id == n.id) != primary {
			continue
		}

		amount := n.remainders.Get(key)
		if amount <= 0 {
			continue
		}

		claimed := takeUpTo(demand, key, amount)
		if claimed > 0 {
			outputs.Adjust(key, claimed)
		}

		excess := amount - claimed
		if excess > 0 {
			remaining.Adjust(key, excess)
			if slot, pinned := n.pinnedOutputKeys[key]; pinned {
				res.CalculatedRemainders[slot] += excess
			}
		}
	}
}

func (g *Graph) steps() []CraftStep {
	steps := make([]CraftStep, 0)
	for _, node := range g.arena {
		production, ok := node.(*ProductionNode)
		if !ok {
			continue
		}
		if production.crafts == 0 && len(production.chainInputs) == 0 {
			continue
		}
		steps = append(steps, CraftStep{
			RecipeID:     production.recipeID,
			Crafts:       production.crafts,
			ChainInputs:  g.materialize(production.chainInputs),
			ChainOutputs: g.materialize(production.chainOutputs),
			Remainders:   g.materialize(production.remainders),
		})
	}
	return steps
}

// materialize turns the positive balances of a ledger into stacks ordered by key
func (g *Graph) materialize(l Ledger) []Stack {
	stacks := make([]Stack, 0, len(l))
	for _, key := range l.Keys() {
		amount := l.Get(key)
		if amount <= 0 {
			continue
		}
		template, ok := g.itemStackMapping[key]
		if !ok {
			continue
		}
		stacks = append(stacks, g.model.WithSize(template, amount))
	}
	return stacks
}

// takeUpTo removes at most limit from the positive balance of key and returns what was taken
func takeUpTo(l Ledger, key ResourceKey, limit int) int {
	taken := utils.Min(l.Get(key), limit)
	if taken <= 0 {
		return 0
	}
	l.Adjust(key, -taken)
	return taken
}
