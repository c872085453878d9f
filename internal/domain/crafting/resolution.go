package crafting

import "sort"

// CraftStep summarizes one production rule after a resolution
type CraftStep struct {
	RecipeID     RecipeID `json:"recipe_id"`
	Crafts       int      `json:"crafts"`
	ChainInputs  []Stack  `json:"chain_inputs,omitempty"`
	ChainOutputs []Stack  `json:"chain_outputs,omitempty"`
	Remainders   []Stack  `json:"remainders,omitempty"`
}

// Resolution is the outcome of one refresh, keyed by pinned slot where it applies
type Resolution struct {
	CalculatedItems      map[SlotID]Stack `json:"calculated_items"`
	CalculatedRemainders map[SlotID]int   `json:"calculated_remainders"`
	CraftCounts          map[SlotID]int   `json:"craft_counts"`

	InputSlots         []SlotID `json:"input_slots"`
	CraftedOutputSlots []SlotID `json:"crafted_output_slots"`
	ConflictingSlots   []SlotID `json:"conflicting_slots"`

	InputStacks     []Stack `json:"input_stacks"`
	OutputStacks    []Stack `json:"output_stacks"`
	RemainingStacks []Stack `json:"remaining_stacks"`

	Steps []CraftStep `json:"steps"`
}

func newResolution() *Resolution {
	return &Resolution{
		CalculatedItems:      make(map[SlotID]Stack),
		CalculatedRemainders: make(map[SlotID]int),
		CraftCounts:          make(map[SlotID]int),
		InputSlots:           make([]SlotID, 0),
		CraftedOutputSlots:   make([]SlotID, 0),
		ConflictingSlots:     make([]SlotID, 0),
		InputStacks:          make([]Stack, 0),
		OutputStacks:         make([]Stack, 0),
		RemainingStacks:      make([]Stack, 0),
		Steps:                make([]CraftStep, 0),
	}
}

// TotalCrafts sums the crafts of every step
func (r *Resolution) TotalCrafts() int {
	total := 0
	for _, step := range r.Steps {
		total += step.Crafts
	}
	return total
}

// Step returns the summary of a recipe, if it took part in the resolution
func (r *Resolution) Step(id RecipeID) (CraftStep, bool) {
	for _, step := range r.Steps {
		if step.RecipeID == id {
			return step, true
		}
	}
	return CraftStep{}, false
}

// IsInput reports whether slot is supplied from outside the graph
func (r *Resolution) IsInput(slot SlotID) bool {
	return containsSlot(r.InputSlots, slot)
}

// IsCrafted reports whether slot receives crafted output
func (r *Resolution) IsCrafted(slot SlotID) bool {
	return containsSlot(r.CraftedOutputSlots, slot)
}

// IsConflicting reports whether slot lost its output key to another production rule
func (r *Resolution) IsConflicting(slot SlotID) bool {
	return containsSlot(r.ConflictingSlots, slot)
}

func containsSlot(slots []SlotID, slot SlotID) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

func sortedSlots(set map[SlotID]bool) []SlotID {
	slots := make([]SlotID, 0, len(set))
	for slot := range set {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}
