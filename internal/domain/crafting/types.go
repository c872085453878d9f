package crafting

import "fmt"

// ResourceKey is the stable identity of a resource variant, independent of quantity.
// It is the sole index of the resolution graph.
type ResourceKey string

// SlotID identifies the position of a pinned entry in the bookmark grid
type SlotID int

// RecipeID groups pinned entries that belong to the same production rule.
// The zero value means the entry is not part of any recipe group.
type RecipeID string

// Stack is a resource instance carrying a quantity
type Stack struct {
	Item   string `json:"item" yaml:"item"`
	Damage int    `json:"damage,omitempty" yaml:"damage,omitempty"`
	Tag    string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Size   int    `json:"size" yaml:"size"`
}

// String provides human-readable representation
func (s Stack) String() string {
	if s.Tag != "" {
		return fmt.Sprintf("%dx %s:%d#%s", s.Size, s.Item, s.Damage, s.Tag)
	}
	return fmt.Sprintf("%dx %s:%d", s.Size, s.Item, s.Damage)
}

// EntryMeta carries the user-pinned metadata of a bookmark entry
type EntryMeta struct {
	// RequestedAmount is the signed net demand: positive asks for output,
	// negative pre-banks a standing remainder.
	RequestedAmount int `json:"requested_amount,omitempty" yaml:"requested,omitempty"`

	// Ingredient marks the entry as a recipe input within its group
	Ingredient bool `json:"ingredient,omitempty" yaml:"ingredient,omitempty"`

	// RecipeID groups the entry with its sibling inputs and outputs
	RecipeID RecipeID `json:"recipe_id,omitempty" yaml:"recipe,omitempty"`

	// Factor is the per-craft quantity used when a recipe has to be synthesized
	// from bare pinned items
	Factor int `json:"factor,omitempty" yaml:"factor,omitempty"`
}

// PinnedEntry is one user-pinned occurrence of a resource
type PinnedEntry struct {
	Slot  SlotID    `json:"slot" yaml:"slot"`
	Stack Stack     `json:"stack" yaml:"stack"`
	Meta  EntryMeta `json:"meta" yaml:"meta"`
}

// Recipe is a resolved production rule.
// Each ingredient slot lists candidate substitutes; any one of them satisfies the slot.
type Recipe struct {
	ID          RecipeID  `json:"id" yaml:"id"`
	Ingredients [][]Stack `json:"ingredients" yaml:"ingredients"`
	Results     []Stack   `json:"results" yaml:"results"`
}

// synthesizeRecipe builds a recipe from bare pinned items when no descriptor backs the group.
// Every pinned input becomes its own ingredient slot.
func synthesizeRecipe(id RecipeID, inputs, outputs []PinnedEntry) Recipe {
	recipe := Recipe{
		ID:          id,
		Ingredients: make([][]Stack, 0, len(inputs)),
		Results:     make([]Stack, 0, len(outputs)),
	}

	for _, input := range inputs {
		stack := input.Stack
		stack.Size = synthesizedQuantity(input)
		recipe.Ingredients = append(recipe.Ingredients, []Stack{stack})
	}

	for _, output := range outputs {
		stack := output.Stack
		stack.Size = synthesizedQuantity(output)
		recipe.Results = append(recipe.Results, stack)
	}

	return recipe
}

func synthesizedQuantity(entry PinnedEntry) int {
	if entry.Meta.Factor > 0 {
		return entry.Meta.Factor
	}
	return 1
}
