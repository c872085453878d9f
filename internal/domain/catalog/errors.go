package catalog

import "fmt"

// Domain errors for catalog construction

// ErrDuplicateRecipe indicates two recipes share the same id
type ErrDuplicateRecipe struct {
	RecipeID string
}

func (e *ErrDuplicateRecipe) Error() string {
	return fmt.Sprintf("duplicate recipe id: %s", e.RecipeID)
}

// ErrInvalidResult indicates a recipe result with a non-positive size
type ErrInvalidResult struct {
	RecipeID string
	Item     string
	Size     int
}

func (e *ErrInvalidResult) Error() string {
	return fmt.Sprintf("recipe %s: result %s has non-positive size %d", e.RecipeID, e.Item, e.Size)
}

// ErrInvalidIngredient indicates an ingredient candidate with a non-positive size
type ErrInvalidIngredient struct {
	RecipeID string
	Slot     int
	Item     string
	Size     int
}

func (e *ErrInvalidIngredient) Error() string {
	return fmt.Sprintf("recipe %s: ingredient %s in slot %d has non-positive size %d", e.RecipeID, e.Item, e.Slot, e.Size)
}

// ErrEmptyRecipe indicates a recipe without results
type ErrEmptyRecipe struct {
	RecipeID string
}

func (e *ErrEmptyRecipe) Error() string {
	return fmt.Sprintf("recipe %s has no results", e.RecipeID)
}

// ErrMissingAmount indicates a fluid container definition without a bulk amount
type ErrMissingAmount struct {
	Item  string
	Fluid string
}

func (e *ErrMissingAmount) Error() string {
	return fmt.Sprintf("container %s carries %s but has no amount", e.Item, e.Fluid)
}

// ErrDuplicateItem indicates an item defined twice
type ErrDuplicateItem struct {
	Item string
}

func (e *ErrDuplicateItem) Error() string {
	return fmt.Sprintf("duplicate item definition: %s", e.Item)
}
