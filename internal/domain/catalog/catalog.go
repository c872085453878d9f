package catalog

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
)

// BulkPrefix marks display items that stand for a bulk substance
const BulkPrefix = "fluid:"

// ItemDefinition describes how an item relates to a bulk substance.
// Items without a Fluid are plain discrete items and need no definition.
type ItemDefinition struct {
	Item   string `json:"item" yaml:"item"`
	Fluid  string `json:"fluid,omitempty" yaml:"fluid,omitempty"`
	Amount int    `json:"amount,omitempty" yaml:"amount,omitempty"`
	Empty  string `json:"empty,omitempty" yaml:"empty,omitempty"`
}

// Catalog is the item model, conversion catalog and recipe source of one bookmark group
type Catalog struct {
	items   map[string]ItemDefinition
	recipes map[crafting.RecipeID]crafting.Recipe
}

var (
	_ crafting.ItemModel         = (*Catalog)(nil)
	_ crafting.ConversionCatalog = (*Catalog)(nil)
	_ crafting.RecipeSource      = (*Catalog)(nil)
)

// NewCatalog validates the definitions and recipes and indexes them
func NewCatalog(items []ItemDefinition, recipes []crafting.Recipe) (*Catalog, error) {
	c := &Catalog{
		items:   make(map[string]ItemDefinition, len(items)),
		recipes: make(map[crafting.RecipeID]crafting.Recipe, len(recipes)),
	}

	for _, item := range items {
		if _, exists := c.items[item.Item]; exists {
			return nil, &ErrDuplicateItem{Item: item.Item}
		}
		if item.Fluid != "" && item.Amount <= 0 {
			return nil, &ErrMissingAmount{Item: item.Item, Fluid: item.Fluid}
		}
		c.items[item.Item] = item
	}

	for _, recipe := range recipes {
		if err := validateRecipe(recipe); err != nil {
			return nil, err
		}
		if _, exists := c.recipes[recipe.ID]; exists {
			return nil, &ErrDuplicateRecipe{RecipeID: string(recipe.ID)}
		}
		c.recipes[recipe.ID] = recipe
	}

	return c, nil
}

func validateRecipe(recipe crafting.Recipe) error {
	if len(recipe.Results) == 0 {
		return &ErrEmptyRecipe{RecipeID: string(recipe.ID)}
	}
	for _, result := range recipe.Results {
		if result.Size <= 0 {
			return &ErrInvalidResult{RecipeID: string(recipe.ID), Item: result.Item, Size: result.Size}
		}
	}
	for i, slot := range recipe.Ingredients {
		for _, candidate := range slot {
			if candidate.Size <= 0 {
				return &ErrInvalidIngredient{RecipeID: string(recipe.ID), Slot: i, Item: candidate.Item, Size: candidate.Size}
			}
		}
	}
	return nil
}

// Key identifies a stack by item, damage and tag
func (c *Catalog) Key(stack crafting.Stack) crafting.ResourceKey {
	key := fmt.Sprintf("%s:%d", stack.Item, stack.Damage)
	if stack.Tag != "" {
		key += "#" + stack.Tag
	}
	return crafting.ResourceKey(key)
}

// WithSize returns a copy of the stack with the given size
func (c *Catalog) WithSize(stack crafting.Stack, size int) crafting.Stack {
	stack.Size = size
	return stack
}

// Substance returns the fluid carried by the stack
func (c *Catalog) Substance(stack crafting.Stack) (string, bool) {
	if strings.HasPrefix(stack.Item, BulkPrefix) {
		return strings.TrimPrefix(stack.Item, BulkPrefix), true
	}
	item, ok := c.items[stack.Item]
	if !ok || item.Fluid == "" {
		return "", false
	}
	return item.Fluid, true
}

// UnitsPerItem returns the bulk units one item stands for, 1 for bulk display items
func (c *Catalog) UnitsPerItem(stack crafting.Stack) int {
	if item, ok := c.items[stack.Item]; ok && item.Amount > 0 {
		return item.Amount
	}
	return 1
}

// EmptyContainer returns the item left once the stack is drained
func (c *Catalog) EmptyContainer(stack crafting.Stack) (crafting.Stack, bool) {
	item, ok := c.items[stack.Item]
	if !ok || item.Empty == "" {
		return crafting.Stack{}, false
	}
	return crafting.Stack{Item: item.Empty, Size: 1}, true
}

// BulkStack returns the display stack of a substance
func (c *Catalog) BulkStack(substance string) crafting.Stack {
	return crafting.Stack{Item: BulkPrefix + substance, Size: 1}
}

// RecipeFor returns the recipe the entry is grouped under
func (c *Catalog) RecipeFor(entry crafting.PinnedEntry) (*crafting.Recipe, bool) {
	if entry.Meta.RecipeID == "" {
		return nil, false
	}
	recipe, ok := c.recipes[entry.Meta.RecipeID]
	if !ok {
		return nil, false
	}
	return &recipe, true
}

// Items returns the number of item definitions
func (c *Catalog) Items() int {
	return len(c.items)
}

// Recipes returns the number of recipes
func (c *Catalog) Recipes() int {
	return len(c.recipes)
}
