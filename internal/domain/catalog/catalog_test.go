package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftchain-go/internal/domain/catalog"
	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
)

func waterItems() []catalog.ItemDefinition {
	return []catalog.ItemDefinition{
		{Item: "water_cell", Fluid: "water", Amount: 1000, Empty: "cell"},
		{Item: "water_bottle", Fluid: "water", Amount: 250, Empty: "glass_bottle"},
	}
}

func TestCatalog_KeyIncludesDamageAndTag(t *testing.T) {
	c, err := catalog.NewCatalog(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, crafting.ResourceKey("plank:0"), c.Key(crafting.Stack{Item: "plank", Size: 4}))
	assert.Equal(t, crafting.ResourceKey("plank:2"), c.Key(crafting.Stack{Item: "plank", Damage: 2}))
	assert.Equal(t, crafting.ResourceKey("tool:0#sharp"), c.Key(crafting.Stack{Item: "tool", Tag: "sharp"}))
	assert.Equal(t, 9, c.WithSize(crafting.Stack{Item: "plank", Size: 1}, 9).Size)
}

func TestCatalog_Conversions(t *testing.T) {
	// Arrange
	c, err := catalog.NewCatalog(waterItems(), nil)
	require.NoError(t, err)

	// Act
	substance, ok := c.Substance(crafting.Stack{Item: "water_bottle"})

	// Assert
	require.True(t, ok)
	assert.Equal(t, "water", substance)
	assert.Equal(t, 250, c.UnitsPerItem(crafting.Stack{Item: "water_bottle"}))
	assert.Equal(t, 1, c.UnitsPerItem(crafting.Stack{Item: "fluid:water"}))

	bulk, ok := c.Substance(c.BulkStack("lava"))
	require.True(t, ok)
	assert.Equal(t, "lava", bulk)

	empty, ok := c.EmptyContainer(crafting.Stack{Item: "water_cell"})
	require.True(t, ok)
	assert.Equal(t, "cell", empty.Item)

	_, ok = c.Substance(crafting.Stack{Item: "plank"})
	assert.False(t, ok)
	_, ok = c.EmptyContainer(crafting.Stack{Item: "plank"})
	assert.False(t, ok)
}

func TestCatalog_RecipeFor(t *testing.T) {
	// Arrange
	recipe := crafting.Recipe{
		ID:          "planks",
		Ingredients: [][]crafting.Stack{{{Item: "log", Size: 1}}},
		Results:     []crafting.Stack{{Item: "plank", Size: 4}},
	}
	c, err := catalog.NewCatalog(nil, []crafting.Recipe{recipe})
	require.NoError(t, err)

	// Act
	found, ok := c.RecipeFor(crafting.PinnedEntry{Meta: crafting.EntryMeta{RecipeID: "planks"}})

	// Assert
	require.True(t, ok)
	assert.Equal(t, recipe, *found)

	_, ok = c.RecipeFor(crafting.PinnedEntry{})
	assert.False(t, ok)
}

func TestCatalog_Validation(t *testing.T) {
	tests := []struct {
		name    string
		items   []catalog.ItemDefinition
		recipes []crafting.Recipe
		wantErr string
	}{
		{
			name:    "container without amount",
			items:   []catalog.ItemDefinition{{Item: "water_cell", Fluid: "water"}},
			wantErr: "container water_cell carries water but has no amount",
		},
		{
			name:    "duplicate item",
			items:   []catalog.ItemDefinition{{Item: "a"}, {Item: "a"}},
			wantErr: "duplicate item definition: a",
		},
		{
			name: "duplicate recipe",
			recipes: []crafting.Recipe{
				{ID: "r", Results: []crafting.Stack{{Item: "a", Size: 1}}},
				{ID: "r", Results: []crafting.Stack{{Item: "b", Size: 1}}},
			},
			wantErr: "duplicate recipe id: r",
		},
		{
			name:    "non-positive result",
			recipes: []crafting.Recipe{{ID: "r", Results: []crafting.Stack{{Item: "a", Size: 0}}}},
			wantErr: "recipe r: result a has non-positive size 0",
		},
		{
			name: "non-positive ingredient",
			recipes: []crafting.Recipe{{
				ID:          "r",
				Ingredients: [][]crafting.Stack{{{Item: "log", Size: 1}}, {{Item: "stick", Size: 2}, {Item: "bone", Size: -1}}},
				Results:     []crafting.Stack{{Item: "a", Size: 1}},
			}},
			wantErr: "recipe r: ingredient bone in slot 1 has non-positive size -1",
		},
		{
			name:    "no results",
			recipes: []crafting.Recipe{{ID: "r"}},
			wantErr: "recipe r has no results",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.NewCatalog(tt.items, tt.recipes)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestCatalog_SizeErrorsNameTheirSide(t *testing.T) {
	badResult := []crafting.Recipe{{ID: "r", Results: []crafting.Stack{{Item: "a", Size: 0}}}}
	badIngredient := []crafting.Recipe{{
		ID:          "r",
		Ingredients: [][]crafting.Stack{{{Item: "log", Size: 0}}},
		Results:     []crafting.Stack{{Item: "a", Size: 1}},
	}}

	_, resultErr := catalog.NewCatalog(nil, badResult)
	_, ingredientErr := catalog.NewCatalog(nil, badIngredient)

	var result *catalog.ErrInvalidResult
	var ingredient *catalog.ErrInvalidIngredient
	assert.ErrorAs(t, resultErr, &result)
	assert.False(t, errors.As(resultErr, &ingredient))
	require.ErrorAs(t, ingredientErr, &ingredient)
	assert.Equal(t, 0, ingredient.Slot)
	assert.Equal(t, "log", ingredient.Item)
	assert.False(t, errors.As(ingredientErr, &result))
}

func TestCatalog_DrivesConversionChain(t *testing.T) {
	// Arrange
	c, err := catalog.NewCatalog(waterItems(), nil)
	require.NoError(t, err)
	chain := crafting.NewChain(c, c, c)
	entries := []crafting.PinnedEntry{
		{Slot: 0, Stack: crafting.Stack{Item: "sand", Size: 1}, Meta: crafting.EntryMeta{Ingredient: true, RecipeID: "pump"}},
		{Slot: 1, Stack: crafting.Stack{Item: "water_cell", Size: 1}, Meta: crafting.EntryMeta{RecipeID: "pump"}},
		{Slot: 2, Stack: crafting.Stack{Item: "water_bottle", Size: 1}, Meta: crafting.EntryMeta{Ingredient: true, RecipeID: "brew"}},
		{Slot: 3, Stack: crafting.Stack{Item: "potion", Size: 1}, Meta: crafting.EntryMeta{RecipeID: "brew", RequestedAmount: 5}},
	}

	// Act
	res := chain.Refresh(entries, false)

	// Assert
	pump, ok := res.Step("pump")
	require.True(t, ok)
	assert.Equal(t, 2, pump.Crafts)
	assert.Contains(t, res.RemainingStacks, crafting.Stack{Item: "fluid:water", Size: 750})
	assert.Contains(t, res.InputStacks, crafting.Stack{Item: "glass_bottle", Size: 5})
}
