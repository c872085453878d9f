package helpers

import (
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
	"github.com/andrescamacho/craftchain-go/internal/domain/catalog"
	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
)

// TwoStepDocument pins R1 (2 A + 1 B -> 3 C) and R2 (1 C -> 1 D) and requests 7 D
func TwoStepDocument(name string) bookmark.Document {
	return bookmark.Document{
		Name: name,
		Entries: []crafting.PinnedEntry{
			{Slot: 0, Stack: crafting.Stack{Item: "A", Size: 2}, Meta: crafting.EntryMeta{Ingredient: true, RecipeID: "R1", Factor: 2}},
			{Slot: 1, Stack: crafting.Stack{Item: "B", Size: 1}, Meta: crafting.EntryMeta{Ingredient: true, RecipeID: "R1", Factor: 1}},
			{Slot: 2, Stack: crafting.Stack{Item: "C", Size: 3}, Meta: crafting.EntryMeta{RecipeID: "R1", Factor: 3}},
			{Slot: 3, Stack: crafting.Stack{Item: "C", Size: 1}, Meta: crafting.EntryMeta{Ingredient: true, RecipeID: "R2", Factor: 1}},
			{Slot: 4, Stack: crafting.Stack{Item: "D", Size: 1}, Meta: crafting.EntryMeta{RecipeID: "R2", Factor: 1, RequestedAmount: 7}},
		},
	}
}

// WaterDocument pumps water cells from sand and brews potions from water bottles
func WaterDocument(name string, potions int) bookmark.Document {
	return bookmark.Document{
		Name: name,
		Items: []catalog.ItemDefinition{
			{Item: "water_cell", Fluid: "water", Amount: 1000, Empty: "cell"},
			{Item: "water_bottle", Fluid: "water", Amount: 250, Empty: "glass_bottle"},
		},
		Recipes: []crafting.Recipe{
			{
				ID:          "pump",
				Ingredients: [][]crafting.Stack{{{Item: "sand", Size: 1}}},
				Results:     []crafting.Stack{{Item: "water_cell", Size: 1}},
			},
			{
				ID:          "brew",
				Ingredients: [][]crafting.Stack{{{Item: "water_bottle", Size: 1}}},
				Results:     []crafting.Stack{{Item: "potion", Size: 1}},
			},
		},
		Entries: []crafting.PinnedEntry{
			{Slot: 0, Stack: crafting.Stack{Item: "sand", Size: 1}, Meta: crafting.EntryMeta{Ingredient: true, RecipeID: "pump"}},
			{Slot: 1, Stack: crafting.Stack{Item: "water_cell", Size: 1}, Meta: crafting.EntryMeta{RecipeID: "pump"}},
			{Slot: 2, Stack: crafting.Stack{Item: "water_bottle", Size: 1}, Meta: crafting.EntryMeta{Ingredient: true, RecipeID: "brew"}},
			{Slot: 3, Stack: crafting.Stack{Item: "potion", Size: 1}, Meta: crafting.EntryMeta{RecipeID: "brew", RequestedAmount: potions}},
		},
	}
}
