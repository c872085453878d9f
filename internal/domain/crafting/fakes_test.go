package crafting

// fakeModel keys stacks by item name and tag
type fakeModel struct{}

func (fakeModel) Key(stack Stack) ResourceKey {
	if stack.Tag != "" {
		return ResourceKey(stack.Item + "#" + stack.Tag)
	}
	return ResourceKey(stack.Item)
}

func (fakeModel) WithSize(stack Stack, size int) Stack {
	stack.Size = size
	return stack
}

type fakeContainer struct {
	substance string
	units     int
	empty     string
}

// fakeConversions knows a fixed set of fluid containers
type fakeConversions struct {
	containers map[string]fakeContainer
}

func newFakeConversions() *fakeConversions {
	return &fakeConversions{
		containers: map[string]fakeContainer{
			"cell_water":     {substance: "water", units: 1000, empty: "cell"},
			"bottle_water":   {substance: "water", units: 250, empty: "glass_bottle"},
			"canister_water": {substance: "water", units: 100, empty: "canister"},
			"fluid:water":    {substance: "water", units: 1},
		},
	}
}

func (f *fakeConversions) Substance(stack Stack) (string, bool) {
	container, ok := f.containers[stack.Item]
	if !ok {
		return "", false
	}
	return container.substance, true
}

func (f *fakeConversions) UnitsPerItem(stack Stack) int {
	if container, ok := f.containers[stack.Item]; ok {
		return container.units
	}
	return 1
}

func (f *fakeConversions) EmptyContainer(stack Stack) (Stack, bool) {
	container, ok := f.containers[stack.Item]
	if !ok || container.empty == "" {
		return Stack{}, false
	}
	return Stack{Item: container.empty, Size: 1}, true
}

func (f *fakeConversions) BulkStack(substance string) Stack {
	return Stack{Item: "fluid:" + substance, Size: 1}
}

// fakeRecipes serves recipes keyed by recipe id
type fakeRecipes map[RecipeID]Recipe

func (f fakeRecipes) RecipeFor(entry PinnedEntry) (*Recipe, bool) {
	recipe, ok := f[entry.Meta.RecipeID]
	if !ok {
		return nil, false
	}
	return &recipe, true
}

func pinIn(slot SlotID, item string, factor int, recipe RecipeID) PinnedEntry {
	return PinnedEntry{
		Slot:  slot,
		Stack: Stack{Item: item, Size: factor},
		Meta:  EntryMeta{Ingredient: true, RecipeID: recipe, Factor: factor},
	}
}

func pinOut(slot SlotID, item string, factor int, recipe RecipeID, requested int) PinnedEntry {
	return PinnedEntry{
		Slot:  slot,
		Stack: Stack{Item: item, Size: factor},
		Meta:  EntryMeta{RecipeID: recipe, Factor: factor, RequestedAmount: requested},
	}
}

func pinItem(slot SlotID, item string, requested int) PinnedEntry {
	return PinnedEntry{
		Slot:  slot,
		Stack: Stack{Item: item, Size: 1},
		Meta:  EntryMeta{RequestedAmount: requested},
	}
}

func stackOf(item string, size int) Stack {
	return Stack{Item: item, Size: size}
}

// sizeOf returns the size of the stack of item, 0 when absent
func sizeOf(stacks []Stack, item string) int {
	for _, stack := range stacks {
		if stack.Item == item {
			return stack.Size
		}
	}
	return 0
}
