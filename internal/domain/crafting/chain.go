package crafting

// Chain turns a flat list of pinned entries into a resolution.
// It holds only the collaborators; every Refresh builds and drops its own graph.
type Chain struct {
	model       ItemModel
	conversions ConversionCatalog
	recipes     RecipeSource
}

// NewChain creates a chain over the given collaborators.
// conversions and recipes may be nil when the host has neither.
func NewChain(model ItemModel, conversions ConversionCatalog, recipes RecipeSource) *Chain {
	return &Chain{
		model:       model,
		conversions: conversions,
		recipes:     recipes,
	}
}

// recipeGroup is the set of pinned entries sharing a recipe id
type recipeGroup struct {
	id      RecipeID
	entries []PinnedEntry
	inputs  []PinnedEntry
	outputs []PinnedEntry
}

// Refresh resolves the pinned entries. With skipCalculation the demand walk is
// skipped and only pinned state is reported.
func (c *Chain) Refresh(entries []PinnedEntry, skipCalculation bool) *Resolution {
	graph := c.Build(entries)
	graph.Preprocess()
	if !skipCalculation {
		graph.Run()
	}
	return graph.Postprocess()
}

// Build groups the entries and registers production and resource nodes
func (c *Chain) Build(entries []PinnedEntry) *Graph {
	graph := NewGraph(c.model, c.conversions)

	groups, standalone := groupEntries(entries)
	degenerate := make([]PinnedEntry, 0)

	for _, group := range groups {
		if len(group.outputs) == 0 {
			continue
		}
		if len(group.inputs) == 0 {
			degenerate = append(degenerate, group.outputs...)
			continue
		}
		graph.AddProduction(c.recipeFor(group), group.inputs, group.outputs)
	}

	for _, entry := range standalone {
		graph.AddResource(entry)
	}
	for _, entry := range degenerate {
		graph.AddResource(entry)
	}

	return graph
}

func (c *Chain) recipeFor(group *recipeGroup) Recipe {
	if c.recipes != nil {
		for _, entry := range group.entries {
			if recipe, ok := c.recipes.RecipeFor(entry); ok && recipe != nil {
				resolved := *recipe
				resolved.ID = group.id
				return resolved
			}
		}
	}
	return synthesizeRecipe(group.id, group.inputs, group.outputs)
}

// groupEntries splits entries into recipe groups in first-appearance order and
// the entries that belong to no recipe
func groupEntries(entries []PinnedEntry) ([]*recipeGroup, []PinnedEntry) {
	groups := make([]*recipeGroup, 0)
	index := make(map[RecipeID]*recipeGroup)
	standalone := make([]PinnedEntry, 0)

	for _, entry := range entries {
		id := entry.Meta.RecipeID
		if id == "" {
			standalone = append(standalone, entry)
			continue
		}

		group, ok := index[id]
		if !ok {
			group = &recipeGroup{id: id}
			index[id] = group
			groups = append(groups, group)
		}

		group.entries = append(group.entries, entry)
		if entry.Meta.Ingredient {
			group.inputs = append(group.inputs, entry)
		} else {
			group.outputs = append(group.outputs, entry)
		}
	}

	return groups, standalone
}
