package crafting

// ItemModel is the identity and quantity model of the surrounding item system
type ItemModel interface {
	// Key returns the stable identity of a stack, ignoring its size
	Key(stack Stack) ResourceKey

	// WithSize returns a copy of the stack carrying the given quantity
	WithSize(stack Stack, size int) Stack
}

// ConversionCatalog answers which representations of a substance convert into each other
type ConversionCatalog interface {
	// Substance returns the substance carried by a stack, if it is bulk-representable
	Substance(stack Stack) (string, bool)

	// UnitsPerItem returns the bulk units one item of the stack stands for
	UnitsPerItem(stack Stack) int

	// EmptyContainer returns the container left behind once the stack is drained
	EmptyContainer(stack Stack) (Stack, bool)

	// BulkStack returns the display stack used to report bulk leftovers of a substance
	BulkStack(substance string) Stack
}

// RecipeSource looks up the production rule behind a pinned entry
type RecipeSource interface {
	RecipeFor(entry PinnedEntry) (*Recipe, bool)
}
