package crafting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoStepChainEntries() []PinnedEntry {
	return []PinnedEntry{
		pinIn(0, "A", 2, "R1"),
		pinIn(1, "B", 1, "R1"),
		pinOut(2, "C", 3, "R1", 0),
		pinIn(3, "C", 1, "R2"),
		pinOut(4, "D", 1, "R2", 7),
	}
}

func TestChain_TwoStepChain(t *testing.T) {
	// Arrange
	chain := NewChain(fakeModel{}, nil, nil)

	// Act
	res := chain.Refresh(twoStepChainEntries(), false)

	// Assert
	r2, ok := res.Step("R2")
	require.True(t, ok)
	assert.Equal(t, 7, r2.Crafts)

	r1, ok := res.Step("R1")
	require.True(t, ok)
	assert.Equal(t, 3, r1.Crafts)
	assert.Equal(t, []Stack{stackOf("A", 6), stackOf("B", 3)}, r1.ChainInputs)
	assert.Equal(t, []Stack{stackOf("C", 2)}, r1.Remainders)

	assert.Equal(t, stackOf("A", 6), res.CalculatedItems[0])
	assert.Equal(t, stackOf("B", 3), res.CalculatedItems[1])
	assert.Equal(t, stackOf("C", 9), res.CalculatedItems[2])
	assert.Equal(t, stackOf("C", 7), res.CalculatedItems[3])
	assert.Equal(t, stackOf("D", 7), res.CalculatedItems[4])

	assert.Equal(t, 3, res.CraftCounts[2])
	assert.Equal(t, 7, res.CraftCounts[4])
	assert.Equal(t, 2, res.CalculatedRemainders[2])

	assert.Equal(t, []SlotID{0, 1}, res.InputSlots)
	assert.Equal(t, []SlotID{2, 4}, res.CraftedOutputSlots)
	assert.Empty(t, res.ConflictingSlots)

	assert.Equal(t, []Stack{stackOf("A", 6), stackOf("B", 3)}, res.InputStacks)
	assert.Equal(t, []Stack{stackOf("D", 7)}, res.OutputStacks)
	assert.Equal(t, []Stack{stackOf("C", 2)}, res.RemainingStacks)
	assert.Equal(t, 10, res.TotalCrafts())
}

func TestChain_RemainderConservation(t *testing.T) {
	// Arrange
	chain := NewChain(fakeModel{}, nil, nil)

	// Act
	res := chain.Refresh(twoStepChainEntries(), false)

	// Assert
	produced := res.CalculatedItems[2].Size
	consumed := res.CalculatedItems[3].Size
	require.Len(t, res.RemainingStacks, 1)
	assert.Equal(t, produced-consumed, res.RemainingStacks[0].Size)
}

func TestChain_IdempotentRefresh(t *testing.T) {
	// Arrange
	entries := twoStepChainEntries()

	// Act
	first := NewChain(fakeModel{}, nil, nil).Refresh(entries, false)
	second := NewChain(fakeModel{}, nil, nil).Refresh(entries, false)

	// Assert
	assert.Equal(t, first, second)
}

func TestChain_RefreshReusesNoStateBetweenCalls(t *testing.T) {
	// Arrange
	chain := NewChain(fakeModel{}, nil, nil)
	entries := twoStepChainEntries()

	// Act
	first := chain.Refresh(entries, false)
	second := chain.Refresh(entries, false)

	// Assert
	assert.Equal(t, first, second)
}

func TestChain_ConflictingOutputs(t *testing.T) {
	// Arrange
	chain := NewChain(fakeModel{}, nil, nil)
	entries := []PinnedEntry{
		pinIn(0, "Y", 1, "R1"),
		pinOut(1, "X", 1, "R1", 2),
		pinIn(2, "Z", 1, "R2"),
		pinOut(3, "X", 1, "R2", 0),
	}

	// Act
	res := chain.Refresh(entries, false)

	// Assert
	assert.Equal(t, []SlotID{3}, res.ConflictingSlots)
	assert.True(t, res.IsConflicting(3))
	assert.False(t, res.IsConflicting(1))

	require.Contains(t, res.CalculatedItems, SlotID(1))
	require.Contains(t, res.CalculatedItems, SlotID(3))
	assert.Equal(t, 2, res.CalculatedItems[1].Size)
	assert.Equal(t, 0, res.CalculatedItems[3].Size)

	step, ok := res.Step("R1")
	require.True(t, ok)
	assert.Equal(t, 2, step.Crafts)
	_, ok = res.Step("R2")
	assert.False(t, ok)
}

func TestChain_NegativeRequestBanksRemainder(t *testing.T) {
	// Arrange
	chain := NewChain(fakeModel{}, nil, nil)
	entries := []PinnedEntry{pinItem(0, "W", -5)}

	// Act
	graph := chain.Build(entries)
	graph.Preprocess()
	graph.Run()

	// Assert
	node, ok := graph.NodeFor("W")
	require.True(t, ok)
	resource, ok := node.(*ResourceNode)
	require.True(t, ok)
	assert.Equal(t, 5, resource.Remainder("W"))
	assert.Equal(t, 0, resource.Owed())

	res := graph.Postprocess()
	assert.Equal(t, []Stack{stackOf("W", 5)}, res.RemainingStacks)
	assert.Equal(t, 5, res.CalculatedRemainders[0])
	assert.Empty(t, res.InputSlots)
	assert.Empty(t, res.InputStacks)
}

func TestChain_SelfReferentialRecipeUsesOnlyItsOwnRemainder(t *testing.T) {
	// Arrange
	chain := NewChain(fakeModel{}, nil, nil)
	entries := []PinnedEntry{
		pinIn(0, "X", 1, "R"),
		pinOut(1, "X", 2, "R", 4),
	}

	// Act
	res := chain.Refresh(entries, false)

	// Assert
	step, ok := res.Step("R")
	require.True(t, ok)
	assert.Equal(t, 2, step.Crafts)
	assert.Empty(t, step.ChainInputs)
	assert.Empty(t, res.InputStacks)
	assert.Equal(t, []Stack{stackOf("X", 2)}, res.OutputStacks)
}

func TestChain_MutualCycleTerminates(t *testing.T) {
	// Arrange
	chain := NewChain(fakeModel{}, nil, nil)
	entries := []PinnedEntry{
		pinIn(0, "Y", 1, "R1"),
		pinOut(1, "X", 1, "R1", 3),
		pinIn(2, "X", 1, "R2"),
		pinOut(3, "Y", 1, "R2", 0),
	}

	// Act
	res := chain.Refresh(entries, false)

	// Assert
	r1, ok := res.Step("R1")
	require.True(t, ok)
	assert.Equal(t, 3, r1.Crafts)

	r2, ok := res.Step("R2")
	require.True(t, ok)
	assert.Equal(t, 3, r2.Crafts)

	assert.Empty(t, res.InputStacks)
}

func TestChain_ConversionRoundTrip(t *testing.T) {
	// Arrange
	chain := NewChain(fakeModel{}, newFakeConversions(), nil)
	entries := []PinnedEntry{
		pinIn(0, "sand", 1, "R1"),
		pinOut(1, "cell_water", 1, "R1", 0),
		pinIn(2, "bottle_water", 1, "R2"),
		pinOut(3, "potion", 1, "R2", 5),
	}

	// Act
	graph := chain.Build(entries)
	graph.Preprocess()
	graph.Run()
	res := graph.Postprocess()

	// Assert
	node, ok := graph.NodeFor("bottle_water")
	require.True(t, ok)
	conversion, ok := node.(*ConversionNode)
	require.True(t, ok)
	assert.Equal(t, "water", conversion.Substance())
	assert.Equal(t, ResourceKey("cell_water"), conversion.InputKey())
	assert.Equal(t, 750, conversion.FluidRemainder())
	assert.Equal(t, map[ResourceKey]int{"fluid:water": 750}, conversion.Remainders())

	r1, ok := res.Step("R1")
	require.True(t, ok)
	assert.Equal(t, 2, r1.Crafts)

	r2, ok := res.Step("R2")
	require.True(t, ok)
	assert.Equal(t, 5, r2.Crafts)

	assert.Equal(t, []Stack{stackOf("glass_bottle", 5), stackOf("sand", 2)}, res.InputStacks)
	assert.Equal(t, []Stack{stackOf("potion", 5)}, res.OutputStacks)
	assert.Equal(t, []Stack{stackOf("cell", 2), stackOf("fluid:water", 750)}, res.RemainingStacks)
	assert.Equal(t, stackOf("bottle_water", 5), res.CalculatedItems[2])
}

func TestChain_ConversionReusesBankedBulk(t *testing.T) {
	// Arrange
	chain := NewChain(fakeModel{}, newFakeConversions(), nil)
	entries := []PinnedEntry{
		pinIn(0, "sand", 1, "R1"),
		pinOut(1, "cell_water", 1, "R1", 0),
		pinIn(2, "bottle_water", 1, "R2"),
		pinOut(3, "potion", 1, "R2", 5),
		pinIn(4, "bottle_water", 1, "R3"),
		pinOut(5, "tea", 1, "R3", 3),
	}

	// Act
	res := chain.Refresh(entries, false)

	// Assert
	r1, ok := res.Step("R1")
	require.True(t, ok)
	assert.Equal(t, 2, r1.Crafts, "tea bottles are filled from the bulk left by the potion bottles")
	assert.NotContains(t, res.RemainingStacks, stackOf("fluid:water", 750))
	assert.Contains(t, res.InputStacks, stackOf("glass_bottle", 8))
}

func TestChain_ProducedRepresentationServedFromBankedBulk(t *testing.T) {
	// Arrange
	chain := NewChain(fakeModel{}, newFakeConversions(), nil)
	entries := []PinnedEntry{
		pinIn(0, "sand", 1, "R1"),
		pinOut(1, "cell_water", 1, "R1", 0),
		pinIn(2, "bottle_water", 1, "R2"),
		pinOut(3, "potion", 1, "R2", 5),
		pinIn(4, "clay", 1, "R4"),
		pinOut(5, "canister_water", 1, "R4", 10),
	}

	// Act
	graph := chain.Build(entries)
	graph.Preprocess()
	graph.Run()
	res := graph.Postprocess()

	// Assert
	node, ok := graph.NodeFor("bottle_water")
	require.True(t, ok)
	conversion, ok := node.(*ConversionNode)
	require.True(t, ok)
	assert.Equal(t, 50, conversion.FluidRemainder(), "750 banked units fill 7 canisters")

	r1, ok := res.Step("R1")
	require.True(t, ok)
	assert.Equal(t, 2, r1.Crafts)

	r4, ok := res.Step("R4")
	require.True(t, ok)
	assert.Equal(t, 3, r4.Crafts, "only the canisters the bulk could not fill are crafted")

	assert.Equal(t, []Stack{stackOf("canister", 7), stackOf("clay", 3), stackOf("glass_bottle", 5), stackOf("sand", 2)}, res.InputStacks)
	assert.Equal(t, []Stack{stackOf("canister_water", 10), stackOf("potion", 5)}, res.OutputStacks)
	assert.Equal(t, []Stack{stackOf("cell", 2), stackOf("fluid:water", 50)}, res.RemainingStacks)
	assert.Equal(t, 3, res.CalculatedItems[5].Size)
}

func TestChain_ConversionConservesWater(t *testing.T) {
	tests := []struct {
		name    string
		potions int
		cells   int
		bulk    int
	}{
		{"single bottle", 1, 1, 750},
		{"exact cell", 4, 1, 0},
		{"partial second cell", 5, 2, 750},
		{"two exact cells", 8, 2, 0},
		{"many bottles", 13, 4, 750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := NewChain(fakeModel{}, newFakeConversions(), nil)
			entries := []PinnedEntry{
				pinIn(0, "sand", 1, "R1"),
				pinOut(1, "cell_water", 1, "R1", 0),
				pinIn(2, "bottle_water", 1, "R2"),
				pinOut(3, "potion", 1, "R2", tt.potions),
			}

			res := chain.Refresh(entries, false)

			r1, ok := res.Step("R1")
			require.True(t, ok)
			assert.Equal(t, tt.cells, r1.Crafts)

			bulk := sizeOf(res.RemainingStacks, "fluid:water")
			assert.Equal(t, tt.bulk, bulk)
			assert.Equal(t, r1.Crafts*1000, tt.potions*250+bulk, "poured water equals bottled water plus bulk leftover")
			assert.Less(t, bulk, 1000)

			assert.Equal(t, r1.Crafts, sizeOf(res.RemainingStacks, "cell"), "every poured cell comes back empty")
			assert.Equal(t, tt.potions, sizeOf(res.InputStacks, "glass_bottle"), "every filled bottle needs an empty one")
		})
	}
}

func TestChain_SubstituteCandidateProducedElsewhere(t *testing.T) {
	// Arrange
	recipes := fakeRecipes{
		"R2": {
			Ingredients: [][]Stack{{stackOf("ingot_a", 2), stackOf("ingot_b", 2)}},
			Results:     []Stack{stackOf("gear", 1)},
		},
	}
	chain := NewChain(fakeModel{}, nil, recipes)
	entries := []PinnedEntry{
		pinIn(0, "ore", 1, "R1"),
		pinOut(1, "ingot_b", 1, "R1", 0),
		pinIn(2, "ingot_a", 2, "R2"),
		pinOut(3, "gear", 1, "R2", 3),
	}

	// Act
	res := chain.Refresh(entries, false)

	// Assert
	r1, ok := res.Step("R1")
	require.True(t, ok)
	assert.Equal(t, 6, r1.Crafts)
	assert.Equal(t, []Stack{stackOf("ore", 6)}, res.InputStacks)
	assert.Equal(t, stackOf("ingot_a", 6), res.CalculatedItems[2])
	assert.False(t, res.IsInput(2))
}

func TestChain_RecipeSourceYieldRoundsUp(t *testing.T) {
	// Arrange
	recipes := fakeRecipes{
		"R1": {
			Ingredients: [][]Stack{{stackOf("log", 1)}},
			Results:     []Stack{stackOf("plank", 4)},
		},
	}
	chain := NewChain(fakeModel{}, nil, recipes)
	entries := []PinnedEntry{
		pinIn(0, "log", 1, "R1"),
		pinOut(1, "plank", 1, "R1", 10),
	}

	// Act
	res := chain.Refresh(entries, false)

	// Assert
	step, ok := res.Step("R1")
	require.True(t, ok)
	assert.Equal(t, 3, step.Crafts)
	assert.Less(t, (step.Crafts-1)*4, 10)
	assert.LessOrEqual(t, 10, step.Crafts*4)
	assert.Equal(t, []Stack{stackOf("log", 3)}, res.InputStacks)
	assert.Equal(t, []Stack{stackOf("plank", 10)}, res.OutputStacks)
	assert.Equal(t, []Stack{stackOf("plank", 2)}, res.RemainingStacks)
}

func TestChain_CraftCountIsCeilingOfDemandOverYield(t *testing.T) {
	tests := []struct {
		requested int
		yield     int
		crafts    int
	}{
		{1, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{10, 4, 3},
		{7, 1, 7},
		{9, 3, 3},
		{100, 7, 15},
		{64, 64, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d over %d", tt.requested, tt.yield), func(t *testing.T) {
			recipes := fakeRecipes{
				"R1": {
					Ingredients: [][]Stack{{stackOf("log", 1)}},
					Results:     []Stack{stackOf("plank", tt.yield)},
				},
			}
			chain := NewChain(fakeModel{}, nil, recipes)
			entries := []PinnedEntry{
				pinIn(0, "log", 1, "R1"),
				pinOut(1, "plank", 1, "R1", tt.requested),
			}

			res := chain.Refresh(entries, false)

			step, ok := res.Step("R1")
			require.True(t, ok)
			assert.Equal(t, tt.crafts, step.Crafts)
			assert.Less(t, (step.Crafts-1)*tt.yield, tt.requested)
			assert.LessOrEqual(t, tt.requested, step.Crafts*tt.yield)
			assert.Equal(t, []Stack{stackOf("log", tt.crafts)}, res.InputStacks)
			assert.Equal(t, step.Crafts*tt.yield-tt.requested, sizeOf(res.RemainingStacks, "plank"))
		})
	}
}

func TestChain_ByproductReusedBySiblingRequest(t *testing.T) {
	// Arrange
	chain := NewChain(fakeModel{}, nil, nil)
	entries := []PinnedEntry{
		pinIn(0, "ore", 1, "R"),
		pinOut(1, "iron", 1, "R", 2),
		pinOut(2, "slag", 1, "R", 1),
	}

	// Act
	res := chain.Refresh(entries, false)

	// Assert
	step, ok := res.Step("R")
	require.True(t, ok)
	assert.Equal(t, 2, step.Crafts)
	assert.Equal(t, []Stack{stackOf("iron", 2), stackOf("slag", 1)}, res.OutputStacks)
	assert.Equal(t, []Stack{stackOf("slag", 1)}, res.RemainingStacks)
	assert.Equal(t, 1, res.CalculatedRemainders[2])
}

func TestChain_DegenerateGroupBecomesResources(t *testing.T) {
	// Arrange
	chain := NewChain(fakeModel{}, nil, nil)
	entries := []PinnedEntry{pinOut(0, "plank", 1, "R9", 4)}

	// Act
	res := chain.Refresh(entries, false)

	// Assert
	assert.Empty(t, res.Steps)
	assert.Equal(t, []SlotID{0}, res.InputSlots)
	assert.Equal(t, []Stack{stackOf("plank", 4)}, res.InputStacks)
	assert.Equal(t, 4, res.CalculatedItems[0].Size)
}

func TestChain_GroupWithoutOutputsIsIgnored(t *testing.T) {
	// Arrange
	chain := NewChain(fakeModel{}, nil, nil)
	entries := []PinnedEntry{pinIn(0, "log", 1, "R1")}

	// Act
	res := chain.Refresh(entries, false)

	// Assert
	assert.Empty(t, res.CalculatedItems)
	assert.Empty(t, res.Steps)
}

func TestChain_SkipCalculation(t *testing.T) {
	// Arrange
	chain := NewChain(fakeModel{}, nil, nil)

	// Act
	res := chain.Refresh(twoStepChainEntries(), true)

	// Assert
	assert.Equal(t, 0, res.TotalCrafts())
	assert.Len(t, res.CalculatedItems, 5)
	assert.Equal(t, 0, res.CalculatedItems[4].Size)
	assert.Empty(t, res.OutputStacks)
	assert.Empty(t, res.InputStacks)
}

func TestChain_UnknownKeyIsExternalInput(t *testing.T) {
	// Arrange
	graph := NewGraph(fakeModel{}, nil)

	// Act
	satisfied := graph.resolve("nothing", 5, make(recipeHistory), true)

	// Assert
	assert.Equal(t, 0, satisfied)
}
