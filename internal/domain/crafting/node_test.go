package crafting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceNode_SignedRemainder(t *testing.T) {
	node := newResourceNode(0, "log", pinItem(0, "log", 0))

	node.AddRemainder("log", 3)
	node.AddRemainder("log", -7)

	assert.Equal(t, -4, node.Remainder("log"))
	assert.Equal(t, 4, node.Owed())
	assert.Equal(t, map[ResourceKey]int{"log": -4}, node.Remainders())
	assert.Equal(t, 0, node.AddRemainder("plank", 2), "foreign keys are ignored")
}

func TestResourceNode_ZeroRemainderIsAbsent(t *testing.T) {
	node := newResourceNode(0, "log", pinItem(0, "log", 0))

	node.AddRemainder("log", 2)
	node.AddRemainder("log", -2)

	assert.Empty(t, node.Remainders())
}

func TestProductionNode_DerivedMaps(t *testing.T) {
	// Arrange
	recipe := Recipe{
		ID:          "smelt",
		Ingredients: [][]Stack{{stackOf("ore", 2), stackOf("ore", 1)}, {stackOf("coal", 1)}},
		Results:     []Stack{stackOf("ingot", 1), stackOf("slag", 1)},
	}

	// Act
	node := newProductionNode(0, fakeModel{}, recipe,
		[]PinnedEntry{pinIn(0, "ore", 3, "smelt")},
		[]PinnedEntry{pinOut(1, "ingot", 1, "smelt", 0)})

	// Assert
	assert.Equal(t, 3, node.IngredientQuantity("ore"))
	assert.Equal(t, 1, node.IngredientQuantity("coal"))
	assert.Equal(t, 1, node.OutputQuantity("ingot"))
	assert.Equal(t, []ResourceKey{"ingot"}, node.OutputKeys())

	node.creditOutputs(4)
	assert.Equal(t, 4, node.Remainder("ingot"))
	assert.Equal(t, 0, node.Remainder("slag"), "unpinned results are not tracked")
}

func TestProductionNode_DrainRemainder(t *testing.T) {
	node := newProductionNode(0, fakeModel{}, Recipe{ID: "r"}, nil, nil)
	node.AddRemainder("ingot", 5)

	assert.Equal(t, 3, node.drainRemainder("ingot", 3))
	assert.Equal(t, 2, node.drainRemainder("ingot", 10))
	assert.Equal(t, 0, node.drainRemainder("ingot", 10))
	assert.Empty(t, node.Remainders())
}

func TestConversionNode_BulkArithmetic(t *testing.T) {
	// Arrange
	node := newConversionNode(0, "water", "fluid:water")
	node.addInput("cell_water", 1000)
	node.addOutput("bottle_water", 250)
	node.setEmptyContainer("cell_water", "cell")
	node.setEmptyContainer("bottle_water", "glass_bottle")

	// Act
	collected := node.drainInput("cell_water", 1)
	out := node.settle("bottle_water", collected, 3)

	// Assert
	assert.Equal(t, 3, out)
	assert.Equal(t, 250, node.FluidRemainder())
	assert.Equal(t, 1, node.Remainder("bottle_water"))
	assert.Equal(t, 0, node.Remainder("cell_water"))
	assert.Equal(t, Ledger{"cell": 1}, node.producedEmptyContainers)
	assert.Equal(t, Ledger{"glass_bottle": 3}, node.consumedEmptyContainers)

	node.AddRemainder("bottle_water", -1)
	assert.Empty(t, node.Remainders())
}
