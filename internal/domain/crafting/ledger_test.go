package crafting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedger_AdjustRemovesZeroBalances(t *testing.T) {
	// Arrange
	ledger := NewLedger()

	// Act
	ledger.Adjust("iron", 5)
	total := ledger.Adjust("iron", -5)

	// Assert
	assert.Equal(t, 0, total)
	_, present := ledger["iron"]
	assert.False(t, present)
	assert.Empty(t, ledger)
}

func TestLedger_KeepsNegativeBalances(t *testing.T) {
	ledger := NewLedger()

	ledger.Adjust("iron", -3)

	assert.Equal(t, -3, ledger.Get("iron"))
	assert.Equal(t, 0, ledger.Get("copper"))
}

func TestLedger_KeysAreSorted(t *testing.T) {
	ledger := Ledger{"tin": 1, "copper": 2, "iron": 3}

	assert.Equal(t, []ResourceKey{"copper", "iron", "tin"}, ledger.Keys())
}

func TestLedger_MergeAndClone(t *testing.T) {
	// Arrange
	ledger := Ledger{"iron": 2, "tin": -1}
	other := Ledger{"iron": 3, "tin": 1, "gold": 4}

	// Act
	clone := ledger.Clone()
	ledger.Merge(other)

	// Assert
	assert.Equal(t, Ledger{"iron": 5, "gold": 4}, ledger)
	assert.Equal(t, Ledger{"iron": 2, "tin": -1}, clone)
	assert.Equal(t, 9, ledger.Total())
}
