package bookmark_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
	"github.com/andrescamacho/craftchain-go/internal/domain/catalog"
	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
	"github.com/andrescamacho/craftchain-go/internal/domain/shared"
)

func planksDocument() bookmark.Document {
	return bookmark.Document{
		Name: "planks",
		Recipes: []crafting.Recipe{{
			ID:          "planks",
			Ingredients: [][]crafting.Stack{{{Item: "log", Size: 1}}},
			Results:     []crafting.Stack{{Item: "plank", Size: 4}},
		}},
		Entries: []crafting.PinnedEntry{
			{Slot: 0, Stack: crafting.Stack{Item: "log", Size: 1}, Meta: crafting.EntryMeta{Ingredient: true, RecipeID: "planks"}},
			{Slot: 1, Stack: crafting.Stack{Item: "plank", Size: 4}, Meta: crafting.EntryMeta{RecipeID: "planks", RequestedAmount: 10}},
		},
	}
}

func TestDocument_ToGroup(t *testing.T) {
	// Arrange
	clock := shared.NewMockClock(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	// Act
	group, err := planksDocument().ToGroup(clock)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, group.ID())
	assert.Equal(t, "planks", group.Name())
	assert.Len(t, group.Entries(), 2)
	assert.Equal(t, clock.Now(), group.CreatedAt())
	assert.Equal(t, planksDocument(), group.Document())

	c, err := group.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 1, c.Recipes())
}

func TestDocument_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *bookmark.Document)
		reason string
	}{
		{"missing name", func(d *bookmark.Document) { d.Name = "" }, "name is required"},
		{"no entries", func(d *bookmark.Document) { d.Entries = nil }, "at least one entry is required"},
		{"duplicate slot", func(d *bookmark.Document) { d.Entries[1].Slot = 0 }, "slot 0 is pinned twice"},
		{"empty item", func(d *bookmark.Document) { d.Entries[0].Stack.Item = "" }, "entry 0 has no item"},
		{"negative factor", func(d *bookmark.Document) { d.Entries[1].Meta.Factor = -1 }, "entry 1 has negative factor"},
		{"broken catalog", func(d *bookmark.Document) {
			d.Items = []catalog.ItemDefinition{{Item: "cell", Fluid: "water"}}
		}, "container cell carries water but has no amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := planksDocument()
			tt.mutate(&doc)

			err := doc.Validate()

			require.Error(t, err)
			var invalid *bookmark.ErrInvalidDocument
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.reason, invalid.Reason)
		})
	}
}

func TestGroup_ReplaceKeepsIdentity(t *testing.T) {
	// Arrange
	clock := shared.NewMockClock(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	original, err := planksDocument().ToGroup(clock)
	require.NoError(t, err)

	doc := planksDocument()
	doc.Entries[1].Meta.RequestedAmount = 20
	updated, err := doc.ToGroup(clock)
	require.NoError(t, err)
	clock.Advance(time.Hour)

	// Act
	original.Replace(updated, clock)

	// Assert
	assert.NotEqual(t, updated.ID(), original.ID())
	assert.Equal(t, 20, original.Entries()[1].Meta.RequestedAmount)
	assert.Equal(t, time.Hour, original.UpdatedAt().Sub(original.CreatedAt()))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, bookmark.IsNotFound(&bookmark.ErrGroupNotFound{Name: "x"}))
	assert.False(t, bookmark.IsNotFound(&bookmark.ErrInvalidDocument{Reason: "x"}))
}
