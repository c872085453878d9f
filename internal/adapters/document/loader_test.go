package document_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftchain-go/internal/adapters/document"
	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
	"github.com/andrescamacho/craftchain-go/test/helpers"
)

const waterYAML = `
name: water
items:
  - item: water_cell
    fluid: water
    amount: 1000
    empty: cell
recipes:
  - id: pump
    ingredients:
      - - item: sand
          size: 1
    results:
      - item: water_cell
        size: 1
entries:
  - slot: 0
    stack: {item: sand, size: 1}
    meta: {ingredient: true, recipe: pump}
  - slot: 1
    stack: {item: water_cell, size: 1}
    meta: {recipe: pump, requested: 4}
`

func TestDecode_YAML(t *testing.T) {
	// Act
	doc, err := document.Decode(strings.NewReader(waterYAML), document.FormatYAML)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "water", doc.Name)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, 1000, doc.Items[0].Amount)
	require.Len(t, doc.Recipes, 1)
	assert.Equal(t, crafting.RecipeID("pump"), doc.Recipes[0].ID)
	assert.Equal(t, []crafting.Stack{{Item: "sand", Size: 1}}, doc.Recipes[0].Ingredients[0])
	require.Len(t, doc.Entries, 2)
	assert.True(t, doc.Entries[0].Meta.Ingredient)
	assert.Equal(t, 4, doc.Entries[1].Meta.RequestedAmount)
	assert.NoError(t, doc.Validate())
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := document.Decode(strings.NewReader("name: x\ncolour: red\n"), document.FormatYAML)
	assert.Error(t, err)

	_, err = document.Decode(strings.NewReader(`{"name":"x","colour":"red"}`), document.FormatJSON)
	assert.Error(t, err)
}

func TestDecode_EmptyYAML(t *testing.T) {
	_, err := document.Decode(strings.NewReader(""), document.FormatYAML)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty yaml document")
}

func TestEncodeDecode_BothFormats(t *testing.T) {
	original := helpers.WaterDocument("water", 5)

	for _, format := range []document.Format{document.FormatYAML, document.FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, document.Encode(&buf, original, format))

			decoded, err := document.Decode(&buf, format)

			require.NoError(t, err)
			assert.Equal(t, original, decoded)
		})
	}
}

func TestLoadFile_PicksFormatFromExtension(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := filepath.Join(dir, "chain.json")
	var buf bytes.Buffer
	require.NoError(t, document.Encode(&buf, helpers.TwoStepDocument("chain"), document.FormatJSON))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	// Act
	doc, err := document.LoadFile(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, helpers.TwoStepDocument("chain"), doc)
	assert.Equal(t, document.FormatJSON, document.FormatFor(path))
	assert.Equal(t, document.FormatYAML, document.FormatFor("chain.yml"))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := document.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.ErrorContains(t, err, "failed to open document")
}
