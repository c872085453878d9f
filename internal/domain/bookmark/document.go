package bookmark

import (
	"fmt"

	"github.com/andrescamacho/craftchain-go/internal/domain/catalog"
	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
	"github.com/andrescamacho/craftchain-go/internal/domain/shared"
)

// Document is the exchange format of a bookmark group, read from YAML or JSON
type Document struct {
	Name    string                   `json:"name" yaml:"name"`
	Items   []catalog.ItemDefinition `json:"items,omitempty" yaml:"items,omitempty"`
	Recipes []crafting.Recipe        `json:"recipes,omitempty" yaml:"recipes,omitempty"`
	Entries []crafting.PinnedEntry   `json:"entries" yaml:"entries"`
}

// Validate checks the document can become a group and its catalog can be built
func (d Document) Validate() error {
	if d.Name == "" {
		return &ErrInvalidDocument{Reason: "name is required"}
	}
	if len(d.Entries) == 0 {
		return &ErrInvalidDocument{Reason: "at least one entry is required"}
	}

	slots := make(map[crafting.SlotID]bool, len(d.Entries))
	for i, entry := range d.Entries {
		if entry.Stack.Item == "" {
			return &ErrInvalidDocument{Reason: fmt.Sprintf("entry %d has no item", i)}
		}
		if slots[entry.Slot] {
			return &ErrInvalidDocument{Reason: fmt.Sprintf("slot %d is pinned twice", entry.Slot)}
		}
		slots[entry.Slot] = true
		if entry.Meta.Factor < 0 {
			return &ErrInvalidDocument{Reason: fmt.Sprintf("entry %d has negative factor", i)}
		}
	}

	if _, err := catalog.NewCatalog(d.Items, d.Recipes); err != nil {
		return &ErrInvalidDocument{Reason: err.Error()}
	}

	return nil
}

// ToGroup validates the document and creates a new group from it
func (d Document) ToGroup(clock shared.Clock) (*Group, error) {
	return NewGroup(d.Name, d.Items, d.Recipes, d.Entries, clock)
}
