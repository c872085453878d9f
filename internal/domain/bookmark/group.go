package bookmark

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andrescamacho/craftchain-go/internal/domain/catalog"
	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
	"github.com/andrescamacho/craftchain-go/internal/domain/shared"
)

// Group is a named set of pinned entries together with the item definitions
// and recipes needed to resolve them
type Group struct {
	id        string
	name      string
	items     []catalog.ItemDefinition
	recipes   []crafting.Recipe
	entries   []crafting.PinnedEntry
	createdAt time.Time
	updatedAt time.Time
}

// NewGroup creates a group with a fresh id.
// If clock is nil, uses RealClock.
func NewGroup(
	name string,
	items []catalog.ItemDefinition,
	recipes []crafting.Recipe,
	entries []crafting.PinnedEntry,
	clock shared.Clock,
) (*Group, error) {
	if clock == nil {
		clock = shared.NewRealClock()
	}

	doc := Document{Name: name, Items: items, Recipes: recipes, Entries: entries}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	now := clock.Now()
	return &Group{
		id:        uuid.NewString(),
		name:      name,
		items:     items,
		recipes:   recipes,
		entries:   entries,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructGroup rebuilds a group from persisted state without validation
func ReconstructGroup(
	id string,
	name string,
	items []catalog.ItemDefinition,
	recipes []crafting.Recipe,
	entries []crafting.PinnedEntry,
	createdAt time.Time,
	updatedAt time.Time,
) *Group {
	return &Group{
		id:        id,
		name:      name,
		items:     items,
		recipes:   recipes,
		entries:   entries,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Getters

func (g *Group) ID() string                      { return g.id }
func (g *Group) Name() string                    { return g.name }
func (g *Group) Items() []catalog.ItemDefinition { return g.items }
func (g *Group) Recipes() []crafting.Recipe      { return g.recipes }
func (g *Group) Entries() []crafting.PinnedEntry { return g.entries }
func (g *Group) CreatedAt() time.Time            { return g.createdAt }
func (g *Group) UpdatedAt() time.Time            { return g.updatedAt }

// Replace swaps the group content for the content of another group with the same name,
// keeping the identity and creation time
func (g *Group) Replace(other *Group, clock shared.Clock) {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	g.items = other.items
	g.recipes = other.recipes
	g.entries = other.entries
	g.updatedAt = clock.Now()
}

// Catalog builds the collaborator catalog of the group
func (g *Group) Catalog() (*catalog.Catalog, error) {
	return catalog.NewCatalog(g.items, g.recipes)
}

// Document exports the group in its exchange format
func (g *Group) Document() Document {
	return Document{
		Name:    g.name,
		Items:   g.items,
		Recipes: g.recipes,
		Entries: g.entries,
	}
}

// GroupRepository persists bookmark groups by name
type GroupRepository interface {
	// Save inserts the group or replaces the stored group with the same name
	Save(ctx context.Context, group *Group) error

	// FindByName retrieves a group, returning ErrGroupNotFound if absent
	FindByName(ctx context.Context, name string) (*Group, error)

	// List retrieves every group ordered by name
	List(ctx context.Context) ([]*Group, error)

	// Delete removes a group, returning ErrGroupNotFound if absent
	Delete(ctx context.Context, name string) error
}
