package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
	"github.com/andrescamacho/craftchain-go/internal/domain/catalog"
	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
)

// GormGroupRepository implements bookmark.GroupRepository using GORM
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGormGroupRepository creates a new GORM group repository
func NewGormGroupRepository(db *gorm.DB) *GormGroupRepository {
	return &GormGroupRepository{db: db}
}

// Save upserts a group keyed by name
func (r *GormGroupRepository) Save(ctx context.Context, group *bookmark.Group) error {
	model, err := r.groupToModel(group)
	if err != nil {
		return fmt.Errorf("failed to convert group to model: %w", err)
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing BookmarkGroupModel
		err := tx.Where("name = ?", model.Name).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(model).Error
		case err != nil:
			return err
		}

		// The stored row keeps its id and creation time
		return tx.Model(&existing).Updates(map[string]interface{}{
			"items":      model.Items,
			"recipes":    model.Recipes,
			"entries":    model.Entries,
			"updated_at": model.UpdatedAt,
		}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save group: %w", err)
	}

	return nil
}

// FindByName retrieves a group by name
func (r *GormGroupRepository) FindByName(ctx context.Context, name string) (*bookmark.Group, error) {
	var model BookmarkGroupModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &bookmark.ErrGroupNotFound{Name: name}
		}
		return nil, fmt.Errorf("failed to find group: %w", result.Error)
	}

	return r.modelToGroup(&model)
}

// List retrieves every group ordered by name
func (r *GormGroupRepository) List(ctx context.Context) ([]*bookmark.Group, error) {
	var models []BookmarkGroupModel
	result := r.db.WithContext(ctx).Order("name").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list groups: %w", result.Error)
	}

	groups := make([]*bookmark.Group, 0, len(models))
	for i := range models {
		group, err := r.modelToGroup(&models[i])
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// Delete removes a group by name
func (r *GormGroupRepository) Delete(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&BookmarkGroupModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete group: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &bookmark.ErrGroupNotFound{Name: name}
	}

	return nil
}

func (r *GormGroupRepository) modelToGroup(model *BookmarkGroupModel) (*bookmark.Group, error) {
	var items []catalog.ItemDefinition
	if err := unmarshalColumn(model.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal items of group %s: %w", model.Name, err)
	}

	var recipes []crafting.Recipe
	if err := unmarshalColumn(model.Recipes, &recipes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipes of group %s: %w", model.Name, err)
	}

	var entries []crafting.PinnedEntry
	if err := unmarshalColumn(model.Entries, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entries of group %s: %w", model.Name, err)
	}

	return bookmark.ReconstructGroup(
		model.ID,
		model.Name,
		items,
		recipes,
		entries,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (r *GormGroupRepository) groupToModel(group *bookmark.Group) (*BookmarkGroupModel, error) {
	items, err := marshalColumn(group.Items())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal items: %w", err)
	}

	recipes, err := marshalColumn(group.Recipes())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recipes: %w", err)
	}

	entries, err := json.Marshal(group.Entries())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entries: %w", err)
	}

	return &BookmarkGroupModel{
		ID:        group.ID(),
		Name:      group.Name(),
		Items:     items,
		Recipes:   recipes,
		Entries:   string(entries),
		CreatedAt: group.CreatedAt(),
		UpdatedAt: group.UpdatedAt(),
	}, nil
}

// marshalColumn stores empty slices as an empty column
func marshalColumn[T any](values []T) (string, error) {
	if len(values) == 0 {
		return "", nil
	}
	bytes, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func unmarshalColumn(column string, target interface{}) error {
	if column == "" {
		return nil
	}
	return json.Unmarshal([]byte(column), target)
}
