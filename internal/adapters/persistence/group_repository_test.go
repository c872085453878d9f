package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftchain-go/internal/adapters/persistence"
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
	"github.com/andrescamacho/craftchain-go/internal/domain/shared"
	"github.com/andrescamacho/craftchain-go/test/helpers"
)

func TestGroupRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGroupRepository(db)
	group, err := helpers.WaterDocument("water", 5).ToGroup(nil)
	require.NoError(t, err)

	// Act
	err = repo.Save(context.Background(), group)
	require.NoError(t, err)
	found, err := repo.FindByName(context.Background(), "water")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, group.ID(), found.ID())
	assert.Equal(t, group.Document(), found.Document())
}

func TestGroupRepository_SaveKeepsEmptyCatalog(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGroupRepository(db)
	group, err := helpers.TwoStepDocument("chain").ToGroup(nil)
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), group))
	found, err := repo.FindByName(context.Background(), "chain")

	require.NoError(t, err)
	assert.Nil(t, found.Items())
	assert.Nil(t, found.Recipes())
	assert.Equal(t, group.Entries(), found.Entries())
}

func TestGroupRepository_SaveUpsertsByName(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGroupRepository(db)
	clock := shared.NewMockClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))

	group, err := helpers.TwoStepDocument("chain").ToGroup(clock)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), group))

	doc := helpers.TwoStepDocument("chain")
	doc.Entries[4].Meta.RequestedAmount = 70
	updated, err := doc.ToGroup(clock)
	require.NoError(t, err)
	clock.Advance(time.Hour)
	group.Replace(updated, clock)

	// Act
	err = repo.Save(context.Background(), group)

	// Assert
	require.NoError(t, err)
	groups, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 70, groups[0].Entries()[4].Meta.RequestedAmount)
	assert.Equal(t, group.ID(), groups[0].ID())
}

func TestGroupRepository_ListOrderedByName(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGroupRepository(db)
	for _, name := range []string{"zinc", "alloy", "mortar"} {
		group, err := helpers.TwoStepDocument(name).ToGroup(nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(context.Background(), group))
	}

	groups, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "alloy", groups[0].Name())
	assert.Equal(t, "mortar", groups[1].Name())
	assert.Equal(t, "zinc", groups[2].Name())
}

func TestGroupRepository_NotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGroupRepository(db)

	// Act
	_, findErr := repo.FindByName(context.Background(), "missing")
	deleteErr := repo.Delete(context.Background(), "missing")

	// Assert
	var notFound *bookmark.ErrGroupNotFound
	assert.ErrorAs(t, findErr, &notFound)
	assert.Equal(t, "missing", notFound.Name)
	assert.True(t, bookmark.IsNotFound(deleteErr))
}

func TestGroupRepository_Delete(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGroupRepository(db)
	group, err := helpers.TwoStepDocument("chain").ToGroup(nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), group))

	err = repo.Delete(context.Background(), "chain")

	require.NoError(t, err)
	_, err = repo.FindByName(context.Background(), "chain")
	assert.True(t, bookmark.IsNotFound(err))
}
