package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftchain-go/internal/application/planning"
	"github.com/andrescamacho/craftchain-go/internal/application/planning/queries"
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
	"github.com/andrescamacho/craftchain-go/test/helpers"
)

func storeGroup(t *testing.T, repo *helpers.MockGroupRepository, doc bookmark.Document) {
	t.Helper()
	group, err := doc.ToGroup(nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), group))
}

func TestResolveGroupHandler_TwoStepChain(t *testing.T) {
	// Arrange
	repo := helpers.NewMockGroupRepository()
	storeGroup(t, repo, helpers.TwoStepDocument("chain"))
	recorder := helpers.NewMockResolutionRecorder()
	handler := queries.NewResolveGroupHandler(repo, planning.NewResolver(recorder, nil))

	// Act
	resp, err := handler.Handle(context.Background(), &queries.ResolveGroupQuery{Name: "chain"})

	// Assert
	require.NoError(t, err)
	report := resp.(*planning.ResolutionReport)
	assert.Equal(t, "chain", report.Group)
	assert.Equal(t, 10, report.TotalCrafts)
	assert.Equal(t, []crafting.Stack{{Item: "A", Size: 6}, {Item: "B", Size: 3}}, report.Inputs)
	assert.Equal(t, []crafting.Stack{{Item: "D", Size: 7}}, report.Outputs)
	assert.Equal(t, []crafting.Stack{{Item: "C", Size: 2}}, report.Remaining)

	require.Len(t, report.Slots, 5)
	assert.Equal(t, planning.RoleInput, report.Slots[0].Role)
	assert.True(t, report.Slots[0].Input)
	assert.Equal(t, planning.RoleOutput, report.Slots[4].Role)
	assert.Equal(t, 7, report.Slots[4].Crafts)
	assert.True(t, report.Slots[4].Crafted)
	assert.Equal(t, 2, report.Slots[2].Remainder)

	require.Len(t, recorder.Resolutions, 1)
	assert.Equal(t, helpers.RecordedResolution{Group: "chain", TotalCrafts: 10}, recorder.Resolutions[0])
}

func TestResolveGroupHandler_UnknownGroup(t *testing.T) {
	repo := helpers.NewMockGroupRepository()
	handler := queries.NewResolveGroupHandler(repo, planning.NewResolver(nil, nil))

	_, err := handler.Handle(context.Background(), &queries.ResolveGroupQuery{Name: "missing"})

	assert.True(t, bookmark.IsNotFound(err))
}

func TestResolveDocumentHandler_SkipCalculation(t *testing.T) {
	// Arrange
	recorder := helpers.NewMockResolutionRecorder()
	handler := queries.NewResolveDocumentHandler(planning.NewResolver(recorder, nil))

	// Act
	resp, err := handler.Handle(context.Background(), &queries.ResolveDocumentQuery{
		Document:        helpers.WaterDocument("water", 5),
		SkipCalculation: true,
	})

	// Assert
	require.NoError(t, err)
	report := resp.(*planning.ResolutionReport)
	assert.True(t, report.SkipCalculation)
	assert.Equal(t, 0, report.TotalCrafts)
	assert.Empty(t, report.Outputs)
	require.Len(t, recorder.Resolutions, 1)
	assert.True(t, recorder.Resolutions[0].SkipCalculation)
}

func TestResolveDocumentHandler_Conversion(t *testing.T) {
	handler := queries.NewResolveDocumentHandler(planning.NewResolver(nil, nil))

	resp, err := handler.Handle(context.Background(), &queries.ResolveDocumentQuery{
		Document: helpers.WaterDocument("water", 5),
	})

	require.NoError(t, err)
	report := resp.(*planning.ResolutionReport)
	assert.Contains(t, report.Remaining, crafting.Stack{Item: "fluid:water", Size: 750})
	assert.Contains(t, report.Inputs, crafting.Stack{Item: "sand", Size: 2})
}

func TestResolveDocumentHandler_InvalidDocumentIsRecorded(t *testing.T) {
	recorder := helpers.NewMockResolutionRecorder()
	handler := queries.NewResolveDocumentHandler(planning.NewResolver(recorder, nil))

	_, err := handler.Handle(context.Background(), &queries.ResolveDocumentQuery{
		Document: bookmark.Document{Name: "broken"},
	})

	require.Error(t, err)
	assert.Equal(t, "invalid_document", recorder.Failures["broken"])
}

func TestListGroupsHandler(t *testing.T) {
	// Arrange
	repo := helpers.NewMockGroupRepository()
	storeGroup(t, repo, helpers.WaterDocument("water", 1))
	storeGroup(t, repo, helpers.TwoStepDocument("chain"))
	handler := queries.NewListGroupsHandler(repo)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.ListGroupsQuery{})

	// Assert
	require.NoError(t, err)
	groups := resp.(*queries.ListGroupsResponse).Groups
	require.Len(t, groups, 2)
	assert.Equal(t, "chain", groups[0].Name)
	assert.Equal(t, 5, groups[0].Entries)
	assert.Equal(t, "water", groups[1].Name)
	assert.Equal(t, 2, groups[1].Recipes)
	assert.Equal(t, 2, groups[1].Items)
}
