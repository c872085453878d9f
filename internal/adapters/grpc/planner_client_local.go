package grpc

import (
	"context"
	"fmt"

	"github.com/andrescamacho/craftchain-go/internal/application/mediator"
	"github.com/andrescamacho/craftchain-go/internal/application/planning"
	"github.com/andrescamacho/craftchain-go/internal/application/planning/commands"
	"github.com/andrescamacho/craftchain-go/internal/application/planning/queries"
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
)

// PlannerClientLocal serves the planner client API in-process through a mediator.
// The CLI uses it when no daemon is involved.
type PlannerClientLocal struct {
	mediator mediator.Mediator
	close    func() error
}

// NewPlannerClientLocal creates a local planner client. closeFn releases the
// resources behind the mediator and may be nil.
func NewPlannerClientLocal(m mediator.Mediator, closeFn func() error) *PlannerClientLocal {
	return &PlannerClientLocal{mediator: m, close: closeFn}
}

// Close releases the resources behind the mediator
func (c *PlannerClientLocal) Close() error {
	if c.close != nil {
		return c.close()
	}
	return nil
}

// ResolveGroup resolves a stored group
func (c *PlannerClientLocal) ResolveGroup(ctx context.Context, name string, skipCalculation bool) (*planning.ResolutionReport, error) {
	return local[*planning.ResolutionReport](ctx, c.mediator, &queries.ResolveGroupQuery{Name: name, SkipCalculation: skipCalculation})
}

// ResolveDocument resolves an inline document without storing it
func (c *PlannerClientLocal) ResolveDocument(ctx context.Context, doc bookmark.Document, skipCalculation bool) (*planning.ResolutionReport, error) {
	return local[*planning.ResolutionReport](ctx, c.mediator, &queries.ResolveDocumentQuery{Document: doc, SkipCalculation: skipCalculation})
}

// ImportGroup stores a document as a group
func (c *PlannerClientLocal) ImportGroup(ctx context.Context, doc bookmark.Document) (*commands.ImportGroupResponse, error) {
	return local[*commands.ImportGroupResponse](ctx, c.mediator, &commands.ImportGroupCommand{Document: doc})
}

// ListGroups lists stored groups
func (c *PlannerClientLocal) ListGroups(ctx context.Context) (*queries.ListGroupsResponse, error) {
	return local[*queries.ListGroupsResponse](ctx, c.mediator, &queries.ListGroupsQuery{})
}

// DeleteGroup removes a stored group
func (c *PlannerClientLocal) DeleteGroup(ctx context.Context, name string) error {
	_, err := local[*commands.DeleteGroupResponse](ctx, c.mediator, &commands.DeleteGroupCommand{Name: name})
	return err
}

// ListRuns lists the latest resolutions of a group
func (c *PlannerClientLocal) ListRuns(ctx context.Context, group string, limit int) (*queries.ListRunsResponse, error) {
	return local[*queries.ListRunsResponse](ctx, c.mediator, &queries.ListRunsQuery{Group: group, Limit: limit})
}

func local[T any](ctx context.Context, m mediator.Mediator, request mediator.Request) (T, error) {
	var zero T

	response, err := m.Send(ctx, request)
	if err != nil {
		return zero, err
	}

	typed, ok := response.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected response type %T", response)
	}
	return typed, nil
}
