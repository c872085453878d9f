package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/craftchain-go/internal/application/mediator"
	"github.com/andrescamacho/craftchain-go/internal/application/planning"
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
)

// ResolveGroupQuery resolves a stored bookmark group
type ResolveGroupQuery struct {
	Name            string
	SkipCalculation bool
}

// ResolveGroupHandler handles the ResolveGroup query
type ResolveGroupHandler struct {
	groupRepo bookmark.GroupRepository
	resolver  *planning.Resolver
}

// NewResolveGroupHandler creates a new ResolveGroupHandler
func NewResolveGroupHandler(groupRepo bookmark.GroupRepository, resolver *planning.Resolver) *ResolveGroupHandler {
	return &ResolveGroupHandler{
		groupRepo: groupRepo,
		resolver:  resolver,
	}
}

// Handle executes the ResolveGroup query and returns a *planning.ResolutionReport
func (h *ResolveGroupHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ResolveGroupQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ResolveGroupQuery")
	}

	group, err := h.groupRepo.FindByName(ctx, query.Name)
	if err != nil {
		return nil, err
	}

	return h.resolver.Resolve(ctx, group.Document(), query.SkipCalculation)
}
