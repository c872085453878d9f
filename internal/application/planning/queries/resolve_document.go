package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/craftchain-go/internal/application/mediator"
	"github.com/andrescamacho/craftchain-go/internal/application/planning"
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
)

// ResolveDocumentQuery resolves a bookmark document without storing it
type ResolveDocumentQuery struct {
	Document        bookmark.Document
	SkipCalculation bool
}

// ResolveDocumentHandler handles the ResolveDocument query
type ResolveDocumentHandler struct {
	resolver *planning.Resolver
}

// NewResolveDocumentHandler creates a new ResolveDocumentHandler
func NewResolveDocumentHandler(resolver *planning.Resolver) *ResolveDocumentHandler {
	return &ResolveDocumentHandler{resolver: resolver}
}

// Handle executes the ResolveDocument query and returns a *planning.ResolutionReport
func (h *ResolveDocumentHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ResolveDocumentQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ResolveDocumentQuery")
	}

	return h.resolver.Resolve(ctx, query.Document, query.SkipCalculation)
}
