package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/craftchain-go/internal/application/mediator"
	"github.com/andrescamacho/craftchain-go/internal/application/planning"
)

// ListRunsQuery lists the latest resolutions of a group
type ListRunsQuery struct {
	Group string
	Limit int
}

// ListRunsResponse carries runs newest first
type ListRunsResponse struct {
	Runs []planning.RunRecord `json:"runs"`
}

// ListRunsHandler handles the ListRuns query
type ListRunsHandler struct {
	history planning.RunHistory
}

// NewListRunsHandler creates a new ListRunsHandler
func NewListRunsHandler(history planning.RunHistory) *ListRunsHandler {
	return &ListRunsHandler{history: history}
}

// Handle executes the ListRuns query
func (h *ListRunsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ListRunsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListRunsQuery")
	}

	runs, err := h.history.Recent(ctx, query.Group, query.Limit)
	if err != nil {
		return nil, err
	}

	return &ListRunsResponse{Runs: runs}, nil
}
