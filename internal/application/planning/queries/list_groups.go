package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/craftchain-go/internal/application/mediator"
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
)

// ListGroupsQuery lists every stored bookmark group
type ListGroupsQuery struct{}

// GroupSummaryDTO describes one stored group
type GroupSummaryDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Entries   int       `json:"entries"`
	Recipes   int       `json:"recipes"`
	Items     int       `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListGroupsResponse carries the summaries ordered by name
type ListGroupsResponse struct {
	Groups []GroupSummaryDTO `json:"groups"`
}

// ListGroupsHandler handles the ListGroups query
type ListGroupsHandler struct {
	groupRepo bookmark.GroupRepository
}

// NewListGroupsHandler creates a new ListGroupsHandler
func NewListGroupsHandler(groupRepo bookmark.GroupRepository) *ListGroupsHandler {
	return &ListGroupsHandler{groupRepo: groupRepo}
}

// Handle executes the ListGroups query
func (h *ListGroupsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*ListGroupsQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListGroupsQuery")
	}

	groups, err := h.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	summaries := make([]GroupSummaryDTO, 0, len(groups))
	for _, group := range groups {
		summaries = append(summaries, GroupSummaryDTO{
			ID:        group.ID(),
			Name:      group.Name(),
			Entries:   len(group.Entries()),
			Recipes:   len(group.Recipes()),
			Items:     len(group.Items()),
			UpdatedAt: group.UpdatedAt(),
		})
	}

	return &ListGroupsResponse{Groups: summaries}, nil
}
