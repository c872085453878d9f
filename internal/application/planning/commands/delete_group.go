package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/craftchain-go/internal/application/logging"
	"github.com/andrescamacho/craftchain-go/internal/application/mediator"
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
)

// DeleteGroupCommand removes a stored bookmark group
type DeleteGroupCommand struct {
	Name string
}

// DeleteGroupResponse confirms the removal
type DeleteGroupResponse struct {
	Name string `json:"name"`
}

// DeleteGroupHandler handles the DeleteGroup command
type DeleteGroupHandler struct {
	groupRepo bookmark.GroupRepository
}

// NewDeleteGroupHandler creates a new DeleteGroupHandler
func NewDeleteGroupHandler(groupRepo bookmark.GroupRepository) *DeleteGroupHandler {
	return &DeleteGroupHandler{groupRepo: groupRepo}
}

// Handle executes the DeleteGroup command
func (h *DeleteGroupHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*DeleteGroupCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DeleteGroupCommand")
	}

	if err := h.groupRepo.Delete(ctx, cmd.Name); err != nil {
		return nil, err
	}

	logging.LoggerFromContext(ctx).Log("INFO", "Bookmark group deleted", map[string]interface{}{
		"group": cmd.Name,
	})

	return &DeleteGroupResponse{Name: cmd.Name}, nil
}
