package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/craftchain-go/internal/application/logging"
	"github.com/andrescamacho/craftchain-go/internal/application/mediator"
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
	"github.com/andrescamacho/craftchain-go/internal/domain/shared"
)

// ImportGroupCommand stores a bookmark document, replacing any group with the same name
type ImportGroupCommand struct {
	Document bookmark.Document
}

// ImportGroupResponse describes the stored group
type ImportGroupResponse struct {
	GroupID  string `json:"group_id"`
	Name     string `json:"name"`
	Entries  int    `json:"entries"`
	Replaced bool   `json:"replaced"`
}

// ImportGroupHandler handles the ImportGroup command
type ImportGroupHandler struct {
	groupRepo bookmark.GroupRepository
	clock     shared.Clock
}

// NewImportGroupHandler creates a new ImportGroupHandler.
// If clock is nil, uses RealClock.
func NewImportGroupHandler(groupRepo bookmark.GroupRepository, clock shared.Clock) *ImportGroupHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &ImportGroupHandler{
		groupRepo: groupRepo,
		clock:     clock,
	}
}

// Handle executes the ImportGroup command
func (h *ImportGroupHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ImportGroupCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ImportGroupCommand")
	}

	group, err := cmd.Document.ToGroup(h.clock)
	if err != nil {
		return nil, err
	}

	replaced := false
	existing, err := h.groupRepo.FindByName(ctx, group.Name())
	switch {
	case err == nil:
		existing.Replace(group, h.clock)
		group = existing
		replaced = true
	case !bookmark.IsNotFound(err):
		return nil, fmt.Errorf("failed to look up group %s: %w", group.Name(), err)
	}

	if err := h.groupRepo.Save(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to save group %s: %w", group.Name(), err)
	}

	logging.LoggerFromContext(ctx).Log("INFO", "Bookmark group imported", map[string]interface{}{
		"group":    group.Name(),
		"entries":  len(group.Entries()),
		"replaced": replaced,
	})

	return &ImportGroupResponse{
		GroupID:  group.ID(),
		Name:     group.Name(),
		Entries:  len(group.Entries()),
		Replaced: replaced,
	}, nil
}
