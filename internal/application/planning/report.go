package planning

import (
	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
)

// Slot roles in a report
const (
	RoleInput    = "input"
	RoleOutput   = "output"
	RoleResource = "resource"
)

// SlotReport is the resolved state of one pinned slot
type SlotReport struct {
	Slot        crafting.SlotID   `json:"slot"`
	RecipeID    crafting.RecipeID `json:"recipe_id,omitempty"`
	Role        string            `json:"role"`
	Item        crafting.Stack    `json:"item"`
	Requested   int               `json:"requested,omitempty"`
	Remainder   int               `json:"remainder,omitempty"`
	Crafts      int               `json:"crafts,omitempty"`
	Input       bool              `json:"input,omitempty"`
	Crafted     bool              `json:"crafted,omitempty"`
	Conflicting bool              `json:"conflicting,omitempty"`
}

// ResolutionReport is the transport-friendly outcome of one resolution
type ResolutionReport struct {
	Group           string               `json:"group"`
	SkipCalculation bool                 `json:"skip_calculation"`
	Slots           []SlotReport         `json:"slots"`
	Steps           []crafting.CraftStep `json:"steps"`
	Inputs          []crafting.Stack     `json:"inputs"`
	Outputs         []crafting.Stack     `json:"outputs"`
	Remaining       []crafting.Stack     `json:"remaining"`
	TotalCrafts     int                  `json:"total_crafts"`
}

// NewResolutionReport joins the pinned entries with their resolved state.
// Slots keep pin order; a slot without a resolved stack keeps its pinned stack at size 0.
func NewResolutionReport(group string, entries []crafting.PinnedEntry, res *crafting.Resolution, skipCalculation bool) *ResolutionReport {
	report := &ResolutionReport{
		Group:           group,
		SkipCalculation: skipCalculation,
		Slots:           make([]SlotReport, 0, len(entries)),
		Steps:           res.Steps,
		Inputs:          res.InputStacks,
		Outputs:         res.OutputStacks,
		Remaining:       res.RemainingStacks,
		TotalCrafts:     res.TotalCrafts(),
	}

	for _, entry := range entries {
		item, ok := res.CalculatedItems[entry.Slot]
		if !ok {
			item = entry.Stack
			item.Size = 0
		}

		report.Slots = append(report.Slots, SlotReport{
			Slot:        entry.Slot,
			RecipeID:    entry.Meta.RecipeID,
			Role:        slotRole(entry),
			Item:        item,
			Requested:   entry.Meta.RequestedAmount,
			Remainder:   res.CalculatedRemainders[entry.Slot],
			Crafts:      res.CraftCounts[entry.Slot],
			Input:       res.IsInput(entry.Slot),
			Crafted:     res.IsCrafted(entry.Slot),
			Conflicting: res.IsConflicting(entry.Slot),
		})
	}

	return report
}

func slotRole(entry crafting.PinnedEntry) string {
	switch {
	case entry.Meta.RecipeID == "":
		return RoleResource
	case entry.Meta.Ingredient:
		return RoleInput
	default:
		return RoleOutput
	}
}
