package planning

import (
	"context"
	"time"

	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
)

// RunRecord is one stored resolution of a group
type RunRecord struct {
	Group           string           `json:"group"`
	SkipCalculation bool             `json:"skip_calculation"`
	TotalCrafts     int              `json:"total_crafts"`
	Inputs          []crafting.Stack `json:"inputs"`
	Remaining       []crafting.Stack `json:"remaining"`
	Duration        time.Duration    `json:"duration"`
	ResolvedAt      time.Time        `json:"resolved_at"`
}

// RunHistory reads stored resolutions
type RunHistory interface {
	Recent(ctx context.Context, group string, limit int) ([]RunRecord, error)
}

// Recorders fans a resolution out to several recorders
type Recorders []ResolutionRecorder

func (rs Recorders) RecordResolution(group string, duration time.Duration, resolution *crafting.Resolution, skipCalculation bool) {
	for _, r := range rs {
		r.RecordResolution(group, duration, resolution, skipCalculation)
	}
}

func (rs Recorders) RecordFailure(group string, reason string) {
	for _, r := range rs {
		r.RecordFailure(group, reason)
	}
}
