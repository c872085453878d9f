package planning

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/craftchain-go/internal/application/logging"
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
	"github.com/andrescamacho/craftchain-go/internal/domain/catalog"
	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
	"github.com/andrescamacho/craftchain-go/internal/domain/shared"
)

// ResolutionRecorder observes finished resolutions
type ResolutionRecorder interface {
	RecordResolution(group string, duration time.Duration, resolution *crafting.Resolution, skipCalculation bool)
	RecordFailure(group string, reason string)
}

// Resolver runs one refresh of a bookmark document
type Resolver struct {
	recorder ResolutionRecorder
	clock    shared.Clock
}

// NewResolver creates a resolver. recorder may be nil; a nil clock uses RealClock.
func NewResolver(recorder ResolutionRecorder, clock shared.Clock) *Resolver {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Resolver{
		recorder: recorder,
		clock:    clock,
	}
}

// Resolve builds the document's catalog, resolves its entries and reports the outcome
func (r *Resolver) Resolve(ctx context.Context, doc bookmark.Document, skipCalculation bool) (*ResolutionReport, error) {
	logger := logging.LoggerFromContext(ctx)

	if err := doc.Validate(); err != nil {
		r.recordFailure(doc.Name, "invalid_document")
		return nil, err
	}

	cat, err := catalog.NewCatalog(doc.Items, doc.Recipes)
	if err != nil {
		r.recordFailure(doc.Name, "catalog")
		return nil, fmt.Errorf("failed to build catalog for %s: %w", doc.Name, err)
	}

	logger.Log("DEBUG", "Resolving bookmark group", map[string]interface{}{
		"group":            doc.Name,
		"entries":          len(doc.Entries),
		"recipes":          cat.Recipes(),
		"skip_calculation": skipCalculation,
	})

	start := r.clock.Now()
	chain := crafting.NewChain(cat, cat, cat)
	res := chain.Refresh(doc.Entries, skipCalculation)
	duration := r.clock.Now().Sub(start)

	if r.recorder != nil {
		r.recorder.RecordResolution(doc.Name, duration, res, skipCalculation)
	}

	if len(res.ConflictingSlots) > 0 {
		logger.Log("WARNING", "Conflicting pinned outputs", map[string]interface{}{
			"group": doc.Name,
			"slots": res.ConflictingSlots,
		})
	}

	logger.Log("INFO", "Resolved bookmark group", map[string]interface{}{
		"group":        doc.Name,
		"total_crafts": res.TotalCrafts(),
		"inputs":       len(res.InputStacks),
		"remaining":    len(res.RemainingStacks),
		"duration_ms":  duration.Milliseconds(),
	})

	return NewResolutionReport(doc.Name, doc.Entries, res, skipCalculation), nil
}

func (r *Resolver) recordFailure(group, reason string) {
	if r.recorder != nil {
		r.recorder.RecordFailure(group, reason)
	}
}
