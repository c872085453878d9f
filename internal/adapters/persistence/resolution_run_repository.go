package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/craftchain-go/internal/application/planning"
	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
	"github.com/andrescamacho/craftchain-go/internal/domain/shared"
)

// GormResolutionRunRepository keeps a history of finished resolutions.
// It implements planning.ResolutionRecorder and planning.RunHistory.
type GormResolutionRunRepository struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormResolutionRunRepository creates a new run repository.
// If clock is nil, uses RealClock.
func NewGormResolutionRunRepository(db *gorm.DB, clock shared.Clock) *GormResolutionRunRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormResolutionRunRepository{db: db, clock: clock}
}

// RecordResolution stores one finished resolution. Failures are logged, not returned.
func (r *GormResolutionRunRepository) RecordResolution(group string, duration time.Duration, resolution *crafting.Resolution, skipCalculation bool) {
	inputs, err := json.Marshal(resolution.InputStacks)
	if err != nil {
		log.Printf("failed to marshal inputs of %s run: %v", group, err)
		return
	}
	remaining, err := json.Marshal(resolution.RemainingStacks)
	if err != nil {
		log.Printf("failed to marshal remaining stacks of %s run: %v", group, err)
		return
	}

	model := &ResolutionRunModel{
		GroupName:       group,
		SkipCalculation: skipCalculation,
		TotalCrafts:     resolution.TotalCrafts(),
		Inputs:          string(inputs),
		Remaining:       string(remaining),
		DurationMs:      duration.Milliseconds(),
		ResolvedAt:      r.clock.Now(),
	}
	if err := r.db.Create(model).Error; err != nil {
		log.Printf("failed to record %s run: %v", group, err)
	}
}

// RecordFailure is a no-op; failed runs leave no history
func (r *GormResolutionRunRepository) RecordFailure(group string, reason string) {}

// Recent returns the latest runs of a group, newest first
func (r *GormResolutionRunRepository) Recent(ctx context.Context, group string, limit int) ([]planning.RunRecord, error) {
	var models []ResolutionRunModel
	query := r.db.WithContext(ctx).Where("group_name = ?", group).Order("resolved_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	runs := make([]planning.RunRecord, 0, len(models))
	for _, model := range models {
		run := planning.RunRecord{
			Group:           model.GroupName,
			SkipCalculation: model.SkipCalculation,
			TotalCrafts:     model.TotalCrafts,
			Duration:        time.Duration(model.DurationMs) * time.Millisecond,
			ResolvedAt:      model.ResolvedAt,
		}
		if err := unmarshalColumn(model.Inputs, &run.Inputs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal inputs of run %d: %w", model.ID, err)
		}
		if err := unmarshalColumn(model.Remaining, &run.Remaining); err != nil {
			return nil, fmt.Errorf("failed to unmarshal remaining stacks of run %d: %w", model.ID, err)
		}
		runs = append(runs, run)
	}

	return runs, nil
}
