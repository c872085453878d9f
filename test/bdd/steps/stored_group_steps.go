package steps

import (
	"context"
	"fmt"
	"io"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/craftchain-go/internal/adapters/persistence"
	"github.com/andrescamacho/craftchain-go/internal/application/logging"
	"github.com/andrescamacho/craftchain-go/internal/application/mediator"
	"github.com/andrescamacho/craftchain-go/internal/application/planning"
	"github.com/andrescamacho/craftchain-go/internal/application/planning/commands"
	"github.com/andrescamacho/craftchain-go/internal/application/planning/queries"
	"github.com/andrescamacho/craftchain-go/internal/application/setup"
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
	"github.com/andrescamacho/craftchain-go/test/helpers"
)

// storedGroupContext drives the planning handlers through a mediator backed by the shared test database
type storedGroupContext struct {
	ctx      *sharedPlanningContext
	mediator mediator.Mediator
	imported *commands.ImportGroupResponse
	runs     []planning.RunRecord
}

func (sc *storedGroupContext) setup() error {
	if err := helpers.TruncateAllTables(); err != nil {
		return err
	}
	db := helpers.SharedTestDB

	runs := persistence.NewGormResolutionRunRepository(db, nil)
	registry := setup.NewHandlerRegistry(persistence.NewGormGroupRepository(db), runs, runs, nil)

	logger := logging.NewStdLogger(io.Discard, logging.LevelError, "text")
	m, err := registry.CreateConfiguredMediator(logging.Middleware(logger))
	if err != nil {
		return err
	}

	sc.mediator = m
	sc.imported = nil
	sc.runs = nil
	return nil
}

// Given steps

func (sc *storedGroupContext) theGroupIsImported() error {
	resp, err := sc.mediator.Send(context.Background(), &commands.ImportGroupCommand{Document: sc.ctx.doc})
	if err != nil {
		return fmt.Errorf("failed to import group: %w", err)
	}
	sc.imported = resp.(*commands.ImportGroupResponse)
	return nil
}

func (sc *storedGroupContext) theRequestOfSlotIsChangedTo(slot, requested int) error {
	for i := range sc.ctx.doc.Entries {
		if int(sc.ctx.doc.Entries[i].Slot) == slot {
			sc.ctx.doc.Entries[i].Meta.RequestedAmount = requested
			return nil
		}
	}
	return fmt.Errorf("slot %d is not pinned", slot)
}

// When steps

func (sc *storedGroupContext) iResolveTheStoredGroup(name string) error {
	resp, err := sc.mediator.Send(context.Background(), &queries.ResolveGroupQuery{Name: name})
	sc.ctx.err = err
	sc.ctx.report = nil
	if err == nil {
		sc.ctx.report = resp.(*planning.ResolutionReport)
	}
	return nil
}

func (sc *storedGroupContext) iDeleteTheStoredGroup(name string) error {
	_, err := sc.mediator.Send(context.Background(), &commands.DeleteGroupCommand{Name: name})
	return err
}

func (sc *storedGroupContext) iListTheRunsOf(name string) error {
	resp, err := sc.mediator.Send(context.Background(), &queries.ListRunsQuery{Group: name})
	if err != nil {
		return err
	}
	sc.runs = resp.(*queries.ListRunsResponse).Runs
	return nil
}

// Then steps

func (sc *storedGroupContext) theImportShouldReport(outcome string) error {
	if sc.imported == nil {
		return fmt.Errorf("no group was imported")
	}
	replaced := outcome == "replaced"
	if sc.imported.Replaced != replaced {
		return fmt.Errorf("expected import to be %s, got replaced=%t", outcome, sc.imported.Replaced)
	}
	return nil
}

func (sc *storedGroupContext) theGroupShouldNotBeFound() error {
	if sc.ctx.err == nil {
		return fmt.Errorf("expected group not found, but resolution succeeded")
	}
	if !bookmark.IsNotFound(sc.ctx.err) {
		return fmt.Errorf("expected group not found, got %v", sc.ctx.err)
	}
	return nil
}

func (sc *storedGroupContext) thereShouldBeRecordedRuns(count int) error {
	if len(sc.runs) != count {
		return fmt.Errorf("expected %d recorded runs, got %d", count, len(sc.runs))
	}
	return nil
}

func (sc *storedGroupContext) theLatestRunShouldHaveCrafts(crafts int) error {
	if len(sc.runs) == 0 {
		return fmt.Errorf("no recorded runs")
	}
	if sc.runs[0].TotalCrafts != crafts {
		return fmt.Errorf("expected latest run with %d crafts, got %d", crafts, sc.runs[0].TotalCrafts)
	}
	return nil
}

func InitializeStoredGroupScenario(ctx *godog.ScenarioContext) {
	sc := &storedGroupContext{ctx: shared}

	ctx.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		return ctx, sc.setup()
	})

	// Given steps
	ctx.Step(`^the group is imported$`, sc.theGroupIsImported)
	ctx.Step(`^the request of slot (\d+) is changed to (-?\d+)$`, sc.theRequestOfSlotIsChangedTo)

	// When steps
	ctx.Step(`^I import the group again$`, sc.theGroupIsImported)
	ctx.Step(`^I resolve the stored group "([^"]*)"$`, sc.iResolveTheStoredGroup)
	ctx.Step(`^I delete the stored group "([^"]*)"$`, sc.iDeleteTheStoredGroup)
	ctx.Step(`^I list the recorded runs of "([^"]*)"$`, sc.iListTheRunsOf)

	// Then steps
	ctx.Step(`^the import should report the group as (created|replaced)$`, sc.theImportShouldReport)
	ctx.Step(`^the group should not be found$`, sc.theGroupShouldNotBeFound)
	ctx.Step(`^there should be (\d+) recorded runs?$`, sc.thereShouldBeRecordedRuns)
	ctx.Step(`^the latest run should have (\d+) crafts$`, sc.theLatestRunShouldHaveCrafts)
}
