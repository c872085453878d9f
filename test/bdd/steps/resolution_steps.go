package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/craftchain-go/internal/application/planning"
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
	"github.com/andrescamacho/craftchain-go/internal/domain/catalog"
	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
)

type resolutionContext struct {
	ctx *sharedPlanningContext
}

// Given steps

func (rc *resolutionContext) aGroupNamed(name string) error {
	rc.ctx.doc.Name = name
	return nil
}

func (rc *resolutionContext) theFollowingRecipes(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		ingredients, err := parseIngredients(getCellValueFromTable(table, row, "ingredients"))
		if err != nil {
			return err
		}
		results, err := parseStackList(getCellValueFromTable(table, row, "results"))
		if err != nil {
			return err
		}
		rc.ctx.doc.Recipes = append(rc.ctx.doc.Recipes, crafting.Recipe{
			ID:          crafting.RecipeID(getCellValueFromTable(table, row, "recipe")),
			Ingredients: ingredients,
			Results:     results,
		})
	}
	return nil
}

func (rc *resolutionContext) theFollowingFluidContainers(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		amount, err := getIntCell(table, row, "amount")
		if err != nil {
			return err
		}
		rc.ctx.doc.Items = append(rc.ctx.doc.Items, catalog.ItemDefinition{
			Item:   getCellValueFromTable(table, row, "item"),
			Fluid:  getCellValueFromTable(table, row, "fluid"),
			Amount: amount,
			Empty:  getCellValueFromTable(table, row, "empty"),
		})
	}
	return nil
}

// theFollowingPinnedEntries reads | slot | item | size | role | recipe | factor | requested |.
// role is input, output or resource; factor defaults to size.
func (rc *resolutionContext) theFollowingPinnedEntries(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		slot, err := getIntCell(table, row, "slot")
		if err != nil {
			return err
		}
		size, err := getIntCell(table, row, "size")
		if err != nil {
			return err
		}
		factor, err := getIntCell(table, row, "factor")
		if err != nil {
			return err
		}
		if factor == 0 {
			factor = size
		}
		requested, err := getIntCell(table, row, "requested")
		if err != nil {
			return err
		}

		meta := crafting.EntryMeta{RequestedAmount: requested}
		switch role := getCellValueFromTable(table, row, "role"); role {
		case planning.RoleInput:
			meta.Ingredient = true
			meta.RecipeID = crafting.RecipeID(getCellValueFromTable(table, row, "recipe"))
			meta.Factor = factor
		case planning.RoleOutput:
			meta.RecipeID = crafting.RecipeID(getCellValueFromTable(table, row, "recipe"))
			meta.Factor = factor
		case planning.RoleResource:
		default:
			return fmt.Errorf("unknown role %q", role)
		}

		rc.ctx.doc.Entries = append(rc.ctx.doc.Entries, crafting.PinnedEntry{
			Slot:  crafting.SlotID(slot),
			Stack: crafting.Stack{Item: getCellValueFromTable(table, row, "item"), Size: size},
			Meta:  meta,
		})
	}
	return nil
}

// When steps

func (rc *resolutionContext) iResolveTheGroup() error {
	rc.resolve(false)
	return nil
}

func (rc *resolutionContext) iResolveTheGroupWithoutCalculation() error {
	rc.resolve(true)
	return nil
}

func (rc *resolutionContext) resolve(skipCalculation bool) {
	resolver := planning.NewResolver(nil, nil)
	rc.ctx.report, rc.ctx.err = resolver.Resolve(context.Background(), rc.ctx.doc, skipCalculation)
}

// Then steps

func (rc *resolutionContext) theResolutionShouldSucceed() error {
	if rc.ctx.err != nil {
		return fmt.Errorf("expected resolution to succeed, got error: %v", rc.ctx.err)
	}
	if rc.ctx.report == nil {
		return fmt.Errorf("expected a resolution report, got nil")
	}
	return nil
}

func (rc *resolutionContext) theResolutionShouldFailWith(reason string) error {
	if rc.ctx.err == nil {
		return fmt.Errorf("expected resolution to fail with %q, but it succeeded", reason)
	}
	var invalid *bookmark.ErrInvalidDocument
	if errors.As(rc.ctx.err, &invalid) && invalid.Reason == reason {
		return nil
	}
	return fmt.Errorf("expected failure %q, got %v", reason, rc.ctx.err)
}

func (rc *resolutionContext) recipeShouldBeCraftedTimes(recipe string, crafts int) error {
	if err := rc.theResolutionShouldSucceed(); err != nil {
		return err
	}
	for _, step := range rc.ctx.report.Steps {
		if step.RecipeID == crafting.RecipeID(recipe) {
			if step.Crafts != crafts {
				return fmt.Errorf("expected %s to be crafted %d times, got %d", recipe, crafts, step.Crafts)
			}
			return nil
		}
	}
	if crafts == 0 {
		return nil
	}
	return fmt.Errorf("recipe %s has no craft step", recipe)
}

func (rc *resolutionContext) theTotalCraftsShouldBe(total int) error {
	if err := rc.theResolutionShouldSucceed(); err != nil {
		return err
	}
	if rc.ctx.report.TotalCrafts != total {
		return fmt.Errorf("expected %d total crafts, got %d", total, rc.ctx.report.TotalCrafts)
	}
	return nil
}

func (rc *resolutionContext) stacksShouldBe(kind string, table *godog.Table) error {
	actual, err := rc.stacksOf(kind)
	if err != nil {
		return err
	}
	expected, err := stacksFromTable(table)
	if err != nil {
		return err
	}
	return sameStacks(expected, actual)
}

func (rc *resolutionContext) stacksShouldInclude(kind string, table *godog.Table) error {
	actual, err := rc.stacksOf(kind)
	if err != nil {
		return err
	}
	expected, err := stacksFromTable(table)
	if err != nil {
		return err
	}
	return includesStacks(expected, actual)
}

func (rc *resolutionContext) thereShouldBeNo(kind string) error {
	actual, err := rc.stacksOf(kind)
	if err != nil {
		return err
	}
	if len(actual) != 0 {
		return fmt.Errorf("expected no %s, got %s", kind, formatStacks(actual))
	}
	return nil
}

func (rc *resolutionContext) stacksOf(kind string) ([]crafting.Stack, error) {
	if err := rc.theResolutionShouldSucceed(); err != nil {
		return nil, err
	}
	switch kind {
	case "inputs":
		return rc.ctx.report.Inputs, nil
	case "outputs":
		return rc.ctx.report.Outputs, nil
	case "leftovers":
		return rc.ctx.report.Remaining, nil
	}
	return nil, fmt.Errorf("unknown stack kind %q", kind)
}

func (rc *resolutionContext) slot(id int) (*planning.SlotReport, error) {
	if err := rc.theResolutionShouldSucceed(); err != nil {
		return nil, err
	}
	for i := range rc.ctx.report.Slots {
		if rc.ctx.report.Slots[i].Slot == crafting.SlotID(id) {
			return &rc.ctx.report.Slots[i], nil
		}
	}
	return nil, fmt.Errorf("slot %d not in report", id)
}

func (rc *resolutionContext) slotShouldShow(id int, size int, item string) error {
	s, err := rc.slot(id)
	if err != nil {
		return err
	}
	if s.Item.Item != item || s.Item.Size != size {
		return fmt.Errorf("expected slot %d to show %d %s, got %d %s", id, size, item, s.Item.Size, s.Item.Item)
	}
	return nil
}

func (rc *resolutionContext) slotShouldHaveRemainder(id int, want int) error {
	s, err := rc.slot(id)
	if err != nil {
		return err
	}
	if s.Remainder != want {
		return fmt.Errorf("expected slot %d remainder %d, got %d", id, want, s.Remainder)
	}
	return nil
}

func (rc *resolutionContext) slotShouldBeConflicting(id int) error {
	s, err := rc.slot(id)
	if err != nil {
		return err
	}
	if !s.Conflicting {
		return fmt.Errorf("expected slot %d to be conflicting", id)
	}
	return nil
}

func (rc *resolutionContext) slotShouldNotBeConflicting(id int) error {
	s, err := rc.slot(id)
	if err != nil {
		return err
	}
	if s.Conflicting {
		return fmt.Errorf("expected slot %d not to be conflicting", id)
	}
	return nil
}

func (rc *resolutionContext) slotShouldBeAnInput(id int) error {
	s, err := rc.slot(id)
	if err != nil {
		return err
	}
	if !s.Input {
		return fmt.Errorf("expected slot %d to be an input", id)
	}
	return nil
}

func InitializeResolutionScenario(ctx *godog.ScenarioContext) {
	rc := &resolutionContext{ctx: shared}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		shared.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a bookmark group named "([^"]*)"$`, rc.aGroupNamed)
	ctx.Step(`^the following recipes:$`, rc.theFollowingRecipes)
	ctx.Step(`^the following fluid containers:$`, rc.theFollowingFluidContainers)
	ctx.Step(`^the following pinned entries:$`, rc.theFollowingPinnedEntries)

	// When steps
	ctx.Step(`^I resolve the group$`, rc.iResolveTheGroup)
	ctx.Step(`^I resolve the group without calculation$`, rc.iResolveTheGroupWithoutCalculation)

	// Then steps
	ctx.Step(`^the resolution should succeed$`, rc.theResolutionShouldSucceed)
	ctx.Step(`^the resolution should fail with "([^"]*)"$`, rc.theResolutionShouldFailWith)
	ctx.Step(`^recipe "([^"]*)" should be crafted (\d+) times?$`, rc.recipeShouldBeCraftedTimes)
	ctx.Step(`^the total crafts should be (\d+)$`, rc.theTotalCraftsShouldBe)
	ctx.Step(`^the (inputs|outputs|leftovers) should be:$`, rc.stacksShouldBe)
	ctx.Step(`^the (inputs|outputs|leftovers) should include:$`, rc.stacksShouldInclude)
	ctx.Step(`^there should be no (inputs|outputs|leftovers)$`, rc.thereShouldBeNo)
	ctx.Step(`^slot (\d+) should show (\d+) "([^"]*)"$`, rc.slotShouldShow)
	ctx.Step(`^slot (\d+) should have a remainder of (-?\d+)$`, rc.slotShouldHaveRemainder)
	ctx.Step(`^slot (\d+) should be conflicting$`, rc.slotShouldBeConflicting)
	ctx.Step(`^slot (\d+) should not be conflicting$`, rc.slotShouldNotBeConflicting)
	ctx.Step(`^slot (\d+) should be an input$`, rc.slotShouldBeAnInput)
}
