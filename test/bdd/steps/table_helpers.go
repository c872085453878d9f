package steps

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
)

// getCellValueFromTable gets a cell value from a table row by column name,
// using the first row as the header
func getCellValueFromTable(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	for i, headerCell := range table.Rows[0].Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}

	return ""
}

func getIntCell(table *godog.Table, row *messages.PickleTableRow, columnName string) (int, error) {
	value := getCellValueFromTable(table, row, columnName)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", columnName, err)
	}
	return n, nil
}

// parseStack reads "item:size"; the size follows the last colon so fluid keys keep theirs
func parseStack(s string) (crafting.Stack, error) {
	s = strings.TrimSpace(s)
	idx := strings.LastIndex(s, ":")
	if idx <= 0 {
		return crafting.Stack{}, fmt.Errorf("invalid stack %q, expected item:size", s)
	}
	size, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return crafting.Stack{}, fmt.Errorf("invalid stack size in %q: %w", s, err)
	}
	return crafting.Stack{Item: s[:idx], Size: size}, nil
}

// parseStackList reads a comma separated list of stacks
func parseStackList(s string) ([]crafting.Stack, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var stacks []crafting.Stack
	for _, part := range strings.Split(s, ",") {
		stack, err := parseStack(part)
		if err != nil {
			return nil, err
		}
		stacks = append(stacks, stack)
	}
	return stacks, nil
}

// parseIngredients reads comma separated ingredient slots, alternatives split by "/"
func parseIngredients(s string) ([][]crafting.Stack, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var slots [][]crafting.Stack
	for _, part := range strings.Split(s, ",") {
		var candidates []crafting.Stack
		for _, alt := range strings.Split(part, "/") {
			stack, err := parseStack(alt)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, stack)
		}
		slots = append(slots, candidates)
	}
	return slots, nil
}

// stacksFromTable reads an | item | size | table
func stacksFromTable(table *godog.Table) ([]crafting.Stack, error) {
	var stacks []crafting.Stack
	for _, row := range table.Rows[1:] {
		size, err := getIntCell(table, row, "size")
		if err != nil {
			return nil, err
		}
		stacks = append(stacks, crafting.Stack{Item: getCellValueFromTable(table, row, "item"), Size: size})
	}
	return stacks, nil
}

func formatStacks(stacks []crafting.Stack) string {
	parts := make([]string, len(stacks))
	for i, s := range stacks {
		parts[i] = fmt.Sprintf("%s:%d", s.Item, s.Size)
	}
	sort.Strings(parts)
	return "[" + strings.Join(parts, ", ") + "]"
}

// sameStacks compares item and size, ignoring order
func sameStacks(expected, actual []crafting.Stack) error {
	if formatStacks(expected) != formatStacks(actual) {
		return fmt.Errorf("expected stacks %s, got %s", formatStacks(expected), formatStacks(actual))
	}
	return nil
}

// includesStacks checks every expected stack appears with the same size
func includesStacks(expected, actual []crafting.Stack) error {
	for _, want := range expected {
		found := false
		for _, got := range actual {
			if got.Item == want.Item && got.Size == want.Size {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("expected %s:%d among %s", want.Item, want.Size, formatStacks(actual))
		}
	}
	return nil
}
