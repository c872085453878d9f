package cli

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/craftchain-go/internal/application/planning"
	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
)

// ReportFormatter renders a resolution report as a step tree followed by the
// slot table and the input, output and leftover totals
type ReportFormatter struct {
	useColors bool
}

// NewReportFormatter creates a new report formatter
func NewReportFormatter(useColors bool) *ReportFormatter {
	return &ReportFormatter{useColors: useColors}
}

// Format renders the whole report
func (f *ReportFormatter) Format(report *planning.ResolutionReport) string {
	if report == nil {
		return "(empty report)\n"
	}

	var builder strings.Builder

	mode := ""
	if report.SkipCalculation {
		mode = " (mapping only)"
	}
	fmt.Fprintf(&builder, "Group %s: %d crafts%s\n\n", report.Group, report.TotalCrafts, mode)

	f.formatSteps(&builder, report.Steps)
	f.formatSlots(&builder, report.Slots)

	f.formatStacks(&builder, "Inputs", report.Inputs, "\033[36m")
	f.formatStacks(&builder, "Outputs", report.Outputs, "\033[32m")
	f.formatStacks(&builder, "Remaining", report.Remaining, "\033[33m")

	return builder.String()
}

func (f *ReportFormatter) formatSteps(builder *strings.Builder, steps []crafting.CraftStep) {
	builder.WriteString("Steps:\n")
	if len(steps) == 0 {
		builder.WriteString("  (nothing to craft)\n\n")
		return
	}

	for i, step := range steps {
		isLast := i == len(steps)-1
		branch, childPrefix := "├── ", "│   "
		if isLast {
			branch, childPrefix = "└── ", "    "
		}

		fmt.Fprintf(builder, "%s%s%s%s x%d\n", branch, f.color("\033[1m"), step.RecipeID, f.colorReset(), step.Crafts)

		lines := make([]string, 0, 3)
		if len(step.ChainInputs) > 0 {
			lines = append(lines, "in:   "+joinStacks(step.ChainInputs))
		}
		if len(step.ChainOutputs) > 0 {
			lines = append(lines, "out:  "+joinStacks(step.ChainOutputs))
		}
		if len(step.Remainders) > 0 {
			lines = append(lines, "left: "+joinStacks(step.Remainders))
		}
		for j, line := range lines {
			leaf := "├── "
			if j == len(lines)-1 {
				leaf = "└── "
			}
			fmt.Fprintf(builder, "%s%s%s\n", childPrefix, leaf, line)
		}
	}
	builder.WriteString("\n")
}

func (f *ReportFormatter) formatSlots(builder *strings.Builder, slots []planning.SlotReport) {
	if len(slots) == 0 {
		return
	}

	builder.WriteString("Slots:\n")
	for _, slot := range slots {
		flags := make([]string, 0, 4)
		if slot.Crafts > 0 {
			flags = append(flags, fmt.Sprintf("crafts=%d", slot.Crafts))
		}
		if slot.Remainder != 0 {
			flags = append(flags, fmt.Sprintf("remainder=%d", slot.Remainder))
		}
		if slot.Requested != 0 {
			flags = append(flags, fmt.Sprintf("requested=%d", slot.Requested))
		}
		if slot.Input {
			flags = append(flags, "input")
		}
		if slot.Conflicting {
			flags = append(flags, f.color("\033[31m")+"conflict"+f.colorReset())
		}

		recipe := "-"
		if slot.RecipeID != "" {
			recipe = string(slot.RecipeID)
		}

		fmt.Fprintf(builder, "  %3d  %-8s %-16s %s", slot.Slot, slot.Role, recipe, slot.Item)
		if len(flags) > 0 {
			fmt.Fprintf(builder, "  [%s]", strings.Join(flags, " "))
		}
		builder.WriteString("\n")
	}
	builder.WriteString("\n")
}

func (f *ReportFormatter) formatStacks(builder *strings.Builder, title string, stacks []crafting.Stack, color string) {
	fmt.Fprintf(builder, "%s:\n", title)
	if len(stacks) == 0 {
		builder.WriteString("  (none)\n")
		return
	}
	for _, stack := range stacks {
		fmt.Fprintf(builder, "  %s%s%s\n", f.color(color), stack, f.colorReset())
	}
}

func (f *ReportFormatter) color(code string) string {
	if !f.useColors {
		return ""
	}
	return code
}

func (f *ReportFormatter) colorReset() string {
	if !f.useColors {
		return ""
	}
	return "\033[0m"
}

func joinStacks(stacks []crafting.Stack) string {
	parts := make([]string, len(stacks))
	for i, s := range stacks {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}
