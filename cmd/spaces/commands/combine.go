package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tessera-ai/spaces"
	"github.com/tessera-ai/spaces/errors"
	"github.com/tessera-ai/spaces/logger"
)

// CombineCmd represents the combine command
var CombineCmd = &cobra.Command{
	Use:   "combine union|intersect SPACE SPACE",
	Short: "Cardinality bookkeeping for unions and intersections",
	Long: `combine - Combine two spaces and report the resulting cardinality.

Union models a disjoint sum: finite counts add, and any infinite operand
makes the result infinite. Intersection is bookkeeping only: an infinite
operand defers to the other side.

Examples:
  spaces combine union discrete:3 discrete:4
  spaces combine union discrete:3 naturals
  spaces combine intersect discrete:3 naturals`,
	Args: cobra.ExactArgs(3),
	RunE: runCombineCommand,
}

func runCombineCommand(cmd *cobra.Command, args []string) error {
	op := args[0]
	if op != "union" && op != "intersect" {
		return errors.Newf("operation must be union or intersect, got %q", op)
	}

	left, err := loadDescriptor(args[1])
	if err != nil {
		return err
	}
	right, err := loadDescriptor(args[2])
	if err != nil {
		return err
	}

	leftSum, err := left.Summary()
	if err != nil {
		return err
	}
	rightSum, err := right.Summary()
	if err != nil {
		return err
	}

	var result spaces.Card
	if op == "union" {
		result = leftSum.Card.Union(rightSum.Card)
	} else {
		result = leftSum.Card.Intersect(rightSum.Card)
	}

	logger.Logger.Debugw("combined spaces",
		"op", op,
		logger.FieldCard, result.String(),
	)

	return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Operand", "Kind", "Card"},
		{"left", string(leftSum.Kind), leftSum.Card.String()},
		{"right", string(rightSum.Kind), rightSum.Card.String()},
		{op, "", result.String()},
	}).Render()
}
