package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessera-ai/spaces"
	"github.com/tessera-ai/spaces/errors"
	"github.com/tessera-ai/spaces/logger"
)

// EnumCmd represents the enum command
var EnumCmd = &cobra.Command{
	Use:   "enum SPACE",
	Short: "Enumerate every value of a finite space",
	Long: `enum - Enumerate every member of a finite space, ascending.

Only finite spaces can be enumerated; naturals is refused.

Examples:
  spaces enum binary
  spaces enum discrete:6`,
	Args: cobra.ExactArgs(1),
	RunE: runEnumCommand,
}

func runEnumCommand(cmd *cobra.Command, args []string) error {
	desc, err := loadDescriptor(args[0])
	if err != nil {
		return err
	}
	if err := desc.Validate(); err != nil {
		return err
	}

	logger.Logger.Debugw("enumerating space", logger.FieldKind, string(desc.Kind))

	switch desc.Kind {
	case spaces.KindBinary:
		printValues(desc.Binary())
	case spaces.KindDiscrete:
		printValues(desc.Discrete())
	case spaces.KindNaturals:
		return errors.Newf("naturals is not enumerable: cardinality is %s", spaces.Infinite)
	}
	return nil
}

func printValues[V any](s spaces.FiniteSpace[V]) {
	for v := range s.Values() {
		fmt.Println(v)
	}
}
