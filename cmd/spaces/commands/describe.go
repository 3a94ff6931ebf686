package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tessera-ai/spaces"
	"github.com/tessera-ai/spaces/config"
	"github.com/tessera-ai/spaces/logger"
)

var describeFormat string

// DescribeCmd represents the describe command
var DescribeCmd = &cobra.Command{
	Use:   "describe SPACE",
	Short: "Show the structure of a space",
	Long: `describe - Show the structural queries of a space.

Prints dimensionality, cardinality, and bounds. An absent bound (an
unbounded or empty space) is shown as "-".

Examples:
  spaces describe binary
  spaces describe discrete:6
  spaces describe naturals
  spaces describe ./action-space.yaml
  spaces describe discrete:6 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribeCommand,
}

func init() {
	DescribeCmd.Flags().StringVar(&describeFormat, "format", "", "Output format: table, json, or yaml (default from config)")
}

func runDescribeCommand(cmd *cobra.Command, args []string) error {
	desc, err := loadDescriptor(args[0])
	if err != nil {
		return err
	}

	sum, err := desc.Summary()
	if err != nil {
		return err
	}

	logger.Logger.Debugw("describing space",
		logger.FieldKind, string(sum.Kind),
		logger.FieldCard, sum.Card.String(),
	)

	switch resolveFormat(describeFormat) {
	case "json":
		return printSummaryJSON(sum)
	case "yaml":
		return printSummaryYAML(sum)
	default:
		return printSummaryTable(sum)
	}
}

// resolveFormat prefers the flag, then the configured default.
func resolveFormat(flag string) string {
	if flag != "" {
		return flag
	}
	if cfg, err := config.Load(); err == nil {
		return cfg.Output.Format
	}
	return config.DefaultOutputFormat
}

func printSummaryTable(sum spaces.Summary) error {
	return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Field", "Value"},
		{"Kind", string(sum.Kind)},
		{"Dim", fmt.Sprintf("%d", sum.Dim)},
		{"Card", sum.Card.String()},
		{"Inf", orDash(sum.Inf)},
		{"Sup", orDash(sum.Sup)},
	}).Render()
}

func printSummaryJSON(sum spaces.Summary) error {
	data, err := json.MarshalIndent(summaryDoc(sum), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printSummaryYAML(sum spaces.Summary) error {
	data, err := yaml.Marshal(summaryDoc(sum))
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

// summaryDoc flattens a Summary for serialization-friendly output.
func summaryDoc(sum spaces.Summary) map[string]interface{} {
	doc := map[string]interface{}{
		"kind": string(sum.Kind),
		"dim":  int(sum.Dim),
		"card": sum.Card.String(),
	}
	if sum.Inf != "" {
		doc["inf"] = sum.Inf
	}
	if sum.Sup != "" {
		doc["sup"] = sum.Sup
	}
	return doc
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
