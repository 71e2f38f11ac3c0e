package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/xonecas/pydocstring"
	"github.com/xonecas/pydocstring/internal/highlight"
)

var outputFormat string

var factsCmd = &cobra.Command{
	Use:   "facts [flags] <source-or-path> [row] [column]",
	Short: "Print the facts extracted for the enclosing declaration",
	Long: `Print the declaration kind, span and extracted facts (parameters,
returns, yields, raises, attributes) as YAML or JSON, for editors that lay
out docstrings themselves.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runFacts,
}

func init() {
	addSourceFlags(factsCmd)
	factsCmd.Flags().StringVarP(&outputFormat, "output", "o", "yaml", "Output format: yaml or json")
	factsCmd.Flags().BoolVar(&color, "color", false, "Highlight the output")
}

func runFacts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	source, err := readSource(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	opts, err := sourceOptions(cmd, cfg, source, args[1:])
	if err != nil {
		return err
	}

	facts, err := pydocstring.Ingest(source, opts...)
	if err != nil {
		return err
	}

	out, err := marshalFacts(facts, outputFormat)
	if err != nil {
		return err
	}
	if color || cfg.Output.Color {
		out = highlight.Highlight(out, outputFormat, cfg.Output.ThemeOrDefault())
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func marshalFacts(facts *pydocstring.Facts, format string) (string, error) {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(facts)
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
		return string(data[:len(data)-1]), nil
	case "json":
		data, err := json.MarshalIndent(facts, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode json: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("unknown output format %q (use yaml or json)", format)
}
