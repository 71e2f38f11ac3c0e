package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xonecas/pydocstring"
	"github.com/xonecas/pydocstring/internal/config"
	"github.com/xonecas/pydocstring/internal/highlight"
	"github.com/xonecas/pydocstring/internal/locate"
)

var (
	formatter    string
	color        bool
	autocomplete bool
	strategy     string
)

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&autocomplete, "autocomplete", "a", false, "Drop the three characters before the cursor (an opening delimiter)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Declaration locator: tree or scan")
}

func runGenerate(cmd *cobra.Command, args []string) error {
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

	style := cfg.Formatter
	if cmd.Flags().Changed("formatter") {
		style = formatter
	}
	opts = append(opts, pydocstring.WithStyle(style))

	text, err := pydocstring.Generate(source, opts...)
	if err != nil {
		return err
	}

	delim := cfg.Output.DelimiterOrDefault()
	out := delim + text + delim
	if color || cfg.Output.Color {
		theme := cfg.Output.ThemeOrDefault()
		if !highlight.Known(theme) {
			log.Warn().Str("theme", theme).Msg("unknown theme, using chroma fallback")
		}
		out = highlight.Highlight(out, "python", theme)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// sourceOptions builds the position, autocomplete and strategy options shared
// by the generate and facts commands.
func sourceOptions(cmd *cobra.Command, cfg *config.Config, source string, posArgs []string) ([]pydocstring.Option, error) {
	row, column, err := parsePosition(source, posArgs)
	if err != nil {
		return nil, err
	}

	strat := cfg.LocatorStrategy()
	if cmd.Flags().Changed("strategy") {
		if strat, err = locate.ParseStrategy(strategy); err != nil {
			return nil, err
		}
	}

	log.Debug().Int("row", row).Int("column", column).Str("strategy", string(strat)).Msg("cursor resolved")
	return []pydocstring.Option{
		pydocstring.WithPosition(row, column),
		pydocstring.WithAutocomplete(autocomplete),
		pydocstring.WithStrategy(strat),
		pydocstring.WithLogger(log.Logger),
	}, nil
}

// readSource returns the text named by arg: standard input for "-", the
// contents of the file at arg if one exists, and arg itself otherwise.
func readSource(arg string, stdin io.Reader) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	if info, err := os.Stat(arg); err == nil && info.Mode().IsRegular() {
		//nolint:gosec // G304: path supplied by the user on the command line
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", err
		}
		log.Debug().Str("path", arg).Int("bytes", len(data)).Msg("source read from file")
		return string(data), nil
	}
	return arg, nil
}

// parsePosition reads an optional row and column. A missing column means
// the end of the row; a missing row means the end of the last non-blank
// line.
func parsePosition(source string, args []string) (int, int, error) {
	lines := strings.Split(source, "\n")
	if len(args) == 0 {
		row := len(lines)
		for row > 1 && strings.TrimSpace(lines[row-1]) == "" {
			row--
		}
		return row, lineWidth(lines[row-1]), nil
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row %q: %w", args[0], err)
	}
	if len(args) > 1 {
		column, err := strconv.Atoi(args[1])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid column %q: %w", args[1], err)
		}
		return row, column, nil
	}
	if row < 1 || row > len(lines) {
		// Reported by the generator as an invalid position.
		return row, 0, nil
	}
	return row, lineWidth(lines[row-1]), nil
}

func lineWidth(line string) int {
	return utf8.RuneCountInString(strings.TrimRight(line, "\r"))
}
