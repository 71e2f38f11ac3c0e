// Package pydocstring generates skeleton docstrings for Python declarations.
//
// Given source text and a cursor position it finds the enclosing function,
// class or module, extracts its parameters, return and yield expressions,
// raised exceptions and attribute assignments, and lays them out in the
// Google, Numpy or reST style.
//
// # Basic Usage
//
//	text, err := pydocstring.Generate(source,
//	    pydocstring.WithPosition(2, 4),
//	    pydocstring.WithStyle("numpy"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("\"\"\"%s\"\"\"\n", text)
//
// The returned text carries no delimiters and is not inserted into the
// source; embedding it is up to the caller.
package pydocstring

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/xonecas/pydocstring/internal/format"
	"github.com/xonecas/pydocstring/internal/ingest"
	"github.com/xonecas/pydocstring/internal/locate"
	"github.com/xonecas/pydocstring/internal/treesitter"
)

// Re-exported so callers need not import internal packages.
type (
	// Position is a cursor: Row is 1-indexed, Column is 0-indexed in characters.
	Position = locate.Position

	// Kind classifies a declaration as module, class or function.
	Kind = locate.Kind

	// Strategy selects how the enclosing declaration is found.
	Strategy = locate.Strategy

	// Details is the fact set of one declaration.
	Details = ingest.Details

	FunctionDetails = ingest.FunctionDetails
	ClassDetails    = ingest.ClassDetails
	ModuleDetails   = ingest.ModuleDetails
)

const (
	KindModule   = locate.KindModule
	KindClass    = locate.KindClass
	KindFunction = locate.KindFunction

	StrategyTree = locate.StrategyTree
	StrategyScan = locate.StrategyScan
)

// DefaultStyle is used when no style is given.
const DefaultStyle = string(format.StyleGoogle)

// autocompleteWidth is the length of the opening delimiter an editor has
// already typed when it asks for a docstring.
const autocompleteWidth = 3

type options struct {
	position     Position
	style        string
	autocomplete bool
	strategy     Strategy
	logger       zerolog.Logger
}

// Option configures Generate and Ingest.
type Option func(*options)

// WithPosition sets the cursor. Default is row 1, column 0.
func WithPosition(row, column int) Option {
	return func(o *options) {
		o.position = Position{Row: row, Column: column}
	}
}

// WithStyle selects the docstring style by name, case-insensitively.
// Default is "google".
func WithStyle(style string) Option {
	return func(o *options) {
		o.style = style
	}
}

// WithAutocomplete removes the three characters before the cursor, normally
// an opening delimiter typed by the editor, before locating the declaration.
func WithAutocomplete(enabled bool) Option {
	return func(o *options) {
		o.autocomplete = enabled
	}
}

// WithStrategy selects the locator strategy. Default is StrategyTree.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithLogger sets the logger that receives debug events. Default is a
// disabled logger, so nothing is written unless the caller opts in.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		position: Position{Row: 1, Column: 0},
		style:    DefaultStyle,
		strategy: StrategyTree,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Styles lists the supported style names.
func Styles() []string {
	styles := format.Styles()
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = string(s)
	}
	return names
}

// Facts is the located declaration and what was extracted from it.
type Facts struct {
	Kind     Kind        `json:"kind" yaml:"kind"`
	Position Position    `json:"position" yaml:"position"`
	Span     locate.Span `json:"span" yaml:"span"`
	Details  Details     `json:"details" yaml:"details"`
}

// Generate returns the docstring body for the declaration enclosing the
// configured position. The style is resolved before any parsing.
func Generate(source string, opts ...Option) (string, error) {
	o := newOptions(opts)

	style, tmpl, err := format.Lookup(o.style)
	if err != nil {
		return "", &InvalidFormatterError{Style: o.style, Err: err}
	}

	facts, err := ingestSource(source, o)
	if err != nil {
		return "", err
	}

	text, err := format.Render(facts.Details, tmpl)
	if err != nil {
		return "", &FailedToGenerateError{Position: o.position, Err: err}
	}
	o.logger.Debug().
		Str("style", string(style)).
		Stringer("kind", facts.Kind).
		Int("length", len(text)).
		Msg("docstring rendered")
	return text, nil
}

// Ingest returns the facts of the declaration enclosing the configured
// position without rendering them. The style option is ignored.
func Ingest(source string, opts ...Option) (*Facts, error) {
	return ingestSource(source, newOptions(opts))
}

func ingestSource(source string, o *options) (*Facts, error) {
	loc, err := locate.New(o.strategy)
	if err != nil {
		return nil, &FailedToGenerateError{Position: o.position, Err: err}
	}

	text, pos, err := prepare([]byte(source), o.position, o.autocomplete)
	if err != nil {
		return nil, &FailedToGenerateError{Position: o.position, Err: err}
	}

	src, err := treesitter.Parse(text)
	if err != nil {
		return nil, &FailedToGenerateError{Position: pos, Err: err}
	}
	defer src.Close()

	decl, err := loc.Locate(src, pos)
	if err != nil {
		return nil, &FailedToGenerateError{Position: pos, Err: err}
	}
	o.logger.Debug().
		Str("strategy", string(o.strategy)).
		Stringer("position", pos).
		Stringer("kind", decl.Kind).
		Int("start", decl.Span.Start).
		Int("end", decl.Span.End).
		Msg("declaration located")

	details, err := ingest.Extract(src, decl)
	if err != nil {
		if errors.Is(err, ingest.ErrShape) {
			return nil, &ExtractionError{Kind: decl.Kind, Err: err}
		}
		return nil, &FailedToGenerateError{Position: pos, Err: err}
	}
	return &Facts{Kind: decl.Kind, Position: pos, Span: decl.Span, Details: details}, nil
}

// prepare applies the autocomplete adjustment. When the cursor has fewer
// than three characters before it on its line, the text is left unchanged.
func prepare(text []byte, pos Position, autocomplete bool) ([]byte, Position, error) {
	if !autocomplete || pos.Column < autocompleteWidth {
		return text, pos, nil
	}
	end, err := locate.Offset(text, pos)
	if err != nil {
		return nil, pos, err
	}
	shifted := Position{Row: pos.Row, Column: pos.Column - autocompleteWidth}
	start, err := locate.Offset(text, shifted)
	if err != nil {
		return nil, pos, err
	}
	if start == end {
		return text, pos, nil
	}
	out := make([]byte, 0, len(text)-(end-start))
	out = append(out, text[:start]...)
	out = append(out, text[end:]...)
	return out, shifted, nil
}
