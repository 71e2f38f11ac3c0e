// Package locate finds the declaration (module, class or function) that
// encloses a cursor position in Python source text.
package locate

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/xonecas/pydocstring/internal/treesitter"
)

var (
	// ErrInvalidPosition is returned for positions outside the source text.
	ErrInvalidPosition = errors.New("position outside source")
	// ErrNoScope is returned when no declaration or file scope encloses the position.
	ErrNoScope = errors.New("no enclosing scope")
)

// Kind classifies a declaration.
type Kind int

const (
	KindModule Kind = iota
	KindClass
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindClass:
		return "class"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name in JSON and YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Position is an editor cursor: Row is 1-indexed, Column is 0-indexed and
// counts characters, not bytes.
type Position struct {
	Row    int `json:"row" yaml:"row"`
	Column int `json:"column" yaml:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Contains reports whether off lies in the span. The end offset is included
// so that a cursor placed right after a declaration's last character still
// belongs to it.
func (s Span) Contains(off int) bool {
	return s.Start <= off && off <= s.End
}

// Declaration is a located declaration. Node is the syntax node extraction
// works from: the module root, a class_definition or a function_definition.
type Declaration struct {
	Kind Kind
	Span Span
	Node *sitter.Node
}

// Locator resolves a cursor position to its enclosing declaration.
type Locator interface {
	Locate(src *treesitter.Source, pos Position) (Declaration, error)
}

// Strategy names a Locator implementation.
type Strategy string

const (
	// StrategyTree walks syntax-tree ancestors of the leaf under the cursor.
	StrategyTree Strategy = "tree"
	// StrategyScan finds declaration headers with regular expressions and
	// delimits their bodies by indentation.
	StrategyScan Strategy = "scan"
)

// Strategies lists the supported strategies.
func Strategies() []Strategy {
	return []Strategy{StrategyTree, StrategyScan}
}

// ParseStrategy resolves a strategy name, case-insensitively. The empty
// string selects StrategyTree.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(name))) {
	case "", StrategyTree:
		return StrategyTree, nil
	case StrategyScan:
		return StrategyScan, nil
	}
	return "", fmt.Errorf("unknown locator strategy %q", name)
}

// New returns the Locator for a strategy.
func New(s Strategy) (Locator, error) {
	switch s {
	case "", StrategyTree:
		return TreeLocator{}, nil
	case StrategyScan:
		return ScanLocator{}, nil
	}
	return nil, fmt.Errorf("unknown locator strategy %q", s)
}

// Offset converts a position to a byte offset into text. Columns past the end
// of a line clamp to the line end.
func Offset(text []byte, pos Position) (int, error) {
	if pos.Row < 1 || pos.Column < 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidPosition, pos)
	}
	lineStart := 0
	for row := 1; row < pos.Row; row++ {
		nl := indexByte(text, lineStart, '\n')
		if nl < 0 {
			return 0, fmt.Errorf("%w: %s (source has %d lines)", ErrInvalidPosition, pos, row)
		}
		lineStart = nl + 1
	}
	lineEnd := indexByte(text, lineStart, '\n')
	if lineEnd < 0 {
		lineEnd = len(text)
	}
	off := lineStart
	for col := 0; col < pos.Column && off < lineEnd; col++ {
		_, size := utf8.DecodeRune(text[off:lineEnd])
		off += size
	}
	return off, nil
}

func indexByte(text []byte, from int, c byte) int {
	i := bytes.IndexByte(text[from:], c)
	if i < 0 {
		return -1
	}
	return from + i
}
