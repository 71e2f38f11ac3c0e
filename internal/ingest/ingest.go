// Package ingest extracts the structural facts of a located declaration:
// parameters, return and yield expressions, raised exceptions and attribute
// assignments.
package ingest

import (
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/xonecas/pydocstring/internal/locate"
	"github.com/xonecas/pydocstring/internal/treesitter"
)

// ErrShape is returned when a declaration's node does not match its kind.
var ErrShape = errors.New("declaration node does not match its kind")

// Extract returns the facts of decl.
func Extract(src *treesitter.Source, decl locate.Declaration) (Details, error) {
	if decl.Node == nil {
		return nil, fmt.Errorf("%w: %s has no syntax node", ErrShape, decl.Kind)
	}
	switch decl.Kind {
	case locate.KindFunction:
		return extractFunction(src, decl.Node)
	case locate.KindClass:
		return extractClass(src, decl.Node)
	case locate.KindModule:
		return extractModule(src, decl.Node)
	}
	return nil, fmt.Errorf("%w: unknown kind %d", ErrShape, decl.Kind)
}

func expectType(node *sitter.Node, want string) error {
	if node.Type() != want {
		return fmt.Errorf("%w: expected %s, got %s", ErrShape, want, node.Type())
	}
	return nil
}

// collapse joins whitespace runs, newlines included, into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// attrSet keeps attributes in first-assignment order; a later assignment to
// the same name replaces the recorded value in place.
type attrSet struct {
	attrs []AttrDetails
	index map[string]int
}

func newAttrSet() *attrSet {
	return &attrSet{index: make(map[string]int)}
}

func (s *attrSet) put(a AttrDetails) {
	if i, ok := s.index[a.Name]; ok {
		s.attrs[i] = a
		return
	}
	s.index[a.Name] = len(s.attrs)
	s.attrs = append(s.attrs, a)
}

func (s *attrSet) list() []AttrDetails {
	return s.attrs
}
