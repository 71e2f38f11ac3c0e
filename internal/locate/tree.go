package locate

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/xonecas/pydocstring/internal/treesitter"
)

// TreeLocator takes the syntax leaf under the cursor and returns its nearest
// function, class or module ancestor.
type TreeLocator struct{}

// Locate implements Locator.
func (TreeLocator) Locate(src *treesitter.Source, pos Position) (Declaration, error) {
	off, err := Offset(src.Text, pos)
	if err != nil {
		return Declaration{}, err
	}
	leaf := src.LeafAt(off)
	if leaf == nil {
		return Declaration{}, fmt.Errorf("%w: no leaf at %s", ErrNoScope, pos)
	}
	scope := treesitter.Ancestor(leaf,
		treesitter.NodeFunction,
		treesitter.NodeClass,
		treesitter.NodeDecorated,
		treesitter.NodeModule,
	)
	if scope == nil {
		return Declaration{}, fmt.Errorf("%w: leaf %s at %s", ErrNoScope, leaf.Type(), pos)
	}
	return declarationFor(src, treesitter.Unwrap(scope))
}

func declarationFor(src *treesitter.Source, node *sitter.Node) (Declaration, error) {
	d := Declaration{
		Node: node,
		Span: Span{Start: int(node.StartByte()), End: int(node.EndByte())},
	}
	switch node.Type() {
	case treesitter.NodeModule:
		d.Kind = KindModule
		d.Span = Span{Start: 0, End: len(src.Text)}
	case treesitter.NodeClass:
		d.Kind = KindClass
	case treesitter.NodeFunction:
		d.Kind = KindFunction
	default:
		return Declaration{}, fmt.Errorf("%w: unexpected scope node %s", ErrNoScope, node.Type())
	}
	return d, nil
}
