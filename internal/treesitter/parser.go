package treesitter

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Source is a parsed Python document. It owns the tree-sitter tree and must be
// closed when the caller is done with every node obtained from it.
type Source struct {
	Text []byte
	tree *sitter.Tree
}

// Parse parses Python source text. Syntax errors do not fail the parse:
// tree-sitter recovers and marks the damaged region with ERROR nodes.
func Parse(src []byte) (*Source, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse python source: %w", err)
	}
	return &Source{Text: src, tree: tree}, nil
}

// Close releases the underlying tree.
func (s *Source) Close() {
	if s.tree != nil {
		s.tree.Close()
		s.tree = nil
	}
}

// Root returns the module node.
func (s *Source) Root() *sitter.Node {
	return s.tree.RootNode()
}

// Content returns the source text covered by node.
func (s *Source) Content(node *sitter.Node) string {
	return content(node, s.Text)
}

// LeafAt returns the deepest node covering the byte offset. A child whose
// range ends exactly at offset still covers it when no sibling starts there,
// so a cursor parked at the end of a line belongs to that line's statement.
// Offsets past the end of the text resolve to the root.
func (s *Source) LeafAt(offset int) *sitter.Node {
	root := s.Root()
	if offset < 0 || offset > len(s.Text) {
		return root
	}
	off := uint32(offset)
	node := root
	for {
		next := childAt(node, off)
		if next == nil {
			return node
		}
		node = next
	}
}

func childAt(node *sitter.Node, off uint32) *sitter.Node {
	var touching *sitter.Node
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		start, end := child.StartByte(), child.EndByte()
		if start <= off && off < end {
			return child
		}
		if end == off && end > start {
			touching = child
		}
	}
	return touching
}

// Ancestor walks from node towards the root and returns the first node whose
// type is one of types, including node itself. Returns nil if none matches.
func Ancestor(node *sitter.Node, types ...string) *sitter.Node {
	for n := node; n != nil; n = n.Parent() {
		for _, t := range types {
			if n.Type() == t {
				return n
			}
		}
	}
	return nil
}

// helpers

func content(node *sitter.Node, src []byte) string {
	return node.Content(src)
}
