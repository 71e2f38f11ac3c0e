package ingest

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/xonecas/pydocstring/internal/treesitter"
)

func extractClass(src *treesitter.Source, node *sitter.Node) (*ClassDetails, error) {
	if err := expectType(node, treesitter.NodeClass); err != nil {
		return nil, err
	}
	attrs := newAttrSet()
	for _, stmt := range treesitter.NamedChildren(node.ChildByFieldName("body")) {
		switch stmt.Type() {
		case treesitter.NodeExpressionStmt:
			addAssignments(src, attrs, stmt, isIdentifier)
		case treesitter.NodeFunction, treesitter.NodeDecorated:
			method := treesitter.Unwrap(stmt)
			if method.Type() != treesitter.NodeFunction {
				continue
			}
			harvestSelf(src, attrs, method.ChildByFieldName("body"))
		}
	}
	return &ClassDetails{Attrs: attrs.list()}, nil
}

func extractModule(src *treesitter.Source, node *sitter.Node) (*ModuleDetails, error) {
	if err := expectType(node, treesitter.NodeModule); err != nil {
		return nil, err
	}
	attrs := newAttrSet()
	for _, stmt := range treesitter.NamedChildren(node) {
		if stmt.Type() == treesitter.NodeExpressionStmt {
			addAssignments(src, attrs, stmt, isIdentifier)
		}
	}
	return &ModuleDetails{Attrs: attrs.list()}, nil
}

// harvestSelf records self.<name> assignments anywhere in a method body
// except inside nested classes, whose self is another instance.
func harvestSelf(src *treesitter.Source, attrs *attrSet, body *sitter.Node) {
	if body == nil {
		return
	}
	treesitter.Walk(body, func(n *sitter.Node) bool {
		switch n.Type() {
		case treesitter.NodeClass:
			return false
		case treesitter.NodeExpressionStmt:
			addAssignments(src, attrs, n, selfAttribute)
			return false
		}
		return true
	})
}

// targetName reports the attribute name bound by an assignment target, if the
// target is one that documents an attribute.
type targetName func(src *treesitter.Source, target *sitter.Node) (string, bool)

func isIdentifier(src *treesitter.Source, target *sitter.Node) (string, bool) {
	if target.Type() != treesitter.NodeIdentifier {
		return "", false
	}
	return src.Content(target), true
}

func selfAttribute(src *treesitter.Source, target *sitter.Node) (string, bool) {
	if target.Type() != treesitter.NodeAttribute {
		return "", false
	}
	obj := target.ChildByFieldName("object")
	attr := target.ChildByFieldName("attribute")
	if obj == nil || attr == nil || obj.Type() != treesitter.NodeIdentifier || src.Content(obj) != "self" {
		return "", false
	}
	return src.Content(attr), true
}

// addAssignments records each plain assignment in stmt whose target matches.
// In a chained assignment every target is bound to the final value.
func addAssignments(src *treesitter.Source, attrs *attrSet, stmt *sitter.Node, match targetName) {
	for _, expr := range treesitter.NamedChildren(stmt) {
		if expr.Type() != treesitter.NodeAssignment {
			continue
		}
		var targets []*sitter.Node
		var annotation *sitter.Node
		value := expr
		for value != nil && value.Type() == treesitter.NodeAssignment {
			if left := value.ChildByFieldName("left"); left != nil {
				targets = append(targets, left)
			}
			if t := value.ChildByFieldName("type"); t != nil && annotation == nil {
				annotation = t
			}
			value = value.ChildByFieldName("right")
		}
		if value == nil {
			// Bare annotation without a value.
			continue
		}
		code := strings.TrimSpace(src.Content(value))
		typ := annotationOr(src, annotation, InferType(src, value))
		for _, target := range targets {
			if name, ok := match(src, target); ok {
				attrs.put(AttrDetails{Name: name, Code: code, Type: typ})
			}
		}
	}
}
