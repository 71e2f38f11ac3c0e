package ingest

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/xonecas/pydocstring/internal/treesitter"
)

// InferType names the Python type of a literal expression, or returns
// Placeholder when n is not a literal. Containers are literals only when
// every element is one.
func InferType(src *treesitter.Source, n *sitter.Node) string {
	if n == nil {
		return Placeholder
	}
	if strings.HasPrefix(strings.TrimSpace(src.Content(n)), "set(") {
		return "set"
	}
	if typ, ok := literalType(src, n); ok {
		return typ
	}
	return Placeholder
}

func literalType(src *treesitter.Source, n *sitter.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	switch n.Type() {
	case treesitter.NodeInteger, treesitter.NodeFloat:
		return numberType(src, n), true
	case treesitter.NodeString:
		return stringType(src, n)
	case treesitter.NodeConcatString:
		return concatType(src, n)
	case treesitter.NodeTrue, treesitter.NodeFalse:
		return "bool", true
	case treesitter.NodeNone:
		return "NoneType", true
	case treesitter.NodeEllipsis:
		return "ellipsis", true
	case treesitter.NodeParenthesized:
		inner := treesitter.FirstNamed(n)
		if inner == nil {
			return "", false
		}
		return literalType(src, inner)
	case treesitter.NodeList:
		return "list", allLiteral(src, treesitter.NamedChildren(n))
	case treesitter.NodeTuple, treesitter.NodeExpressionList:
		return "tuple", allLiteral(src, treesitter.NamedChildren(n))
	case treesitter.NodeSet:
		return "set", allLiteral(src, treesitter.NamedChildren(n))
	case treesitter.NodeDictionary:
		for _, pair := range treesitter.NamedChildren(n) {
			if pair.Type() != treesitter.NodePair {
				return "", false
			}
			if !allLiteral(src, []*sitter.Node{pair.ChildByFieldName("key"), pair.ChildByFieldName("value")}) {
				return "", false
			}
		}
		return "dict", true
	case treesitter.NodeUnaryOperator:
		return signedType(src, n)
	case treesitter.NodeBinaryOperator:
		return complexSum(src, n)
	}
	return "", false
}

func allLiteral(src *treesitter.Source, nodes []*sitter.Node) bool {
	for _, n := range nodes {
		if _, ok := literalType(src, n); !ok {
			return false
		}
	}
	return true
}

func numberType(src *treesitter.Source, n *sitter.Node) string {
	text := src.Content(n)
	switch {
	case strings.HasSuffix(text, "j"), strings.HasSuffix(text, "J"):
		return "complex"
	case n.Type() == treesitter.NodeFloat:
		return "float"
	}
	return "int"
}

// stringPrefix returns the lowercased prefix letters of a string literal.
func stringPrefix(src *treesitter.Source, n *sitter.Node) string {
	text := src.Content(n)
	if i := strings.IndexAny(text, `"'`); i >= 0 {
		return strings.ToLower(text[:i])
	}
	return ""
}

func stringType(src *treesitter.Source, n *sitter.Node) (string, bool) {
	prefix := stringPrefix(src, n)
	if strings.Contains(prefix, "f") {
		return "", false
	}
	for _, c := range treesitter.NamedChildren(n) {
		if c.Type() == treesitter.NodeInterpolation {
			return "", false
		}
	}
	if strings.Contains(prefix, "b") {
		return "bytes", true
	}
	return "str", true
}

// concatType accepts implicit concatenation of plain strings or of bytes,
// but not a mix of the two.
func concatType(src *treesitter.Source, n *sitter.Node) (string, bool) {
	typ := ""
	for _, part := range treesitter.NamedChildren(n) {
		t, ok := stringType(src, part)
		if !ok || (typ != "" && t != typ) {
			return "", false
		}
		typ = t
	}
	return typ, typ != ""
}

func isNumber(typ string) bool {
	return typ == "int" || typ == "float" || typ == "complex"
}

// signedType handles unary plus and minus applied to a number.
func signedType(src *treesitter.Source, n *sitter.Node) (string, bool) {
	op := n.ChildByFieldName("operator")
	if op == nil || (op.Type() != "-" && op.Type() != "+") {
		return "", false
	}
	typ, ok := literalType(src, n.ChildByFieldName("argument"))
	if !ok || !isNumber(typ) {
		return "", false
	}
	return typ, true
}

// complexSum accepts a real number plus or minus an imaginary one, as in
// 1+2j.
func complexSum(src *treesitter.Source, n *sitter.Node) (string, bool) {
	op := n.ChildByFieldName("operator")
	if op == nil || (op.Type() != "-" && op.Type() != "+") {
		return "", false
	}
	left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
	if left == nil || right == nil {
		return "", false
	}
	lt, ok := literalType(src, left)
	if !ok || (lt != "int" && lt != "float") {
		return "", false
	}
	if rt, ok := literalType(src, right); !ok || rt != "complex" || right.Type() == treesitter.NodeUnaryOperator {
		return "", false
	}
	return "complex", true
}
