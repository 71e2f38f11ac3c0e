// Package treesitter wraps the tree-sitter Python grammar: it parses source
// text, maps byte offsets to syntax leaves and walks scopes.
package treesitter

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Python grammar node types.
//
// Reference: https://github.com/tree-sitter/tree-sitter-python/blob/master/src/grammar.json
const (
	NodeModule              = "module"
	NodeFunction            = "function_definition"
	NodeClass               = "class_definition"
	NodeDecorated           = "decorated_definition"
	NodeLambda              = "lambda"
	NodeBlock               = "block"
	NodeParameters          = "parameters"
	NodeIdentifier          = "identifier"
	NodeTypedParameter      = "typed_parameter"
	NodeDefaultParameter    = "default_parameter"
	NodeTypedDefault        = "typed_default_parameter"
	NodeListSplatPattern    = "list_splat_pattern"
	NodeDictSplatPattern    = "dictionary_splat_pattern"
	NodeListSplat           = "list_splat"
	NodeDictSplat           = "dictionary_splat"
	NodeExpressionStmt      = "expression_statement"
	NodeAssignment          = "assignment"
	NodeAttribute           = "attribute"
	NodeReturn              = "return_statement"
	NodeYield               = "yield"
	NodeRaise               = "raise_statement"
	NodeCall                = "call"
	NodeComment             = "comment"
	NodeString              = "string"
	NodeConcatString        = "concatenated_string"
	NodeInterpolation       = "interpolation"
	NodeInteger             = "integer"
	NodeFloat               = "float"
	NodeTrue                = "true"
	NodeFalse               = "false"
	NodeNone                = "none"
	NodeEllipsis            = "ellipsis"
	NodeList                = "list"
	NodeTuple               = "tuple"
	NodeExpressionList      = "expression_list"
	NodeParenthesized       = "parenthesized_expression"
	NodeDictionary          = "dictionary"
	NodePair                = "pair"
	NodeSet                 = "set"
	NodeUnaryOperator       = "unary_operator"
	NodeBinaryOperator      = "binary_operator"
	NodeKeywordSeparator    = "keyword_separator"
	NodePositionalSeparator = "positional_separator"
)

// NamedChildren returns the named children of node, skipping comments.
func NamedChildren(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	count := int(node.NamedChildCount())
	out := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		child := node.NamedChild(i)
		if child == nil || child.Type() == NodeComment {
			continue
		}
		out = append(out, child)
	}
	return out
}

// FirstNamed returns the first named, non-comment child of node, or nil.
func FirstNamed(node *sitter.Node) *sitter.Node {
	children := NamedChildren(node)
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// Unwrap returns the function or class inside a decorated definition; other
// nodes are returned unchanged.
func Unwrap(node *sitter.Node) *sitter.Node {
	if node == nil || node.Type() != NodeDecorated {
		return node
	}
	if def := node.ChildByFieldName("definition"); def != nil {
		return def
	}
	return node
}

// IsScope reports whether node opens a new Python scope.
func IsScope(node *sitter.Node) bool {
	switch node.Type() {
	case NodeFunction, NodeClass, NodeLambda:
		return true
	}
	return false
}

// Walk visits the descendants of node in document order. visit returns false
// to skip a node's subtree. node itself is not visited.
func Walk(node *sitter.Node, visit func(*sitter.Node) bool) {
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if visit(child) {
			Walk(child, visit)
		}
	}
}
