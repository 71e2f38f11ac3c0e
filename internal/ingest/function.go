package ingest

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/xonecas/pydocstring/internal/treesitter"
)

func extractFunction(src *treesitter.Source, node *sitter.Node) (*FunctionDetails, error) {
	if err := expectType(node, treesitter.NodeFunction); err != nil {
		return nil, err
	}
	f := &FunctionDetails{}
	if rt := node.ChildByFieldName("return_type"); rt != nil {
		f.Annotation = strings.TrimSpace(src.Content(rt))
	}
	for _, p := range treesitter.NamedChildren(node.ChildByFieldName("parameters")) {
		addParam(src, f, p)
	}
	if body := node.ChildByFieldName("body"); body != nil {
		harvestBody(src, f, body)
	}
	return f, nil
}

func addParam(src *treesitter.Source, f *FunctionDetails, p *sitter.Node) {
	switch p.Type() {
	case treesitter.NodeIdentifier:
		f.Params = append(f.Params, ParamDetails{Name: src.Content(p), Type: Placeholder})

	case treesitter.NodeListSplatPattern, treesitter.NodeListSplat:
		f.Args = splatName(src, p)

	case treesitter.NodeDictSplatPattern, treesitter.NodeDictSplat:
		f.Kwargs = splatName(src, p)

	case treesitter.NodeTypedParameter:
		inner := treesitter.FirstNamed(p)
		if inner == nil {
			return
		}
		switch inner.Type() {
		case treesitter.NodeListSplatPattern, treesitter.NodeListSplat:
			f.Args = splatName(src, inner)
		case treesitter.NodeDictSplatPattern, treesitter.NodeDictSplat:
			f.Kwargs = splatName(src, inner)
		default:
			f.Params = append(f.Params, ParamDetails{
				Name: src.Content(inner),
				Type: annotationOr(src, p.ChildByFieldName("type"), Placeholder),
			})
		}

	case treesitter.NodeDefaultParameter, treesitter.NodeTypedDefault:
		name := p.ChildByFieldName("name")
		value := p.ChildByFieldName("value")
		if name == nil || value == nil {
			return
		}
		f.Params = append(f.Params, ParamDetails{
			Name:    src.Content(name),
			Type:    annotationOr(src, p.ChildByFieldName("type"), InferType(src, value)),
			Default: strings.TrimSpace(src.Content(value)),
		})

	default:
		// keyword_separator, positional_separator and legacy tuple
		// parameters carry no name of their own.
	}
}

func annotationOr(src *treesitter.Source, annotation *sitter.Node, fallback string) string {
	if annotation == nil {
		return fallback
	}
	if text := strings.TrimSpace(src.Content(annotation)); text != "" {
		return text
	}
	return fallback
}

func splatName(src *treesitter.Source, p *sitter.Node) string {
	if id := treesitter.FirstNamed(p); id != nil && id.Type() == treesitter.NodeIdentifier {
		return src.Content(id)
	}
	return strings.TrimLeft(src.Content(p), "* ")
}

// harvestBody records return, yield and raise statements of the function's
// own body. Nested functions, classes and lambdas are not entered.
func harvestBody(src *treesitter.Source, f *FunctionDetails, body *sitter.Node) {
	typ := f.Annotation
	if typ == "" {
		typ = Placeholder
	}
	seen := make(map[string]bool)

	treesitter.Walk(body, func(n *sitter.Node) bool {
		if treesitter.IsScope(n) {
			return false
		}
		switch n.Type() {
		case treesitter.NodeReturn:
			f.Returns = append(f.Returns, ReturnDetails{Type: typ, Expression: afterKeyword(src, n)})
		case treesitter.NodeYield:
			if n.IsNamed() {
				f.Yields = append(f.Yields, ReturnDetails{Type: typ, Expression: afterKeyword(src, n)})
			}
		case treesitter.NodeRaise:
			if name := exceptionName(src, treesitter.FirstNamed(n)); name != "" && !seen[name] {
				seen[name] = true
				f.Raises = append(f.Raises, name)
			}
		}
		return true
	})
}

// afterKeyword returns the statement text following its leading keyword,
// whitespace collapsed.
func afterKeyword(src *treesitter.Source, n *sitter.Node) string {
	kw := n.Child(0)
	if kw == nil {
		return ""
	}
	return collapse(string(src.Text[kw.EndByte():n.EndByte()]))
}

// exceptionName reduces a raised expression to the exception's (possibly
// dotted) name, dropping constructor arguments.
func exceptionName(src *treesitter.Source, exc *sitter.Node) string {
	for exc != nil {
		switch exc.Type() {
		case treesitter.NodeIdentifier, treesitter.NodeAttribute:
			return src.Content(exc)
		case treesitter.NodeCall:
			exc = exc.ChildByFieldName("function")
		default:
			exc = treesitter.FirstNamed(exc)
		}
	}
	return ""
}
