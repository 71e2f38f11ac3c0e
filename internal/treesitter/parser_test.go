package treesitter

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
)

const source = `@decorator
def add(a, b=1):
    # sum
    return a + b


class Point:
    x = 0
`

func mustParse(t *testing.T, src string) *Source {
	t.Helper()
	s, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestParse(t *testing.T) {
	s := mustParse(t, source)
	root := s.Root()
	if root.Type() != NodeModule {
		t.Fatalf("expected module root, got %s", root.Type())
	}
	children := NamedChildren(root)
	if len(children) != 2 {
		t.Fatalf("expected 2 top-level statements, got %d", len(children))
	}
	if children[0].Type() != NodeDecorated || children[1].Type() != NodeClass {
		t.Errorf("unexpected statements %s, %s", children[0].Type(), children[1].Type())
	}
	if got := s.Content(children[1].ChildByFieldName("name")); got != "Point" {
		t.Errorf("expected class name Point, got %q", got)
	}
}

func TestParseInvalidSource(t *testing.T) {
	s := mustParse(t, "def broken(:\n    pass\n")
	if !s.Root().HasError() {
		t.Error("expected an error node in a damaged tree")
	}
}

func TestLeafAt(t *testing.T) {
	s := mustParse(t, source)
	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{"decorator name", 1, "decorator"},
		{"function name", 16, "add"},
		{"return value", 53, "b"},
		{"end of line", 54, "b"},
		{"class attribute", 74, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaf := s.LeafAt(tt.offset)
			if leaf == nil {
				t.Fatal("no leaf")
			}
			if got := s.Content(leaf); got != tt.want {
				t.Errorf("expected %q, got %q (%s)", tt.want, got, leaf.Type())
			}
		})
	}

	if leaf := s.LeafAt(len(source) + 10); leaf.Type() != NodeModule {
		t.Errorf("expected root for out-of-range offset, got %s", leaf.Type())
	}
}

func TestAncestor(t *testing.T) {
	s := mustParse(t, source)

	fn := Ancestor(s.LeafAt(53), NodeFunction, NodeClass)
	if fn == nil || fn.Type() != NodeFunction {
		t.Fatalf("expected function ancestor, got %v", fn)
	}
	if Ancestor(fn, NodeFunction) != fn {
		t.Error("Ancestor should include the node itself")
	}
	if Ancestor(fn, NodeClass) != nil {
		t.Error("expected no class ancestor")
	}

	deco := Ancestor(s.LeafAt(1), NodeDecorated)
	if deco == nil {
		t.Fatal("expected decorated definition")
	}
	if Unwrap(deco).Type() != NodeFunction {
		t.Errorf("Unwrap: expected function, got %s", Unwrap(deco).Type())
	}
	if Unwrap(fn) != fn {
		t.Error("Unwrap should leave undecorated nodes alone")
	}
}

func TestNamedChildrenSkipsComments(t *testing.T) {
	s := mustParse(t, source)
	fn := Ancestor(s.LeafAt(16), NodeFunction)
	body := NamedChildren(fn.ChildByFieldName("body"))
	if len(body) != 1 || body[0].Type() != NodeReturn {
		t.Errorf("expected only the return statement, got %d nodes", len(body))
	}
	if NamedChildren(nil) != nil || FirstNamed(nil) != nil {
		t.Error("expected nil-safe helpers")
	}
}

func TestWalkSkipsScopes(t *testing.T) {
	s := mustParse(t, "def outer():\n    def inner():\n        return 1\n    f = lambda: 2\n    return 3\n")
	fn := Ancestor(s.LeafAt(4), NodeFunction)

	var returns []string
	Walk(fn.ChildByFieldName("body"), func(n *sitter.Node) bool {
		if IsScope(n) {
			return false
		}
		if n.Type() == NodeReturn {
			returns = append(returns, s.Content(n))
		}
		return true
	})
	if len(returns) != 1 || returns[0] != "return 3" {
		t.Errorf("expected only the outer return, got %v", returns)
	}
}
