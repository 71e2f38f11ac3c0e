package format

import (
	"fmt"
	"strings"

	"github.com/xonecas/pydocstring/internal/ingest"
)

const (
	argsDescription   = "Variable length argument list."
	kwargsDescription = "Arbitrary keyword arguments."

	// EmptyModule is the body rendered for a module with no attributes.
	EmptyModule = "\n\nEmpty Module\n\n"
)

// Render lays out d with the templates of one style. The result opens and
// closes with a newline and carries no docstring delimiters.
func Render(d ingest.Details, t FormatTemplate) (string, error) {
	switch d := d.(type) {
	case *ingest.FunctionDetails:
		return renderFunction(d, t), nil
	case *ingest.ClassDetails:
		return renderAttrs(d.Attrs, t), nil
	case *ingest.ModuleDetails:
		if len(d.Attrs) == 0 {
			return EmptyModule, nil
		}
		return renderAttrs(d.Attrs, t), nil
	}
	return "", fmt.Errorf("cannot render %T", d)
}

func renderFunction(f *ingest.FunctionDetails, t FormatTemplate) string {
	var b strings.Builder
	b.WriteString("\n")

	if f.HasParameters() {
		b.WriteString(t.StartArgs)
		if f.Args != "" {
			fmt.Fprintf(&b, t.Args, f.Args, argsDescription)
		}
		if f.Kwargs != "" {
			fmt.Fprintf(&b, t.Kwargs, f.Kwargs, kwargsDescription)
		}
		for _, p := range f.Params {
			fmt.Fprintf(&b, t.Param, p.Name, p.Type, defaultAnnotation(p.Default))
		}
	}

	switch {
	case len(f.Returns) > 0:
		b.WriteString(t.StartReturn)
		for _, r := range f.Returns {
			fmt.Fprintf(&b, t.Return, r.Type, r.Expression)
		}
	case f.Annotation != "":
		b.WriteString(t.StartReturn)
		fmt.Fprintf(&b, t.ReturnAnnotation, f.Annotation)
	}

	if len(f.Yields) > 0 {
		b.WriteString(t.StartYield)
		for _, y := range f.Yields {
			fmt.Fprintf(&b, t.Yield, y.Type, y.Expression)
		}
	}

	if len(f.Raises) > 0 {
		b.WriteString(t.StartRaise)
		for _, name := range f.Raises {
			fmt.Fprintf(&b, t.Raise, name)
		}
	}

	b.WriteString("\n")
	return b.String()
}

func renderAttrs(attrs []ingest.AttrDetails, t FormatTemplate) string {
	var b strings.Builder
	b.WriteString("\n")
	if len(attrs) > 0 {
		b.WriteString(t.StartAttributes)
		for _, a := range attrs {
			fmt.Fprintf(&b, t.Attribute, a.Name, a.Type, a.Code)
		}
	}
	b.WriteString("\n")
	return b.String()
}

func defaultAnnotation(value string) string {
	if value == "" {
		return ""
	}
	return " default: ``" + value + "``"
}
