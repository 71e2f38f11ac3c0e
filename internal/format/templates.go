// Package format holds the docstring style templates and renders extracted
// declaration facts through them.
package format

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownStyle is returned by Lookup for an unregistered style name.
var ErrUnknownStyle = errors.New("unknown docstring style")

// Style identifies a docstring layout.
type Style string

const (
	StyleGoogle Style = "google"
	StyleNumpy  Style = "numpy"
	StyleReST   Style = "reST"
)

// FormatTemplate is the set of format strings for one style. Line templates
// use explicit argument indexes so a style may omit or reorder substitutions:
//
//	Param, Attribute:       name, type, default annotation or code
//	Args, Kwargs:           name, description
//	Return, Yield:          type, expression
//	ReturnAnnotation:       type
//	Raise:                  exception name
type FormatTemplate struct {
	StartArgs        string
	Param            string
	Args             string
	Kwargs           string
	StartReturn      string
	Return           string
	ReturnAnnotation string
	StartYield       string
	Yield            string
	StartRaise       string
	Raise            string
	StartAttributes  string
	Attribute        string
}

var registry = map[Style]FormatTemplate{
	StyleGoogle: {
		StartArgs:        "\n\nArgs:\n",
		Param:            "    %[1]s (%[2]s): %[3]s\n",
		Args:             "    *%[1]s: %[2]s\n",
		Kwargs:           "    **%[1]s: %[2]s\n",
		StartReturn:      "\n\nReturns:\n",
		Return:           "    %[1]s: %[2]s\n",
		ReturnAnnotation: "    %[1]s: \n",
		StartYield:       "\n\nYields:\n",
		Yield:            "    %[1]s: %[2]s\n",
		StartRaise:       "\n\nRaises:\n",
		Raise:            "    %[1]s: \n",
		StartAttributes:  "\n\nAttributes:\n",
		Attribute:        "    %[1]s (%[2]s): %[3]s\n",
	},
	StyleNumpy: {
		StartArgs:        "\n\n    Parameters\n    ----------\n",
		Param:            "    %[1]s : %[2]s\n        %[3]s\n",
		Args:             "    *%[1]s\n        %[2]s\n",
		Kwargs:           "    **%[1]s\n        %[2]s\n",
		StartReturn:      "\n\n    Returns\n    -------\n",
		Return:           "    %[1]s\n        %[2]s\n",
		ReturnAnnotation: "    %[1]s\n        \n",
		StartYield:       "\n\n    Yields\n    ------\n",
		Yield:            "    %[1]s\n        %[2]s\n",
		StartRaise:       "\n\n    Raises\n    ------\n",
		Raise:            "    %[1]s\n        \n",
		StartAttributes:  "\n\n    Attributes\n    ----------\n",
		Attribute:        "    %[1]s : %[2]s\n        %[3]s\n",
	},
	StyleReST: {
		StartArgs:        "\n\n",
		Param:            ":param %[1]s: %[3]s\n:type %[1]s: %[2]s\n",
		Args:             ":param *%[1]s: %[2]s\n",
		Kwargs:           ":param **%[1]s: %[2]s\n",
		StartReturn:      "\n\n",
		Return:           ":return: %[2]s\n:rtype: %[1]s\n",
		ReturnAnnotation: ":return: \n:rtype: %[1]s\n",
		StartYield:       "\n\n",
		Yield:            ":yields: %[2]s\n:ytype: %[1]s\n",
		StartRaise:       "\n\n",
		Raise:            ":raises %[1]s: \n",
		StartAttributes:  "\n\n",
		Attribute:        ":var %[1]s: %[3]s\n:type %[1]s: %[2]s\n",
	},
}

// Lookup resolves a style name, ignoring case and surrounding space, to its
// canonical Style and templates.
func Lookup(name string) (Style, FormatTemplate, error) {
	want := strings.TrimSpace(name)
	for style, tmpl := range registry {
		if strings.EqualFold(string(style), want) {
			return style, tmpl, nil
		}
	}
	return "", FormatTemplate{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// Styles returns the registered styles in sorted order.
func Styles() []Style {
	styles := make([]Style, 0, len(registry))
	for style := range registry {
		styles = append(styles, style)
	}
	slices.Sort(styles)
	return styles
}
