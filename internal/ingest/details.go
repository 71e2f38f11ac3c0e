package ingest

import "github.com/xonecas/pydocstring/internal/locate"

// Placeholder is the type reported when none is declared and none can be
// inferred.
const Placeholder = "TYPE"

// ParamDetails describes one ordinary parameter. Default is empty when the
// parameter has no default value.
type ParamDetails struct {
	Name    string `json:"name" yaml:"name"`
	Type    string `json:"type" yaml:"type"`
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
}

// ReturnDetails describes one return or yield occurrence.
type ReturnDetails struct {
	Type       string `json:"type" yaml:"type"`
	Expression string `json:"expression" yaml:"expression"`
}

// AttrDetails describes one attribute assignment.
type AttrDetails struct {
	Name string `json:"name" yaml:"name"`
	Code string `json:"code" yaml:"code"`
	Type string `json:"type" yaml:"type"`
}

// Details is the fact set extracted from one declaration. It is implemented
// by *FunctionDetails, *ClassDetails and *ModuleDetails only.
type Details interface {
	Kind() locate.Kind
	details()
}

// FunctionDetails holds the facts of a function declaration.
type FunctionDetails struct {
	Params     []ParamDetails  `json:"params,omitempty" yaml:"params,omitempty"`
	Args       string          `json:"args,omitempty" yaml:"args,omitempty"`
	Kwargs     string          `json:"kwargs,omitempty" yaml:"kwargs,omitempty"`
	Returns    []ReturnDetails `json:"returns,omitempty" yaml:"returns,omitempty"`
	Yields     []ReturnDetails `json:"yields,omitempty" yaml:"yields,omitempty"`
	Raises     []string        `json:"raises,omitempty" yaml:"raises,omitempty"`
	Annotation string          `json:"annotation,omitempty" yaml:"annotation,omitempty"`
}

// HasParameters reports whether the function takes any parameter, variadic
// ones included.
func (f *FunctionDetails) HasParameters() bool {
	return len(f.Params) > 0 || f.Args != "" || f.Kwargs != ""
}

// ClassDetails holds the attributes of a class.
type ClassDetails struct {
	Attrs []AttrDetails `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// ModuleDetails holds the attributes of a module.
type ModuleDetails struct {
	Attrs []AttrDetails `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

func (*FunctionDetails) Kind() locate.Kind { return locate.KindFunction }
func (*ClassDetails) Kind() locate.Kind    { return locate.KindClass }
func (*ModuleDetails) Kind() locate.Kind   { return locate.KindModule }

func (*FunctionDetails) details() {}
func (*ClassDetails) details()    {}
func (*ModuleDetails) details()   {}
