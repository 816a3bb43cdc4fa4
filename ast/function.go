package ast

import (
	"strings"

	"github.com/Konsultn-Engineering/relsql/utils"
)

// SimpleFunction is a function call such as COUNT(t.id).
type SimpleFunction struct {
	name  string
	args  []Expression
	alias string
}

func NewFunction(name string, args ...Expression) *SimpleFunction {
	mustHaveText("ast.NewFunction", "function name", name)
	for _, a := range args {
		mustNotBeNil("ast.NewFunction", "function argument", a)
	}
	return &SimpleFunction{name: name, args: append([]Expression(nil), args...)}
}

func Count(args ...Expression) *SimpleFunction { return NewFunction("COUNT", args...) }
func Upper(arg Expression) *SimpleFunction     { return NewFunction("UPPER", arg) }
func Lower(arg Expression) *SimpleFunction     { return NewFunction("LOWER", arg) }

func (f *SimpleFunction) As(alias string) *SimpleFunction {
	mustHaveText("ast.SimpleFunction.As", "alias", alias)
	return &SimpleFunction{name: f.name, args: f.args, alias: alias}
}

func (f *SimpleFunction) FunctionName() string { return f.name }
func (f *SimpleFunction) Alias() string        { return f.alias }

func (f *SimpleFunction) Args() []Expression {
	return append([]Expression(nil), f.args...)
}

func (f *SimpleFunction) Type() NodeType { return NodeFunction }
func (f *SimpleFunction) expression()    {}

func (f *SimpleFunction) Visit(v Visitor) {
	v.Enter(f)
	for _, a := range f.args {
		a.Visit(v)
	}
	v.Leave(f)
}

func (f *SimpleFunction) Fingerprint() uint64 {
	fp := utils.NewFingerprint("func").String(f.name).String(f.alias)
	for _, a := range f.args {
		fp.Uint64(a.Fingerprint())
	}
	return fp.Sum()
}

func (f *SimpleFunction) String() string {
	parts := make([]string, len(f.args))
	for i, a := range f.args {
		parts[i] = nodeString(a)
	}
	s := f.name + "(" + strings.Join(parts, ", ") + ")"
	if f.alias != "" {
		s += " AS " + f.alias
	}
	return s
}
