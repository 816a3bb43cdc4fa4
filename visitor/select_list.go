package visitor

import (
	"strings"

	"github.com/Konsultn-Engineering/relsql/ast"
)

// selectListVisitor renders the projection: "a, t.b AS bb, COUNT(t.id)".
// Arguments of a held function arrive through the sub hooks.
type selectListVisitor struct {
	ctx   *renderContext
	sb    strings.Builder
	items int
	// argument counts of the functions currently open, innermost last
	fnArgs []int
}

func newSelectListVisitor(ctx *renderContext) *selectListVisitor {
	return &selectListVisitor{ctx: ctx}
}

func (v *selectListVisitor) matches(n ast.Node) bool {
	_, ok := n.(ast.Expression)
	return ok
}

func (v *selectListVisitor) enterMatched(n ast.Node) {
	if v.items > 0 {
		v.sb.WriteString(", ")
	}
	v.items++
	if f, ok := n.(*ast.SimpleFunction); ok {
		v.openFunction(f)
	}
}

func (v *selectListVisitor) enterSub(n ast.Node) {
	if _, ok := n.(ast.Expression); !ok {
		return
	}
	if len(v.fnArgs) == 0 {
		invariant("expression %s nested outside of a function", n.Type())
	}
	top := len(v.fnArgs) - 1
	if v.fnArgs[top] > 0 {
		v.sb.WriteString(", ")
	}
	v.fnArgs[top]++
	if f, ok := n.(*ast.SimpleFunction); ok {
		v.openFunction(f)
	}
}

func (v *selectListVisitor) leaveMatched(n ast.Node) {
	switch e := n.(type) {
	case *ast.Column:
		v.sb.WriteString(v.ctx.quote(e.Name()))
		v.alias(e.Alias())
	case *ast.SimpleFunction:
		v.closeFunction()
		v.alias(e.Alias())
	default:
		v.leaf(n)
	}
}

func (v *selectListVisitor) leaveSub(n ast.Node) {
	switch e := n.(type) {
	case *ast.Table:
		v.sb.WriteString(v.ctx.qualifier(e))
	case *ast.Column:
		v.sb.WriteString(v.ctx.quote(e.Name()))
	case *ast.SimpleFunction:
		v.closeFunction()
	default:
		v.leaf(n)
	}
}

func (v *selectListVisitor) leaf(n ast.Node) {
	switch e := n.(type) {
	case *ast.Asterisk:
		v.sb.WriteByte('*')
	case *ast.BindMarker:
		v.sb.WriteString(v.ctx.bindMarker(e))
	case *ast.Literal:
		v.sb.WriteString(v.ctx.literal(e))
	default:
		invariant("unexpected %s in select list", n.Type())
	}
}

func (v *selectListVisitor) openFunction(f *ast.SimpleFunction) {
	v.sb.WriteString(f.FunctionName())
	v.sb.WriteByte('(')
	v.fnArgs = append(v.fnArgs, 0)
}

func (v *selectListVisitor) closeFunction() {
	v.sb.WriteByte(')')
	v.fnArgs = v.fnArgs[:len(v.fnArgs)-1]
}

func (v *selectListVisitor) alias(alias string) {
	if alias != "" {
		v.sb.WriteString(" AS ")
		v.sb.WriteString(v.ctx.quote(alias))
	}
}
