package visitor

import (
	"strings"

	"github.com/Konsultn-Engineering/relsql/ast"
)

// expressionVisitor renders a single condition operand: a column, bind
// marker, literal, asterisk or function call. Function arguments get
// visitors of their own.
type expressionVisitor struct {
	ctx  *renderContext
	done func(string)
	args []string
}

func newExpressionVisitor(ctx *renderContext, done func(string)) *expressionVisitor {
	return &expressionVisitor{ctx: ctx, done: done}
}

func (v *expressionVisitor) matches(n ast.Node) bool {
	_, ok := n.(ast.Expression)
	return ok
}

func (v *expressionVisitor) enterMatched(n ast.Node) {
	if f, ok := n.(*ast.SimpleFunction); ok {
		v.args = pushOperands(v.ctx, len(f.Args()), func(done func(string)) matcher {
			return newExpressionVisitor(v.ctx, done)
		})
	}
}

// The owning table of a column or asterisk is the only nested node a
// leaf expression sees; its name is read from the leaf itself.
func (v *expressionVisitor) enterSub(n ast.Node) {
	if _, ok := n.(*ast.Table); !ok {
		invariant("unexpected %s inside expression", n.Type())
	}
}

func (v *expressionVisitor) leaveSub(n ast.Node) {
	if _, ok := n.(*ast.Table); !ok {
		invariant("unexpected %s inside expression", n.Type())
	}
}

func (v *expressionVisitor) leaveMatched(n ast.Node) {
	var s string
	switch e := n.(type) {
	case *ast.Column:
		s = v.ctx.qualifier(e.Table()) + v.ctx.quote(e.Name())
	case *ast.Asterisk:
		s = v.ctx.qualifier(e.Table()) + "*"
	case *ast.BindMarker:
		s = v.ctx.bindMarker(e)
	case *ast.Literal:
		s = v.ctx.literal(e)
	case *ast.SimpleFunction:
		s = e.FunctionName() + "(" + strings.Join(v.args, ", ") + ")"
	default:
		invariant("unsupported expression %s", n.Type())
	}
	v.done(s)
}
