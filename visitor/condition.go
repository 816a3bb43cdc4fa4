package visitor

import (
	"strings"

	"github.com/Konsultn-Engineering/relsql/ast"
)

// conditionVisitor renders one boolean condition. Operands are rendered
// by fresh visitors pushed on enter, so nesting needs no recursion here:
// an AND of ORs simply pushes more condition visitors.
type conditionVisitor struct {
	ctx      *renderContext
	done     func(string)
	operands []string
}

func newConditionVisitor(ctx *renderContext, done func(string)) *conditionVisitor {
	return &conditionVisitor{ctx: ctx, done: done}
}

func (v *conditionVisitor) matches(n ast.Node) bool {
	_, ok := n.(ast.Condition)
	return ok
}

func (v *conditionVisitor) enterMatched(n ast.Node) {
	switch c := n.(type) {
	case *ast.AndCondition:
		v.operands = pushOperands(v.ctx, len(c.Conditions()), v.condition)
	case *ast.OrCondition:
		v.operands = pushOperands(v.ctx, len(c.Conditions()), v.condition)
	case *ast.IsNull:
		v.operands = pushOperands(v.ctx, 1, v.expression)
	case *ast.Equals:
		v.operands = pushOperands(v.ctx, 2, v.expression)
	case *ast.In:
		v.operands = pushOperands(v.ctx, 1+len(c.Right()), v.expression)
	default:
		invariant("unsupported condition %s", n.Type())
	}
}

func (v *conditionVisitor) condition(done func(string)) matcher {
	return newConditionVisitor(v.ctx, done)
}

func (v *conditionVisitor) expression(done func(string)) matcher {
	return newExpressionVisitor(v.ctx, done)
}

// Operands pop their own visitors, so nothing nested may reach this one.
func (v *conditionVisitor) enterSub(n ast.Node) {
	invariant("condition operand %s escaped its visitor", n.Type())
}

func (v *conditionVisitor) leaveSub(n ast.Node) {
	invariant("condition operand %s escaped its visitor", n.Type())
}

func (v *conditionVisitor) leaveMatched(n ast.Node) {
	var s string
	switch c := n.(type) {
	case *ast.AndCondition:
		s = strings.Join(v.operands, " AND ")
	case *ast.OrCondition:
		s = "(" + strings.Join(v.operands, " OR ") + ")"
	case *ast.IsNull:
		if c.IsNegated() {
			s = v.operands[0] + " IS NOT NULL"
		} else {
			s = v.operands[0] + " IS NULL"
		}
	case *ast.Equals:
		s = v.operands[0] + " = " + v.operands[1]
	case *ast.In:
		s = v.operands[0] + " IN (" + strings.Join(v.operands[1:], ", ") + ")"
	}
	v.done(s)
}
