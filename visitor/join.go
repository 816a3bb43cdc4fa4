package visitor

import (
	"strings"

	"github.com/Konsultn-Engineering/relsql/ast"
)

type joinState int

const (
	joinExpectTable joinState = iota
	joinInTable
	joinExpectCondition
	joinInCondition
	joinComplete
)

// joinVisitor renders "u AS x ON t.id = x.t_id": first the joined table,
// then the ON condition through a nested condition visitor. On the Join's
// leave it writes " JOIN " and its text to the statement and pops itself.
type joinVisitor struct {
	ctx   *renderContext
	sb    strings.Builder
	table *ast.Table
	state joinState
}

func (v *joinVisitor) enter(n ast.Node) {
	switch v.state {
	case joinExpectTable:
		t, ok := n.(*ast.Table)
		if !ok {
			invariant("JOIN must start with a table, got %s", n.Type())
		}
		v.table = t
		v.state = joinInTable
		v.sb.WriteString(v.ctx.tableSource(t))
	case joinExpectCondition:
		if _, ok := n.(ast.Condition); !ok {
			invariant("JOIN table must be followed by a condition, got %s", n.Type())
		}
		v.state = joinInCondition
		v.sb.WriteString(" ON ")
		h := newReadOne(v.ctx, newConditionVisitor(v.ctx, func(s string) {
			v.sb.WriteString(s)
			v.state = joinComplete
		}))
		v.ctx.push(h)
		h.enter(n)
	default:
		invariant("unexpected enter %s in JOIN", n.Type())
	}
}

func (v *joinVisitor) leave(n ast.Node) {
	switch {
	case v.state == joinInTable && n == ast.Node(v.table):
		v.state = joinExpectCondition
	case v.state == joinComplete && n.Type() == ast.NodeJoin:
		v.ctx.out.WriteString(" JOIN ")
		v.ctx.out.WriteString(v.sb.String())
		v.ctx.pop(v)
	default:
		invariant("unexpected leave %s in JOIN", n.Type())
	}
}
