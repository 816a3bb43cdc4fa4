package visitor

import (
	"strings"

	"github.com/Konsultn-Engineering/relsql/ast"
)

// fromListVisitor renders "t, u AS x".
type fromListVisitor struct {
	ctx *renderContext
	sb  strings.Builder
}

func (v *fromListVisitor) matches(n ast.Node) bool {
	_, ok := n.(*ast.Table)
	return ok
}

func (v *fromListVisitor) enterMatched(n ast.Node) {
	if v.sb.Len() > 0 {
		v.sb.WriteString(", ")
	}
	v.sb.WriteString(v.ctx.tableSource(n.(*ast.Table)))
}

func (v *fromListVisitor) enterSub(n ast.Node) {
	invariant("table source cannot contain %s", n.Type())
}

func (v *fromListVisitor) leaveMatched(ast.Node) {}

func (v *fromListVisitor) leaveSub(n ast.Node) {
	invariant("table source cannot contain %s", n.Type())
}
