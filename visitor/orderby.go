package visitor

import (
	"strings"

	"github.com/Konsultn-Engineering/relsql/ast"
)

// orderByVisitor renders "bb DESC, t.a". Aliased columns are referenced
// by alias and never qualified.
type orderByVisitor struct {
	ctx     *renderContext
	sb      strings.Builder
	items   int
	byAlias bool
}

func (v *orderByVisitor) matches(n ast.Node) bool {
	_, ok := n.(*ast.OrderByField)
	return ok
}

func (v *orderByVisitor) enterMatched(ast.Node) {
	if v.items > 0 {
		v.sb.WriteString(", ")
	}
	v.items++
}

// A Column's enter always precedes the enter of its owning Table, so
// byAlias is current when leaveSub sees the Table.
func (v *orderByVisitor) enterSub(n ast.Node) {
	if c, ok := n.(*ast.Column); ok {
		v.byAlias = c.IsAliased()
	}
}

func (v *orderByVisitor) leaveSub(n ast.Node) {
	switch e := n.(type) {
	case *ast.Table:
		if !v.byAlias {
			v.sb.WriteString(v.ctx.qualifier(e))
		}
	case *ast.Column:
		v.sb.WriteString(v.ctx.quote(e.ReferenceName()))
	}
}

func (v *orderByVisitor) leaveMatched(n ast.Node) {
	if dir := n.(*ast.OrderByField).Direction(); dir != ast.DirectionUnspecified {
		v.sb.WriteByte(' ')
		v.sb.WriteString(dir.String())
	}
}
