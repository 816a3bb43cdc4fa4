package visitor

import (
	"strconv"

	"github.com/Konsultn-Engineering/relsql/ast"
)

// statementVisitor is the bottom of the stack. It writes clause keywords
// and collects the fragments produced by the region visitors.
type statementVisitor struct {
	ctx *renderContext

	selectList        *selectListVisitor
	selectListFlushed bool
	from              *fromListVisitor
	where             string
	orderBy           *orderByVisitor
}

func (v *statementVisitor) enter(n ast.Node) {
	ctx := v.ctx
	switch node := n.(type) {
	case *ast.Select:
		if v.selectList != nil {
			invariant("nested SELECT is not supported")
		}
		if len(node.SelectList()) == 0 {
			invariant("SELECT without a select list")
		}
		ctx.out.WriteString("SELECT ")
		if node.IsDistinct() {
			ctx.out.WriteString("DISTINCT ")
		}
		switch ctx.mode {
		case QualifyAlways:
			ctx.qualify = true
		case QualifyNever:
			ctx.qualify = false
		default:
			ctx.qualify = node.TableSources() > 1
		}
		v.selectList = newSelectListVisitor(ctx)
		ctx.push(newReadWhileMatches(ctx, v.selectList))

	case *ast.From:
		v.flushSelectList()
		ctx.out.WriteString(" FROM ")
		v.from = &fromListVisitor{ctx: ctx}
		ctx.push(newReadWhileMatches(ctx, v.from))

	case *ast.Join:
		ctx.push(&joinVisitor{ctx: ctx})

	case *ast.Where:
		ctx.out.WriteString(" WHERE ")
		ctx.push(newReadOne(ctx, newConditionVisitor(ctx, func(s string) { v.where = s })))

	case *ast.OrderByField:
		if v.orderBy != nil {
			invariant("ORDER BY fields must be contiguous")
		}
		v.orderBy = &orderByVisitor{ctx: ctx}
		h := newReadWhileMatches(ctx, v.orderBy)
		ctx.push(h)
		h.enter(n)

	default:
		invariant("unexpected enter %s at statement level", n.Type())
	}
}

func (v *statementVisitor) leave(n ast.Node) {
	ctx := v.ctx
	switch node := n.(type) {
	case *ast.From:
		ctx.out.WriteString(v.from.sb.String())

	case *ast.Where:
		ctx.out.WriteString(v.where)

	case *ast.Select:
		v.flushSelectList()
		if v.orderBy != nil && v.orderBy.sb.Len() > 0 {
			ctx.out.WriteString(" ORDER BY ")
			ctx.out.WriteString(v.orderBy.sb.String())
		}
		if limit, ok := node.Limit(); ok {
			ctx.out.WriteString(" LIMIT ")
			ctx.out.WriteString(strconv.FormatInt(limit, 10))
		}
		if offset, ok := node.Offset(); ok {
			ctx.out.WriteString(" OFFSET ")
			ctx.out.WriteString(strconv.FormatInt(offset, 10))
		}

	default:
		invariant("unexpected leave %s at statement level", n.Type())
	}
}

func (v *statementVisitor) flushSelectList() {
	if v.selectList == nil {
		invariant("clause outside of SELECT")
	}
	if v.selectListFlushed {
		return
	}
	v.selectListFlushed = true
	v.ctx.out.WriteString(v.selectList.sb.String())
}
