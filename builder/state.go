package builder

import (
	"strings"

	"github.com/Konsultn-Engineering/relsql/ast"
	"github.com/Konsultn-Engineering/relsql/utils"
)

// selectBuilder accumulates clauses for every grammar position. Only the
// first error is kept; the call that caused it leaves the clauses as they
// were.
type selectBuilder struct {
	distinct   bool
	selectList []ast.Expression
	from       []*ast.Table
	joins      []*ast.Join
	where      ast.Condition
	orderBy    []*ast.OrderByField
	limit      *int64
	offset     *int64

	// join being chained: its table, the ON equalities so far and the
	// left operand waiting for Equals
	joinTable *ast.Table
	joinOn    []ast.Condition
	joinLeft  ast.Expression
	inJoin    bool

	err error
}

func (b *selectBuilder) fail(op, format string, args ...any) {
	if b.err == nil {
		b.err = ast.NewConstructionError(op, format, args...)
	}
}

func (b *selectBuilder) addSelect(exprs []ast.Expression) {
	for _, e := range exprs {
		if utils.IsNil(e) {
			b.fail("builder.Select", "select list expression is nil")
			return
		}
	}
	b.selectList = append(b.selectList, exprs...)
}

func (b *selectBuilder) addFrom(tables []*ast.Table) {
	if len(tables) == 0 {
		b.fail("builder.From", "at least one table is required")
		return
	}
	for _, t := range tables {
		if t == nil {
			b.fail("builder.From", "table is nil")
			return
		}
	}
	b.from = append(b.from, tables...)
}

func (b *selectBuilder) addFromName(name string) {
	if t := b.namedTable("builder.FromName", name); t != nil {
		b.from = append(b.from, t)
	}
}

func (b *selectBuilder) namedTable(op, name string) *ast.Table {
	if strings.TrimSpace(name) == "" {
		b.fail(op, "table name is empty")
		return nil
	}
	return ast.NewTable(name)
}

func (b *selectBuilder) join(table *ast.Table) {
	b.flushJoin()
	b.inJoin = true
	if table == nil {
		b.fail("builder.Join", "table is nil")
	}
	b.joinTable = table
}

func (b *selectBuilder) onLeft(op string, left ast.Expression) {
	if utils.IsNil(left) {
		b.fail(op, "left operand of ON is nil")
		b.joinLeft = nil
		return
	}
	b.joinLeft = left
}

func (b *selectBuilder) onEquals(right ast.Expression) {
	rightNil := utils.IsNil(right)
	if rightNil {
		b.fail("builder.Equals", "right operand of ON is nil")
	}
	if b.joinLeft != nil && !rightNil {
		b.joinOn = append(b.joinOn, ast.IsEqual(b.joinLeft, right))
	}
	b.joinLeft = nil
}

// flushJoin turns the join being chained into an ast.Join. Every method
// reachable after Equals calls it before touching other clauses.
func (b *selectBuilder) flushJoin() {
	if !b.inJoin {
		return
	}
	table, on := b.joinTable, b.joinOn
	b.inJoin, b.joinTable, b.joinOn, b.joinLeft = false, nil, nil, nil
	if table == nil || len(on) == 0 {
		return
	}
	var cond ast.Condition = on[0]
	if len(on) > 1 {
		cond = ast.And(on...)
	}
	b.joins = append(b.joins, ast.NewJoin(table, cond))
}

func (b *selectBuilder) setWhere(cond ast.Condition) {
	b.flushJoin()
	if utils.IsNil(cond) {
		b.fail("builder.Where", "condition is nil")
		return
	}
	b.where = cond
}

func (b *selectBuilder) combineWhere(op string, cond ast.Condition, or bool) {
	if utils.IsNil(cond) {
		b.fail(op, "condition is nil")
		return
	}
	switch {
	case b.where == nil:
		b.where = cond
	case or:
		b.where = ast.Or(b.where, cond)
	default:
		b.where = ast.And(b.where, cond)
	}
}

func (b *selectBuilder) orderByColumns(columns []*ast.Column) {
	b.flushJoin()
	for _, c := range columns {
		if c == nil {
			b.fail("builder.OrderBy", "column is nil")
			return
		}
	}
	for _, c := range columns {
		b.orderBy = append(b.orderBy, ast.NewOrderByField(c))
	}
}

func (b *selectBuilder) orderByIndexes(indexes []int) {
	b.flushJoin()
	fields := make([]*ast.OrderByField, 0, len(indexes))
	for _, i := range indexes {
		if i < 1 || i > len(b.selectList) {
			b.fail("builder.OrderByIndex", "index %d is outside the select list (1..%d)", i, len(b.selectList))
			return
		}
		c, ok := b.selectList[i-1].(*ast.Column)
		if !ok {
			b.fail("builder.OrderByIndex", "select list item %d is not a column", i)
			return
		}
		fields = append(fields, ast.NewOrderByField(c))
	}
	b.orderBy = append(b.orderBy, fields...)
}

func (b *selectBuilder) orderByFields(fields []*ast.OrderByField) {
	b.flushJoin()
	for _, f := range fields {
		if f == nil {
			b.fail("builder.OrderByFields", "order by field is nil")
			return
		}
	}
	b.orderBy = append(b.orderBy, fields...)
}

func (b *selectBuilder) setLimit(op string, n int64) {
	b.flushJoin()
	if n < 0 {
		b.fail(op, "limit must not be negative, got %d", n)
		return
	}
	b.limit = &n
}

func (b *selectBuilder) setOffset(op string, n int64) {
	b.flushJoin()
	if n < 0 {
		b.fail(op, "offset must not be negative, got %d", n)
		return
	}
	b.offset = &n
}

func (b *selectBuilder) build() (*ast.Select, error) {
	b.flushJoin()
	if b.err != nil {
		return nil, b.err
	}
	sel := ast.NewSelect(ast.SelectParts{
		Distinct:   b.distinct,
		SelectList: b.selectList,
		From:       ast.NewFrom(b.from...),
		Joins:      b.joins,
		Where:      b.whereClause(),
		OrderBy:    b.orderBy,
		Limit:      b.limit,
		Offset:     b.offset,
	})
	if err := ast.Validate(sel); err != nil {
		return nil, err
	}
	return sel, nil
}

func (b *selectBuilder) whereClause() *ast.Where {
	if b.where == nil {
		return nil
	}
	return ast.NewWhere(b.where)
}
