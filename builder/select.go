package builder

import (
	"github.com/Konsultn-Engineering/relsql/ast"
)

// Each interface below is one position in the SELECT grammar. Methods
// return the next legal position, so clauses cannot be chained out of
// order.

type Buildable interface {
	// Build returns the first error recorded while chaining, or the
	// validation error of the assembled statement.
	Build() (*ast.Select, error)
}

type Orderable interface {
	OrderBy(columns ...*ast.Column) SelectOrdered
	// OrderByIndex orders by select-list positions, starting at 1. Each
	// position must hold a column.
	OrderByIndex(indexes ...int) SelectOrdered
	OrderByFields(fields ...*ast.OrderByField) SelectOrdered
}

type Start interface {
	// Top sets the limit ahead of the select list.
	Top(n int64) Start
	Distinct() Start
	Select(exprs ...ast.Expression) SelectAndFrom
}

type SelectAndFrom interface {
	Select(exprs ...ast.Expression) SelectAndFrom
	Distinct() SelectAndFrom
	From(tables ...*ast.Table) SelectFromAndJoin
	FromName(name string) SelectFromAndJoin
}

type SelectFromAndJoin interface {
	Buildable
	Orderable
	From(tables ...*ast.Table) SelectFromAndJoin
	FromName(name string) SelectFromAndJoin
	Join(table *ast.Table) SelectOn
	JoinName(name string) SelectOn
	Where(cond ast.Condition) SelectWhereAndOr
	Distinct() SelectFromAndJoin
	Limit(n int64) SelectFromAndJoin
	Offset(n int64) SelectFromAndJoin
	LimitOffset(limit, offset int64) SelectFromAndJoin
}

type SelectOn interface {
	On(left ast.Expression) SelectOnComparison
}

type SelectOnComparison interface {
	Equals(right ast.Expression) SelectFromAndJoinCondition
}

type SelectFromAndJoinCondition interface {
	Buildable
	Orderable
	// And adds another equality to the ON condition of the current join.
	And(left ast.Expression) SelectOnComparison
	Join(table *ast.Table) SelectOn
	JoinName(name string) SelectOn
	Where(cond ast.Condition) SelectWhereAndOr
	Limit(n int64) SelectFromAndJoin
	Offset(n int64) SelectFromAndJoin
	LimitOffset(limit, offset int64) SelectFromAndJoin
}

type SelectWhereAndOr interface {
	Buildable
	Orderable
	// And and Or combine with everything chained so far:
	// Where(a).And(b).Or(c) is (a AND b) OR c.
	And(cond ast.Condition) SelectWhereAndOr
	Or(cond ast.Condition) SelectWhereAndOr
	Limit(n int64) SelectLimited
	Offset(n int64) SelectLimited
	LimitOffset(limit, offset int64) SelectLimited
}

type SelectOrdered interface {
	Buildable
	Orderable
	Limit(n int64) SelectLimited
	Offset(n int64) SelectLimited
	LimitOffset(limit, offset int64) SelectLimited
}

type SelectLimited interface {
	Buildable
	Limit(n int64) SelectLimited
	Offset(n int64) SelectLimited
	LimitOffset(limit, offset int64) SelectLimited
}

// New starts a statement that needs something before its select list,
// such as Top or Distinct.
func New() Start {
	return start{&selectBuilder{}}
}

// Select starts a statement with the given select list.
func Select(exprs ...ast.Expression) SelectAndFrom {
	return New().Select(exprs...)
}

type start struct{ b *selectBuilder }

func (s start) Top(n int64) Start {
	s.b.setLimit("builder.Top", n)
	return s
}

func (s start) Distinct() Start {
	s.b.distinct = true
	return s
}

func (s start) Select(exprs ...ast.Expression) SelectAndFrom {
	s.b.addSelect(exprs)
	return selectAndFrom(s)
}

type selectAndFrom struct{ b *selectBuilder }

func (s selectAndFrom) Select(exprs ...ast.Expression) SelectAndFrom {
	s.b.addSelect(exprs)
	return s
}
func (s selectAndFrom) Distinct() SelectAndFrom {
	s.b.distinct = true
	return s
}
func (s selectAndFrom) From(tables ...*ast.Table) SelectFromAndJoin {
	s.b.addFrom(tables)
	return fromAndJoin(s)
}
func (s selectAndFrom) FromName(name string) SelectFromAndJoin {
	s.b.addFromName(name)
	return fromAndJoin(s)
}

type fromAndJoin struct{ b *selectBuilder }

func (s fromAndJoin) Build() (*ast.Select, error) { return s.b.build() }
func (s fromAndJoin) From(tables ...*ast.Table) SelectFromAndJoin {
	s.b.addFrom(tables)
	return s
}
func (s fromAndJoin) FromName(name string) SelectFromAndJoin {
	s.b.addFromName(name)
	return s
}
func (s fromAndJoin) Join(table *ast.Table) SelectOn {
	s.b.join(table)
	return on(s)
}
func (s fromAndJoin) JoinName(name string) SelectOn {
	s.b.join(s.b.namedTable("builder.JoinName", name))
	return on(s)
}
func (s fromAndJoin) Where(cond ast.Condition) SelectWhereAndOr {
	s.b.setWhere(cond)
	return whereAndOr(s)
}
func (s fromAndJoin) Distinct() SelectFromAndJoin {
	s.b.distinct = true
	return s
}
func (s fromAndJoin) OrderBy(columns ...*ast.Column) SelectOrdered {
	s.b.orderByColumns(columns)
	return ordered(s)
}
func (s fromAndJoin) OrderByIndex(indexes ...int) SelectOrdered {
	s.b.orderByIndexes(indexes)
	return ordered(s)
}
func (s fromAndJoin) OrderByFields(fields ...*ast.OrderByField) SelectOrdered {
	s.b.orderByFields(fields)
	return ordered(s)
}
func (s fromAndJoin) Limit(n int64) SelectFromAndJoin {
	s.b.setLimit("builder.Limit", n)
	return s
}
func (s fromAndJoin) Offset(n int64) SelectFromAndJoin {
	s.b.setOffset("builder.Offset", n)
	return s
}
func (s fromAndJoin) LimitOffset(limit, offset int64) SelectFromAndJoin {
	s.b.setLimit("builder.LimitOffset", limit)
	s.b.setOffset("builder.LimitOffset", offset)
	return s
}

type on struct{ b *selectBuilder }

func (s on) On(left ast.Expression) SelectOnComparison {
	s.b.onLeft("builder.On", left)
	return onComparison(s)
}

type onComparison struct{ b *selectBuilder }

func (s onComparison) Equals(right ast.Expression) SelectFromAndJoinCondition {
	s.b.onEquals(right)
	return joinCondition(s)
}

type joinCondition struct{ b *selectBuilder }

func (s joinCondition) Build() (*ast.Select, error) { return s.b.build() }
func (s joinCondition) And(left ast.Expression) SelectOnComparison {
	s.b.onLeft("builder.And", left)
	return onComparison(s)
}
func (s joinCondition) Join(table *ast.Table) SelectOn {
	return fromAndJoin(s).Join(table)
}
func (s joinCondition) JoinName(name string) SelectOn {
	return fromAndJoin(s).JoinName(name)
}
func (s joinCondition) Where(cond ast.Condition) SelectWhereAndOr {
	return fromAndJoin(s).Where(cond)
}
func (s joinCondition) OrderBy(columns ...*ast.Column) SelectOrdered {
	return fromAndJoin(s).OrderBy(columns...)
}
func (s joinCondition) OrderByIndex(indexes ...int) SelectOrdered {
	return fromAndJoin(s).OrderByIndex(indexes...)
}
func (s joinCondition) OrderByFields(fields ...*ast.OrderByField) SelectOrdered {
	return fromAndJoin(s).OrderByFields(fields...)
}
func (s joinCondition) Limit(n int64) SelectFromAndJoin {
	return fromAndJoin(s).Limit(n)
}
func (s joinCondition) Offset(n int64) SelectFromAndJoin {
	return fromAndJoin(s).Offset(n)
}
func (s joinCondition) LimitOffset(limit, offset int64) SelectFromAndJoin {
	return fromAndJoin(s).LimitOffset(limit, offset)
}

type whereAndOr struct{ b *selectBuilder }

func (s whereAndOr) Build() (*ast.Select, error) { return s.b.build() }
func (s whereAndOr) And(cond ast.Condition) SelectWhereAndOr {
	s.b.combineWhere("builder.And", cond, false)
	return s
}
func (s whereAndOr) Or(cond ast.Condition) SelectWhereAndOr {
	s.b.combineWhere("builder.Or", cond, true)
	return s
}
func (s whereAndOr) OrderBy(columns ...*ast.Column) SelectOrdered {
	return fromAndJoin(s).OrderBy(columns...)
}
func (s whereAndOr) OrderByIndex(indexes ...int) SelectOrdered {
	return fromAndJoin(s).OrderByIndex(indexes...)
}
func (s whereAndOr) OrderByFields(fields ...*ast.OrderByField) SelectOrdered {
	return fromAndJoin(s).OrderByFields(fields...)
}
func (s whereAndOr) Limit(n int64) SelectLimited  { return limited(s).Limit(n) }
func (s whereAndOr) Offset(n int64) SelectLimited { return limited(s).Offset(n) }
func (s whereAndOr) LimitOffset(limit, offset int64) SelectLimited {
	return limited(s).LimitOffset(limit, offset)
}

type ordered struct{ b *selectBuilder }

func (s ordered) Build() (*ast.Select, error) { return s.b.build() }
func (s ordered) OrderBy(columns ...*ast.Column) SelectOrdered {
	s.b.orderByColumns(columns)
	return s
}
func (s ordered) OrderByIndex(indexes ...int) SelectOrdered {
	s.b.orderByIndexes(indexes)
	return s
}
func (s ordered) OrderByFields(fields ...*ast.OrderByField) SelectOrdered {
	s.b.orderByFields(fields)
	return s
}
func (s ordered) Limit(n int64) SelectLimited  { return limited(s).Limit(n) }
func (s ordered) Offset(n int64) SelectLimited { return limited(s).Offset(n) }
func (s ordered) LimitOffset(limit, offset int64) SelectLimited {
	return limited(s).LimitOffset(limit, offset)
}

type limited struct{ b *selectBuilder }

func (s limited) Build() (*ast.Select, error) { return s.b.build() }
func (s limited) Limit(n int64) SelectLimited {
	s.b.setLimit("builder.Limit", n)
	return s
}
func (s limited) Offset(n int64) SelectLimited {
	s.b.setOffset("builder.Offset", n)
	return s
}
func (s limited) LimitOffset(limit, offset int64) SelectLimited {
	s.b.setLimit("builder.LimitOffset", limit)
	s.b.setOffset("builder.LimitOffset", offset)
	return s
}
