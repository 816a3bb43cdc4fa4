package ast

import "github.com/Konsultn-Engineering/relsql/utils"

// SelectParts carries the clauses of a Select. NewSelect copies every slice,
// so the parts may be reused after the call.
type SelectParts struct {
	Distinct   bool
	SelectList []Expression
	From       *From
	Joins      []*Join
	Where      *Where
	OrderBy    []*OrderByField
	Limit      *int64
	Offset     *int64
}

// Select is the root of a SELECT statement. It is immutable; accessors
// return copies.
type Select struct {
	distinct   bool
	selectList []Expression
	from       *From
	joins      []*Join
	where      *Where
	orderBy    []*OrderByField
	limit      int64
	hasLimit   bool
	offset     int64
	hasOffset  bool
}

// NewSelect assembles a Select without validating table references; use
// Validate (or the builder) for that.
func NewSelect(p SelectParts) *Select {
	mustNotBeNil("ast.NewSelect", "FROM clause", p.From)
	for _, e := range p.SelectList {
		mustNotBeNil("ast.NewSelect", "select list expression", e)
	}
	for _, j := range p.Joins {
		mustNotBeNil("ast.NewSelect", "join", j)
	}
	for _, o := range p.OrderBy {
		mustNotBeNil("ast.NewSelect", "order by field", o)
	}

	s := &Select{
		distinct:   p.Distinct,
		selectList: append([]Expression(nil), p.SelectList...),
		from:       p.From,
		joins:      append([]*Join(nil), p.Joins...),
		where:      p.Where,
		orderBy:    append([]*OrderByField(nil), p.OrderBy...),
	}
	if p.Limit != nil {
		if *p.Limit < 0 {
			panic(NewConstructionError("ast.NewSelect", "limit must not be negative, got %d", *p.Limit))
		}
		s.limit, s.hasLimit = *p.Limit, true
	}
	if p.Offset != nil {
		if *p.Offset < 0 {
			panic(NewConstructionError("ast.NewSelect", "offset must not be negative, got %d", *p.Offset))
		}
		s.offset, s.hasOffset = *p.Offset, true
	}
	return s
}

func (s *Select) IsDistinct() bool { return s.distinct }

func (s *Select) SelectList() []Expression {
	return append([]Expression(nil), s.selectList...)
}

func (s *Select) From() *From { return s.from }

func (s *Select) Joins() []*Join {
	return append([]*Join(nil), s.joins...)
}

// Where returns nil when the statement has no WHERE clause.
func (s *Select) Where() *Where { return s.where }

func (s *Select) OrderBy() []*OrderByField {
	return append([]*OrderByField(nil), s.orderBy...)
}

func (s *Select) Limit() (int64, bool)  { return s.limit, s.hasLimit }
func (s *Select) Offset() (int64, bool) { return s.offset, s.hasOffset }

// TableSources counts FROM tables plus joined tables.
func (s *Select) TableSources() int {
	return len(s.from.tables) + len(s.joins)
}

func (s *Select) Type() NodeType { return NodeSelect }

func (s *Select) Visit(v Visitor) {
	v.Enter(s)
	for _, e := range s.selectList {
		e.Visit(v)
	}
	s.from.Visit(v)
	for _, j := range s.joins {
		j.Visit(v)
	}
	if s.where != nil {
		s.where.Visit(v)
	}
	for _, o := range s.orderBy {
		o.Visit(v)
	}
	v.Leave(s)
}

func (s *Select) Fingerprint() uint64 {
	f := utils.NewFingerprint("select").Bool(s.distinct)
	f.Uint64(uint64(len(s.selectList)))
	for _, e := range s.selectList {
		f.Uint64(e.Fingerprint())
	}
	f.Uint64(s.from.Fingerprint())
	f.Uint64(uint64(len(s.joins)))
	for _, j := range s.joins {
		f.Uint64(j.Fingerprint())
	}
	f.Bool(s.where != nil)
	if s.where != nil {
		f.Uint64(s.where.Fingerprint())
	}
	f.Uint64(uint64(len(s.orderBy)))
	for _, o := range s.orderBy {
		f.Uint64(o.Fingerprint())
	}
	f.Bool(s.hasLimit).Uint64(uint64(s.limit))
	f.Bool(s.hasOffset).Uint64(uint64(s.offset))
	return f.Sum()
}
