package ast

import "github.com/Konsultn-Engineering/relsql/utils"

// Join is JOIN table ON condition.
type Join struct {
	table *Table
	on    Condition
}

func NewJoin(table *Table, on Condition) *Join {
	mustNotBeNil("ast.NewJoin", "joined table", table)
	mustNotBeNil("ast.NewJoin", "ON condition", on)
	return &Join{table: table, on: on}
}

func (j *Join) Table() *Table  { return j.table }
func (j *Join) On() Condition  { return j.on }
func (j *Join) Type() NodeType { return NodeJoin }

func (j *Join) Visit(v Visitor) {
	v.Enter(j)
	j.table.Visit(v)
	j.on.Visit(v)
	v.Leave(j)
}

func (j *Join) Fingerprint() uint64 {
	return utils.NewFingerprint("join").Uint64(j.table.Fingerprint()).Uint64(j.on.Fingerprint()).Sum()
}

func (j *Join) String() string {
	return "JOIN " + j.table.String() + " ON " + nodeString(j.on)
}

// From is the ordered list of table sources. Repeated tables are legal.
type From struct {
	tables []*Table
}

func NewFrom(tables ...*Table) *From {
	if len(tables) == 0 {
		panic(NewConstructionError("ast.NewFrom", "FROM requires at least one table"))
	}
	for _, t := range tables {
		mustNotBeNil("ast.NewFrom", "table", t)
	}
	return &From{tables: append([]*Table(nil), tables...)}
}

func (f *From) Tables() []*Table {
	return append([]*Table(nil), f.tables...)
}

func (f *From) Type() NodeType { return NodeFrom }

func (f *From) Visit(v Visitor) {
	v.Enter(f)
	for _, t := range f.tables {
		t.Visit(v)
	}
	v.Leave(f)
}

func (f *From) Fingerprint() uint64 {
	fp := utils.NewFingerprint("from")
	for _, t := range f.tables {
		fp.Uint64(t.Fingerprint())
	}
	return fp.Sum()
}
