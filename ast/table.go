package ast

import "github.com/Konsultn-Engineering/relsql/utils"

// Table is a table source. Two tables are the same source only when they
// are the same pointer, so a self-join uses two Table values.
type Table struct {
	name  string
	alias string
}

// NewTable panics with a *ConstructionError when name is empty.
func NewTable(name string) *Table {
	mustHaveText("ast.NewTable", "table name", name)
	return &Table{name: name}
}

// AliasedTable is shorthand for NewTable(name).As(alias).
func AliasedTable(name, alias string) *Table {
	return NewTable(name).As(alias)
}

// As returns a new, distinct table source with the given alias.
func (t *Table) As(alias string) *Table {
	mustHaveText("ast.Table.As", "alias", alias)
	return &Table{name: t.name, alias: alias}
}

func (t *Table) Name() string    { return t.name }
func (t *Table) Alias() string   { return t.alias }
func (t *Table) IsAliased() bool { return t.alias != "" }

// ReferenceName is the name columns use to qualify themselves.
func (t *Table) ReferenceName() string {
	if t.alias != "" {
		return t.alias
	}
	return t.name
}

// Column creates a column owned by t.
func (t *Table) Column(name string) *Column {
	return NewColumn(name, t)
}

// Columns creates one column per name, ready for a select list.
func (t *Table) Columns(names ...string) []Expression {
	exprs := make([]Expression, len(names))
	for i, name := range names {
		exprs[i] = t.Column(name)
	}
	return exprs
}

// Asterisk selects every column of t.
func (t *Table) Asterisk() *Asterisk {
	return &Asterisk{table: t}
}

func (t *Table) Type() NodeType { return NodeTable }

func (t *Table) Visit(v Visitor) {
	v.Enter(t)
	v.Leave(t)
}

func (t *Table) Fingerprint() uint64 {
	return utils.NewFingerprint("table").String(t.name).String(t.alias).Sum()
}

func (t *Table) String() string {
	if t.alias != "" {
		return t.name + " AS " + t.alias
	}
	return t.name
}
