package ast

import "github.com/Konsultn-Engineering/relsql/utils"

// Column references a column, optionally qualified by its owning table.
// The table is a handle only; a Column never owns it.
type Column struct {
	name  string
	table *Table
	alias string
}

// NewColumn creates a column. table may be nil for a bare column.
func NewColumn(name string, table *Table) *Column {
	mustHaveText("ast.NewColumn", "column name", name)
	return &Column{name: name, table: table}
}

// AliasedColumn is shorthand for NewColumn(name, table).As(alias).
func AliasedColumn(name string, table *Table, alias string) *Column {
	return NewColumn(name, table).As(alias)
}

func (c *Column) As(alias string) *Column {
	mustHaveText("ast.Column.As", "alias", alias)
	return &Column{name: c.name, table: c.table, alias: alias}
}

// From re-owns the column by table, keeping any alias.
func (c *Column) From(table *Table) *Column {
	mustNotBeNil("ast.Column.From", "table", table)
	return &Column{name: c.name, table: table, alias: c.alias}
}

func (c *Column) Name() string      { return c.name }
func (c *Column) Table() *Table     { return c.table }
func (c *Column) Alias() string     { return c.alias }
func (c *Column) IsAliased() bool   { return c.alias != "" }
func (c *Column) IsQualified() bool { return c.table != nil }

// ReferenceName is how the column is referenced outside its defining
// position, e.g. in ORDER BY.
func (c *Column) ReferenceName() string {
	if c.alias != "" {
		return c.alias
	}
	return c.name
}

// Asc orders by c ascending.
func (c *Column) Asc() *OrderByField { return NewOrderByField(c).Asc() }

// Desc orders by c descending.
func (c *Column) Desc() *OrderByField { return NewOrderByField(c).Desc() }

func (c *Column) Type() NodeType { return NodeColumn }
func (c *Column) expression()    {}

func (c *Column) Visit(v Visitor) {
	v.Enter(c)
	if c.table != nil {
		c.table.Visit(v)
	}
	v.Leave(c)
}

func (c *Column) Fingerprint() uint64 {
	f := utils.NewFingerprint("column").String(c.name).String(c.alias)
	if c.table != nil {
		f.Uint64(c.table.Fingerprint())
	}
	return f.Sum()
}

func (c *Column) String() string {
	s := c.name
	if c.table != nil {
		s = c.table.ReferenceName() + "." + s
	}
	if c.alias != "" {
		s += " AS " + c.alias
	}
	return s
}
