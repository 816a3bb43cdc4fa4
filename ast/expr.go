package ast

import "github.com/Konsultn-Engineering/relsql/utils"

// Asterisk selects all columns, of one table when table is set.
type Asterisk struct {
	table *Table
}

// Star is the unqualified asterisk, e.g. for COUNT(*).
func Star() *Asterisk { return &Asterisk{} }

func (a *Asterisk) Table() *Table  { return a.table }
func (a *Asterisk) Type() NodeType { return NodeAsterisk }
func (a *Asterisk) expression()    {}

func (a *Asterisk) Visit(v Visitor) {
	v.Enter(a)
	if a.table != nil {
		a.table.Visit(v)
	}
	v.Leave(a)
}

func (a *Asterisk) Fingerprint() uint64 {
	f := utils.NewFingerprint("asterisk")
	if a.table != nil {
		f.Uint64(a.table.Fingerprint())
	}
	return f.Sum()
}

func (a *Asterisk) String() string {
	if a.table != nil {
		return a.table.ReferenceName() + ".*"
	}
	return "*"
}

// BindMarker is a parameter placeholder. Anonymous markers render as the
// dialect's positional placeholder.
type BindMarker struct {
	name string
}

func NewBindMarker() *BindMarker { return &BindMarker{} }

// NamedBindMarker panics with a *ConstructionError when name is empty.
func NamedBindMarker(name string) *BindMarker {
	mustHaveText("ast.NamedBindMarker", "bind marker name", name)
	return &BindMarker{name: name}
}

func (b *BindMarker) Name() string   { return b.name }
func (b *BindMarker) IsNamed() bool  { return b.name != "" }
func (b *BindMarker) Type() NodeType { return NodeBindMarker }
func (b *BindMarker) expression()    {}

func (b *BindMarker) Visit(v Visitor) {
	v.Enter(b)
	v.Leave(b)
}

func (b *BindMarker) Fingerprint() uint64 {
	return utils.NewFingerprint("bind").String(b.name).Sum()
}

func (b *BindMarker) String() string {
	if b.name != "" {
		return ":" + b.name
	}
	return "?"
}
