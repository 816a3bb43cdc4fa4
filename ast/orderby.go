package ast

import "github.com/Konsultn-Engineering/relsql/utils"

type Direction int

const (
	DirectionUnspecified Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ASC"
	case Descending:
		return "DESC"
	default:
		return ""
	}
}

// OrderByField orders by a column, optionally with an explicit direction.
type OrderByField struct {
	column    *Column
	direction Direction
}

func NewOrderByField(column *Column) *OrderByField {
	mustNotBeNil("ast.NewOrderByField", "column", column)
	return &OrderByField{column: column}
}

func (o *OrderByField) Asc() *OrderByField {
	return &OrderByField{column: o.column, direction: Ascending}
}

func (o *OrderByField) Desc() *OrderByField {
	return &OrderByField{column: o.column, direction: Descending}
}

func (o *OrderByField) Column() *Column      { return o.column }
func (o *OrderByField) Direction() Direction { return o.direction }
func (o *OrderByField) Type() NodeType       { return NodeOrderByField }

func (o *OrderByField) Visit(v Visitor) {
	v.Enter(o)
	o.column.Visit(v)
	v.Leave(o)
}

func (o *OrderByField) Fingerprint() uint64 {
	return utils.NewFingerprint("order").Uint64(o.column.Fingerprint()).Uint64(uint64(o.direction)).Sum()
}

func (o *OrderByField) String() string {
	if o.direction == DirectionUnspecified {
		return o.column.ReferenceName()
	}
	return o.column.ReferenceName() + " " + o.direction.String()
}
