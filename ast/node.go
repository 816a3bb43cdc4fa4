package ast

type NodeType int

const (
	NodeSelect NodeType = iota
	NodeFrom
	NodeJoin
	NodeWhere
	NodeOrderByField
	NodeTable
	NodeColumn
	NodeAsterisk
	NodeBindMarker
	NodeLiteral
	NodeFunction
	NodeEquals
	NodeIn
	NodeIsNull
	NodeAnd
	NodeOr
)

var nodeTypeNames = [...]string{
	NodeSelect:       "Select",
	NodeFrom:         "From",
	NodeJoin:         "Join",
	NodeWhere:        "Where",
	NodeOrderByField: "OrderByField",
	NodeTable:        "Table",
	NodeColumn:       "Column",
	NodeAsterisk:     "Asterisk",
	NodeBindMarker:   "BindMarker",
	NodeLiteral:      "Literal",
	NodeFunction:     "SimpleFunction",
	NodeEquals:       "Equals",
	NodeIn:           "In",
	NodeIsNull:       "IsNull",
	NodeAnd:          "AndCondition",
	NodeOr:           "OrCondition",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "Unknown"
}

// Node is implemented by every element of a SELECT tree. Visit drives a
// depth-first traversal: Enter(self), children in order, Leave(self).
type Node interface {
	Type() NodeType
	Visit(v Visitor)
	Fingerprint() uint64
}

// Expression is anything usable in a select list or as a condition operand.
type Expression interface {
	Node
	expression()
}

// Condition is a boolean predicate.
type Condition interface {
	Node
	condition()
}
