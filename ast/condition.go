package ast

import (
	"fmt"
	"strings"

	"github.com/Konsultn-Engineering/relsql/utils"
)

// Equals is left = right.
type Equals struct {
	left, right Expression
}

func IsEqual(left, right Expression) *Equals {
	mustNotBeNil("ast.IsEqual", "left operand", left)
	mustNotBeNil("ast.IsEqual", "right operand", right)
	return &Equals{left: left, right: right}
}

func (e *Equals) Left() Expression  { return e.left }
func (e *Equals) Right() Expression { return e.right }
func (e *Equals) Type() NodeType    { return NodeEquals }
func (e *Equals) condition()        {}

func (e *Equals) Visit(v Visitor) {
	v.Enter(e)
	e.left.Visit(v)
	e.right.Visit(v)
	v.Leave(e)
}

func (e *Equals) Fingerprint() uint64 {
	return utils.NewFingerprint("eq").Uint64(e.left.Fingerprint()).Uint64(e.right.Fingerprint()).Sum()
}

func (e *Equals) String() string {
	return nodeString(e.left) + " = " + nodeString(e.right)
}

// In is left IN (right...).
type In struct {
	left  Expression
	right []Expression
}

func IsIn(left Expression, right ...Expression) *In {
	mustNotBeNil("ast.IsIn", "left operand", left)
	if len(right) == 0 {
		panic(NewConstructionError("ast.IsIn", "IN requires at least one value"))
	}
	for _, r := range right {
		mustNotBeNil("ast.IsIn", "IN value", r)
	}
	return &In{left: left, right: append([]Expression(nil), right...)}
}

func (in *In) Left() Expression { return in.left }

func (in *In) Right() []Expression {
	return append([]Expression(nil), in.right...)
}

func (in *In) Type() NodeType { return NodeIn }
func (in *In) condition()     {}

func (in *In) Visit(v Visitor) {
	v.Enter(in)
	in.left.Visit(v)
	for _, r := range in.right {
		r.Visit(v)
	}
	v.Leave(in)
}

func (in *In) Fingerprint() uint64 {
	f := utils.NewFingerprint("in").Uint64(in.left.Fingerprint())
	for _, r := range in.right {
		f.Uint64(r.Fingerprint())
	}
	return f.Sum()
}

func (in *In) String() string {
	parts := make([]string, len(in.right))
	for i, r := range in.right {
		parts[i] = nodeString(r)
	}
	return nodeString(in.left) + " IN (" + strings.Join(parts, ", ") + ")"
}

// IsNull is operand IS [NOT] NULL.
type IsNull struct {
	operand Expression
	negated bool
}

func IsNullOf(operand Expression) *IsNull {
	mustNotBeNil("ast.IsNullOf", "operand", operand)
	return &IsNull{operand: operand}
}

func IsNotNull(operand Expression) *IsNull {
	mustNotBeNil("ast.IsNotNull", "operand", operand)
	return &IsNull{operand: operand, negated: true}
}

// Not flips the negation.
func (n *IsNull) Not() *IsNull {
	return &IsNull{operand: n.operand, negated: !n.negated}
}

func (n *IsNull) Operand() Expression { return n.operand }
func (n *IsNull) IsNegated() bool     { return n.negated }
func (n *IsNull) Type() NodeType      { return NodeIsNull }
func (n *IsNull) condition()          {}

func (n *IsNull) Visit(v Visitor) {
	v.Enter(n)
	n.operand.Visit(v)
	v.Leave(n)
}

func (n *IsNull) Fingerprint() uint64 {
	return utils.NewFingerprint("isnull").Uint64(n.operand.Fingerprint()).Bool(n.negated).Sum()
}

func (n *IsNull) String() string {
	if n.negated {
		return nodeString(n.operand) + " IS NOT NULL"
	}
	return nodeString(n.operand) + " IS NULL"
}

// MultipleCondition is the shared shape of AND and OR: an ordered list of
// conditions joined by a delimiter.
type MultipleCondition struct {
	conditions []Condition
	delimiter  string
}

func newMultiple(op, delimiter string, conditions []Condition) MultipleCondition {
	if len(conditions) < 2 {
		panic(NewConstructionError(op, "%s requires at least two conditions, got %d", delimiter, len(conditions)))
	}
	for _, c := range conditions {
		mustNotBeNil(op, "condition", c)
	}
	return MultipleCondition{conditions: append([]Condition(nil), conditions...), delimiter: delimiter}
}

func (m *MultipleCondition) Conditions() []Condition {
	return append([]Condition(nil), m.conditions...)
}

func (m *MultipleCondition) Delimiter() string { return m.delimiter }

func (m *MultipleCondition) visit(self Node, v Visitor) {
	v.Enter(self)
	for _, c := range m.conditions {
		c.Visit(v)
	}
	v.Leave(self)
}

func (m *MultipleCondition) fingerprint() uint64 {
	f := utils.NewFingerprint(m.delimiter)
	for _, c := range m.conditions {
		f.Uint64(c.Fingerprint())
	}
	return f.Sum()
}

func (m *MultipleCondition) join() string {
	parts := make([]string, len(m.conditions))
	for i, c := range m.conditions {
		parts[i] = nodeString(c)
	}
	return strings.Join(parts, " "+m.delimiter+" ")
}

type AndCondition struct {
	MultipleCondition
}

func And(conditions ...Condition) *AndCondition {
	return &AndCondition{newMultiple("ast.And", "AND", conditions)}
}

func (a *AndCondition) Type() NodeType      { return NodeAnd }
func (a *AndCondition) condition()          {}
func (a *AndCondition) Visit(v Visitor)     { a.visit(a, v) }
func (a *AndCondition) Fingerprint() uint64 { return a.fingerprint() }
func (a *AndCondition) String() string      { return a.join() }

type OrCondition struct {
	MultipleCondition
}

func Or(conditions ...Condition) *OrCondition {
	return &OrCondition{newMultiple("ast.Or", "OR", conditions)}
}

func (o *OrCondition) Type() NodeType      { return NodeOr }
func (o *OrCondition) condition()          {}
func (o *OrCondition) Visit(v Visitor)     { o.visit(o, v) }
func (o *OrCondition) Fingerprint() uint64 { return o.fingerprint() }
func (o *OrCondition) String() string      { return "(" + o.join() + ")" }

func nodeString(n Node) string {
	if s, ok := n.(fmt.Stringer); ok {
		return s.String()
	}
	return n.Type().String()
}
