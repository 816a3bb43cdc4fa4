package ast

import (
	"fmt"

	"github.com/Konsultn-Engineering/relsql/utils"
)

// Literal is a constant inlined into the statement text by the dialect.
type Literal struct {
	value any
}

func LiteralOf(value any) *Literal {
	return &Literal{value: value}
}

func (l *Literal) Value() any      { return l.value }
func (l *Literal) Type() NodeType  { return NodeLiteral }
func (l *Literal) expression()     {}
func (l *Literal) Visit(v Visitor) { v.Enter(l); v.Leave(l) }

func (l *Literal) Fingerprint() uint64 {
	return utils.NewFingerprint("literal").String(fmt.Sprintf("%T:%v", l.value, l.value)).Sum()
}

func (l *Literal) String() string {
	return fmt.Sprint(l.value)
}
