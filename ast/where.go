package ast

import "github.com/Konsultn-Engineering/relsql/utils"

type Where struct {
	condition Condition
}

func NewWhere(condition Condition) *Where {
	mustNotBeNil("ast.NewWhere", "condition", condition)
	return &Where{condition: condition}
}

func (w *Where) Condition() Condition { return w.condition }
func (w *Where) Type() NodeType       { return NodeWhere }

func (w *Where) Visit(v Visitor) {
	v.Enter(w)
	w.condition.Visit(v)
	v.Leave(w)
}

func (w *Where) Fingerprint() uint64 {
	return utils.NewFingerprint("where").Uint64(w.condition.Fingerprint()).Sum()
}
