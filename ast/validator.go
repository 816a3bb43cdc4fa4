package ast

// Validate checks that s declares a select list and that every table
// required by a qualified select-list column (or table.*), by a WHERE
// predicate, or by an ORDER BY column is imported by FROM or JOIN.
// Unqualified columns never require a table.
func Validate(s *Select) error {
	v := &selectValidator{}
	s.Visit(v)
	return v.result()
}

type tableSet []*Table

func (ts tableSet) contains(t *Table) bool {
	for _, x := range ts {
		if x == t {
			return true
		}
	}
	return false
}

func (ts *tableSet) add(t *Table) {
	if !ts.contains(t) {
		*ts = append(*ts, t)
	}
}

type selectValidator struct {
	selectFieldCount int

	requiredBySelect  tableSet
	requiredByWhere   tableSet
	requiredByOrderBy tableSet

	from tableSet
	join tableSet

	// nearest structurally significant ancestors, innermost last
	parents []Node
}

func (v *selectValidator) parent() Node {
	if len(v.parents) == 0 {
		return nil
	}
	return v.parents[len(v.parents)-1]
}

func isStructural(n Node) bool {
	switch n.(type) {
	case *Select, *SimpleFunction, *From, *Join, *OrderByField, *Where:
		return true
	}
	return false
}

func (v *selectValidator) Enter(n Node) {
	parent := v.parent()

	switch p := parent.(type) {
	case *Select:
		if _, ok := n.(Expression); ok {
			v.selectFieldCount++
		}
		v.requireForSelect(n)
	case *SimpleFunction:
		if v.inSelectList() {
			v.requireForSelect(n)
		}
	case *From:
		if t, ok := n.(*Table); ok {
			v.from.add(t)
		}
	case *Join:
		if t, ok := n.(*Table); ok && t == p.Table() {
			v.join.add(t)
		}
	case *OrderByField:
		if c, ok := n.(*Column); ok && c.Table() != nil {
			v.requiredByOrderBy.add(c.Table())
		}
	}

	if w, ok := n.(*Where); ok {
		w.Visit(VisitorFunc(func(item Node) {
			if t, ok := item.(*Table); ok {
				v.requiredByWhere.add(t)
			}
		}))
	}

	if isStructural(n) {
		v.parents = append(v.parents, n)
	}
}

func (v *selectValidator) Leave(n Node) {
	if isStructural(n) && v.parent() == n {
		v.parents = v.parents[:len(v.parents)-1]
	}
}

// inSelectList reports whether the innermost function is part of the
// select list rather than, say, a WHERE operand.
func (v *selectValidator) inSelectList() bool {
	for i := len(v.parents) - 1; i >= 0; i-- {
		switch v.parents[i].(type) {
		case *SimpleFunction:
			continue
		case *Select:
			return true
		default:
			return false
		}
	}
	return false
}

func (v *selectValidator) requireForSelect(n Node) {
	switch e := n.(type) {
	case *Column:
		if e.Table() != nil {
			v.requiredBySelect.add(e.Table())
		}
	case *Asterisk:
		if e.Table() != nil {
			v.requiredBySelect.add(e.Table())
		}
	}
}

func (v *selectValidator) result() error {
	if v.selectFieldCount == 0 {
		return &ValidationError{Clause: ClauseSelect, From: v.from, Join: v.join}
	}
	checks := []struct {
		clause   Clause
		required tableSet
	}{
		{ClauseSelect, v.requiredBySelect},
		{ClauseWhere, v.requiredByWhere},
		{ClauseOrderBy, v.requiredByOrderBy},
	}
	for _, c := range checks {
		for _, t := range c.required {
			if !v.from.contains(t) && !v.join.contains(t) {
				return &ValidationError{Table: t, Clause: c.clause, From: v.from, Join: v.join}
			}
		}
	}
	return nil
}
