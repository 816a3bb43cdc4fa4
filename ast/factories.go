package ast

// Columns creates unqualified columns.
func Columns(names ...string) []Expression {
	exprs := make([]Expression, len(names))
	for i, name := range names {
		exprs[i] = NewColumn(name, nil)
	}
	return exprs
}

// Expressions widens columns to select-list expressions.
func Expressions(columns ...*Column) []Expression {
	exprs := make([]Expression, len(columns))
	for i, c := range columns {
		exprs[i] = c
	}
	return exprs
}

// JoinOn builds JOIN table ON left = right.
func JoinOn(table *Table, left, right Expression) *Join {
	return NewJoin(table, IsEqual(left, right))
}

// OrderByAsc and OrderByDesc mirror Column.Asc / Column.Desc for bare names.
func OrderByAsc(name string) *OrderByField {
	return NewOrderByField(NewColumn(name, nil)).Asc()
}

func OrderByDesc(name string) *OrderByField {
	return NewOrderByField(NewColumn(name, nil)).Desc()
}
