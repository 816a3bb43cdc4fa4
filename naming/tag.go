package naming

import (
	"reflect"
	"strings"
	"sync"

	"github.com/Konsultn-Engineering/relsql/ast"
)

// Mapper derives tables and select lists from Go struct types. Column
// names come from `db` tags: `db:"name"` or `db:"column:name;unique"`
// renames, `db:"-"` skips, and other fields use the strategy.
type Mapper struct {
	strategy Strategy
	cache    sync.Map // reflect.Type -> []string
}

func NewMapper(strategy Strategy) *Mapper {
	return &Mapper{strategy: strategy}
}

var defaultMapper = NewMapper(DefaultStrategy())

// TableFor is shorthand for the default mapper's TableFor.
func TableFor(v any) *ast.Table { return defaultMapper.TableFor(v) }

// ColumnsFor is shorthand for the default mapper's ColumnsFor.
func ColumnsFor(table *ast.Table, v any) []ast.Expression {
	return defaultMapper.ColumnsFor(table, v)
}

// TableFor returns a table named after the struct type of v, which may
// be a value, a pointer or a nil pointer. Anything else panics with an
// *ast.ConstructionError.
func (m *Mapper) TableFor(v any) *ast.Table {
	t := structType("naming.TableFor", v)
	return ast.NewTable(m.strategy.TableName(t.Name()))
}

// ColumnsFor returns one column of table per mapped field of v, in field
// order. Embedded structs contribute their fields inline.
func (m *Mapper) ColumnsFor(table *ast.Table, v any) []ast.Expression {
	names := m.columnNames(structType("naming.ColumnsFor", v))
	exprs := make([]ast.Expression, len(names))
	for i, name := range names {
		exprs[i] = ast.NewColumn(name, table)
	}
	return exprs
}

func (m *Mapper) columnName(field, tag string) string {
	if tag != "" && !strings.ContainsAny(tag, ";:") {
		return tag
	}
	for _, opt := range strings.Split(tag, ";") {
		key, value, ok := strings.Cut(opt, ":")
		if key = strings.TrimSpace(key); ok && (key == "column" || key == "name") {
			return strings.TrimSpace(value)
		}
	}
	return m.strategy.ColumnName(field)
}

func structType(op string, v any) reflect.Type {
	if v == nil {
		panic(ast.NewConstructionError(op, "value is nil"))
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		panic(ast.NewConstructionError(op, "%s is not a struct", t))
	}
	return t
}
