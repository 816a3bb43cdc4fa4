package dialect

import (
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
)

// Postgres quotes identifiers the way pgx does. Named markers render as
// @name for pgx.NamedArgs and anonymous markers as $n. pgx binds either
// style but not both, so a statement must not mix named and anonymous
// markers.
type Postgres struct{}

func (Postgres) Name() string { return "postgres" }

func (Postgres) QuoteIdentifier(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func (Postgres) BindMarker(name string, position int) string {
	if name != "" {
		return "@" + name
	}
	return "$" + strconv.Itoa(position)
}

func (Postgres) RenderValue(v any) string {
	return renderValue(v, func(b []byte) string { return fmt.Sprintf("'\\x%x'", b) })
}
