package dialect

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Dialect supplies the database-specific pieces of rendered SQL. The
// renderer's own grammar is dialect-agnostic.
type Dialect interface {
	Name() string
	QuoteIdentifier(name string) string
	// BindMarker renders a placeholder. name is empty for anonymous markers;
	// position is the 1-based index among anonymous markers.
	BindMarker(name string, position int) string
	RenderValue(v any) string
}

// ByName resolves a dialect by its configuration name.
func ByName(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "", "generic":
		return Generic{}, nil
	case "postgres", "postgresql":
		return Postgres{}, nil
	case "mysql":
		return MySQL{}, nil
	default:
		return nil, fmt.Errorf("unknown dialect: %s", name)
	}
}

// Generic renders identifiers verbatim, named markers as :name and
// anonymous markers as ?.
type Generic struct{}

func (Generic) Name() string                       { return "generic" }
func (Generic) QuoteIdentifier(name string) string { return name }

func (Generic) BindMarker(name string, _ int) string {
	if name != "" {
		return ":" + name
	}
	return "?"
}

func (Generic) RenderValue(v any) string {
	return renderValue(v, func(b []byte) string { return fmt.Sprintf("X'%x'", b) })
}

func renderValue(v any, bytes func([]byte) string) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return quoteString(val)
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64)
	case time.Time:
		return "'" + val.Format("2006-01-02 15:04:05.000000") + "'"
	case []byte:
		return bytes(val)
	default:
		return quoteString(fmt.Sprint(val))
	}
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
