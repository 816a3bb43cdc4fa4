package dialect

import (
	"fmt"
	"strings"
)

// MySQL has no named parameters, so every marker is positional.
type MySQL struct{}

func (MySQL) Name() string { return "mysql" }

func (MySQL) QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (MySQL) BindMarker(string, int) string {
	return "?"
}

func (MySQL) RenderValue(v any) string {
	return renderValue(v, func(b []byte) string { return fmt.Sprintf("X'%x'", b) })
}
