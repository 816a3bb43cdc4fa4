package ast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Konsultn-Engineering/relsql/utils"
)

var (
	// ErrConstruction is matched by every *ConstructionError.
	ErrConstruction = errors.New("invalid statement construction")
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("invalid select statement")
)

// ConstructionError reports a rejected argument to a factory or builder call.
type ConstructionError struct {
	Op     string
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *ConstructionError) Unwrap() error { return ErrConstruction }

// NewConstructionError creates a construction error for op.
func NewConstructionError(op, format string, args ...any) *ConstructionError {
	return &ConstructionError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

func mustHaveText(op, what, s string) {
	if strings.TrimSpace(s) == "" {
		panic(NewConstructionError(op, "%s must not be empty", what))
	}
}

// mustNotBeNil also rejects typed nil pointers held by an interface.
func mustNotBeNil(op, what string, v any) {
	if utils.IsNil(v) {
		panic(NewConstructionError(op, "%s must not be nil", what))
	}
}

// Clause names the part of a SELECT that required a table.
type Clause string

const (
	ClauseSelect  Clause = "SELECT column"
	ClauseWhere   Clause = "WHERE predicate"
	ClauseOrderBy Clause = "ORDER BY column"
)

// ValidationError is returned by Validate. Table is nil when the select
// list is empty.
type ValidationError struct {
	Table  *Table
	Clause Clause
	From   []*Table
	Join   []*Table
}

func (e *ValidationError) Error() string {
	if e.Table == nil {
		return "SELECT does not declare a select list"
	}
	return fmt.Sprintf("required table [%s] by a %s not imported by FROM %s or JOIN %s",
		e.Table, e.Clause, tableList(e.From), tableList(e.Join))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func tableList(tables []*Table) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, t := range tables {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
