package visitor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Konsultn-Engineering/relsql/ast"
	"github.com/Konsultn-Engineering/relsql/cache"
	"github.com/Konsultn-Engineering/relsql/dialect"
)

// Qualification controls when column references carry their table
// qualifier.
type Qualification int

const (
	// QualifyAuto qualifies columns only when the statement reads from
	// more than one table source.
	QualifyAuto Qualification = iota
	QualifyAlways
	QualifyNever
)

func (q Qualification) String() string {
	switch q {
	case QualifyAlways:
		return "always"
	case QualifyNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseQualification(s string) (Qualification, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return QualifyAuto, nil
	case "always":
		return QualifyAlways, nil
	case "never":
		return QualifyNever, nil
	default:
		return QualifyAuto, fmt.Errorf("unknown qualification: %s", s)
	}
}

// Renderer turns a Select into SQL text. It holds no per-call state and
// is safe for concurrent use.
type Renderer struct {
	dialect       dialect.Dialect
	qualification Qualification
	cache         cache.QueryCache
}

type Option func(*Renderer)

func WithDialect(d dialect.Dialect) Option {
	return func(r *Renderer) { r.dialect = d }
}

// WithCache stores rendered text by statement fingerprint. A cache must
// not be shared between renderers with different dialects or
// qualification.
func WithCache(c cache.QueryCache) Option {
	return func(r *Renderer) { r.cache = c }
}

func WithQualification(q Qualification) Option {
	return func(r *Renderer) { r.qualification = q }
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{dialect: dialect.Generic{}}
	for _, opt := range opts {
		opt(r)
	}
	if r.dialect == nil {
		r.dialect = dialect.Generic{}
	}
	return r
}

func (r *Renderer) Dialect() dialect.Dialect { return r.dialect }

func (r *Renderer) Render(sel *ast.Select) (sql string, err error) {
	if sel == nil {
		return "", errors.New("render: nil select")
	}

	var fp uint64
	if r.cache != nil {
		fp = sel.Fingerprint()
		if cached, ok := r.cache.Get(fp); ok {
			return cached, nil
		}
	}

	defer func() {
		if rec := recover(); rec != nil {
			ie, ok := rec.(*InvariantError)
			if !ok {
				panic(rec)
			}
			sql, err = "", fmt.Errorf("render: %w", ie)
		}
	}()

	ctx := newRenderContext(r.dialect, r.qualification)
	sel.Visit(ctx)
	if len(ctx.stack) != 1 {
		invariant("render finished with %d visitors on the stack", len(ctx.stack))
	}

	sql = ctx.out.String()
	if r.cache != nil {
		r.cache.Set(fp, sql)
	}
	return sql, nil
}

var defaultRenderer = NewRenderer()

// Render renders sel with the generic dialect.
func Render(sel *ast.Select) (string, error) {
	return defaultRenderer.Render(sel)
}
