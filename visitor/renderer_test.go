package visitor

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/relsql/ast"
	"github.com/Konsultn-Engineering/relsql/cache"
	"github.com/Konsultn-Engineering/relsql/dialect"
)

func int64p(v int64) *int64 { return &v }

func mustRender(t *testing.T, r *Renderer, sel *ast.Select) string {
	t.Helper()
	sql, err := r.Render(sel)
	require.NoError(t, err)
	return sql
}

func TestRender(t *testing.T) {
	tbl := ast.NewTable("t")
	u := ast.NewTable("u")
	x := ast.AliasedTable("u", "x")

	tests := []struct {
		name     string
		parts    ast.SelectParts
		expected string
	}{
		{
			name: "SingleColumn",
			parts: ast.SelectParts{
				SelectList: ast.Expressions(tbl.Column("a")),
				From:       ast.NewFrom(tbl),
			},
			expected: "SELECT a FROM t",
		},
		{
			name: "JoinWhereOrderLimit",
			parts: ast.SelectParts{
				SelectList: ast.Expressions(tbl.Column("a"), tbl.Column("b").As("bb")),
				From:       ast.NewFrom(tbl),
				Joins:      []*ast.Join{ast.JoinOn(u, tbl.Column("id"), u.Column("id"))},
				Where:      ast.NewWhere(ast.IsNotNull(tbl.Column("a"))),
				OrderBy:    []*ast.OrderByField{tbl.Column("b").As("bb").Desc()},
				Limit:      int64p(10),
				Offset:     int64p(5),
			},
			expected: "SELECT t.a, t.b AS bb FROM t JOIN u ON t.id = u.id WHERE t.a IS NOT NULL ORDER BY bb DESC LIMIT 10 OFFSET 5",
		},
		{
			name: "NamedBindMarker",
			parts: ast.SelectParts{
				SelectList: ast.Expressions(tbl.Column("a")),
				From:       ast.NewFrom(tbl),
				Where:      ast.NewWhere(ast.IsEqual(tbl.Column("a"), ast.NamedBindMarker("p1"))),
			},
			expected: "SELECT a FROM t WHERE a = :p1",
		},
		{
			name: "Distinct",
			parts: ast.SelectParts{
				Distinct:   true,
				SelectList: tbl.Columns("a", "b"),
				From:       ast.NewFrom(tbl),
			},
			expected: "SELECT DISTINCT a, b FROM t",
		},
		{
			name: "AliasedJoinTable",
			parts: ast.SelectParts{
				SelectList: []ast.Expression{tbl.Asterisk(), x.Column("name")},
				From:       ast.NewFrom(tbl),
				Joins:      []*ast.Join{ast.JoinOn(x, tbl.Column("id"), x.Column("t_id"))},
			},
			expected: "SELECT t.*, x.name FROM t JOIN u AS x ON t.id = x.t_id",
		},
		{
			name: "MultipleFromTables",
			parts: ast.SelectParts{
				SelectList: ast.Expressions(tbl.Column("a"), u.Column("b")),
				From:       ast.NewFrom(tbl, u),
			},
			expected: "SELECT t.a, u.b FROM t, u",
		},
		{
			name: "JoinOnConjunction",
			parts: ast.SelectParts{
				SelectList: ast.Expressions(tbl.Column("a")),
				From:       ast.NewFrom(tbl),
				Joins: []*ast.Join{ast.NewJoin(u, ast.And(
					ast.IsEqual(tbl.Column("id"), u.Column("t_id")),
					ast.IsEqual(tbl.Column("kind"), u.Column("kind")),
				))},
			},
			expected: "SELECT t.a FROM t JOIN u ON t.id = u.t_id AND t.kind = u.kind",
		},
		{
			name: "AndWithNestedOr",
			parts: ast.SelectParts{
				SelectList: ast.Columns("a"),
				From:       ast.NewFrom(tbl),
				Where: ast.NewWhere(ast.And(
					ast.IsEqual(tbl.Column("a"), ast.LiteralOf(1)),
					ast.Or(ast.IsNullOf(tbl.Column("b")), ast.IsEqual(tbl.Column("c"), ast.NewBindMarker())),
				)),
			},
			expected: "SELECT a FROM t WHERE a = 1 AND (b IS NULL OR c = ?)",
		},
		{
			name: "InList",
			parts: ast.SelectParts{
				SelectList: ast.Columns("a"),
				From:       ast.NewFrom(tbl),
				Where: ast.NewWhere(ast.IsIn(tbl.Column("kind"),
					ast.LiteralOf("x"), ast.LiteralOf("it's"), ast.NamedBindMarker("k"))),
			},
			expected: "SELECT a FROM t WHERE kind IN ('x', 'it''s', :k)",
		},
		{
			name: "Functions",
			parts: ast.SelectParts{
				SelectList: []ast.Expression{
					ast.Count(ast.Star()).As("n"),
					ast.Lower(ast.Upper(tbl.Column("name"))),
					ast.NewFunction("COALESCE", tbl.Column("a"), ast.LiteralOf(0)).As("a0"),
				},
				From: ast.NewFrom(tbl),
			},
			expected: "SELECT COUNT(*) AS n, LOWER(UPPER(name)), COALESCE(a, 0) AS a0 FROM t",
		},
		{
			name: "FunctionInWhere",
			parts: ast.SelectParts{
				SelectList: ast.Columns("a"),
				From:       ast.NewFrom(tbl),
				Where:      ast.NewWhere(ast.IsEqual(ast.Lower(tbl.Column("email")), ast.NewBindMarker())),
			},
			expected: "SELECT a FROM t WHERE LOWER(email) = ?",
		},
		{
			name: "OrderByMixedDirections",
			parts: ast.SelectParts{
				SelectList: ast.Expressions(tbl.Column("a"), u.Column("b")),
				From:       ast.NewFrom(tbl),
				Joins:      []*ast.Join{ast.JoinOn(u, tbl.Column("id"), u.Column("id"))},
				OrderBy: []*ast.OrderByField{
					ast.NewOrderByField(tbl.Column("a")),
					u.Column("b").Asc(),
				},
			},
			expected: "SELECT t.a, u.b FROM t JOIN u ON t.id = u.id ORDER BY t.a, u.b ASC",
		},
		{
			name: "OffsetWithoutLimit",
			parts: ast.SelectParts{
				SelectList: ast.Columns("a"),
				From:       ast.NewFrom(tbl),
				Offset:     int64p(20),
			},
			expected: "SELECT a FROM t OFFSET 20",
		},
	}

	r := NewRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mustRender(t, r, ast.NewSelect(tt.parts)))
		})
	}
}

func TestRenderPackageLevelUsesGenericDialect(t *testing.T) {
	tbl := ast.NewTable("t")
	sql, err := Render(ast.NewSelect(ast.SelectParts{
		SelectList: ast.Expressions(tbl.Column("a")),
		From:       ast.NewFrom(tbl),
		Where:      ast.NewWhere(ast.IsEqual(tbl.Column("a"), ast.NamedBindMarker("p1"))),
	}))
	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t WHERE a = :p1", sql)
}

func TestRenderNilSelect(t *testing.T) {
	_, err := Render(nil)
	assert.Error(t, err)
}

func TestRenderDialects(t *testing.T) {
	users := ast.NewTable("users")
	orders := ast.AliasedTable("orders", "o")
	sel := ast.NewSelect(ast.SelectParts{
		SelectList: ast.Expressions(users.Column("id"), orders.Column("total")),
		From:       ast.NewFrom(users),
		Joins:      []*ast.Join{ast.JoinOn(orders, users.Column("id"), orders.Column("user_id"))},
		Where: ast.NewWhere(ast.And(
			ast.IsEqual(users.Column("email"), ast.NewBindMarker()),
			ast.IsEqual(orders.Column("status"), ast.NewBindMarker()),
			ast.IsEqual(orders.Column("region"), ast.NewBindMarker()),
		)),
	})

	tests := []struct {
		dialect  dialect.Dialect
		expected string
	}{
		{
			dialect.Generic{},
			"SELECT users.id, o.total FROM users JOIN orders AS o ON users.id = o.user_id " +
				"WHERE users.email = ? AND o.status = ? AND o.region = ?",
		},
		{
			dialect.Postgres{},
			`SELECT "users"."id", "o"."total" FROM "users" JOIN "orders" AS "o" ON "users"."id" = "o"."user_id" ` +
				`WHERE "users"."email" = $1 AND "o"."status" = $2 AND "o"."region" = $3`,
		},
		{
			dialect.MySQL{},
			"SELECT `users`.`id`, `o`.`total` FROM `users` JOIN `orders` AS `o` ON `users`.`id` = `o`.`user_id` " +
				"WHERE `users`.`email` = ? AND `o`.`status` = ? AND `o`.`region` = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.dialect.Name(), func(t *testing.T) {
			r := NewRenderer(WithDialect(tt.dialect))
			assert.Equal(t, tt.expected, mustRender(t, r, sel))
		})
	}
}

func TestRenderPostgresNamedMarkers(t *testing.T) {
	users := ast.NewTable("users")
	sel := ast.NewSelect(ast.SelectParts{
		SelectList: ast.Expressions(users.Column("id")),
		From:       ast.NewFrom(users),
		Where: ast.NewWhere(ast.And(
			ast.IsEqual(users.Column("email"), ast.NamedBindMarker("email")),
			ast.IsEqual(users.Column("status"), ast.NamedBindMarker("status")),
		)),
	})
	r := NewRenderer(WithDialect(dialect.Postgres{}))
	assert.Equal(t,
		`SELECT "id" FROM "users" WHERE "email" = @email AND "status" = @status`,
		mustRender(t, r, sel))
}

func TestRenderRejectsEmptySelectList(t *testing.T) {
	tbl := ast.NewTable("t")
	sql, err := Render(ast.NewSelect(ast.SelectParts{From: ast.NewFrom(tbl)}))
	assert.ErrorIs(t, err, ErrInvariant)
	assert.Empty(t, sql)
}

func TestRenderQualification(t *testing.T) {
	tbl := ast.NewTable("t")
	sel := ast.NewSelect(ast.SelectParts{
		SelectList: ast.Expressions(tbl.Column("a")),
		From:       ast.NewFrom(tbl),
		Where:      ast.NewWhere(ast.IsNullOf(tbl.Column("b"))),
		OrderBy:    []*ast.OrderByField{tbl.Column("a").Desc()},
	})

	tests := []struct {
		mode     Qualification
		expected string
	}{
		{QualifyAuto, "SELECT a FROM t WHERE b IS NULL ORDER BY a DESC"},
		{QualifyAlways, "SELECT t.a FROM t WHERE t.b IS NULL ORDER BY t.a DESC"},
		{QualifyNever, "SELECT a FROM t WHERE b IS NULL ORDER BY a DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			r := NewRenderer(WithQualification(tt.mode))
			assert.Equal(t, tt.expected, mustRender(t, r, sel))
		})
	}

	t.Run("NeverWithJoin", func(t *testing.T) {
		u := ast.NewTable("u")
		joined := ast.NewSelect(ast.SelectParts{
			SelectList: ast.Expressions(tbl.Column("a")),
			From:       ast.NewFrom(tbl),
			Joins:      []*ast.Join{ast.JoinOn(u, tbl.Column("id"), u.Column("id"))},
		})
		r := NewRenderer(WithQualification(QualifyNever))
		assert.Equal(t, "SELECT a FROM t JOIN u ON id = id", mustRender(t, r, joined))
	})
}

func TestRenderClauseOrder(t *testing.T) {
	tbl := ast.NewTable("t")
	sql := mustRender(t, NewRenderer(), ast.NewSelect(ast.SelectParts{
		Distinct:   true,
		SelectList: ast.Columns("a"),
		From:       ast.NewFrom(tbl),
		Where:      ast.NewWhere(ast.IsNullOf(tbl.Column("a"))),
		OrderBy:    []*ast.OrderByField{ast.OrderByAsc("a")},
		Limit:      int64p(1),
		Offset:     int64p(2),
	}))

	keywords := []string{"SELECT DISTINCT", " FROM ", " WHERE ", " ORDER BY ", " LIMIT ", " OFFSET "}
	last := -1
	for _, kw := range keywords {
		idx := strings.Index(sql, kw)
		require.Greater(t, idx, last, "%q out of order in %q", kw, sql)
		last = idx
	}
	assert.NotContains(t, sql, "  ")
	assert.True(t, strings.HasSuffix(sql, " OFFSET 2"))
}

func TestRenderIsDeterministic(t *testing.T) {
	tbl := ast.NewTable("t")
	u := ast.NewTable("u")
	sel := ast.NewSelect(ast.SelectParts{
		SelectList: ast.Expressions(tbl.Column("a"), u.Column("b")),
		From:       ast.NewFrom(tbl),
		Joins:      []*ast.Join{ast.JoinOn(u, tbl.Column("id"), u.Column("id"))},
		Where:      ast.NewWhere(ast.IsEqual(tbl.Column("a"), ast.NewBindMarker())),
	})

	r := NewRenderer(WithDialect(dialect.Postgres{}))
	first := mustRender(t, r, sel)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = r.Render(sel)
		}()
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, first, got)
	}
}

func TestRenderWithCache(t *testing.T) {
	qc, err := cache.NewQueryCache(8)
	require.NoError(t, err)
	r := NewRenderer(WithCache(qc))

	tbl := ast.NewTable("t")
	build := func(limit int64) *ast.Select {
		return ast.NewSelect(ast.SelectParts{
			SelectList: ast.Columns("a"),
			From:       ast.NewFrom(tbl),
			Limit:      int64p(limit),
		})
	}

	assert.Equal(t, "SELECT a FROM t LIMIT 1", mustRender(t, r, build(1)))
	assert.Equal(t, 1, qc.Len())

	// an equal tree built separately hits the same entry
	assert.Equal(t, "SELECT a FROM t LIMIT 1", mustRender(t, r, build(1)))
	assert.Equal(t, 1, qc.Len())

	assert.Equal(t, "SELECT a FROM t LIMIT 2", mustRender(t, r, build(2)))
	assert.Equal(t, 2, qc.Len())

	cached, ok := qc.Get(build(2).Fingerprint())
	require.True(t, ok)
	assert.Equal(t, "SELECT a FROM t LIMIT 2", cached)
}

func TestInvariantViolationsAreReturned(t *testing.T) {
	tbl := ast.NewTable("t")

	t.Run("StrayLeave", func(t *testing.T) {
		err := feed(func(ctx *renderContext) {
			ctx.Leave(tbl)
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvariant))
	})

	t.Run("ColumnAtStatementLevel", func(t *testing.T) {
		err := feed(func(ctx *renderContext) {
			ctx.Enter(tbl.Column("a"))
		})
		assert.ErrorIs(t, err, ErrInvariant)
	})

	t.Run("JoinWithoutCondition", func(t *testing.T) {
		j := ast.JoinOn(tbl, tbl.Column("a"), tbl.Column("b"))
		err := feed(func(ctx *renderContext) {
			ctx.Enter(j)
			ctx.Enter(tbl)
			ctx.Leave(tbl)
			ctx.Leave(j)
		})
		assert.ErrorIs(t, err, ErrInvariant)
	})

	t.Run("ConditionInsideFromList", func(t *testing.T) {
		from := ast.NewFrom(tbl)
		sel := ast.NewSelect(ast.SelectParts{SelectList: ast.Columns("a"), From: from})
		err := feed(func(ctx *renderContext) {
			ctx.Enter(sel)
			ctx.Enter(from)
			ctx.Enter(tbl)
			ctx.Enter(ast.IsNullOf(tbl.Column("a")))
		})
		assert.ErrorIs(t, err, ErrInvariant)
	})

	t.Run("FromBeforeSelect", func(t *testing.T) {
		err := feed(func(ctx *renderContext) {
			ctx.Enter(ast.NewFrom(tbl))
		})
		assert.ErrorIs(t, err, ErrInvariant)
	})

	t.Run("PoppingTheStatement", func(t *testing.T) {
		err := feed(func(ctx *renderContext) {
			ctx.pop(ctx.top())
		})
		var ie *InvariantError
		require.ErrorAs(t, err, &ie)
		assert.Contains(t, ie.Msg, "statement visitor")
	})
}

// feed drives a render context by hand and converts the invariant panic
// the same way Render does.
func feed(events func(ctx *renderContext)) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = rec.(*InvariantError)
		}
	}()
	events(newRenderContext(dialect.Generic{}, QualifyAuto))
	return nil
}

func TestParseQualification(t *testing.T) {
	for in, want := range map[string]Qualification{
		"":       QualifyAuto,
		"auto":   QualifyAuto,
		"ALWAYS": QualifyAlways,
		"never":  QualifyNever,
	} {
		got, err := ParseQualification(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseQualification("sometimes")
	assert.Error(t, err)
}
