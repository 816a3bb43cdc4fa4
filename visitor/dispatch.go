package visitor

import (
	"strings"

	"github.com/Konsultn-Engineering/relsql/ast"
	"github.com/Konsultn-Engineering/relsql/dialect"
)

// handler is one entry of the dispatch stack. Only the top handler
// receives events.
type handler interface {
	enter(n ast.Node)
	leave(n ast.Node)
}

// renderContext is the per-render automaton: the ast.Visitor the tree
// pushes events into, the handler stack, and the output buffer.
type renderContext struct {
	dialect dialect.Dialect
	mode    Qualification
	qualify bool
	markers int
	stack   []handler
	out     strings.Builder
}

func newRenderContext(d dialect.Dialect, mode Qualification) *renderContext {
	ctx := &renderContext{dialect: d, mode: mode, stack: make([]handler, 0, 8)}
	ctx.push(&statementVisitor{ctx: ctx})
	return ctx
}

func (c *renderContext) Enter(n ast.Node) { c.top().enter(n) }
func (c *renderContext) Leave(n ast.Node) { c.top().leave(n) }

func (c *renderContext) push(h handler) {
	c.stack = append(c.stack, h)
}

func (c *renderContext) top() handler {
	if len(c.stack) == 0 {
		invariant("event received with an empty visitor stack")
	}
	return c.stack[len(c.stack)-1]
}

// pop removes self, which must be the top of the stack.
func (c *renderContext) pop(self handler) {
	if c.top() != self {
		invariant("popped the wrong visitor from the stack (%T, expected %T)", c.top(), self)
	}
	if len(c.stack) == 1 {
		invariant("attempt to pop the statement visitor")
	}
	c.stack[len(c.stack)-1] = nil
	c.stack = c.stack[:len(c.stack)-1]
}

// yieldEnter and yieldLeave end self's region: self is popped and the
// event that did not belong to it goes to the handler beneath.
func (c *renderContext) yieldEnter(self handler, n ast.Node) {
	c.pop(self)
	c.top().enter(n)
}

func (c *renderContext) yieldLeave(self handler, n ast.Node) {
	c.pop(self)
	c.top().leave(n)
}

func (c *renderContext) quote(name string) string {
	return c.dialect.QuoteIdentifier(name)
}

// qualifier renders "ref." for t, or nothing for bare columns and when
// qualification is off for this statement.
func (c *renderContext) qualifier(t *ast.Table) string {
	if t == nil || !c.qualify {
		return ""
	}
	return c.quote(t.ReferenceName()) + "."
}

func (c *renderContext) tableSource(t *ast.Table) string {
	if t.IsAliased() {
		return c.quote(t.Name()) + " AS " + c.quote(t.Alias())
	}
	return c.quote(t.Name())
}

func (c *renderContext) bindMarker(b *ast.BindMarker) string {
	if b.IsNamed() {
		return c.dialect.BindMarker(b.Name(), 0)
	}
	c.markers++
	return c.dialect.BindMarker("", c.markers)
}

func (c *renderContext) literal(l *ast.Literal) string {
	return c.dialect.RenderValue(l.Value())
}

// matcher is the grammar-specific half of readWhileMatches and readOne.
type matcher interface {
	matches(n ast.Node) bool
	enterMatched(n ast.Node)
	enterSub(n ast.Node)
	leaveMatched(n ast.Node)
	leaveSub(n ast.Node)
}

// readWhileMatches consumes a contiguous run of matching nodes. Events
// inside the held node go to the sub hooks; the first non-matching event
// while nothing is held hands control back to the handler beneath.
type readWhileMatches struct {
	ctx     *renderContext
	m       matcher
	current ast.Node
}

func newReadWhileMatches(ctx *renderContext, m matcher) *readWhileMatches {
	return &readWhileMatches{ctx: ctx, m: m}
}

func (r *readWhileMatches) enter(n ast.Node) {
	if r.current != nil {
		r.m.enterSub(n)
		return
	}
	if r.m.matches(n) {
		r.current = n
		r.m.enterMatched(n)
		return
	}
	r.ctx.yieldEnter(r, n)
}

func (r *readWhileMatches) leave(n ast.Node) {
	switch {
	case r.current == nil:
		r.ctx.yieldLeave(r, n)
	case n == r.current:
		r.current = nil
		r.m.leaveMatched(n)
	default:
		r.m.leaveSub(n)
	}
}

// readOne consumes exactly one matching node and pops itself when that
// node's leave event arrives.
type readOne struct {
	ctx     *renderContext
	m       matcher
	current ast.Node
}

func newReadOne(ctx *renderContext, m matcher) *readOne {
	return &readOne{ctx: ctx, m: m}
}

func (r *readOne) enter(n ast.Node) {
	if r.current != nil {
		r.m.enterSub(n)
		return
	}
	if !r.m.matches(n) {
		invariant("%T cannot start with %s", r.m, n.Type())
	}
	r.current = n
	r.m.enterMatched(n)
}

func (r *readOne) leave(n ast.Node) {
	switch {
	case r.current == nil:
		invariant("%T received leave %s before any enter", r.m, n.Type())
	case n == r.current:
		r.m.leaveMatched(n)
		r.ctx.pop(r)
	default:
		r.m.leaveSub(n)
	}
}

// pushOperands pushes one readOne per operand in reverse order, so the
// first operand's visitor is on top and receives the first subtree.
func pushOperands(ctx *renderContext, count int, newMatcher func(done func(string)) matcher) []string {
	parts := make([]string, count)
	for i := count - 1; i >= 0; i-- {
		ctx.push(newReadOne(ctx, newMatcher(func(s string) { parts[i] = s })))
	}
	return parts
}
