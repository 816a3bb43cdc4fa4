package ast

// Visitor receives traversal events pushed by Node.Visit. Enter fires
// before a node's children are visited and Leave after.
type Visitor interface {
	Enter(n Node)
	Leave(n Node)
}

// VisitorFunc adapts a function to a Visitor that only observes Enter.
type VisitorFunc func(n Node)

func (f VisitorFunc) Enter(n Node) { f(n) }
func (f VisitorFunc) Leave(Node)   {}
