package lightup

// Wrapper is a value façade over one general host node.
// Node returns the wrapped node unchanged, or the zero TNode for an empty wrapper.
type Wrapper[TNode any] interface {
	Node() TNode
}
