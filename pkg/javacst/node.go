package javacst

import sitter "github.com/smacker/go-tree-sitter"

// Range represents a half-open byte range in the source content.
type Range struct {
	// StartOffset is the byte index where the range begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the range ends (exclusive).
	EndOffset int
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.EndOffset - r.StartOffset
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.StartOffset == r.EndOffset
}

// Contains returns true if the given offset is within this range.
func (r Range) Contains(offset int) bool {
	return offset >= r.StartOffset && offset < r.EndOffset
}

// Node is a value wrapper around a tree-sitter node that also carries the
// source text. Nodes are cheap to copy and two wrappers over the same
// underlying syntax node are interchangeable.
//
// The zero Node is invalid; methods on it must not be called. Use the ok
// return of navigation methods to detect missing nodes.
type Node struct {
	n   *sitter.Node
	src []byte
}

// Kind returns the grammar kind name of the node. Named nodes report their
// rule name ("method_declaration"); anonymous tokens report their text
// (",", ";", "(").
func (n Node) Kind() string {
	return n.n.Type()
}

// KindID returns the numeric grammar symbol for the node's kind.
func (n Node) KindID() uint16 {
	return uint16(n.n.Symbol())
}

// StartByte returns the byte offset where the node begins.
func (n Node) StartByte() int {
	return int(n.n.StartByte())
}

// EndByte returns the byte offset just past the node's last byte.
func (n Node) EndByte() int {
	return int(n.n.EndByte())
}

// Range returns the node's byte range in the source.
func (n Node) Range() Range {
	return Range{StartOffset: n.StartByte(), EndOffset: n.EndByte()}
}

// Text returns the source text covered by the node.
func (n Node) Text() string {
	return n.n.Content(n.src)
}

// IsNamed reports whether the node is a named grammar rule rather than an
// anonymous token.
func (n Node) IsNamed() bool {
	return n.n.IsNamed()
}

// IsError reports whether this node is a parse error node.
func (n Node) IsError() bool {
	return n.n.IsError()
}

// HasError reports whether this node's subtree contains any parse errors.
func (n Node) HasError() bool {
	return n.n.HasError()
}

// Parent returns the node's parent, if any.
func (n Node) Parent() (Node, bool) {
	p := n.n.Parent()
	if p == nil {
		return Node{}, false
	}
	return Node{n: p, src: n.src}, true
}

// ChildCount returns the number of children, including anonymous tokens.
func (n Node) ChildCount() int {
	return int(n.n.ChildCount())
}

// Child returns the i-th child, including anonymous tokens.
func (n Node) Child(i int) (Node, bool) {
	c := n.n.Child(i)
	if c == nil {
		return Node{}, false
	}
	return Node{n: c, src: n.src}, true
}

// NamedChildCount returns the number of named children.
func (n Node) NamedChildCount() int {
	return int(n.n.NamedChildCount())
}

// NamedChild returns the i-th named child.
func (n Node) NamedChild(i int) (Node, bool) {
	c := n.n.NamedChild(i)
	if c == nil {
		return Node{}, false
	}
	return Node{n: c, src: n.src}, true
}

// ChildByField returns the child occupying the given grammar field
// ("name", "body", "consequence", ...).
func (n Node) ChildByField(field string) (Node, bool) {
	c := n.n.ChildByFieldName(field)
	if c == nil {
		return Node{}, false
	}
	return Node{n: c, src: n.src}, true
}

// NextSibling returns the node's next sibling, including anonymous tokens.
func (n Node) NextSibling() (Node, bool) {
	s := n.n.NextSibling()
	if s == nil {
		return Node{}, false
	}
	return Node{n: s, src: n.src}, true
}

// PrevSibling returns the node's previous sibling, including anonymous tokens.
func (n Node) PrevSibling() (Node, bool) {
	s := n.n.PrevSibling()
	if s == nil {
		return Node{}, false
	}
	return Node{n: s, src: n.src}, true
}

// NextNamedSibling returns the node's next named sibling.
func (n Node) NextNamedSibling() (Node, bool) {
	s := n.n.NextNamedSibling()
	if s == nil {
		return Node{}, false
	}
	return Node{n: s, src: n.src}, true
}

// Equal reports whether two wrappers refer to the same syntax node.
func (n Node) Equal(other Node) bool {
	return n.n.Equal(other.n)
}

// Source returns the full source text the node belongs to.
func (n Node) Source() []byte {
	return n.src
}
