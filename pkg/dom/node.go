package dom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without wrapper
	KindRaw                  // Raw HTML (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Node is a mutable document tree node.
type Node struct {
	Kind      Kind    // Node type
	Tag       string  // Element tag name (e.g., "div")
	Namespace string  // Namespace of namespaced elements (e.g., "svg")
	Props     Props   // Direct properties
	Dataset   Dataset // Custom data-* entries
	Children  []*Node // Child nodes
	Text      string  // For KindText and KindRaw
}

// Props holds the direct properties of an element.
type Props map[string]any

// Dataset holds the data-* entries of an element, keyed without the
// "data-" prefix.
type Dataset map[string]string

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// AppendChild appends child to the node's children. Nil children are
// ignored. Returns the node for chaining.
func (n *Node) AppendChild(child *Node) *Node {
	if child != nil {
		n.Children = append(n.Children, child)
	}
	return n
}

// InsertChild inserts child at index, clamped to the current child
// count. Returns the node for chaining.
func (n *Node) InsertChild(child *Node, index int) *Node {
	if child == nil {
		return n
	}
	if index < 0 {
		index = 0
	}
	if index > len(n.Children) {
		index = len(n.Children)
	}
	n.Children = append(n.Children, nil)
	copy(n.Children[index+1:], n.Children[index:])
	n.Children[index] = child
	return n
}

// InsertBefore inserts child immediately before ref. A nil or absent
// ref appends. Returns the node for chaining.
func (n *Node) InsertBefore(child, ref *Node) *Node {
	if child == nil {
		return n
	}
	if ref == nil {
		return n.AppendChild(child)
	}
	for i, c := range n.Children {
		if c == ref {
			return n.InsertChild(child, i)
		}
	}
	return n.AppendChild(child)
}

// RemoveChild removes child from the node, matching by identity.
// The search runs from the end since removal of the last child is the
// common case. Returns true if the child was found.
func (n *Node) RemoveChild(child *Node) bool {
	for i := len(n.Children) - 1; i >= 0; i-- {
		if n.Children[i] == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return true
		}
	}
	return false
}

// FirstChild returns the node's first child, or nil if it has none.
func (n *Node) FirstChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// LastChild returns the node's last child, or nil if it has none.
func (n *Node) LastChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// Append appends content after the node's existing children.
func (n *Node) Append(content ...Content) *Node {
	for _, c := range content {
		n.Children = appendNodes(n.Children, c)
	}
	return n
}

// Prepend inserts content before the node's existing children.
func (n *Node) Prepend(content ...Content) *Node {
	var nodes []*Node
	for _, c := range content {
		nodes = appendNodes(nodes, c)
	}
	if len(nodes) > 0 {
		n.Children = append(nodes, n.Children...)
	}
	return n
}

// SetProp sets a direct property. Returns the node for chaining.
func (n *Node) SetProp(key string, value any) *Node {
	if n.Props == nil {
		n.Props = make(Props)
	}
	n.Props[key] = value
	return n
}

// Prop returns the property value for key.
func (n *Node) Prop(key string) (any, bool) {
	v, ok := n.Props[key]
	return v, ok
}

// SetDataset sets a data-* entry, keyed without the "data-" prefix.
// Returns the node for chaining.
func (n *Node) SetDataset(key, value string) *Node {
	if n.Dataset == nil {
		n.Dataset = make(Dataset)
	}
	n.Dataset[key] = value
	return n
}

// DatasetEntry returns the dataset value for key.
func (n *Node) DatasetEntry(key string) (string, bool) {
	v, ok := n.Dataset[key]
	return v, ok
}

// Clone returns a deep copy of the node and its subtree. Prop values
// are copied by assignment, so pointer-valued props stay shared.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := &Node{
		Kind:      n.Kind,
		Tag:       n.Tag,
		Namespace: n.Namespace,
		Text:      n.Text,
	}
	if n.Props != nil {
		clone.Props = make(Props, len(n.Props))
		for k, v := range n.Props {
			clone.Props[k] = v
		}
	}
	if n.Dataset != nil {
		clone.Dataset = make(Dataset, len(n.Dataset))
		for k, v := range n.Dataset {
			clone.Dataset[k] = v
		}
	}
	if len(n.Children) > 0 {
		clone.Children = make([]*Node, 0, len(n.Children))
		for _, child := range n.Children {
			clone.Children = append(clone.Children, child.Clone())
		}
	}
	return clone
}
