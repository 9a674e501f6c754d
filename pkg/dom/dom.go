package dom

import (
	"sort"
	"strings"
)

// Node is a single element or text node in the headless document tree.
// Offset carries host-supplied geometry; the tree itself performs no layout.
type Node struct {
	Type       NodeType
	TagName    string
	Attributes map[string]string
	Text       string
	Children   []*Node
	Parent     *Node
	Offset     Rect

	listeners []*listener
	observers []*subscription
}

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// Rect is an offset box in CSS pixels. Left and Top are relative to the
// positioning container; Width and Height are the border-box extent.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

type Document struct {
	Root    *Node
	Scripts []string // JavaScript from <script> tags, in document order
}

func NewDocument() *Document {
	return &Document{
		Root: &Node{
			Type:     ElementNode,
			TagName:  "document",
			Children: make([]*Node, 0),
		},
	}
}

// NewElement creates a detached element node.
func NewElement(tag string) *Node {
	return &Node{
		Type:       ElementNode,
		TagName:    strings.ToLower(tag),
		Attributes: make(map[string]string),
		Children:   make([]*Node, 0),
	}
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

// SetAttribute writes an attribute and notifies any attribute observers
// synchronously before returning.
func (n *Node) SetAttribute(name, value string) {
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	old := n.Attributes[name]
	n.Attributes[name] = value
	n.notifyAttr(name, old, value)
}

// RemoveAttribute deletes an attribute, notifying observers with an empty
// new value.
func (n *Node) RemoveAttribute(name string) {
	if n.Attributes == nil {
		return
	}
	old, ok := n.Attributes[name]
	if !ok {
		return
	}
	delete(n.Attributes, name)
	n.notifyAttr(name, old, "")
}

// AddChild adds a child node and sets up the parent relationship.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// AppendText creates a text node and adds it as a child.
func (n *Node) AppendText(text string) {
	if text == "" {
		return
	}
	n.AddChild(&Node{Type: TextNode, Text: text})
}

// RemoveChild removes the given child from this node's children list,
// clears its parent pointer, and returns the removed child.
// Returns nil if child is not found.
func (n *Node) RemoveChild(child *Node) *Node {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return child
		}
	}
	return nil
}

// InsertBefore inserts newChild before refChild in this node's children.
// If refChild is nil or not found, appends newChild at the end.
func (n *Node) InsertBefore(newChild, refChild *Node) *Node {
	if newChild.Parent != nil {
		newChild.Parent.RemoveChild(newChild)
	}
	if refChild == nil {
		n.AddChild(newChild)
		return newChild
	}
	for i, c := range n.Children {
		if c == refChild {
			n.Children = append(n.Children, nil)
			copy(n.Children[i+1:], n.Children[i:])
			n.Children[i] = newChild
			newChild.Parent = n
			return newChild
		}
	}
	n.AddChild(newChild)
	return newChild
}

// Contains returns true if other is a descendant of n (or n itself).
func (n *Node) Contains(other *Node) bool {
	if n == other {
		return true
	}
	for _, child := range n.Children {
		if child.Contains(other) {
			return true
		}
	}
	return false
}

// Root walks parent links to the topmost ancestor. For an attached node
// this is the document root; a detached node is its own root.
func (n *Node) Root() *Node {
	cur := n
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

// ClosestClass returns the nearest ancestor (excluding n itself) carrying
// the given class token, or nil.
func (n *Node) ClosestClass(class string) *Node {
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if cur.HasClass(class) {
			return cur
		}
	}
	return nil
}

// TextContent returns the concatenated text of the node and its descendants.
func (n *Node) TextContent() string {
	if n.Type == TextNode {
		return n.Text
	}
	var sb strings.Builder
	for _, child := range n.Children {
		sb.WriteString(child.TextContent())
	}
	return sb.String()
}

// SetTextContent replaces all children with a single text node.
func (n *Node) SetTextContent(text string) {
	n.Children = nil
	if text != "" {
		n.AppendText(text)
	}
}

// FindByID walks the subtree and returns the first element with the given id.
func (n *Node) FindByID(id string) *Node {
	if n.Type == ElementNode {
		if val, ok := n.GetAttribute("id"); ok && val == id {
			return n
		}
	}
	for _, child := range n.Children {
		if found := child.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

// FindByAttr walks the subtree and collects elements carrying the attribute.
func (n *Node) FindByAttr(name string) []*Node {
	var result []*Node
	if n.Type == ElementNode {
		if _, ok := n.GetAttribute(name); ok {
			result = append(result, n)
		}
	}
	for _, child := range n.Children {
		result = append(result, child.FindByAttr(name)...)
	}
	return result
}

// Serialize returns the innerHTML of this node: the serialized HTML of
// all child nodes, but not the node's own tags.
func (n *Node) Serialize() string {
	var sb strings.Builder
	for _, child := range n.Children {
		serializeNode(&sb, child)
	}
	return sb.String()
}

// SerializeOuter returns the outerHTML of this node: the node's own tags
// plus all descendants.
func (n *Node) SerializeOuter() string {
	var sb strings.Builder
	serializeNode(&sb, n)
	return sb.String()
}

func serializeNode(sb *strings.Builder, n *Node) {
	if n.Type == TextNode {
		sb.WriteString(escapeHTML(n.Text))
		return
	}

	sb.WriteByte('<')
	sb.WriteString(n.TagName)

	// Sort attributes for deterministic output
	if len(n.Attributes) > 0 {
		keys := make([]string, 0, len(n.Attributes))
		for k := range n.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteByte(' ')
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(escapeAttr(n.Attributes[k]))
			sb.WriteByte('"')
		}
	}

	if isVoidElement(n.TagName) {
		sb.WriteString(">")
		return
	}

	sb.WriteByte('>')
	for _, child := range n.Children {
		serializeNode(sb, child)
	}
	sb.WriteString("</")
	sb.WriteString(n.TagName)
	sb.WriteByte('>')
}

func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func isVoidElement(tag string) bool {
	switch tag {
	case "br", "hr", "img", "input", "meta", "link", "area", "base",
		"col", "embed", "param", "source", "track", "wbr":
		return true
	}
	return false
}
