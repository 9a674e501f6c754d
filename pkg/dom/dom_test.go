package dom

import "testing"

func makeTree() *Node {
	// <div id="parent"><span>hello</span><p>world</p></div>
	parent := NewElement("div")
	parent.SetAttribute("id", "parent")

	span := NewElement("span")
	span.AppendText("hello")
	parent.AddChild(span)

	p := NewElement("p")
	p.AppendText("world")
	parent.AddChild(p)

	return parent
}

func TestRemoveChild(t *testing.T) {
	parent := makeTree()
	span := parent.Children[0]
	removed := parent.RemoveChild(span)
	if removed != span {
		t.Fatal("RemoveChild should return the removed child")
	}
	if span.Parent != nil {
		t.Error("removed child should have nil parent")
	}
	if len(parent.Children) != 1 {
		t.Errorf("expected 1 child, got %d", len(parent.Children))
	}
	if parent.Children[0].TagName != "p" {
		t.Error("remaining child should be <p>")
	}
}

func TestRemoveChildNotFound(t *testing.T) {
	parent := makeTree()
	other := NewElement("em")
	if parent.RemoveChild(other) != nil {
		t.Error("RemoveChild of non-child should return nil")
	}
}

func TestInsertBefore(t *testing.T) {
	parent := makeTree()
	em := NewElement("em")
	p := parent.Children[1]
	parent.InsertBefore(em, p)
	if len(parent.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(parent.Children))
	}
	if parent.Children[1] != em {
		t.Error("em should be at index 1")
	}
	if em.Parent != parent {
		t.Error("em.Parent should be parent")
	}
}

func TestInsertBeforeNilRef(t *testing.T) {
	parent := makeTree()
	em := NewElement("em")
	parent.InsertBefore(em, nil)
	if parent.Children[len(parent.Children)-1] != em {
		t.Error("InsertBefore(nil) should append")
	}
}

func TestContains(t *testing.T) {
	parent := makeTree()
	span := parent.Children[0]
	text := span.Children[0]
	if !parent.Contains(text) {
		t.Error("parent should contain grandchild text node")
	}
	if span.Contains(parent) {
		t.Error("child should not contain its parent")
	}
}

func TestRoot(t *testing.T) {
	doc := NewDocument()
	parent := makeTree()
	doc.Root.AddChild(parent)
	span := parent.Children[0]
	if span.Root() != doc.Root {
		t.Error("Root should walk to the document root")
	}
	detached := NewElement("div")
	if detached.Root() != detached {
		t.Error("a detached node is its own root")
	}
}

func TestClosestClass(t *testing.T) {
	outer := NewElement("div")
	outer.AddClass("boundary")
	inner := NewElement("div")
	outer.AddChild(inner)
	leaf := NewElement("button")
	inner.AddChild(leaf)

	if leaf.ClosestClass("boundary") != outer {
		t.Error("ClosestClass should find the outer ancestor")
	}
	if leaf.ClosestClass("missing") != nil {
		t.Error("ClosestClass should return nil when absent")
	}
	// The lookup starts at the parent, never the node itself
	outer2 := NewElement("div")
	outer2.AddClass("boundary")
	if outer2.ClosestClass("boundary") != nil {
		t.Error("ClosestClass must not match the node itself")
	}
}

func TestTextContent(t *testing.T) {
	parent := makeTree()
	if got := parent.TextContent(); got != "helloworld" {
		t.Errorf("TextContent = %q, want %q", got, "helloworld")
	}
	parent.SetTextContent("replaced")
	if len(parent.Children) != 1 || parent.Children[0].Type != TextNode {
		t.Fatal("SetTextContent should leave a single text child")
	}
	if parent.TextContent() != "replaced" {
		t.Errorf("TextContent after set = %q", parent.TextContent())
	}
	parent.SetTextContent("")
	if len(parent.Children) != 0 {
		t.Error("SetTextContent(\"\") should clear all children")
	}
}

func TestFindByID(t *testing.T) {
	doc := NewDocument()
	doc.Root.AddChild(makeTree())
	if doc.Root.FindByID("parent") == nil {
		t.Error("FindByID should locate the element")
	}
	if doc.Root.FindByID("nope") != nil {
		t.Error("FindByID of unknown id should return nil")
	}
}

func TestFindByAttr(t *testing.T) {
	doc := NewDocument()
	a := NewElement("button")
	a.SetAttribute("data-tooltip", "one")
	b := NewElement("button")
	b.SetAttribute("data-tooltip", "two")
	doc.Root.AddChild(a)
	doc.Root.AddChild(b)
	doc.Root.AddChild(NewElement("div"))

	found := doc.Root.FindByAttr("data-tooltip")
	if len(found) != 2 || found[0] != a || found[1] != b {
		t.Errorf("FindByAttr returned %d nodes", len(found))
	}
}

func TestSerialize(t *testing.T) {
	parent := makeTree()
	want := `<div id="parent"><span>hello</span><p>world</p></div>`
	if got := parent.SerializeOuter(); got != want {
		t.Errorf("SerializeOuter = %q, want %q", got, want)
	}
	if got := parent.Serialize(); got != "<span>hello</span><p>world</p>" {
		t.Errorf("Serialize = %q", got)
	}
}

func TestSerializeSortsAttributes(t *testing.T) {
	n := NewElement("div")
	n.SetAttribute("role", "tooltip")
	n.SetAttribute("aria-hidden", "true")
	n.SetAttribute("id", "tooltip-0")
	want := `<div aria-hidden="true" id="tooltip-0" role="tooltip"></div>`
	if got := n.SerializeOuter(); got != want {
		t.Errorf("SerializeOuter = %q, want %q", got, want)
	}
}

func TestSerializeEscapes(t *testing.T) {
	n := NewElement("span")
	n.SetAttribute("title", `a"b`)
	n.AppendText("1 < 2 & 3")
	want := `<span title="a&quot;b">1 &lt; 2 &amp; 3</span>`
	if got := n.SerializeOuter(); got != want {
		t.Errorf("SerializeOuter = %q, want %q", got, want)
	}
}

func TestRemoveAttribute(t *testing.T) {
	n := NewElement("div")
	n.SetAttribute("aria-label", "hi")
	n.RemoveAttribute("aria-label")
	if _, ok := n.GetAttribute("aria-label"); ok {
		t.Error("attribute should be gone")
	}
	// Removing a missing attribute is a no-op
	n.RemoveAttribute("aria-label")
}
