package dom

import (
	"fmt"
	"strconv"
)

// Parser builds a Document from HTML text. It is deliberately small: enough
// structure for a widget host page (nesting, attributes, text, <script>
// capture), not a full HTML parser.
type Parser struct {
	tokenizer *tokenizer
	doc       *Document
	stack     []*Node
}

func NewParser(input string) *Parser {
	return &Parser{
		tokenizer: newTokenizer(input),
		doc:       NewDocument(),
	}
}

func (p *Parser) Parse() (*Document, error) {
	p.stack = []*Node{p.doc.Root}

	for {
		tok, err := p.tokenizer.next()
		if err != nil {
			return nil, fmt.Errorf("tokenizer error: %w", err)
		}
		if tok.typ == tokenEOF {
			break
		}

		switch tok.typ {
		case tokenStartTag:
			// <script> bodies are collected for the JS engine, not the tree
			if tok.tagName == "script" {
				p.doc.Scripts = append(p.doc.Scripts, p.tokenizer.readRawUntil("script"))
				continue
			}

			node := &Node{
				Type:       ElementNode,
				TagName:    tok.tagName,
				Attributes: tok.attributes,
				Children:   make([]*Node, 0),
			}
			applyGeometryAttrs(node)
			p.currentParent().AddChild(node)

			if !tok.selfClosing && !isVoidElement(tok.tagName) {
				p.stack = append(p.stack, node)
			}

		case tokenText:
			if tok.text != "" {
				p.currentParent().AppendText(tok.text)
			}

		case tokenEndTag:
			p.closeTag(tok.tagName)
		}
	}

	return p.doc, nil
}

func (p *Parser) currentParent() *Node {
	if len(p.stack) == 0 {
		return p.doc.Root
	}
	return p.stack[len(p.stack)-1]
}

// closeTag pops the stack until the matching tag is found and closed.
// Unmatched end tags are ignored.
func (p *Parser) closeTag(tagName string) {
	for i := len(p.stack) - 1; i >= 1; i-- {
		if p.stack[i].TagName == tagName {
			p.stack = p.stack[:i]
			return
		}
	}
}

// applyGeometryAttrs reads data-left/top/width/height into the node's
// Offset so a page can declare geometry that a rendering host would
// otherwise compute.
func applyGeometryAttrs(n *Node) {
	n.Offset.Left = geometryAttr(n, "data-left")
	n.Offset.Top = geometryAttr(n, "data-top")
	n.Offset.Width = geometryAttr(n, "data-width")
	n.Offset.Height = geometryAttr(n, "data-height")
}

func geometryAttr(n *Node, name string) float64 {
	val, ok := n.GetAttribute(name)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return f
}

// Parse builds a Document from HTML text.
func Parse(input string) (*Document, error) {
	return NewParser(input).Parse()
}

// ParseFragment parses HTML text into detached nodes with no document.
func ParseFragment(input string) ([]*Node, error) {
	doc, err := Parse(input)
	if err != nil {
		return nil, err
	}
	children := doc.Root.Children
	for _, c := range children {
		c.Parent = nil
	}
	doc.Root.Children = nil
	return children, nil
}
