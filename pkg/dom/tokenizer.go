package dom

import (
	"fmt"
	gohtml "html"
	"strings"
	"unicode"
)

type tokenType int

const (
	tokenStartTag tokenType = iota
	tokenEndTag
	tokenText
	tokenEOF
)

type token struct {
	typ         tokenType
	tagName     string
	attributes  map[string]string
	text        string
	selfClosing bool
}

type tokenizer struct {
	input string
	pos   int
}

func newTokenizer(input string) *tokenizer {
	return &tokenizer{input: input}
}

func (t *tokenizer) next() (token, error) {
	if t.pos >= len(t.input) {
		return token{typ: tokenEOF}, nil
	}
	if t.input[t.pos] == '<' {
		return t.readTag()
	}
	return t.readText()
}

func (t *tokenizer) readTag() (token, error) {
	t.pos++

	// <!-- comments -->
	if strings.HasPrefix(t.input[t.pos:], "!--") {
		end := strings.Index(t.input[t.pos+3:], "-->")
		if end < 0 {
			t.pos = len(t.input)
		} else {
			t.pos += 3 + end + 3
		}
		return t.next()
	}

	// <!DOCTYPE ...> and <?...?> declarations
	if t.pos < len(t.input) && (t.input[t.pos] == '!' || t.input[t.pos] == '?') {
		if err := t.skipTo('>'); err != nil {
			return token{}, err
		}
		t.pos++
		return t.next()
	}

	isEndTag := false
	if t.pos < len(t.input) && t.input[t.pos] == '/' {
		isEndTag = true
		t.pos++
	}
	tagName := t.readTagName()
	if tagName == "" {
		return token{}, fmt.Errorf("expected tag name at position %d", t.pos)
	}
	if isEndTag {
		if err := t.skipTo('>'); err != nil {
			return token{}, err
		}
		t.pos++
		return token{typ: tokenEndTag, tagName: tagName}, nil
	}

	attributes := make(map[string]string)
	for {
		t.skipWhitespace()
		if t.pos >= len(t.input) {
			return token{}, fmt.Errorf("unexpected EOF in <%s>", tagName)
		}
		if t.input[t.pos] == '>' {
			t.pos++
			break
		}
		if t.input[t.pos] == '/' {
			t.pos++
			t.skipWhitespace()
			if t.pos < len(t.input) && t.input[t.pos] == '>' {
				t.pos++
				return token{typ: tokenStartTag, tagName: tagName, attributes: attributes, selfClosing: true}, nil
			}
			continue
		}
		name, value, err := t.readAttribute()
		if err != nil {
			return token{}, err
		}
		attributes[name] = value
	}
	return token{typ: tokenStartTag, tagName: tagName, attributes: attributes}, nil
}

func (t *tokenizer) readTagName() string {
	start := t.pos
	for t.pos < len(t.input) && isNameChar(t.input[t.pos]) {
		t.pos++
	}
	return strings.ToLower(t.input[start:t.pos])
}

func (t *tokenizer) readAttribute() (string, string, error) {
	start := t.pos
	for t.pos < len(t.input) && isAttrNameChar(t.input[t.pos]) {
		t.pos++
	}
	name := strings.ToLower(t.input[start:t.pos])
	if name == "" {
		return "", "", fmt.Errorf("expected attribute name at position %d", t.pos)
	}
	t.skipWhitespace()
	if t.pos >= len(t.input) || t.input[t.pos] != '=' {
		return name, "", nil
	}
	t.pos++
	t.skipWhitespace()
	value, err := t.readAttributeValue()
	if err != nil {
		return "", "", err
	}
	return name, gohtml.UnescapeString(value), nil
}

func (t *tokenizer) readAttributeValue() (string, error) {
	if t.pos >= len(t.input) {
		return "", fmt.Errorf("expected attribute value at position %d", t.pos)
	}
	quote := t.input[t.pos]
	if quote == '"' || quote == '\'' {
		t.pos++
		start := t.pos
		for t.pos < len(t.input) && t.input[t.pos] != quote {
			t.pos++
		}
		if t.pos >= len(t.input) {
			return "", fmt.Errorf("unterminated attribute value")
		}
		value := t.input[start:t.pos]
		t.pos++
		return value, nil
	}
	start := t.pos
	for t.pos < len(t.input) && !unicode.IsSpace(rune(t.input[t.pos])) && t.input[t.pos] != '>' {
		t.pos++
	}
	return t.input[start:t.pos], nil
}

func (t *tokenizer) readText() (token, error) {
	start := t.pos
	for t.pos < len(t.input) && t.input[t.pos] != '<' {
		t.pos++
	}
	raw := t.input[start:t.pos]
	// Whitespace-only runs between tags carry no content for a widget host.
	if strings.TrimSpace(raw) == "" {
		if t.pos < len(t.input) {
			return t.next()
		}
		return token{typ: tokenEOF}, nil
	}
	text := strings.Join(strings.Fields(raw), " ")
	return token{typ: tokenText, text: gohtml.UnescapeString(text)}, nil
}

// readRawUntil consumes raw content up to the closing end tag, e.g.
// </script>, where '<' does not open a new tag.
func (t *tokenizer) readRawUntil(endTag string) string {
	needle := "</" + endTag + ">"
	start := t.pos
	for t.pos+len(needle) <= len(t.input) {
		if strings.EqualFold(t.input[t.pos:t.pos+len(needle)], needle) {
			content := t.input[start:t.pos]
			t.pos += len(needle)
			return content
		}
		t.pos++
	}
	content := t.input[start:]
	t.pos = len(t.input)
	return content
}

func (t *tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(rune(t.input[t.pos])) {
		t.pos++
	}
}

func (t *tokenizer) skipTo(target byte) error {
	for t.pos < len(t.input) && t.input[t.pos] != target {
		t.pos++
	}
	if t.pos >= len(t.input) {
		return fmt.Errorf("expected '%c' but reached EOF", target)
	}
	return nil
}

func isNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isAttrNameChar(c byte) bool {
	return isNameChar(c) || c == ':' || c == '.'
}
