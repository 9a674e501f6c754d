package dom

import "strings"

// Class token helpers over the "class" attribute. All writes go through
// SetAttribute so attribute observers see class changes too.

// Classes returns the node's class tokens in order.
func (n *Node) Classes() []string {
	attr, _ := n.GetAttribute("class")
	if attr == "" {
		return nil
	}
	return strings.Fields(attr)
}

// HasClass reports whether the node carries the given class token.
func (n *Node) HasClass(token string) bool {
	return containsToken(n.Classes(), token)
}

// AddClass appends any tokens not already present.
func (n *Node) AddClass(tokens ...string) {
	cls := n.Classes()
	changed := false
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if !containsToken(cls, token) {
			cls = append(cls, token)
			changed = true
		}
	}
	if changed {
		n.setClasses(cls)
	}
}

// RemoveClass drops the given tokens if present.
func (n *Node) RemoveClass(tokens ...string) {
	cls := n.Classes()
	changed := false
	for _, token := range tokens {
		next := removeToken(cls, token)
		if len(next) != len(cls) {
			cls = next
			changed = true
		}
	}
	if changed {
		n.setClasses(cls)
	}
}

// ToggleClass flips the token and returns true if it is now present.
func (n *Node) ToggleClass(token string) bool {
	cls := n.Classes()
	if containsToken(cls, token) {
		n.setClasses(removeToken(cls, token))
		return false
	}
	n.setClasses(append(cls, token))
	return true
}

func (n *Node) setClasses(classes []string) {
	n.SetAttribute("class", strings.Join(classes, " "))
}

func containsToken(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}

func removeToken(tokens []string, token string) []string {
	result := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t != token {
			result = append(result, t)
		}
	}
	return result
}
