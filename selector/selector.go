// Package selector implements CSS Selectors Level 4 parsing and matching.
package selector

import (
	"github.com/wordring/gowordring/dom"
	"github.com/wordring/gowordring/errors"
)

func init() {
	dom.SetSelectorMatch(Match)
	dom.SetSelectorMatchFirst(MatchFirst)
}

// Selector represents a parsed CSS selector.
type Selector interface {
	// Match returns true if the element matches this selector under ctx.
	// A nil ctx falls back to HTML/NoQuirks/no-scope-root defaults.
	Match(element *dom.Element, ctx *MatchContext) bool

	// String returns the original selector string.
	String() string
}

// parsedSelector adapts the internal selectorAST to the public Selector
// interface, keeping the original selector text for String().
type parsedSelector struct {
	ast  selectorAST
	text string
}

func (p *parsedSelector) Match(element *dom.Element, ctx *MatchContext) bool {
	return matchAST(element, p.ast, ctx)
}

func (p *parsedSelector) String() string {
	return p.text
}

// Parse parses a CSS selector string into a matchable Selector.
func Parse(selector string) (Selector, error) {
	tokens, err := newTokenizer(selector).tokenize()
	if err != nil {
		return nil, err
	}
	ast, err := newParser(tokens, selector).parse()
	if err != nil {
		return nil, err
	}
	return &parsedSelector{ast: ast, text: selector}, nil
}

// Match returns all elements in the subtree rooted at root, root included,
// that match the selector.
func Match(root *dom.Element, selector string) ([]*dom.Element, error) {
	if root == nil {
		return nil, &errors.SelectorError{Selector: selector, Message: "root element is nil"}
	}
	sel, err := Parse(selector)
	if err != nil {
		return nil, err
	}

	ctx := newContextForRoot(root)
	var results []*dom.Element
	matchDescendants(root, sel, ctx, &results)
	return results, nil
}

// MatchFirst returns the first element in document order (root included)
// that matches the selector, or nil if none does.
func MatchFirst(root *dom.Element, selector string) (*dom.Element, error) {
	if root == nil {
		return nil, &errors.SelectorError{Selector: selector, Message: "root element is nil"}
	}
	sel, err := Parse(selector)
	if err != nil {
		return nil, err
	}

	ctx := newContextForRoot(root)
	return findFirst(root, sel, ctx), nil
}

func matchDescendants(elem *dom.Element, sel Selector, ctx *MatchContext, results *[]*dom.Element) {
	if sel.Match(elem, ctx) {
		*results = append(*results, elem)
	}
	for _, child := range elem.Children() {
		if childElem, ok := child.(*dom.Element); ok {
			matchDescendants(childElem, sel, ctx, results)
		}
	}
}

func findFirst(elem *dom.Element, sel Selector, ctx *MatchContext) *dom.Element {
	if sel.Match(elem, ctx) {
		return elem
	}
	for _, child := range elem.Children() {
		if childElem, ok := child.(*dom.Element); ok {
			if found := findFirst(childElem, sel, ctx); found != nil {
				return found
			}
		}
	}
	return nil
}
