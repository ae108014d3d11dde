package selector

import "github.com/wordring/gowordring/dom"

// DocumentType distinguishes the name-comparison rules an HTML document
// uses from those an XML document uses.
type DocumentType int

const (
	DocumentTypeHTML DocumentType = iota
	DocumentTypeXML
)

// MatchContext carries the document-level state that matching depends on
// but a bare *dom.Element cannot express on its own: whether names fold
// case, which namespace URI an ns-prefix resolves to, what the default
// (unprefixed) namespace is, and what counts as "the root" for :root.
// A query builds one MatchContext for the whole traversal it performs.
type MatchContext struct {
	DocumentType DocumentType
	Mode         dom.QuirksMode

	// EnableNamespaces reports whether namespace prefixes resolve at
	// all. When false, any ns-prefix other than "" or "*" is treated as
	// unknown and never matches.
	EnableNamespaces bool

	// Namespaces maps ns-prefix -> namespace URI, e.g. "svg" ->
	// dom.NamespaceSVG. An unknown prefix makes the selector match
	// nothing rather than erroring.
	Namespaces map[string]string

	// DefaultNamespace is the namespace URI assumed for a wq-name with
	// no prefix at all. Empty means "no namespace constraint" (matches
	// any namespace, including no namespace).
	DefaultNamespace string

	// ScopeRoot is the element :root matches against. Nil falls back to
	// "parent is the Document or DocumentFragment root".
	ScopeRoot *dom.Element
}

// builtinNamespaces is the ns-prefix -> URI table every MatchContext
// starts from, covering the three namespaces the tree builder itself
// assigns; there is no @namespace rule registry in this package to
// extend it further.
func builtinNamespaces() map[string]string {
	return map[string]string{
		"html": dom.NamespaceHTML,
		"svg":  dom.NamespaceSVG,
		"math": dom.NamespaceMathML,
	}
}

// newContextForRoot builds the MatchContext Match/MatchFirst use: HTML
// document type, the quirks mode of root's owning document (NoQuirks if
// unattached), the built-in namespace table, and root itself as the
// :root scope for this query.
func newContextForRoot(root *dom.Element) *MatchContext {
	return &MatchContext{
		DocumentType:     DocumentTypeHTML,
		Mode:             quirksModeOf(root),
		EnableNamespaces: true,
		Namespaces:       builtinNamespaces(),
		ScopeRoot:        root,
	}
}

// ctxOrDefault substitutes a fresh default context wherever a nil one
// reaches a matching function directly (as the package's own unit tests
// do when exercising a predicate in isolation).
func ctxOrDefault(ctx *MatchContext) *MatchContext {
	if ctx != nil {
		return ctx
	}
	return &MatchContext{
		DocumentType:     DocumentTypeHTML,
		Mode:             dom.NoQuirks,
		EnableNamespaces: true,
		Namespaces:       builtinNamespaces(),
	}
}

func quirksModeOf(elem *dom.Element) dom.QuirksMode {
	var n dom.Node = elem
	for n != nil {
		if doc, ok := n.(*dom.Document); ok {
			return doc.QuirksMode
		}
		n = n.Parent()
	}
	return dom.NoQuirks
}
