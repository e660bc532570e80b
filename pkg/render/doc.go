// Package render serializes vdom trees to HTML strings.
//
// The renderer only accepts trees that are free of component nodes: the
// engine expands components (statically or into a live instance tree)
// before anything reaches this package. Text is escaped, attributes are
// sorted for deterministic output, event handler props are skipped, and
// void elements are emitted without closing tags.
//
// The escaping helpers (EscapeHTML, EscapeAttr) and attribute utilities
// are exported because the adapter package serializes its own walked
// element trees with the same rules.
package render
