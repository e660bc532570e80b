package adapter

import (
	"github.com/mq2thez/vantage/pkg/engine"
	"github.com/mq2thez/vantage/pkg/vdom"
)

// Kind is the element type discriminator. Fragments never appear here:
// their children are spliced into the parent during walking.
type Kind uint8

const (
	KindHost        Kind = iota // platform-native markup element
	KindComposite               // expanded user-defined component
	KindText                    // text content
	KindPlaceholder             // un-rendered component under shallow policy
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindHost:
		return "Host"
	case KindComposite:
		return "Composite"
	case KindText:
		return "Text"
	case KindPlaceholder:
		return "Placeholder"
	default:
		return "Unknown"
	}
}

// Element is the neutral description of one rendered node. Elements are
// rebuilt from the live tree on every query and become stale after any
// mutation; they are descriptions, not handles, except for Simulate
// which validates freshness before dispatching.
type Element struct {
	Kind Kind

	// Tag is the host element's tag name (KindHost only).
	Tag string

	// Type identifies the component (KindComposite and KindPlaceholder).
	Type vdom.ComponentType

	// Props holds the node's props. For composites this always includes
	// a "children" entry with the passed-in children as []*Element,
	// empty when none were given. Reconciliation keys and internal
	// props are excluded.
	Props vdom.Props

	// Text is the content of a text node.
	Text string

	// Raw marks text that was produced by a raw HTML node and must not
	// be escaped on serialization.
	Raw bool

	// Children is the ordered child sequence, in render order. For a
	// composite this reflects the output of rendering the component.
	Children []*Element

	// Instance is a back reference to the live class component
	// instance, for lookup only. Nil for host nodes, text, function
	// components, and placeholders.
	Instance engine.Class

	// session and gen tie the element to the walk that produced it, so
	// Simulate can reject stale targets.
	session *Session
	gen     uint64
}

// Find returns the first element in depth-first pre-order (including
// the receiver) matching the predicate, or nil.
func (e *Element) Find(pred func(*Element) bool) *Element {
	if e == nil {
		return nil
	}
	if pred(e) {
		return e
	}
	for _, c := range e.Children {
		if found := c.Find(pred); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every element in depth-first pre-order (including the
// receiver) matching the predicate.
func (e *Element) FindAll(pred func(*Element) bool) []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	if pred(e) {
		out = append(out, e)
	}
	for _, c := range e.Children {
		out = append(out, c.FindAll(pred)...)
	}
	return out
}

// ByTag matches host elements with the given tag.
func ByTag(tag string) func(*Element) bool {
	return func(e *Element) bool {
		return e.Kind == KindHost && e.Tag == tag
	}
}

// ByType matches composites and placeholders of the given component type.
func ByType(t vdom.ComponentType) func(*Element) bool {
	return func(e *Element) bool {
		return (e.Kind == KindComposite || e.Kind == KindPlaceholder) && e.Type == t
	}
}
