package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // User-defined component
	KindRaw                    // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode describes one node of the desired output tree.
type VNode struct {
	Kind     VKind         // Node type
	Tag      string        // Element tag name (e.g., "div")
	Props    Props         // Attributes and event handlers
	Children []*VNode      // Child nodes
	Key      string        // Reconciliation key
	Text     string        // For KindText and KindRaw
	Type     ComponentType // For KindComponent
}

// Props holds attributes and event handlers.
type Props map[string]any

// Clone returns a shallow copy of the props map.
// A nil receiver clones to an empty, non-nil map.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// ComponentType identifies a user-defined component. The identity is the
// interface value itself: two VNodes refer to the same component exactly
// when their Type values compare equal. Concrete implementations live in
// the engine package; this package treats them as opaque.
type ComponentType interface {
	// TypeName is the display name used when the component is shown
	// unexpanded, e.g. "<Name />" in shallow output.
	TypeName() string
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // Function to call
}

// IsInteractive returns true if this node has event handlers.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}
