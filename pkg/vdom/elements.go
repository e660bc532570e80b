package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// El creates a host element node with the given tag.
// Arguments can be: nil, bool, Attr, []Attr, EventHandler, *VNode,
// []*VNode, ComponentType, or string (converted to a text node).
// nil and false arguments are skipped, which lets conditional attributes
// and children compose without special casing.
func El(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}
	applyArgs(node, args)
	return node
}

// Comp creates a component node for the given component type.
// Attr arguments become the component's props; node and string arguments
// become the children passed to the component.
func Comp(t ComponentType, args ...any) *VNode {
	node := &VNode{
		Kind:     KindComponent,
		Type:     t,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}
	applyArgs(node, args)
	return node
}

// applyArgs folds factory arguments into the node.
func applyArgs(node *VNode, args []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue

		case bool:
			// Rendered as nothing, like nil children.
			continue

		case Attr:
			applyAttr(node, v)

		case []Attr:
			for _, a := range v {
				applyAttr(node, a)
			}

		case EventHandler:
			node.Props[v.Event] = v.Handler

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}

		case string:
			node.Children = append(node.Children, Text(v))

		case ComponentType:
			node.Children = append(node.Children, Comp(v))
		}
	}
}

// applyAttr stores one attribute, routing the reconciliation key to the
// node's Key field instead of the props map.
func applyAttr(node *VNode, a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			node.Key = s
		}
		return
	}
	node.Props[a.Key] = a.Value
}
