package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mq2thez/vantage/pkg/vdom"
)

// RenderToString renders a component-free VNode tree to an HTML string.
func RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a component-free VNode tree to the given writer.
func RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return renderNode(w, node)
}

// renderNode dispatches rendering based on node kind.
func renderNode(w io.Writer, node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return renderElement(w, node)
	case vdom.KindText:
		_, err := io.WriteString(w, EscapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := renderNode(w, child); err != nil {
				return err
			}
		}
		return nil
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	case vdom.KindComponent:
		return fmt.Errorf("render: unexpanded component %q in tree", typeName(node))
	default:
		return fmt.Errorf("render: unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func renderElement(w io.Writer, node *vdom.VNode) error {
	tag := node.Tag

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := renderAttributes(w, node.Props); err != nil {
		return err
	}

	// Void elements self-close and cannot carry children.
	if vdom.IsVoidElement(tag) {
		_, err := w.Write([]byte{'>'})
		return err
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := renderNode(w, child); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "</%s>", tag)
	return err
}

// renderAttributes renders props as HTML attributes in sorted key order.
func renderAttributes(w io.Writer, props vdom.Props) error {
	if len(props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]
		if SkipAttr(key, value) {
			continue
		}

		if IsBooleanAttr(key) {
			if boolValue, ok := value.(bool); ok {
				if boolValue {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		strValue := AttrString(value)
		if strValue != "" {
			if _, err := fmt.Fprintf(w, ` %s="%s"`, key, EscapeAttr(strValue)); err != nil {
				return err
			}
		}
	}

	return nil
}

// SkipAttr reports whether a prop is internal or a handler and therefore
// has no attribute representation.
func SkipAttr(key string, value any) bool {
	if key == "key" || key == "children" {
		return true
	}
	if strings.HasPrefix(key, "_") {
		return true
	}
	if strings.HasPrefix(key, "on") && IsEventHandler(value) {
		return true
	}
	return false
}

// IsEventHandler returns true if the value looks like an event handler.
func IsEventHandler(value any) bool {
	if value == nil {
		return false
	}
	switch value.(type) {
	case func():
		return true
	case func(any):
		return true
	case vdom.EventHandler:
		return true
	default:
		return strings.HasPrefix(fmt.Sprintf("%T", value), "func")
	}
}

// typeName extracts a component display name for error messages.
func typeName(node *vdom.VNode) string {
	if node.Type != nil {
		return node.Type.TypeName()
	}
	return "unknown"
}
