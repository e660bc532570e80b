package adapter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mq2thez/vantage/pkg/render"
	"github.com/mq2thez/vantage/pkg/vdom"
)

// appendText accumulates the tree's textual representation: text node
// contents in render order with no separators, placeholders as
// self-closing tags bearing the component name.
func appendText(b *strings.Builder, e *Element) {
	switch e.Kind {
	case KindText:
		b.WriteString(e.Text)
	case KindPlaceholder:
		writePlaceholder(b, e)
	default:
		for _, c := range e.Children {
			appendText(b, c)
		}
	}
}

// appendHTML serializes the tree to markup with the same escaping and
// attribute rules as the render package. Composites contribute only
// their rendered output.
func appendHTML(b *strings.Builder, e *Element) {
	switch e.Kind {
	case KindText:
		if e.Raw {
			b.WriteString(e.Text)
		} else {
			b.WriteString(render.EscapeHTML(e.Text))
		}

	case KindPlaceholder:
		writePlaceholder(b, e)

	case KindComposite:
		for _, c := range e.Children {
			appendHTML(b, c)
		}

	case KindHost:
		b.WriteByte('<')
		b.WriteString(e.Tag)
		appendAttrs(b, e.Props)
		b.WriteByte('>')
		if vdom.IsVoidElement(e.Tag) {
			return
		}
		for _, c := range e.Children {
			appendHTML(b, c)
		}
		fmt.Fprintf(b, "</%s>", e.Tag)
	}
}

// appendAttrs writes props as attributes in sorted key order, skipping
// handlers and internal props.
func appendAttrs(b *strings.Builder, props vdom.Props) {
	if len(props) == 0 {
		return
	}

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]
		if render.SkipAttr(key, value) {
			continue
		}
		if render.IsBooleanAttr(key) {
			if boolValue, ok := value.(bool); ok {
				if boolValue {
					fmt.Fprintf(b, " %s", key)
				}
				continue
			}
		}
		strValue := render.AttrString(value)
		if strValue != "" {
			fmt.Fprintf(b, ` %s="%s"`, key, render.EscapeAttr(strValue))
		}
	}
}

func writePlaceholder(b *strings.Builder, e *Element) {
	name := "Unknown"
	if e.Type != nil {
		name = e.Type.TypeName()
	}
	b.WriteByte('<')
	b.WriteString(name)
	b.WriteString(" />")
}
