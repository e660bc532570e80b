package adapter

import (
	"strings"

	"github.com/mq2thez/vantage/pkg/engine"
	"github.com/mq2thez/vantage/pkg/vdom"
)

// The walker reconstructs neutral element descriptions from a live
// engine tree. It runs fresh on every query: results are never cached
// across a mutation boundary. Walk functions return slices because
// fragments splice their children into the parent sequence and empty
// nodes contribute nothing.

// walkLive translates one live node.
func (s *Session) walkLive(n *engine.Node) []*Element {
	if n == nil {
		return nil
	}

	switch n.Kind() {
	case vdom.KindText:
		return []*Element{{Kind: KindText, Text: n.VNode().Text, session: s, gen: s.gen}}

	case vdom.KindRaw:
		return []*Element{{Kind: KindText, Text: n.VNode().Text, Raw: true, session: s, gen: s.gen}}

	case vdom.KindFragment:
		var out []*Element
		for _, kid := range n.Children() {
			out = append(out, s.walkLive(kid)...)
		}
		return out

	case vdom.KindElement:
		el := &Element{
			Kind:    KindHost,
			Tag:     n.VNode().Tag,
			Props:   visibleProps(n.VNode().Props),
			session: s,
			gen:     s.gen,
		}
		for _, kid := range n.Children() {
			el.Children = append(el.Children, s.walkLive(kid)...)
		}
		return []*Element{el}

	case vdom.KindComponent:
		if !n.Expanded() {
			return []*Element{{
				Kind:    KindPlaceholder,
				Type:    n.VNode().Type,
				session: s,
				gen:     s.gen,
			}}
		}
		el := &Element{
			Kind:     KindComposite,
			Type:     n.VNode().Type,
			Props:    s.compositeProps(n.Props()),
			Instance: n.Instance(),
			session:  s,
			gen:      s.gen,
		}
		el.Children = s.walkLive(n.Output())
		return []*Element{el}
	}

	return nil
}

// compositeProps copies a component's props, replacing the "children"
// entry (raw descriptions) with walked elements. The entry is always
// present, defaulting to an empty sequence.
func (s *Session) compositeProps(props vdom.Props) vdom.Props {
	out := visibleProps(props)
	children := []*Element{}
	if raw, ok := props["children"].([]*vdom.VNode); ok {
		children = s.describeNodes(raw)
	}
	out["children"] = children
	return out
}

// describeNodes walks element descriptions that were never rendered,
// such as the children passed to a component or a statically expanded
// tree. Components encountered here appear as placeholders.
func (s *Session) describeNodes(nodes []*vdom.VNode) []*Element {
	out := []*Element{}
	for _, v := range nodes {
		out = append(out, s.describeNode(v)...)
	}
	return out
}

func (s *Session) describeNode(v *vdom.VNode) []*Element {
	if v == nil {
		return nil
	}

	switch v.Kind {
	case vdom.KindText:
		return []*Element{{Kind: KindText, Text: v.Text, session: s, gen: s.gen}}

	case vdom.KindRaw:
		return []*Element{{Kind: KindText, Text: v.Text, Raw: true, session: s, gen: s.gen}}

	case vdom.KindFragment:
		var out []*Element
		for _, c := range v.Children {
			out = append(out, s.describeNode(c)...)
		}
		return out

	case vdom.KindElement:
		el := &Element{
			Kind:    KindHost,
			Tag:     v.Tag,
			Props:   visibleProps(v.Props),
			session: s,
			gen:     s.gen,
		}
		for _, c := range v.Children {
			el.Children = append(el.Children, s.describeNode(c)...)
		}
		return []*Element{el}

	case vdom.KindComponent:
		return []*Element{{Kind: KindPlaceholder, Type: v.Type, session: s, gen: s.gen}}
	}

	return nil
}

// visibleProps copies props, dropping reconciliation keys and internal
// slots. Event handlers stay: Simulate needs them.
func visibleProps(props vdom.Props) vdom.Props {
	out := make(vdom.Props, len(props))
	for k, v := range props {
		if k == "key" || k == "children" || strings.HasPrefix(k, "_") {
			continue
		}
		out[k] = v
	}
	return out
}
