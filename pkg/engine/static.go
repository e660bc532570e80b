package engine

import (
	"fmt"

	"github.com/mq2thez/vantage/pkg/vdom"
)

// RenderStatic expands a description into a component-free vdom tree,
// suitable for one-shot HTML serialization. No live instances are
// retained: class components are instantiated, seeded with initial
// state, and discarded. Following server-render convention,
// ComponentWillMount fires and ComponentDidMount does not. SetState on
// a statically rendered component is a no-op.
func RenderStatic(v *vdom.VNode) (*vdom.VNode, error) {
	if v == nil {
		return nil, ErrNilNode
	}
	return expandStatic(v)
}

func expandStatic(v *vdom.VNode) (*vdom.VNode, error) {
	if v == nil {
		return nil, nil
	}

	switch v.Kind {
	case vdom.KindText, vdom.KindRaw:
		return v, nil

	case vdom.KindElement, vdom.KindFragment:
		out := &vdom.VNode{
			Kind:  v.Kind,
			Tag:   v.Tag,
			Props: v.Props,
			Key:   v.Key,
		}
		for _, c := range v.Children {
			ec, err := expandStatic(c)
			if err != nil {
				return nil, err
			}
			if ec != nil {
				out.Children = append(out.Children, ec)
			}
		}
		return out, nil

	case vdom.KindComponent:
		props := componentProps(v)
		switch t := v.Type.(type) {
		case *FuncType:
			return expandStatic(t.render(props))

		case *ClassType:
			cls := t.factory()
			// Detached instance: state reads work during render,
			// SetState has no root to flush through and no-ops.
			inst := &instance{typ: v.Type, props: props, state: seedState(cls)}
			if b, ok := cls.(instanceBinder); ok {
				b.bindInstance(inst)
			}
			inst.class = cls
			if wm, ok := cls.(WillMounter); ok {
				wm.ComponentWillMount()
			}
			return expandStatic(cls.Render(props))

		default:
			return nil, fmt.Errorf("engine: cannot statically render component type %T", v.Type)
		}
	}

	return nil, fmt.Errorf("engine: unknown node kind: %d", v.Kind)
}
