package engine

import "github.com/mq2thez/vantage/pkg/vdom"

// Node is one node of the live resolved tree. It pairs the description
// that produced it with resolved children and, for expanded components,
// the component instance. Callers read it; only the engine mutates it.
type Node struct {
	vnode *vdom.VNode
	kids  []*Node
	inst  *instance
}

// VNode returns the description node, nil for an empty slot (a component
// that rendered nothing).
func (n *Node) VNode() *vdom.VNode { return n.vnode }

// Kind returns the description kind. Empty slots report KindFragment
// with no children, which renders to nothing.
func (n *Node) Kind() vdom.VKind {
	if n.vnode == nil {
		return vdom.KindFragment
	}
	return n.vnode.Kind
}

// Children returns the resolved child nodes (elements and fragments).
func (n *Node) Children() []*Node { return n.kids }

// Expanded reports whether a component node was expanded into a live
// instance. Always false for non-component nodes.
func (n *Node) Expanded() bool { return n.inst != nil }

// Output returns the resolved render output of an expanded component.
func (n *Node) Output() *Node {
	if n.inst == nil {
		return nil
	}
	return n.inst.out
}

// Instance returns the live class instance, or nil for function
// components and unexpanded nodes. Lookup only; callers must not retain
// it across an unmount.
func (n *Node) Instance() Class {
	if n.inst == nil {
		return nil
	}
	return n.inst.class
}

// Props returns the effective props: for expanded components the
// instance props (including "children"), otherwise the description's.
func (n *Node) Props() vdom.Props {
	if n.inst != nil {
		return n.inst.props
	}
	if n.vnode == nil {
		return nil
	}
	return n.vnode.Props
}

// ComponentState returns the class instance's state, or nil.
func (n *Node) ComponentState() State {
	if n.inst == nil {
		return nil
	}
	return n.inst.state
}

// instance is one live component mount.
type instance struct {
	root  *Root
	typ   vdom.ComponentType
	class Class // nil for function components
	props vdom.Props
	state State
	out   *Node

	// re-entrant update bookkeeping, drained by the root's flush loop
	queued       bool
	pendingState State
	pendingDone  []func()

	unmounted bool
}

// render produces the instance's output description for its current
// component type. Panics from user render code propagate unmodified.
func (inst *instance) render(props vdom.Props) *vdom.VNode {
	if inst.class != nil {
		return inst.class.Render(props)
	}
	if t, ok := inst.typ.(*FuncType); ok {
		return t.render(props)
	}
	return nil
}

// update runs the native update sequence: optional
// ComponentWillReceiveProps (only when receiving external props), the
// ShouldComponentUpdate gate, commit, re-render, ComponentDidUpdate.
// When the gate returns false the new props and state are still
// committed, but neither the re-render nor DidUpdate happens.
func (inst *instance) update(nextProps vdom.Props, nextState State, receiving bool) {
	prevProps, prevState := inst.props, inst.state

	if receiving {
		if pr, ok := inst.class.(WillReceivePropser); ok {
			pr.ComponentWillReceiveProps(nextProps)
		}
	}

	should := true
	if su, ok := inst.class.(ShouldUpdater); ok {
		should = su.ShouldComponentUpdate(nextProps, nextState)
	}

	inst.props = nextProps
	inst.state = nextState

	if !should {
		return
	}

	inst.out = inst.root.reconcile(inst.out, inst.render(nextProps))

	if du, ok := inst.class.(DidUpdater); ok {
		du.ComponentDidUpdate(prevProps, prevState)
	}
}

// resolve turns a description into a live tree node, expanding
// components according to the root's expansion policy.
func (r *Root) resolve(v *vdom.VNode, isRoot bool) *Node {
	n := &Node{vnode: v}
	if v == nil {
		return n
	}

	switch v.Kind {
	case vdom.KindText, vdom.KindRaw:
		// leaf

	case vdom.KindElement, vdom.KindFragment:
		for _, c := range v.Children {
			n.kids = append(n.kids, r.resolve(c, false))
		}

	case vdom.KindComponent:
		if r.shallow && !isRoot {
			// Left unexpanded: the component is never instantiated and
			// none of its lifecycle hooks run.
			break
		}
		n.inst = r.mountComponent(v)
	}

	return n
}

// mountComponent instantiates and renders one component node.
// Hook order matches the native mount sequence: the parent's WillMount,
// then the children's full mounts, then the parent's DidMount.
func (r *Root) mountComponent(v *vdom.VNode) *instance {
	inst := &instance{root: r, typ: v.Type, props: componentProps(v)}

	switch t := v.Type.(type) {
	case *FuncType:
		inst.out = r.resolve(t.render(inst.props), false)

	case *ClassType:
		cls := t.factory()
		if b, ok := cls.(instanceBinder); ok {
			b.bindInstance(inst)
		}
		inst.class = cls
		inst.state = seedState(cls)

		if wm, ok := cls.(WillMounter); ok {
			wm.ComponentWillMount()
		}
		inst.out = r.resolve(cls.Render(inst.props), false)
		if dm, ok := cls.(DidMounter); ok {
			dm.ComponentDidMount()
		}

	default:
		// Unknown component type implementations stay unexpanded and
		// surface as placeholders in walked output.
		return nil
	}

	return inst
}

// seedState returns the component's initial state.
func seedState(cls Class) State {
	if is, ok := cls.(InitialStater); ok {
		return is.InitialState().Clone()
	}
	return State{}
}

// reconcile matches the old live node against a new description.
// Position, kind, tag/type, and key must all agree for the update path;
// any mismatch tears the old subtree down and mounts the new one.
func (r *Root) reconcile(old *Node, v *vdom.VNode) *Node {
	if v == nil {
		if old != nil {
			r.teardown(old)
		}
		return &Node{}
	}
	if old == nil || !sameShape(old.vnode, v) {
		if old != nil {
			r.teardown(old)
		}
		return r.resolve(v, false)
	}

	switch v.Kind {
	case vdom.KindText, vdom.KindRaw:
		return &Node{vnode: v}

	case vdom.KindElement, vdom.KindFragment:
		n := &Node{vnode: v}
		for i, c := range v.Children {
			var oldKid *Node
			if i < len(old.kids) {
				oldKid = old.kids[i]
			}
			n.kids = append(n.kids, r.reconcile(oldKid, c))
		}
		for i := len(v.Children); i < len(old.kids); i++ {
			r.teardown(old.kids[i])
		}
		return n

	case vdom.KindComponent:
		if old.inst == nil {
			// Unexpanded under shallow policy; stays unexpanded.
			return &Node{vnode: v}
		}
		n := &Node{vnode: v, inst: old.inst}
		old.inst.update(componentProps(v), old.inst.state, true)
		return n
	}

	return r.resolve(v, false)
}

// sameShape reports whether a live node can be updated in place from
// the new description.
func sameShape(a, b *vdom.VNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Key != b.Key {
		return false
	}
	switch a.Kind {
	case vdom.KindElement:
		return a.Tag == b.Tag
	case vdom.KindComponent:
		return a.Type == b.Type
	}
	return true
}

// teardown unmounts a live subtree top-down: the extension point and
// ComponentWillUnmount fire for the parent before its children are
// torn down.
func (r *Root) teardown(n *Node) {
	if n == nil {
		return
	}
	if n.inst != nil {
		inst := n.inst
		if inst.unmounted {
			return
		}
		if inst.class != nil {
			notifyBeforeUnmount(inst.class)
			if wu, ok := inst.class.(WillUnmounter); ok {
				wu.ComponentWillUnmount()
			}
		}
		inst.unmounted = true
		r.teardown(inst.out)
		return
	}
	for _, kid := range n.kids {
		r.teardown(kid)
	}
}
