package engine

import "github.com/mq2thez/vantage/pkg/vdom"

// State holds a class component's mutable state.
type State map[string]any

// Clone returns a shallow copy of the state map.
// A nil receiver clones to an empty, non-nil map.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Class is implemented by class component structs. Instances are created
// once per mount by the ClassType factory and re-rendered in place on
// every update.
type Class interface {
	Render(props vdom.Props) *vdom.VNode
}

// Optional lifecycle interfaces. The engine checks for each at dispatch
// time; components implement only the hooks they care about.

// WillMounter is invoked once, immediately before the first render.
type WillMounter interface {
	ComponentWillMount()
}

// DidMounter is invoked once, after the component and its children have
// rendered. Children's DidMount hooks fire before the parent's.
type DidMounter interface {
	ComponentDidMount()
}

// WillReceivePropser is invoked when new props arrive from outside,
// before ShouldComponentUpdate. It does not fire on state-only updates
// or on the initial mount.
type WillReceivePropser interface {
	ComponentWillReceiveProps(next vdom.Props)
}

// ShouldUpdater gates re-rendering. Returning false skips the render and
// ComponentDidUpdate; the new props and state are still committed.
type ShouldUpdater interface {
	ShouldComponentUpdate(nextProps vdom.Props, nextState State) bool
}

// DidUpdater is invoked after an update has re-rendered.
type DidUpdater interface {
	ComponentDidUpdate(prevProps vdom.Props, prevState State)
}

// WillUnmounter is invoked once when the component is removed, after the
// process-wide before-unmount extension point and before the component's
// children are torn down.
type WillUnmounter interface {
	ComponentWillUnmount()
}

// InitialStater seeds a class component's state at mount. Components
// without it start with empty state.
type InitialStater interface {
	InitialState() State
}

// FuncType identifies a stateless function component. The pointer is the
// component's identity: two nodes built from the same *FuncType compare
// equal.
type FuncType struct {
	name   string
	render func(vdom.Props) *vdom.VNode
}

// Func registers a function component under a display name.
func Func(name string, render func(vdom.Props) *vdom.VNode) *FuncType {
	return &FuncType{name: name, render: render}
}

// TypeName implements vdom.ComponentType.
func (t *FuncType) TypeName() string { return t.name }

// ClassType identifies a class component. The factory produces one fresh
// instance per mount.
type ClassType struct {
	name    string
	factory func() Class
}

// NewClass registers a class component under a display name.
func NewClass(name string, factory func() Class) *ClassType {
	return &ClassType{name: name, factory: factory}
}

// TypeName implements vdom.ComponentType.
func (t *ClassType) TypeName() string { return t.name }

// instanceBinder is how the engine hands an instance to an embedded Base.
// Only Base implements it; embedding promotes the method.
type instanceBinder interface {
	bindInstance(*instance)
}

// Base is embedded by class component structs to gain state access.
// The engine binds it to the live instance at mount.
type Base struct {
	inst *instance
}

func (b *Base) bindInstance(i *instance) { b.inst = i }

// State returns the component's current state. Before mounting (or in a
// static render) it returns the detached instance's seeded state.
func (b *Base) State() State {
	if b.inst == nil {
		return nil
	}
	return b.inst.state
}

// Props returns the component's current props, including "children".
func (b *Base) Props() vdom.Props {
	if b.inst == nil {
		return nil
	}
	return b.inst.props
}

// SetState merges the patch into the component's state and re-renders
// before returning. Called from inside a lifecycle hook, the update is
// queued and applied before the outermost mutating call returns.
// On unmounted or statically rendered components it is a no-op.
func (b *Base) SetState(patch State) {
	b.SetStateWith(patch, nil)
}

// SetStateWith is SetState with a completion callback. The callback runs
// synchronously, after the update has fully applied and before the
// outermost mutating call returns.
func (b *Base) SetStateWith(patch State, done func()) {
	if b.inst == nil || b.inst.root == nil {
		return
	}
	b.inst.root.scheduleState(b.inst, patch, done)
}

// componentProps builds the effective props for a component node: the
// node's own props plus the "children" entry, always present.
func componentProps(v *vdom.VNode) vdom.Props {
	props := v.Props.Clone()
	children := make([]*vdom.VNode, len(v.Children))
	copy(children, v.Children)
	props["children"] = children
	return props
}

// mergeState merges patch into dst, allocating if dst is nil.
func mergeState(dst, patch State) State {
	if dst == nil {
		dst = make(State, len(patch))
	}
	for k, v := range patch {
		dst[k] = v
	}
	return dst
}

// mergeProps merges patch into a copy of base.
func mergeProps(base, patch vdom.Props) vdom.Props {
	next := base.Clone()
	for k, v := range patch {
		next[k] = v
	}
	return next
}
