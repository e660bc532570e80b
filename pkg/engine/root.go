package engine

import (
	"errors"

	"github.com/mq2thez/vantage/pkg/vdom"
)

// ErrUnmounted is returned when a root is used after Unmount.
var ErrUnmounted = errors.New("engine: render root already unmounted")

// ErrNotComponent is returned when a prop or state mutation targets a
// root whose top-level node is not a component.
var ErrNotComponent = errors.New("engine: root node is not a component")

// ErrStateless is returned when a state mutation targets a root whose
// component has no state (a function component).
var ErrStateless = errors.New("engine: root component has no state")

// ErrNilNode is returned when mounting a nil description.
var ErrNilNode = errors.New("engine: cannot mount nil node")

// Root owns one live render session: the resolved tree, its instances,
// and the update flush loop. A Root is not safe for concurrent use;
// callers drive it from a single goroutine.
type Root struct {
	node      *Node
	shallow   bool
	unmounted bool

	// flush loop state (see flush.go)
	depth int
	queue []*instance

	onCommit func()
}

// Mount renders a description into a live tree, expanding every
// component recursively.
func Mount(v *vdom.VNode) (*Root, error) {
	return mount(v, false)
}

// MountShallow renders only the root component's own output. Nested
// components are left unexpanded; they are never instantiated and none
// of their lifecycle hooks run.
func MountShallow(v *vdom.VNode) (*Root, error) {
	return mount(v, true)
}

func mount(v *vdom.VNode, shallow bool) (*Root, error) {
	if v == nil {
		return nil, ErrNilNode
	}
	r := &Root{shallow: shallow}
	r.depth++
	r.node = r.resolve(v, true)
	r.drain()
	r.depth--
	return r, nil
}

// Tree returns the live tree root for walking. It fails once the root
// has been unmounted; callers must not retain returned nodes across a
// mutation.
func (r *Root) Tree() (*Node, error) {
	if r.unmounted {
		return nil, ErrUnmounted
	}
	return r.node, nil
}

// Shallow reports whether this root was mounted with the shallow policy.
func (r *Root) Shallow() bool { return r.shallow }

// SetProps merges the patch into the root component's props and applies
// the native update sequence before returning.
func (r *Root) SetProps(patch vdom.Props) error {
	if r.unmounted {
		return ErrUnmounted
	}
	inst := r.node.inst
	if inst == nil {
		return ErrNotComponent
	}

	r.depth++
	inst.update(mergeProps(inst.props, patch), inst.state, true)
	r.drain()
	r.depth--
	r.committed()
	return nil
}

// SetState merges the patch into the root component's state and applies
// the update before returning. The optional done callback fires
// synchronously once the update has fully applied.
func (r *Root) SetState(patch State, done func()) error {
	if r.unmounted {
		return ErrUnmounted
	}
	inst := r.node.inst
	if inst == nil {
		return ErrNotComponent
	}
	if inst.class == nil {
		return ErrStateless
	}
	r.scheduleState(inst, patch, done)
	return nil
}

// Unmount tears the live tree down, firing the before-unmount extension
// point and ComponentWillUnmount for every class instance.
func (r *Root) Unmount() error {
	if r.unmounted {
		return ErrUnmounted
	}
	r.teardown(r.node)
	r.unmounted = true
	return nil
}

// OnCommit registers a callback invoked after each completed mutation
// flush. Used by live viewers to observe updates; nil clears it.
func (r *Root) OnCommit(fn func()) {
	r.onCommit = fn
}

func (r *Root) committed() {
	if r.onCommit != nil {
		r.onCommit()
	}
}
