package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mq2thez/vantage/pkg/engine"
	"github.com/mq2thez/vantage/pkg/render"
	"github.com/mq2thez/vantage/pkg/vdom"
)

// Strategy selects how a session renders its tree.
type Strategy uint8

const (
	StrategyMount   Strategy = iota // full rendering, live instances
	StrategyShallow                 // root component only, placeholders below
	StrategyStatic                  // one-shot rendering, read-only
)

// String returns the string representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyMount:
		return "mount"
	case StrategyShallow:
		return "shallow"
	case StrategyStatic:
		return "static"
	default:
		return "unknown"
	}
}

// Session is one render session: the harness's handle for queries and
// mutations. A session is owned by a single test and driven from one
// goroutine; every operation completes, including any re-render it
// triggers, before returning.
type Session struct {
	strategy Strategy
	root     *engine.Root

	// gen counts mutations; elements from an older walk are stale.
	gen uint64

	// static strategy keeps its one-shot results; there is nothing
	// live left to re-walk.
	staticRoot *Element
	staticHTML string
}

// Mount renders the description fully and returns a live session.
func Mount(v *vdom.VNode) (*Session, error) {
	if err := checkRoot(v); err != nil {
		return nil, err
	}
	root, err := engine.Mount(v)
	if err != nil {
		return nil, err
	}
	return &Session{strategy: StrategyMount, root: root}, nil
}

// Shallow renders only the root component and returns a live session in
// which nested components appear as placeholders.
func Shallow(v *vdom.VNode) (*Session, error) {
	if err := checkRoot(v); err != nil {
		return nil, err
	}
	root, err := engine.MountShallow(v)
	if err != nil {
		return nil, err
	}
	return &Session{strategy: StrategyShallow, root: root}, nil
}

// RenderStatic renders once to an immutable tree and markup string.
// The resulting session answers read-only queries; mutations fail with
// an UnsupportedOperationError.
func RenderStatic(v *vdom.VNode) (*Session, error) {
	if err := checkRoot(v); err != nil {
		return nil, err
	}
	expanded, err := engine.RenderStatic(v)
	if err != nil {
		return nil, err
	}
	html, err := render.RenderToString(expanded)
	if err != nil {
		return nil, err
	}

	s := &Session{strategy: StrategyStatic, staticHTML: html}
	root, err := rootElement(s.describeNode(expanded))
	if err != nil {
		return nil, err
	}
	s.staticRoot = root
	return s, nil
}

// checkRoot validates a mountable description.
func checkRoot(v *vdom.VNode) error {
	if v == nil {
		return errors.New("adapter: cannot render nil node")
	}
	if v.Kind != vdom.KindElement && v.Kind != vdom.KindComponent {
		return fmt.Errorf("adapter: root must be an element or component, got %s", v.Kind)
	}
	return nil
}

// Strategy returns the session's render strategy.
func (s *Session) Strategy() Strategy { return s.strategy }

// OnCommit registers a callback invoked after each completed mutation
// flush. Live viewers use it to observe updates; nil clears it. Static
// sessions never commit, so the callback is ignored.
func (s *Session) OnCommit(fn func()) {
	if s.root != nil {
		s.root.OnCommit(fn)
	}
}

// Root walks the live tree and returns a fresh root element. The walk
// happens on every call; results from before a mutation are stale.
func (s *Session) Root() (*Element, error) {
	if s.strategy == StrategyStatic {
		return s.staticRoot, nil
	}
	tree, err := s.root.Tree()
	if err != nil {
		return nil, s.mapEngineErr(err)
	}
	return rootElement(s.walkLive(tree))
}

// Text returns the concatenation, in render order, of all text content
// with no separators. Placeholders contribute "<Name />".
func (s *Session) Text() (string, error) {
	root, err := s.Root()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	appendText(&b, root)
	return b.String(), nil
}

// HTML returns the serialized markup of the rendered tree. Under the
// shallow strategy, placeholders serialize as "<Name />".
func (s *Session) HTML() (string, error) {
	if s.strategy == StrategyStatic {
		return s.staticHTML, nil
	}
	root, err := s.Root()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	appendHTML(&b, root)
	return b.String(), nil
}

// Props returns the root element's props.
func (s *Session) Props() (vdom.Props, error) {
	root, err := s.Root()
	if err != nil {
		return nil, err
	}
	return root.Props, nil
}

// State returns the root class component's current state.
func (s *Session) State() (engine.State, error) {
	if s.strategy == StrategyStatic {
		return nil, &UnsupportedOperationError{Op: "State", Strategy: s.strategy}
	}
	tree, err := s.root.Tree()
	if err != nil {
		return nil, s.mapEngineErr(err)
	}
	state := tree.ComponentState()
	if state == nil {
		return nil, engine.ErrStateless
	}
	return state, nil
}

// SetProps merges the patch into the root component's props, applying
// the full update sequence before returning.
func (s *Session) SetProps(patch vdom.Props) error {
	if err := s.mutable("SetProps"); err != nil {
		return err
	}
	if err := s.root.SetProps(patch); err != nil {
		return s.mapEngineErr(err)
	}
	s.gen++
	return nil
}

// SetState merges the patch into the root component's state. The update
// and re-render are fully applied when the call returns.
func (s *Session) SetState(patch engine.State) error {
	return s.SetStateWith(patch, nil)
}

// SetStateWith is SetState with a completion callback, invoked
// synchronously after the update has applied and before this call
// returns.
func (s *Session) SetStateWith(patch engine.State, done func()) error {
	if err := s.mutable("SetState"); err != nil {
		return err
	}
	if err := s.root.SetState(patch, done); err != nil {
		return s.mapEngineErr(err)
	}
	s.gen++
	return nil
}

// Simulate dispatches a synthetic event to the target element's matching
// handler prop: an event named "click" invokes the "onclick" handler.
// A target with no matching handler is a no-op, not a failure. Any state
// change the handler triggers is flushed before Simulate returns.
func (s *Session) Simulate(target *Element, event string, args ...any) error {
	if err := s.mutable("Simulate"); err != nil {
		return err
	}
	if target == nil {
		return errors.New("adapter: nil simulate target")
	}
	if target.session != s || target.gen != s.gen {
		return &StaleTreeError{Reason: "simulate target predates the last mutation"}
	}

	handler, ok := target.Props["on"+strings.ToLower(event)]
	if !ok || handler == nil {
		return nil
	}

	switch fn := handler.(type) {
	case func():
		fn()
	case func(any):
		var arg any
		if len(args) > 0 {
			arg = args[0]
		}
		fn(arg)
	default:
		// Unrecognized handler shapes are skipped like missing ones.
		return nil
	}

	s.gen++
	return nil
}

// Unmount tears the session's live tree down. Further queries and
// mutations fail with a StaleTreeError.
func (s *Session) Unmount() error {
	if err := s.mutable("Unmount"); err != nil {
		return err
	}
	if err := s.root.Unmount(); err != nil {
		return s.mapEngineErr(err)
	}
	s.gen++
	return nil
}

// mutable rejects mutations on the static strategy.
func (s *Session) mutable(op string) error {
	if s.strategy == StrategyStatic {
		return &UnsupportedOperationError{Op: op, Strategy: s.strategy}
	}
	return nil
}

// mapEngineErr translates engine sentinels into the adapter taxonomy.
// Everything else propagates unmodified.
func (s *Session) mapEngineErr(err error) error {
	if errors.Is(err, engine.ErrUnmounted) {
		return &StaleTreeError{Reason: "render root has been unmounted"}
	}
	return err
}

// rootElement expects the walk of a root description to produce exactly
// one element.
func rootElement(els []*Element) (*Element, error) {
	if len(els) != 1 {
		return nil, fmt.Errorf("adapter: expected a single root element, got %d", len(els))
	}
	return els[0], nil
}
