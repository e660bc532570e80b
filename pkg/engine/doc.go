// Package engine is the rendering library the vantage adapter drives.
//
// It turns vdom element descriptions into a live instance tree, invokes
// component lifecycle hooks in their native order, and applies state and
// prop updates with a synchronous flush: by the time SetProps, SetState,
// or an event handler returns, the tree is fully re-rendered. Re-entrant
// updates scheduled from inside lifecycle hooks are queued and drained
// before the outermost call returns.
//
// # Components
//
// Function components are registered with Func and render purely from
// props. Class components are Go structs embedding Base, registered with
// NewClass; they gain per-mount state and may implement any of the
// optional lifecycle interfaces (WillMounter, DidMounter,
// WillReceivePropser, ShouldUpdater, DidUpdater, WillUnmounter).
//
// # Expansion modes
//
// Mount expands every component recursively. MountShallow expands only
// the root component; nested components are left unexpanded and their
// lifecycle hooks never run. RenderStatic expands the whole tree once
// into a component-free vdom tree, retaining no live instances.
//
// Reconciliation is deliberately simple: children are matched by
// position, kind, tag/type, and key. A match takes the update path; a
// mismatch unmounts the old subtree and mounts the new one.
package engine
