package engine

import "sync"

// Process-wide extension points. External instrumentation registers
// here to observe engine activity across every root; test sessions
// install hooks in setup and call ResetHooks between runs to avoid
// cross-test leakage.

type unmountHook struct {
	id uint64
	fn func(Class)
}

var (
	hooksMu       sync.Mutex
	hookSeq       uint64
	beforeUnmount []unmountHook
)

// OnBeforeUnmount registers a hook invoked for every class instance
// immediately before its ComponentWillUnmount runs. The returned
// function removes the hook.
func OnBeforeUnmount(fn func(Class)) (remove func()) {
	hooksMu.Lock()
	defer hooksMu.Unlock()

	hookSeq++
	id := hookSeq
	beforeUnmount = append(beforeUnmount, unmountHook{id: id, fn: fn})

	return func() {
		hooksMu.Lock()
		defer hooksMu.Unlock()
		for i, h := range beforeUnmount {
			if h.id == id {
				beforeUnmount = append(beforeUnmount[:i], beforeUnmount[i+1:]...)
				return
			}
		}
	}
}

// ResetHooks removes every registered extension point.
func ResetHooks() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	beforeUnmount = nil
}

// notifyBeforeUnmount invokes the registered hooks for one instance.
func notifyBeforeUnmount(c Class) {
	hooksMu.Lock()
	hooks := make([]unmountHook, len(beforeUnmount))
	copy(hooks, beforeUnmount)
	hooksMu.Unlock()

	for _, h := range hooks {
		h.fn(c)
	}
}
