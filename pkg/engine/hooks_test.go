package engine

import (
	"testing"

	"github.com/mq2thez/vantage/pkg/vdom"
)

// plain is a minimal class component for hook registry tests.
type plain struct {
	Base
}

func (c *plain) Render(props vdom.Props) *vdom.VNode { return vdom.El("div") }

func unmountOnce(t *testing.T) {
	t.Helper()
	typ := NewClass("Plain", func() Class { return &plain{} })
	root, err := Mount(vdom.Comp(typ))
	if err != nil {
		t.Fatalf("Mount() error: %v", err)
	}
	if err := root.Unmount(); err != nil {
		t.Fatalf("Unmount() error: %v", err)
	}
}

func TestOnBeforeUnmountRemove(t *testing.T) {
	defer ResetHooks()

	calls := 0
	remove := OnBeforeUnmount(func(Class) { calls++ })

	unmountOnce(t)
	if calls != 1 {
		t.Fatalf("hook fired %d times, want 1", calls)
	}

	remove()
	unmountOnce(t)
	if calls != 1 {
		t.Errorf("removed hook still fired, calls = %d", calls)
	}

	// Removing twice is harmless.
	remove()
}

func TestResetHooks(t *testing.T) {
	calls := 0
	OnBeforeUnmount(func(Class) { calls++ })
	OnBeforeUnmount(func(Class) { calls++ })
	ResetHooks()

	unmountOnce(t)
	if calls != 0 {
		t.Errorf("hooks fired after reset, calls = %d", calls)
	}
}

func TestMultipleHooksAllFire(t *testing.T) {
	defer ResetHooks()

	var order []string
	OnBeforeUnmount(func(Class) { order = append(order, "first") })
	OnBeforeUnmount(func(Class) { order = append(order, "second") })

	unmountOnce(t)
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("hook order = %v, want [first second]", order)
	}
}
