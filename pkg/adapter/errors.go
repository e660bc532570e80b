package adapter

import "fmt"

// StaleTreeError reports a walk or query against an instance that has
// been unmounted or superseded by a later render. The caller must
// re-request a fresh tree; the adapter never retries on its behalf.
type StaleTreeError struct {
	Reason string
}

func (e *StaleTreeError) Error() string {
	return "adapter: stale tree: " + e.Reason
}

// UnsupportedOperationError reports a mutating operation against the
// static strategy, which retains no live instance to mutate.
type UnsupportedOperationError struct {
	Op       string
	Strategy Strategy
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("adapter: %s is not supported by the %s strategy", e.Op, e.Strategy)
}
