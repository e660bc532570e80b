// Package adapter translates live engine render trees into the neutral
// element descriptions a component-test harness consumes, and routes the
// harness's mutations back through the engine with synchronous-flush
// semantics.
//
// A Session is opened with one of three strategies:
//
//   - Mount: full rendering; every component is expanded and HTML()
//     returns the exact serialized markup.
//   - Shallow: only the root component renders; nested components appear
//     as placeholders serialized as "<Name />", and their lifecycle
//     hooks never run.
//   - RenderStatic: one-shot rendering with no live instances; only
//     read-only queries are supported.
//
// Queries (Root, Text, HTML, Props) re-walk the live tree on every call,
// so a mutation is always observed by the next read. Elements captured
// from an earlier walk become stale after any mutation; using one fails
// with a StaleTreeError rather than returning outdated results.
package adapter
