// Package vdom defines the element-description tree that the vantage
// adapter and its rendering engine exchange.
//
// A VNode describes one node of the desired output: a host element
// (<div>, <button>, ...), plain text, a fragment grouping, a raw HTML
// block, or a user-defined component identified by a ComponentType.
// VNodes are inert data; the engine package turns them into a live
// instance tree and the adapter package turns live trees back into
// harness-facing descriptions.
//
// # Building trees
//
// Elements are created with variadic factory functions:
//
//	El("div", Class("card"),
//	    El("h1", Text("Title")),
//	    El("p", Text("Content")),
//	    OnClick(handler),
//	)
//
// Factory arguments may be attributes, event handlers, child nodes,
// strings (converted to text nodes), or nil/false (skipped), so
// conditional children compose without special casing.
package vdom
