package vdom

import "testing"

// stubType is a minimal ComponentType for tests in this package.
type stubType struct{ name string }

func (s *stubType) TypeName() string { return s.name }

func TestElBasics(t *testing.T) {
	node := El("div", Class("card"), ID("main"),
		El("span", Text("a")),
		"b",
	)

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("unexpected node: kind=%v tag=%q", node.Kind, node.Tag)
	}
	if node.Props["class"] != "card" || node.Props["id"] != "main" {
		t.Errorf("props not applied: %v", node.Props)
	}
	if len(node.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(node.Children))
	}
	if node.Children[1].Kind != KindText || node.Children[1].Text != "b" {
		t.Errorf("string child not converted to text node: %+v", node.Children[1])
	}
}

func TestElSkipsNilAndBool(t *testing.T) {
	node := El("ul",
		nil,
		If(false, El("li", Text("hidden"))),
		false,
		El("li", Text("shown")),
	)

	if len(node.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(node.Children))
	}
	if node.Children[0].Children[0].Text != "shown" {
		t.Errorf("wrong surviving child: %+v", node.Children[0])
	}
}

func TestElKeyRoutedToKeyField(t *testing.T) {
	node := El("li", Key(7), Text("x"))

	if node.Key != "7" {
		t.Errorf("Key = %q, want %q", node.Key, "7")
	}
	if _, ok := node.Props["key"]; ok {
		t.Error("key must not appear in props")
	}
}

func TestElEventHandler(t *testing.T) {
	handler := func() {}
	node := El("button", OnClick(handler))

	if node.Props["onclick"] == nil {
		t.Error("onclick handler not stored in props")
	}
}

func TestComp(t *testing.T) {
	typ := &stubType{name: "Child"}
	node := Comp(typ, Prop("label", "hi"), El("span", Text("kid")))

	if node.Kind != KindComponent {
		t.Fatalf("Kind = %v, want Component", node.Kind)
	}
	if node.Type != ComponentType(typ) {
		t.Error("component identity not preserved")
	}
	if node.Props["label"] != "hi" {
		t.Errorf("component props not applied: %v", node.Props)
	}
	if len(node.Children) != 1 {
		t.Errorf("expected 1 child, got %d", len(node.Children))
	}
}

func TestIsVoidElement(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"br", true},
		{"img", true},
		{"input", true},
		{"div", false},
		{"span", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := IsVoidElement(tt.tag); got != tt.want {
				t.Errorf("IsVoidElement(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}
