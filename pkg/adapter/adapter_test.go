package adapter

import (
	"errors"
	"testing"

	"github.com/mq2thez/vantage/pkg/engine"
	"github.com/mq2thez/vantage/pkg/vdom"
)

// counter renders its count state with an increment button.
type counter struct {
	engine.Base
}

func (c *counter) InitialState() engine.State { return engine.State{"count": 0} }

func (c *counter) Render(props vdom.Props) *vdom.VNode {
	return vdom.El("div",
		vdom.El("span", vdom.Textf("%v", c.State()["count"])),
		vdom.El("button",
			vdom.OnClick(func() {
				c.SetState(engine.State{"count": c.State()["count"].(int) + 1})
			}),
			vdom.Text("+"),
		),
	)
}

var counterType = engine.NewClass("Counter", func() engine.Class { return &counter{} })

// greeter renders a child component between text siblings.
type greeter struct {
	engine.Base
}

func (c *greeter) Render(props vdom.Props) *vdom.VNode {
	return vdom.El("div",
		vdom.Text("Hello "),
		vdom.Comp(childType),
		vdom.Text("!"),
	)
}

var (
	greeterType = engine.NewClass("Greeter", func() engine.Class { return &greeter{} })
	childType   = engine.Func("Child", func(props vdom.Props) *vdom.VNode {
		return vdom.El("em", vdom.Text("world"))
	})
)

func TestMountTextAndHTML(t *testing.T) {
	s, err := Mount(vdom.Comp(counterType))
	if err != nil {
		t.Fatalf("Mount() error: %v", err)
	}

	text, err := s.Text()
	if err != nil {
		t.Fatalf("Text() error: %v", err)
	}
	if text != "0+" {
		t.Errorf("Text() = %q, want %q", text, "0+")
	}

	html, err := s.HTML()
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}
	want := "<div><span>0</span><button>+</button></div>"
	if html != want {
		t.Errorf("HTML() = %q, want %q", html, want)
	}

	// Full rendering expands everything: no placeholders anywhere.
	root, _ := s.Root()
	if found := root.Find(func(e *Element) bool { return e.Kind == KindPlaceholder }); found != nil {
		t.Errorf("full mount contains placeholder for %v", found.Type)
	}
}

func TestFullMountExpandsNestedComponents(t *testing.T) {
	s, err := Mount(vdom.Comp(greeterType))
	if err != nil {
		t.Fatalf("Mount() error: %v", err)
	}

	text, _ := s.Text()
	if text != "Hello world!" {
		t.Errorf("Text() = %q, want %q", text, "Hello world!")
	}

	html, _ := s.HTML()
	want := "<div>Hello <em>world</em>!</div>"
	if html != want {
		t.Errorf("HTML() = %q, want %q", html, want)
	}
}

func TestShallowPlaceholders(t *testing.T) {
	s, err := Shallow(vdom.Comp(greeterType))
	if err != nil {
		t.Fatalf("Shallow() error: %v", err)
	}

	text, err := s.Text()
	if err != nil {
		t.Fatalf("Text() error: %v", err)
	}
	if text != "Hello <Child />!" {
		t.Errorf("Text() = %q, want %q", text, "Hello <Child />!")
	}

	html, _ := s.HTML()
	want := "<div>Hello <Child />!</div>"
	if html != want {
		t.Errorf("HTML() = %q, want %q", html, want)
	}

	root, _ := s.Root()
	child := root.Find(ByType(childType))
	if child == nil {
		t.Fatal("child placeholder not found")
	}
	if child.Kind != KindPlaceholder {
		t.Errorf("child Kind = %v, want Placeholder", child.Kind)
	}
	if child.Instance != nil {
		t.Error("placeholder must not carry a live instance")
	}
}

func TestFragmentFlattening(t *testing.T) {
	s, err := Mount(vdom.El("div", vdom.Fragment(
		vdom.El("span", vdom.Text("a")),
		vdom.El("span", vdom.Text("b")),
		vdom.Fragment(
			vdom.El("span", vdom.Text("c")),
		),
	)))
	if err != nil {
		t.Fatalf("Mount() error: %v", err)
	}

	root, err := s.Root()
	if err != nil {
		t.Fatalf("Root() error: %v", err)
	}
	if len(root.Children) != 3 {
		t.Fatalf("div has %d children, want 3", len(root.Children))
	}
	for i, c := range root.Children {
		if c.Kind != KindHost || c.Tag != "span" {
			t.Errorf("child %d = %v %q, want Host span", i, c.Kind, c.Tag)
		}
	}
}

func TestNilFalseChildrenOmitted(t *testing.T) {
	s, _ := Mount(vdom.El("ul",
		vdom.If(false, vdom.El("li", vdom.Text("hidden"))),
		nil,
		vdom.El("li", vdom.Text("shown")),
		false,
	))

	root, _ := s.Root()
	if len(root.Children) != 1 {
		t.Errorf("ul has %d children, want 1", len(root.Children))
	}
}

func TestAdjacentTextNotMerged(t *testing.T) {
	s, _ := Mount(vdom.El("p", "a", "b"))

	root, _ := s.Root()
	if len(root.Children) != 2 {
		t.Fatalf("p has %d children, want 2 distinct text nodes", len(root.Children))
	}
	if root.Children[0].Text != "a" || root.Children[1].Text != "b" {
		t.Errorf("text children = %q, %q", root.Children[0].Text, root.Children[1].Text)
	}
}

func TestIdempotentReads(t *testing.T) {
	s, _ := Mount(vdom.Comp(counterType))

	text1, _ := s.Text()
	text2, _ := s.Text()
	if text1 != text2 {
		t.Errorf("Text() not idempotent: %q then %q", text1, text2)
	}

	html1, _ := s.HTML()
	html2, _ := s.HTML()
	if html1 != html2 {
		t.Errorf("HTML() not idempotent: %q then %q", html1, html2)
	}
}

func TestSetStateSynchronousFlush(t *testing.T) {
	s, _ := Mount(vdom.Comp(counterType))

	if text, _ := s.Text(); text != "0+" {
		t.Fatalf("initial Text() = %q", text)
	}

	if err := s.SetState(engine.State{"count": 2}); err != nil {
		t.Fatalf("SetState() error: %v", err)
	}
	if text, _ := s.Text(); text != "2+" {
		t.Errorf("Text() after SetState = %q, want %q", text, "2+")
	}

	fired := false
	err := s.SetStateWith(engine.State{"count": 7}, func() { fired = true })
	if err != nil {
		t.Fatalf("SetStateWith() error: %v", err)
	}
	if !fired {
		t.Error("completion callback must fire before SetStateWith returns")
	}
	if text, _ := s.Text(); text != "7+" {
		t.Errorf("Text() after SetStateWith = %q, want %q", text, "7+")
	}
}

// labeled renders its label prop.
var labeledType = engine.NewClass("Labeled", func() engine.Class { return &labeled{} })

type labeled struct {
	engine.Base
}

func (c *labeled) Render(props vdom.Props) *vdom.VNode {
	return vdom.El("div", vdom.Textf("%v", props["label"]))
}

func TestSetPropsVisibleImmediately(t *testing.T) {
	s, _ := Mount(vdom.Comp(labeledType, vdom.Prop("label", "before")))

	if text, _ := s.Text(); text != "before" {
		t.Fatalf("initial Text() = %q", text)
	}
	if err := s.SetProps(vdom.Props{"label": "after"}); err != nil {
		t.Fatalf("SetProps() error: %v", err)
	}
	if text, _ := s.Text(); text != "after" {
		t.Errorf("Text() after SetProps = %q, want %q", text, "after")
	}

	props, _ := s.Props()
	if props["label"] != "after" {
		t.Errorf("Props()[label] = %v, want %q", props["label"], "after")
	}
}

func TestSimulateClick(t *testing.T) {
	s, _ := Mount(vdom.Comp(counterType))

	root, _ := s.Root()
	button := root.Find(ByTag("button"))
	if button == nil {
		t.Fatal("button not found")
	}

	if err := s.Simulate(button, "click"); err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}
	if text, _ := s.Text(); text != "1+" {
		t.Errorf("Text() after click = %q, want %q", text, "1+")
	}
}

func TestSimulateMissingHandlerIsNoop(t *testing.T) {
	s, _ := Mount(vdom.Comp(counterType))

	root, _ := s.Root()
	button := root.Find(ByTag("button"))

	if err := s.Simulate(button, "keydown"); err != nil {
		t.Fatalf("Simulate() with no handler must be a no-op, got %v", err)
	}
	if text, _ := s.Text(); text != "0+" {
		t.Errorf("Text() changed after no-op simulate: %q", text)
	}

	// A skipped dispatch is not a mutation: the element stays fresh.
	if err := s.Simulate(button, "click"); err != nil {
		t.Fatalf("Simulate() after no-op error: %v", err)
	}
}

func TestSimulateStubReceivesOneCall(t *testing.T) {
	calls := 0
	s, _ := Mount(vdom.El("div",
		vdom.El("a", vdom.OnClick(func() { calls++ })),
		vdom.El("b"),
	))

	root, _ := s.Root()
	if err := s.Simulate(root.Find(ByTag("a")), "click"); err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}
	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}

	root, _ = s.Root()
	if err := s.Simulate(root.Find(ByTag("b")), "click"); err != nil {
		t.Fatalf("Simulate() on handler-less node error: %v", err)
	}
	if calls != 1 {
		t.Errorf("handler-less node affected the stub, calls = %d", calls)
	}
}

func TestSimulateEventPayload(t *testing.T) {
	var got any
	s, _ := Mount(vdom.El("input", vdom.OnInput(func(v any) { got = v })))

	root, _ := s.Root()
	if err := s.Simulate(root, "input", "typed"); err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}
	if got != "typed" {
		t.Errorf("handler received %v, want %q", got, "typed")
	}
}

func TestStaleElementAfterMutation(t *testing.T) {
	s, _ := Mount(vdom.Comp(counterType))

	root, _ := s.Root()
	button := root.Find(ByTag("button"))

	if err := s.SetState(engine.State{"count": 1}); err != nil {
		t.Fatalf("SetState() error: %v", err)
	}

	err := s.Simulate(button, "click")
	var stale *StaleTreeError
	if !errors.As(err, &stale) {
		t.Fatalf("Simulate() on stale element = %v, want StaleTreeError", err)
	}

	// A fresh walk recovers.
	root, _ = s.Root()
	if err := s.Simulate(root.Find(ByTag("button")), "click"); err != nil {
		t.Errorf("Simulate() after fresh walk error: %v", err)
	}
}

func TestStaticStrategy(t *testing.T) {
	s, err := RenderStatic(vdom.Comp(greeterType))
	if err != nil {
		t.Fatalf("RenderStatic() error: %v", err)
	}

	html, err := s.HTML()
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}
	want := "<div>Hello <em>world</em>!</div>"
	if html != want {
		t.Errorf("HTML() = %q, want %q", html, want)
	}

	if text, _ := s.Text(); text != "Hello world!" {
		t.Errorf("Text() = %q", text)
	}

	root, err := s.Root()
	if err != nil {
		t.Fatalf("Root() error: %v", err)
	}
	if root.Kind != KindHost || root.Tag != "div" {
		t.Errorf("static root = %v %q, want Host div", root.Kind, root.Tag)
	}

	ops := []struct {
		name string
		call func() error
	}{
		{"SetProps", func() error { return s.SetProps(vdom.Props{"x": 1}) }},
		{"SetState", func() error { return s.SetState(engine.State{"x": 1}) }},
		{"Simulate", func() error { return s.Simulate(root, "click") }},
		{"Unmount", func() error { return s.Unmount() }},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			err := op.call()
			var unsupported *UnsupportedOperationError
			if !errors.As(err, &unsupported) {
				t.Fatalf("%s on static = %v, want UnsupportedOperationError", op.name, err)
			}
			if unsupported.Strategy != StrategyStatic {
				t.Errorf("error strategy = %v, want static", unsupported.Strategy)
			}
		})
	}
}

func TestUnmountThenQuery(t *testing.T) {
	defer engine.ResetHooks()

	unmounts := 0
	engine.OnBeforeUnmount(func(engine.Class) { unmounts++ })

	s, _ := Mount(vdom.Comp(counterType))
	if err := s.Unmount(); err != nil {
		t.Fatalf("Unmount() error: %v", err)
	}
	if unmounts < 1 {
		t.Error("before-unmount extension point never fired")
	}

	var stale *StaleTreeError
	if _, err := s.Root(); !errors.As(err, &stale) {
		t.Errorf("Root() after unmount = %v, want StaleTreeError", err)
	}
	if _, err := s.Text(); !errors.As(err, &stale) {
		t.Errorf("Text() after unmount = %v, want StaleTreeError", err)
	}
	if err := s.SetState(engine.State{"count": 9}); !errors.As(err, &stale) {
		t.Errorf("SetState() after unmount = %v, want StaleTreeError", err)
	}
	if err := s.Unmount(); !errors.As(err, &stale) {
		t.Errorf("second Unmount() = %v, want StaleTreeError", err)
	}
}

func TestCompositeChildrenProp(t *testing.T) {
	// Without children the entry is present and empty.
	s, _ := Mount(vdom.Comp(labeledType, vdom.Prop("label", "x")))
	root, _ := s.Root()

	children, ok := root.Props["children"].([]*Element)
	if !ok {
		t.Fatalf("composite props missing children entry: %v", root.Props)
	}
	if len(children) != 0 {
		t.Errorf("children = %d elements, want 0", len(children))
	}
	if _, ok := root.Props["key"]; ok {
		t.Error("reserved key prop leaked into walked props")
	}

	// Passed children are described; nested components unrendered.
	box := engine.Func("Box", func(props vdom.Props) *vdom.VNode {
		return vdom.El("section")
	})
	s2, _ := Mount(vdom.Comp(box,
		vdom.El("p", vdom.Text("inner")),
		vdom.Comp(childType),
	))
	root2, _ := s2.Root()
	children2 := root2.Props["children"].([]*Element)
	if len(children2) != 2 {
		t.Fatalf("children = %d elements, want 2", len(children2))
	}
	if children2[0].Kind != KindHost || children2[0].Tag != "p" {
		t.Errorf("first child = %v %q", children2[0].Kind, children2[0].Tag)
	}
	if children2[1].Kind != KindPlaceholder || children2[1].Type != vdom.ComponentType(childType) {
		t.Errorf("second child should describe the unrendered component")
	}
}

func TestCompositeInstanceRef(t *testing.T) {
	s, _ := Mount(vdom.Comp(counterType))
	root, _ := s.Root()

	if root.Kind != KindComposite {
		t.Fatalf("root Kind = %v, want Composite", root.Kind)
	}
	inst, ok := root.Instance.(*counter)
	if !ok {
		t.Fatalf("Instance = %T, want *counter", root.Instance)
	}
	if got := inst.State()["count"]; got != 0 {
		t.Errorf("instance state count = %v, want 0", got)
	}
}

func TestCheckRoot(t *testing.T) {
	if _, err := Mount(nil); err == nil {
		t.Error("Mount(nil) should fail")
	}
	if _, err := Mount(vdom.Text("loose")); err == nil {
		t.Error("Mount of bare text should fail")
	}
	if _, err := Shallow(vdom.Fragment()); err == nil {
		t.Error("Shallow of bare fragment should fail")
	}
}

func TestFindAll(t *testing.T) {
	s, _ := Mount(vdom.El("div",
		vdom.El("span", vdom.Text("a")),
		vdom.El("p", vdom.El("span", vdom.Text("b"))),
	))
	root, _ := s.Root()

	spans := root.FindAll(ByTag("span"))
	if len(spans) != 2 {
		t.Fatalf("FindAll(span) = %d elements, want 2", len(spans))
	}
	if spans[0].Children[0].Text != "a" || spans[1].Children[0].Text != "b" {
		t.Errorf("FindAll order wrong: %q, %q", spans[0].Children[0].Text, spans[1].Children[0].Text)
	}
}
