package dom

import "testing"

func TestDiff(t *testing.T) {
	t.Run("identical trees produce no patches", func(t *testing.T) {
		prev := Div(Class("a"), Span("x"))
		next := Div(Class("a"), Span("x"))
		if patches := Diff(prev, next); len(patches) != 0 {
			t.Errorf("patches = %v, want none", patches)
		}
	})

	t.Run("text change", func(t *testing.T) {
		prev := P("old")
		next := P("new")
		patches := Diff(prev, next)
		if len(patches) != 1 {
			t.Fatalf("patches len = %v, want 1", len(patches))
		}
		p := patches[0]
		if p.Op != PatchSetText {
			t.Errorf("Op = %v, want SetText", p.Op)
		}
		if p.Target != prev.Children[0] {
			t.Error("Target should be the live text node")
		}
		if p.Value != "new" {
			t.Errorf("Value = %v, want new", p.Value)
		}
	})

	t.Run("prop changed and added", func(t *testing.T) {
		prev := Div(Class("a"))
		next := Div(Class("b"), ID("z"))
		patches := Diff(prev, next)
		if len(patches) != 2 {
			t.Fatalf("patches = %v, want 2", patches)
		}
		if patches[0].Op != PatchSetProp || patches[0].Key != "class" || patches[0].Value != "b" {
			t.Errorf("patches[0] = %+v, want SetProp class=b", patches[0])
		}
		if patches[1].Op != PatchSetProp || patches[1].Key != "id" || patches[1].Value != "z" {
			t.Errorf("patches[1] = %+v, want SetProp id=z", patches[1])
		}
	})

	t.Run("prop removed", func(t *testing.T) {
		prev := Div(Class("a"), ID("z"))
		next := Div(Class("a"))
		patches := Diff(prev, next)
		if len(patches) != 1 {
			t.Fatalf("patches = %v, want 1", patches)
		}
		if patches[0].Op != PatchRemoveProp || patches[0].Key != "id" {
			t.Errorf("patches[0] = %+v, want RemoveProp id", patches[0])
		}
	})

	t.Run("dataset change", func(t *testing.T) {
		prev := Div(Data("state", "open"))
		next := Div(Data("state", "closed"), Data("x", "1"))
		patches := Diff(prev, next)
		if len(patches) != 2 {
			t.Fatalf("patches = %v, want 2", patches)
		}
		if patches[0].Op != PatchSetDataset || patches[0].Key != "state" || patches[0].Value != "closed" {
			t.Errorf("patches[0] = %+v, want SetDataset state=closed", patches[0])
		}
		if patches[1].Op != PatchSetDataset || patches[1].Key != "x" || patches[1].Value != "1" {
			t.Errorf("patches[1] = %+v, want SetDataset x=1", patches[1])
		}
	})

	t.Run("dataset removed", func(t *testing.T) {
		prev := Div(Data("state", "open"))
		next := Div()
		patches := Diff(prev, next)
		if len(patches) != 1 || patches[0].Op != PatchRemoveDataset || patches[0].Key != "state" {
			t.Errorf("patches = %v, want one RemoveDataset state", patches)
		}
	})

	t.Run("child appended", func(t *testing.T) {
		prev := Ul(Li("a"))
		next := Ul(Li("a"), Li("b"))
		patches := Diff(prev, next)
		if len(patches) != 1 {
			t.Fatalf("patches = %v, want 1", patches)
		}
		p := patches[0]
		if p.Op != PatchInsertChild || p.Target != prev || p.Index != 1 {
			t.Errorf("patches[0] = %+v, want InsertChild at 1", p)
		}
		if p.Child != next.Children[1] {
			t.Error("Child should be the new node from next")
		}
	})

	t.Run("child removed", func(t *testing.T) {
		prev := Ul(Li("a"), Li("b"))
		next := Ul(Li("a"))
		patches := Diff(prev, next)
		if len(patches) != 1 {
			t.Fatalf("patches = %v, want 1", patches)
		}
		p := patches[0]
		if p.Op != PatchRemoveChild || p.Target != prev || p.Child != prev.Children[1] {
			t.Errorf("patches[0] = %+v, want RemoveChild of live child", p)
		}
	})

	t.Run("tag change replaces in place", func(t *testing.T) {
		prev := Div(Span("x"))
		next := Div(P("x"))
		patches := Diff(prev, next)
		if len(patches) != 1 || patches[0].Op != PatchReplaceNode {
			t.Fatalf("patches = %v, want one ReplaceNode", patches)
		}
		if patches[0].Target != prev.Children[0] {
			t.Error("Target should be the live child")
		}
	})

	t.Run("kind change replaces in place", func(t *testing.T) {
		prev := Div(Span("x"))
		next := Div(NewText("x"))
		patches := Diff(prev, next)
		if len(patches) != 1 || patches[0].Op != PatchReplaceNode {
			t.Errorf("patches = %v, want one ReplaceNode", patches)
		}
	})

	t.Run("keyed reorder produces moves", func(t *testing.T) {
		prev := Ul(Li(Key("a"), "a"), Li(Key("b"), "b"))
		next := Ul(Li(Key("b"), "b"), Li(Key("a"), "a"))
		patches := Diff(prev, next)
		if len(patches) != 2 {
			t.Fatalf("patches = %v, want 2 moves", patches)
		}
		for _, p := range patches {
			if p.Op != PatchMoveChild {
				t.Errorf("Op = %v, want MoveChild", p.Op)
			}
		}
	})

	t.Run("keyed insert keeps existing nodes", func(t *testing.T) {
		a, b := Li(Key("a"), "a"), Li(Key("b"), "b")
		prev := Ul(a, b)
		next := Ul(Li(Key("a"), "a"), Li(Key("new"), "n"), Li(Key("b"), "b"))
		patches := Diff(prev, next)
		Apply(patches)
		if len(prev.Children) != 3 {
			t.Fatalf("Children len = %v, want 3", len(prev.Children))
		}
		if prev.Children[0] != a || prev.Children[2] != b {
			t.Error("existing keyed children should keep identity")
		}
		if getKey(prev.Children[1]) != "new" {
			t.Errorf("middle key = %v, want new", getKey(prev.Children[1]))
		}
	})

	t.Run("nil inputs", func(t *testing.T) {
		if patches := Diff(nil, Div()); len(patches) != 0 {
			t.Errorf("Diff(nil, x) = %v, want none", patches)
		}
		if patches := Diff(Div(), nil); len(patches) != 0 {
			t.Errorf("Diff(x, nil) = %v, want none", patches)
		}
	})
}

func TestApply(t *testing.T) {
	t.Run("text patch mutates live node", func(t *testing.T) {
		prev := P("old")
		Apply(Diff(prev, P("new")))
		if prev.Children[0].Text != "new" {
			t.Errorf("text = %v, want new", prev.Children[0].Text)
		}
	})

	t.Run("prop patches mutate live node", func(t *testing.T) {
		prev := Div(Class("a"), ID("z"))
		Apply(Diff(prev, Div(Class("b"))))
		if prev.Props["class"] != "b" {
			t.Errorf("class = %v, want b", prev.Props["class"])
		}
		if _, ok := prev.Props["id"]; ok {
			t.Error("id should have been removed")
		}
	})

	t.Run("keyed reorder", func(t *testing.T) {
		prev := Ul(Li(Key("a"), "a"), Li(Key("b"), "b"), Li(Key("c"), "c"))
		next := Ul(Li(Key("c"), "c"), Li(Key("a"), "a"), Li(Key("b"), "b"))
		Apply(Diff(prev, next))
		want := []string{"c", "a", "b"}
		for i, w := range want {
			if got := getKey(prev.Children[i]); got != w {
				t.Errorf("Children[%d] key = %v, want %v", i, got, w)
			}
		}
	})

	t.Run("replace morphs in place", func(t *testing.T) {
		prev := Div(Span("x"))
		child := prev.Children[0]
		Apply(Diff(prev, Div(P("y"))))
		if prev.Children[0] != child {
			t.Fatal("child identity should survive a replace")
		}
		if child.Tag != "p" {
			t.Errorf("Tag = %v, want p", child.Tag)
		}
		if child.Children[0].Text != "y" {
			t.Errorf("text = %v, want y", child.Children[0].Text)
		}
	})
}

func TestReplaceContent(t *testing.T) {
	t.Run("keeps matching children", func(t *testing.T) {
		target := Ul()
		a, b := Li("a"), Li("b")
		target.Append(a, b)
		ReplaceContent(target, List{a, b, Li("c")})
		if len(target.Children) != 3 {
			t.Fatalf("Children len = %v, want 3", len(target.Children))
		}
		if target.Children[0] != a || target.Children[1] != b {
			t.Error("existing children should keep identity")
		}
	})

	t.Run("updates text in place", func(t *testing.T) {
		target := P("old")
		child := target.Children[0]
		ReplaceContent(target, Text("new"))
		if target.Children[0] != child {
			t.Fatal("text node identity should survive")
		}
		if child.Text != "new" {
			t.Errorf("text = %v, want new", child.Text)
		}
	})

	t.Run("removes surplus children", func(t *testing.T) {
		target := Ul(Li("a"), Li("b"), Li("c"))
		ReplaceContent(target, Li("a"))
		if len(target.Children) != 1 {
			t.Errorf("Children len = %v, want 1", len(target.Children))
		}
	})

	t.Run("clears with nil", func(t *testing.T) {
		target := Ul(Li("a"))
		ReplaceContent(target, nil)
		if len(target.Children) != 0 {
			t.Errorf("Children len = %v, want 0", len(target.Children))
		}
	})

	t.Run("returns target", func(t *testing.T) {
		target := Div()
		if got := ReplaceContent(target, Text("x")); got != target {
			t.Errorf("ReplaceContent returned %v, want target", got)
		}
	})

	t.Run("props and dataset are untouched", func(t *testing.T) {
		target := Div(Class("keep"), Data("state", "open"), Span("old"))
		ReplaceContent(target, Span("new"))
		if target.Props["class"] != "keep" {
			t.Errorf("class = %v, want keep", target.Props["class"])
		}
		if target.Dataset["state"] != "open" {
			t.Errorf("Dataset[state] = %v, want open", target.Dataset["state"])
		}
	})
}

func TestContentPatches(t *testing.T) {
	t.Run("no changes yields no patches", func(t *testing.T) {
		a := Li("a")
		target := Ul()
		target.Append(a)
		if got := ContentPatches(target, List{a}); len(got) != 0 {
			t.Errorf("patches = %v, want none", got)
		}
	})

	t.Run("computes without applying", func(t *testing.T) {
		target := Ul(Li("a"))
		patches := ContentPatches(target, List{Li("a"), Li("b")})
		if len(patches) == 0 {
			t.Fatal("expected patches")
		}
		if len(target.Children) != 1 {
			t.Errorf("Children len = %v, want 1 before Apply", len(target.Children))
		}
		Apply(patches)
		if len(target.Children) != 2 {
			t.Errorf("Children len = %v, want 2 after Apply", len(target.Children))
		}
	})

	t.Run("nil target", func(t *testing.T) {
		if got := ContentPatches(nil, Text("x")); got != nil {
			t.Errorf("patches = %v, want nil", got)
		}
	})
}

func TestPropsEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b any
		want bool
	}{
		{"equal strings", "a", "a", true},
		{"different strings", "a", "b", false},
		{"equal ints", 1, 1, true},
		{"int vs string", 1, "1", false},
		{"equal bools", true, true, true},
		{"nils", nil, nil, true},
		{"nil vs value", nil, "x", false},
		{"equal slices", []string{"a"}, []string{"a"}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := propsEqual(c.a, c.b); got != c.want {
				t.Errorf("propsEqual(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestPatchOpString(t *testing.T) {
	ops := map[PatchOp]string{
		PatchSetText:       "SetText",
		PatchSetProp:       "SetProp",
		PatchRemoveProp:    "RemoveProp",
		PatchSetDataset:    "SetDataset",
		PatchRemoveDataset: "RemoveDataset",
		PatchInsertChild:   "InsertChild",
		PatchRemoveChild:   "RemoveChild",
		PatchMoveChild:     "MoveChild",
		PatchReplaceNode:   "ReplaceNode",
		PatchOp(0xFF):      "Unknown",
	}
	for op, want := range ops {
		if got := op.String(); got != want {
			t.Errorf("PatchOp(%d).String() = %v, want %v", op, got, want)
		}
	}
}
