package dom

import "testing"

func TestChildOps(t *testing.T) {
	t.Run("append child", func(t *testing.T) {
		parent := Div()
		child := Span()
		parent.AppendChild(child)
		if len(parent.Children) != 1 || parent.Children[0] != child {
			t.Errorf("Children = %v, want the span", parent.Children)
		}
	})

	t.Run("append nil child is ignored", func(t *testing.T) {
		parent := Div()
		parent.AppendChild(nil)
		if len(parent.Children) != 0 {
			t.Errorf("Children len = %v, want 0", len(parent.Children))
		}
	})

	t.Run("insert child at index", func(t *testing.T) {
		parent := Div(Span("a"), Span("c"))
		parent.InsertChild(Span("b"), 1)
		want := []string{"a", "b", "c"}
		for i, w := range want {
			if got := parent.Children[i].Children[0].Text; got != w {
				t.Errorf("Children[%d] text = %v, want %v", i, got, w)
			}
		}
	})

	t.Run("insert child clamps index", func(t *testing.T) {
		parent := Div(Span("a"))
		parent.InsertChild(Span("b"), 99)
		if len(parent.Children) != 2 {
			t.Fatalf("Children len = %v, want 2", len(parent.Children))
		}
		if parent.Children[1].Children[0].Text != "b" {
			t.Errorf("last child text = %v, want b", parent.Children[1].Children[0].Text)
		}
		parent.InsertChild(Span("z"), -5)
		if parent.Children[0].Children[0].Text != "z" {
			t.Errorf("first child text = %v, want z", parent.Children[0].Children[0].Text)
		}
	})

	t.Run("insert before reference", func(t *testing.T) {
		parent := Div()
		a, c := Span("a"), Span("c")
		parent.AppendChild(a).AppendChild(c)
		parent.InsertBefore(Span("b"), c)
		if len(parent.Children) != 3 {
			t.Fatalf("Children len = %v, want 3", len(parent.Children))
		}
		if parent.Children[1].Children[0].Text != "b" {
			t.Errorf("middle child text = %v, want b", parent.Children[1].Children[0].Text)
		}
	})

	t.Run("insert before nil appends", func(t *testing.T) {
		parent := Div(Span("a"))
		parent.InsertBefore(Span("b"), nil)
		if parent.LastChild().Children[0].Text != "b" {
			t.Errorf("last child text = %v, want b", parent.LastChild().Children[0].Text)
		}
	})

	t.Run("remove child by identity", func(t *testing.T) {
		parent := Div()
		a, b := Span("a"), Span("b")
		parent.AppendChild(a).AppendChild(b)
		if !parent.RemoveChild(a) {
			t.Fatal("RemoveChild = false, want true")
		}
		if len(parent.Children) != 1 || parent.Children[0] != b {
			t.Errorf("Children = %v, want just b", parent.Children)
		}
		if parent.RemoveChild(a) {
			t.Error("second RemoveChild = true, want false")
		}
	})

	t.Run("first and last child", func(t *testing.T) {
		parent := Div()
		if parent.FirstChild() != nil || parent.LastChild() != nil {
			t.Error("empty node should have nil first/last child")
		}
		a, b := Span("a"), Span("b")
		parent.AppendChild(a).AppendChild(b)
		if parent.FirstChild() != a {
			t.Errorf("FirstChild = %v, want a", parent.FirstChild())
		}
		if parent.LastChild() != b {
			t.Errorf("LastChild = %v, want b", parent.LastChild())
		}
	})
}

func TestAppendPrepend(t *testing.T) {
	t.Run("append keeps existing children", func(t *testing.T) {
		parent := Div(Span("a"))
		parent.Append(Text("b"), Span("c"))
		if len(parent.Children) != 3 {
			t.Fatalf("Children len = %v, want 3", len(parent.Children))
		}
		if parent.Children[1].Text != "b" {
			t.Errorf("Children[1].Text = %v, want b", parent.Children[1].Text)
		}
	})

	t.Run("prepend inserts at front", func(t *testing.T) {
		parent := Div(Span("c"))
		parent.Prepend(Text("a"), Text("b"))
		if len(parent.Children) != 3 {
			t.Fatalf("Children len = %v, want 3", len(parent.Children))
		}
		if parent.Children[0].Text != "a" || parent.Children[1].Text != "b" {
			t.Errorf("prepended texts = %v, %v, want a, b", parent.Children[0].Text, parent.Children[1].Text)
		}
	})

	t.Run("append drops empty text", func(t *testing.T) {
		parent := Div()
		parent.Append(Text(""))
		if len(parent.Children) != 0 {
			t.Errorf("Children len = %v, want 0", len(parent.Children))
		}
	})
}

func TestPropsAndDataset(t *testing.T) {
	t.Run("set and read prop", func(t *testing.T) {
		node := Div()
		node.SetProp("id", "main")
		v, ok := node.Prop("id")
		if !ok || v != "main" {
			t.Errorf("Prop(id) = %v, %v, want main, true", v, ok)
		}
	})

	t.Run("missing prop", func(t *testing.T) {
		node := Div()
		if _, ok := node.Prop("nope"); ok {
			t.Error("Prop(nope) ok = true, want false")
		}
	})

	t.Run("set and read dataset entry", func(t *testing.T) {
		node := Div()
		node.SetDataset("state", "open")
		v, ok := node.DatasetEntry("state")
		if !ok || v != "open" {
			t.Errorf("DatasetEntry(state) = %v, %v, want open, true", v, ok)
		}
	})

	t.Run("set prop on zero node", func(t *testing.T) {
		node := &Node{Kind: KindElement, Tag: "div"}
		node.SetProp("id", "x").SetDataset("y", "z")
		if node.Props["id"] != "x" {
			t.Errorf("Props[id] = %v, want x", node.Props["id"])
		}
		if node.Dataset["y"] != "z" {
			t.Errorf("Dataset[y] = %v, want z", node.Dataset["y"])
		}
	})
}

func TestClone(t *testing.T) {
	orig := Div(
		Attrs{"id": "main", "data-state": "open"},
		Span("child"),
	)
	clone := orig.Clone()

	if clone == orig {
		t.Fatal("Clone returned the same node")
	}
	if clone.Props["id"] != "main" {
		t.Errorf("clone Props[id] = %v, want main", clone.Props["id"])
	}
	if clone.Dataset["state"] != "open" {
		t.Errorf("clone Dataset[state] = %v, want open", clone.Dataset["state"])
	}
	if len(clone.Children) != 1 || clone.Children[0] == orig.Children[0] {
		t.Error("clone children should be copies, not shared")
	}

	// Mutating the clone must not touch the original.
	clone.SetProp("id", "copy")
	clone.Children[0].Children[0].Text = "changed"
	if orig.Props["id"] != "main" {
		t.Errorf("orig Props[id] = %v, want main", orig.Props["id"])
	}
	if orig.Children[0].Children[0].Text != "child" {
		t.Errorf("orig child text = %v, want child", orig.Children[0].Children[0].Text)
	}

	if (*Node)(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindRaw, "Raw"},
		{Kind(99), "Unknown"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %v, want %v", c.kind, got, c.want)
		}
	}
}
