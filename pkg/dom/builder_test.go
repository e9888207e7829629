package dom

import "testing"

func TestNew(t *testing.T) {
	t.Run("tag attrs content", func(t *testing.T) {
		node := New("div", Attrs{"id": "main"}, Text("hello"))
		if node.Tag != "div" {
			t.Errorf("Tag = %v, want div", node.Tag)
		}
		if node.Props["id"] != "main" {
			t.Errorf("Props[id] = %v, want main", node.Props["id"])
		}
		if len(node.Children) != 1 || node.Children[0].Text != "hello" {
			t.Errorf("Children = %v, want one text child", node.Children)
		}
	})

	t.Run("nil attrs and content", func(t *testing.T) {
		node := New("p", nil, nil)
		if node.Tag != "p" || len(node.Props) != 0 || len(node.Children) != 0 {
			t.Errorf("New(p, nil, nil) = %+v, want bare element", node)
		}
	})

	t.Run("data keys route to dataset", func(t *testing.T) {
		node := New("div", Attrs{"data-state": "open", "title": "x"}, nil)
		if v := node.Dataset["state"]; v != "open" {
			t.Errorf("Dataset[state] = %v, want open", v)
		}
		if _, ok := node.Props["data-state"]; ok {
			t.Error("data-state leaked into Props")
		}
		if node.Props["title"] != "x" {
			t.Errorf("Props[title] = %v, want x", node.Props["title"])
		}
	})

	t.Run("dataset values are stringified", func(t *testing.T) {
		node := New("div", Attrs{"data-count": 42, "data-ok": true, "data-ratio": 1.5}, nil)
		want := map[string]string{"count": "42", "ok": "true", "ratio": "1.5"}
		for k, w := range want {
			if v := node.Dataset[k]; v != w {
				t.Errorf("Dataset[%s] = %v, want %v", k, v, w)
			}
		}
	})

	t.Run("prop values keep their type", func(t *testing.T) {
		node := New("input", Attrs{"disabled": true, "tabindex": 3}, nil)
		if v, ok := node.Props["disabled"].(bool); !ok || !v {
			t.Errorf("Props[disabled] = %v, want true", node.Props["disabled"])
		}
		if v, ok := node.Props["tabindex"].(int); !ok || v != 3 {
			t.Errorf("Props[tabindex] = %v, want 3", node.Props["tabindex"])
		}
	})

	t.Run("nil attr values are skipped", func(t *testing.T) {
		node := New("div", Attrs{"title": nil, "data-x": nil}, nil)
		if len(node.Props) != 0 || len(node.Dataset) != 0 {
			t.Errorf("Props = %v, Dataset = %v, want both empty", node.Props, node.Dataset)
		}
	})

	t.Run("namespaced tag", func(t *testing.T) {
		node := New("svg:circle", nil, nil)
		if node.Namespace != "svg" {
			t.Errorf("Namespace = %v, want svg", node.Namespace)
		}
		if node.Tag != "circle" {
			t.Errorf("Tag = %v, want circle", node.Tag)
		}
	})
}

func TestNSTag(t *testing.T) {
	path := NSTag("svg", "path")
	node := path(Attr{Key: "d", Value: "M0 0"})
	if node.Namespace != "svg" {
		t.Errorf("Namespace = %v, want svg", node.Namespace)
	}
	if node.Tag != "path" {
		t.Errorf("Tag = %v, want path", node.Tag)
	}
	if node.Props["d"] != "M0 0" {
		t.Errorf("Props[d] = %v, want M0 0", node.Props["d"])
	}
}

func TestSplitTag(t *testing.T) {
	cases := []struct {
		tag  string
		ns   string
		name string
	}{
		{"div", "", "div"},
		{"svg:path", "svg", "path"},
		{"math:mi", "math", "mi"},
		{":odd", "", "odd"},
	}
	for _, c := range cases {
		ns, name := splitTag(c.tag)
		if ns != c.ns || name != c.name {
			t.Errorf("splitTag(%q) = %q, %q, want %q, %q", c.tag, ns, name, c.ns, c.name)
		}
	}
}
