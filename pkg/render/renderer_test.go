package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Rosuav/Choc/pkg/dom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.NewText("Hello, World!")
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.NewText("<script>alert('xss')</script>")
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.Div(dom.Class("container"),
		dom.H1(dom.Text("Title")),
		dom.P(dom.Text("Content")),
	)
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `<div class="container">`) {
		t.Errorf("should contain div with class, got %q", html)
	}
	if !strings.Contains(html, `<h1>Title</h1>`) {
		t.Errorf("should contain h1, got %q", html)
	}
	if !strings.Contains(html, `<p>Content</p>`) {
		t.Errorf("should contain p, got %q", html)
	}
}

func TestRenderVoidElements(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *dom.Node
		want string
	}{
		{
			name: "input",
			node: dom.Input(dom.Type("text"), dom.Name("email")),
			want: `<input name="email" type="text">`,
		},
		{
			name: "br",
			node: dom.Br(),
			want: `<br>`,
		},
		{
			name: "img",
			node: dom.Img(dom.Src("/image.png"), dom.Alt("test")),
			want: `<img alt="test" src="/image.png">`,
		},
		{
			name: "hr",
			node: dom.Hr(),
			want: `<hr>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
			// Verify no closing tag
			if strings.Contains(html, "</"+tt.name+">") {
				t.Errorf("void element should not have closing tag, got %q", html)
			}
		})
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.Input(
		dom.Type("checkbox"),
		dom.Checked(),
		dom.Disabled(),
	)
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<input checked disabled type="checkbox">` {
		t.Errorf("got %q, want %q", html, `<input checked disabled type="checkbox">`)
	}
	if strings.Contains(html, `checked="true"`) {
		t.Errorf("boolean attrs should not have values, got %q", html)
	}
}

func TestRenderBooleanAttributeFalse(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.Input(dom.Attr{Key: "disabled", Value: false})
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "disabled") {
		t.Errorf("false boolean attr should be omitted, got %q", html)
	}
}

func TestRenderFragment(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.Fragment(
		dom.Div(dom.Text("One")),
		dom.Div(dom.Text("Two")),
	)
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "<div>One</div><div>Two</div>"
	if html != expected {
		t.Errorf("got %q, want %q", html, expected)
	}
}

func TestRenderNestedFragments(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.Fragment(
		dom.Fragment(
			dom.Span(dom.Text("A")),
			dom.Span(dom.Text("B")),
		),
		dom.Span(dom.Text("C")),
	)
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "<span>A</span><span>B</span><span>C</span>"
	if html != expected {
		t.Errorf("got %q, want %q", html, expected)
	}
}

func TestRenderRaw(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.Raw("<strong>Bold</strong>")
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<strong>Bold</strong>" {
		t.Errorf("raw HTML should not be escaped, got %q", html)
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true, Indent: "  "})

	node := dom.Div(
		dom.H1(dom.Text("Title")),
		dom.P(dom.Text("Content")),
	)
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "\n") {
		t.Errorf("pretty output should contain newlines, got %q", html)
	}
	if !strings.Contains(html, "  <h1>") {
		t.Errorf("pretty output should have indentation, got %q", html)
	}
}

func TestRenderNilNode(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(nil)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "" {
		t.Errorf("nil node should produce empty string, got %q", html)
	}
}

func TestRenderToWriter(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	node := dom.Div(dom.Text("Hello"))

	err := renderer.RenderToWriter(&buf, node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf.String() != "<div>Hello</div>" {
		t.Errorf("got %q, want %q", buf.String(), "<div>Hello</div>")
	}
}

func TestRenderAttributeEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.Input(dom.Value(`test" onclick="alert('xss')`))
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The double quote must be escaped, preventing attribute injection
	if !strings.Contains(html, `&quot;`) {
		t.Errorf("quotes should be escaped, got %q", html)
	}
	if !strings.Contains(html, `value="test&quot;`) {
		t.Errorf("should have properly escaped value attribute, got %q", html)
	}
}

func TestRenderEmptyElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.Div()
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<div></div>" {
		t.Errorf("got %q, want %q", html, "<div></div>")
	}
}

func TestRenderDatasetEntries(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.Div(dom.Data("id", "123"), dom.Data("name", "test"))
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<div data-id="123" data-name="test"></div>` {
		t.Errorf("got %q, want dataset entries as data-* attributes", html)
	}
}

func TestRenderDatasetFromBuilder(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.New("span", dom.Attrs{"data-count": 42, "id": "c"}, nil)
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<span data-count="42" id="c"></span>` {
		t.Errorf("got %q, want %q", html, `<span data-count="42" id="c"></span>`)
	}
}

func TestRenderKeyNotEmitted(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.Li(dom.Key("item-1"), dom.Text("First"))
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "key") {
		t.Errorf("reconciliation key should not be rendered, got %q", html)
	}
	if html != "<li>First</li>" {
		t.Errorf("got %q, want %q", html, "<li>First</li>")
	}
}

func TestRenderSortedAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.A(
		dom.Target("_blank"),
		dom.ID("home"),
		dom.Href("/"),
		dom.Class("nav"),
		dom.Text("Home"),
	)
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<a class="nav" href="/" id="home" target="_blank">Home</a>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderEmptyAttributeValue(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.Div(dom.Class(""), dom.Text("x"))
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<div>x</div>" {
		t.Errorf("empty attribute values should be skipped, got %q", html)
	}
}

func TestRenderNamespace(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.New("svg:svg", dom.Attrs{"viewBox": "0 0 10 10"}, dom.List{
		dom.New("svg:circle", dom.Attrs{"r": 5}, nil),
	})
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><circle r="5"></circle></svg>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
	// The xmlns declaration must not repeat on nested children
	if strings.Count(html, "xmlns") != 1 {
		t.Errorf("xmlns should appear once, got %q", html)
	}
}

func TestRenderNamespaceMathML(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.New("math:math", nil, dom.List{
		dom.New("math:mi", nil, dom.Text("x")),
	})
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<math xmlns="http://www.w3.org/1998/Math/MathML"><mi>x</mi></math>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderUnknownNamespace(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.New("custom:widget", nil, nil)
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Unknown prefixes carry no xmlns declaration
	if html != "<widget></widget>" {
		t.Errorf("got %q, want %q", html, "<widget></widget>")
	}
}

func TestHTML(t *testing.T) {
	node := dom.P(dom.Class("lead"), dom.Text("hi"))

	got := HTML(node)
	want := `<p class="lead">hi</p>`
	if got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestRenderNumericAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := dom.Img(dom.Src("/a.png"), dom.Width(640), dom.Height(480))
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<img height="480" src="/a.png" width="640">`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}
