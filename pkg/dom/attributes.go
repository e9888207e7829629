package dom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id property.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class property, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style property (named to avoid conflict with the
// Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data attributes

// Data creates a data-* entry routed to the node's Dataset.
// Example: Data("id", "123") → dataset key "id" with value "123".
func Data(key, value string) Attr { return attr(DatasetPrefix+key, value) }

// Accessibility attributes

// Role sets the role property.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label property.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden property.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// TabIndex sets the tabindex property.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// Visibility attributes

// Hidden sets the hidden property.
func Hidden() Attr { return attr("hidden", true) }

// TitleAttr sets the title property (named to avoid conflict with the
// Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Lang sets the lang property.
func Lang(lang string) Attr { return attr("lang", lang) }

// Link attributes

// Href sets the href property.
func Href(url string) Attr { return attr("href", url) }

// Target sets the target property.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the rel property.
func Rel(rel string) Attr { return attr("rel", rel) }

// Form input attributes

// Name sets the name property.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value property.
func Value(value string) Attr { return attr("value", value) }

// Type sets the type property.
func Type(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder property.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Disabled sets the disabled property.
func Disabled() Attr { return attr("disabled", true) }

// Readonly sets the readonly property.
func Readonly() Attr { return attr("readonly", true) }

// Required sets the required property.
func Required() Attr { return attr("required", true) }

// Checked sets the checked property.
func Checked() Attr { return attr("checked", true) }

// Selected sets the selected property.
func Selected() Attr { return attr("selected", true) }

// Multiple sets the multiple property.
func Multiple() Attr { return attr("multiple", true) }

// For sets the for property (for labels).
func For(id string) Attr { return attr("for", id) }

// Media attributes

// Src sets the src property.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt property.
func Alt(text string) Attr { return attr("alt", text) }

// Width sets the width property.
func Width(w int) Attr { return attr("width", w) }

// Height sets the height property.
func Height(h int) Attr { return attr("height", h) }

// Table attributes

// Colspan sets the colspan property.
func Colspan(n int) Attr { return attr("colspan", n) }

// Rowspan sets the rowspan property.
func Rowspan(n int) Attr { return attr("rowspan", n) }

// Meta/Link attributes

// Charset sets the charset property.
func Charset(charset string) Attr { return attr("charset", charset) }

// ContentAttr sets the content property (named to avoid conflict with
// the Content type).
func ContentAttr(content string) Attr { return attr("content", content) }

// ListAttr sets the list property (named to avoid conflict with the
// List type).
func ListAttr(id string) Attr { return attr("list", id) }

// Conditional attributes

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return attr("class", class)
	}
	return Attr{} // Empty attr, will be ignored
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Classes merges multiple class values.
// Accepts string, []string, and map[string]bool.
func Classes(classes ...any) Attr {
	var result []string
	for _, c := range classes {
		switch v := c.(type) {
		case string:
			if v != "" {
				result = append(result, v)
			}
		case []string:
			for _, s := range v {
				if s != "" {
					result = append(result, s)
				}
			}
		case map[string]bool:
			for class, include := range v {
				if include && class != "" {
					result = append(result, class)
				}
			}
		}
	}
	return attr("class", strings.Join(result, " "))
}

// Open sets the open property (for details, dialog).
func Open() Attr { return attr("open", true) }
