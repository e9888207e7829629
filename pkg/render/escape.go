package render

import "strings"

// escapeHTML escapes text for safe inclusion in HTML content. Special
// characters become their entity equivalents to prevent XSS.
func escapeHTML(s string) string {
	return escape(s, false)
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
// In addition to the standard entities, whitespace characters that
// could break attribute parsing are escaped.
func escapeAttr(s string) string {
	return escape(s, true)
}

func escape(s string, attrMode bool) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch {
		case r == '&':
			buf.WriteString("&amp;")
		case r == '<':
			buf.WriteString("&lt;")
		case r == '>':
			buf.WriteString("&gt;")
		case r == '"':
			buf.WriteString("&quot;")
		case r == '\'':
			buf.WriteString("&#39;")
		case attrMode && r == '\n':
			buf.WriteString("&#10;")
		case attrMode && r == '\r':
			buf.WriteString("&#13;")
		case attrMode && r == '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
