package jirawiki

import (
	"strings"

	"github.com/npillmayer/markout/doctree"
)

// Escape prepares raw text for embedding into wiki markup. With attribute
// set, the text is destined for an attribute value, otherwise for body
// text. The default is a byte-exact passthrough; only with flag
// EscapeText set are the dialect's metacharacters quoted. Escape never
// fails, whatever the input.
func (r *Renderer) Escape(s string, attribute bool) string {
	if r.flags&EscapeText == 0 {
		return s
	}
	if attribute {
		return escapeAttribute(s)
	}
	return escapeBody(s)
}

// bodyMetachars are the characters which toggle formatting in body text.
const bodyMetachars = `*_-+^~{}[]|!`

// escapeBody quotes every formatting metacharacter with a backslash.
func escapeBody(s string) string {
	if !strings.ContainsAny(s, bodyMetachars) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for _, ch := range s {
		if strings.ContainsRune(bodyMetachars, ch) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

// escapeAttribute quotes double quotes and braces, which would terminate
// an attribute value or open a macro.
func escapeAttribute(s string) string {
	if !strings.ContainsAny(s, `"{}`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for _, ch := range s {
		switch ch {
		case '"', '{', '}':
			sb.WriteByte('\\')
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

// SerializeAttributes emits attributes as ` key="value"` pairs, one per
// entry, in insertion order. Entries with empty values are dropped
// entirely, not emitted as empty pairs. An empty mapping yields "".
func (r *Renderer) SerializeAttributes(attrs *doctree.Attributes) string {
	if attrs.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	attrs.Each(func(key, value string) {
		if value == "" {
			return
		}
		sb.WriteByte(' ')
		sb.WriteString(key)
		sb.WriteString(`="`)
		sb.WriteString(r.Escape(value, true))
		sb.WriteByte('"')
	})
	return sb.String()
}
