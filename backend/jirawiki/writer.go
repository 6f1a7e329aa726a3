package jirawiki

import (
	"github.com/npillmayer/markout/doctree"
	"github.com/npillmayer/schuko"
)

// Flags control optional behavior of a Renderer.
type Flags int

const (
	// EscapeText makes Escape quote the dialect's metacharacters instead
	// of passing text through unchanged.
	EscapeText Flags = 1 << iota
	// HeaderAnchors appends an anchor macro to every rendered header,
	// named after the header's id attribute or a slug of its text.
	HeaderAnchors
)

// FlagsNone selects the plain dialect behavior: no escaping, no anchors.
const FlagsNone Flags = 0

// Renderer emits wiki markup for document nodes. All handler methods are
// pure string functions; the Renderer itself holds no per-render state,
// so one instance may be reused for any number of documents.
type Renderer struct {
	flags   Flags
	filters map[string]string // code block class -> external command
}

// NewRenderer creates a renderer with the given flag set.
func NewRenderer(flags Flags) *Renderer {
	return &Renderer{flags: flags}
}

// SetCodeFilter registers an external command for code blocks carrying
// class. The block's text is piped through the command and the captured
// output is embedded as an image target instead of a literal code block
// (see Render). Registering an empty command removes the entry.
func (r *Renderer) SetCodeFilter(class, command string) {
	if command == "" {
		delete(r.filters, class)
		return
	}
	if r.filters == nil {
		r.filters = make(map[string]string)
	}
	r.filters[class] = command
}

// ConfigureFilters reads filter commands for the given code block classes
// from configuration. The command for class c is expected under the key
// "filter.c". Classes without a configured command are skipped.
func (r *Renderer) ConfigureFilters(conf schuko.Configuration, classes ...string) {
	for _, class := range classes {
		command := conf.GetString("filter." + class)
		if command == "" {
			tracer().Infof("no filter command configured for class %q", class)
			continue
		}
		r.SetCodeFilter(class, command)
	}
}

// filterFor finds an external filter command for a code block, keyed by
// the block's classes in declaration order.
func (r *Renderer) filterFor(attrs *doctree.Attributes) (class, command string, ok bool) {
	if len(r.filters) == 0 {
		return "", "", false
	}
	for _, class := range attrs.Classes() {
		if command, ok := r.filters[class]; ok {
			return class, command, true
		}
	}
	return "", "", false
}
