/*
Package jirawiki renders document trees as issue-tracker wiki markup.

The dialect is the lightweight wiki syntax used by JIRA and classic
Confluence: "h1." headers, "{code}" blocks, "||"-delimited table header
rows, underscores for emphasis, stars for strong emphasis.

The renderer is a table of small, pure formatting functions, one per
node variant. Every handler receives the already rendered content of
its children as a string and returns a markup fragment; handlers never
see raw child nodes. Composition is ordered concatenation. Two pieces
of state cut across handlers: sibling blocks are joined with a blank
line, and footnote bodies are collected per document render and
appended as a trailing list container.

Handlers are exported and may be driven one by one by an external tree
walker. Render is the built-in driver for doctree documents; it owns
the footnote registry for the duration of one call, so a single
Renderer may serve repeated or concurrent renders.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package jirawiki

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markout.writer'.
func tracer() tracing.Trace {
	return tracing.Select("markout.writer")
}
