/*
Package doctree provides a generic model for parsed documents.

A document is a tree of nodes. Nodes come in two structural categories:
blocks, which are standalone layout units like paragraphs, headers or
tables, and inlines, which are fragments of text flow like emphasized
spans, links or footnote references. The set of node variants is closed
and mirrors the element inventory of common document converters, so
trees produced by external parsers map onto it without loss.

Package doctree is pure data. It performs no parsing and no validation;
a malformed tree (say, a table row with a surplus cell) is represented
as given. Rendering backends walk the tree and decide what to make of
it.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package doctree

// Meta holds document metadata, e.g. title or authors. Backends are free
// to ignore it.
type Meta map[string]string

// Document is a complete parsed document: metadata plus content blocks.
type Document struct {
	Meta   Meta
	Blocks []Block
}
