package doctree

import (
	"github.com/npillmayer/markout/core/percent"
)

// Block is implemented by all block-level node variants. Blocks are
// standalone layout units like paragraphs, lists or tables.
type Block interface {
	blockNode()
}

// Plain is a sequence of inlines without paragraph decoration.
type Plain struct {
	Inlines []Inline
}

// Para is a paragraph.
type Para struct {
	Inlines []Inline
}

// Header is a section heading. Level 1 is the topmost level.
type Header struct {
	Level   int
	Attr    *Attributes
	Inlines []Inline
}

// BlockQuote is a quoted sequence of blocks.
type BlockQuote struct {
	Blocks []Block
}

// HorizontalRule is a thematic break between blocks.
type HorizontalRule struct{}

// LineBlock is a sequence of lines which keep their breaks, as in verse
// or addresses.
type LineBlock struct {
	Lines [][]Inline
}

// CodeBlock is a verbatim block of code.
type CodeBlock struct {
	Attr *Attributes
	Text string
}

// BulletList is an unordered list. Every item is a sequence of blocks.
type BulletList struct {
	Items [][]Block
}

// OrderedList is a numbered list. The start number is carried for
// backends which can express it.
type OrderedList struct {
	Start int
	Items [][]Block
}

// Definition pairs a term with its definitions.
type Definition struct {
	Term        []Inline
	Definitions [][]Block
}

// DefinitionList is a list of term/definition pairs.
type DefinitionList struct {
	Items []Definition
}

// Figure is a captioned image standing on its own.
type Figure struct {
	Attr    *Attributes
	Caption []Inline
	Target  Target
}

// Alignment is a table column alignment hint.
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "default"
}

// ColSpec describes one table column: an alignment and a relative width
// hint. A zero width means no hint was given.
type ColSpec struct {
	Align Alignment
	Width percent.Percent
}

// TableCell is one table cell, holding block content.
type TableCell []Block

// Table is a table with one optional header row and any number of body
// rows. Rows are not validated against the column specs; a row with a
// deviating cell count is represented as given.
type Table struct {
	Caption []Inline
	Columns []ColSpec
	Header  []TableCell
	Rows    [][]TableCell
}

// RawBlock is a verbatim block tagged with a format name.
type RawBlock struct {
	Format string
	Text   string
}

// Div is a generic block container with attributes.
type Div struct {
	Attr   *Attributes
	Blocks []Block
}

func (Plain) blockNode()          {}
func (Para) blockNode()           {}
func (Header) blockNode()         {}
func (BlockQuote) blockNode()     {}
func (HorizontalRule) blockNode() {}
func (LineBlock) blockNode()      {}
func (CodeBlock) blockNode()      {}
func (BulletList) blockNode()     {}
func (OrderedList) blockNode()    {}
func (DefinitionList) blockNode() {}
func (Figure) blockNode()         {}
func (Table) blockNode()          {}
func (RawBlock) blockNode()       {}
func (Div) blockNode()            {}
