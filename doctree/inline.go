package doctree

// Inline is implemented by all inline-level node variants. Inlines are
// fragments of text flow, contained in blocks.
type Inline interface {
	inlineNode()
}

// Text is a run of literal text.
type Text struct {
	Text string
}

// Space is a word space.
type Space struct{}

// SoftBreak is a soft line break between words, to be treated like a
// space or a newline.
type SoftBreak struct{}

// LineBreak is a hard line break.
type LineBreak struct{}

// Emph is emphasized content, typically set in italics.
type Emph struct {
	Inlines []Inline
}

// Strong is strongly emphasized content, typically set in boldface.
type Strong struct {
	Inlines []Inline
}

// Subscript is content to be set lowered.
type Subscript struct {
	Inlines []Inline
}

// Superscript is content to be set raised.
type Superscript struct {
	Inlines []Inline
}

// SmallCaps is content to be set in small capitals.
type SmallCaps struct {
	Inlines []Inline
}

// Strikeout is content struck through.
type Strikeout struct {
	Inlines []Inline
}

// Code is an inline code span.
type Code struct {
	Attr *Attributes
	Text string
}

// MathMode distinguishes inline math from display math.
type MathMode int

const (
	InlineMath MathMode = iota
	DisplayMath
)

// Math is a TeX math fragment.
type Math struct {
	Mode MathMode
	Text string
}

// Target is a link or image destination: a URL plus an optional title.
type Target struct {
	URL   string
	Title string
}

// Link is a hyperlink. The inlines are the display label.
type Link struct {
	Attr    *Attributes
	Inlines []Inline
	Target  Target
}

// Image is an image reference. The inlines are the alternative text.
type Image struct {
	Attr    *Attributes
	Inlines []Inline
	Target  Target
}

// Note is a footnote or endnote. Its content consists of blocks.
type Note struct {
	Blocks []Block
}

// Span is a generic inline container with attributes.
type Span struct {
	Attr    *Attributes
	Inlines []Inline
}

// RawInline is verbatim inline text tagged with a format name.
type RawInline struct {
	Format string
	Text   string
}

// Cite is a citation.
type Cite struct {
	Inlines []Inline
}

func (Text) inlineNode()        {}
func (Space) inlineNode()       {}
func (SoftBreak) inlineNode()   {}
func (LineBreak) inlineNode()   {}
func (Emph) inlineNode()        {}
func (Strong) inlineNode()      {}
func (Subscript) inlineNode()   {}
func (Superscript) inlineNode() {}
func (SmallCaps) inlineNode()   {}
func (Strikeout) inlineNode()   {}
func (Code) inlineNode()        {}
func (Math) inlineNode()        {}
func (Link) inlineNode()        {}
func (Image) inlineNode()       {}
func (Note) inlineNode()        {}
func (Span) inlineNode()        {}
func (RawInline) inlineNode()   {}
func (Cite) inlineNode()        {}
