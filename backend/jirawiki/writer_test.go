package jirawiki

import (
	"testing"

	"github.com/npillmayer/markout/doctree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type HandlerTestEnviron struct {
	suite.Suite
	writer *Renderer
}

// listen for 'go test' command --> run test methods
func TestHandlerFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markout.writer")
	defer teardown()
	suite.Run(t, new(HandlerTestEnviron))
}

// run once, before test suite methods
func (env *HandlerTestEnviron) SetupSuite() {
	env.writer = NewRenderer(FlagsNone)
}

// --- Inline Handler Tests --------------------------------------------------

func (env *HandlerTestEnviron) TestBreaksAndSpaces() {
	env.Equal(" ", env.writer.Space())
	env.Equal("\n", env.writer.SoftBreak())
	env.Equal("\n\n", env.writer.LineBreak())
}

func (env *HandlerTestEnviron) TestEmphasisAndStrong() {
	env.Equal("_hi_", env.writer.Emphasis("hi"))
	env.Equal("*hi*", env.writer.Strong("hi"))
}

func (env *HandlerTestEnviron) TestScripts() {
	env.Equal("~x~", env.writer.Subscript("x"))
	env.Equal("^x^", env.writer.Superscript("x"))
}

func (env *HandlerTestEnviron) TestSmallCapsPassesThrough() {
	env.Equal("abc", env.writer.SmallCaps("abc"))
}

func (env *HandlerTestEnviron) TestStrikeout() {
	env.Equal("-gone-", env.writer.Strikeout("gone"))
}

func (env *HandlerTestEnviron) TestLink() {
	env.Equal("[click|http://x]", env.writer.Link("click", "http://x", "", nil))
	// title and attributes are accepted, but make no difference
	attrs := doctree.Attrs("id", "a1")
	env.Equal("[click|http://x]", env.writer.Link("click", "http://x", "a title", attrs))
}

func (env *HandlerTestEnviron) TestImage() {
	env.Equal("!logo|img/logo.png!", env.writer.Image("logo", "img/logo.png", "", nil))
}

func (env *HandlerTestEnviron) TestCodeSpan() {
	env.Equal("{{ls -l}}", env.writer.CodeSpan("ls -l", nil))
}

func (env *HandlerTestEnviron) TestMathPassesThrough() {
	env.Equal(`\sum_i i^2`, env.writer.Math(`\sum_i i^2`, doctree.InlineMath))
	env.Equal(`\sum_i i^2`, env.writer.Math(`\sum_i i^2`, doctree.DisplayMath))
}

func (env *HandlerTestEnviron) TestNoteReturnsBody() {
	env.Equal("the body", env.writer.Note("the body"))
}

func (env *HandlerTestEnviron) TestSpanPassesThrough() {
	env.Equal("plain", env.writer.Span("plain", doctree.Attrs("class", "x")))
}

func (env *HandlerTestEnviron) TestRawInline() {
	env.Equal("{{<b>raw</b>}}", env.writer.RawInline("html", "<b>raw</b>"))
	// the declared format makes no difference
	env.Equal("{{raw}}", env.writer.RawInline("tex", "raw"))
}

func (env *HandlerTestEnviron) TestCitation() {
	env.Equal("??Knuth 1984??", env.writer.Citation("Knuth 1984"))
}

// --- Block Handler Tests ---------------------------------------------------

func (env *HandlerTestEnviron) TestPlainAndParagraph() {
	env.Equal("abc", env.writer.Plain("abc"))
	env.Equal("\nabc\n", env.writer.Paragraph("abc"))
}

func (env *HandlerTestEnviron) TestHeader() {
	env.Equal("h1. Title", env.writer.Header(1, "Title"))
	env.Equal("h3. Sub", env.writer.Header(3, "Sub"))
}

func (env *HandlerTestEnviron) TestBlockQuoteTrims() {
	env.Equal("bq. wise words", env.writer.BlockQuote("\nwise words\n"))
}

func (env *HandlerTestEnviron) TestHorizontalRule() {
	env.Equal("----", env.writer.HorizontalRule())
}

func (env *HandlerTestEnviron) TestLineBlock() {
	env.Equal("roses are red\nviolets are blue",
		env.writer.LineBlock([]string{"roses are red", "violets are blue"}))
}

func (env *HandlerTestEnviron) TestCodeBlock() {
	env.Equal("{code}\na\nb\n{code}", env.writer.CodeBlock("a\nb", nil))
}

func (env *HandlerTestEnviron) TestLists() {
	env.Equal("* one\n* two", env.writer.BulletList([]string{"one", "two"}))
	env.Equal("# one\n# two", env.writer.OrderedList([]string{"one", "two"}))
}

func (env *HandlerTestEnviron) TestDefinitionListFlattens() {
	items := []string{"term", "definition"}
	env.Equal(env.writer.BulletList(items), env.writer.DefinitionList(items))
}

func (env *HandlerTestEnviron) TestCaptionedImage() {
	env.Equal("!a diagram|fig.png!",
		env.writer.CaptionedImage("fig.png", "", "a diagram", nil))
}

func (env *HandlerTestEnviron) TestRawBlock() {
	env.Equal("{noformat}\n<table/>\n{noformat}", env.writer.RawBlock("html", "<table/>"))
}

func (env *HandlerTestEnviron) TestDivRendersLikeParagraph() {
	env.Equal("\ngrouped\n", env.writer.Div("grouped", doctree.Attrs("class", "aside")))
}

// --- Table Tests -----------------------------------------------------------

func (env *HandlerTestEnviron) TestTableWithHeaders() {
	out := env.writer.Table("", nil, []string{"X", "Y"},
		[][]string{{"a", "b"}, {"c", "d"}})
	env.Equal("||X||Y||\n|a|b|\n|c|d|", out)
}

func (env *HandlerTestEnviron) TestTableWithoutHeaders() {
	out := env.writer.Table("", nil, []string{"", ""},
		[][]string{{"a", "b"}, {"c", "d"}})
	env.Equal("|a|b|\n|c|d|", out)
}

func (env *HandlerTestEnviron) TestTableBlankHeadersDropped() {
	out := env.writer.Table("", nil, []string{" ", "\t"},
		[][]string{{"a", "b"}})
	env.Equal("|a|b|", out)
}

func (env *HandlerTestEnviron) TestTableIgnoresColSpecs() {
	colspecs := []doctree.ColSpec{
		{Align: doctree.AlignLeft},
		{Align: doctree.AlignRight},
	}
	out := env.writer.Table("ignored caption", colspecs, []string{"X", "Y"},
		[][]string{{"a", "b"}})
	env.Equal("||X||Y||\n|a|b|", out)
}

func (env *HandlerTestEnviron) TestTableRaggedRow() {
	// no validation: a surplus cell stays in the output as given
	out := env.writer.Table("", nil, []string{"X"}, [][]string{{"a", "b"}})
	env.Equal("||X||\n|a|b|", out)
}
