package jirawiki

// Footnotes collects rendered footnote bodies during one document
// render. The zero value is an empty registry, ready to use.
//
// A registry lives exactly as long as one document render: Render
// creates one, records every note body in document order and reads it
// back once during document assembly. Sharing a registry between
// renders would leak notes from one document into the next.
type Footnotes struct {
	bodies []string
}

// Record appends a rendered footnote body.
func (n *Footnotes) Record(body string) {
	n.bodies = append(n.bodies, body)
	tracer().Debugf("recorded footnote #%d", len(n.bodies))
}

// Flush returns all recorded bodies in recording order. It is meant to
// be called exactly once, after the document body has been rendered
// completely.
func (n *Footnotes) Flush() []string {
	return n.bodies
}

// Count returns the number of recorded bodies.
func (n *Footnotes) Count() int {
	return len(n.bodies)
}
