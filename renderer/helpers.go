package renderer

import (
	"bytes"
	"io"
)

// SectionPrinter prints a section header lazily, only when the section
// turns out to have content.
type SectionPrinter struct {
	headerFunc       func(io.Writer)
	hasPrintedHeader bool
}

// Header creates a SectionPrinter with the function that prints the
// section header.
func Header(f func(io.Writer)) *SectionPrinter {
	return &SectionPrinter{headerFunc: f}
}

// PrintHeader prints the section header on the first call only. It
// should be called just before printing each row.
func (p *SectionPrinter) PrintHeader(w io.Writer) {
	if p.hasPrintedHeader {
		return
	}
	p.hasPrintedHeader = true
	if p.headerFunc != nil {
		p.headerFunc(w)
	}
}

// ConditionalBlock lets the caller fully write a block and decide at the
// end whether to keep it. If block returns true the content is copied to
// w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}
