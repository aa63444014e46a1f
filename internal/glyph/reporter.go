package glyph

import (
	"fmt"
	"io"
	"sort"
)

// Reporter defines the interface for structure that collects diagnostics
// from the lexer and the parser. A reporter is defined to separated errors
// reporting code from errors displaying code.
type Reporter interface {
	Report(diag *Diagnostic)
	HadError() bool
}

// Diagnostics keeps every reported diagnostic ordered by source position.
// Diagnostics at the same offset keep the order they were reported in.
type Diagnostics struct {
	items []*Diagnostic
}

// NewDiagnostics creates an empty collector.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

func (diags *Diagnostics) Report(diag *Diagnostic) {
	// The lexer runs up to two tokens ahead of the parser, so a lexical
	// error can arrive before a syntax error that precedes it in the source.
	i := sort.Search(len(diags.items), func(i int) bool {
		return diags.items[i].Span.Offset > diag.Span.Offset
	})
	diags.items = append(diags.items, nil)
	copy(diags.items[i+1:], diags.items[i:])
	diags.items[i] = diag
}

func (diags *Diagnostics) HadError() bool {
	return len(diags.items) != 0
}

// List returns the collected diagnostics in source order.
func (diags *Diagnostics) List() []*Diagnostic {
	return diags.items
}

// Reset forgets everything reported so far.
func (diags *Diagnostics) Reset() {
	diags.items = nil
}

// SimpleReporter writes each diagnostic to the inner writer as soon as it is
// reported.
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer, false}
}

func (reporter *SimpleReporter) Report(diag *Diagnostic) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, diag)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}
