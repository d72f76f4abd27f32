// Package journal formats and appends the lines of the plain-text journal:
// account declarations, transaction headers, postings and comment blocks.
package journal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PayeeMemoSeparator joins the payee and memo fields on header and posting
// lines.
const PayeeMemoSeparator = " | "

// Writer appends journal lines to an underlying stream in strict call
// order. Errors are sticky: after the first write failure every later call
// is a no-op and Flush reports the failure.
type Writer struct {
	bw  *bufio.Writer
	err error
}

// NewWriter wraps w in a journal Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Flush writes any buffered output and returns the first error seen.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.bw.Flush()
}

func (w *Writer) writef(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.bw, format, args...)
}

// Declaration writes a formal account declaration with its display-cased
// path as a trailing comment.
func (w *Writer) Declaration(path, displayPath string) {
	w.writef("account %s  ; %s\n", path, displayPath)
}

// DeclarationNote writes one indented attribute comment under an account
// declaration.
func (w *Writer) DeclarationNote(name, value string) {
	w.writef("  ; %s: %s\n", name, value)
}

// BlockTitle starts a metadata comment block.
func (w *Writer) BlockTitle(title string) {
	w.writef("; %s\n", title)
}

// BlockField writes one name/value pair inside a metadata comment block.
func (w *Writer) BlockField(name, value string) {
	w.writef(";   %s: %s\n", name, value)
}

// Separator writes the blank line between blocks and transactions.
func (w *Writer) Separator() {
	w.writef("\n")
}

// TransactionHeader writes the first line of a transaction block.
func (w *Writer) TransactionHeader(date, id, payee, memo string) {
	w.writef("%s (%s) %s%s%s\n", date, id, payee, PayeeMemoSeparator, memo)
}

// Posting writes one posting line: account path, commodity, amount, then
// the split's payee and memo as a trailing comment.
func (w *Writer) Posting(accountPath, commodity, amount, payee, memo string) {
	w.writef("  %s  %s %s ; %s%s%s\n", accountPath, commodity, amount, payee, PayeeMemoSeparator, memo)
}

// ReformatDate rewrites a source "yyyy-mm-dd" date to the journal's
// "yyyy/mm/dd" form. The substitution is purely textual; malformed dates
// pass through best-effort.
func ReformatDate(s string) string {
	return strings.ReplaceAll(s, "-", "/")
}
