// Package convert turns a parsed source document into a plain-text ledger
// journal: metadata comment blocks, account declarations, then one
// transaction block per source transaction.
package convert

import (
	"io"

	"github.com/kmyport-dev/kmyport/internal/journal"
	"github.com/kmyport-dev/kmyport/internal/kmyfile"
	"github.com/kmyport-dev/kmyport/internal/text"
)

// Options tunes the textual output.
type Options struct {
	// LineBreak replaces literal newlines in free text. Empty selects
	// text.DefaultLineBreak.
	LineBreak string
	// DecimalPlaces is the fixed precision of emitted amounts. Zero
	// selects 2.
	DecimalPlaces int32
}

// Stats counts the indexed entities of a document.
type Stats struct {
	Accounts     int
	Payees       int
	Institutions int
	Transactions int
	Reports      int
}

// Converter performs one single-pass conversion of one document. It holds
// only node handles and derived caches; the document itself is never
// mutated.
type Converter struct {
	doc    *kmyfile.Document
	out    *journal.Writer
	norm   *text.Normalizer
	places int32

	accounts     map[string]kmyfile.Handle
	payees       map[string]kmyfile.Handle
	institutions map[string]kmyfile.Handle
	transactions map[string]kmyfile.Handle
	reports      map[string]kmyfile.Handle

	paths     map[pathKey]string
	resolving map[pathKey]bool
}

// New builds a Converter for doc writing to w.
func New(doc *kmyfile.Document, w io.Writer, opts Options) *Converter {
	places := opts.DecimalPlaces
	if places == 0 {
		places = 2
	}
	return &Converter{
		doc:          doc,
		out:          journal.NewWriter(w),
		norm:         text.New(opts.LineBreak),
		places:       places,
		accounts:     BuildIndex(doc, SectionAccounts),
		payees:       BuildIndex(doc, SectionPayees),
		institutions: BuildIndex(doc, SectionInstitutions),
		transactions: BuildIndex(doc, SectionTransactions),
		reports:      BuildIndex(doc, SectionReports),
		paths:        make(map[pathKey]string),
		resolving:    make(map[pathKey]bool),
	}
}

// Stats returns entity counts for the document.
func (c *Converter) Stats() Stats {
	return Stats{
		Accounts:     len(c.accounts),
		Payees:       len(c.payees),
		Institutions: len(c.institutions),
		Transactions: len(c.transactions),
		Reports:      len(c.reports),
	}
}

// Run converts the whole document in one sequential pass. On a malformed
// amount expression the conversion stops; output written so far is flushed
// and kept.
func (c *Converter) Run() error {
	c.writeFileInfo()
	c.writeUser()
	c.writeInstitutions()
	c.writePayees()
	c.writeCostCenters()
	c.writeTags()
	c.writeAccounts()

	if err := c.writeTransactions(); err != nil {
		_ = c.out.Flush()
		return err
	}
	return c.out.Flush()
}

// writeAccounts emits one declaration per account in source order: the
// normalized path, its display-cased twin as a trailing comment, then the
// account's remaining attributes as indented comments.
func (c *Converter) writeAccounts() {
	for _, h := range c.doc.FindNodes(SectionAccounts) {
		c.out.Declaration(c.AccountPath(h, DeclarationMode), c.AccountPath(h, CommentMode))
		for _, a := range c.doc.Attrs(h) {
			if a.Name == "name" {
				continue
			}
			c.out.DeclarationNote(a.Name, c.norm.Escape(a.Value))
		}
		c.out.Separator()
	}
}

// payeeName resolves a payee id to its name. Dangling or empty references
// yield "".
func (c *Converter) payeeName(id string) string {
	if id == "" {
		return ""
	}
	h, ok := c.payees[id]
	if !ok {
		return ""
	}
	return c.doc.Attr(h, "name")
}
