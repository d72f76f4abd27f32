package convert

import (
	"fmt"

	"github.com/kmyport-dev/kmyport/internal/amount"
	"github.com/kmyport-dev/kmyport/internal/journal"
	"github.com/kmyport-dev/kmyport/internal/kmyfile"
)

// writeTransactions emits one block per transaction in source order. A
// transaction without splits produces only its blank separator line. The
// header payee and memo come from the first split; the commodity comes from
// the transaction itself.
func (c *Converter) writeTransactions() error {
	for _, th := range c.doc.FindNodes(SectionTransactions) {
		c.out.Separator()

		splits := c.splits(th)
		if len(splits) == 0 {
			continue
		}

		id := c.doc.Attr(th, "id")
		first := splits[0]
		c.out.TransactionHeader(
			journal.ReformatDate(c.doc.Attr(th, "postdate")),
			id,
			c.norm.Escape(c.payeeName(c.doc.Attr(first, "payee"))),
			c.norm.Escape(c.doc.Attr(first, "memo")),
		)

		commodity := c.doc.Attr(th, "commodity")
		for _, sh := range splits {
			if err := c.writePosting(sh, id, commodity); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Converter) writePosting(sh kmyfile.Handle, txID, commodity string) error {
	// A split account that does not resolve yields an empty path.
	var path string
	if ah, ok := c.accounts[c.doc.Attr(sh, "account")]; ok {
		path = c.AccountPath(ah, DeclarationMode)
	}

	amt, err := amount.EvaluateString(c.doc.Attr(sh, "value"), c.places)
	if err != nil {
		return fmt.Errorf("transaction %s: %w", txID, err)
	}

	c.out.Posting(
		path,
		commodity,
		amt,
		c.norm.Escape(c.payeeName(c.doc.Attr(sh, "payee"))),
		c.norm.Escape(c.doc.Attr(sh, "memo")),
	)
	return nil
}

// splits returns a transaction's SPLIT nodes in source order.
func (c *Converter) splits(th kmyfile.Handle) []kmyfile.Handle {
	var out []kmyfile.Handle
	for _, s := range c.doc.ChildrenByTag(th, "SPLITS") {
		out = append(out, c.doc.ChildrenByTag(s, "SPLIT")...)
	}
	return out
}
