package convert

import "github.com/kmyport-dev/kmyport/internal/kmyfile"

// PathMode selects how account path segments are normalized.
type PathMode int

const (
	// DeclarationMode lowercases segments and canonicalizes top-level
	// names; used in declarations and posting lines.
	DeclarationMode PathMode = iota
	// CommentMode escapes segments but preserves case; used in the
	// human-readable comment next to a declaration.
	CommentMode
)

type pathKey struct {
	h    kmyfile.Handle
	mode PathMode
}

// AccountPath resolves the colon-joined hierarchical path of an account,
// root first. A parentaccount reference that does not resolve in the index
// terminates the chain: the account is treated as a root. An account
// without a name contributes an empty segment. Results are cached per run.
//
// The parent graph in a well-formed document is a forest, but a corrupt
// file can introduce a cycle; the first repeated account in a chain is
// treated as a root so resolution always terminates.
func (c *Converter) AccountPath(h kmyfile.Handle, mode PathMode) string {
	key := pathKey{h: h, mode: mode}
	if p, ok := c.paths[key]; ok {
		return p
	}

	var seg string
	switch mode {
	case DeclarationMode:
		seg = c.norm.Format(c.doc.Attr(h, "name"))
	case CommentMode:
		seg = c.norm.Escape(c.doc.Attr(h, "name"))
	}

	path := seg
	if parentID := c.doc.Attr(h, "parentaccount"); parentID != "" && !c.resolving[key] {
		if ph, ok := c.accounts[parentID]; ok {
			c.resolving[key] = true
			path = c.AccountPath(ph, mode) + ":" + seg
			delete(c.resolving, key)
		}
	}

	c.paths[key] = path
	return path
}
