// Package text implements the normalization rules that make free-form
// source text safe inside the journal's comment and label syntax.
package text

import (
	"strings"

	"github.com/kmyport-dev/kmyport/internal/model"
)

// DefaultLineBreak is the token substituted for literal newlines in memos
// and other free-text fields.
const DefaultLineBreak = " => "

// reserved are characters that carry syntax in the journal format; each is
// replaced by a space during escaping.
const reserved = ":;|[]"

// Normalizer applies the two normalization profiles, Escape and Format.
// The zero value is not usable; construct with New.
type Normalizer struct {
	lineBreak string
}

// New returns a Normalizer that folds newlines into lineBreak. An empty
// lineBreak selects DefaultLineBreak.
func New(lineBreak string) *Normalizer {
	if lineBreak == "" {
		lineBreak = DefaultLineBreak
	}
	return &Normalizer{lineBreak: lineBreak}
}

// Escape makes s safe for use inside comments and label fields: newlines
// become the line-break token, reserved characters become spaces, and
// whitespace is trimmed and collapsed to single spaces. Blank input is
// returned unchanged.
func (n *Normalizer) Escape(s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\n", n.lineBreak)

	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(reserved, r) {
			return ' '
		}
		return r
	}, s)

	return strings.Join(strings.Fields(s), " ")
}

// Format normalizes an account or label token: Escape, lowercase, then map
// the five canonical top-level account names to their journal tokens
// (income becomes revenue). Blank input is returned unchanged.
func (n *Normalizer) Format(s string) string {
	e := n.Escape(s)
	if strings.TrimSpace(e) == "" {
		return e
	}
	e = strings.ToLower(e)
	if tok, ok := model.CanonicalToken(e); ok {
		return tok
	}
	return e
}
