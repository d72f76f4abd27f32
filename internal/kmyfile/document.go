// Package kmyfile parses the source XML document into a read-only arena of
// nodes addressed by integer handles. The tree is never mutated after
// parsing; all lookups are index-based.
package kmyfile

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Handle addresses one node in a Document's arena.
type Handle int

// NoHandle is the invalid handle.
const NoHandle Handle = -1

// Attr is one attribute of a node, in source order.
type Attr struct {
	Name  string
	Value string
}

type node struct {
	tag      string
	attrs    []Attr
	attrsMap map[string]string
	children []Handle
}

// Document holds the parsed tree. It is read-only after Parse.
type Document struct {
	nodes []node
	root  Handle
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse builds a Document from an XML serialization. Control characters are
// stripped from the raw bytes before the decoder runs, since exported files
// occasionally carry them inside attribute values.
func Parse(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	dec := xml.NewDecoder(bytes.NewReader(stripControl(raw)))
	doc := &Document{root: NoHandle}

	var stack []Handle
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			h := Handle(len(doc.nodes))
			n := node{tag: t.Name.Local}
			if len(t.Attr) > 0 {
				n.attrs = make([]Attr, 0, len(t.Attr))
				n.attrsMap = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					n.attrs = append(n.attrs, Attr{Name: a.Name.Local, Value: a.Value})
					n.attrsMap[a.Name.Local] = a.Value
				}
			}
			doc.nodes = append(doc.nodes, n)

			if len(stack) == 0 {
				if doc.root != NoHandle {
					return nil, fmt.Errorf("multiple root elements: %s and %s", doc.Tag(doc.root), t.Name.Local)
				}
				doc.root = h
			} else {
				parent := stack[len(stack)-1]
				doc.nodes[parent].children = append(doc.nodes[parent].children, h)
			}
			stack = append(stack, h)

		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if doc.root == NoHandle {
		return nil, errors.New("document has no root element")
	}
	return doc, nil
}

// stripControl drops control bytes other than tab, LF and CR.
func stripControl(b []byte) []byte {
	clean := make([]byte, 0, len(b))
	for _, c := range b {
		if c < 0x20 && c != '\t' && c != '\n' && c != '\r' {
			continue
		}
		clean = append(clean, c)
	}
	return clean
}

// Root returns the document's root element handle.
func (d *Document) Root() Handle { return d.root }

// Tag returns the element name of h.
func (d *Document) Tag(h Handle) string { return d.nodes[h].tag }

// Attr returns the named attribute of h, or "" if absent.
func (d *Document) Attr(h Handle, name string) string {
	return d.nodes[h].attrsMap[name]
}

// Attrs returns the attributes of h in source order. Callers must not
// mutate the returned slice.
func (d *Document) Attrs(h Handle) []Attr { return d.nodes[h].attrs }

// Children returns the ordered child handles of h. Callers must not mutate
// the returned slice.
func (d *Document) Children(h Handle) []Handle { return d.nodes[h].children }

// ChildrenByTag returns the ordered children of h whose element name is tag.
func (d *Document) ChildrenByTag(h Handle, tag string) []Handle {
	var out []Handle
	for _, c := range d.nodes[h].children {
		if d.nodes[c].tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// FindNode returns the first node matching a slash-separated tag path
// relative to the root element, e.g. "ACCOUNTS/ACCOUNT".
func (d *Document) FindNode(path string) (Handle, bool) {
	hs := d.FindNodes(path)
	if len(hs) == 0 {
		return NoHandle, false
	}
	return hs[0], true
}

// FindNodes returns every node matching a slash-separated tag path relative
// to the root element, in document order.
func (d *Document) FindNodes(path string) []Handle {
	frontier := []Handle{d.root}
	for _, seg := range strings.Split(path, "/") {
		var next []Handle
		for _, h := range frontier {
			next = append(next, d.ChildrenByTag(h, seg)...)
		}
		frontier = next
		if len(frontier) == 0 {
			return nil
		}
	}
	return frontier
}

// HasDescendant reports whether at least one node matches path.
func (d *Document) HasDescendant(path string) bool {
	return len(d.FindNodes(path)) > 0
}
