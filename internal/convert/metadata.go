package convert

import (
	"strings"

	"github.com/kmyport-dev/kmyport/internal/kmyfile"
)

// The metadata emitters copy attribute name/value pairs into comment
// blocks. Missing sections are skipped silently; nothing here can fail.

func (c *Converter) writeFileInfo() {
	h, ok := c.doc.FindNode(SectionFileInfo)
	if !ok {
		return
	}
	c.out.BlockTitle("FILEINFO")
	for _, ch := range c.doc.Children(h) {
		tag := strings.ToLower(c.doc.Tag(ch))
		attrs := c.doc.Attrs(ch)
		if len(attrs) == 0 {
			c.out.BlockField(tag, "")
			continue
		}
		for _, a := range attrs {
			c.out.BlockField(tag+" "+a.Name, c.norm.Escape(a.Value))
		}
	}
	c.out.Separator()
}

func (c *Converter) writeUser() {
	h, ok := c.doc.FindNode(SectionUser)
	if !ok {
		return
	}
	c.out.BlockTitle("USER")
	c.writeEntityFields(h)
	c.out.Separator()
}

func (c *Converter) writeInstitutions() {
	for _, h := range c.doc.FindNodes(SectionInstitutions) {
		c.out.BlockTitle("INSTITUTION " + c.doc.Attr(h, "id"))
		c.writeEntityFields(h)
		c.out.Separator()
	}
}

func (c *Converter) writePayees() {
	for _, h := range c.doc.FindNodes(SectionPayees) {
		c.out.BlockTitle("PAYEE " + c.doc.Attr(h, "id"))
		c.writeEntityFields(h)
		c.out.Separator()
	}
}

func (c *Converter) writeCostCenters() {
	for _, h := range c.doc.FindNodes(SectionCostCenters) {
		c.out.BlockTitle("COSTCENTER " + c.doc.Attr(h, "id"))
		c.writeEntityFields(h)
		c.out.Separator()
	}
}

func (c *Converter) writeTags() {
	for _, h := range c.doc.FindNodes(SectionTags) {
		c.out.BlockTitle("TAG " + c.doc.Attr(h, "id"))
		c.writeEntityFields(h)
		c.out.Separator()
	}
}

// writeEntityFields emits an entity's attributes, then the attributes of
// its immediate children (address blocks and the like) prefixed with the
// lowercased child tag.
func (c *Converter) writeEntityFields(h kmyfile.Handle) {
	for _, a := range c.doc.Attrs(h) {
		c.out.BlockField(a.Name, c.norm.Escape(a.Value))
	}
	for _, ch := range c.doc.Children(h) {
		tag := strings.ToLower(c.doc.Tag(ch))
		for _, a := range c.doc.Attrs(ch) {
			c.out.BlockField(tag+" "+a.Name, c.norm.Escape(a.Value))
		}
	}
}
