package resolve

import (
	"fortio.org/safecast"

	"brewing-items/internal/common"
	"brewing-items/internal/item"
	"brewing-items/internal/tree"
)

// Display resolves the optional display key.
func (r *Resolver) Display(file tree.SourceFile, section *tree.Node, at tree.Path) (item.ContentSpec, bool) {
	n, ok := section.Get(KeyDisplay)
	if !ok {
		return item.ContentSpec{}, false
	}

	p := at.Key(KeyDisplay)
	if !n.IsMapping() {
		r.malformed(file, p, n)
		return item.ContentSpec{}, false
	}

	return r.Content(file, n, p)
}

// Content resolves a {text, color} mapping located at at. text is required
// and any scalar is taken by its text; a bad color is reported and dropped
// while the text is kept.
func (r *Resolver) Content(file tree.SourceFile, n *tree.Node, at tree.Path) (item.ContentSpec, bool) {
	textNode, _ := n.Get(KeyText)

	text, ok := textNode.Text()
	if !ok {
		r.missing(file, at.Key(KeyText))
		return item.ContentSpec{}, false
	}

	c := item.ContentSpec{Text: text}
	if color, ok := r.Color(file, n, at); ok {
		c.Color = &color
	}

	return c, true
}

// Color resolves the optional color key: a list of three channels in 0..255.
func (r *Resolver) Color(file tree.SourceFile, section *tree.Node, at tree.Path) (item.Color, bool) {
	n, ok := section.Get(KeyColor)
	if !ok {
		return item.Color{}, false
	}

	color, ok := parseColor(n)
	if !ok {
		r.malformed(file, at.Key(KeyColor), n)
		return item.Color{}, false
	}

	return color, true
}

func parseColor(n *tree.Node) (item.Color, bool) {
	items := n.Items()
	if len(items) != 3 {
		return item.Color{}, false
	}

	var rgb [3]uint8

	for i, it := range items {
		v, ok := it.AsInt()
		if !ok {
			return item.Color{}, false
		}

		ch, err := safecast.Conv[uint8](v)
		if err != nil {
			return item.Color{}, false
		}

		rgb[i] = ch
	}

	return item.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, true
}

// Lore resolves the optional lore list. A string element becomes plain text,
// a mapping element is resolved as content, anything else is skipped with a
// diagnostic. A list left empty resolves to absent.
func (r *Resolver) Lore(file tree.SourceFile, section *tree.Node, at tree.Path) ([]item.ContentSpec, bool) {
	n, ok := section.Get(KeyLore)
	if !ok {
		return nil, false
	}

	p := at.Key(KeyLore)
	if !n.IsSequence() {
		r.malformed(file, p, n)
		return nil, false
	}

	var lore []item.ContentSpec

	for i, el := range n.Items() {
		ep := p.Index(i)

		if s, ok := el.AsString(); ok {
			lore = append(lore, item.ContentSpec{Text: s})
			continue
		}

		if !el.IsMapping() {
			r.malformed(file, ep, el)
			continue
		}

		if c, ok := r.Content(file, el, ep); ok {
			lore = append(lore, c)
		}
	}

	lore = common.NilIfEmpty(lore)

	return lore, lore != nil
}
