package app

import (
	"github.com/landline-sh/landline/page"
	"github.com/landline-sh/landline/render"
	"github.com/landline-sh/landline/tui"
)

// Layout metrics, all in character cells. The page is laid out in
// page coordinates where row 0 is the first content row, the fixed
// navbar lives above that in screen space.
const (
	navHeight  = 3
	pagePad    = 2
	sectionGap = 2
	gridGapX   = 2

	wideWidth = 100
	midWidth  = 60

	minCardW = 12

	statCardH    = 4
	featureCardH = 6
	eventCardH   = 4
	contactCardH = 6

	formMaxW     = 56
	terminalMaxW = 64
)

// gridCols maps the terminal width onto the three-step responsive
// grid: three columns wide, two mid, single column narrow.
func gridCols(w int) int {
	switch tui.BreakpointH(w, wideWidth, midWidth) {
	case 0:
		return 3
	case 1:
		return 2
	default:
		return 1
	}
}

// layoutPage assigns a page-coordinate Rect to every node that draws
// or scrolls, and records the total page height. Runs every frame
// before drawing, so a resize or menu toggle reflows immediately.
func (c *Controller) layoutPage(w int) {
	if c.root == nil || w <= 0 {
		c.pageH = 0
		return
	}

	cols := gridCols(w)
	narrow := cols == 1
	if t := c.root.ByID(render.IDMenuToggle); t != nil {
		t.Hidden = !narrow
	}
	if m := c.root.ByID(render.IDNavMenu); m != nil {
		m.Hidden = narrow && !c.menuOpen
	}

	x := pagePad
	cw := w - pagePad*2
	y := 0

	if main := c.root.ByID(render.IDMain); main != nil {
		for _, s := range main.Children {
			if s.Kind != page.KindSection {
				continue
			}
			h := c.layoutSection(s, x, y, cw, cols)
			s.Rect = page.Rect{X: x, Y: y, W: cw, H: h}
			y += h + sectionGap
		}
		main.Rect = page.Rect{X: 0, Y: 0, W: w, H: y}
	}

	if f := c.root.ByID(render.IDFooter); f != nil {
		h := c.layoutFooter(f, x, y, cw, cols)
		f.Rect = page.Rect{X: x, Y: y, W: cw, H: h}
		y += h
	}

	c.pageH = y + 1
}

func (c *Controller) layoutSection(s *page.Node, x, y, w, cols int) int {
	if s.ID == render.IDHero {
		return c.layoutHero(s, x, y, w)
	}

	rowY := y
	if len(s.Children) > 0 && s.Children[0].Kind == page.KindHeading {
		s.Children[0].Rect = page.Rect{X: x, Y: rowY, W: w, H: 1}
		rowY += 2
	}

	switch s.ID {
	case render.IDStats:
		grid := s.ByID(render.IDStatsGrid)
		rowY += layoutGrid(grid, x, rowY, w, cols, statCardH)
		// Counter observers watch the value nodes, give them the
		// card footprint so intersection works.
		if grid != nil {
			for _, card := range grid.Children {
				if v := render.Slot(card, "value"); v != nil {
					v.Rect = card.Rect
				}
			}
		}
	case render.IDFeatures:
		rowY += layoutGrid(s.ByID(render.IDFeaturesGrid), x, rowY, w, cols, featureCardH)
	case render.IDEvents:
		rowY += layoutList(s.ByID(render.IDEventsContainer), x, rowY, w)
	case render.IDContact:
		rowY += layoutGrid(s.ByID(render.IDContactInfo), x, rowY, w, cols, contactCardH)
		rowY++
		rowY += layoutForm(s.ByID(render.IDContactForm), x, rowY, w)
	}
	return rowY - y
}

// gridFit clamps a column count to what minCardW-wide cards can
// occupy at this width, never below one column.
func gridFit(w, cols int) int {
	if cols < 1 {
		cols = 1
	}
	fit := tui.Columns(w, minCardW, gridGapX)
	if fit < 1 {
		return 1
	}
	if fit < cols {
		return fit
	}
	return cols
}

// layoutGrid flows cards left to right with a fixed height per card,
// wrapping every cols cards. Returns the grid height.
func layoutGrid(grid *page.Node, x, y, w, cols, cardH int) int {
	if grid == nil || len(grid.Children) == 0 {
		return 0
	}
	cols = gridFit(w, cols)
	rows := (len(grid.Children) + cols - 1) / cols
	h := rows*(cardH+1) - 1

	// Cells carved in page coordinates, no backing buffer needed.
	band := tui.NewRegion(nil, 0, x, y, w, h)
	cells := tui.GridLayout(band, cols, rows, gridGapX, 1)
	for i, card := range grid.Children {
		cell := cells[i]
		card.Rect = page.Rect{X: cell.X, Y: cell.Y, W: cell.W, H: cell.H}
	}
	grid.Rect = page.Rect{X: x, Y: y, W: w, H: h}
	return h
}

// layoutList stacks event cards full width.
func layoutList(list *page.Node, x, y, w int) int {
	if list == nil || len(list.Children) == 0 {
		return 0
	}
	rowY := y
	for _, card := range list.Children {
		card.Rect = page.Rect{X: x, Y: rowY, W: w, H: eventCardH}
		rowY += eventCardH + 1
	}
	h := rowY - y - 1
	list.Rect = page.Rect{X: x, Y: y, W: w, H: h}
	return h
}

// layoutForm stacks label-over-input rows and the submit button.
func layoutForm(form *page.Node, x, y, w int) int {
	if form == nil {
		return 0
	}
	fw := w
	if fw > formMaxW {
		fw = formMaxW
	}
	rowY := y
	for _, n := range form.Children {
		switch n.Kind {
		case page.KindField:
			n.Rect = page.Rect{X: x, Y: rowY, W: fw, H: 2}
			rowY += 3
		case page.KindButton:
			bw := tui.StringWidth(n.Text) + 6
			if bw > fw {
				bw = fw
			}
			n.Rect = page.Rect{X: x, Y: rowY, W: bw, H: 3}
			rowY += 3
		}
	}
	form.Rect = page.Rect{X: x, Y: y, W: fw, H: rowY - y}
	return rowY - y
}

// layoutHero places the title block, the CTA pair, the typing
// terminal panel and the parallax floats.
func (c *Controller) layoutHero(s *page.Node, x, y, w int) int {
	lines := 0
	if c.doc != nil {
		lines = len(c.doc.Hero.Terminal)
	}
	termH := lines + 3
	if termH < 5 {
		termH = 5
	}

	if title := s.ByID(render.IDHeroTitle); title != nil {
		title.Rect = page.Rect{X: x, Y: y + 1, W: w, H: 2}
	}
	if tagline := s.ByID(render.IDHeroTagline); tagline != nil {
		tagline.Rect = page.Rect{X: x, Y: y + 4, W: w, H: 1}
	}

	if actions := s.ByID(render.IDHeroActions); actions != nil {
		actions.Rect = page.Rect{X: x, Y: y + 6, W: w, H: 3}
		total := 0
		for _, b := range actions.Children {
			total += tui.StringWidth(b.Text) + 6
		}
		if n := len(actions.Children); n > 1 {
			total += (n - 1) * gridGapX
		}
		bx := x + (w-total)/2
		if bx < x {
			bx = x
		}
		for _, b := range actions.Children {
			bw := tui.StringWidth(b.Text) + 6
			b.Rect = page.Rect{X: bx, Y: y + 6, W: bw, H: 3}
			bx += bw + gridGapX
		}
	}

	if terminal := s.ByID(render.IDTerminal); terminal != nil {
		tw := w - 4
		if tw > terminalMaxW {
			tw = terminalMaxW
		}
		if tw < 20 {
			tw = w
		}
		terminal.Rect = page.Rect{X: x + (w-tw)/2, Y: y + 10, W: tw, H: termH}
	}

	heroH := 11 + termH

	if grid := s.ByID(render.IDHeroGrid); grid != nil {
		grid.Rect = page.Rect{X: x, Y: y, W: w, H: heroH}
	}
	if floats := s.ByID(render.IDFloating); floats != nil {
		floats.Rect = page.Rect{X: x, Y: y, W: w, H: heroH}
		spots := [...]struct {
			fx float64
			dy int
		}{
			{0.10, 2},
			{0.85, 3},
			{0.07, 8},
			{0.90, 7},
		}
		for i, f := range floats.Children {
			spot := spots[i%len(spots)]
			f.Rect = page.Rect{X: x + int(spot.fx*float64(w)), Y: y + spot.dy, W: 1, H: 1}
		}
	}

	return heroH
}

// layoutFooter arranges the link sections on the same grid as the
// page and pins the byline underneath.
func (c *Controller) layoutFooter(f *page.Node, x, y, w, cols int) int {
	rowY := y
	links := f.ByID(render.IDFooterLinks)
	if links != nil && len(links.Children) > 0 {
		cols = gridFit(w, cols)
		maxLinks := 0
		for _, sec := range links.Children {
			if l := render.Slot(sec, "links"); l != nil && len(l.Children) > maxLinks {
				maxLinks = len(l.Children)
			}
		}
		sectH := 1 + maxLinks
		rows := (len(links.Children) + cols - 1) / cols
		gridH := rows*(sectH+1) - 1

		band := tui.NewRegion(nil, 0, x, rowY, w, gridH)
		cells := tui.GridLayout(band, cols, rows, gridGapX, 1)
		for i, sec := range links.Children {
			cell := cells[i]
			sec.Rect = page.Rect{X: cell.X, Y: cell.Y, W: cell.W, H: cell.H}
			if t := render.Slot(sec, "title"); t != nil {
				t.Rect = page.Rect{X: cell.X, Y: cell.Y, W: cell.W, H: 1}
			}
			if l := render.Slot(sec, "links"); l != nil {
				l.Rect = page.Rect{X: cell.X, Y: cell.Y + 1, W: cell.W, H: cell.H - 1}
				for j, link := range l.Children {
					lw := tui.StringWidth(link.Text)
					if lw > cell.W {
						lw = cell.W
					}
					link.Rect = page.Rect{X: cell.X, Y: cell.Y + 1 + j, W: lw, H: 1}
				}
			}
		}
		links.Rect = page.Rect{X: x, Y: rowY, W: w, H: gridH}
		rowY += gridH + 1
	}

	if b := f.ByID(render.IDFooterBottom); b != nil {
		b.Rect = page.Rect{X: x, Y: rowY, W: w, H: 1}
		rowY += 2
	}

	return rowY - y
}
