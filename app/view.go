package app

import (
	"math"
	"strings"
	"time"

	"github.com/landline-sh/landline/page"
	"github.com/landline-sh/landline/render"
	"github.com/landline-sh/landline/term"
	"github.com/landline-sh/landline/tui"
)

const (
	minWidth  = 40
	minHeight = 12

	progressW = 24
	navGap    = 3
)

// render paints one frame into the reused cell buffer and flushes it.
// Draw order matters: page, then navbar over the top rows, then the
// loading crossfade, then overlays, cursor last.
func (c *Controller) render() {
	w, h := c.width, c.height
	if w <= 0 || h <= 0 {
		return
	}
	if need := w * h; cap(c.buf) < need {
		c.buf = make([]term.Cell, need)
	}
	c.buf = c.buf[:w*h]

	scr := tui.NewRegion(c.buf, w, 0, 0, w, h)
	scr.Fill(c.theme.Bg)
	c.hits = c.hits[:0]

	if w < minWidth || h < minHeight {
		scr.TextCenter(h/2, "landline needs a larger window", c.theme.Muted, c.theme.Bg, term.AttrNone)
		c.screen.Flush(c.buf, w, h)
		return
	}

	switch c.state {
	case StateReady:
		c.layoutPage(w)
		c.clampScroll()
		c.drawPage(scr)
		c.drawNavbar(scr)
		if loading := c.root.ByID(render.IDLoadingScreen); loading != nil && !loading.Hidden {
			c.drawLoading(scr, loading.Alpha)
		}
	case StateLoading, StateFailed:
		c.drawLoading(scr, 1)
	}

	c.drawToast(scr)
	c.drawModal(scr)
	c.drawCursor(scr)

	c.screen.Flush(c.buf, w, h)
}

// pageRegion maps a page-space rect into an unclipped screen region.
// Cells that land outside the buffer are dropped by the cell bounds
// checks and the navbar repaints its rows afterwards, so nodes
// straddling the viewport edge clip naturally.
func (c *Controller) pageRegion(r page.Rect, offsetY float64) tui.Region {
	y := navHeight + r.Y - c.scrollTop() + int(math.Round(offsetY))
	return tui.NewRegion(c.buf, c.width, r.X, y, r.W, r.H)
}

// addPageHit registers a hit region for a scrolled element, trimming
// the rows hidden behind the fixed navbar.
func (c *Controller) addPageHit(n *page.Node, r tui.Region) {
	if r.Y < navHeight {
		d := navHeight - r.Y
		r.Y += d
		r.H -= d
	}
	if r.Y+r.H > c.height {
		r.H = c.height - r.Y
	}
	c.addHit(n, r)
}

func (c *Controller) bandVisible(r page.Rect, top, viewH int) bool {
	return r.Y < top+viewH && r.Bottom() > top
}

// blendFg maps a foreground color through a node's opacity against
// the backdrop it draws over.
func blendFg(bg, fg term.RGB, alpha float64) term.RGB {
	return tui.Blend(bg, fg, alpha)
}

// --- splash ---

// drawLoading paints the splash at the given opacity. Below full
// opacity the already drawn page shows through, which is how the
// crossfade into the ready state looks.
func (c *Controller) drawLoading(scr tui.Region, alpha float64) {
	th := c.theme
	if alpha >= 1 {
		scr.Fill(th.Bg)
	} else {
		for y := 0; y < scr.H; y++ {
			for x := 0; x < scr.W; x++ {
				cell := scr.Get(x, y)
				scr.Cell(x, y, cell.Rune,
					tui.Blend(cell.Fg, th.Bg, alpha),
					tui.Blend(cell.Bg, th.Bg, alpha),
					cell.Attrs)
			}
		}
	}

	logo := "landline"
	status := "dialing"
	if c.root != nil {
		if n := c.root.ByID(render.IDLoadingLogo); n != nil && n.Text != "" {
			logo = n.Text
		}
		if n := c.root.ByID(render.IDLoadingStatus); n != nil && n.Text != "" {
			status = n.Text
		}
	}

	midY := scr.H / 2
	runes := []rune(logo)
	colors := tui.Gradient(th.Accent, th.AccentAlt, len(runes))
	x := (scr.W - tui.StringWidth(logo)) / 2
	for i, r := range runes {
		scr.Cell(x+i, midY-2, r, blendFg(th.Bg, colors[i], alpha), th.Bg, term.AttrBold)
	}

	if c.state == StateLoading {
		status += strings.Repeat(".", (c.frame/10)%4)
	}
	sx := (scr.W - tui.StringWidth(status) - 2) / 2
	scr.Spinner(sx, midY, c.overlays.SpinnerFrame/2, blendFg(th.Bg, th.Accent, alpha))
	scr.Text(sx+2, midY, status, blendFg(th.Bg, th.Muted, alpha), th.Bg, term.AttrNone)

	if c.state == StateLoading {
		hold := time.Duration(c.cfg.MinLoadingMS) * time.Millisecond
		frac := 1.0
		if hold > 0 {
			frac = float64(c.clock.Now().Sub(c.loadStart)) / float64(hold)
			if frac > 1 {
				frac = 1
			}
		}
		scr.Progress((scr.W-progressW)/2, midY+2, progressW, frac, th.Accent, th.Surface)
	}
}

// --- fixed chrome ---

func (c *Controller) drawNavbar(scr tui.Region) {
	th := c.theme
	bar, _ := tui.SplitVFixed(scr, navHeight)
	bar.Fill(th.HeaderBg)
	bar.HLine(navHeight-1, tui.LineSingle, th.Border)

	if brand := c.root.ByID(render.IDNavBrand); brand != nil {
		bar.Text(pagePad, 1, brand.Text, th.Accent, th.HeaderBg, term.AttrBold)
	}

	menu := c.root.ByID(render.IDNavMenu)
	toggle := c.root.ByID(render.IDMenuToggle)

	if toggle != nil && !toggle.Hidden {
		label := toggle.Text
		x := bar.W - pagePad - tui.StringWidth(label)
		fg, attr := th.HeaderFg, term.AttrBold
		if c.hover == toggle {
			fg = th.Accent
		}
		if c.focused() == toggle {
			attr |= term.AttrReverse
		}
		bar.Text(x, 1, label, fg, th.HeaderBg, attr)
		c.addHit(toggle, bar.Sub(x-1, 0, tui.StringWidth(label)+2, navHeight))
		if c.menuOpen && menu != nil && !menu.Hidden {
			c.drawMenuDropdown(scr, menu)
		}
		return
	}

	if menu == nil || menu.Hidden {
		return
	}
	total := 0
	for _, l := range menu.Children {
		total += tui.StringWidth(l.Text) + navGap
	}
	x := bar.W - pagePad - total + navGap
	for _, l := range menu.Children {
		lw := tui.StringWidth(l.Text)
		fg, attr := th.HeaderFg, term.AttrNone
		if c.activeNav != "" && l.Attr(render.TargetAttr) == c.activeNav {
			fg = th.Accent
			attr |= term.AttrUnderline
		}
		if c.hover == l {
			attr |= term.AttrUnderline
		}
		if c.focused() == l {
			attr |= term.AttrReverse
		}
		bar.Text(x, 1, l.Text, fg, th.HeaderBg, attr)
		c.addHit(l, bar.Sub(x, 1, lw, 1))
		x += lw + navGap
	}
}

// drawMenuDropdown paints the collapsed nav as a panel hanging off
// the navbar's right edge.
func (c *Controller) drawMenuDropdown(scr tui.Region, menu *page.Node) {
	th := c.theme
	dw := 0
	for _, l := range menu.Children {
		if lw := tui.StringWidth(l.Text); lw > dw {
			dw = lw
		}
	}
	dw += 6
	dh := len(menu.Children) + 2
	r := scr.Sub(scr.W-dw-1, navHeight, dw, dh)
	r.BoxFilled(tui.LineRounded, th.Border, th.Surface)
	for i, l := range menu.Children {
		fg, attr := th.Fg, term.AttrNone
		if c.activeNav != "" && l.Attr(render.TargetAttr) == c.activeNav {
			fg = th.Accent
		}
		if c.hover == l {
			attr |= term.AttrUnderline
		}
		if c.focused() == l {
			attr |= term.AttrReverse
		}
		r.Text(2, 1+i, l.Text, fg, th.Surface, attr)
		c.addHit(l, r.Sub(1, 1+i, dw-2, 1))
	}
}

// --- page content ---

func (c *Controller) drawPage(scr tui.Region) {
	top := c.scrollTop()
	viewH := c.viewHeight()

	main := c.root.ByID(render.IDMain)
	if main != nil {
		for _, s := range main.Children {
			if s.Kind != page.KindSection || !c.bandVisible(s.Rect, top, viewH) {
				continue
			}
			c.drawSection(s)
		}
	}
	if f := c.root.ByID(render.IDFooter); f != nil && c.bandVisible(f.Rect, top, viewH) {
		c.drawFooter(f)
	}

	if c.pageH > viewH {
		_, view := tui.SplitVFixed(scr, navHeight)
		tui.ScrollBar(view, view.W-1, top, viewH, c.pageH, c.theme.Border)
	}
}

func (c *Controller) drawSection(s *page.Node) {
	if s.ID == render.IDHero {
		c.drawHero(s)
		return
	}
	if len(s.Children) > 0 && s.Children[0].Kind == page.KindHeading {
		c.drawSectionTitle(s.Children[0])
	}
	switch s.ID {
	case render.IDStats:
		for _, card := range gridItems(s, render.IDStatsGrid) {
			c.drawStatCard(card)
		}
	case render.IDFeatures:
		for _, card := range gridItems(s, render.IDFeaturesGrid) {
			c.drawFeatureCard(card)
		}
	case render.IDEvents:
		for _, card := range gridItems(s, render.IDEventsContainer) {
			c.drawEventCard(card)
		}
	case render.IDContact:
		for _, card := range gridItems(s, render.IDContactInfo) {
			c.drawContactCard(card)
		}
		c.drawForm(s.ByID(render.IDContactForm))
	}
}

func gridItems(s *page.Node, id string) []*page.Node {
	container := s.ByID(id)
	if container == nil {
		return nil
	}
	return container.Children
}

func (c *Controller) drawSectionTitle(n *page.Node) {
	if n.Alpha <= 0.02 {
		return
	}
	th := c.theme
	r := c.pageRegion(n.Rect, n.OffsetY)
	fg := blendFg(th.Bg, th.Fg, n.Alpha)
	r.Text(0, 0, "▌ ", blendFg(th.Bg, th.Accent, n.Alpha), th.Bg, term.AttrNone)
	r.Text(2, 0, n.Text, fg, th.Bg, term.AttrBold)
}

// cardFrame draws a card's border and surface and returns the inner
// region plus the card's effective opacity. ok is false when the card
// is fully faded or too small to draw.
func (c *Controller) cardFrame(n *page.Node) (inner tui.Region, bg term.RGB, alpha float64, ok bool) {
	if n == nil || n.Hidden {
		return
	}
	alpha = n.Alpha
	if alpha <= 0.02 || n.Rect.W < 4 || n.Rect.H < 3 {
		return
	}
	th := c.theme
	r := c.pageRegion(n.Rect, n.OffsetY)
	bg = tui.Blend(th.Bg, th.Surface, alpha)
	border := tui.Blend(th.Bg, th.Border, alpha)
	if n.Glow > 0 {
		border = tui.Blend(border, th.Accent, n.Glow)
	}
	r.BoxFilled(tui.LineRounded, border, bg)
	return r.Inset(1), bg, alpha, true
}

func (c *Controller) drawStatCard(card *page.Node) {
	inner, bg, alpha, ok := c.cardFrame(card)
	if !ok {
		return
	}
	th := c.theme
	if v := render.Slot(card, "value"); v != nil {
		inner.TextCenter(0, v.Text, blendFg(bg, th.Accent, alpha), bg, term.AttrBold)
	}
	if l := render.Slot(card, "label"); l != nil {
		inner.TextCenter(1, l.Text, blendFg(bg, th.Muted, alpha), bg, term.AttrNone)
	}
}

func (c *Controller) drawFeatureCard(card *page.Node) {
	inner, bg, alpha, ok := c.cardFrame(card)
	if !ok {
		return
	}
	th := c.theme
	row := 0
	if icon := render.Slot(card, "icon"); icon != nil && icon.Text != "" {
		inner.Text(0, row, icon.Text, blendFg(bg, th.AccentAlt, alpha), bg, term.AttrNone)
		inner.Text(tui.StringWidth(icon.Text)+1, row, slotText(card, "title"),
			blendFg(bg, th.Fg, alpha), bg, term.AttrBold)
	} else {
		inner.Text(0, row, slotText(card, "title"), blendFg(bg, th.Fg, alpha), bg, term.AttrBold)
	}
	row++
	desc := slotText(card, "description")
	for _, line := range tui.WrapText(desc, inner.W) {
		row++
		if row >= inner.H {
			break
		}
		inner.Text(0, row, line, blendFg(bg, th.Muted, alpha), bg, term.AttrNone)
	}
}

func (c *Controller) drawEventCard(card *page.Node) {
	inner, bg, alpha, ok := c.cardFrame(card)
	if !ok {
		return
	}
	th := c.theme
	const dateW = 6

	day := slotText(card, "day")
	month := slotText(card, "month")
	date, rest := tui.SplitHFixed(inner, dateW)
	date.TextCenter(0, day, blendFg(bg, th.Accent, alpha), bg, term.AttrBold)
	date.TextCenter(1, month, blendFg(bg, th.Muted, alpha), bg, term.AttrNone)
	inner.VLine(dateW+1, tui.LineSingle, blendFg(bg, th.Border, alpha))

	body := rest.Sub(3, 0, rest.W-3, rest.H)
	if t := slotText(card, "type"); t != "" {
		tag := "[" + strings.ToUpper(t) + "]"
		body.Text(0, 0, tag, blendFg(bg, th.AccentAlt, alpha), bg, term.AttrBold)
		body.Text(tui.StringWidth(tag)+1, 0, slotText(card, "title"),
			blendFg(bg, th.Fg, alpha), bg, term.AttrBold)
	} else {
		body.Text(0, 0, slotText(card, "title"), blendFg(bg, th.Fg, alpha), bg, term.AttrBold)
	}
	body.Text(0, 1, tui.Truncate(slotText(card, "description"), body.W),
		blendFg(bg, th.Muted, alpha), bg, term.AttrNone)
}

func (c *Controller) drawContactCard(card *page.Node) {
	inner, bg, alpha, ok := c.cardFrame(card)
	if !ok {
		return
	}
	th := c.theme
	if icon := slotText(card, "icon"); icon != "" {
		inner.Text(0, 0, icon, blendFg(bg, th.AccentAlt, alpha), bg, term.AttrNone)
		inner.Text(tui.StringWidth(icon)+1, 0, slotText(card, "title"),
			blendFg(bg, th.Fg, alpha), bg, term.AttrBold)
	} else {
		inner.Text(0, 0, slotText(card, "title"), blendFg(bg, th.Fg, alpha), bg, term.AttrBold)
	}
	inner.Text(0, 1, slotText(card, "value"), blendFg(bg, th.Accent, alpha), bg, term.AttrNone)
	inner.Text(0, 2, tui.Truncate(slotText(card, "description"), inner.W),
		blendFg(bg, th.Muted, alpha), bg, term.AttrNone)
}

func slotText(card *page.Node, name string) string {
	if n := render.Slot(card, name); n != nil {
		return n.Text
	}
	return ""
}

// --- hero ---

func (c *Controller) drawHero(s *page.Node) {
	th := c.theme

	if grid := s.ByID(render.IDHeroGrid); grid != nil {
		r := c.pageRegion(grid.Rect, 0)
		dot := tui.Blend(th.Bg, th.Border, 0.45)
		for y := 0; y < r.H; y += 2 {
			for x := 0; x < r.W; x += 4 {
				r.Cell(x, y, '·', dot, th.Bg, term.AttrNone)
			}
		}
	}

	if floats := s.ByID(render.IDFloating); floats != nil {
		for _, f := range floats.Children {
			r := c.pageRegion(f.Rect, f.OffsetY)
			r.Text(0, 0, f.Text, tui.Blend(th.Bg, th.AccentAlt, 0.6), th.Bg, term.AttrNone)
		}
	}

	if title := s.ByID(render.IDHeroTitle); title != nil {
		r := c.pageRegion(title.Rect, title.OffsetY)
		x := (r.W - tui.StringWidth(title.Text)) / 2
		r.TextGradient(x, 0, title.Text, th.Accent, th.AccentAlt, th.Bg, term.AttrBold)
		underline := tui.RepeatRune('─', tui.StringWidth(title.Text))
		r.Text(x, 1, underline, tui.Blend(th.Bg, th.Accent, 0.5), th.Bg, term.AttrNone)
	}

	if tagline := s.ByID(render.IDHeroTagline); tagline != nil {
		r := c.pageRegion(tagline.Rect, tagline.OffsetY)
		r.TextCenter(0, tagline.Text, th.Muted, th.Bg, term.AttrNone)
	}

	if actions := s.ByID(render.IDHeroActions); actions != nil {
		for _, b := range actions.Children {
			c.drawButton(b, b.HasClass(render.ClassCTAPrimary), "")
		}
	}

	if terminal := s.ByID(render.IDTerminal); terminal != nil {
		c.drawTerminal(terminal)
	}
}

// drawButton paints a boxed button in page space. Primary buttons get
// the accent border, secondary the muted one. A non-empty spinnerText
// replaces the label, used while a submit is in flight.
func (c *Controller) drawButton(b *page.Node, primary bool, spinnerText string) {
	th := c.theme
	r := c.pageRegion(b.Rect, b.OffsetY)
	if r.W < 4 {
		return
	}

	border, fg := th.Border, th.Fg
	attr := term.AttrNone
	if primary {
		border, fg = th.Accent, th.Accent
		attr = term.AttrBold
	}
	if c.hover == b {
		attr |= term.AttrUnderline
	}
	if c.focused() == b {
		attr |= term.AttrReverse
	}

	r.BoxFilled(tui.LineRounded, border, th.Surface)
	label := b.Text
	if spinnerText != "" {
		label = spinnerText
	}
	r.TextCenter(1, label, fg, th.Surface, attr)
	c.addPageHit(b, r)
}

// drawTerminal paints the hero's fake shell with whatever the
// typewriter has emitted so far and a blinking block cursor.
func (c *Controller) drawTerminal(n *page.Node) {
	th := c.theme
	r := c.pageRegion(n.Rect, n.OffsetY)
	bg := tui.Blend(th.Bg, th.Surface, 0.6)
	inner := r.Card("hero@landline:~", tui.LineSingle, th.Border)
	inner.Fill(bg)

	lines := strings.Split(n.Text, "\n")
	if n.Text == "" {
		lines = nil
	}
	lastX, lastY := 0, 0
	for i, line := range lines {
		if i >= inner.H {
			break
		}
		fg := th.Fg
		if strings.HasPrefix(line, "$") {
			fg = th.Accent
		}
		inner.Text(0, i, tui.Truncate(line, inner.W-1), fg, bg, term.AttrNone)
		lastX, lastY = tui.StringWidth(tui.Truncate(line, inner.W-1)), i
	}
	if (c.frame/8)%2 == 0 && lastY < inner.H {
		inner.Cell(lastX, lastY, '▊', th.Accent, bg, term.AttrNone)
	}
}

// --- form ---

func (c *Controller) drawForm(form *page.Node) {
	if form == nil || c.form == nil {
		return
	}
	th := c.theme

	for _, f := range c.form.fields {
		n := f.node
		r := c.pageRegion(n.Rect, n.OffsetY)
		if r.W < 4 {
			continue
		}

		invalid := n.HasClass(render.ClassError)
		labelFg := th.Muted
		if invalid {
			labelFg = th.Error
		}
		if n.Glow > 0 {
			labelFg = tui.Blend(labelFg, th.Error, n.Glow)
		}
		label := f.label()
		if f.required() {
			label += " *"
		}
		r.Text(0, 0, label, labelFg, th.Bg, term.AttrNone)

		style := tui.DefaultTextFieldStyle()
		style.TextBg = th.InputBg
		style.TextFg = th.Fg
		style.PrefixFg = th.HintFg
		style.ErrorFg = th.Error
		style.CursorFg = th.CursorFg
		style.CursorBg = th.CursorBg

		input := r.Sub(0, 1, r.W, 1)
		input.TextField(f.input, tui.TextFieldOpts{
			Prefix:  "> ",
			Focused: c.focused() == n,
			Invalid: invalid,
			Style:   style,
		})
		c.addPageHit(n, input)
	}

	if submit := form.ByID(render.IDContactSubmit); submit != nil {
		spinnerText := ""
		if c.form.submitting {
			frames := []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}
			spinnerText = "Sending " + string(frames[(c.overlays.SpinnerFrame/2)%len(frames)])
		}
		c.drawButton(submit, true, spinnerText)
	}
}

// --- footer ---

func (c *Controller) drawFooter(f *page.Node) {
	th := c.theme

	if links := f.ByID(render.IDFooterLinks); links != nil {
		r := c.pageRegion(page.Rect{X: links.Rect.X, Y: links.Rect.Y - 1, W: links.Rect.W, H: 1}, 0)
		r.HLine(0, tui.LineSingle, th.Border)

		for _, sec := range links.Children {
			c.drawFooterSection(sec)
		}
	}

	if b := f.ByID(render.IDFooterBottom); b != nil {
		r := c.pageRegion(b.Rect, 0)
		r.TextCenter(0, b.Text, th.Muted, th.Bg, term.AttrDim)
	}
}

func (c *Controller) drawFooterSection(sec *page.Node) {
	th := c.theme
	alpha := sec.Alpha
	if alpha <= 0.02 {
		return
	}

	if t := render.Slot(sec, "title"); t != nil {
		r := c.pageRegion(t.Rect, sec.OffsetY)
		r.Text(0, 0, t.Text, blendFg(th.Bg, th.Fg, alpha), th.Bg, term.AttrBold)
	}
	if l := render.Slot(sec, "links"); l != nil {
		for _, link := range l.Children {
			r := c.pageRegion(link.Rect, sec.OffsetY)
			fg, attr := th.Muted, term.AttrNone
			if c.hover == link {
				fg, attr = th.Accent, term.AttrUnderline
			}
			if c.focused() == link {
				attr |= term.AttrReverse
			}
			r.Text(0, 0, link.Text, blendFg(th.Bg, fg, alpha), th.Bg, attr)
			c.addPageHit(link, r)
		}
	}
}

// --- overlays ---

func (c *Controller) drawToast(scr tui.Region) {
	if !c.overlays.Toast.Visible {
		return
	}
	scr.Toast(c.overlays.Toast.Opts)
}

func (c *Controller) drawModal(scr tui.Region) {
	m := c.overlays.Modal
	if !m.Visible {
		return
	}
	th := c.theme

	mw := scr.W - 8
	if mw > 56 {
		mw = 56
	}
	body := tui.WrapText(m.Body, mw-4)
	mh := len(body) + 4
	if mh < 7 {
		mh = 7
	}

	r := tui.Center(scr, mw, mh)
	inner := r.Modal(tui.ModalOpts{
		Title:    m.Title,
		Hint:     m.Hint,
		Border:   tui.LineDouble,
		BorderFg: th.Error,
		TitleFg:  th.HeaderFg,
		HintFg:   th.HintFg,
		Bg:       th.Surface,
	})
	for i, line := range body {
		if i >= inner.H {
			break
		}
		inner.Text(0, i+1, line, th.Fg, th.Surface, term.AttrNone)
	}
}

// drawCursor paints the trailing pointer glyph last so it rides over
// everything, switching shape over interactive targets.
func (c *Controller) drawCursor(scr tui.Region) {
	if c.root == nil || !c.cursor.Active() {
		return
	}
	node := c.root.ByID(render.IDCursor)
	if node == nil || node.Hidden {
		return
	}
	x, y := c.cursor.Pos()
	glyph := '◆'
	if len(node.Text) > 0 {
		glyph = []rune(node.Text)[0]
	}
	if c.hover != nil {
		glyph = '◈'
	}
	under := scr.Get(x, y)
	scr.Cell(x, y, glyph, c.theme.Accent, under.Bg, term.AttrBold)
}
