package app

import (
	"math"
	"strconv"

	"github.com/landline-sh/landline/motion"
	"github.com/landline-sh/landline/page"
	"github.com/landline-sh/landline/render"
)

// scrollTop is the whole page row at the top of the viewport.
func (c *Controller) scrollTop() int {
	return int(math.Round(c.scrollY))
}

// viewHeight is the content band below the fixed navbar.
func (c *Controller) viewHeight() int {
	h := c.height - navHeight
	if h < 0 {
		return 0
	}
	return h
}

func (c *Controller) maxScroll() int {
	m := c.pageH - c.viewHeight()
	if m < 0 {
		return 0
	}
	return m
}

func (c *Controller) clampScroll() {
	if c.scrollY < 0 {
		c.scrollY = 0
	}
	if m := float64(c.maxScroll()); c.scrollY > m {
		c.scrollY = m
	}
}

// setScroll lands one step of a smooth scroll. Effects run behind a
// throttle so a long glide does not recompute them every frame.
func (c *Controller) setScroll(v float64) {
	c.scrollY = v
	c.clampScroll()
	c.scrollFx(c.scrollY)
}

// scrollBy jumps the viewport directly, cancelling any glide in
// flight, manual input always wins.
func (c *Controller) scrollBy(delta int) {
	c.animator.Cancel(nil, motion.TaskScroll)
	c.setScroll(c.scrollY + float64(delta))
}

// scrollTo glides the viewport to the given page row.
func (c *Controller) scrollTo(target float64) {
	if target < 0 {
		target = 0
	}
	if m := float64(c.maxScroll()); target > m {
		target = m
	}
	c.animator.Scroll(c.scrollY, target, c.setScroll)
}

// scrollToSection glides a section's heading to the top of the view.
// Unknown ids are ignored, a nav entry can point at a section the
// document never produced.
func (c *Controller) scrollToSection(id string) {
	if c.root == nil || id == "" {
		return
	}
	section := c.root.ByID(id)
	if section == nil {
		c.log.Debug("scroll target missing", "id", id)
		return
	}
	c.scrollTo(float64(section.Rect.Y - 1))
}

// applyScrollEffects recomputes scroll-coupled state for the given
// scroll offset: the parallax drift of the hero floats and which nav
// link is lit. Runs throttled while scrolling; the throttle passes the
// accepted call's offset through.
func (c *Controller) applyScrollEffects(offset float64) {
	if c.state != StateReady || c.root == nil {
		return
	}

	for _, f := range c.root.ByClass(render.ClassFloat) {
		speed, err := strconv.ParseFloat(f.Attr(render.SpeedAttr), 64)
		if err != nil {
			continue
		}
		f.OffsetY = offset * speed * 0.25
	}

	c.activeNav = c.sectionAt(int(math.Round(offset)))
}

// sectionAt names the nav-targeted section under the given viewport
// top row, empty while the hero is showing.
func (c *Controller) sectionAt(scrollTop int) string {
	main := c.root.ByID(render.IDMain)
	if main == nil {
		return ""
	}
	top := scrollTop + 1
	current := ""
	for _, s := range main.Children {
		if s.Kind != page.KindSection || s.ID == render.IDHero {
			continue
		}
		if s.Rect.Y <= top+navHeight {
			current = s.ID
		}
	}
	return current
}

// ensureVisible glides a focused node into the viewport band. Fixed
// chrome like nav links has no page position and never scrolls.
func (c *Controller) ensureVisible(n *page.Node) {
	if !inPageFlow(n) {
		return
	}
	top := c.scrollTop()
	view := c.viewHeight()
	if view <= 0 {
		return
	}
	y := n.Rect.Y
	bottom := n.Rect.Bottom()
	switch {
	case y < top+1:
		c.scrollTo(float64(y - 2))
	case bottom > top+view-1:
		c.scrollTo(float64(bottom - view + 2))
	}
}

// inPageFlow reports whether the node scrolls with the page, meaning
// it lives under main or the footer rather than the fixed chrome.
func inPageFlow(n *page.Node) bool {
	for p := n; p != nil; p = p.Parent() {
		if p.ID == render.IDMain || p.ID == render.IDFooter {
			return true
		}
	}
	return false
}
