package app

import (
	"github.com/landline-sh/landline/audio"
	"github.com/landline-sh/landline/page"
	"github.com/landline-sh/landline/render"
	"github.com/landline-sh/landline/term"
	"github.com/landline-sh/landline/tui"
)

func (c *Controller) handleKey(ev term.Event) {
	// A blocking dialog owns the keyboard outright.
	if c.overlays.Busy() {
		switch {
		case ev.Key == term.KeyCtrlC:
			c.quit = true
		case ev.Key == term.KeyRune && ev.Rune == 'q':
			c.quit = true
		case ev.Key == term.KeyRune && ev.Rune == 'r', ev.Key == term.KeyCtrlR, ev.Key == term.KeyF5:
			c.reload()
		}
		return
	}

	if ev.Key == term.KeyCtrlC {
		c.quit = true
		return
	}

	if c.state != StateReady {
		if ev.Key == term.KeyRune && ev.Rune == 'q' {
			c.quit = true
		}
		return
	}

	// While a field is focused, printable runes belong to it, so even
	// 'q' types instead of quitting.
	if f := c.editingField(); f != nil {
		c.handleFieldKey(f, ev)
		return
	}

	switch ev.Key {
	case term.KeyRune:
		switch ev.Rune {
		case 'q':
			c.quit = true
		case 'j':
			c.scrollBy(keyScrollStep)
		case 'k':
			c.scrollBy(-keyScrollStep)
		case 'm':
			c.toggleMenu()
		case 'r':
			c.reload()
		}
	case term.KeyCtrlR, term.KeyF5:
		c.reload()
	case term.KeyEscape:
		c.dismiss()
	case term.KeyDown:
		c.scrollBy(keyScrollStep)
	case term.KeyUp:
		c.scrollBy(-keyScrollStep)
	case term.KeyPageDown:
		c.scrollBy(c.viewHeight() - 2)
	case term.KeyPageUp:
		c.scrollBy(-(c.viewHeight() - 2))
	case term.KeyHome:
		c.scrollTo(0)
	case term.KeyEnd:
		c.scrollTo(float64(c.maxScroll()))
	case term.KeyTab:
		c.moveFocus(1)
	case term.KeyBacktab:
		c.moveFocus(-1)
	case term.KeyEnter:
		if n := c.focused(); n != nil {
			c.activate(n)
		}
	}
}

// handleFieldKey routes input to the focused form field, falling back
// to form navigation for the keys the field does not consume.
func (c *Controller) handleFieldKey(f *formField, ev term.Event) {
	if f.input.HandleKey(ev.Key, ev.Rune, ev.Modifiers) {
		// Editing clears any stale validation mark until the next submit.
		f.node.RemoveClass(render.ClassError)
		return
	}
	switch ev.Key {
	case term.KeyEscape:
		if c.overlays.Toast.Visible {
			c.overlays.Dismiss()
			return
		}
		c.blur()
	case term.KeyTab:
		c.moveFocus(1)
	case term.KeyBacktab:
		c.moveFocus(-1)
	case term.KeyEnter:
		c.submit()
	case term.KeyDown:
		c.moveFocus(1)
	case term.KeyUp:
		c.moveFocus(-1)
	}
}

// dismiss handles Esc outside a field: toast first, then the mobile
// menu, then focus.
func (c *Controller) dismiss() {
	if c.overlays.Dismiss() {
		return
	}
	if c.menuOpen {
		c.menuOpen = false
		return
	}
	c.blur()
}

func (c *Controller) handleMouse(ev term.Event) {
	c.cursor.Point(ev.MouseX, ev.MouseY)

	switch ev.MouseAction {
	case term.MouseActionMove:
		c.hover = c.hitTest(ev.MouseX, ev.MouseY)
	case term.MouseActionPress:
		switch ev.MouseBtn {
		case term.MouseBtnWheelUp:
			c.scrollBy(-wheelStep)
		case term.MouseBtnWheelDown:
			c.scrollBy(wheelStep)
		case term.MouseBtnLeft:
			if c.overlays.Busy() {
				return
			}
			n := c.hitTest(ev.MouseX, ev.MouseY)
			if n == nil {
				c.blur()
				return
			}
			c.focusNode(n)
			c.activate(n)
		}
	}
}

// hitTest returns the interactive node drawn under the cell, last
// drawn wins since later draws sit on top.
func (c *Controller) hitTest(x, y int) *page.Node {
	for i := len(c.hits) - 1; i >= 0; i-- {
		h := c.hits[i]
		if x >= h.x && x < h.x+h.w && y >= h.y && y < h.y+h.h {
			return h.node
		}
	}
	return nil
}

func (c *Controller) addHit(n *page.Node, r tui.Region) {
	if n == nil || r.W <= 0 || r.H <= 0 {
		return
	}
	c.hits = append(c.hits, hitRegion{node: n, x: r.X, y: r.Y, w: r.W, h: r.H})
}

// focusNode points the focus ring at n if it is focusable.
func (c *Controller) focusNode(n *page.Node) {
	for i, f := range c.focus {
		if f == n {
			c.focusIdx = i
			return
		}
	}
}

// activate runs the click behavior for a node, keyboard and mouse
// share this path.
func (c *Controller) activate(n *page.Node) {
	switch {
	case n.ID == render.IDContactSubmit:
		c.submit()
	case n.ID == render.IDMenuToggle:
		c.toggleMenu()
	case n.HasClass(render.ClassNavLink):
		c.scrollToSection(n.Attr(render.TargetAttr))
		c.activeNav = n.Attr(render.TargetAttr)
		c.menuOpen = false
	case n.HasClass(render.ClassCTAPrimary):
		c.scrollToSection(render.IDContact)
	case n.HasClass(render.ClassCTASecondary):
		c.scrollToSection(render.IDFeatures)
	case n.Kind == page.KindField:
		c.focusNode(n)
	case n.Kind == page.KindLink && n.Attr(render.HrefAttr) != "":
		c.overlays.Notify("→ "+n.Attr(render.HrefAttr), tui.ToastInfo, c.toastFrames())
	}
}

func (c *Controller) toggleMenu() {
	c.menuOpen = !c.menuOpen
	c.log.Debug("menu toggled", "open", c.menuOpen)
}

func (c *Controller) toastFrames() int {
	fps := c.cfg.FPS
	if fps <= 0 {
		fps = 30
	}
	return fps * toastSeconds
}

// submit validates the form and, when clean, simulates the send with
// a short busy delay. The outcome is decided here on the loop
// goroutine; the timer only reports back.
func (c *Controller) submit() {
	if c.form == nil || c.form.submitting {
		return
	}
	if !c.form.validate(c.animator) {
		c.log.Debug("form rejected")
		return
	}

	c.form.submitting = true
	c.form.pendingFail = c.rng.Float64() < submitFailRate
	c.form.pendingRef = newRef()
	c.sched.AfterFunc(submitDelay, func() {
		c.screen.PostEvent(term.Event{Type: term.EventWake, WakeTag: wakeSubmit})
	})
	c.log.Info("form submitted", "ref", c.form.pendingRef, "name", c.form.value(render.IDContactName))
}

// finishSubmit lands the simulated submission outcome.
func (c *Controller) finishSubmit() {
	if c.form == nil || !c.form.submitting {
		return
	}
	c.form.submitting = false

	if c.form.pendingFail {
		c.overlays.Notify("Could not send, the line is busy. Try again.", tui.ToastError, c.toastFrames())
		c.sound.Play(audio.CueFailure)
		c.log.Warn("submission failed", "ref", c.form.pendingRef)
		return
	}

	c.overlays.Notify("Message sent · ref "+c.form.pendingRef, tui.ToastSuccess, c.toastFrames())
	c.sound.Play(audio.CueSuccess)
	c.form.reset()
	c.blur()
	c.log.Info("submission delivered", "ref", c.form.pendingRef)
}
