package motion

import (
	"math"
	"time"

	"github.com/landline-sh/landline/page"
)

// VisibleClass marks nodes whose reveal has started
const VisibleClass = "visible"

// Reveal fades a node in and settles it upward into place
// The index staggers the start so grid items cascade in render order
func (a *Animator) Reveal(node *page.Node, index int) Token {
	if node == nil {
		return Token{}
	}
	node.AddClass(VisibleClass)
	node.Alpha = 0
	node.OffsetY = RevealRise
	return a.Start(TaskSpec{
		Node:     node,
		Kind:     TaskReveal,
		Delay:    time.Duration(index) * StaggerStep,
		Duration: RevealDuration,
		Ease:     CubicOut,
		Apply: func(t float64) {
			node.Alpha = t
			node.OffsetY = (1 - t) * RevealRise
		},
	})
}

// Counter animates a numeric readout from zero to target
// The final frame always renders the exact target text
func (a *Animator) Counter(node *page.Node, target int, format func(int) string) Token {
	if node == nil || format == nil {
		return Token{}
	}
	return a.Start(TaskSpec{
		Node:     node,
		Kind:     TaskCounter,
		Duration: CounterDuration,
		Ease:     QuartOut,
		Apply: func(t float64) {
			node.SetText(format(int(math.Round(t * float64(target)))))
		},
	})
}

// FadeIn ramps a node to full opacity
func (a *Animator) FadeIn(node *page.Node) Token {
	if node == nil {
		return Token{}
	}
	node.Hidden = false
	return a.Start(TaskSpec{
		Node:     node,
		Kind:     TaskFade,
		Duration: FadeDuration,
		Ease:     CubicOut,
		Apply: func(t float64) {
			node.Alpha = t
		},
	})
}

// FadeOut ramps a node to transparent, hides it, then runs the callback
func (a *Animator) FadeOut(node *page.Node, then func()) Token {
	if node == nil {
		return Token{}
	}
	return a.Start(TaskSpec{
		Node:     node,
		Kind:     TaskFade,
		Duration: FadeDuration,
		Ease:     CubicOut,
		Apply: func(t float64) {
			node.Alpha = 1 - t
		},
		Done: func() {
			node.Hidden = true
			if then != nil {
				then()
			}
		},
	})
}

// SlideUp rises a node into place while fading it in
func (a *Animator) SlideUp(node *page.Node) Token {
	if node == nil {
		return Token{}
	}
	node.Alpha = 0
	node.OffsetY = RevealRise
	return a.Start(TaskSpec{
		Node:     node,
		Kind:     TaskSlide,
		Duration: FadeDuration,
		Ease:     CubicOut,
		Apply: func(t float64) {
			node.Alpha = t
			node.OffsetY = (1 - t) * RevealRise
		},
	})
}

// ScaleIn grows a node from nothing to natural size
func (a *Animator) ScaleIn(node *page.Node) Token {
	if node == nil {
		return Token{}
	}
	node.Alpha = 0
	node.Scale = 0
	return a.Start(TaskSpec{
		Node:     node,
		Kind:     TaskScale,
		Duration: FadeDuration,
		Ease:     CubicOut,
		Apply: func(t float64) {
			node.Alpha = t
			node.Scale = t
		},
	})
}

// Pulse flashes a node's highlight once and leaves it at rest
// Under reduced motion the pulse is invisible, the wave ends where it began
func (a *Animator) Pulse(node *page.Node) Token {
	if node == nil {
		return Token{}
	}
	return a.Start(TaskSpec{
		Node:     node,
		Kind:     TaskPulse,
		Duration: PulseDuration,
		Apply: func(t float64) {
			node.Glow = pulseWave(t)
		},
	})
}

// Scroll eases a viewport offset between two positions
// Only one scroll runs at a time, starting another replaces it
func (a *Animator) Scroll(from, to float64, set func(float64)) Token {
	if set == nil {
		return Token{}
	}
	delta := to - from
	return a.Start(TaskSpec{
		Kind:     TaskScroll,
		Duration: ScrollDuration,
		Ease:     CubicInOut,
		Apply: func(t float64) {
			set(from + delta*t)
		},
	})
}
