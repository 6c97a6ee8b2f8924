package tui

import "github.com/landline-sh/landline/term"

// ToastPosition specifies where toast renders
type ToastPosition uint8

const (
	ToastBottom      ToastPosition = iota // Full-width bar at bottom
	ToastTop                              // Full-width bar at top
	ToastBottomRight                      // Floating box bottom-right
	ToastTopRight                         // Floating box top-right
	ToastCenter                           // Centered floating box
)

// ToastSeverity defines message type for styling
type ToastSeverity uint8

const (
	ToastInfo    ToastSeverity = iota // Default, neutral
	ToastSuccess                      // Green, positive
	ToastWarning                      // Yellow, caution
	ToastError                        // Red, failure
)

// ToastStyle defines visual appearance
type ToastStyle uint8

const (
	ToastStyleMinimal ToastStyle = iota // No border, just text
	ToastStyleBar                       // Full-width background bar
	ToastStyleBox                       // Bordered box
	ToastStyleRounded                   // Rounded border box
)

// ToastIcons for severity levels
var ToastIcons = map[ToastSeverity]rune{
	ToastInfo:    'ℹ',
	ToastSuccess: '✓',
	ToastWarning: '⚠',
	ToastError:   '✗',
}

// ToastColors default colors per severity
var ToastColors = map[ToastSeverity]struct{ Fg, Bg, Icon term.RGB }{
	ToastInfo: {
		Fg:   term.RGB{R: 200, G: 200, B: 200},
		Bg:   term.RGB{R: 40, G: 40, B: 50},
		Icon: term.RGB{R: 100, G: 150, B: 255},
	},
	ToastSuccess: {
		Fg:   term.RGB{R: 220, G: 255, B: 220},
		Bg:   term.RGB{R: 30, G: 60, B: 30},
		Icon: term.RGB{R: 80, G: 220, B: 80},
	},
	ToastWarning: {
		Fg:   term.RGB{R: 255, G: 240, B: 200},
		Bg:   term.RGB{R: 60, G: 50, B: 20},
		Icon: term.RGB{R: 255, G: 200, B: 60},
	},
	ToastError: {
		Fg:   term.RGB{R: 255, G: 220, B: 220},
		Bg:   term.RGB{R: 60, G: 25, B: 25},
		Icon: term.RGB{R: 255, G: 80, B: 80},
	},
}

// ToastOpts configures toast rendering
type ToastOpts struct {
	Message  string
	Severity ToastSeverity
	Position ToastPosition
	Style    ToastStyle
	ShowIcon bool
	Hint     string // Right-aligned dismiss hint, e.g. "esc"
	MinWidth int    // Minimum width for floating toasts, 0 = auto
	MaxWidth int    // Maximum width, 0 = region width
	Padding  int    // Horizontal padding, default 1
	MarginX  int    // Margin from edge for floating positions
	MarginY  int    // Margin from edge for floating positions
}

// DefaultToastOpts returns sensible defaults
func DefaultToastOpts(message string, severity ToastSeverity) ToastOpts {
	return ToastOpts{
		Message:  message,
		Severity: severity,
		Position: ToastBottomRight,
		Style:    ToastStyleRounded,
		ShowIcon: true,
		Padding:  1,
		MarginX:  2,
		MarginY:  1,
	}
}

// Toast renders a toast message overlay
// Returns the region occupied by the toast for hit testing
func (r Region) Toast(opts ToastOpts) Region {
	if r.W < 5 || r.H < 1 || opts.Message == "" {
		return Region{}
	}

	colors := ToastColors[opts.Severity]
	fg, bg, iconFg := colors.Fg, colors.Bg, colors.Icon

	padding := opts.Padding
	if padding == 0 {
		padding = 1
	}

	// Calculate content width
	iconW := 0
	if opts.ShowIcon {
		iconW = 2 // icon + space
	}
	hintW := 0
	if opts.Hint != "" {
		hintW = StringWidth(opts.Hint) + 2
	}
	msgLen := StringWidth(opts.Message)
	contentW := iconW + msgLen + hintW + padding*2

	// Determine toast dimensions based on style
	borderW := 0
	if opts.Style >= ToastStyleBox {
		borderW = 2
	}

	toastW := contentW + borderW
	toastH := 1 + borderW

	// Apply width constraints
	maxW := opts.MaxWidth
	if maxW == 0 || maxW > r.W {
		maxW = r.W
	}
	if toastW > maxW {
		toastW = maxW
	}
	if opts.MinWidth > 0 && toastW < opts.MinWidth {
		toastW = opts.MinWidth
	}

	// Calculate position
	var toastX, toastY int
	marginX := opts.MarginX
	marginY := opts.MarginY

	switch opts.Position {
	case ToastBottom:
		toastX = 0
		toastY = r.H - toastH
		toastW = r.W // Full width for bar positions
	case ToastTop:
		toastX = 0
		toastY = 0
		toastW = r.W
	case ToastBottomRight:
		toastX = r.W - toastW - marginX
		toastY = r.H - toastH - marginY
	case ToastTopRight:
		toastX = r.W - toastW - marginX
		toastY = marginY
	case ToastCenter:
		toastX = (r.W - toastW) / 2
		toastY = (r.H - toastH) / 2
	}

	// Clamp position
	if toastX < 0 {
		toastX = 0
	}
	if toastY < 0 {
		toastY = 0
	}

	toastRegion := r.Sub(toastX, toastY, toastW, toastH)

	// Render based on style
	switch opts.Style {
	case ToastStyleMinimal:
		renderToastContent(toastRegion, opts, fg, bg, iconFg)

	case ToastStyleBar:
		toastRegion.Fill(bg)
		renderToastContent(toastRegion, opts, fg, bg, iconFg)

	case ToastStyleBox:
		toastRegion.BoxFilled(LineSingle, fg, bg)
		renderToastContent(toastRegion.Inset(1), opts, fg, bg, iconFg)

	case ToastStyleRounded:
		toastRegion.BoxFilled(LineRounded, fg, bg)
		renderToastContent(toastRegion.Inset(1), opts, fg, bg, iconFg)
	}

	return toastRegion
}

func renderToastContent(content Region, opts ToastOpts, fg, bg, iconFg term.RGB) {
	if content.W < 1 || content.H < 1 {
		return
	}

	x := opts.Padding
	y := 0

	// Icon
	if opts.ShowIcon {
		icon := ToastIcons[opts.Severity]
		if x < content.W {
			content.Cell(x, y, icon, iconFg, bg, term.AttrBold)
		}
		x += 2
	}

	// Dismiss hint on the right
	availW := content.W - x - opts.Padding
	if opts.Hint != "" {
		hint := opts.Hint
		content.TextRight(y, hint+" ", iconFg, bg, term.AttrDim)
		availW -= StringWidth(hint) + 2
	}

	// Message
	msg := opts.Message
	if availW < 1 {
		return
	}
	if StringWidth(msg) > availW {
		msg = Truncate(msg, availW)
	}
	content.Text(x, y, msg, fg, bg, term.AttrNone)
}

// ToastState manages toast lifecycle
type ToastState struct {
	Visible    bool
	Opts       ToastOpts
	FramesLeft int // Countdown to auto-dismiss, -1 = persistent
}

// NewToastState creates a toast that auto-dismisses after frames
// Use frames=-1 for persistent toast
func NewToastState(opts ToastOpts, frames int) *ToastState {
	return &ToastState{
		Visible:    true,
		Opts:       opts,
		FramesLeft: frames,
	}
}

// Tick decrements frame counter, returns true if toast should dismiss
func (t *ToastState) Tick() bool {
	if !t.Visible {
		return false
	}
	if t.FramesLeft < 0 {
		return false // Persistent
	}
	t.FramesLeft--
	if t.FramesLeft <= 0 {
		t.Visible = false
		return true
	}
	return false
}

// Dismiss hides the toast
func (t *ToastState) Dismiss() {
	t.Visible = false
}

// Show displays a new toast
func (t *ToastState) Show(opts ToastOpts, frames int) {
	t.Opts = opts
	t.FramesLeft = frames
	t.Visible = true
}
