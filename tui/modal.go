package tui

import "github.com/landline-sh/landline/term"

// ModalOpts styles a blocking dialog panel
type ModalOpts struct {
	Title    string
	Hint     string // Right-aligned on the top border, e.g. key help
	Border   LineType
	BorderFg term.RGB
	TitleFg  term.RGB
	HintFg   term.RGB
	Bg       term.RGB
}

// Modal paints a bordered panel with the title and hint worked into
// the top edge, and returns the inner content region. Regions too
// small for a border collapse to an empty content region
func (r Region) Modal(opts ModalOpts) Region {
	if r.W < 5 || r.H < 3 {
		return r.Sub(1, 1, 0, 0)
	}

	r.Fill(opts.Bg)
	r.Box(opts.Border, opts.BorderFg)

	if opts.Title != "" {
		title := " " + opts.Title + " "
		titleLen := StringWidth(title)
		if titleLen > r.W-4 {
			title = Truncate(title, r.W-4)
			titleLen = StringWidth(title)
		}
		x := (r.W - titleLen) / 2
		for i, ch := range []rune(title) {
			r.Cell(x+i, 0, ch, opts.TitleFg, opts.Bg, term.AttrBold)
		}
	}

	if opts.Hint != "" {
		hint := opts.Hint
		hintLen := StringWidth(hint)
		// Cap the hint so it never collides with a centered title
		if hintLen > r.W/3 {
			hint = Truncate(hint, r.W/3)
			hintLen = StringWidth(hint)
		}
		x := r.W - hintLen - 2
		if x < r.W/2 {
			x = r.W / 2
		}
		for i, ch := range []rune(hint) {
			if x+i >= r.W-1 {
				break
			}
			r.Cell(x+i, 0, ch, opts.HintFg, opts.Bg, term.AttrNone)
		}
	}

	return r.Sub(1, 1, r.W-2, r.H-2)
}
