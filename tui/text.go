package tui

import "github.com/mattn/go-runewidth"

// StringWidth returns terminal display width, accounting for wide runes
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// RuneWidth returns display width of a single rune
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	return w
}

// Truncate truncates string with … suffix if exceeds maxW display cells
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxW {
		return s
	}
	if maxW <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxW, "…")
}

// TruncateLeft truncates with … prefix, keeps end of string
func TruncateLeft(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxW {
		return s
	}
	if maxW <= 1 {
		return "…"
	}
	return runewidth.TruncateLeft(s, runewidth.StringWidth(s)-maxW+1, "…")
}

// PadRight pads string with spaces to width
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadLeft left-pads string with spaces to width
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// PadCenter centers string within width
func PadCenter(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return RepeatRune(' ', left) + s + RepeatRune(' ', width-w-left)
}

// WrapText wraps text at word boundaries to fit width
// Returns slice of lines, each no wider than width
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	var lines []string
	lineStart := 0
	lastSpace := -1

	for i := 0; i <= len(runes); i++ {
		// Check if we need to wrap
		if i-lineStart >= width || i == len(runes) {
			if i == len(runes) {
				// End of string
				if lineStart < len(runes) {
					lines = append(lines, string(runes[lineStart:]))
				}
				break
			}

			// Need to wrap
			wrapAt := i
			if lastSpace > lineStart {
				// Wrap at last space
				wrapAt = lastSpace
			}

			lines = append(lines, string(runes[lineStart:wrapAt]))

			// Skip space at wrap point
			if wrapAt < len(runes) && runes[wrapAt] == ' ' {
				lineStart = wrapAt + 1
			} else {
				lineStart = wrapAt
			}
			lastSpace = -1
		}

		// Track spaces for word wrapping
		if i < len(runes) && runes[i] == ' ' {
			lastSpace = i
		}
	}

	if len(lines) == 0 {
		lines = []string{""}
	}

	return lines
}

// RepeatRune returns a string of n repeated runes
func RepeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = r
	}
	return string(runes)
}
