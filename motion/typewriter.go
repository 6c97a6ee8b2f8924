package motion

import (
	"math"
	"strings"
	"time"

	"github.com/landline-sh/landline/page"
)

// Typewriter types lines into a node one rune at a time
// Lines accumulate separated by newlines, like streamed command output
func (a *Animator) Typewriter(node *page.Node, lines []string) Token {
	if node == nil || len(lines) == 0 {
		return Token{}
	}
	script := []rune(strings.Join(lines, "\n"))
	total := len(script)
	return a.Start(TaskSpec{
		Node:     node,
		Kind:     TaskType,
		Duration: time.Duration(total) * TypeCharEvery,
		Apply: func(t float64) {
			n := int(math.Round(t * float64(total)))
			if n > total {
				n = total
			}
			node.SetText(string(script[:n]))
		},
	})
}
