package content

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid marks documents that decode but fail structural checks
var ErrInvalid = errors.New("content document invalid")

// Validate checks the document holds enough well-formed content to render
// It reports every problem found, not just the first
func (d *Document) Validate() error {
	var problems []string

	if strings.TrimSpace(d.Site.Name) == "" {
		problems = append(problems, "site.name is required")
	}
	for i, item := range d.Site.Nav {
		if item.Label == "" || item.Target == "" {
			problems = append(problems, fmt.Sprintf("site.nav[%d] needs label and target", i))
		}
	}

	if strings.TrimSpace(d.Hero.Title) == "" {
		problems = append(problems, "hero.title is required")
	}

	for i, s := range d.Stats {
		if s.Label == "" {
			problems = append(problems, fmt.Sprintf("stats[%d] needs a label", i))
		}
		if s.Number < 0 {
			problems = append(problems, fmt.Sprintf("stats[%d] number must not be negative", i))
		}
	}

	for i, f := range d.Features {
		if f.Title == "" {
			problems = append(problems, fmt.Sprintf("features[%d] needs a title", i))
		}
	}

	for i, e := range d.Events {
		if e.Title == "" {
			problems = append(problems, fmt.Sprintf("events[%d] needs a title", i))
		}
		if e.Date != "" {
			if _, err := time.ParseInLocation(eventDateLayout, e.Date, time.Local); err != nil {
				problems = append(problems, fmt.Sprintf("events[%d] date %q is not YYYY-MM-DD", i, e.Date))
			}
		}
	}

	for i, c := range d.Contact {
		if c.Title == "" {
			problems = append(problems, fmt.Sprintf("contact[%d] needs a title", i))
		}
		if c.Value == "" {
			problems = append(problems, fmt.Sprintf("contact[%d] needs a value", i))
		}
	}

	for i, fs := range d.Footer {
		if fs.Title == "" {
			problems = append(problems, fmt.Sprintf("footer[%d] needs a title", i))
		}
		for j, l := range fs.Links {
			if l.Text == "" {
				problems = append(problems, fmt.Sprintf("footer[%d].links[%d] needs text", i, j))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
