package content

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Document is the full content payload a page renders from
type Document struct {
	Site     Site            `json:"site"`
	Hero     Hero            `json:"hero"`
	Stats    []Stat          `json:"stats"`
	Features []Feature       `json:"features"`
	Events   []Event         `json:"events"`
	Contact  []ContactItem   `json:"contact"`
	Footer   []FooterSection `json:"footer"`
}

// Site carries page-wide identity and navigation
type Site struct {
	Name    string    `json:"name"`
	Version string    `json:"version"`
	Nav     []NavItem `json:"nav"`
}

// NavItem is one navigation link
type NavItem struct {
	Label  string `json:"label"`
	Target string `json:"target"` // Section id the link scrolls to
}

// Hero configures the opening section
type Hero struct {
	Title        string   `json:"title"`
	Tagline      string   `json:"tagline"`
	Terminal     []string `json:"terminal_lines"` // Lines typed into the hero terminal
	PrimaryCTA   string   `json:"primary_cta"`
	SecondaryCTA string   `json:"secondary_cta"`
}

// Stat is one animated counter card
type Stat struct {
	Number int    `json:"number"` // Final counter value
	Suffix string `json:"suffix"` // Appended to the rendered number, e.g. "%" or "+"
	Label  string `json:"label"`
}

// UnmarshalJSON accepts the counter target as either a JSON number or a
// numeric string, since feeds quote the value both ways
func (s *Stat) UnmarshalJSON(data []byte) error {
	var raw struct {
		Number json.RawMessage `json:"number"`
		Suffix string          `json:"suffix"`
		Label  string          `json:"label"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Suffix = raw.Suffix
	s.Label = raw.Label
	s.Number = 0

	text := strings.TrimSpace(string(raw.Number))
	if text == "" || text == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.TrimSpace(unquoted)
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("stat %q: number %s is not numeric", raw.Label, raw.Number)
	}
	s.Number = n
	return nil
}

// Render formats the stat at an intermediate counter value
func (s Stat) Render(value int) string {
	return strconv.Itoa(value) + s.Suffix
}

// Feature is one feature card
type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Event is one upcoming event card
type Event struct {
	Type        string `json:"type"` // Category badge, e.g. "meetup" or "release"
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // YYYY-MM-DD
}

// eventDateLayout parses Event.Date
const eventDateLayout = "2006-01-02"

// DayMonth splits the event date into calendar-block parts
// Dates parse in the local timezone so the shown day matches the reader's
// calendar. Unparseable dates degrade to placeholder glyphs.
func (e Event) DayMonth() (day, month string) {
	t, err := time.ParseInLocation(eventDateLayout, e.Date, time.Local)
	if err != nil {
		return "--", "---"
	}
	return strconv.Itoa(t.Day()), strings.ToUpper(t.Format("Jan"))
}

// ContactItem is one way to reach the team
type ContactItem struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// FooterSection groups footer links under a heading
type FooterSection struct {
	Title string       `json:"title"`
	Links []FooterLink `json:"links"`
}

// FooterLink is one footer link
type FooterLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}
