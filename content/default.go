package content

// Default returns the starter document written by `landline init` and used
// as fixture content in tests
func Default() *Document {
	return &Document{
		Site: Site{
			Name:    "LANDLINE",
			Version: "1.2.0",
			Nav: []NavItem{
				{Label: "Features", Target: "features"},
				{Label: "Stats", Target: "stats"},
				{Label: "Events", Target: "events"},
				{Label: "Contact", Target: "contact"},
			},
		},
		Hero: Hero{
			Title:   "Ship your landing page as a binary",
			Tagline: "One static file, zero runtime dependencies, renders anywhere a terminal does.",
			Terminal: []string{
				"$ landline serve ./content.json",
				"listening on :7634",
				"page ready in 2.0s",
			},
			PrimaryCTA:   "Get Started",
			SecondaryCTA: "View Source",
		},
		Stats: []Stat{
			{Number: 42, Suffix: "%", Label: "Faster first paint"},
			{Number: 12000, Suffix: "+", Label: "Installs"},
			{Number: 99, Suffix: "%", Label: "Uptime"},
			{Number: 38, Suffix: "", Label: "Contributors"},
		},
		Features: []Feature{
			{Icon: "⌁", Title: "Zero assets", Description: "No bundler, no CDN, no font pipeline. Content ships as one JSON document."},
			{Icon: "⌨", Title: "Keyboard first", Description: "Every interaction reachable without a pointer. Mouse supported where the terminal allows."},
			{Icon: "◱", Title: "Responsive cells", Description: "Layouts reflow against column breakpoints the way CSS grids track pixels."},
			{Icon: "✓", Title: "Deterministic", Description: "Same content, same frames. Animations derive from a clock you can fake in tests."},
		},
		Events: []Event{
			{Type: "release", Title: "v1.0 release stream", Description: "Live walkthrough of the page pipeline, from JSON to cells.", Date: "2026-09-18"},
			{Type: "meetup", Title: "Terminal UI meetup", Description: "Lightning talks on text-mode interfaces, landline demo included.", Date: "2026-10-02"},
			{Type: "workshop", Title: "Plain-text web workshop", Description: "Build and publish a landline page from scratch in an afternoon.", Date: "2026-11-14"},
		},
		Contact: []ContactItem{
			{Icon: "✉", Title: "Email", Value: "hello@landline.sh", Description: "We answer within a day"},
			{Icon: "◈", Title: "Discord", Value: "discord.gg/landline", Description: "Live help from the maintainers"},
			{Icon: "⌂", Title: "Location", Value: "Distributed", Description: "Thirteen timezones and counting"},
		},
		Footer: []FooterSection{
			{
				Title: "Product",
				Links: []FooterLink{
					{Text: "Download", URL: "https://landline.sh/download"},
					{Text: "Changelog", URL: "https://landline.sh/changelog"},
					{Text: "Themes", URL: "https://landline.sh/themes"},
				},
			},
			{
				Title: "Resources",
				Links: []FooterLink{
					{Text: "Docs", URL: "https://landline.sh/docs"},
					{Text: "Content schema", URL: "https://landline.sh/docs/schema"},
				},
			},
			{
				Title: "Community",
				Links: []FooterLink{
					{Text: "Source", URL: "https://github.com/landline-sh/landline"},
					{Text: "Discord", URL: "https://discord.gg/landline"},
				},
			},
		},
	}
}
