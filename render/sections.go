package render

import (
	"log/slog"
	"strconv"

	"github.com/landline-sh/landline/content"
	"github.com/landline-sh/landline/page"
)

// Skeleton names registered by NewRenderer
const (
	SkeletonStatCard      = "stat-card"
	SkeletonFeatureCard   = "feature-card"
	SkeletonEventItem     = "event-item"
	SkeletonContactItem   = "contact-item"
	SkeletonFooterSection = "footer-section"
)

// Renderer builds and populates page trees from content documents
type Renderer struct {
	skeletons *Registry
	log       *slog.Logger
}

// NewRenderer creates a renderer with the builtin skeletons registered
func NewRenderer(log *slog.Logger) *Renderer {
	if log == nil {
		log = slog.Default()
	}
	r := &Renderer{
		skeletons: NewRegistry(),
		log:       log,
	}
	registerBuiltins(r.skeletons)
	return r
}

// Skeletons exposes the registry so callers can add or replace factories
func (r *Renderer) Skeletons() *Registry {
	return r.skeletons
}

func registerBuiltins(reg *Registry) {
	reg.Register(SkeletonStatCard, func() *page.Node {
		return page.NewNode(page.KindCard, page.NodeOpts{Classes: []string{ClassStatCard, ClassReveal}},
			page.NewNode(page.KindText, page.NodeOpts{
				Classes: []string{ClassStatNumber},
				Attrs:   map[string]string{SlotAttr: "value"},
			}),
			page.NewNode(page.KindText, page.NodeOpts{
				Classes: []string{ClassStatLabel},
				Attrs:   map[string]string{SlotAttr: "label"},
			}),
		)
	})

	reg.Register(SkeletonFeatureCard, func() *page.Node {
		return page.NewNode(page.KindCard, page.NodeOpts{Classes: []string{ClassFeatureCard, ClassReveal}},
			page.NewNode(page.KindIcon, page.NodeOpts{Attrs: map[string]string{SlotAttr: "icon"}}),
			page.NewNode(page.KindHeading, page.NodeOpts{Attrs: map[string]string{SlotAttr: "title"}}),
			page.NewNode(page.KindText, page.NodeOpts{Attrs: map[string]string{SlotAttr: "description"}}),
		)
	})

	reg.Register(SkeletonEventItem, func() *page.Node {
		return page.NewNode(page.KindCard, page.NodeOpts{Classes: []string{ClassEventCard, ClassReveal}},
			page.NewNode(page.KindBox, page.NodeOpts{Classes: []string{"event-date"}},
				page.NewNode(page.KindText, page.NodeOpts{
					Classes: []string{"event-day"},
					Attrs:   map[string]string{SlotAttr: "day"},
				}),
				page.NewNode(page.KindText, page.NodeOpts{
					Classes: []string{"event-month"},
					Attrs:   map[string]string{SlotAttr: "month"},
				}),
			),
			page.NewNode(page.KindBox, page.NodeOpts{Classes: []string{"event-body"}},
				page.NewNode(page.KindText, page.NodeOpts{
					Classes: []string{"event-type"},
					Attrs:   map[string]string{SlotAttr: "type"},
				}),
				page.NewNode(page.KindHeading, page.NodeOpts{Attrs: map[string]string{SlotAttr: "title"}}),
				page.NewNode(page.KindText, page.NodeOpts{Attrs: map[string]string{SlotAttr: "description"}}),
			),
		)
	})

	reg.Register(SkeletonContactItem, func() *page.Node {
		return page.NewNode(page.KindCard, page.NodeOpts{Classes: []string{ClassContactCard, ClassReveal}},
			page.NewNode(page.KindIcon, page.NodeOpts{Attrs: map[string]string{SlotAttr: "icon"}}),
			page.NewNode(page.KindHeading, page.NodeOpts{Attrs: map[string]string{SlotAttr: "title"}}),
			page.NewNode(page.KindText, page.NodeOpts{
				Classes: []string{"contact-value"},
				Attrs:   map[string]string{SlotAttr: "value"},
			}),
			page.NewNode(page.KindText, page.NodeOpts{Attrs: map[string]string{SlotAttr: "description"}}),
		)
	})

	reg.Register(SkeletonFooterSection, func() *page.Node {
		return page.NewNode(page.KindBox, page.NodeOpts{Classes: []string{ClassFooterSection}},
			page.NewNode(page.KindHeading, page.NodeOpts{Attrs: map[string]string{SlotAttr: "title"}}),
			page.NewNode(page.KindList, page.NodeOpts{Attrs: map[string]string{SlotAttr: "links"}}),
		)
	})
}

// BuildShell creates the minimal tree shown while content loads:
// the loading overlay and the cursor, nothing else
func (r *Renderer) BuildShell() *page.Node {
	return page.NewNode(page.KindRoot, page.NodeOpts{ID: IDApp},
		page.NewNode(page.KindOverlay, page.NodeOpts{ID: IDLoadingScreen},
			page.NewNode(page.KindHeading, page.NodeOpts{ID: IDLoadingLogo, Text: "landline"}),
			page.NewNode(page.KindText, page.NodeOpts{ID: IDLoadingStatus, Text: "dialing"}),
		),
		page.NewNode(page.KindOverlay, page.NodeOpts{ID: IDCursor, Text: "◆"}),
	)
}

// Populate renders a document into a shell, replacing any previous content
// Overlays are re-appended afterwards so they stay last in draw order
func (r *Renderer) Populate(root *page.Node, doc *content.Document) {
	if root == nil || doc == nil {
		return
	}
	for _, id := range []string{IDNavbar, IDMain, IDFooter} {
		root.ByID(id).Detach()
	}
	loading := root.ByID(IDLoadingScreen)
	cursor := root.ByID(IDCursor)

	root.Append(
		buildNavbar(doc.Site.Name),
		buildMain(doc),
		buildFooter(doc.Site),
	)
	root.Append(loading, cursor)

	r.RenderNav(root, doc.Site.Nav)
	r.RenderStats(root, doc.Stats)
	r.RenderFeatures(root, doc.Features)
	r.RenderEvents(root, doc.Events)
	r.RenderContact(root, doc.Contact)
	r.RenderFooter(root, doc.Footer)
}

// BuildPage builds a shell and populates it in one step
func (r *Renderer) BuildPage(doc *content.Document) *page.Node {
	root := r.BuildShell()
	r.Populate(root, doc)
	return root
}

// RenderNav rebuilds the nav menu with one link per item
// Nav links are plain nodes, they never reveal so no skeleton is involved
func (r *Renderer) RenderNav(root *page.Node, items []content.NavItem) {
	menu := root.ByID(IDNavMenu)
	if menu == nil || items == nil {
		return
	}
	menu.RemoveChildren()
	for _, item := range items {
		menu.Append(page.NewNode(page.KindLink, page.NodeOpts{
			Classes: []string{ClassNavLink},
			Attrs:   map[string]string{TargetAttr: item.Target},
			Text:    item.Label,
		}))
	}
}

// RenderStats fills the stats grid, counters starting at zero
func (r *Renderer) RenderStats(root *page.Node, stats []content.Stat) {
	if stats == nil {
		return
	}
	r.renderList(root.ByID(IDStatsGrid), SkeletonStatCard, len(stats), func(i int, item *page.Node) {
		value := Slot(item, "value")
		value.SetText(stats[i].Render(0))
		value.SetAttr(TargetAttr, strconv.Itoa(stats[i].Number))
		value.SetAttr(SuffixAttr, stats[i].Suffix)
		Slot(item, "label").SetText(stats[i].Label)
	})
}

// RenderFeatures fills the features grid
func (r *Renderer) RenderFeatures(root *page.Node, features []content.Feature) {
	if features == nil {
		return
	}
	r.renderList(root.ByID(IDFeaturesGrid), SkeletonFeatureCard, len(features), func(i int, item *page.Node) {
		Fill(item, map[string]string{
			"icon":        features[i].Icon,
			"title":       features[i].Title,
			"description": features[i].Description,
		})
	})
}

// RenderEvents fills the events list with calendar-block cards
func (r *Renderer) RenderEvents(root *page.Node, events []content.Event) {
	if events == nil {
		return
	}
	r.renderList(root.ByID(IDEventsContainer), SkeletonEventItem, len(events), func(i int, item *page.Node) {
		day, month := events[i].DayMonth()
		Fill(item, map[string]string{
			"day":         day,
			"month":       month,
			"type":        events[i].Type,
			"title":       events[i].Title,
			"description": events[i].Description,
		})
	})
}

// RenderContact fills the contact info cards
func (r *Renderer) RenderContact(root *page.Node, items []content.ContactItem) {
	if items == nil {
		return
	}
	r.renderList(root.ByID(IDContactInfo), SkeletonContactItem, len(items), func(i int, item *page.Node) {
		Fill(item, map[string]string{
			"icon":        items[i].Icon,
			"title":       items[i].Title,
			"value":       items[i].Value,
			"description": items[i].Description,
		})
	})
}

// RenderFooter fills the footer link grid
func (r *Renderer) RenderFooter(root *page.Node, sections []content.FooterSection) {
	if sections == nil {
		return
	}
	r.renderList(root.ByID(IDFooterLinks), SkeletonFooterSection, len(sections), func(i int, item *page.Node) {
		Slot(item, "title").SetText(sections[i].Title)
		links := Slot(item, "links")
		for _, l := range sections[i].Links {
			links.Append(page.NewNode(page.KindLink, page.NodeOpts{
				Text:  l.Text,
				Attrs: map[string]string{HrefAttr: l.URL},
			}))
		}
	})
}

// renderList clears the container and renders a fresh batch into it, so
// section renderers stay idempotent across repeated Populate calls.
func (r *Renderer) renderList(container *page.Node, skeleton string, count int, fill func(int, *page.Node)) {
	ClearContainer(container)
	if err := r.skeletons.RenderList(container, skeleton, count, fill); err != nil {
		r.log.Warn("render list failed", "skeleton", skeleton, "error", err)
	}
}

func buildNavbar(brand string) *page.Node {
	return page.NewNode(page.KindNav, page.NodeOpts{ID: IDNavbar},
		page.NewNode(page.KindText, page.NodeOpts{ID: IDNavBrand, Text: brand}),
		page.NewNode(page.KindList, page.NodeOpts{ID: IDNavMenu}),
		page.NewNode(page.KindButton, page.NodeOpts{ID: IDMenuToggle, Text: "≡"}),
	)
}

func buildMain(doc *content.Document) *page.Node {
	return page.NewNode(page.KindMain, page.NodeOpts{ID: IDMain},
		buildHero(doc.Hero),
		buildSection(IDStats, "By the numbers",
			page.NewNode(page.KindGrid, page.NodeOpts{ID: IDStatsGrid})),
		buildSection(IDFeatures, "Features",
			page.NewNode(page.KindGrid, page.NodeOpts{ID: IDFeaturesGrid})),
		buildSection(IDEvents, "Upcoming events",
			page.NewNode(page.KindList, page.NodeOpts{ID: IDEventsContainer})),
		buildSection(IDContact, "Get in touch",
			page.NewNode(page.KindGrid, page.NodeOpts{ID: IDContactInfo}),
			buildContactForm()),
	)
}

func buildSection(id, title string, children ...*page.Node) *page.Node {
	section := page.NewNode(page.KindSection, page.NodeOpts{ID: id},
		page.NewNode(page.KindHeading, page.NodeOpts{
			Classes: []string{ClassSectionTitle, ClassReveal},
			Text:    title,
		}))
	return section.Append(children...)
}

func buildHero(h content.Hero) *page.Node {
	return page.NewNode(page.KindSection, page.NodeOpts{ID: IDHero},
		page.NewNode(page.KindBox, page.NodeOpts{ID: IDHeroGrid}),
		buildFloatingElements(),
		page.NewNode(page.KindHeading, page.NodeOpts{ID: IDHeroTitle, Text: h.Title}),
		page.NewNode(page.KindText, page.NodeOpts{ID: IDHeroTagline, Text: h.Tagline}),
		page.NewNode(page.KindBox, page.NodeOpts{ID: IDHeroActions},
			page.NewNode(page.KindButton, page.NodeOpts{Classes: []string{ClassCTAPrimary}, Text: h.PrimaryCTA}),
			page.NewNode(page.KindButton, page.NodeOpts{Classes: []string{ClassCTASecondary}, Text: h.SecondaryCTA}),
		),
		page.NewNode(page.KindTerminal, page.NodeOpts{ID: IDTerminal}),
	)
}

func buildFloatingElements() *page.Node {
	floats := []struct {
		glyph, speed string
	}{
		{"◆", "0.5"},
		{"●", "0.8"},
		{"▲", "1.2"},
		{"✦", "0.6"},
	}
	box := page.NewNode(page.KindBox, page.NodeOpts{ID: IDFloating})
	for _, f := range floats {
		box.Append(page.NewNode(page.KindIcon, page.NodeOpts{
			Classes: []string{ClassFloat},
			Attrs:   map[string]string{SpeedAttr: f.speed},
			Text:    f.glyph,
		}))
	}
	return box
}

func buildContactForm() *page.Node {
	return page.NewNode(page.KindForm, page.NodeOpts{ID: IDContactForm},
		page.NewNode(page.KindField, page.NodeOpts{
			ID:      IDContactName,
			Classes: []string{ClassFormInput},
			Attrs:   map[string]string{LabelAttr: "Name", RequiredAttr: "true"},
		}),
		page.NewNode(page.KindField, page.NodeOpts{
			ID:      IDContactEmail,
			Classes: []string{ClassFormInput},
			Attrs:   map[string]string{LabelAttr: "Email", RequiredAttr: "true", FormatAttr: "email"},
		}),
		page.NewNode(page.KindField, page.NodeOpts{
			ID:      IDContactMessage,
			Classes: []string{ClassFormInput},
			Attrs:   map[string]string{LabelAttr: "Message", RequiredAttr: "true"},
		}),
		page.NewNode(page.KindButton, page.NodeOpts{
			ID:      IDContactSubmit,
			Classes: []string{ClassCTAPrimary},
			Text:    "Send message",
		}),
	)
}

func buildFooter(site content.Site) *page.Node {
	bottom := site.Name
	if site.Version != "" {
		bottom += " v" + site.Version
	}
	return page.NewNode(page.KindFooter, page.NodeOpts{ID: IDFooter},
		page.NewNode(page.KindGrid, page.NodeOpts{ID: IDFooterLinks}),
		page.NewNode(page.KindText, page.NodeOpts{ID: IDFooterBottom, Text: bottom}),
	)
}
