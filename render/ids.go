package render

// Node ids assigned by the shell and section builders
// Lookups go through page.Node.ByID, which returns nil for absent ids
const (
	IDApp             = "app"
	IDLoadingScreen   = "loading-screen"
	IDLoadingLogo     = "loading-logo"
	IDLoadingStatus   = "loading-status"
	IDCursor          = "cursor"
	IDNavbar          = "navbar"
	IDNavBrand        = "nav-brand"
	IDNavMenu         = "nav-menu"
	IDMenuToggle      = "mobile-menu-toggle"
	IDMain            = "main"
	IDHero            = "hero"
	IDHeroGrid        = "hero-grid"
	IDFloating        = "floating-elements"
	IDHeroTitle       = "hero-title"
	IDHeroTagline     = "hero-tagline"
	IDHeroActions     = "hero-actions"
	IDTerminal        = "terminal-output"
	IDStats           = "stats"
	IDStatsGrid       = "stats-grid"
	IDFeatures        = "features"
	IDFeaturesGrid    = "features-grid"
	IDEvents          = "events"
	IDEventsContainer = "events-container"
	IDContact         = "contact"
	IDContactInfo     = "contact-info"
	IDContactForm     = "contact-form"
	IDContactName     = "contact-name"
	IDContactEmail    = "contact-email"
	IDContactMessage  = "contact-message"
	IDContactSubmit   = "contact-submit"
	IDFooter          = "footer"
	IDFooterLinks     = "footer-links"
	IDFooterBottom    = "footer-bottom"
)

// Classes stamped on built nodes
const (
	ClassReveal        = "reveal"
	ClassNavLink       = "nav-link"
	ClassFormInput     = "form-input"
	ClassError         = "error"
	ClassCTAPrimary    = "cta-primary"
	ClassCTASecondary  = "cta-secondary"
	ClassStatNumber    = "stat-number"
	ClassStatLabel     = "stat-label"
	ClassStatCard      = "stat-card"
	ClassFeatureCard   = "feature-card"
	ClassEventCard     = "event-card"
	ClassContactCard   = "contact-card"
	ClassFooterSection = "footer-section"
	ClassSectionTitle  = "section-title"
	ClassFloat         = "float"
)

// Attributes consumed by the motion and input layers
const (
	TargetAttr   = "data-target"   // Scroll target id on nav links, final value on counters
	SuffixAttr   = "data-suffix"   // Counter suffix, e.g. "%" or "+"
	SpeedAttr    = "data-speed"    // Parallax drift multiplier on floating elements
	HrefAttr     = "data-href"     // External link destination
	LabelAttr    = "data-label"    // Field caption
	RequiredAttr = "data-required" // Field must be non-empty to submit
	FormatAttr   = "data-format"   // Extra field validation, e.g. "email"
)
