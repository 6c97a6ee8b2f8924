// Package page models the retained node tree a landing page is built from.
//
// A Node carries identity (kind, id, classes, attributes), content (text,
// children), and per-frame visual state (rect, alpha, vertical offset). The
// tree is owned by the main loop: all queries and mutations happen between
// frames, so nodes carry no locks.
//
// Lookups return nil when nothing matches and every mutator is nil-receiver
// safe, so a missing node degrades to a silent no-op instead of a crash:
//
//	root.ByID("hero-title").SetText("Welcome")  // fine even if absent
//
// The package also provides visibility observers over node rects, an
// observer registry for bulk teardown, and debounce/throttle wrappers for
// event handlers.
package page
