package page

import "testing"

func buildTestTree() *Node {
	return NewNode(KindRoot, NodeOpts{ID: "app"},
		NewNode(KindNav, NodeOpts{ID: "navbar"},
			NewNode(KindLink, NodeOpts{Classes: []string{"nav-link"}, Text: "Features"}),
			NewNode(KindLink, NodeOpts{Classes: []string{"nav-link"}, Text: "Events"}),
		),
		NewNode(KindMain, NodeOpts{ID: "main"},
			NewNode(KindSection, NodeOpts{ID: "hero", Classes: []string{"reveal"}},
				NewNode(KindHeading, NodeOpts{ID: "hero-title", Text: "Build faster"}),
			),
			NewNode(KindSection, NodeOpts{ID: "stats", Classes: []string{"reveal"}}),
		),
	)
}

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode(KindCard, NodeOpts{
		ID:      "card-1",
		Classes: []string{"stat-card", "reveal"},
		Attrs:   map[string]string{"data-target": "42"},
		Text:    "x",
	})

	if n.Alpha != 1 {
		t.Errorf("Expected new node alpha 1, got %f", n.Alpha)
	}
	if !n.HasClass("stat-card") || !n.HasClass("reveal") {
		t.Errorf("Expected both classes present, got %v", n.Classes())
	}
	if n.Attr("data-target") != "42" {
		t.Errorf("Expected data-target 42, got %q", n.Attr("data-target"))
	}
}

func TestByID(t *testing.T) {
	root := buildTestTree()

	tests := []struct {
		name  string
		id    string
		found bool
	}{
		{"Root itself", "app", true},
		{"Nested", "hero-title", true},
		{"Missing", "no-such-node", false},
		{"Empty id", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := root.ByID(tt.id)
			if (n != nil) != tt.found {
				t.Errorf("Expected found=%v for %q, got %v", tt.found, tt.id, n)
			}
		})
	}
}

func TestByClassDocumentOrder(t *testing.T) {
	root := buildTestTree()
	reveals := root.ByClass("reveal")

	if len(reveals) != 2 {
		t.Fatalf("Expected 2 reveal nodes, got %d", len(reveals))
	}
	if reveals[0].ID != "hero" || reveals[1].ID != "stats" {
		t.Errorf("Expected document order hero,stats, got %s,%s", reveals[0].ID, reveals[1].ID)
	}
}

func TestNilQueryMutationIsNoop(t *testing.T) {
	root := buildTestTree()

	// Missing target resolves to nil, every mutation must be safe on it
	missing := root.ByID("ghost")
	if missing != nil {
		t.Fatal("Expected nil for missing node")
	}

	missing.SetText("boom")
	missing.AddClass("active")
	missing.RemoveClass("active")
	missing.SetAttr("k", "v")
	missing.Detach()
	missing.Append(NewNode(KindText, NodeOpts{}))

	if missing.HasClass("active") {
		t.Error("Expected HasClass false on nil node")
	}
	if missing.ToggleClass("x") {
		t.Error("Expected ToggleClass false on nil node")
	}
	if got := missing.Attr("k"); got != "" {
		t.Errorf("Expected empty attr on nil node, got %q", got)
	}
}

func TestClassMutation(t *testing.T) {
	n := NewNode(KindSection, NodeOpts{Classes: []string{"reveal"}})

	n.AddClass("active")
	if !n.HasClass("active") {
		t.Error("Expected active after AddClass")
	}

	// Duplicate adds collapse
	n.AddClass("active")
	if got := len(n.Classes()); got != 2 {
		t.Errorf("Expected 2 classes after duplicate add, got %d", got)
	}

	n.RemoveClass("active")
	if n.HasClass("active") {
		t.Error("Expected active removed")
	}

	if !n.ToggleClass("open") {
		t.Error("Expected toggle-on to return true")
	}
	if n.ToggleClass("open") {
		t.Error("Expected toggle-off to return false")
	}
}

func TestAppendReparents(t *testing.T) {
	a := NewNode(KindBox, NodeOpts{ID: "a"})
	b := NewNode(KindBox, NodeOpts{ID: "b"})
	child := NewNode(KindText, NodeOpts{ID: "c"})

	a.Append(child)
	if child.Parent() != a || len(a.Children) != 1 {
		t.Fatal("Expected child under a")
	}

	b.Append(child)
	if child.Parent() != b {
		t.Error("Expected child reparented to b")
	}
	if len(a.Children) != 0 {
		t.Errorf("Expected a emptied, got %d children", len(a.Children))
	}
}

func TestDetach(t *testing.T) {
	root := buildTestTree()
	hero := root.ByID("hero")

	hero.Detach()
	if root.ByID("hero") != nil {
		t.Error("Expected hero gone from tree after Detach")
	}
	if hero.Parent() != nil {
		t.Error("Expected detached node to have no parent")
	}
	// Detached subtree stays queryable
	if hero.ByID("hero-title") == nil {
		t.Error("Expected subtree intact after Detach")
	}
}

func TestRemoveChildren(t *testing.T) {
	root := buildTestTree()
	nav := root.ByID("navbar")

	nav.RemoveChildren()
	if len(nav.Children) != 0 {
		t.Errorf("Expected no children, got %d", len(nav.Children))
	}
	if got := len(root.ByClass("nav-link")); got != 0 {
		t.Errorf("Expected no nav-link nodes after RemoveChildren, got %d", got)
	}
}

func TestWalkStops(t *testing.T) {
	root := buildTestTree()

	visited := 0
	root.Walk(func(n *Node) bool {
		visited++
		return n.ID != "navbar"
	})

	// Root then navbar, walk stops before navbar's children
	if visited != 2 {
		t.Errorf("Expected walk to stop after 2 nodes, got %d", visited)
	}
}

func TestFind(t *testing.T) {
	root := buildTestTree()

	n := root.Find(func(n *Node) bool { return n.Kind == KindHeading })
	if n == nil || n.ID != "hero-title" {
		t.Errorf("Expected hero-title, got %v", n)
	}

	if root.Find(func(n *Node) bool { return false }) != nil {
		t.Error("Expected nil when predicate never matches")
	}
}
