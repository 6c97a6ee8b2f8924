package page

import "testing"

func nodeAt(y, h int) *Node {
	n := NewNode(KindSection, NodeOpts{})
	n.Rect = Rect{X: 0, Y: y, W: 80, H: h}
	return n
}

func TestObserverFiresOnThresholdCrossing(t *testing.T) {
	reg := NewRegistry()

	var entries []Entry
	obs := reg.NewObserver(func(batch []Entry) {
		entries = append(entries, batch...)
	}, ObserverOpts{Threshold: 0.1})

	n := nodeAt(100, 10)
	obs.Observe(n)

	// Fully outside: initial report, not intersecting
	obs.Evaluate(0, 24)
	if len(entries) != 1 || entries[0].Intersecting {
		t.Fatalf("Expected initial non-intersecting entry, got %+v", entries)
	}

	// Still outside: no transition, no entry
	entries = nil
	obs.Evaluate(10, 24)
	if len(entries) != 0 {
		t.Fatalf("Expected no entries without transition, got %+v", entries)
	}

	// One row visible = ratio 0.1, meets threshold
	obs.Evaluate(77, 24)
	if len(entries) != 1 || !entries[0].Intersecting {
		t.Fatalf("Expected intersecting entry at threshold, got %+v", entries)
	}
	if entries[0].Ratio < 0.09 || entries[0].Ratio > 0.11 {
		t.Errorf("Expected ratio ~0.1, got %f", entries[0].Ratio)
	}

	// Scrolled past: transition back out
	entries = nil
	obs.Evaluate(200, 24)
	if len(entries) != 1 || entries[0].Intersecting {
		t.Fatalf("Expected exit entry, got %+v", entries)
	}
}

func TestObserverMarginTripsEarly(t *testing.T) {
	reg := NewRegistry()

	fired := false
	obs := reg.NewObserver(func(batch []Entry) {
		for _, e := range batch {
			if e.Intersecting {
				fired = true
			}
		}
	}, ObserverOpts{Threshold: 0.1, MarginRows: 5})

	n := nodeAt(107, 10) // 3 rows below the 24-row viewport at top 80
	obs.Observe(n)

	obs.Evaluate(80, 24)
	if !fired {
		t.Error("Expected margin to trip observer before node enters viewport")
	}
}

func TestObserverZeroHeightNeverIntersects(t *testing.T) {
	reg := NewRegistry()

	var got []Entry
	obs := reg.NewObserver(func(batch []Entry) { got = batch }, ObserverOpts{Threshold: 0.1})

	n := nodeAt(5, 0)
	obs.Observe(n)
	obs.Evaluate(0, 24)

	if len(got) != 1 {
		t.Fatalf("Expected initial entry, got %d", len(got))
	}
	if got[0].Intersecting || got[0].Ratio != 0 {
		t.Errorf("Expected zero-height node to never intersect, got %+v", got[0])
	}
}

func TestObserverHalfVisibilityThreshold(t *testing.T) {
	reg := NewRegistry()

	var ratios []float64
	obs := reg.NewObserver(func(batch []Entry) {
		for _, e := range batch {
			if e.Intersecting {
				ratios = append(ratios, e.Ratio)
			}
		}
	}, ObserverOpts{Threshold: 0.5})

	n := nodeAt(20, 10)
	obs.Observe(n)

	// 4 of 10 rows visible: below half, no trigger
	obs.Evaluate(0, 24)
	if len(ratios) != 0 {
		t.Fatalf("Expected no trigger at ratio 0.4, got %v", ratios)
	}

	// 5 of 10 rows visible: exactly half triggers
	obs.Evaluate(1, 24)
	if len(ratios) != 1 {
		t.Fatalf("Expected trigger at ratio 0.5, got %v", ratios)
	}
}

func TestUnobserveStopsReports(t *testing.T) {
	reg := NewRegistry()

	count := 0
	obs := reg.NewObserver(func(batch []Entry) { count += len(batch) }, ObserverOpts{Threshold: 0.1})

	n := nodeAt(0, 10)
	obs.Observe(n)
	obs.Evaluate(0, 24)
	if count != 1 {
		t.Fatalf("Expected 1 entry, got %d", count)
	}

	obs.Unobserve(n)
	obs.Evaluate(100, 24)
	if count != 1 {
		t.Errorf("Expected no entries after Unobserve, got %d", count)
	}
}

func TestRegistryDisconnectAll(t *testing.T) {
	reg := NewRegistry()

	const k = 7
	fired := 0
	nodes := make([]*Node, k)
	observers := make([]*Observer, k)
	for i := 0; i < k; i++ {
		nodes[i] = nodeAt(i*10, 10)
		observers[i] = reg.NewObserver(func(batch []Entry) { fired++ }, ObserverOpts{Threshold: 0.1})
		observers[i].Observe(nodes[i])
	}
	if reg.Len() != k {
		t.Fatalf("Expected %d tracked observers, got %d", k, reg.Len())
	}

	if got := reg.DisconnectAll(); got != k {
		t.Errorf("Expected DisconnectAll to close %d observers, got %d", k, got)
	}
	if reg.Len() != 0 {
		t.Errorf("Expected empty registry, got %d", reg.Len())
	}

	// Disconnected observers are inert
	reg.EvaluateAll(0, 24)
	for _, o := range observers {
		o.Evaluate(0, 24)
		if o.Active() {
			t.Error("Expected observer inactive after DisconnectAll")
		}
	}
	if fired != 0 {
		t.Errorf("Expected no callbacks after disconnect, got %d", fired)
	}
}

func TestDisconnectRemovesFromRegistry(t *testing.T) {
	reg := NewRegistry()
	obs := reg.NewObserver(func([]Entry) {}, ObserverOpts{})

	obs.Disconnect()
	if reg.Len() != 0 {
		t.Errorf("Expected registry emptied by Disconnect, got %d", reg.Len())
	}

	// Double disconnect is safe
	obs.Disconnect()
}
