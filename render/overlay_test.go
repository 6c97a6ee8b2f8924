package render

import (
	"testing"

	"github.com/landline-sh/landline/tui"
)

func TestOverlaysToastLifecycle(t *testing.T) {
	o := NewOverlays()

	o.Notify("saved", tui.ToastSuccess, 3)
	if !o.Toast.Visible {
		t.Fatal("Expected toast visible after notify")
	}

	o.Tick()
	o.Tick()
	if !o.Toast.Visible {
		t.Fatal("Expected toast still visible mid-countdown")
	}
	o.Tick()
	if o.Toast.Visible {
		t.Error("Expected toast auto-dismissed after countdown")
	}
}

func TestOverlaysDismissOrder(t *testing.T) {
	o := NewOverlays()
	o.ShowModal("Hold on", "something happened", "esc", false)
	o.Notify("note", tui.ToastInfo, -1)

	if !o.Dismiss() {
		t.Fatal("Expected first dismiss to succeed")
	}
	if o.Toast.Visible {
		t.Error("Expected toast dismissed first")
	}
	if !o.Modal.Visible {
		t.Error("Expected modal still up after first dismiss")
	}

	if !o.Dismiss() {
		t.Fatal("Expected second dismiss to succeed")
	}
	if o.Modal.Visible {
		t.Error("Expected modal dismissed second")
	}

	if o.Dismiss() {
		t.Error("Expected nothing left to dismiss")
	}
}

func TestBlockingModalRefusesDismissal(t *testing.T) {
	o := NewOverlays()
	o.ShowModal("Failed to load", "content unavailable", "r to retry", true)

	if o.Dismiss() {
		t.Error("Expected blocking modal to refuse dismissal")
	}
	if !o.Modal.Visible {
		t.Error("Expected blocking modal still up")
	}
	if !o.Busy() {
		t.Error("Expected overlays to report busy")
	}
}
