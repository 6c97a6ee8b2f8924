package render

import (
	"github.com/landline-sh/landline/tui"
)

// Overlays holds the page's overlay widget state: the notification toast,
// the modal, and the loading spinner phase. Drawing stays with the view,
// this is pure state the frame loop ticks.
type Overlays struct {
	Toast tui.ToastState
	Modal ModalState

	// SpinnerFrame advances every frame while the loading screen shows
	SpinnerFrame int
}

// ModalState describes the modal overlay
// A blocking modal ignores generic dismissal, only an explicit choice
// like reload or quit takes it down
type ModalState struct {
	Visible  bool
	Blocking bool
	Title    string
	Body     string
	Hint     string
}

// NewOverlays creates empty overlay state
func NewOverlays() *Overlays {
	return &Overlays{}
}

// Notify shows a dismissible toast for the given number of frames
func (o *Overlays) Notify(message string, severity tui.ToastSeverity, frames int) {
	opts := tui.DefaultToastOpts(message, severity)
	opts.Hint = "esc"
	o.Toast.Show(opts, frames)
}

// ShowModal raises the modal
func (o *Overlays) ShowModal(title, body, hint string, blocking bool) {
	o.Modal = ModalState{
		Visible:  true,
		Blocking: blocking,
		Title:    title,
		Body:     body,
		Hint:     hint,
	}
}

// DismissModal lowers the modal unless it is blocking
func (o *Overlays) DismissModal() bool {
	if !o.Modal.Visible || o.Modal.Blocking {
		return false
	}
	o.Modal.Visible = false
	return true
}

// Dismiss closes the topmost dismissible overlay, toast before modal
// Returns false when nothing could be dismissed
func (o *Overlays) Dismiss() bool {
	if o.Toast.Visible {
		o.Toast.Dismiss()
		return true
	}
	return o.DismissModal()
}

// Busy reports whether a blocking modal is up
func (o *Overlays) Busy() bool {
	return o.Modal.Visible && o.Modal.Blocking
}

// Tick advances per-frame overlay state
func (o *Overlays) Tick() {
	o.Toast.Tick()
	o.SpinnerFrame++
}
