package app

import (
	"testing"
	"time"

	"github.com/landline-sh/landline/render"
	"github.com/landline-sh/landline/term"
	"github.com/landline-sh/landline/tui"
)

// fillForm types valid values into every contact field.
func fillForm(t *testing.T, rig *testRig) {
	t.Helper()
	values := map[string]string{
		render.IDContactName:    "Ada",
		render.IDContactEmail:   "ada@example.com",
		render.IDContactMessage: "Looking forward to the next release.",
	}
	for _, f := range rig.c.form.fields {
		v, ok := values[f.node.ID]
		if !ok {
			t.Fatalf("Expected a test value for field %q", f.node.ID)
		}
		f.input.SetValue(v)
	}
}

func fieldNode(t *testing.T, rig *testRig, id string) *formField {
	t.Helper()
	n := rig.c.root.ByID(id)
	if n == nil {
		t.Fatalf("Expected field node %q", id)
	}
	f := rig.c.form.byNode(n)
	if f == nil {
		t.Fatalf("Expected form state for %q", id)
	}
	return f
}

// TestSubmitBlockedWhileInvalid verifies an empty form never starts a
// submission and every required field gets marked.
func TestSubmitBlockedWhileInvalid(t *testing.T) {
	rig := newTestRig(t, 100, 40, nil)
	rig.load(t)

	rig.c.submit()
	if rig.c.form.submitting {
		t.Fatal("Expected submission to be blocked for an empty form")
	}
	if rig.sched.Pending() != 0 {
		t.Error("Expected no delivery timer for a blocked submission")
	}
	for _, id := range []string{render.IDContactName, render.IDContactEmail, render.IDContactMessage} {
		if f := fieldNode(t, rig, id); !f.node.HasClass(render.ClassError) {
			t.Errorf("Expected %q to carry the error mark", id)
		}
	}
}

// TestEmailFormatValidation verifies only the email field blocks on a
// malformed address and a plausible one passes.
func TestEmailFormatValidation(t *testing.T) {
	rig := newTestRig(t, 100, 40, nil)
	rig.load(t)

	fillForm(t, rig)
	email := fieldNode(t, rig, render.IDContactEmail)
	email.input.SetValue("not-an-email")

	rig.c.submit()
	if rig.c.form.submitting {
		t.Fatal("Expected a malformed address to block the submission")
	}
	if !email.node.HasClass(render.ClassError) {
		t.Error("Expected the email field to carry the error mark")
	}
	if name := fieldNode(t, rig, render.IDContactName); name.node.HasClass(render.ClassError) {
		t.Error("Expected the name field to stay unmarked")
	}

	email.input.SetValue("ada@example.com")
	rig.c.submit()
	if !rig.c.form.submitting {
		t.Error("Expected a plausible address to pass validation")
	}
}

// TestEmailHeuristic exercises the lenient address check directly.
func TestEmailHeuristic(t *testing.T) {
	cases := []struct {
		addr string
		ok   bool
	}{
		{"a@b.co", true},
		{"first.last@sub.domain.dev", true},
		{"a@b", false},
		{"@b.co", false},
		{"a@", false},
		{"a@.co", false},
		{"a@b.", false},
		{"a b@c.de", false},
	}
	for _, tc := range cases {
		if got := looksLikeEmail(tc.addr); got != tc.ok {
			t.Errorf("Expected looksLikeEmail(%q) = %v, got %v", tc.addr, tc.ok, got)
		}
	}
}

// TestSubmitSuccessClearsForm verifies the delivered path: spinner
// while pending, success toast with a reference, fields wiped.
func TestSubmitSuccessClearsForm(t *testing.T) {
	rig := newTestRig(t, 100, 40, nil)
	rig.load(t)

	fillForm(t, rig)
	rig.c.submit()
	if !rig.c.form.submitting {
		t.Fatal("Expected a valid form to start submitting")
	}
	if rig.sched.Pending() != 1 {
		t.Fatalf("Expected one delivery timer, got %d", rig.sched.Pending())
	}
	rig.c.form.pendingFail = false
	ref := rig.c.form.pendingRef
	if len(ref) != 8 {
		t.Errorf("Expected an 8-character reference, got %q", ref)
	}

	rig.sched.Advance(time.Second)
	rig.c.handleEvent(rig.waitEvent(t))

	if rig.c.form.submitting {
		t.Error("Expected submission to settle after delivery")
	}
	toast := rig.c.overlays.Toast
	if !toast.Visible || toast.Opts.Severity != tui.ToastSuccess {
		t.Fatalf("Expected a success toast, got %+v", toast.Opts)
	}
	if got := rig.c.form.value(render.IDContactName); got != "" {
		t.Errorf("Expected the form to be cleared, name still %q", got)
	}
}

// TestSubmitFailureKeepsDraft verifies a busy line reports the error
// and leaves the draft intact for a retry.
func TestSubmitFailureKeepsDraft(t *testing.T) {
	rig := newTestRig(t, 100, 40, nil)
	rig.load(t)

	fillForm(t, rig)
	rig.c.submit()
	if !rig.c.form.submitting {
		t.Fatal("Expected a valid form to start submitting")
	}
	rig.c.form.pendingFail = true

	rig.sched.Advance(time.Second)
	rig.c.handleEvent(rig.waitEvent(t))

	toast := rig.c.overlays.Toast
	if !toast.Visible || toast.Opts.Severity != tui.ToastError {
		t.Fatalf("Expected an error toast, got %+v", toast.Opts)
	}
	if got := rig.c.form.value(render.IDContactName); got != "Ada" {
		t.Errorf("Expected the draft to survive, name is %q", got)
	}
	if rig.c.form.submitting {
		t.Error("Expected the form to accept a retry")
	}
}

// TestDoubleSubmitIgnored verifies a second send while one is pending
// does nothing.
func TestDoubleSubmitIgnored(t *testing.T) {
	rig := newTestRig(t, 100, 40, nil)
	rig.load(t)

	fillForm(t, rig)
	rig.c.submit()
	rig.c.submit()
	if rig.sched.Pending() != 1 {
		t.Errorf("Expected a single delivery timer, got %d", rig.sched.Pending())
	}
}

// TestFocusedFieldCapturesKeys verifies global shortcuts become plain
// input while a field is focused, and typing clears its error mark.
func TestFocusedFieldCapturesKeys(t *testing.T) {
	rig := newTestRig(t, 100, 40, nil)
	rig.load(t)

	rig.c.submit() // mark every field
	name := fieldNode(t, rig, render.IDContactName)
	rig.c.focusNode(name.node)

	rig.typeRune('q')
	if rig.c.quit {
		t.Fatal("Expected q to type into the field, not quit")
	}
	if got := name.input.Value(); got != "q" {
		t.Errorf("Expected the field to read %q, got %q", "q", got)
	}
	if name.node.HasClass(render.ClassError) {
		t.Error("Expected typing to clear the error mark")
	}

	rig.key(term.KeyEscape)
	if rig.c.focused() != nil {
		t.Error("Expected Esc to release field focus")
	}
	rig.typeRune('q')
	if !rig.c.quit {
		t.Error("Expected q to quit once focus is released")
	}
}

// TestEnterSubmitsFromField verifies Enter inside a field sends the
// form instead of inserting anything.
func TestEnterSubmitsFromField(t *testing.T) {
	rig := newTestRig(t, 100, 40, nil)
	rig.load(t)

	fillForm(t, rig)
	msg := fieldNode(t, rig, render.IDContactMessage)
	rig.c.focusNode(msg.node)

	rig.key(term.KeyEnter)
	if !rig.c.form.submitting {
		t.Error("Expected Enter in a field to submit the form")
	}
}

// TestFieldTabOrder verifies Tab moves focus from one field to the
// next instead of inserting a tab character.
func TestFieldTabOrder(t *testing.T) {
	rig := newTestRig(t, 100, 40, nil)
	rig.load(t)

	name := fieldNode(t, rig, render.IDContactName)
	email := fieldNode(t, rig, render.IDContactEmail)

	rig.c.focusNode(name.node)
	rig.key(term.KeyTab)
	if rig.c.focused() != email.node {
		t.Errorf("Expected Tab to focus the email field, got %+v", rig.c.focused())
	}
	rig.key(term.KeyBacktab)
	if rig.c.focused() != name.node {
		t.Errorf("Expected Shift-Tab to return to the name field, got %+v", rig.c.focused())
	}
	if got := name.input.Value(); got != "" {
		t.Errorf("Expected no characters inserted while tabbing, got %q", got)
	}
}
