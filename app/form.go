package app

import (
	"strings"

	"github.com/google/uuid"

	"github.com/landline-sh/landline/motion"
	"github.com/landline-sh/landline/page"
	"github.com/landline-sh/landline/render"
	"github.com/landline-sh/landline/tui"
)

// formField pairs a field node with its editable state. The node
// carries the label, required flag and validation format as
// attributes; the input holds what the user typed.
type formField struct {
	node  *page.Node
	input *tui.TextFieldState
}

func (f *formField) label() string {
	return f.node.Attr(render.LabelAttr)
}

func (f *formField) required() bool {
	return f.node.Attr(render.RequiredAttr) == "true"
}

// formState tracks the contact form between submits. A submission in
// flight parks its pre-decided outcome here until the wake event
// lands it.
type formState struct {
	fields []*formField

	submitting  bool
	pendingFail bool
	pendingRef  string
}

// newFormState binds editable state to every field node under the
// contact form, in document order.
func newFormState(root *page.Node) *formState {
	fs := &formState{}
	form := root.ByID(render.IDContactForm)
	if form == nil {
		return fs
	}
	for _, n := range form.ByKind(page.KindField) {
		fs.fields = append(fs.fields, &formField{
			node:  n,
			input: tui.NewTextFieldState(""),
		})
	}
	return fs
}

// byNode finds the field backing a node, nil when the node is not a
// form field.
func (fs *formState) byNode(n *page.Node) *formField {
	for _, f := range fs.fields {
		if f.node == n {
			return f
		}
	}
	return nil
}

func (fs *formState) value(id string) string {
	for _, f := range fs.fields {
		if f.node.ID == id {
			return strings.TrimSpace(f.input.Value())
		}
	}
	return ""
}

// validate marks every offending field and reports whether the form
// can be sent. Marks are drawn as the error style and cleared again
// the moment the user edits the field.
func (fs *formState) validate(an *motion.Animator) bool {
	ok := true
	for _, f := range fs.fields {
		if fieldValid(f) {
			f.node.RemoveClass(render.ClassError)
			continue
		}
		ok = false
		f.node.AddClass(render.ClassError)
		an.Pulse(f.node)
	}
	return ok
}

func fieldValid(f *formField) bool {
	v := strings.TrimSpace(f.input.Value())
	if f.required() && v == "" {
		return false
	}
	if f.node.Attr(render.FormatAttr) == "email" && v != "" && !looksLikeEmail(v) {
		return false
	}
	return true
}

// looksLikeEmail applies the lenient something@domain.tld check, the
// point is catching typos, not enforcing the RFC.
func looksLikeEmail(v string) bool {
	at := strings.IndexByte(v, '@')
	if at <= 0 || at == len(v)-1 {
		return false
	}
	domain := v[at+1:]
	dot := strings.IndexByte(domain, '.')
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}
	return !strings.ContainsAny(v, " \t")
}

// reset clears all fields and marks after a delivered submission.
func (fs *formState) reset() {
	for _, f := range fs.fields {
		f.input.Clear()
		f.node.RemoveClass(render.ClassError)
	}
}

// editingField returns the focused form field, nil when focus is
// elsewhere on the page.
func (c *Controller) editingField() *formField {
	if c.form == nil {
		return nil
	}
	n := c.focused()
	if n == nil || n.Kind != page.KindField {
		return nil
	}
	return c.form.byNode(n)
}

// newRef mints the short reference shown in the delivery toast.
func newRef() string {
	return uuid.New().String()[:8]
}
