// Package components holds the gomponents building blocks shared by the pages.
package components

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// ErrorColor is the inline validation text color.
const ErrorColor = "#D77A61"

const inputClass = "w-full px-4 py-2 border border-gray-300 rounded-md focus:outline-none focus:ring-2 focus:ring-[#4C8DAE]"

// FieldErrorID is the element id of a field's inline error slot.
func FieldErrorID(field string) string {
	return field + "-error"
}

// FieldError is the inline error slot under an input. It is always rendered
// so htmx can swap it in place.
func FieldError(field, message string) cmp.Node {
	return g.Span(
		g.ID(FieldErrorID(field)),
		g.Class("text-sm"),
		g.Style("color: "+ErrorColor),
		cmp.If(message != "", g.Role("alert")),
		cmp.Text(message),
	)
}

// InputProps describes one form input.
type InputProps struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	Value       string
	Error       string
	Disabled    bool
	// Extra attributes such as htmx triggers.
	Attrs []cmp.Node
}

// Input renders a labelled input with its error slot.
func Input(p InputProps) cmp.Node {
	typ := p.Type
	if typ == "" {
		typ = "text"
	}
	return g.Div(
		g.Class("mb-4"),
		cmp.If(p.Label != "", g.Label(g.For(p.Name), g.Class("block text-sm font-medium text-gray-700 mb-1"), cmp.Text(p.Label))),
		g.Input(
			g.ID(p.Name),
			g.Name(p.Name),
			g.Type(typ),
			g.Class(inputClass),
			cmp.If(p.Placeholder != "", g.Placeholder(p.Placeholder)),
			g.Value(p.Value),
			cmp.If(p.Disabled, g.Disabled()),
			cmp.If(p.Error != "", g.Aria("invalid", "true")),
			cmp.Group(p.Attrs),
		),
		FieldError(p.Name, p.Error),
	)
}

// Alert is a blocking error banner.
func Alert(message string) cmp.Node {
	if message == "" {
		return nil
	}
	return g.Div(
		g.Class("mb-4 rounded-md border border-red-300 bg-red-50 px-4 py-3 text-red-800"),
		g.Role("alert"),
		cmp.Text(message),
	)
}

// PrimaryButton is the submit button used by every form.
func PrimaryButton(label string, disabled bool, attrs ...cmp.Node) cmp.Node {
	return g.Button(
		g.Type("submit"),
		g.Class("bg-[#4C8DAE] text-white px-6 py-2 rounded-md hover:bg-[#3A6B8E] transition-colors"),
		cmp.If(disabled, g.Disabled()),
		cmp.Group(attrs),
		cmp.Text(label),
	)
}

// LinkButton is an anchor styled as a secondary button.
func LinkButton(href, label string) cmp.Node {
	return g.A(
		g.Href(href),
		g.Class("inline-block text-[#4C8DAE] border border-[#4C8DAE] px-6 py-2 rounded-md hover:bg-[#E9E4D4] transition-colors"),
		cmp.Text(label),
	)
}

// ChangeTrigger posts a single field to url whenever it changes and swaps
// the response into that field's error slot.
func ChangeTrigger(url, field string) []cmp.Node {
	return []cmp.Node{
		hx.Post(url),
		hx.Trigger("change"),
		hx.Target("#" + FieldErrorID(field)),
		hx.Swap("outerHTML"),
	}
}
