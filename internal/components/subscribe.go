package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Subscribe form sources.
const (
	SourceFooter    = "footer"
	SourceCommunity = "community"
)

type SubscribeForm struct {
	Source string
	Email  string
	Error  string
}

// Subscribe renders an email capture form. After a successful submit the
// server answers with the same form reset to empty.
func Subscribe(f SubscribeForm) g.Node {
	placeholder, button := "Subscribe for updates", g.Node(Icon("lucide--chevron-right size-5", "Subscribe"))
	formClass := "flex mt-4 md:mt-0"
	inputClass := "p-2 rounded-l-md border border-gray-700 bg-gray-800 text-gray-100 focus:outline-none focus:border-orange-500"
	if f.Source == SourceCommunity {
		placeholder, button = "Enter your email", g.Text("Subscribe")
		formClass = "flex flex-col sm:flex-row gap-3 max-w-md mx-auto"
		inputClass = "flex-1 px-4 py-3 rounded-lg border border-gray-700 bg-gray-800 text-gray-100 focus:outline-none focus:border-orange-500"
	}

	errID := "subscribe-error-" + f.Source

	return Form(
		ID("subscribe-"+f.Source),
		Method("post"),
		Action("/subscribe"),
		Class("subscribe-form"),
		g.Attr("data-subscribe", ""),
		Div(
			Class(formClass),
			Input(Type("hidden"), Name("source"), Value(f.Source)),
			Input(
				Type("email"),
				Name("email"),
				Placeholder(placeholder),
				Value(f.Email),
				Required(),
				AutoComplete("email"),
				g.Attr("aria-label", "Email address"),
				Class(inputClass),
				g.If(f.Error != "", g.Group([]g.Node{
					g.Attr("aria-invalid", "true"),
					g.Attr("aria-describedby", errID),
				})),
			),
			Button(
				Type("submit"),
				Class(classIf("bg-orange-500 hover:bg-orange-600 text-white font-semibold", f.Source == SourceCommunity, "px-6 py-3 rounded-lg", "px-3 rounded-r-md")),
				button,
			),
		),
		g.If(f.Error != "",
			P(ID(errID), Class("mt-2 text-sm text-red-400"), g.Attr("role", "alert"), g.Text(f.Error)),
		),
	)
}
