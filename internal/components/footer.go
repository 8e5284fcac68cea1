package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/trexgame/landing/internal/content"
)

func PageFooter(year int, subscribe SubscribeForm) g.Node {
	return Footer(
		Class("bg-gray-900 text-gray-300 py-8 px-4"),

		Div(
			Class("max-w-6xl mx-auto flex flex-col md:flex-row justify-between items-center"),

			Div(
				Class("mb-4 md:mb-0"),
				Span(Class("text-2xl font-bold text-orange-500"), g.Text(content.Meta.Name)),
			),

			Nav(
				Class("flex space-x-4"),
				g.Attr("aria-label", "Legal"),
				g.Group(g.Map(content.LegalLinks, func(l content.Link) g.Node {
					return A(Href(l.Href), Class("hover:text-orange-500 transition-colors"), g.Text(l.Label))
				})),
			),

			Subscribe(subscribe),
		),

		P(
			Class("mt-6 text-center text-sm text-gray-500"),
			g.Text(fmt.Sprintf("© %d %s. All rights reserved.", year, content.Meta.Name)),
		),
	)
}
