package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/trexgame/landing/internal/content"
)

func HowItWorks(launchURL string) g.Node {
	return Section(
		ID("how-it-works"),
		Class("relative py-24 bg-gray-900 overflow-hidden"),

		Div(Class("absolute inset-0 bg-gradient-to-b from-orange-500/5 to-transparent"), g.Attr("data-drift", "")),

		Div(
			Class("relative max-w-5xl mx-auto px-4 sm:px-6 lg:px-8"),

			SectionHeading("",
				"How to Get Started",
				"Begin your journey in the TrexGame universe with these simple steps",
			),

			Ol(
				Class("relative space-y-8"),
				g.Group(g.Map(content.Steps, func(s content.Step) g.Node {
					return Li(
						Class("group relative flex items-start gap-6 p-6 rounded-2xl bg-gray-800/50 border border-gray-700/50 hover:border-orange-500/30 transition-colors reveal"),
						Div(
							Class("flex-shrink-0 w-12 h-12 rounded-full flex items-center justify-center text-white font-bold bg-gradient-to-r "+s.Gradient),
							g.Attr("aria-label", "Step "+strconv.Itoa(s.Number)),
							g.Text(strconv.Itoa(s.Number)),
						),
						Div(
							Class("flex-1"),
							Div(
								Class("flex items-center gap-3 mb-2"),
								Icon(s.Icon+" size-5 text-orange-400", ""),
								H3(Class("text-xl font-semibold text-white"), g.Text(s.Title)),
								Span(Class("ml-auto text-sm text-gray-500"), g.Text(s.Stats)),
							),
							P(Class("text-gray-400 mb-4"), g.Text(s.Description)),
							A(
								Href(launchURL),
								g.Attr("target", "_blank"),
								g.Attr("rel", "noopener"),
								Class("inline-flex items-center gap-1 text-orange-500 hover:text-orange-400 text-sm font-medium"),
								g.Text(s.Action),
								Icon("lucide--chevron-right size-4", ""),
							),
						),
					)
				})),
			),

			Div(
				Class("mt-16 text-center reveal"),
				A(
					Href(launchURL),
					g.Attr("target", "_blank"),
					g.Attr("rel", "noopener"),
					Class("btn-primary btn-lg gap-2"),
					Icon("lucide--play size-5", ""),
					g.Text("Start Your Journey"),
				),
			),
		),
	)
}
