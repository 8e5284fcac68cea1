package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/trexgame/landing/internal/content"
)

func Features(launchURL string) g.Node {
	return Section(
		ID("features"),
		Class("relative py-24 bg-gradient-to-b from-gray-800 to-gray-900 overflow-hidden"),

		Div(Class("absolute inset-0 dot-grid opacity-50"), g.Attr("data-drift", "")),

		Div(
			Class("relative max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),

			SectionHeading("",
				"Why Play TrexGame?",
				"Discover a revolutionary gaming experience that combines thrilling gameplay with blockchain technology",
			),

			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(g.Map(content.Features, func(f content.Feature) g.Node {
					return Div(
						Class("group relative p-8 rounded-2xl overflow-hidden bg-gray-800/50 backdrop-blur-sm border border-gray-700/50 hover:bg-gray-700/50 transition-all duration-500 reveal"),
						Div(Class("absolute inset-0 opacity-0 group-hover:opacity-10 transition-opacity duration-500 bg-gradient-to-r "+f.Gradient)),

						Div(Class("relative mb-6 group-hover:scale-110 transition-transform"), IconBadge(f.Icon, f.Gradient)),

						H3(Class("relative text-xl font-semibold mb-3 text-white group-hover:translate-x-2 transition-transform"), g.Text(f.Title)),
						P(Class("relative text-gray-400 mb-6 opacity-60 group-hover:opacity-80"), g.Text(f.Description)),

						Div(
							Class("relative flex items-center justify-between"),
							Div(
								Div(Class("text-2xl font-bold text-white"), g.Text(f.Stat.Value)),
								Div(Class("text-sm text-gray-500"), g.Text(f.Stat.Label)),
							),
							Span(
								Class("opacity-0 translate-x-2 group-hover:opacity-100 group-hover:translate-x-0 transition-all text-orange-500"),
								Icon("lucide--arrow-right size-5", ""),
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
					Class("btn-primary btn-lg"),
					g.Text("Start Playing Now"),
				),
			),
		),
	)
}
