package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/trexgame/landing/internal/content"
)

// Community renders the community section. subscribe carries the state of
// its newsletter form.
func Community(subscribe SubscribeForm) g.Node {
	return Section(
		ID("community"),
		Class("relative py-24 bg-gradient-to-b from-gray-800 to-gray-900 overflow-hidden"),

		Div(Class("absolute inset-0 dot-grid-lg"), g.Attr("aria-hidden", "true")),

		Div(
			Class("relative max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),

			SectionHeading("Join Our Community",
				"Connect with TrexGame Players",
				"Join our vibrant community of players, share strategies, and stay updated on the latest TrexGame news!",
			),

			Div(
				Class("grid grid-cols-2 md:grid-cols-4 gap-6 mb-16"),
				g.Group(g.Map(content.CommunityStats, func(s content.Stat) g.Node {
					return Div(
						Class("text-center p-6 rounded-2xl bg-gray-800/50 border border-gray-700/50 hover:scale-105 transition-transform reveal"),
						Icon(s.Icon+" size-8 text-orange-500 mb-3", ""),
						Div(Class("text-3xl font-bold text-white"), g.Text(s.Value)),
						Div(Class("text-sm text-gray-400"), g.Text(s.Label)),
					)
				})),
			),

			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8 mb-16"),
				g.Group(g.Map(content.SocialLinks, func(l content.SocialLink) g.Node {
					return Div(
						Class("group relative p-6 rounded-2xl overflow-hidden bg-gray-800/50 backdrop-blur-sm border border-gray-700/50 reveal"),
						Div(Class("absolute inset-0 opacity-0 group-hover:opacity-10 transition-opacity bg-gradient-to-r "+l.Gradient)),
						Div(
							Class("relative"),
							Div(
								Class("flex items-center justify-between mb-4"),
								IconBadge(l.Icon, l.Gradient),
								Span(Class("text-2xl font-bold text-white"), g.Text(l.Members)),
							),
							H3(Class("text-xl font-semibold text-white mb-2"), g.Text(l.Name)),
							P(Class("text-gray-400 mb-4"), g.Text(l.Description)),
							A(
								Href(l.URL),
								g.Attr("target", "_blank"),
								g.Attr("rel", "noopener"),
								g.Attr("aria-label", l.Name),
								Class("inline-flex items-center gap-2 text-orange-500 hover:text-orange-400 font-medium"),
								g.Text("Join Now"),
								Icon("lucide--arrow-right size-4", ""),
							),
						),
					)
				})),
			),

			Div(
				Class("text-center p-8 rounded-2xl bg-gray-800/50 border border-orange-500/20 reveal"),
				H3(Class("text-2xl font-bold text-white mb-2"), g.Text("Stay in the Loop")),
				P(Class("text-gray-400 mb-6"), g.Text("Get the latest news, tournament announcements and exclusive rewards.")),
				Subscribe(subscribe),
			),
		),
	)
}
