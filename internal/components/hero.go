package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/trexgame/landing/internal/content"
)

// heroShapes is the number of floating background shapes. The browser hides
// the extra ones below the mobile breakpoint.
const heroShapes = 15

func Hero(launchURL string) g.Node {
	shapes := make([]int, heroShapes)
	for i := range shapes {
		shapes[i] = i
	}

	return Section(
		ID("hero"),
		Class("relative min-h-screen flex items-center justify-center overflow-hidden bg-gradient-to-b from-gray-900 via-gray-900 to-gray-800"),

		Div(
			Class("absolute inset-0 overflow-hidden pointer-events-none"),
			g.Attr("aria-hidden", "true"),
			g.Group(g.Map(shapes, func(i int) g.Node {
				return Div(
					Class(classIf("hero-shape absolute rounded-full bg-gradient-to-r from-orange-500/20 to-orange-300/10", i >= 8, "max-md:hidden", "")),
					g.Attr("style", heroShapeStyle(i)),
				)
			})),
		),

		Div(
			Class("relative z-20 max-w-5xl mx-auto px-4 text-center"),
			g.Attr("data-parallax", ""),

			Div(
				Class("inline-block mb-6 reveal"),
				Span(
					Class("bg-orange-500/10 rounded-full px-4 py-2 border border-orange-500/20 text-orange-400 font-semibold text-sm sm:text-base"),
					g.Text("🎮 "+content.Meta.Tagline),
				),
			),

			H1(
				Class("text-4xl sm:text-5xl md:text-7xl font-bold mb-6 leading-tight reveal"),
				Span(Class("bg-gradient-to-r from-orange-500 to-orange-300 text-transparent bg-clip-text"), g.Text("TrexGame:")),
				Br(),
				Span(Class("text-white"), g.Text("Unleash Your Inner Dinosaur!")),
			),

			P(
				Class("text-lg sm:text-xl md:text-2xl text-gray-300 mb-10 max-w-3xl mx-auto leading-relaxed reveal"),
				g.Text("Join the thrilling adventure of endless running and NFT evolution."),
				Br(Class("max-md:hidden")),
				g.Text(" Compete, collect, and earn in the ultimate Web3 gaming experience."),
			),

			Div(
				Class("flex flex-col sm:flex-row gap-4 justify-center mb-16 reveal"),
				A(
					Href(launchURL),
					g.Attr("target", "_blank"),
					g.Attr("rel", "noopener"),
					Class("btn-primary btn-lg group"),
					Span(Class("flex items-center gap-2"), g.Text("Play Now"), Icon("lucide--arrow-right size-5", "")),
				),
				A(
					Href("#features"),
					g.Attr("data-nav-select", "features"),
					Class("btn-outline btn-lg"),
					g.Text("Learn More"),
				),
			),

			Div(
				Class("grid grid-cols-1 sm:grid-cols-3 gap-4 sm:gap-6 max-w-3xl mx-auto reveal"),
				g.Group(g.Map(content.HeroStats, func(s content.Stat) g.Node {
					return Div(
						Class("group relative p-4 sm:p-6 rounded-xl sm:rounded-2xl overflow-hidden bg-gray-800/40 backdrop-blur-sm border border-orange-500/20 hover:scale-[1.03] transition-transform"),
						Div(
							Class("flex items-center justify-center gap-3"),
							Icon(s.Icon+" size-6 text-orange-500", ""),
							Div(
								Class("text-left"),
								Div(Class("text-2xl sm:text-3xl font-bold text-white"), g.Text(s.Value)),
								Div(Class("text-sm text-gray-400"), g.Text(s.Label)),
							),
						),
					)
				})),
			),
		),

		Button(
			Type("button"),
			Class("max-md:hidden absolute bottom-8 left-1/2 -translate-x-1/2 text-gray-400 hover:text-orange-500 animate-bounce"),
			g.Attr("data-scroll-next", ""),
			g.Attr("aria-label", "Scroll down"),
			Icon("lucide--chevron-down size-8", ""),
		),
	)
}

// heroShapeStyle spreads the background shapes deterministically so the page
// renders identically on every request.
func heroShapeStyle(i int) string {
	size := 20 + (i*7)%30
	left := (i * 37) % 100
	top := (i * 53) % 100
	delay := float64(i) * 0.15
	duration := 3 + float64(i%5)*0.4
	return fmt.Sprintf("width:%dpx;height:%dpx;left:%d%%;top:%d%%;animation-delay:%.2fs;animation-duration:%.1fs",
		size, size, left, top, delay, duration)
}
