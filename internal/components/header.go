package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/trexgame/landing/internal/navstate"
)

// HeaderID is the element id the browser swaps when the server returns a
// fresh header fragment.
const HeaderID = "site-header"

type HeaderProps struct {
	State     navstate.State
	Sections  []navstate.Section
	LaunchURL string
}

// SiteHeader renders the fixed site header for a navigation state: solid once
// scrolled, the active section highlighted, and the mobile overlay when the
// menu is open.
func SiteHeader(p HeaderProps) g.Node {
	if p.LaunchURL == "" {
		p.LaunchURL = "#"
	}

	return Header(
		ID(HeaderID),
		g.Attr("data-scrolled", strconv.FormatBool(p.State.Scrolled)),
		g.Attr("data-active-section", p.State.ActiveSection),
		g.Attr("data-menu-open", strconv.FormatBool(p.State.MenuOpen)),
		Class(classIf("fixed top-0 w-full z-50 transition-all duration-300", p.State.Scrolled,
			"bg-gray-900/95 backdrop-blur-md shadow-lg",
			"bg-transparent")),

		Div(
			Class("max-w-[1920px] mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("flex items-center justify-between h-16"),

				Div(Class("flex-shrink-0 flex items-center animate-slide-in"), Logo()),

				Nav(
					Class("hidden md:flex items-center justify-center flex-1 mx-8"),
					g.Attr("aria-label", "Primary"),
					g.Group(g.Map(p.Sections, func(s navstate.Section) g.Node {
						return desktopNavLink(s, p.State.IsActive(s.ID))
					})),
				),

				Div(
					Class("hidden md:flex items-center"),
					launchButton(p.LaunchURL, ""),
				),

				Button(
					Type("button"),
					Class(classIf("md:hidden relative z-10 p-2 rounded-md text-gray-300 hover:text-orange-500 hover:bg-gray-800 transition-transform", p.State.MenuOpen, "rotate-90", "")),
					g.Attr("data-nav-menu", ""),
					g.Attr("aria-controls", "mobile-menu"),
					g.Attr("aria-expanded", strconv.FormatBool(p.State.MenuOpen)),
					g.Attr("aria-label", menuButtonLabel(p.State.MenuOpen)),
					Span(g.Attr("data-menu-icon", "open"), g.If(p.State.MenuOpen, g.Attr("hidden")), Icon("lucide--menu size-6", "")),
					Span(g.Attr("data-menu-icon", "close"), g.If(!p.State.MenuOpen, g.Attr("hidden")), Icon("lucide--x size-6", "")),
				),
			),
		),

		mobileMenu(p),
	)
}

func desktopNavLink(s navstate.Section, active bool) g.Node {
	return A(
		Href(s.Href()),
		g.Attr("data-nav-select", s.ID),
		Class(classIf("relative px-5 py-2 text-sm font-medium transition-colors", active,
			"text-orange-500",
			"text-gray-300 hover:text-orange-400")),
		g.If(active, g.Attr("aria-current", "location")),
		g.Text(s.Label),
		g.If(active, Span(Class("absolute -bottom-1 left-0 right-0 h-0.5 bg-orange-500 nav-indicator"))),
	)
}

// mobileMenu is always rendered so the page script can open it locally when
// the server holds no navigation session; closed, it carries hidden.
func mobileMenu(p HeaderProps) g.Node {
	return Div(
		ID("mobile-menu"),
		g.If(!p.State.MenuOpen, g.Attr("hidden")),
		Class("fixed inset-0 z-0 bg-gray-900/95 backdrop-blur-lg md:hidden animate-slide-in-right"),
		g.Attr("data-nav-dismiss", ""),
		Div(
			Class("flex flex-col items-center justify-center h-full space-y-8"),
			g.Group(g.Map(p.Sections, func(s navstate.Section) g.Node {
				active := p.State.MenuOpen && p.State.IsActive(s.ID)
				return Div(
					Class("w-full text-center"),
					A(
						Href(s.Href()),
						g.Attr("data-nav-select", s.ID),
						Class(classIf("text-xl font-medium transition-colors", active,
							"text-orange-500",
							"text-gray-300 hover:text-orange-400")),
						g.If(active, g.Attr("aria-current", "location")),
						g.Text(s.Label),
					),
				)
			})),
			launchButton(p.LaunchURL, "mt-4"),
		),
	)
}

func launchButton(href, extra string) g.Node {
	return A(
		Href(href),
		g.Attr("target", "_blank"),
		g.Attr("rel", "noopener"),
		Class("btn-primary btn-lg font-semibold "+extra),
		g.Text("Launch App"),
	)
}

func menuButtonLabel(open bool) string {
	if open {
		return "Close menu"
	}
	return "Open menu"
}
