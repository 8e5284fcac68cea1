package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/trexgame/landing/internal/content"
)

type PageConfig struct {
	Title       string
	Description string
	SiteURL     string
	OGImage     string
	// NavSession is true when the server holds navigation state for this
	// page view, so the browser should report scroll and tap events.
	NavSession bool
}

func Layout(config PageConfig, body ...g.Node) g.Node {
	meta := content.Meta

	if config.Title == "" {
		config.Title = meta.Title
	}

	if config.Description == "" {
		config.Description = meta.Description
	}

	if config.OGImage == "" {
		config.OGImage = "/static/images/og-image.jpg"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class("scroll-smooth selection:bg-orange-500/20 selection:text-orange-500"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1, maximum-scale=1")),
				Meta(Name("theme-color"), Content(meta.ThemeColor)),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(Name("keywords"), Content(strings.Join(meta.Keywords, ", "))),
				Meta(Name("author"), Content(meta.Name+" Team")),
				g.If(config.SiteURL != "", Link(Rel("canonical"), Href(config.SiteURL))),

				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:locale"), Content(meta.Locale)),
				Meta(g.Attr("property", "og:site_name"), Content(meta.Name)),
				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),
				g.If(config.SiteURL != "", Meta(g.Attr("property", "og:url"), Content(config.SiteURL))),

				Meta(Name("twitter:card"), Content("summary_large_image")),
				Meta(Name("twitter:title"), Content(config.Title)),
				Meta(Name("twitter:description"), Content(config.Description)),
				Meta(Name("twitter:creator"), Content(meta.Creator)),

				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("font-sans antialiased min-h-screen relative bg-gray-900 text-gray-100"),
				g.If(config.NavSession, g.Attr("data-nav-session", "true")),
				Div(
					Class("relative flex min-h-screen flex-col"),
					Div(Class("flex-1"), g.Group(body)),
				),

				Script(Type("module"), Src("/static/js/landing.js")),
			),
		),
	})
}
