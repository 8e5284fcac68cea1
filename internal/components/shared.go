package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo() g.Node {
	return A(
		Href("/"),
		Class("flex items-center space-x-2"),
		Span(
			Class("text-2xl font-bold bg-gradient-to-r from-orange-500 to-orange-300 text-transparent bg-clip-text"),
			g.Text("TrexGame"),
		),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify icon from a "set--name [size classes]" string. An
// empty ariaLabel marks the icon decorative.
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	sizeClasses := extractSizeClasses(iconClass)
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

func IconBadge(icon, gradient string) g.Node {
	return Div(
		Class("w-12 h-12 rounded-xl flex items-center justify-center bg-gradient-to-r "+gradient),
		Icon(icon+" size-6 text-white", ""),
	)
}

// SectionHeading is the pill + gradient title + lead paragraph shared by the
// content sections.
func SectionHeading(pill, title, lead string) g.Node {
	return Div(
		Class("text-center mb-16 reveal"),
		g.If(pill != "",
			Div(
				Class("inline-block mb-4 bg-orange-500/10 rounded-full px-4 py-2 border border-orange-500/20"),
				Span(Class("text-orange-400 font-semibold"), g.Text(pill)),
			),
		),
		H2(
			Class("text-4xl md:text-5xl font-bold mb-6 bg-gradient-to-r from-orange-500 to-orange-300 text-transparent bg-clip-text"),
			g.Text(title),
		),
		P(Class("text-xl text-gray-400 max-w-2xl mx-auto"), g.Text(lead)),
	)
}

func classIf(base string, cond bool, on, off string) string {
	if cond {
		return base + " " + on
	}
	return base + " " + off
}
