package main

import (
	"fmt"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	cardShownClasses  = "opacity-100 translate-y-0"
	cardHiddenClasses = "opacity-0 translate-y-8"
	linkShownClasses  = "opacity-100 translate-x-0"
	linkHiddenClasses = "opacity-0 -translate-x-8"
	outboundRel       = "noopener noreferrer"
	outboundTarget    = "_blank"
)

// outboundLink opens href in a new browsing context without leaking the
// opener or the referrer.
func outboundLink(href string, children ...g.Node) g.Node {
	return h.A(append([]g.Node{h.Href(href), h.Target(outboundTarget), h.Rel(outboundRel)}, children...)...)
}

// entrance attaches the two class sets the timeline script swaps between.
func entrance(id, base, shown, hidden string, visible bool) []g.Node {
	current := hidden
	if visible {
		current = shown
	}
	return []g.Node{
		h.ID(id),
		h.Class(base + " " + current),
		h.Data("shown", shown),
		h.Data("hidden", hidden),
	}
}

func ensBadge(name string) g.Node {
	return h.Div(h.Class("relative inline-block group"),
		h.Div(h.Class("absolute inset-0 bg-cyan-400/30 blur-xl animate-pulse-slow rounded-full")),
		h.Div(h.Class("absolute inset-0 bg-purple-500/20 blur-2xl animate-pulse-slower rounded-full")),
		h.Div(h.Class("relative px-4 py-2 md:px-6 md:py-3 border border-cyan-400/50 rounded-full bg-black/80 backdrop-blur-sm"),
			h.Span(h.Class("font-mono text-lg md:text-2xl lg:text-3xl text-cyan-400 tracking-wider glow-text"), g.Text(name)),
		),
	)
}

func projectCard(id string, project ProjectEntry, delay time.Duration, visible bool) g.Node {
	attrs := entrance(id,
		"relative p-4 md:p-6 border border-cyan-400/20 bg-black/40 backdrop-blur-sm rounded-lg hover:border-cyan-400/60 hover:bg-cyan-400/5 transition-all duration-500 transform",
		cardShownClasses, cardHiddenClasses, visible)
	attrs = append(attrs, h.Style(fmt.Sprintf("transition-delay: %dms", delay.Milliseconds())))

	return h.Div(append(attrs,
		h.Div(h.Class("absolute top-0 left-0 w-8 md:w-12 h-px bg-gradient-to-r from-cyan-400 to-transparent")),
		h.Div(h.Class("absolute top-0 left-0 w-px h-8 md:h-12 bg-gradient-to-b from-cyan-400 to-transparent")),
		h.H3(h.Class("font-mono text-base md:text-lg text-cyan-400 mb-2 md:mb-3"), g.Text("> "+project.Title)),
		h.P(h.Class("text-gray-400 text-sm md:text-base mb-3 md:mb-4 font-light leading-relaxed"), g.Text(project.Description)),
		h.Div(h.Class("flex flex-wrap gap-2"),
			g.Map(project.Tags, func(tag string) g.Node {
				return h.Span(h.Class("px-2 py-1 text-xs font-mono text-purple-400 border border-purple-400/30 rounded bg-purple-400/5"), g.Text(tag))
			}),
		),
	)...)
}

// contactRow keeps the literal target as href; ping, when set, is where the
// browser reports the click.
func contactRow(id string, contact ContactMethod, ping string, visible bool) g.Node {
	attrs := entrance(id,
		"flex items-center gap-3 md:gap-4 p-3 md:p-4 border border-gray-800 rounded-lg hover:border-cyan-400/50 hover:bg-cyan-400/5 transition-all duration-300 group transform min-h-[56px]",
		linkShownClasses, linkHiddenClasses, visible)
	attrs = append(attrs,
		g.If(ping != "", g.Attr("ping", ping)),
		h.Span(h.Class("text-xl md:text-2xl"), g.Text(contact.Icon)),
		h.Div(h.Class("min-w-0 flex-1"),
			h.P(h.Class("text-xs text-gray-500 uppercase tracking-wider"), g.Text(contact.Label)),
			h.P(h.Class("font-mono text-cyan-400 group-hover:text-cyan-300 transition-colors text-sm md:text-base truncate"), g.Text(contact.Value)),
		),
		h.Span(h.Class("text-gray-600 group-hover:text-cyan-400 transition-colors text-lg md:text-xl shrink-0"), g.Text("→")),
	)
	return outboundLink(contact.Target, attrs...)
}

func gridBackground() g.Node {
	return h.Div(h.Class("fixed inset-0 overflow-hidden pointer-events-none"), h.Aria("hidden", "true"),
		h.Div(h.Class("absolute inset-0 opacity-[0.03] grid-pattern")),
		h.Div(h.Class("absolute top-0 left-1/4 w-96 h-96 bg-cyan-400/5 rounded-full blur-3xl animate-float")),
		h.Div(h.Class("absolute bottom-1/4 right-1/4 w-80 h-80 bg-purple-500/5 rounded-full blur-3xl animate-float-delayed")),
		h.Div(h.Class("absolute inset-0 scanlines opacity-[0.02]")),
	)
}

func sectionHeading(title string) g.Node {
	return h.Div(h.Class("flex items-center gap-3 mb-6 md:mb-8"),
		h.Span(h.Class("font-mono text-cyan-400 text-sm md:text-base"), g.Text(">")),
		h.H2(h.Class("font-display text-xl md:text-2xl font-semibold"), g.Text(title)),
		h.Div(h.Class("flex-1 h-px bg-gradient-to-r from-cyan-400/30 to-transparent")),
	)
}

func statusLine(status, lastUpdated string) g.Node {
	return h.Div(h.Class("flex items-center gap-3 py-4 md:py-6 border-t border-gray-800/50"),
		h.Div(h.Class("relative"),
			h.Div(h.Class("w-2 h-2 bg-green-400 rounded-full")),
			h.Div(h.Class("absolute inset-0 w-2 h-2 bg-green-400 rounded-full animate-ping")),
		),
		h.Span(h.Class("text-gray-500 font-mono text-xs md:text-sm"), g.Text(status)),
		h.Span(h.Class("text-gray-700 font-mono text-xs"), g.Text("// last updated: "+lastUpdated)),
	)
}

func pageFooter(credits []Credit) g.Node {
	var parts []g.Node
	for i, credit := range credits {
		if i > 0 {
			parts = append(parts, g.Text(" · "))
		}
		parts = append(parts,
			g.Text(strings.TrimSpace(credit.Prefix)+" "),
			outboundLink(credit.Target, h.Class("hover:text-gray-400 transition-colors"), g.Text(credit.Handle)),
		)
	}
	return h.Footer(h.Class("mt-8 md:mt-12 pt-4 md:pt-6 border-t border-gray-800/30"),
		h.P(append([]g.Node{h.Class("text-gray-600 text-xs text-center font-mono tracking-wide")}, parts...)...),
	)
}
