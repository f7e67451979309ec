package main

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PageState is everything about the page that changes over time.
type PageState struct {
	Intro           RevealState
	ProjectsVisible []bool
	ContactsVisible []bool
}

// initialState is the page as first served, before any timer has fired.
func initialState(p Page) PageState {
	return PageState{
		ProjectsVisible: make([]bool, len(p.Projects)),
		ContactsVisible: make([]bool, len(p.Contacts)),
	}
}

// finalState is the page once every animation has finished.
func finalState(p Page, split Splitter) PageState {
	st := PageState{
		Intro:           RevealState{Shown: p.Intro.Text, Length: len(split(p.Intro.Text)), Complete: true},
		ProjectsVisible: make([]bool, len(p.Projects)),
		ContactsVisible: make([]bool, len(p.Contacts)),
	}
	for i := range st.ProjectsVisible {
		st.ProjectsVisible[i] = true
	}
	for i := range st.ContactsVisible {
		st.ContactsVisible[i] = true
	}
	return st
}

type renderOptions struct {
	// Animate loads the timeline script, which streams the reveal from /timeline.
	Animate bool
	// InlineCSS embeds the stylesheet instead of linking /static/styles.css.
	InlineCSS bool
	// TrackClicks adds ping URLs to the contact rows.
	TrackClicks bool
}

func renderPage(p Page, st PageState, opts renderOptions) g.Node {
	return document(p.Badge, opts,
		pageHeader(p, st.Intro),
		projectsSection(p, st.ProjectsVisible),
		contactsSection(p, st.ContactsVisible, opts.TrackClicks),
		statusLine(p.Status, p.LastUpdated),
		pageFooter(p.Credits),
	)
}

// document is the shared shell: head, background and the centered column.
func document(title string, opts renderOptions, content ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				g.If(opts.InlineCSS, h.StyleEl(g.Raw(string(mustStatic("static/styles.css"))))),
				g.If(!opts.InlineCSS, h.Link(h.Rel("stylesheet"), h.Href("/static/styles.css"))),
				g.If(opts.Animate, h.Script(h.Src("/static/timeline.js"), h.Defer())),
			),
			h.Body(h.Class("min-h-screen bg-[#0a0a0a] text-white overflow-x-hidden"),
				gridBackground(),
				h.Div(append([]g.Node{h.Class("relative z-10 max-w-4xl mx-auto px-4 md:px-6 py-12 md:py-20")}, content...)...),
			),
		),
	)
}

func pageHeader(p Page, intro RevealState) g.Node {
	return h.Header(h.Class("mb-12 md:mb-20"),
		h.Div(h.Class("mb-6 md:mb-8 animate-fade-in"), ensBadge(p.Badge)),
		h.Div(h.Class("relative"),
			h.Span(h.Class("font-mono text-gray-600 text-xs md:text-sm"), g.Text("$ whoami")),
			h.H1(h.Class("text-3xl md:text-4xl lg:text-5xl font-display font-bold mt-2 mb-4 md:mb-6 tracking-tight"),
				h.Span(h.Class("text-white"), g.Text("I'm ")),
				h.Span(h.Class("text-transparent bg-clip-text bg-gradient-to-r from-cyan-400 to-purple-500"), g.Text(p.Name)),
			),
			h.P(h.Class("text-gray-400 text-base md:text-lg lg:text-xl max-w-2xl leading-relaxed min-h-[4rem] md:min-h-[3rem]"),
				h.Span(h.ID("intro"), g.Text(intro.Shown)),
				g.If(!intro.Complete, h.Span(h.ID("intro-cursor"), h.Class("inline-block w-2 h-5 bg-cyan-400 ml-1 animate-blink"))),
			),
		),
	)
}

func projectsSection(p Page, visible []bool) g.Node {
	cards := make([]g.Node, 0, len(p.Projects))
	for i, project := range p.Projects {
		cards = append(cards, projectCard(projectID(i), project, p.ProjectStagger.Delay(i), visible[i]))
	}
	return h.Section(h.Class("mb-12 md:mb-20"),
		sectionHeading("What I've Built"),
		h.Div(append([]g.Node{h.Class("grid gap-4 md:gap-6")}, cards...)...),
	)
}

func contactsSection(p Page, visible []bool, trackClicks bool) g.Node {
	rows := make([]g.Node, 0, len(p.Contacts))
	for i, contact := range p.Contacts {
		ping := ""
		if trackClicks {
			ping = fmt.Sprintf("/ping/contact/%d", i)
		}
		rows = append(rows, contactRow(contactID(i), contact, ping, visible[i]))
	}
	return h.Section(h.Class("mb-12 md:mb-20"),
		sectionHeading("Interact With Me"),
		h.P(h.Class("text-gray-500 mb-6 text-sm md:text-base"),
			g.Text("Use my ENS name "),
			h.Span(h.Class("text-cyan-400 font-mono"), g.Text(p.Badge)),
			g.Text(" "+p.ENSBlurb),
		),
		h.Div(append([]g.Node{h.Class("grid grid-cols-1 md:grid-cols-2 gap-3 md:gap-4")}, rows...)...),
	)
}
