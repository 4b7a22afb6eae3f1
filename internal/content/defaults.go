package content

// DefaultTOC is the outline used by studies without content groups.
var DefaultTOC = []struct{ ID, Title string }{
	{"overview", "Overview"},
	{"challenge", "The Challenge"},
	{"solution", "Our Solution"},
	{"tech-stack", "Technical Stack"},
	{"results", "Results"},
	{"testimonial", "Testimonial"},
}

// DefaultGroups fills the default outline with generic copy for s.
func DefaultGroups(s CaseStudy) []ContentGroup {
	client := s.Client
	if client == "" {
		client = "The client"
	}
	body := map[string]ContentSection{
		"overview": {
			Title:   "Project Overview",
			Content: client + " approached us with a complex set of requirements. They needed a modern, scalable solution that could handle their growing user base while maintaining exceptional performance and user experience.",
		},
		"challenge": {
			Title:   "Key Challenges",
			Content: "The existing system was outdated and couldn't keep up with their business demands. Key challenges included:",
			Items: []string{
				"Legacy infrastructure that was difficult to maintain and scale",
				"Poor user experience leading to low engagement",
				"Lack of real-time capabilities and modern features",
				"Security concerns with the existing architecture",
			},
		},
		"solution": {
			Title:   "Approach",
			Content: "We designed and built a comprehensive solution from the ground up, with a maintainable, scalable architecture that would serve " + client + " both now and in the future.",
			Items: []string{
				"Component-based architecture with real-time data synchronization",
				"Performance work at every level of the stack, including caching and lazy loading",
			},
		},
		"tech-stack": {
			Title:   "Technologies",
			Content: "We selected technologies that balance performance, developer experience and long-term maintainability.",
			Items:   s.Tags,
		},
		"results": {
			Title:   "Outcome",
			Content: "The project was delivered on time. " + client + " saw immediate improvements across key metrics.",
			Items: []string{
				"Exceeded performance targets",
				"On-time delivery within budget",
				"High user satisfaction scores",
			},
		},
		"testimonial": {
			Title:   "Client Testimonial",
			Content: "> Placeholder quote.\n\nName, Title, " + client,
		},
	}

	groups := make([]ContentGroup, 0, len(DefaultTOC))
	for _, d := range DefaultTOC {
		sec := body[d.ID]
		sec.ID = d.ID + "-details"
		groups = append(groups, ContentGroup{ID: d.ID, Title: d.Title, Sections: []ContentSection{sec}})
	}
	return groups
}
