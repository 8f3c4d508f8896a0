package server

import (
	"net/http"
)

// Book is one curated reading recommendation.
type Book struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// recommendedBooks is the hand-picked reading list served by /api/resources.
var recommendedBooks = []Book{
	{
		Title:       "Clean Code: A Handbook of Agile Software Craftsmanship",
		Author:      "Robert C. Martin",
		Description: "Learn the principles of writing clean, maintainable, and robust code.",
		Link:        "https://www.oreilly.com/library/view/clean-code-a/9780136083238/",
	},
	{
		Title:       "The Pragmatic Programmer: Your Journey to Mastery",
		Author:      "David Thomas, Andrew Hunt",
		Description: "Provides practical advice for everything from career development to architectural techniques.",
		Link:        "https://pragprog.com/titles/tpp20/the-pragmatic-programmer-20th-anniversary-edition/",
	},
	{
		Title:       "Designing Data-Intensive Applications",
		Author:      "Martin Kleppmann",
		Description: "An essential guide to understanding the pros and cons of different data processing technologies.",
		Link:        "https://www.oreilly.com/library/view/designing-data-intensive-applications/9781491903063/",
	},
	{
		Title:       "Structure and Interpretation of Computer Programs (SICP)",
		Author:      "Harold Abelson, Gerald Jay Sussman",
		Description: "A classic text that teaches fundamental principles of computation and programming.",
		Link:        "https://mitpress.mit.edu/9780262543231/structure-and-interpretation-of-computer-programs/",
	},
	{
		Title:       "Eloquent JavaScript, 3rd Edition",
		Author:      "Marijn Haverbeke",
		Description: "A modern introduction to programming with a focus on JavaScript, available online for free.",
		Link:        "https://eloquentjavascript.net/",
	},
	{
		Title:       "You Don't Know JS Yet (Book Series)",
		Author:      "Kyle Simpson",
		Description: "A deep dive into the core mechanisms of JavaScript, challenging you to truly understand the language.",
		Link:        "https://github.com/getify/You-Dont-Know-JS",
	},
	{
		Title:       "System Design Interview - An Insider's Guide",
		Author:      "Alex Xu",
		Description: "A practical guide to preparing for system design interviews with a step-by-step framework.",
		Link:        "https://www.amazon.com/System-Design-Interview-Insiders-Guide/dp/B08B3FWY3R",
	},
	{
		Title:       "Refactoring: Improving the Design of Existing Code",
		Author:      "Martin Fowler",
		Description: "Learn how to improve the design of existing code and enhance its maintainability.",
		Link:        "https://martinfowler.com/books/refactoring.html",
	},
}

// handleCatalog lists the curated public roadmaps with their video links.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	roadmaps, err := s.store.ListPublicRoadmaps(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"roadmaps": roadmaps,
		"count":    len(roadmaps),
	})
}

// handleResources serves the curated book list.
func (s *Server) handleResources(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"books": recommendedBooks,
	})
}
