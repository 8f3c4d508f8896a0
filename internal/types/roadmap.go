// Package types defines the shared domain types exchanged between the
// generation pipeline, the persistence layer, and the HTTP API.
package types

// Topic is a single learnable unit inside a roadmap section.
type Topic struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Section groups related topics under one heading.
type Section struct {
	Title  string  `json:"title"`
	Topics []Topic `json:"topics"`
}

// RoadmapDocument is the structured learning path produced by the
// generation pipeline. A valid document always has at least one section,
// and every section has at least one topic.
type RoadmapDocument struct {
	Sections []Section `json:"sections"`
}

// TopicCount returns the total number of topics across all sections.
func (d *RoadmapDocument) TopicCount() int {
	count := 0
	for _, s := range d.Sections {
		count += len(s.Topics)
	}
	return count
}
