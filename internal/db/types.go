package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/codecraft/roadmap-api/internal/types"
)

// User represents a user account row. The password hash never leaves
// this package except for verification.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Roadmap is a persisted, owner-scoped roadmap record.
type Roadmap struct {
	ID          uuid.UUID             `json:"id"`
	UserID      uuid.UUID             `json:"user_id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Slug        string                `json:"slug"`
	Content     types.RoadmapDocument `json:"content"`
	CreatedAt   time.Time             `json:"created_at"`
}

// RoadmapSummary is a lightweight view for listings; the JSONB content is
// left out.
type RoadmapSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProgressMark records one completed topic. Existence means "completed";
// at most one mark exists per (user, roadmap, topic title) tuple.
type ProgressMark struct {
	UserID     uuid.UUID `json:"user_id"`
	RoadmapID  uuid.UUID `json:"roadmap_id"`
	TopicTitle string    `json:"topic_title"`
	CreatedAt  time.Time `json:"created_at"`
}

// YouTubeLink is one curated video resource on a public roadmap.
type YouTubeLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// PublicRoadmap is a row from the read-only curated catalog.
type PublicRoadmap struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	YouTubeLinks []YouTubeLink `json:"youtube_links"`
}
