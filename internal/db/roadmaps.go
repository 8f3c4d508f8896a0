package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/codecraft/roadmap-api/internal/types"
)

// CreateRoadmap persists a generated roadmap for a user and returns its ID.
func (db *DB) CreateRoadmap(ctx context.Context, userID uuid.UUID, title, description, slug string, content *types.RoadmapDocument) (uuid.UUID, error) {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal roadmap content: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO roadmaps (user_id, title, description, slug, content)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		userID, title, description, slug, contentJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create roadmap: %w", err)
	}
	return id, nil
}

// GetRoadmapByID retrieves a roadmap by ID. Returns nil when no such
// roadmap exists.
func (db *DB) GetRoadmapByID(ctx context.Context, id uuid.UUID) (*Roadmap, error) {
	return db.getRoadmap(ctx,
		`SELECT id, user_id, title, description, slug, content, created_at
		 FROM roadmaps WHERE id = $1`, id)
}

// GetRoadmapBySlug retrieves a roadmap by slug. Returns nil when no such
// roadmap exists. Reads are not owner-scoped; roadmap pages are public.
func (db *DB) GetRoadmapBySlug(ctx context.Context, slug string) (*Roadmap, error) {
	return db.getRoadmap(ctx,
		`SELECT id, user_id, title, description, slug, content, created_at
		 FROM roadmaps WHERE slug = $1`, slug)
}

func (db *DB) getRoadmap(ctx context.Context, query string, arg any) (*Roadmap, error) {
	var roadmap Roadmap
	var contentJSON []byte
	err := db.pool.QueryRow(ctx, query, arg).Scan(
		&roadmap.ID, &roadmap.UserID, &roadmap.Title, &roadmap.Description,
		&roadmap.Slug, &contentJSON, &roadmap.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get roadmap: %w", err)
	}
	if err := json.Unmarshal(contentJSON, &roadmap.Content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roadmap content: %w", err)
	}
	return &roadmap, nil
}

// ListRoadmapsByUser retrieves all roadmaps owned by a user, newest first.
func (db *DB) ListRoadmapsByUser(ctx context.Context, userID uuid.UUID) ([]RoadmapSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, description, slug, created_at
		 FROM roadmaps WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list roadmaps: %w", err)
	}
	defer rows.Close()

	var roadmaps []RoadmapSummary
	for rows.Next() {
		var r RoadmapSummary
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.Slug, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan roadmap: %w", err)
		}
		roadmaps = append(roadmaps, r)
	}
	return roadmaps, nil
}

// UpdateRoadmap updates a roadmap's title, description, and content.
// The update is scoped to the owner; ErrNotFound is returned when the
// roadmap does not exist or belongs to someone else.
func (db *DB) UpdateRoadmap(ctx context.Context, userID, id uuid.UUID, title, description string, content *types.RoadmapDocument) error {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal roadmap content: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE roadmaps SET title = $1, description = $2, content = $3
		 WHERE id = $4 AND user_id = $5`,
		title, description, contentJSON, id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update roadmap: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("roadmap %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteRoadmap deletes a roadmap and its progress marks (via cascade).
// The delete is scoped to the owner.
func (db *DB) DeleteRoadmap(ctx context.Context, userID, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM roadmaps WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete roadmap: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("roadmap %s: %w", id, ErrNotFound)
	}
	return nil
}
