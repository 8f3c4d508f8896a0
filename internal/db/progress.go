package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UpsertProgressMark records a topic as completed. Marking an already
// completed topic is a no-op; the store enforces uniqueness on
// (user_id, roadmap_id, topic_title).
func (db *DB) UpsertProgressMark(ctx context.Context, userID, roadmapID uuid.UUID, topicTitle string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO user_progress (user_id, roadmap_id, topic_title)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, roadmap_id, topic_title) DO NOTHING`,
		userID, roadmapID, topicTitle,
	)
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// DeleteProgressMark removes a completion mark. Deleting an absent mark
// is a no-op success.
func (db *DB) DeleteProgressMark(ctx context.Context, userID, roadmapID uuid.UUID, topicTitle string) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM user_progress
		 WHERE user_id = $1 AND roadmap_id = $2 AND topic_title = $3`,
		userID, roadmapID, topicTitle,
	)
	if err != nil {
		return fmt.Errorf("failed to delete progress: %w", err)
	}
	return nil
}

// ListCompletedTopics returns the completed topic titles for one roadmap.
func (db *DB) ListCompletedTopics(ctx context.Context, userID, roadmapID uuid.UUID) ([]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT topic_title FROM user_progress
		 WHERE user_id = $1 AND roadmap_id = $2
		 ORDER BY created_at ASC`,
		userID, roadmapID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		titles = append(titles, title)
	}
	return titles, nil
}
