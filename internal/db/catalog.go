package db

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListPublicRoadmaps retrieves the curated catalog. The table is
// read-only from the application's point of view.
func (db *DB) ListPublicRoadmaps(ctx context.Context) ([]PublicRoadmap, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, description, youtube_links
		 FROM public_roadmaps ORDER BY title ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list public roadmaps: %w", err)
	}
	defer rows.Close()

	var roadmaps []PublicRoadmap
	for rows.Next() {
		var r PublicRoadmap
		var linksJSON []byte
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &linksJSON); err != nil {
			return nil, fmt.Errorf("failed to scan public roadmap: %w", err)
		}
		if len(linksJSON) > 0 {
			if err := json.Unmarshal(linksJSON, &r.YouTubeLinks); err != nil {
				return nil, fmt.Errorf("failed to unmarshal youtube links: %w", err)
			}
		}
		roadmaps = append(roadmaps, r)
	}
	return roadmaps, nil
}
