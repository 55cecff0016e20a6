package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// chunkBounds splits n rows into [start, end) windows of at most size rows.
func chunkBounds(n, size int) [][2]int {
	if n <= 0 {
		return nil
	}
	if size <= 0 {
		size = n
	}

	bounds := make([][2]int, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		bounds = append(bounds, [2]int{start, min(start+size, n)})
	}

	return bounds
}

// upsertInChunks writes rows with INSERT ... ON CONFLICT one chunk at a time.
// The first failing chunk stops the loop; earlier chunks stay committed.
func upsertInChunks[T any](ctx context.Context, db *gorm.DB, rows []*T, size int, conflict clause.OnConflict) error {
	for _, bound := range chunkBounds(len(rows), size) {
		chunk := rows[bound[0]:bound[1]]
		if err := db.WithContext(ctx).Clauses(conflict).Create(&chunk).Error; err != nil {
			return err
		}
	}

	return nil
}

func columns(names ...string) []clause.Column {
	cols := make([]clause.Column, 0, len(names))
	for _, name := range names {
		cols = append(cols, clause.Column{Name: name})
	}

	return cols
}
