package readstore

import (
	"context"

	"restaurant-pos/internal/infra"
	"restaurant-pos/internal/infra/db"
	"restaurant-pos/internal/usecase/queries"
)

type BeeperReadStore struct {
	db db.DBTX
}

func NewBeeperReadStore(dbtx db.DBTX) *BeeperReadStore {
	return &BeeperReadStore{db: dbtx}
}

const findAllBeepersQuery = `
SELECT id, status
FROM beepers
ORDER BY id
`

func (r *BeeperReadStore) FindAll(ctx context.Context) ([]*queries.BeeperView, error) {
	rows, err := r.db.Query(ctx, findAllBeepersQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list beepers", err)
	}
	defer rows.Close()

	result := make([]*queries.BeeperView, 0)
	for rows.Next() {
		view := &queries.BeeperView{}
		if err := rows.Scan(&view.ID, &view.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan beeper row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read beeper rows", err)
	}

	return result, nil
}
