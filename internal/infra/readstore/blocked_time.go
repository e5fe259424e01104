package readstore

import (
	"context"
	"time"

	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"
	"studio-booking/internal/usecase/queries"
)

type BlockedTimeReadStore struct {
	db db.DBTX
}

func NewBlockedTimeReadStore(dbtx db.DBTX) *BlockedTimeReadStore {
	return &BlockedTimeReadStore{db: dbtx}
}

const findAllBlockedTimesSQL = `
	SELECT id, date, time, space, reason, created_at
	FROM blocked_times
	ORDER BY date, time`

func (s *BlockedTimeReadStore) FindAll(ctx context.Context) ([]*queries.BlockedTimeView, error) {
	rows, err := s.db.Query(ctx, findAllBlockedTimesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked times", err)
	}
	defer rows.Close()

	var result []*queries.BlockedTimeView
	for rows.Next() {
		var (
			view queries.BlockedTimeView
			date time.Time
		)
		if err := rows.Scan(&view.ID, &date, &view.Time, &view.Space, &view.Reason, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocked time row", err)
		}
		view.Date = date.Format("2006-01-02")
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read blocked time rows", err)
	}
	return result, nil
}
