package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TableRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTableRepo(db *dbpg.DB) *TableRepository {
	return &TableRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TableRepository) Find(ctx context.Context, filter domain.TableFilter) ([]*domain.Table, error) {
	query := `SELECT id, capacity, location, available
			  FROM tables
			  WHERE capacity >= $1 AND (NOT $2 OR available)
			  ORDER BY capacity, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, filter.MinCapacity, filter.AvailableOnly)
	if err != nil {
		return nil, fmt.Errorf("find tables: %w", err)
	}
	defer rows.Close()

	var res []*domain.Table
	for rows.Next() {
		var t domain.Table
		if err = rows.Scan(&t.ID, &t.Capacity, &t.Location, &t.Available); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}

func (r *TableRepository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	query := `SELECT id, capacity, location, available
			  FROM tables
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get table: %w", err)
	}

	var t domain.Table
	if err = row.Scan(&t.ID, &t.Capacity, &t.Location, &t.Available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTableNotFound
		}
		return nil, fmt.Errorf("scan table: %w", err)
	}

	return &t, nil
}

func (r *TableRepository) SetAvailability(ctx context.Context, id int64, available bool) (*domain.Table, error) {
	query := `UPDATE tables
			  SET available = $2
			  WHERE id = $1
			  RETURNING id, capacity, location, available`

	row := r.db.Master.QueryRowContext(ctx, query, id, available)

	var t domain.Table
	if err := row.Scan(&t.ID, &t.Capacity, &t.Location, &t.Available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTableNotFound
		}
		return nil, fmt.Errorf("update table availability: %w", err)
	}

	return &t, nil
}
