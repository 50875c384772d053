package poolrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/tippliga/tippliga/internal/domain"
	"github.com/tippliga/tippliga/internal/pg"
	"go.uber.org/zap"
)

// Repository owns both the per-event pools and the championship-wide
// global pool. The global pool is a single row that no caller addresses
// by id; only this repository knows how it is stored.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByEvent(ctx context.Context, eventID int) (*domain.EventPool, error) {
	query := `
        SELECT id, event_id, local, carried, distributed, paid_out
        FROM event_pools
        WHERE event_id = $1
    `
	row := r.db.QueryRow(ctx, query, eventID)
	var pool domain.EventPool
	err := row.Scan(&pool.ID, &pool.EventID, &pool.Local, &pool.Carried, &pool.Distributed, &pool.PaidOut)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get event pool", zap.Error(err))
		return nil, err
	}
	return &pool, nil
}

// Accumulate adds an entry-fee share to the event's local pool, creating
// the pool row on first use.
func (r *Repository) Accumulate(ctx context.Context, eventID int, local int64) error {
	query := `
        INSERT INTO event_pools (event_id, local)
        VALUES ($1, $2)
        ON CONFLICT (event_id) DO UPDATE
        SET local = event_pools.local + EXCLUDED.local
    `
	_, err := r.db.Exec(ctx, query, eventID, local)
	if err != nil {
		zap.L().Error("failed to accumulate event pool", zap.Error(err))
		return err
	}
	return nil
}

// SetPool overwrites the pool's local and carried amounts. Settlement uses
// absolute values so a re-run converges instead of accumulating.
func (r *Repository) SetPool(ctx context.Context, eventID int, local, carried int64) error {
	query := `
        INSERT INTO event_pools (event_id, local, carried)
        VALUES ($1, $2, $3)
        ON CONFLICT (event_id) DO UPDATE
        SET local = EXCLUDED.local, carried = EXCLUDED.carried
    `
	_, err := r.db.Exec(ctx, query, eventID, local, carried)
	if err != nil {
		zap.L().Error("failed to set event pool", zap.Error(err))
		return err
	}
	return nil
}

// MarkPaid records a completed payout: the pool is emptied, the distributed
// amount is kept for auditing and paid_out blocks any further crediting.
func (r *Repository) MarkPaid(ctx context.Context, eventID int, distributed int64) error {
	query := `
        UPDATE event_pools
        SET local = 0, carried = 0, distributed = $1, paid_out = TRUE
        WHERE event_id = $2
    `
	_, err := r.db.Exec(ctx, query, distributed, eventID)
	if err != nil {
		zap.L().Error("failed to mark event pool paid", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteByEvent(ctx context.Context, eventID int) error {
	query := `
        DELETE FROM event_pools
        WHERE event_id = $1
    `
	_, err := r.db.Exec(ctx, query, eventID)
	if err != nil {
		zap.L().Error("failed to delete event pool", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetGlobal(ctx context.Context) (*domain.GlobalPool, error) {
	query := `
        SELECT id, total
        FROM global_pool
        ORDER BY id ASC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query)
	var pool domain.GlobalPool
	if err := row.Scan(&pool.ID, &pool.Total); err != nil {
		zap.L().Error("failed to get global pool", zap.Error(err))
		return nil, err
	}
	return &pool, nil
}

func (r *Repository) AddToGlobal(ctx context.Context, amount int64) error {
	query := `
        UPDATE global_pool
        SET total = total + $1
        WHERE id = (SELECT MIN(id) FROM global_pool)
    `
	_, err := r.db.Exec(ctx, query, amount)
	if err != nil {
		zap.L().Error("failed to add to global pool", zap.Error(err))
		return err
	}
	return nil
}
