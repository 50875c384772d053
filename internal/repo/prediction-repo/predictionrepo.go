package predictionrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/tippliga/tippliga/internal/domain"
	"github.com/tippliga/tippliga/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Insert stores a new prediction and reports whether a row was actually
// inserted. A concurrent duplicate for the same (user, event) pair is
// absorbed by the unique constraint and reported as not inserted, so the
// caller can fall back to an update without charging again.
func (r *Repository) Insert(ctx context.Context, p *domain.Prediction) (bool, error) {
	query := `
        INSERT INTO predictions (user_id, event_id, home, away, credit_spent, points)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (user_id, event_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, p.UserID, p.EventID, p.Home, p.Away, p.CreditSpent, p.Points)
	if err != nil {
		zap.L().Error("failed to insert prediction", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) UpdateScoreline(ctx context.Context, userID, eventID, home, away, points int) error {
	query := `
        UPDATE predictions
        SET home = $1, away = $2, points = $3
        WHERE user_id = $4 AND event_id = $5
    `
	_, err := r.db.Exec(ctx, query, home, away, points, userID, eventID)
	if err != nil {
		zap.L().Error("failed to update prediction scoreline", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdatePoints(ctx context.Context, predictionID, points int) error {
	query := `
        UPDATE predictions
        SET points = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, points, predictionID)
	if err != nil {
		zap.L().Error("failed to update prediction points", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int) ([]domain.Prediction, error) {
	query := `
        SELECT id, user_id, event_id, home, away, credit_spent, points
        FROM predictions
        WHERE user_id = $1
        ORDER BY event_id ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list predictions by user", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *Repository) ListByEvent(ctx context.Context, eventID int) ([]domain.Prediction, error) {
	query := `
        SELECT id, user_id, event_id, home, away, credit_spent, points
        FROM predictions
        WHERE event_id = $1
        ORDER BY user_id ASC
    `
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		zap.L().Error("failed to list predictions by event", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// SumPointsByUser recomputes a user's total score from their predictions.
func (r *Repository) SumPointsByUser(ctx context.Context, userID int) (int64, error) {
	query := `
        SELECT COALESCE(SUM(points), 0)
        FROM predictions
        WHERE user_id = $1
    `
	var total int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		zap.L().Error("failed to sum prediction points", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// SpentByUser returns, per user, the credits spent on the given event.
func (r *Repository) SpentByUser(ctx context.Context, eventID int) (map[int]int64, error) {
	query := `
        SELECT user_id, COALESCE(SUM(credit_spent), 0)
        FROM predictions
        WHERE event_id = $1
        GROUP BY user_id
    `
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		zap.L().Error("failed to sum spent credits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	spent := make(map[int]int64)
	for rows.Next() {
		var userID int
		var total int64
		if err := rows.Scan(&userID, &total); err != nil {
			zap.L().Error("failed to scan spent row", zap.Error(err))
			return nil, err
		}
		spent[userID] = total
	}
	return spent, nil
}

func (r *Repository) DeleteByEvent(ctx context.Context, eventID int) (int64, error) {
	query := `
        DELETE FROM predictions
        WHERE event_id = $1
    `
	tag, err := r.db.Exec(ctx, query, eventID)
	if err != nil {
		zap.L().Error("failed to delete predictions", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func collect(rows pgx.Rows) ([]domain.Prediction, error) {
	var predictions []domain.Prediction
	for rows.Next() {
		var p domain.Prediction
		err := rows.Scan(&p.ID, &p.UserID, &p.EventID, &p.Home, &p.Away, &p.CreditSpent, &p.Points)
		if err != nil {
			zap.L().Error("failed to scan prediction row", zap.Error(err))
			return nil, err
		}
		predictions = append(predictions, p)
	}
	return predictions, nil
}
