package eventrepo

import (
	"context"
	"errors"
	"time"

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

const eventColumns = "id, home, away, kickoff, status, cost, is_final, result_home, result_away"

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var event domain.Event
	err := row.Scan(&event.ID, &event.Home, &event.Away, &event.Kickoff, &event.Status,
		&event.Cost, &event.IsFinal, &event.ResultHome, &event.ResultAway)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *Repository) GetByID(ctx context.Context, eventID int) (*domain.Event, error) {
	query := `
        SELECT ` + eventColumns + `
        FROM events
        WHERE id = $1
    `
	event, err := scanEvent(r.db.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get event", zap.Error(err))
		return nil, err
	}
	return event, nil
}

func (r *Repository) GetByIDs(ctx context.Context, eventIDs []int) ([]domain.Event, error) {
	query := `
        SELECT ` + eventColumns + `
        FROM events
        WHERE id = ANY($1)
    `
	rows, err := r.db.Query(ctx, query, eventIDs)
	if err != nil {
		zap.L().Error("failed to get events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *Repository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	query := `
        INSERT INTO events (home, away, kickoff, status, cost, is_final)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + eventColumns + `
    `
	created, err := scanEvent(r.db.QueryRow(ctx, query,
		event.Home, event.Away, event.Kickoff, event.Status, event.Cost, event.IsFinal))
	if err != nil {
		zap.L().Error("failed to create event", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) List(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	query := `
        SELECT ` + eventColumns + `
        FROM events
        WHERE $1 = '' OR status = $1
        ORDER BY kickoff ASC
    `
	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		zap.L().Error("failed to list events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

// SetResult stores the official result and closes the event. Re-posting a
// result overwrites the previous one.
func (r *Repository) SetResult(ctx context.Context, eventID, home, away int) error {
	query := `
        UPDATE events
        SET result_home = $1, result_away = $2, status = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, home, away, domain.EventClosed, eventID)
	if err != nil {
		zap.L().Error("failed to set event result", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Close(ctx context.Context, eventID int) error {
	query := `
        UPDATE events
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, domain.EventClosed, eventID)
	if err != nil {
		zap.L().Error("failed to close event", zap.Error(err))
		return err
	}
	return nil
}

// FindStarted returns open events whose kickoff has already passed.
func (r *Repository) FindStarted(ctx context.Context, before time.Time, limit uint32) ([]domain.Event, error) {
	query := `
        SELECT ` + eventColumns + `
        FROM events
        WHERE status = $1 AND kickoff <= $2
        ORDER BY kickoff ASC
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, domain.EventOpen, before, int(limit))
	if err != nil {
		zap.L().Error("failed to find started events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

// FindPriorSettled returns the most recent event before the given kickoff
// that already has a posted result, or nil when there is none. The carry
// computation reads its pool.
func (r *Repository) FindPriorSettled(ctx context.Context, kickoff time.Time, excludeID int) (*domain.Event, error) {
	query := `
        SELECT ` + eventColumns + `
        FROM events
        WHERE result_home IS NOT NULL AND kickoff < $1 AND id != $2
        ORDER BY kickoff DESC
        LIMIT 1
    `
	event, err := scanEvent(r.db.QueryRow(ctx, query, kickoff, excludeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find prior settled event", zap.Error(err))
		return nil, err
	}
	return event, nil
}

func (r *Repository) Delete(ctx context.Context, eventID int) error {
	query := `
        DELETE FROM events
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, eventID)
	if err != nil {
		zap.L().Error("failed to delete event", zap.Error(err))
		return err
	}
	return nil
}

func collectEvents(rows pgx.Rows) ([]domain.Event, error) {
	var events []domain.Event
	for rows.Next() {
		var event domain.Event
		err := rows.Scan(&event.ID, &event.Home, &event.Away, &event.Kickoff, &event.Status,
			&event.Cost, &event.IsFinal, &event.ResultHome, &event.ResultAway)
		if err != nil {
			zap.L().Error("failed to scan event row", zap.Error(err))
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}
