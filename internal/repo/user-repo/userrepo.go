package userrepo

import (
	"context"
	"errors"

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

func (r *Repository) GetByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `
        SELECT id, name, role, credits, score
        FROM users
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Role, &user.Credits, &user.Score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UpdateBalanceAndScore(ctx context.Context, userID int, credits, score int64) error {
	query := `
        UPDATE users
        SET credits = $1, score = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, credits, score, userID)
	if err != nil {
		zap.L().Error("failed to update user balance and score", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddCredits(ctx context.Context, userID int, amount int64) error {
	query := `
        UPDATE users
        SET credits = credits + $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, amount, userID)
	if err != nil {
		zap.L().Error("failed to add user credits", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetScore(ctx context.Context, userID int, score int64) error {
	query := `
        UPDATE users
        SET score = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, score, userID)
	if err != nil {
		zap.L().Error("failed to set user score", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByScore(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT id, name, role, credits, score
        FROM users
        ORDER BY score DESC, credits DESC, id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Name, &user.Role, &user.Credits, &user.Score)
		if err != nil {
			zap.L().Error("failed to scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}
