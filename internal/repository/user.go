package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/database"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const (
	userColEmail     = "email"
	userColName      = "name"
	userColAvatarURL = "avatar_url"

	userColumns = "id, email, name, avatar_url, created_at"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// List returns every user, newest first.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect user %s: %w", id, err)
	}
	return user, nil
}

// Create inserts all three user columns; fields left out of params are NULL.
func (r *UserRepository) Create(ctx context.Context, params model.CreateUserParams) (*model.User, error) {
	var user *model.User
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			INSERT INTO users (email, name, avatar_url)
			VALUES ($1, $2, $3)
			RETURNING `+userColumns,
			params.Email, params.Name, params.AvatarURL,
		)
		if err != nil {
			return err
		}
		user, err = pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.User])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", sqlerr.WithTable("users", err))
	}
	return user, nil
}

// Update changes only the fields set in params. ErrNoFields is returned
// without touching the database when nothing is set.
func (r *UserRepository) Update(ctx context.Context, id string, params model.UpdateUserParams) (*model.User, error) {
	set := &columnSet{}
	setIfPresent(set, userColEmail, params.Email)
	setIfPresent(set, userColName, params.Name)
	setIfPresent(set, userColAvatarURL, params.AvatarURL)

	if set.empty() {
		return nil, ErrNoFields
	}

	query := `UPDATE users SET ` + set.assignments() +
		` WHERE id = ` + set.nextPlaceholder() +
		` RETURNING ` + userColumns
	args := append(set.args, id)

	var user *model.User
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		user, err = pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.User])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user %s: %w", id, sqlerr.WithTable("users", err))
	}
	return user, nil
}

// Delete reports whether a user was removed. Their bookings go with them.
func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		deleted, err = deleteByID(ctx, tx, `DELETE FROM users WHERE id = $1 RETURNING id`, id)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return deleted, nil
}
