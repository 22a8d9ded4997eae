package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yogaprasetya/akun-api/internal/domain/entity"
	"github.com/yogaprasetya/akun-api/internal/domain/repository"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, email, username, password, alamat, nomor_hp, disabled, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.Password, &u.Alamat,
		&u.NomorHP, &u.Disabled, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// Create inserts the user inside a transaction and fills in the
// store-assigned id and timestamps. The unique email index maps to
// repository.ErrEmailTaken, so a concurrent duplicate registration
// loses cleanly instead of creating a second account.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO users (email, username, password, alamat, nomor_hp, disabled)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at
		`, u.Email, u.Username, u.Password, u.Alamat, u.NomorHP, u.Disabled)
		return row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrEmailTaken
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE username = $1
	`, username))
}

// Update overwrites the mutable columns inside a transaction; either every
// field applies or none do.
func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		res, err := tx.Exec(ctx, `
			UPDATE users
			SET email = $1, username = $2, password = $3, alamat = $4, nomor_hp = $5, disabled = $6, updated_at = $7
			WHERE id = $8
		`, u.Email, u.Username, u.Password, u.Alamat, u.NomorHP, u.Disabled, u.UpdatedAt, u.ID)
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}

// Delete is part of the store contract but no route exposes it.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
