package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Tiagotpk/minimal-api/internal/administrator/model"
)

type AdministratorRepository struct {
	db *pgxpool.Pool
}

func NewAdministratorRepository(db *pgxpool.Pool) *AdministratorRepository {
	return &AdministratorRepository{db: db}
}

func (r *AdministratorRepository) Create(ctx context.Context, adm model.Administrator) (model.Administrator, error) {
	query := `
		INSERT INTO administrators (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, role
	`

	var created model.Administrator
	err := r.db.QueryRow(ctx, query, adm.Email, adm.PasswordHash, adm.Role).Scan(
		&created.ID,
		&created.Email,
		&created.PasswordHash,
		&created.Role,
	)
	if err != nil {
		return model.Administrator{}, fmt.Errorf("failed to insert administrator: %w", err)
	}

	return created, nil
}

func (r *AdministratorRepository) GetByEmail(ctx context.Context, email string) (model.Administrator, error) {
	query := `
		SELECT id, email, password_hash, role
		FROM administrators
		WHERE email = $1
	`

	var adm model.Administrator
	err := r.db.QueryRow(ctx, query, email).Scan(&adm.ID, &adm.Email, &adm.PasswordHash, &adm.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Administrator{}, model.ErrNotFound
		}
		return model.Administrator{}, fmt.Errorf("failed to fetch administrator by email: %w", err)
	}

	return adm, nil
}

func (r *AdministratorRepository) GetByID(ctx context.Context, id int) (model.Administrator, error) {
	query := `
		SELECT id, email, password_hash, role
		FROM administrators
		WHERE id = $1
	`

	var adm model.Administrator
	err := r.db.QueryRow(ctx, query, id).Scan(&adm.ID, &adm.Email, &adm.PasswordHash, &adm.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Administrator{}, model.ErrNotFound
		}
		return model.Administrator{}, fmt.Errorf("failed to fetch administrator by id: %w", err)
	}

	return adm, nil
}

func (r *AdministratorRepository) List(ctx context.Context, limit, offset int) ([]model.Administrator, error) {
	query := `
		SELECT id, email, password_hash, role
		FROM administrators
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list administrators: %w", err)
	}
	defer rows.Close()

	return scanAdministrators(rows)
}

func (r *AdministratorRepository) ListAll(ctx context.Context) ([]model.Administrator, error) {
	query := `
		SELECT id, email, password_hash, role
		FROM administrators
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list administrators: %w", err)
	}
	defer rows.Close()

	return scanAdministrators(rows)
}

func scanAdministrators(rows pgx.Rows) ([]model.Administrator, error) {
	administrators := make([]model.Administrator, 0)

	for rows.Next() {
		var adm model.Administrator
		if err := rows.Scan(&adm.ID, &adm.Email, &adm.PasswordHash, &adm.Role); err != nil {
			return nil, err
		}
		administrators = append(administrators, adm)
	}

	return administrators, rows.Err()
}
