package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Tiagotpk/minimal-api/internal/vehicle/model"
)

type VehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	query := `
		INSERT INTO vehicles (name, brand, year)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := r.db.QueryRow(ctx, query, vehicle.Name, vehicle.Brand, vehicle.Year).Scan(&vehicle.ID); err != nil {
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}

	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle model.Vehicle) error {
	query := `
		UPDATE vehicles
		SET name = $1, brand = $2, year = $3
		WHERE id = $4
	`

	if _, err := r.db.Exec(ctx, query, vehicle.Name, vehicle.Brand, vehicle.Year, vehicle.ID); err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM vehicles WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int) (model.Vehicle, error) {
	query := `
		SELECT id, name, brand, year
		FROM vehicles
		WHERE id = $1
	`

	var vehicle model.Vehicle
	err := r.db.QueryRow(ctx, query, id).Scan(&vehicle.ID, &vehicle.Name, &vehicle.Brand, &vehicle.Year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Vehicle{}, model.ErrNotFound
		}
		return model.Vehicle{}, fmt.Errorf("failed to fetch vehicle by id: %w", err)
	}

	return vehicle, nil
}

// List returns one page of vehicles in creation order. Empty filters match
// everything; non-empty ones are case-insensitive substring matches applied
// together.
func (r *VehicleRepository) List(ctx context.Context, limit, offset int, name, brand string) ([]model.Vehicle, error) {
	query := `
		SELECT id, name, brand, year
		FROM vehicles
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR brand ILIKE '%' || $2 || '%')
		ORDER BY id
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, name, brand, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := make([]model.Vehicle, 0)
	for rows.Next() {
		var vehicle model.Vehicle
		if err := rows.Scan(&vehicle.ID, &vehicle.Name, &vehicle.Brand, &vehicle.Year); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}

	return vehicles, rows.Err()
}
