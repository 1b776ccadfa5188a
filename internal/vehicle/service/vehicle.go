package service

import (
	"context"

	"github.com/Tiagotpk/minimal-api/internal/vehicle/model"
)

const pageSize = 10

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	Update(ctx context.Context, vehicle model.Vehicle) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (model.Vehicle, error)
	List(ctx context.Context, limit, offset int, name, brand string) ([]model.Vehicle, error)
}

type VehicleService struct {
	repo VehicleRepository
}

func NewVehicleService(repo VehicleRepository) *VehicleService {
	return &VehicleService{repo: repo}
}

func (s *VehicleService) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return s.repo.Create(ctx, vehicle)
}

// Update replaces name, brand and year on the record matching vehicle.ID.
// Existence is the caller's concern: fetch first, then update.
func (s *VehicleService) Update(ctx context.Context, vehicle model.Vehicle) error {
	return s.repo.Update(ctx, vehicle)
}

func (s *VehicleService) Delete(ctx context.Context, vehicle model.Vehicle) error {
	return s.repo.Delete(ctx, vehicle.ID)
}

func (s *VehicleService) GetByID(ctx context.Context, id int) (model.Vehicle, error) {
	return s.repo.GetByID(ctx, id)
}

// List pages vehicles 10 at a time in creation order. A missing or
// non-positive page means the first page. Filters are optional substring
// matches on name and brand.
func (s *VehicleService) List(ctx context.Context, page *int, name, brand string) ([]model.Vehicle, error) {
	p := 1
	if page != nil && *page > 0 {
		p = *page
	}

	return s.repo.List(ctx, pageSize, (p-1)*pageSize, name, brand)
}
