package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Tiagotpk/minimal-api/internal/administrator/model"
	"github.com/Tiagotpk/minimal-api/internal/common/auth"
	"github.com/Tiagotpk/minimal-api/internal/common/logger"
)

// Records per page when a positive page is requested. Listing without a page
// (or with page <= 0) returns the full set.
const pageSize = 10

type AdministratorRepository interface {
	Create(ctx context.Context, adm model.Administrator) (model.Administrator, error)
	GetByEmail(ctx context.Context, email string) (model.Administrator, error)
	GetByID(ctx context.Context, id int) (model.Administrator, error)
	List(ctx context.Context, limit, offset int) ([]model.Administrator, error)
	ListAll(ctx context.Context) ([]model.Administrator, error)
}

type AdministratorService struct {
	repo   AdministratorRepository
	tokens *auth.Manager
}

func NewAdministratorService(repo AdministratorRepository, tokens *auth.Manager) *AdministratorService {
	return &AdministratorService{repo: repo, tokens: tokens}
}

// Login checks the credentials and issues a signed token carrying the
// administrator's email and role. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AdministratorService) Login(ctx context.Context, email, password string) (model.Administrator, string, error) {
	adm, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Administrator{}, "", model.ErrInvalidCredentials
		}
		return model.Administrator{}, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(adm.PasswordHash), []byte(password)) != nil {
		return model.Administrator{}, "", model.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(adm.Email, string(adm.Role))
	if err != nil {
		return model.Administrator{}, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return adm, token, nil
}

func (s *AdministratorService) Create(ctx context.Context, email, password string, role model.Role) (model.Administrator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.Administrator{}, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.Create(ctx, model.Administrator{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
}

// List returns one page of 10 administrators when page is positive, and the
// whole set when page is absent or not positive.
func (s *AdministratorService) List(ctx context.Context, page *int) ([]model.Administrator, error) {
	if page == nil || *page <= 0 {
		return s.repo.ListAll(ctx)
	}
	return s.repo.List(ctx, pageSize, (*page-1)*pageSize)
}

func (s *AdministratorService) GetByID(ctx context.Context, id int) (model.Administrator, error) {
	return s.repo.GetByID(ctx, id)
}

// EnsureSeed creates the bootstrap administrator when it does not exist yet,
// hashing the configured password. Idempotent across restarts.
func (s *AdministratorService) EnsureSeed(ctx context.Context, email, password string) error {
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return err
	}

	if _, err := s.Create(ctx, email, password, model.RoleAdministrator); err != nil {
		return fmt.Errorf("failed to seed administrator: %w", err)
	}

	logger.Info("seed_administrator", fmt.Sprintf("Seeded administrator %s", email), "")
	return nil
}
