package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/edugest/edugest-api/internal/models"
)

// Demo data created by SeedService.
const (
	DemoAdminEmail    = "admin@demo.com"
	DemoAdminPassword = "admin123"
	demoSchoolName    = "Escola Secundária de Exemplo"
	demoBranchName    = "Sede Principal"
	demoBranchAddress = "Rua da Educação, 123"
)

type userEnsurer interface {
	EnsureUser(ctx context.Context, req models.CredentialsRequest) (bool, error)
}

type schoolStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, item *models.School) (*models.School, error)
}

type branchStore interface {
	Create(ctx context.Context, item *models.Branch) (*models.Branch, error)
}

// SeedService populates an empty database with a demo admin, school and branch.
type SeedService struct {
	users    userEnsurer
	schools  schoolStore
	branches branchStore
	logger   *zap.Logger
}

// NewSeedService constructs a SeedService.
func NewSeedService(users userEnsurer, schools schoolStore, branches branchStore, logger *zap.Logger) *SeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedService{users: users, schools: schools, branches: branches, logger: logger}
}

// Run is idempotent: the admin is created only if missing and the school only
// when no school exists.
func (s *SeedService) Run(ctx context.Context) error {
	created, err := s.users.EnsureUser(ctx, models.CredentialsRequest{Email: DemoAdminEmail, Password: DemoAdminPassword})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if created {
		s.logger.Info("demo admin created", zap.String("email", DemoAdminEmail))
	}

	total, err := s.schools.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed count schools: %w", err)
	}
	if total > 0 {
		return nil
	}

	name := demoSchoolName
	school, err := s.schools.Create(ctx, &models.School{Name: &name})
	if err != nil {
		return fmt.Errorf("seed school: %w", err)
	}

	branchName, address := demoBranchName, demoBranchAddress
	if _, err := s.branches.Create(ctx, &models.Branch{
		SchoolID: models.NewNullInt64(school.ID),
		Name:     &branchName,
		Address:  &address,
	}); err != nil {
		return fmt.Errorf("seed branch: %w", err)
	}

	s.logger.Info("demo school created", zap.Int64("school_id", school.ID))
	return nil
}
