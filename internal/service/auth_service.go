package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/edugest/edugest-api/internal/models"
	"github.com/edugest/edugest-api/internal/repository"
	appErrors "github.com/edugest/edugest-api/pkg/errors"
)

const missingCredentialsMessage = "Email e palavra-passe são obrigatórios"

type authUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) error
}

type tokenIssuer interface {
	Issue(identity models.UserInfo) (string, error)
}

// AuthService provides registration and login use cases.
type AuthService struct {
	repo     authUserRepository
	tokens   tokenIssuer
	logger   *zap.Logger
	hashCost int
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authUserRepository, tokens tokenIssuer, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{repo: repo, tokens: tokens, logger: logger, hashCost: bcrypt.DefaultCost}
}

// Register stores a new admin user with a bcrypt hashed password.
func (s *AuthService) Register(ctx context.Context, req models.CredentialsRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, missingCredentialsMessage)
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("check user email failed", zap.Error(err))
		return nil, appErrors.Storage(err, http.StatusBadRequest)
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicateUser, "")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	user := &models.User{Email: req.Email, PasswordHash: string(hash), Role: models.RoleAdmin}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, appErrors.Clone(appErrors.ErrDuplicateUser, "")
		}
		s.logger.Error("create user failed", zap.Error(err))
		return nil, appErrors.Storage(err, http.StatusBadRequest)
	}

	s.logger.Info("user registered", zap.Int64("user_id", user.ID))
	return user, nil
}

// Authenticate checks the credentials and returns the stored user.
func (s *AuthService) Authenticate(ctx context.Context, req models.CredentialsRequest) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		s.logger.Error("find user failed", zap.Error(err))
		return nil, appErrors.Storage(err, http.StatusInternalServerError)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}
	return user, nil
}

// Login authenticates and issues an access token.
func (s *AuthService) Login(ctx context.Context, req models.CredentialsRequest) (string, error) {
	user, err := s.Authenticate(ctx, req)
	if err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(models.UserInfo{ID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}
	return token, nil
}

// EnsureUser registers the credentials unless the email is already taken.
// It reports whether a user was created.
func (s *AuthService) EnsureUser(ctx context.Context, req models.CredentialsRequest) (bool, error) {
	if _, err := s.Register(ctx, req); err != nil {
		if errors.Is(err, appErrors.ErrDuplicateUser) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
