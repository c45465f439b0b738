package service

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/edugest/edugest-api/internal/models"
	"github.com/edugest/edugest-api/pkg/cache"
	appErrors "github.com/edugest/edugest-api/pkg/errors"
	applog "github.com/edugest/edugest-api/pkg/logger"
)

type resourceRepository[T any] interface {
	Schema() models.Schema
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id int64, item *T) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// ResourceDeps are the collaborators shared by every resource service.
type ResourceDeps struct {
	Payloads   *PayloadValidator
	References *ReferenceValidator
	Cache      *CacheService
	Logger     *zap.Logger
}

// ResourceService implements list, create, update and delete for one resource.
// Writes pass payload validation and the ordered reference checks before the
// repository is touched.
type ResourceService[T models.Record] struct {
	repo   resourceRepository[T]
	checks []ReferenceCheck
	deps   ResourceDeps
	logger *zap.Logger
}

// NewResourceService constructs a ResourceService.
func NewResourceService[T models.Record](repo resourceRepository[T], checks []ReferenceCheck, deps ResourceDeps) *ResourceService[T] {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("resource", repo.Schema().Table))
	return &ResourceService[T]{repo: repo, checks: checks, deps: deps, logger: logger}
}

// Schema describes the resource table.
func (s *ResourceService[T]) Schema() models.Schema {
	return s.repo.Schema()
}

// List returns every row, newest first.
func (s *ResourceService[T]) List(ctx context.Context) ([]T, error) {
	key := cache.ListKey(s.repo.Schema().Table)
	var cached []T
	if hit, _ := s.deps.Cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		s.log(ctx).Error("list failed", zap.Error(err))
		return nil, appErrors.Storage(err, http.StatusInternalServerError)
	}

	_ = s.deps.Cache.Set(ctx, key, items, 0)
	return items, nil
}

// Create validates and inserts item, returning the stored row.
func (s *ResourceService[T]) Create(ctx context.Context, item *T) (*T, error) {
	if err := s.validate(ctx, item); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.log(ctx).Error("create failed", zap.Error(err))
		return nil, appErrors.Storage(err, http.StatusBadRequest)
	}

	s.invalidate(ctx)
	return created, nil
}

// Update validates item and replaces row id. A missing row yields nil without error.
func (s *ResourceService[T]) Update(ctx context.Context, id int64, item *T) (*T, error) {
	if err := s.validate(ctx, item); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, item)
	if err != nil {
		s.log(ctx).Error("update failed", zap.Int64("id", id), zap.Error(err))
		return nil, appErrors.Storage(err, http.StatusBadRequest)
	}
	if updated == nil {
		s.log(ctx).Debug("update matched no row", zap.Int64("id", id))
		return nil, nil
	}

	s.invalidate(ctx)
	return updated, nil
}

// Delete removes row id.
func (s *ResourceService[T]) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log(ctx).Error("delete failed", zap.Int64("id", id), zap.Error(err))
		return appErrors.Storage(err, http.StatusBadRequest)
	}

	s.invalidate(ctx)
	return nil
}

func (s *ResourceService[T]) validate(ctx context.Context, item *T) error {
	if item == nil {
		return appErrors.Clone(appErrors.ErrValidation, "")
	}
	if s.deps.Payloads != nil {
		if err := s.deps.Payloads.Validate(item); err != nil {
			return err
		}
	}
	if s.deps.References != nil {
		if err := s.deps.References.Validate(ctx, *item, s.checks); err != nil {
			return err
		}
	}
	return nil
}

func (s *ResourceService[T]) log(ctx context.Context) *zap.Logger {
	return applog.WithContext(ctx, s.logger)
}

// invalidate drops every cached listing: cascades reach other tables.
func (s *ResourceService[T]) invalidate(ctx context.Context) {
	_ = s.deps.Cache.Invalidate(ctx, cache.ListPattern())
}
