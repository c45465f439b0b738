package service

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/edugest/edugest-api/internal/models"
	appErrors "github.com/edugest/edugest-api/pkg/errors"
)

type referenceLookup interface {
	Exists(ctx context.Context, table string, id int64) (bool, error)
}

// ReferenceCheck names one foreign key column, the table it must point into and
// the message reported when it does not.
type ReferenceCheck struct {
	Field   string
	Target  string
	Message string
}

// ReferenceValidator runs reference checks in order and stops at the first failure.
type ReferenceValidator struct {
	lookup referenceLookup
	logger *zap.Logger
}

// NewReferenceValidator constructs a ReferenceValidator.
func NewReferenceValidator(lookup referenceLookup, logger *zap.Logger) *ReferenceValidator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReferenceValidator{lookup: lookup, logger: logger}
}

// Validate verifies every check against record. Null and zero values are not
// references and are skipped.
func (v *ReferenceValidator) Validate(ctx context.Context, record models.Record, checks []ReferenceCheck) error {
	for _, check := range checks {
		value := record.ReferenceValue(check.Field)
		if !value.Present() {
			continue
		}

		ok, err := v.lookup.Exists(ctx, check.Target, value.Int64)
		if err != nil {
			v.logger.Error("reference lookup failed", zap.String("field", check.Field), zap.Error(err))
			return appErrors.Storage(err, http.StatusBadRequest)
		}
		if !ok {
			return appErrors.DanglingReference(check.Field, check.Message)
		}
	}
	return nil
}
