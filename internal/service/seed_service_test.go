package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edugest/edugest-api/internal/models"
)

func TestSeedServiceIsIdempotent(t *testing.T) {
	users := newMemoryUserRepo()
	auth := newTestAuthService(users)
	schools := newMemoryResourceRepo[models.School](models.SchoolSchema, func(s *models.School, id int64) { s.ID = id })
	branches := newMemoryResourceRepo[models.Branch](models.BranchSchema, func(b *models.Branch, id int64) { b.ID = id })
	seed := NewSeedService(auth, schools, branches, nil)

	require.NoError(t, seed.Run(context.Background()))
	require.NoError(t, seed.Run(context.Background()))

	assert.Len(t, users.users, 1)
	require.Len(t, schools.rows, 1)
	require.Len(t, branches.rows, 1)
	assert.Equal(t, "Escola Secundária de Exemplo", *schools.rows[1].Name)
	branch := branches.rows[1]
	assert.Equal(t, models.NewNullInt64(1), branch.SchoolID)
	assert.Equal(t, "Sede Principal", *branch.Name)
	assert.Equal(t, "Rua da Educação, 123", *branch.Address)

	_, err := auth.Login(context.Background(), models.CredentialsRequest{Email: DemoAdminEmail, Password: DemoAdminPassword})
	assert.NoError(t, err)
}

func TestSeedServiceSkipsPopulatedDatabase(t *testing.T) {
	schools := newMemoryResourceRepo[models.School](models.SchoolSchema, func(s *models.School, id int64) { s.ID = id })
	branches := newMemoryResourceRepo[models.Branch](models.BranchSchema, func(b *models.Branch, id int64) { b.ID = id })
	_, err := schools.Create(context.Background(), &models.School{Name: strPtr("Existente")})
	require.NoError(t, err)

	seed := NewSeedService(newTestAuthService(newMemoryUserRepo()), schools, branches, nil)
	require.NoError(t, seed.Run(context.Background()))
	assert.Len(t, schools.rows, 1)
	assert.Empty(t, branches.rows)
}
