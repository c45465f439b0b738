package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edugest/edugest-api/internal/models"
)

func TestFindByEmail(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "role"}).
		AddRow(int64(1), "admin@demo.com", "hash", string(models.RoleAdmin))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, role FROM users WHERE email = ? LIMIT 1")).
		WithArgs("admin@demo.com").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "admin@demo.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmailMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT id, email, password_hash, role FROM users").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "nobody@demo.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestExistsByEmail(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM users WHERE email = ? LIMIT 1")).
		WithArgs("admin@demo.com").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	exists, err := repo.ExistsByEmail(context.Background(), "admin@demo.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateUser(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (email, password_hash, role) VALUES (?, ?, ?) RETURNING id")).
		WithArgs("new@demo.com", "hash", "admin").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	user := &models.User{Email: "new@demo.com", PasswordHash: "hash", Role: models.RoleAdmin}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, int64(3), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserDuplicate(t *testing.T) {
	cases := map[string]error{
		"sqlite":   errors.New("UNIQUE constraint failed: users.email"),
		"postgres": &pq.Error{Code: "23505"},
	}
	for name, driverErr := range cases {
		t.Run(name, func(t *testing.T) {
			db, mock, cleanup := newMock(t)
			defer cleanup()
			repo := NewUserRepository(db)

			mock.ExpectQuery("INSERT INTO users").WillReturnError(driverErr)

			err := repo.Create(context.Background(), &models.User{Email: "dup@demo.com", PasswordHash: "hash", Role: models.RoleAdmin})
			assert.ErrorIs(t, err, ErrDuplicateEmail)
		})
	}
}
