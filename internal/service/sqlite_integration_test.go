//go:build cgo

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edugest/edugest-api/internal/models"
	"github.com/edugest/edugest-api/internal/repository"
	"github.com/edugest/edugest-api/pkg/config"
	"github.com/edugest/edugest-api/pkg/database"
	appErrors "github.com/edugest/edugest-api/pkg/errors"
)

type sqliteStack struct {
	db        *sqlx.DB
	schools   *ResourceService[models.School]
	branches  *ResourceService[models.Branch]
	teachers  *ResourceService[models.Teacher]
	students  *ResourceService[models.Student]
	classes   *ResourceService[models.Class]
	schedules *ResourceService[models.Schedule]
}

func newSQLiteStack(t *testing.T) *sqliteStack {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db, config.DriverSQLite))

	deps := ResourceDeps{
		Payloads:   newTestPayloadValidator(t),
		References: NewReferenceValidator(repository.NewReferenceRepository(db, nil), nil),
	}
	return &sqliteStack{
		db:        db,
		schools:   NewResourceService[models.School](repository.NewCRUDRepository[models.School](db, models.SchoolSchema, nil), SchoolChecks, deps),
		branches:  NewResourceService[models.Branch](repository.NewCRUDRepository[models.Branch](db, models.BranchSchema, nil), BranchChecks, deps),
		teachers:  NewResourceService[models.Teacher](repository.NewCRUDRepository[models.Teacher](db, models.TeacherSchema, nil), TeacherChecks, deps),
		students:  NewResourceService[models.Student](repository.NewCRUDRepository[models.Student](db, models.StudentSchema, nil), StudentChecks, deps),
		classes:   NewResourceService[models.Class](repository.NewCRUDRepository[models.Class](db, models.ClassSchema, nil), ClassChecks, deps),
		schedules: NewResourceService[models.Schedule](repository.NewCRUDRepository[models.Schedule](db, models.ScheduleSchema, nil), ScheduleChecks, deps),
	}
}

func (s *sqliteStack) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func TestSQLiteClassWithUnknownTeacherIsRejected(t *testing.T) {
	ctx := context.Background()
	stack := newSQLiteStack(t)

	school, err := stack.schools.Create(ctx, &models.School{Name: strPtr("Escola A")})
	require.NoError(t, err)

	teacher, err := stack.teachers.Create(ctx, &models.Teacher{SchoolID: models.NewNullInt64(school.ID), Name: strPtr("Ana")})
	require.NoError(t, err)

	class, err := stack.classes.Create(ctx, &models.Class{
		SchoolID:  models.NewNullInt64(school.ID),
		Name:      strPtr("10A"),
		TeacherID: models.NewNullInt64(teacher.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, teacher.ID, class.TeacherID.Int64)

	_, err = stack.classes.Create(ctx, &models.Class{
		SchoolID:  models.NewNullInt64(school.ID),
		Name:      strPtr("10B"),
		TeacherID: models.NewNullInt64(9999),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrDanglingReference))
	assert.Contains(t, err.Error(), "Professor")
	assert.Contains(t, err.Error(), "Professores")
	assert.Equal(t, 1, stack.count(t, "classes"))
}

func TestSQLiteZeroReferenceIsIgnoredBeforeInsert(t *testing.T) {
	ctx := context.Background()
	stack := newSQLiteStack(t)

	school, err := stack.schools.Create(ctx, &models.School{Name: strPtr("Escola A")})
	require.NoError(t, err)

	class, err := stack.classes.Create(ctx, &models.Class{
		SchoolID:  models.NewNullInt64(school.ID),
		Name:      strPtr("10A"),
		TeacherID: models.NullInt64{},
	})
	require.NoError(t, err)
	assert.False(t, class.TeacherID.Valid)
}

// populated holds one row per table, all hanging off a single school.
type populated struct {
	school   *models.School
	branch   *models.Branch
	teacher  *models.Teacher
	student  *models.Student
	class    *models.Class
	schedule *models.Schedule
}

func (s *sqliteStack) populate(t *testing.T) populated {
	t.Helper()
	ctx := context.Background()
	var (
		p   populated
		err error
	)

	p.school, err = s.schools.Create(ctx, &models.School{Name: strPtr("Escola A")})
	require.NoError(t, err)
	schoolID := models.NewNullInt64(p.school.ID)

	p.branch, err = s.branches.Create(ctx, &models.Branch{SchoolID: schoolID, Name: strPtr("Sede"), Address: strPtr("Rua 1")})
	require.NoError(t, err)
	branchID := models.NewNullInt64(p.branch.ID)

	p.teacher, err = s.teachers.Create(ctx, &models.Teacher{SchoolID: schoolID, BranchID: branchID, Name: strPtr("Ana"), Email: strPtr("")})
	require.NoError(t, err)

	p.student, err = s.students.Create(ctx, &models.Student{SchoolID: schoolID, BranchID: branchID, Name: strPtr("Rui")})
	require.NoError(t, err)

	p.class, err = s.classes.Create(ctx, &models.Class{
		SchoolID:  schoolID,
		BranchID:  branchID,
		Name:      strPtr("10A"),
		TeacherID: models.NewNullInt64(p.teacher.ID),
	})
	require.NoError(t, err)

	p.schedule, err = s.schedules.Create(ctx, &models.Schedule{
		ClassID:   models.NewNullInt64(p.class.ID),
		Weekday:   models.NewNullInt64(1),
		StartTime: strPtr("08:00"),
		EndTime:   strPtr("09:00"),
	})
	require.NoError(t, err)

	return p
}

func TestSQLiteCreateRoundTripsEveryResource(t *testing.T) {
	stack := newSQLiteStack(t)
	p := stack.populate(t)

	assert.Equal(t, "Rua 1", *p.branch.Address)
	require.NotNil(t, p.teacher.Email)
	assert.Equal(t, "", *p.teacher.Email)
	assert.Equal(t, p.branch.ID, p.student.BranchID.Int64)
	assert.Equal(t, p.teacher.ID, p.class.TeacherID.Int64)
	assert.Equal(t, p.class.ID, p.schedule.ClassID.Int64)
	assert.Equal(t, int64(1), p.schedule.Weekday.Int64)
	assert.Equal(t, "08:00", *p.schedule.StartTime)
}

func TestSQLiteTeacherDeleteNullsClassTeacher(t *testing.T) {
	ctx := context.Background()
	stack := newSQLiteStack(t)
	p := stack.populate(t)

	require.NoError(t, stack.teachers.Delete(ctx, p.teacher.ID))

	classes, err := stack.classes.List(ctx)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.False(t, classes[0].TeacherID.Valid)
	assert.Equal(t, 1, stack.count(t, "schedules"))
}

func TestSQLiteSchoolDeleteCascadesToEveryTable(t *testing.T) {
	ctx := context.Background()
	stack := newSQLiteStack(t)
	p := stack.populate(t)
	other, err := stack.schools.Create(ctx, &models.School{Name: strPtr("Escola B")})
	require.NoError(t, err)

	require.NoError(t, stack.schools.Delete(ctx, p.school.ID))

	for _, table := range []string{"branches", "teachers", "students", "classes", "schedules"} {
		assert.Zero(t, stack.count(t, table), table)
	}
	schools, err := stack.schools.List(ctx)
	require.NoError(t, err)
	require.Len(t, schools, 1)
	assert.Equal(t, other.ID, schools[0].ID)
}

func TestSQLiteClassDeleteCascadesToSchedules(t *testing.T) {
	stack := newSQLiteStack(t)
	p := stack.populate(t)

	require.NoError(t, stack.classes.Delete(context.Background(), p.class.ID))

	assert.Zero(t, stack.count(t, "schedules"))
	assert.Equal(t, 1, stack.count(t, "teachers"))
}

func TestSQLiteBranchDeleteNullsDependants(t *testing.T) {
	ctx := context.Background()
	stack := newSQLiteStack(t)
	p := stack.populate(t)

	require.NoError(t, stack.branches.Delete(ctx, p.branch.ID))

	teachers, err := stack.teachers.List(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.False(t, teachers[0].BranchID.Valid)

	students, err := stack.students.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.False(t, students[0].BranchID.Valid)

	classes, err := stack.classes.List(ctx)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.False(t, classes[0].BranchID.Valid)
	assert.Equal(t, p.teacher.ID, classes[0].TeacherID.Int64)

	assert.Equal(t, 1, stack.count(t, "schedules"))
}

func TestSQLiteScheduleWithUnknownClassIsRejected(t *testing.T) {
	ctx := context.Background()
	stack := newSQLiteStack(t)
	p := stack.populate(t)

	_, err := stack.schedules.Create(ctx, &models.Schedule{
		ClassID:   models.NewNullInt64(9999),
		Weekday:   models.NewNullInt64(2),
		StartTime: strPtr("10:00"),
		EndTime:   strPtr("11:00"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrDanglingReference))
	assert.Equal(t, "Turma especificada não existe. Por favor, seleccione uma turma válida.", appErrors.FromError(err).Message)
	assert.Equal(t, 1, stack.count(t, "schedules"))

	_, err = stack.schedules.Update(ctx, p.schedule.ID, &models.Schedule{
		ClassID:   models.NewNullInt64(9999),
		Weekday:   models.NewNullInt64(5),
		StartTime: strPtr("10:00"),
		EndTime:   strPtr("11:00"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrDanglingReference))

	schedules, err := stack.schedules.List(ctx)
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, *p.schedule, schedules[0])
}

func TestSQLiteUpdateWithDanglingReferenceLeavesRowUnchanged(t *testing.T) {
	ctx := context.Background()
	stack := newSQLiteStack(t)
	p := stack.populate(t)

	_, err := stack.students.Update(ctx, p.student.ID, &models.Student{
		SchoolID: models.NewNullInt64(p.school.ID),
		BranchID: models.NewNullInt64(9999),
		Name:     strPtr("Outro nome"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrDanglingReference))
	assert.Contains(t, err.Error(), "Filial")

	_, err = stack.classes.Update(ctx, p.class.ID, &models.Class{
		SchoolID:  models.NewNullInt64(p.school.ID),
		Name:      strPtr("11B"),
		TeacherID: models.NewNullInt64(9999),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Professores")

	students, err := stack.students.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, *p.student, students[0])

	classes, err := stack.classes.List(ctx)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, *p.class, classes[0])
}

func TestSQLiteUpdateOfMissingRowReturnsNil(t *testing.T) {
	stack := newSQLiteStack(t)

	updated, err := stack.schools.Update(context.Background(), 42, &models.School{Name: strPtr("Nada")})
	require.NoError(t, err)
	assert.Nil(t, updated)
}
