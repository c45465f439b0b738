package service

import "github.com/edugest/edugest-api/internal/models"

var (
	schoolReference = ReferenceCheck{
		Field:   "school_id",
		Target:  models.SchoolSchema.Table,
		Message: "Escola especificada não existe. Por favor, seleccione uma escola válida.",
	}
	branchReference = ReferenceCheck{
		Field:   "branch_id",
		Target:  models.BranchSchema.Table,
		Message: "Filial especificada não existe. Por favor, seleccione uma filial válida.",
	}
	teacherReference = ReferenceCheck{
		Field:   "teacher_id",
		Target:  models.TeacherSchema.Table,
		Message: `Professor especificado não existe. Por favor, crie primeiro o professor na secção "Professores" antes de o atribuir a uma turma.`,
	}
	classReference = ReferenceCheck{
		Field:   "class_id",
		Target:  models.ClassSchema.Table,
		Message: "Turma especificada não existe. Por favor, seleccione uma turma válida.",
	}
)

// Ordered reference checks per resource. Order decides which message wins
// when several references dangle.
var (
	SchoolChecks   []ReferenceCheck
	BranchChecks   = []ReferenceCheck{schoolReference}
	TeacherChecks  = []ReferenceCheck{schoolReference, branchReference}
	StudentChecks  = []ReferenceCheck{schoolReference, branchReference}
	ClassChecks    = []ReferenceCheck{schoolReference, branchReference, teacherReference}
	ScheduleChecks = []ReferenceCheck{classReference}
)
