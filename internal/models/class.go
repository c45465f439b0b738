package models

// Class represents a class (turma) with an optional homeroom teacher.
type Class struct {
	ID        int64     `db:"id" json:"id"`
	SchoolID  NullInt64 `db:"school_id" json:"school_id" validate:"required"`
	BranchID  NullInt64 `db:"branch_id" json:"branch_id"`
	Name      *string   `db:"name" json:"name" validate:"required,min=1,max=255"`
	TeacherID NullInt64 `db:"teacher_id" json:"teacher_id"`
}

// ClassSchema describes the classes table.
var ClassSchema = Schema{
	Table: "classes",
	Title: "Turmas",
	Fields: []Field{
		required(ref("school_id", "schools")),
		ref("branch_id", "branches"),
		required(text("name")),
		ref("teacher_id", "teachers"),
	},
}

func (c Class) ReferenceValue(column string) NullInt64 {
	switch column {
	case "school_id":
		return c.SchoolID
	case "branch_id":
		return c.BranchID
	case "teacher_id":
		return c.TeacherID
	}
	return NullInt64{}
}
