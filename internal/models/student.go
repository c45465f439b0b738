package models

// Student represents an enrolled student.
type Student struct {
	ID       int64     `db:"id" json:"id"`
	SchoolID NullInt64 `db:"school_id" json:"school_id" validate:"required"`
	BranchID NullInt64 `db:"branch_id" json:"branch_id"`
	Name     *string   `db:"name" json:"name" validate:"required,min=1,max=255"`
	Email    *string   `db:"email" json:"email" validate:"omitempty,max=255"`
}

// StudentSchema describes the students table.
var StudentSchema = Schema{
	Table: "students",
	Title: "Alunos",
	Fields: []Field{
		required(ref("school_id", "schools")),
		ref("branch_id", "branches"),
		required(text("name")),
		text("email"),
	},
}

func (s Student) ReferenceValue(column string) NullInt64 {
	switch column {
	case "school_id":
		return s.SchoolID
	case "branch_id":
		return s.BranchID
	}
	return NullInt64{}
}
