package models

// Teacher represents a teacher employed by a school, optionally attached to a branch.
type Teacher struct {
	ID       int64     `db:"id" json:"id"`
	SchoolID NullInt64 `db:"school_id" json:"school_id" validate:"required"`
	BranchID NullInt64 `db:"branch_id" json:"branch_id"`
	Name     *string   `db:"name" json:"name" validate:"required,min=1,max=255"`
	Email    *string   `db:"email" json:"email" validate:"omitempty,max=255"`
}

// TeacherSchema describes the teachers table.
var TeacherSchema = Schema{
	Table: "teachers",
	Title: "Professores",
	Fields: []Field{
		required(ref("school_id", "schools")),
		ref("branch_id", "branches"),
		required(text("name")),
		text("email"),
	},
}

func (t Teacher) ReferenceValue(column string) NullInt64 {
	switch column {
	case "school_id":
		return t.SchoolID
	case "branch_id":
		return t.BranchID
	}
	return NullInt64{}
}
