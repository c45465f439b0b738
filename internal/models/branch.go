package models

// Branch represents a branch (campus) belonging to a school.
type Branch struct {
	ID       int64     `db:"id" json:"id"`
	SchoolID NullInt64 `db:"school_id" json:"school_id" validate:"required"`
	Name     *string   `db:"name" json:"name" validate:"required,min=1,max=255"`
	Address  *string   `db:"address" json:"address" validate:"omitempty,max=500"`
}

// BranchSchema describes the branches table.
var BranchSchema = Schema{
	Table: "branches",
	Title: "Filiais",
	Fields: []Field{
		required(ref("school_id", "schools")),
		required(text("name")),
		text("address"),
	},
}

func (b Branch) ReferenceValue(column string) NullInt64 {
	if column == "school_id" {
		return b.SchoolID
	}
	return NullInt64{}
}
