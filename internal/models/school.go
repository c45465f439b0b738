package models

// School represents a school row.
type School struct {
	ID   int64   `db:"id" json:"id"`
	Name *string `db:"name" json:"name" validate:"required,min=1,max=255"`
}

// SchoolSchema describes the schools table.
var SchoolSchema = Schema{
	Table:  "schools",
	Title:  "Escolas",
	Fields: []Field{required(text("name"))},
}

// ReferenceValue implements Record; schools reference nothing.
func (School) ReferenceValue(string) NullInt64 { return NullInt64{} }
