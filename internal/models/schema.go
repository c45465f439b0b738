package models

// FieldKind classifies a column in a resource schema.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldInteger
	FieldReference
)

// Field describes one writable column of a resource table.
type Field struct {
	Column string
	Kind   FieldKind
	// Target is the referenced table for FieldReference columns.
	Target   string
	Required bool
}

// Schema is the ordered list of writable columns of a resource table.
// The primary key "id" is implicit.
type Schema struct {
	Table  string
	Title  string
	Fields []Field
}

// Columns returns the writable column names in declaration order.
func (s Schema) Columns() []string {
	cols := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		cols[i] = f.Column
	}
	return cols
}

// Headers returns "id" followed by the writable columns.
func (s Schema) Headers() []string {
	return append([]string{"id"}, s.Columns()...)
}

// References returns the foreign key fields in declaration order.
func (s Schema) References() []Field {
	var refs []Field
	for _, f := range s.Fields {
		if f.Kind == FieldReference {
			refs = append(refs, f)
		}
	}
	return refs
}

// Record is implemented by every resource row.
type Record interface {
	// ReferenceValue returns the foreign key stored in column, or a null value.
	ReferenceValue(column string) NullInt64
}

func text(column string) Field { return Field{Column: column, Kind: FieldText} }

func required(f Field) Field {
	f.Required = true
	return f
}

func ref(column, target string) Field {
	return Field{Column: column, Kind: FieldReference, Target: target}
}

func integer(column string) Field { return Field{Column: column, Kind: FieldInteger} }

// Schemas lists every resource schema in dependency order.
func Schemas() []Schema {
	return []Schema{SchoolSchema, BranchSchema, TeacherSchema, StudentSchema, ClassSchema, ScheduleSchema}
}
