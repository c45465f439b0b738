package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullInt64UnmarshalAcceptsFormValues(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
		value int64
	}{
		{name: "number", input: `{"school_id": 7}`, valid: true, value: 7},
		{name: "numeric string", input: `{"school_id": " 12 "}`, valid: true, value: 12},
		{name: "empty string", input: `{"school_id": ""}`},
		{name: "null", input: `{"school_id": null}`},
		{name: "absent", input: `{}`},
		{name: "zero", input: `{"school_id": 0}`, valid: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var branch Branch
			require.NoError(t, json.Unmarshal([]byte(tc.input), &branch))
			assert.Equal(t, tc.valid, branch.SchoolID.Valid)
			assert.Equal(t, tc.value, branch.SchoolID.Int64)
		})
	}
}

func TestNullInt64RejectsGarbage(t *testing.T) {
	var branch Branch
	err := json.Unmarshal([]byte(`{"school_id": "abc"}`), &branch)
	assert.Error(t, err)
}

func TestNullInt64Present(t *testing.T) {
	assert.True(t, NewNullInt64(3).Present())
	assert.False(t, NewNullInt64(0).Present())
	assert.False(t, NullInt64{}.Present())
}

func TestNullInt64Marshal(t *testing.T) {
	out, err := json.Marshal(Class{ID: 1, SchoolID: NewNullInt64(2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"school_id":2,"branch_id":null,"name":null,"teacher_id":null}`, string(out))
}

func TestSchemaHelpers(t *testing.T) {
	assert.Equal(t, []string{"id", "class_id", "weekday", "start_time", "end_time"}, ScheduleSchema.Headers())

	refs := ClassSchema.References()
	require.Len(t, refs, 3)
	assert.Equal(t, "schools", refs[0].Target)
	assert.Equal(t, "branches", refs[1].Target)
	assert.Equal(t, "teachers", refs[2].Target)

	assert.Empty(t, SchoolSchema.References())
}

func TestSchemasAreInDependencyOrder(t *testing.T) {
	seen := map[string]bool{}
	for _, schema := range Schemas() {
		for _, ref := range schema.References() {
			assert.True(t, seen[ref.Target], "%s references %s before it is declared", schema.Table, ref.Target)
		}
		seen[schema.Table] = true
	}
}

func TestReferenceValue(t *testing.T) {
	class := Class{SchoolID: NewNullInt64(1), BranchID: NewNullInt64(2), TeacherID: NewNullInt64(3)}
	assert.Equal(t, int64(1), class.ReferenceValue("school_id").Int64)
	assert.Equal(t, int64(2), class.ReferenceValue("branch_id").Int64)
	assert.Equal(t, int64(3), class.ReferenceValue("teacher_id").Int64)
	assert.False(t, class.ReferenceValue("name").Valid)
}
