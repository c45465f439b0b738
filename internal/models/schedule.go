package models

// Schedule represents a weekly time slot of a class. Weekday runs from 0 (Sunday) to 6.
type Schedule struct {
	ID        int64     `db:"id" json:"id"`
	ClassID   NullInt64 `db:"class_id" json:"class_id" validate:"required"`
	Weekday   NullInt64 `db:"weekday" json:"weekday" validate:"weekday"`
	StartTime *string   `db:"start_time" json:"start_time" validate:"required,min=1,max=16"`
	EndTime   *string   `db:"end_time" json:"end_time" validate:"required,min=1,max=16"`
}

// ScheduleSchema describes the schedules table.
var ScheduleSchema = Schema{
	Table: "schedules",
	Title: "Horários",
	Fields: []Field{
		required(ref("class_id", "classes")),
		required(integer("weekday")),
		required(text("start_time")),
		required(text("end_time")),
	},
}

func (s Schedule) ReferenceValue(column string) NullInt64 {
	if column == "class_id" {
		return s.ClassID
	}
	return NullInt64{}
}
