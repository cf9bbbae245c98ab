// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "lesson_type", Type: field.TypeEnum, Enums: []string{"lesson", "assignment"}, Default: "lesson"},
		{Name: "is_ai_guided", Type: field.TypeBool, Default: true},
		{Name: "steps", Type: field.TypeJSON},
		{Name: "starter_code", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "reference_project", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "reflection_question", Type: field.TypeString, Nullable: true},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "unit_lessons", Type: field.TypeInt, Nullable: true},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lessons_units_lessons",
				Columns:    []*schema.Column{LessonsColumns[9]},
				RefColumns: []*schema.Column{UnitsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_position",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[8]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lesson_id", Type: field.TypeUUID},
		{Name: "student_id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "submitted", "graded"}, Default: "draft"},
		{Name: "current_step", Type: field.TypeInt, Default: 0},
		{Name: "code", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "text_answer", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "reflection_answer", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "history", Type: field.TypeJSON, Nullable: true},
		{Name: "grade", Type: field.TypeFloat64, Nullable: true},
		{Name: "feedback_comment", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "graded_at", Type: field.TypeTime, Nullable: true},
		{Name: "submitted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submission_lesson_id_student_id",
				Unique:  true,
				Columns: []*schema.Column{SubmissionsColumns[1], SubmissionsColumns[2]},
			},
			{
				Name:    "submission_student_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[2]},
			},
			{
				Name:    "submission_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[14]},
			},
		},
	}
	// UnitsColumns holds the columns for the "units" table.
	UnitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "is_locked", Type: field.TypeBool, Default: false},
		{Name: "is_sequential", Type: field.TypeBool, Default: false},
		{Name: "available_at", Type: field.TypeTime, Nullable: true},
		{Name: "editor", Type: field.TypeEnum, Enums: []string{"blocks", "text"}, Default: "text"},
		{Name: "shares_project", Type: field.TypeBool, Default: false},
	}
	// UnitsTable holds the schema information for the "units" table.
	UnitsTable = &schema.Table{
		Name:       "units",
		Columns:    UnitsColumns,
		PrimaryKey: []*schema.Column{UnitsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unit_position",
				Unique:  false,
				Columns: []*schema.Column{UnitsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		LessonsTable,
		SubmissionsTable,
		UnitsTable,
	}
)

func init() {
	LessonsTable.ForeignKeys[0].RefTable = UnitsTable
}
