// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CapturedStepsColumns holds the columns for the "captured_steps" table.
	CapturedStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "step_num", Type: field.TypeInt},
		{Name: "tool", Type: field.TypeString},
		{Name: "params", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeString, Size: 2147483647},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// CapturedStepsTable holds the schema information for the "captured_steps" table.
	CapturedStepsTable = &schema.Table{
		Name:       "captured_steps",
		Columns:    CapturedStepsColumns,
		PrimaryKey: []*schema.Column{CapturedStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "captured_steps_task_runs_steps",
				Columns:    []*schema.Column{CapturedStepsColumns[9]},
				RefColumns: []*schema.Column{TaskRunsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "capturedstep_run_id_step_num",
				Unique:  false,
				Columns: []*schema.Column{CapturedStepsColumns[9], CapturedStepsColumns[1]},
			},
			{
				Name:    "capturedstep_tool",
				Unique:  false,
				Columns: []*schema.Column{CapturedStepsColumns[2]},
			},
		},
	}
	// RunEventsColumns holds the columns for the "run_events" table.
	RunEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunEventsTable holds the schema information for the "run_events" table.
	RunEventsTable = &schema.Table{
		Name:       "run_events",
		Columns:    RunEventsColumns,
		PrimaryKey: []*schema.Column{RunEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_events_task_runs_events",
				Columns:    []*schema.Column{RunEventsColumns[5]},
				RefColumns: []*schema.Column{TaskRunsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runevent_run_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[5], RunEventsColumns[1]},
			},
		},
	}
	// TaskRunsColumns holds the columns for the "task_runs" table.
	TaskRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "task", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed", "cancelled"}, Default: "running"},
		{Name: "answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "steps_total", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// TaskRunsTable holds the schema information for the "task_runs" table.
	TaskRunsTable = &schema.Table{
		Name:       "task_runs",
		Columns:    TaskRunsColumns,
		PrimaryKey: []*schema.Column{TaskRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "taskrun_session_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{TaskRunsColumns[1], TaskRunsColumns[7]},
			},
			{
				Name:    "taskrun_status",
				Unique:  false,
				Columns: []*schema.Column{TaskRunsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CapturedStepsTable,
		RunEventsTable,
		TaskRunsTable,
	}
)

func init() {
	CapturedStepsTable.ForeignKeys[0].RefTable = TaskRunsTable
	RunEventsTable.ForeignKeys[0].RefTable = TaskRunsTable
}
