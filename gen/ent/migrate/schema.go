// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "ocr_provider", Type: field.TypeString, Nullable: true},
		{Name: "ocr_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "scoresheet_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_scoresheets_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[12]},
				RefColumns: []*schema.Column{ScoresheetsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_scoresheet_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[12], ExtractJobColumns[4], ExtractJobColumns[2]},
			},
		},
	}
	// ScoresheetsColumns holds the columns for the "scoresheets" table.
	ScoresheetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// ScoresheetsTable holds the schema information for the "scoresheets" table.
	ScoresheetsTable = &schema.Table{
		Name:       "scoresheets",
		Columns:    ScoresheetsColumns,
		PrimaryKey: []*schema.Column{ScoresheetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scoresheet_content_hash",
				Unique:  true,
				Columns: []*schema.Column{ScoresheetsColumns[2]},
			},
			{
				Name:    "scoresheet_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ScoresheetsColumns[6]},
			},
		},
	}
	// SoldierResultsColumns holds the columns for the "soldier_results" table.
	SoldierResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "sit_up_reps", Type: field.TypeInt, Default: 0},
		{Name: "push_up_reps", Type: field.TypeInt, Default: 0},
		{Name: "run_time", Type: field.TypeString, Default: ""},
		{Name: "confidence", Type: field.TypeFloat32, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
		{Name: "scoresheet_id", Type: field.TypeUUID},
	}
	// SoldierResultsTable holds the schema information for the "soldier_results" table.
	SoldierResultsTable = &schema.Table{
		Name:       "soldier_results",
		Columns:    SoldierResultsColumns,
		PrimaryKey: []*schema.Column{SoldierResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "soldier_results_extract_job_soldiers",
				Columns:    []*schema.Column{SoldierResultsColumns[8]},
				RefColumns: []*schema.Column{ExtractJobColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "soldier_results_scoresheets_soldiers",
				Columns:    []*schema.Column{SoldierResultsColumns[9]},
				RefColumns: []*schema.Column{ScoresheetsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "soldierresult_job_id_name",
				Unique:  true,
				Columns: []*schema.Column{SoldierResultsColumns[8], SoldierResultsColumns[1]},
			},
			{
				Name:    "soldierresult_scoresheet_id",
				Unique:  false,
				Columns: []*schema.Column{SoldierResultsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractJobTable,
		ScoresheetsTable,
		SoldierResultsTable,
	}
)

func init() {
	ExtractJobTable.ForeignKeys[0].RefTable = ScoresheetsTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	ScoresheetsTable.Annotation = &entsql.Annotation{
		Table: "scoresheets",
	}
	SoldierResultsTable.ForeignKeys[0].RefTable = ExtractJobTable
	SoldierResultsTable.ForeignKeys[1].RefTable = ScoresheetsTable
	SoldierResultsTable.Annotation = &entsql.Annotation{
		Table: "soldier_results",
	}
}
