// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApplicantsColumns holds the columns for the "applicants" table.
	ApplicantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "target_level", Type: field.TypeString, Default: "PHD"},
		{Name: "research_areas", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ApplicantsTable holds the schema information for the "applicants" table.
	ApplicantsTable = &schema.Table{
		Name:       "applicants",
		Columns:    ApplicantsColumns,
		PrimaryKey: []*schema.Column{ApplicantsColumns[0]},
	}
	// EvaluationsColumns holds the columns for the "evaluations" table.
	EvaluationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "institution", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "gpa", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(5,3)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "applicant_id", Type: field.TypeUUID},
	}
	// EvaluationsTable holds the schema information for the "evaluations" table.
	EvaluationsTable = &schema.Table{
		Name:       "evaluations",
		Columns:    EvaluationsColumns,
		PrimaryKey: []*schema.Column{EvaluationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evaluations_applicants_evaluations",
				Columns:    []*schema.Column{EvaluationsColumns[6]},
				RefColumns: []*schema.Column{ApplicantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evaluation_applicant_id_institution_level",
				Unique:  true,
				Columns: []*schema.Column{EvaluationsColumns[6], EvaluationsColumns[1], EvaluationsColumns[2]},
			},
		},
	}
	// EvaluationCoursesColumns holds the columns for the "evaluation_courses" table.
	EvaluationCoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "code", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "grade", Type: field.TypeString, Nullable: true},
		{Name: "credit_hours", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "included", Type: field.TypeBool, Default: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "evaluation_id", Type: field.TypeUUID},
	}
	// EvaluationCoursesTable holds the schema information for the "evaluation_courses" table.
	EvaluationCoursesTable = &schema.Table{
		Name:       "evaluation_courses",
		Columns:    EvaluationCoursesColumns,
		PrimaryKey: []*schema.Column{EvaluationCoursesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evaluation_courses_evaluations_courses",
				Columns:    []*schema.Column{EvaluationCoursesColumns[7]},
				RefColumns: []*schema.Column{EvaluationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationcourse_evaluation_id_position",
				Unique:  false,
				Columns: []*schema.Column{EvaluationCoursesColumns[7], EvaluationCoursesColumns[6]},
			},
		},
	}
	// ExtractJobsColumns holds the columns for the "extract_jobs" table.
	ExtractJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "chunk_count", Type: field.TypeInt, Default: 0},
		{Name: "warning_count", Type: field.TypeInt, Default: 0},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "applicant_id", Type: field.TypeUUID},
		{Name: "evaluation_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID, Nullable: true},
	}
	// ExtractJobsTable holds the schema information for the "extract_jobs" table.
	ExtractJobsTable = &schema.Table{
		Name:       "extract_jobs",
		Columns:    ExtractJobsColumns,
		PrimaryKey: []*schema.Column{ExtractJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_jobs_applicants_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[11]},
				RefColumns: []*schema.Column{ApplicantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extract_jobs_evaluations_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[12]},
				RefColumns: []*schema.Column{EvaluationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_jobs_transcript_files_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[13]},
				RefColumns: []*schema.Column{TranscriptFilesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_applicant_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[11], ExtractJobsColumns[4], ExtractJobsColumns[2]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[13]},
			},
			{
				Name:    "extractjob_evaluation_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[12]},
			},
		},
	}
	// TranscriptFilesColumns holds the columns for the "transcript_files" table.
	TranscriptFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "applicant_id", Type: field.TypeUUID},
	}
	// TranscriptFilesTable holds the schema information for the "transcript_files" table.
	TranscriptFilesTable = &schema.Table{
		Name:       "transcript_files",
		Columns:    TranscriptFilesColumns,
		PrimaryKey: []*schema.Column{TranscriptFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transcript_files_applicants_files",
				Columns:    []*schema.Column{TranscriptFilesColumns[7]},
				RefColumns: []*schema.Column{ApplicantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transcriptfile_applicant_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{TranscriptFilesColumns[7], TranscriptFilesColumns[2]},
			},
			{
				Name:    "transcriptfile_applicant_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{TranscriptFilesColumns[7], TranscriptFilesColumns[6]},
			},
		},
	}
	// UniversitiesColumns holds the columns for the "universities" table.
	UniversitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "program", Type: field.TypeString},
		{Name: "semester", Type: field.TypeString},
		{Name: "deadline", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "timezone", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "PLANNING"},
		{Name: "notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "applicant_id", Type: field.TypeUUID},
	}
	// UniversitiesTable holds the schema information for the "universities" table.
	UniversitiesTable = &schema.Table{
		Name:       "universities",
		Columns:    UniversitiesColumns,
		PrimaryKey: []*schema.Column{UniversitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "universities_applicants_universities",
				Columns:    []*schema.Column{UniversitiesColumns[10]},
				RefColumns: []*schema.Column{ApplicantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "university_applicant_id_name_program",
				Unique:  true,
				Columns: []*schema.Column{UniversitiesColumns[10], UniversitiesColumns[1], UniversitiesColumns[2]},
			},
			{
				Name:    "university_applicant_id_deadline",
				Unique:  false,
				Columns: []*schema.Column{UniversitiesColumns[10], UniversitiesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApplicantsTable,
		EvaluationsTable,
		EvaluationCoursesTable,
		ExtractJobsTable,
		TranscriptFilesTable,
		UniversitiesTable,
	}
)

func init() {
	ApplicantsTable.Annotation = &entsql.Annotation{
		Table: "applicants",
	}
	EvaluationsTable.ForeignKeys[0].RefTable = ApplicantsTable
	EvaluationsTable.Annotation = &entsql.Annotation{
		Table: "evaluations",
	}
	EvaluationCoursesTable.ForeignKeys[0].RefTable = EvaluationsTable
	EvaluationCoursesTable.Annotation = &entsql.Annotation{
		Table: "evaluation_courses",
	}
	ExtractJobsTable.ForeignKeys[0].RefTable = ApplicantsTable
	ExtractJobsTable.ForeignKeys[1].RefTable = EvaluationsTable
	ExtractJobsTable.ForeignKeys[2].RefTable = TranscriptFilesTable
	ExtractJobsTable.Annotation = &entsql.Annotation{
		Table: "extract_jobs",
	}
	TranscriptFilesTable.ForeignKeys[0].RefTable = ApplicantsTable
	TranscriptFilesTable.Annotation = &entsql.Annotation{
		Table: "transcript_files",
	}
	UniversitiesTable.ForeignKeys[0].RefTable = ApplicantsTable
	UniversitiesTable.Annotation = &entsql.Annotation{
		Table: "universities",
	}
}
