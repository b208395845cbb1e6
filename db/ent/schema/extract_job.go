package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ExtractJob struct{ ent.Schema }

func (ExtractJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extract_jobs"},
	}
}

func (ExtractJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("applicant_id", uuid.UUID{}),
		field.UUID("file_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("evaluation_id", uuid.UUID{}).Optional().Nillable(),
		field.String("source").NotEmpty(), // "text" or "file"
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Int("chunk_count").Default(0),
		field.Int("warning_count").Default(0),
		field.JSON("warnings", json.RawMessage{}).
			Optional(),
		field.JSON("extracted_json", json.RawMessage{}).
			Optional(),
		field.String("model_name").Optional().Nillable(),
	}
}

func (ExtractJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("applicant", Applicant.Type).
			Ref("jobs").
			Field("applicant_id").
			Unique().
			Required(),
		edge.From("file", TranscriptFile.Type).
			Ref("jobs").
			Field("file_id").
			Unique(),
		edge.From("evaluation", Evaluation.Type).
			Ref("jobs").
			Field("evaluation_id").
			Unique(),
	}
}

func (ExtractJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("applicant_id", "status", "started_at"),
		index.Fields("file_id"),
		index.Fields("evaluation_id"),
	}
}
