package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type EvaluationCourse struct{ ent.Schema }

func (EvaluationCourse) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "evaluation_courses"},
	}
}

func (EvaluationCourse) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("evaluation_id", uuid.UUID{}),
		field.String("code").Optional(),
		field.String("name").NotEmpty(),
		field.String("grade").Optional(),
		field.Float("credit_hours").Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Bool("included").Default(true),
		// display order within the evaluation, preserved across re-extraction
		field.Int("position").NonNegative(),
	}
}

func (EvaluationCourse) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("evaluation", Evaluation.Type).
			Ref("courses").
			Field("evaluation_id").
			Required().
			Unique(),
	}
}

func (EvaluationCourse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("evaluation_id", "position"),
	}
}
