package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/Salam-35/PhdTrack-sub000/constants"
	"github.com/Salam-35/PhdTrack-sub000/db/ent/schema/utils"
)

type Evaluation struct{ ent.Schema }

func (Evaluation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "evaluations"},
	}
}

func (Evaluation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("applicant_id", uuid.UUID{}),
		field.String("institution").NotEmpty(),
		field.String("level").
			Validate(utils.EnumValidator(constants.LevelsAsStringSlice()...)),
		field.Float("gpa").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,3)"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Evaluation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("applicant", Applicant.Type).
			Ref("evaluations").
			Field("applicant_id").
			Required().
			Unique(),
		edge.To("courses", EvaluationCourse.Type),
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Evaluation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("applicant_id", "institution", "level").Unique(),
	}
}
