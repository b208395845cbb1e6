package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/Salam-35/PhdTrack-sub000/constants"
	"github.com/Salam-35/PhdTrack-sub000/db/ent/schema/utils"
)

type Applicant struct{ ent.Schema }

func (Applicant) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "applicants"},
	}
}

func (Applicant) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("email").NotEmpty(),
		field.String("target_level").Default(string(constants.LevelPhD)).
			Validate(utils.EnumValidator(constants.LevelsAsStringSlice()...)),
		field.String("research_areas").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Applicant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("universities", University.Type),
		edge.To("evaluations", Evaluation.Type),
		edge.To("files", TranscriptFile.Type),
		edge.To("jobs", ExtractJob.Type),
	}
}
