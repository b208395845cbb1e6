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

type University struct{ ent.Schema }

func (University) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "universities"},
	}
}

func (University) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("applicant_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("program").NotEmpty(),
		field.String("semester").NotEmpty(), // e.g. "Fall 2027"
		field.Time("deadline").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "timestamptz"}),
		field.String("timezone").Optional().Nillable(), // UTC offset like "-05:00"
		field.String("status").Default(string(constants.AppStatusPlanning)).
			Validate(utils.EnumValidator(constants.AppStatusesAsStringSlice()...)),
		field.String("notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (University) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("applicant", Applicant.Type).
			Ref("universities").
			Field("applicant_id").
			Required().
			Unique(),
	}
}

func (University) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("applicant_id", "name", "program").Unique(),
		index.Fields("applicant_id", "deadline"),
	}
}
