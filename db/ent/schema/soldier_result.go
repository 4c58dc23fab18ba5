package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type SoldierResult struct{ ent.Schema }

func (SoldierResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "soldier_results"},
	}
}

func (SoldierResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs so we can define the per-sheet identity index
		field.UUID("scoresheet_id", uuid.UUID{}),
		field.UUID("job_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.Int("sit_up_reps").NonNegative().Default(0),
		field.Int("push_up_reps").NonNegative().Default(0),
		field.String("run_time").Default(""),
		field.Float32("confidence").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (SoldierResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("scoresheet", Scoresheet.Type).
			Ref("soldiers").
			Field("scoresheet_id").
			Unique().
			Required(),
		edge.From("job", ExtractJob.Type).
			Ref("soldiers").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (SoldierResult) Indexes() []ent.Index {
	return []ent.Index{
		// one row per soldier per job
		index.Fields("job_id", "name").Unique(),
		index.Fields("scoresheet_id"),
	}
}
