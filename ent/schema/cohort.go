package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Cohort holds the schema definition for the Cohort entity. Cohorts are
// created lazily by the first exposure that names them.
type Cohort struct {
	ent.Schema
}

// Fields of the Cohort.
func (Cohort) Fields() []ent.Field {
	return []ent.Field{
		field.Int("experiment_id").
			Comment("Experiment this cohort belongs to"),
		field.String("name").
			NotEmpty().
			MaxLen(128).
			Comment("Cohort name, unique per experiment (e.g., control, experimental)"),
		field.Int("last_production_exposure_id").
			Optional().
			Nillable().
			Comment("Most recent production exposure"),
		field.Int("last_staging_exposure_id").
			Optional().
			Nillable().
			Comment("Most recent staging exposure"),
		field.Int("last_production_conversion_id").
			Optional().
			Nillable().
			Comment("Most recent production conversion"),
		field.Int("last_staging_conversion_id").
			Optional().
			Nillable().
			Comment("Most recent staging conversion"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Cohort.
func (Cohort) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("experiment", Experiment.Type).
			Ref("cohorts").
			Field("experiment_id").
			Unique().
			Required().
			Comment("Owning experiment"),
		edge.To("exposures", Exposure.Type).
			Comment("Exposures assigned to this cohort"),
	}
}

// Indexes of the Cohort.
func (Cohort) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("experiment_id", "name").Unique(),
	}
}
