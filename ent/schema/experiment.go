package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Experiment holds the schema definition for the Experiment entity.
//
// The subject counters and last-event references are denormalized per
// scope: exposures in staging must never move the production numbers.
// The active flag and last_activated_at are shared across scopes.
type Experiment struct {
	ent.Schema
}

// Fields of the Experiment.
func (Experiment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Comment("Owning user (tenant)"),
		field.String("name").
			NotEmpty().
			MaxLen(128).
			Comment("Experiment name, unique per user"),
		field.Bool("active").
			Default(true).
			Comment("Whether new exposures are admitted"),
		field.Time("last_activated_at").
			Default(time.Now).
			Comment("When the experiment was last activated; drives eviction order"),
		field.Int("subjects_counter_production").
			Default(0).
			Comment("Distinct subjects exposed in production"),
		field.Int("subjects_counter_staging").
			Default(0).
			Comment("Distinct subjects exposed in staging"),
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

// Edges of the Experiment.
func (Experiment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("experiments").
			Field("user_id").
			Unique().
			Required().
			Comment("Experiment owner"),
		edge.To("cohorts", Cohort.Type).
			Comment("Treatment arms"),
		edge.To("exposures", Exposure.Type).
			Comment("Exposure events"),
	}
}

// Indexes of the Experiment.
func (Experiment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "name").Unique(),
		index.Fields("active"),
		index.Fields("last_activated_at"),
	}
}
