package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// Exposure holds the schema definition for the Exposure entity: the
// event "this subject entered this cohort of this experiment, in this
// scope". A subject has at most one exposure per experiment and scope,
// so repeat observations only advance last_seen_at.
type Exposure struct {
	ent.Schema
}

// Fields of the Exposure.
func (Exposure) Fields() []ent.Field {
	return []ent.Field{
		field.Int("subject_id").
			Comment("Exposed subject"),
		field.Int("experiment_id").
			Comment("Experiment entered"),
		field.Int("cohort_id").
			Comment("Cohort assigned on first observation; repeats never move it"),
		field.Enum("scope").
			GoType(domain.Scope("")).
			Comment("Isolation partition"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("First time the subject was seen in this experiment"),
		field.Time("last_seen_at").
			Default(time.Now).
			Comment("Advanced on every repeat observation"),
	}
}

// Edges of the Exposure.
func (Exposure) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("subject", Subject.Type).
			Ref("exposures").
			Field("subject_id").
			Unique().
			Required().
			Comment("Exposed subject"),
		edge.From("experiment", Experiment.Type).
			Ref("exposures").
			Field("experiment_id").
			Unique().
			Required().
			Comment("Experiment entered"),
		edge.From("cohort", Cohort.Type).
			Ref("exposures").
			Field("cohort_id").
			Unique().
			Required().
			Comment("Assigned cohort"),
		edge.To("conversions", Conversion.Type).
			Comment("Conversion recorded against this exposure, if any"),
	}
}

// Indexes of the Exposure.
func (Exposure) Indexes() []ent.Index {
	return []ent.Index{
		// One exposure per subject per experiment per scope
		index.Fields("subject_id", "experiment_id", "scope").Unique(),
		index.Fields("experiment_id", "scope"),
		index.Fields("last_seen_at"),
	}
}
