package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// ExposureRollup holds the schema definition for the ExposureRollup
// entity: one row of per-day exposure/conversion counts for an
// experiment and scope, maintained by the nightly rollup job. The
// experiment name and owner are denormalized so dashboard reads never
// need the join.
type ExposureRollup struct {
	ent.Schema
}

// Fields of the ExposureRollup.
func (ExposureRollup) Fields() []ent.Field {
	return []ent.Field{
		field.Time("day").
			Comment("UTC day the counts cover"),
		field.Int("user_id").
			Comment("Experiment owner"),
		field.Int("experiment_id").
			Comment("Experiment the counts cover"),
		field.String("experiment_name").
			NotEmpty().
			Comment("Denormalized experiment name"),
		field.Enum("scope").
			GoType(domain.Scope("")).
			Comment("Isolation partition"),
		field.Int("exposures").
			NonNegative().
			Comment("Exposures first seen on this day"),
		field.Int("conversions").
			NonNegative().
			Comment("Conversions first seen on this day"),
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

// Indexes of the ExposureRollup.
func (ExposureRollup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("day", "experiment_id", "scope").Unique(),
		index.Fields("user_id"),
		index.Fields("day"),
	}
}
