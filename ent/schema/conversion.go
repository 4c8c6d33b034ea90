package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// Conversion holds the schema definition for the Conversion entity. At
// most one conversion exists per exposure and scope; the value recorded
// by the first call is authoritative.
type Conversion struct {
	ent.Schema
}

// Fields of the Conversion.
func (Conversion) Fields() []ent.Field {
	return []ent.Field{
		field.Int("exposure_id").
			Comment("Exposure this conversion completes"),
		field.Enum("scope").
			GoType(domain.Scope("")).
			Comment("Isolation partition"),
		field.Float("value").
			Optional().
			Nillable().
			Comment("Optional goal value; first write wins"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("First time the conversion was recorded"),
		field.Time("last_seen_at").
			Default(time.Now).
			Comment("Advanced on every repeat call"),
	}
}

// Edges of the Conversion.
func (Conversion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("exposure", Exposure.Type).
			Ref("conversions").
			Field("exposure_id").
			Unique().
			Required().
			Comment("Converted exposure"),
	}
}

// Indexes of the Conversion.
func (Conversion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exposure_id", "scope").Unique(),
		index.Fields("last_seen_at"),
	}
}
