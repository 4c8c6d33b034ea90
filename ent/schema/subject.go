package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
)

// Subject holds the schema definition for the Subject entity. Subjects
// are account-wide and scope-partitioned: the same name in production
// and staging is two distinct rows.
type Subject struct {
	ent.Schema
}

// Fields of the Subject.
func (Subject) Fields() []ent.Field {
	return []ent.Field{
		field.Int("account_id").
			Comment("Owning account"),
		field.String("name").
			NotEmpty().
			MaxLen(128).
			Comment("Client-supplied subject identifier"),
		field.Enum("scope").
			GoType(domain.Scope("")).
			Comment("Isolation partition"),
		field.Int("last_exposure_id").
			Optional().
			Nillable().
			Comment("Most recent exposure for this subject"),
		field.Int("last_conversion_id").
			Optional().
			Nillable().
			Comment("Most recent conversion for this subject"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("First time this subject was seen"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Subject.
func (Subject) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", Account.Type).
			Ref("subjects").
			Field("account_id").
			Unique().
			Required().
			Comment("Owning account"),
		edge.To("exposures", Exposure.Type).
			Comment("Exposures recorded for this subject"),
	}
}

// Indexes of the Subject.
func (Subject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "name", "scope").Unique(),
	}
}
