package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Plan holds the schema definition for the Plan entity.
type Plan struct {
	ent.Schema
}

// Fields of the Plan.
func (Plan) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(64).
			Comment("Plan name (e.g., free, developer, team)"),
		field.Int("price_in_cents").
			NonNegative().
			Comment("Monthly price in cents"),
		field.Int("max_subjects_per_experiment").
			Positive().
			Comment("Subjects allowed per experiment per scope"),
		field.Int("max_active_experiments").
			Positive().
			Comment("Experiments that may be active at once"),
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

// Edges of the Plan.
func (Plan) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("accounts", Account.Type).
			Comment("Accounts subscribed to this plan"),
	}
}

// Indexes of the Plan.
func (Plan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}
